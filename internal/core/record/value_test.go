// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package record_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/scrolls/internal/core/record"
)

/*
TestValue_Serialize checks the stored form of every value kind.
*/
func TestValue_Serialize(t *testing.T) {
	tests := []struct {
		name  string
		value record.Value
		want  string
	}{
		{"text", record.Text("Vellum"), "Vellum"},
		{"empty_text", record.Text(""), ""},
		{"list", record.List([]string{"la", "de"}), `a:2:{i:0;s:2:"la";i:1;s:2:"de";}`},
		{"no_terms", record.Terms(nil), ""},
		{"single_term", record.Terms([]int64{5}), "5"},
		{"several_terms", record.Terms([]int64{5, 9}), "a:2:{i:0;i:5;i:1;i:9;}"},
		{"reference", record.Reference(42), "a:1:{i:0;i:42;}"},
		{"empty_reference", record.Value{Kind: record.KindReference}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.value.Serialize())
		})
	}
}

/*
TestValue_IsEmpty checks emptiness per kind.
*/
func TestValue_IsEmpty(t *testing.T) {
	assert.True(t, record.Text("").IsEmpty())
	assert.False(t, record.Text("0").IsEmpty())
	assert.True(t, record.List(nil).IsEmpty())
	assert.True(t, record.Terms([]int64{}).IsEmpty())
	assert.False(t, record.Terms([]int64{1}).IsEmpty())
	assert.False(t, record.Reference(1).IsEmpty())
}

/*
TestRecord_FieldOrder verifies that replacing a value keeps its position.
*/
func TestRecord_FieldOrder(t *testing.T) {
	rec := record.New("a.csv", 2)
	rec.Set("type", record.Text("Roll"))
	rec.Set("orientation", record.Text("h"))
	rec.Set("type", record.Terms([]int64{3}))

	fields := rec.MetaFields()
	require.Len(t, fields, 2)
	assert.Equal(t, "type", fields[0].Name)
	assert.Equal(t, record.KindTerms, fields[0].Value.Kind)
	assert.Equal(t, "", rec.Text("type"))
	assert.Equal(t, "h", rec.Text("orientation"))
}

/*
TestRecord_Identify verifies that title and slug are assigned exactly once.
*/
func TestRecord_Identify(t *testing.T) {
	rec := record.New("a.csv", 2)
	rec.Set("shelfmark", record.Text("MS 1"))

	require.NoError(t, rec.Identify("Paris, MS 1", "paris-ms-1"))
	assert.ErrorIs(t, rec.Identify("Other", "other"), record.ErrIdentityAssigned)

	assert.Equal(t, "Paris, MS 1", rec.Title())
	assert.Equal(t, "paris-ms-1", rec.Slug())

	meta := rec.MetaFields()
	require.Len(t, meta, 1)
	assert.Equal(t, "shelfmark", meta[0].Name)

	assert.Panics(t, func() { rec.Set(record.FieldTitle, record.Text("x")) })
}
