// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package title_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/scrolls/internal/core/record"
	"github.com/taibuivan/scrolls/internal/core/title"
)

var rule = record.TitleRule{
	Fields:      []string{"repository_city", "shelfmark"},
	Primary:     "shelfmark",
	Placeholder: record.DefaultPlaceholder,
}

func newRecord(city, shelfmark string) *record.Record {
	rec := record.New("scrolls.csv", 2)
	rec.Set("repository_city", record.Text(city))
	rec.Set("shelfmark", record.Text(shelfmark))
	return rec
}

/*
TestGenerate tests title composition and slug derivation.
*/
func TestGenerate(t *testing.T) {
	tests := []struct {
		name      string
		city      string
		shelfmark string
		wantTitle string
		wantSlug  string
	}{
		{"city_and_shelfmark", "Paris", "MS 12", "Paris, MS 12", "paris-ms-12"},
		{"diacritics", "Köln", "Cod. 3.1", "Köln, Cod. 3.1", "koln-cod-3-1"},
		{"missing_city", "", "MS 5", "MS 5", "ms-5"},
		{"missing_shelfmark", "Leiden", "", "Leiden, No shelfmark", "leiden-no-shelfmark"},
		{"both_missing", "  ", "", "No shelfmark", "no-shelfmark"},
		{"blank_shelfmark_omitted", "Paris", "  ", "Paris", "paris"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := newRecord(tt.city, tt.shelfmark)
			got, err := title.Generate(rec, rule, title.NewSet())
			require.NoError(t, err)

			assert.Equal(t, tt.wantTitle, got)
			assert.Equal(t, tt.wantTitle, rec.Title())
			assert.Equal(t, tt.wantSlug, rec.Slug())
		})
	}
}

/*
TestGenerate_Placeholder verifies the placeholder is kept on the record.
*/
func TestGenerate_Placeholder(t *testing.T) {
	rec := newRecord("Leiden", "")
	_, err := title.Generate(rec, rule, title.NewSet())
	require.NoError(t, err)
	assert.Equal(t, record.DefaultPlaceholder, rec.Text("shelfmark"))

	blank := newRecord("Paris", "  ")
	_, err = title.Generate(blank, rule, title.NewSet())
	require.NoError(t, err)
	assert.Equal(t, "  ", blank.Text("shelfmark"), "only an empty shelfmark is replaced")
}

/*
TestGenerate_Collisions verifies numeric suffixes for repeated titles.
*/
func TestGenerate_Collisions(t *testing.T) {
	set := title.NewSet()

	var got []string
	for range 3 {
		issued, err := title.Generate(newRecord("Paris", "MS 1"), rule, set)
		require.NoError(t, err)
		got = append(got, issued)
	}

	assert.Equal(t, []string{"Paris, MS 1", "Paris, MS 1 1", "Paris, MS 1 2"}, got)
	assert.Equal(t, 3, set.Len())
}

/*
TestGenerate_KeepsExistingTitle verifies a title is never recomputed.
*/
func TestGenerate_KeepsExistingTitle(t *testing.T) {
	set := title.NewSet()
	rec := newRecord("Paris", "MS 1")

	first, err := title.Generate(rec, rule, set)
	require.NoError(t, err)
	second, err := title.Generate(rec, rule, set)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, set.Len())
}

/*
TestSet_Claim checks suffixing against an already issued suffixed title.
*/
func TestSet_Claim(t *testing.T) {
	set := title.NewSet()
	assert.Equal(t, "A 1", set.Claim("A 1"))
	assert.Equal(t, "A", set.Claim("A"))
	assert.Equal(t, "A 2", set.Claim("A"))
	assert.True(t, set.Contains("A 2"))
}
