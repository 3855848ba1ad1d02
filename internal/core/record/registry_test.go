// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package record_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/scrolls/internal/core/record"
	"github.com/taibuivan/scrolls/internal/platform/apperr"
)

const customVariants = `
variants:
  - name: minimal
    column_count: 3
    columns:
      - field: shelfmark
        index: 0
      - field: repository
        index: 1
      - field: notes
        index: 2
        joined: true
    title:
      fields: [repository, shelfmark]
      primary: shelfmark
      placeholder: Unnamed
    repository:
      name: repository
      target: repository
`

/*
TestRegistry_Builtins verifies that both built-in variants are registered.
*/
func TestRegistry_Builtins(t *testing.T) {
	registry := record.NewRegistry()
	assert.Equal(t, []string{record.VariantCatalogue, record.VariantInventory}, registry.Names())

	variant, err := registry.Lookup(record.VariantInventory)
	require.NoError(t, err)
	assert.Equal(t, 17, variant.MinColumns())

	_, err = registry.Lookup("ledger")
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
}

/*
TestRegistry_LoadFile loads a custom variant from YAML and maps a row with it.
*/
func TestRegistry_LoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "variants.yaml")
	require.NoError(t, os.WriteFile(path, []byte(customVariants), 0o600))

	registry := record.NewRegistry()
	require.NoError(t, registry.LoadFile(path))
	assert.Contains(t, registry.Names(), "minimal")

	variant, err := registry.Lookup("minimal")
	require.NoError(t, err)
	assert.Equal(t, "Unnamed", variant.Title.Placeholder)

	rec, err := variant.Map(path, 1, []string{"MS 3", "Bodleian", "a;b"})
	require.NoError(t, err)
	assert.Equal(t, "a<br/>b", rec.Text("notes"))
}

/*
TestRegistry_Load_Rejects covers unknown keys and invalid definitions.
*/
func TestRegistry_Load_Rejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown_key", "variants:\n  - name: x\n    colums: []\n"},
		{"invalid_variant", "variants:\n  - name: x\n    column_count: 1\n    columns: []\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := record.NewRegistry().Load(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.True(t, apperr.HasCode(err, apperr.CodeValidation))
		})
	}
}
