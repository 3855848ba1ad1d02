// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package taxonomy_test

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/scrolls/internal/core/taxonomy"
)

// memoryTerms is an in-memory taxonomy.Repository keyed by namespace.
type memoryTerms struct {
	terms   map[string][]taxonomy.Term
	queries int
	err     error
}

func (m *memoryTerms) FindTerms(_ context.Context, namespace string, names []string) ([]taxonomy.Term, error) {
	m.queries++
	if m.err != nil {
		return nil, m.err
	}
	var found []taxonomy.Term
	for _, term := range m.terms[namespace] {
		if slices.Contains(names, term.Name) {
			found = append(found, term)
		}
	}
	return found, nil
}

func (m *memoryTerms) ListTermNames(_ context.Context, namespace string) ([]string, error) {
	var names []string
	for _, term := range m.terms[namespace] {
		names = append(names, term.Name)
	}
	return names, nil
}

func newTerms() *memoryTerms {
	return &memoryTerms{terms: map[string][]taxonomy.Term{
		"quality":     {{ID: 11, Name: "Exact"}, {ID: 12, Name: "Circa"}},
		"orientation": {{ID: 21, Name: "Horizontal"}, {ID: 22, Name: "Vertical"}},
		"language":    {{ID: 31, Name: "la"}, {ID: 32, Name: "de"}, {ID: 33, Name: "Latin"}},
		"type":        {{ID: 41, Name: "Roll"}, {ID: 42, Name: "Roll"}},
	}}
}

/*
TestNormalize covers the fixed synonym table.
*/
func TestNormalize(t *testing.T) {
	tests := []struct {
		name      string
		namespace string
		value     string
		want      string
	}{
		{"circa", "quality", "ca", "Circa"},
		{"circa_any_namespace", "type", "ca", "Circa"},
		{"empty_quality", "quality", "", "Exact"},
		{"empty_other", "orientation", "", ""},
		{"horizontal_upper", "orientation", "H", "Horizontal"},
		{"horizontal_lower", "orientation", "h", "Horizontal"},
		{"vertical_upper", "orientation", "V", "Vertical"},
		{"vertical_lower", "orientation", "v", "Vertical"},
		{"case_sensitive", "quality", "CA", "CA"},
		{"passthrough", "type", "Codex", "Codex"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, taxonomy.Normalize(tt.namespace, tt.value))
		})
	}
}

/*
TestResolver_Resolve verifies scalar lookups with normalization.
*/
func TestResolver_Resolve(t *testing.T) {
	ctx := context.Background()
	resolver := taxonomy.NewResolver(newTerms())

	tests := []struct {
		name      string
		namespace string
		value     string
		want      []int64
	}{
		{"synonym", "quality", "ca", []int64{12}},
		{"empty_quality_is_exact", "quality", "", []int64{11}},
		{"orientation", "orientation", "h", []int64{21}},
		{"several_matches", "type", "Roll", []int64{41, 42}},
		{"empty_value", "orientation", "", nil},
		{"miss", "type", "Codex", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolver.Resolve(ctx, tt.namespace, tt.value)
			require.NoError(t, err)
			assert.Equal(t, len(tt.want), len(got))
			if len(tt.want) > 0 {
				assert.Equal(t, tt.want, got)
			}
		})
	}

	assert.Equal(t, 1, resolver.Misses())
}

/*
TestResolver_ResolveAll verifies list lookups of one and two values.
*/
func TestResolver_ResolveAll(t *testing.T) {
	ctx := context.Background()
	repo := newTerms()
	resolver := taxonomy.NewResolver(repo)

	got, err := resolver.ResolveAll(ctx, "language", []string{"de", "la"})
	require.NoError(t, err)
	assert.Equal(t, []int64{31, 32}, got)
	assert.Equal(t, 1, repo.queries, "both values resolved in one query")

	got, err = resolver.ResolveAll(ctx, "language", []string{"la", ""})
	require.NoError(t, err)
	assert.Equal(t, []int64{31}, got)
	assert.Equal(t, 1, repo.queries, "cached")

	got, err = resolver.ResolveAll(ctx, "language", []string{"", ""})
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = resolver.ResolveAll(ctx, "language", []string{"la", "xx"})
	require.NoError(t, err)
	assert.Equal(t, []int64{31}, got)
	assert.Equal(t, 1, resolver.Misses())
}

/*
TestResolver_CachedMissesCount verifies repeated misses are counted without re-querying.
*/
func TestResolver_CachedMissesCount(t *testing.T) {
	ctx := context.Background()
	repo := newTerms()
	resolver := taxonomy.NewResolver(repo)

	for range 3 {
		_, err := resolver.Resolve(ctx, "type", "Codex")
		require.NoError(t, err)
	}

	assert.Equal(t, 1, repo.queries)
	assert.Equal(t, 3, resolver.Misses())
}

/*
TestResolver_StoreError verifies store failures are returned and not cached.
*/
func TestResolver_StoreError(t *testing.T) {
	ctx := context.Background()
	repo := newTerms()
	repo.err = errors.New("connection reset")
	resolver := taxonomy.NewResolver(repo)

	_, err := resolver.Resolve(ctx, "type", "Roll")
	require.Error(t, err)

	repo.err = nil
	got, err := resolver.Resolve(ctx, "type", "Roll")
	require.NoError(t, err)
	assert.Equal(t, []int64{41, 42}, got)
}

/*
TestResolver_Suggest verifies fuzzy suggestions for a missed value.
*/
func TestResolver_Suggest(t *testing.T) {
	resolver := taxonomy.NewResolver(newTerms())

	suggestions := resolver.Suggest(context.Background(), "language", "latn")
	assert.Equal(t, []string{"Latin"}, suggestions)
}
