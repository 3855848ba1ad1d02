// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package taxonomy

import (
	"context"
	"log/slog"
	"slices"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/taibuivan/scrolls/internal/platform/apperr"
	"github.com/taibuivan/scrolls/internal/platform/ctxutil"
)

// maxSuggestions bounds the near matches logged for a miss.
const maxSuggestions = 3

// Resolver maps field values to term ids, caching every lookup for the run.
//
// # Concurrency
//
// Resolver is not safe for concurrent use.
type Resolver struct {
	repo   Repository
	cache  map[cacheKey][]int64
	names  map[string][]string
	misses int
}

type cacheKey struct {
	namespace string
	name      string
}

// NewResolver creates a Resolver reading from repo.
func NewResolver(repo Repository) *Resolver {
	return &Resolver{
		repo:  repo,
		cache: make(map[cacheKey][]int64),
		names: make(map[string][]string),
	}
}

// Resolve looks up a scalar value after synonym normalization. An empty
// normalized value resolves to no terms without querying the store.
func (resolver *Resolver) Resolve(ctx context.Context, namespace, value string) ([]int64, error) {
	normalized := Normalize(namespace, value)
	if normalized == "" {
		return nil, nil
	}
	return resolver.lookup(ctx, namespace, []string{normalized})
}

// ResolveAll looks up every non-empty value of a list in a single query.
// List members are matched as given, without synonym normalization.
func (resolver *Resolver) ResolveAll(ctx context.Context, namespace string, values []string) ([]int64, error) {
	names := make([]string, 0, len(values))
	for _, value := range values {
		if value != "" && !slices.Contains(names, value) {
			names = append(names, value)
		}
	}
	if len(names) == 0 {
		return nil, nil
	}
	return resolver.lookup(ctx, namespace, names)
}

// Misses returns how many looked-up names had no matching term.
func (resolver *Resolver) Misses() int { return resolver.misses }

func (resolver *Resolver) lookup(ctx context.Context, namespace string, names []string) ([]int64, error) {
	var pending []string
	for _, name := range names {
		if _, ok := resolver.cache[cacheKey{namespace, name}]; !ok {
			pending = append(pending, name)
		}
	}

	if len(pending) > 0 {
		terms, err := resolver.repo.FindTerms(ctx, namespace, pending)
		if err != nil {
			return nil, err
		}

		for _, name := range pending {
			resolver.cache[cacheKey{namespace, name}] = []int64{}
		}
		for _, term := range terms {
			key := cacheKey{namespace, term.Name}
			resolver.cache[key] = append(resolver.cache[key], term.ID)
		}
		for _, name := range pending {
			if len(resolver.cache[cacheKey{namespace, name}]) == 0 {
				resolver.report(ctx, namespace, name)
			}
		}
	}

	var ids []int64
	for _, name := range names {
		matched := resolver.cache[cacheKey{namespace, name}]
		if len(matched) == 0 && !slices.Contains(pending, name) {
			resolver.misses++
		}
		ids = append(ids, matched...)
	}

	slices.Sort(ids)
	return slices.Compact(ids), nil
}

// report counts a first-time miss and logs it with the closest known names.
func (resolver *Resolver) report(ctx context.Context, namespace, name string) {
	resolver.misses++

	logger := ctxutil.GetLogger(ctx)
	miss := apperr.TaxonomyMiss(namespace, name)
	logger.WarnContext(ctx, "taxonomy_lookup_miss",
		slog.String("code", miss.Code),
		slog.String("namespace", namespace),
		slog.String("value", name),
		slog.Any("suggestions", resolver.Suggest(ctx, namespace, name)),
	)
}

// Suggest returns up to three known term names closest to value.
func (resolver *Resolver) Suggest(ctx context.Context, namespace, value string) []string {
	known, ok := resolver.names[namespace]
	if !ok {
		var err error
		known, err = resolver.repo.ListTermNames(ctx, namespace)
		if err != nil {
			ctxutil.GetLogger(ctx).DebugContext(ctx, "taxonomy_suggest_failed", slog.Any("error", err))
			return nil
		}
		resolver.names[namespace] = known
	}

	ranks := fuzzy.RankFindNormalizedFold(value, known)
	sort.Sort(ranks)

	suggestions := make([]string, 0, maxSuggestions)
	for _, rank := range ranks {
		if len(suggestions) == maxSuggestions {
			break
		}
		suggestions = append(suggestions, known[rank.OriginalIndex])
	}
	return suggestions
}
