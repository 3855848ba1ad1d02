// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package library

import (
	"context"
	"log/slog"
	"time"

	"github.com/taibuivan/scrolls/internal/core/content"
	"github.com/taibuivan/scrolls/internal/core/record"
	"github.com/taibuivan/scrolls/internal/platform/apperr"
	"github.com/taibuivan/scrolls/internal/platform/constants"
	"github.com/taibuivan/scrolls/internal/platform/ctxutil"
	"github.com/taibuivan/scrolls/pkg/slug"
)

// EntryStore is the part of the content store the resolver writes through.
type EntryStore interface {
	InsertEntry(context context.Context, entry content.Entry) (int64, error)
	FindIDsByTitle(context context.Context, title, entryType string) ([]int64, error)
	AddMeta(context context.Context, entryID int64, key, value string) error
}

// TermResolver resolves the repository's nation to country terms.
type TermResolver interface {
	Resolve(ctx context.Context, namespace, value string) ([]int64, error)
}

// Stats counts what the resolver did during a run.
type Stats struct {
	Created   int `json:"created"`
	Reused    int `json:"reused"`
	Ambiguous int `json:"ambiguous"`
}

// Resolver finds or creates repository entries, remembering every title it
// resolved so each holder costs at most one lookup per run.
//
// # Concurrency
//
// Resolver is not safe for concurrent use.
type Resolver struct {
	store EntryStore
	terms TermResolver
	now   time.Time
	known map[string]int64
	stats Stats
}

// NewResolver creates a Resolver. New entries are stamped with now.
func NewResolver(store EntryStore, terms TermResolver, now time.Time) *Resolver {
	return &Resolver{
		store: store,
		terms: terms,
		now:   now,
		known: make(map[string]int64),
	}
}

// Resolve returns a reference to the holder's repository entry. A holder
// without a name resolves to an empty reference.
func (resolver *Resolver) Resolve(ctx context.Context, holder Holder) (record.Value, error) {
	if holder.Name == "" {
		return record.Value{Kind: record.KindReference}, nil
	}

	title := Title(holder.Name, holder.City)
	if id, ok := resolver.known[title]; ok {
		resolver.stats.Reused++
		return record.Reference(id), nil
	}

	ids, err := resolver.store.FindIDsByTitle(ctx, title, constants.TypeRepository)
	if err != nil {
		return record.Value{}, err
	}

	var id int64
	if len(ids) > 0 {
		if len(ids) > 1 {
			resolver.stats.Ambiguous++
			ambiguous := apperr.AmbiguousTitle(title, len(ids))
			ctxutil.GetLogger(ctx).WarnContext(ctx, "repository_title_ambiguous",
				slog.String("code", ambiguous.Code),
				slog.String("title", title),
				slog.Any("ids", ids),
			)
		}
		id = ids[0]
		resolver.stats.Reused++
	} else {
		id, err = resolver.create(ctx, title, holder)
		if err != nil {
			return record.Value{}, err
		}
		resolver.stats.Created++
	}

	resolver.known[title] = id
	return record.Reference(id), nil
}

// Stats returns the counters accumulated so far.
func (resolver *Resolver) Stats() Stats { return resolver.stats }

func (resolver *Resolver) create(ctx context.Context, title string, holder Holder) (int64, error) {
	entry := content.NewEntry(title, slug.From(title), constants.TypeRepository, resolver.now)
	id, err := resolver.store.InsertEntry(ctx, entry)
	if err != nil {
		return 0, apperr.StoreWrite(title, "", err)
	}

	nation, err := resolver.terms.Resolve(ctx, constants.TaxonomyCountry, CountryName(holder.Nation))
	if err != nil {
		return 0, err
	}

	meta := []struct{ key, value string }{
		{constants.MetaNation, record.Terms(nation).Serialize()},
		{constants.MetaCity, holder.City},
	}
	for _, m := range meta {
		if err := resolver.store.AddMeta(ctx, id, m.key, m.value); err != nil {
			return 0, apperr.StoreWrite(title, m.key, err)
		}
	}

	ctxutil.GetLogger(ctx).InfoContext(ctx, "repository_created",
		slog.Int64("id", id),
		slog.String("title", title),
		slog.String("nation", holder.Nation),
	)
	return id, nil
}
