// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package importer

import (
	"context"
	"log/slog"

	"github.com/taibuivan/scrolls/internal/core/content"
	"github.com/taibuivan/scrolls/internal/core/record"
	"github.com/taibuivan/scrolls/internal/platform/apperr"
	"github.com/taibuivan/scrolls/internal/platform/constants"
	"github.com/taibuivan/scrolls/internal/platform/ctxutil"
)

// WritePosts inserts one entry per fetched record, in input order. Every
// entry of the run carries the same timestamp.
func (importer *Importer) WritePosts(ctx context.Context) error {
	ctx = importer.scope(ctx)
	importer.progress.setPhase(PhasePosts)

	return importer.backend.Phase(ctx, PhasePosts, func(ctx context.Context, scope Scope) error {
		store := scope.Content()

		for _, rec := range importer.records {
			if err := importer.wait(ctx); err != nil {
				return err
			}

			entry := content.NewEntry(rec.Title(), rec.Slug(), constants.TypeScroll, importer.runAt)

			var id int64
			err := scope.Savepoint(ctx, func(ctx context.Context) error {
				var err error
				id, err = store.InsertEntry(ctx, entry)
				return err
			})
			if err != nil {
				if err := importer.fail(ctx, rec, "", err); err != nil {
					return err
				}
				continue
			}

			rec.ContentID = id
			count := importer.progress.add(&importer.progress.posts)
			logProgress(ctx, "posts_progress", count, constants.PostsProgressFloor, constants.ProgressInterval)
		}

		ctxutil.GetLogger(ctx).InfoContext(ctx, "posts_written",
			slog.Int64("count", importer.progress.posts.Load()),
		)
		return nil
	})
}

// WriteMeta writes the metadata and term links of every fetched record. Each
// record's entry is found by title; an entry is never written twice in a run.
func (importer *Importer) WriteMeta(ctx context.Context) error {
	ctx = importer.scope(ctx)
	importer.progress.setPhase(PhaseMeta)

	return importer.backend.Phase(ctx, PhaseMeta, func(ctx context.Context, scope Scope) error {
		visited := make(map[int64]struct{}, len(importer.records))

		for _, rec := range importer.records {
			id, err := importer.lookupEntry(ctx, scope, rec)
			if apperr.HasCode(err, apperr.CodeNotFound) {
				if err := importer.fail(ctx, rec, "", err); err != nil {
					return err
				}
				continue
			}
			if err != nil {
				return err
			}

			if _, seen := visited[id]; seen {
				ctxutil.GetLogger(ctx).DebugContext(ctx, "meta_already_written",
					slog.Int64("id", id),
					slog.String("title", rec.Title()),
				)
				continue
			}
			visited[id] = struct{}{}
			rec.ContentID = id

			if err := importer.writeRecordMeta(ctx, scope, rec, id); err != nil {
				return err
			}
		}

		ctxutil.GetLogger(ctx).InfoContext(ctx, "meta_written",
			slog.Int64("count", importer.progress.meta.Load()),
			slog.Int64("term_links", importer.progress.links.Load()),
		)
		return nil
	})
}

// lookupEntry finds the stored entry of rec by exact title. With several
// matches the first is used and the ambiguity is logged.
func (importer *Importer) lookupEntry(ctx context.Context, scope Scope, rec *record.Record) (int64, error) {
	ids, err := scope.Content().FindIDsByTitle(ctx, rec.Title(), constants.TypeScroll)
	if err != nil {
		return 0, err
	}

	switch len(ids) {
	case 0:
		return 0, apperr.NotFound("Entry")
	case 1:
		return ids[0], nil
	}

	importer.report.AmbiguousTitles++
	ambiguous := apperr.AmbiguousTitle(rec.Title(), len(ids))
	ctxutil.GetLogger(ctx).WarnContext(ctx, "entry_title_ambiguous",
		slog.String("code", ambiguous.Code),
		slog.String("title", rec.Title()),
		slog.Any("ids", ids),
	)
	return ids[0], nil
}

func (importer *Importer) writeRecordMeta(ctx context.Context, scope Scope, rec *record.Record, id int64) error {
	store := scope.Content()

	for _, field := range rec.MetaFields() {
		if err := importer.wait(ctx); err != nil {
			return err
		}

		value := field.Value.Serialize()
		err := scope.Savepoint(ctx, func(ctx context.Context) error {
			return store.AddMeta(ctx, id, field.Name, value)
		})
		if err != nil {
			if err := importer.fail(ctx, rec, field.Name, err); err != nil {
				return err
			}
			continue
		}

		count := importer.progress.add(&importer.progress.meta)
		logProgress(ctx, "meta_progress", count, constants.MetaProgressFloor, constants.ProgressInterval)

		if err := importer.writeTermLinks(ctx, scope, rec, id, field); err != nil {
			return err
		}
	}
	return nil
}

// writeTermLinks links the entry to every resolved term of a related field.
func (importer *Importer) writeTermLinks(ctx context.Context, scope Scope, rec *record.Record, id int64, field record.Field) error {
	rule, ok := importer.variant.Taxonomy(field.Name)
	if !ok || !rule.Relate || field.Value.Kind != record.KindTerms {
		return nil
	}

	for _, termID := range field.Value.IDs {
		err := scope.Savepoint(ctx, func(ctx context.Context) error {
			return scope.Content().AddTermRelationship(ctx, id, termID, rule.Namespace)
		})
		if err != nil {
			if err := importer.fail(ctx, rec, field.Name, err); err != nil {
				return err
			}
			continue
		}
		importer.progress.add(&importer.progress.links)
	}
	return nil
}
