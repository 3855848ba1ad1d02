// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/taibuivan/scrolls/internal/core/library"
	"github.com/taibuivan/scrolls/internal/core/record"
	"github.com/taibuivan/scrolls/internal/core/title"
	"github.com/taibuivan/scrolls/internal/platform/apperr"
	"github.com/taibuivan/scrolls/internal/platform/constants"
	"github.com/taibuivan/scrolls/internal/platform/ctxutil"
)

// Fetch reads every input file under inputPath into enriched records.
// Repository entries met for the first time are created in this phase.
func (importer *Importer) Fetch(ctx context.Context, inputPath string) error {
	ctx = importer.scope(ctx)
	importer.progress.setPhase(PhaseFetch)

	files, err := CollectFiles(inputPath)
	if err != nil {
		return err
	}
	importer.report.Files = files

	return importer.backend.Phase(ctx, PhaseFetch, func(ctx context.Context, scope Scope) error {
		repositories := library.NewResolver(scope.Content(), importer.terms, importer.runAt)

		for _, path := range files {
			if err := importer.fetchFile(ctx, scope, repositories, path); err != nil {
				return err
			}
		}

		stats := repositories.Stats()
		importer.report.RepositoriesCreated = stats.Created
		importer.report.RepositoriesReused = stats.Reused
		importer.report.AmbiguousTitles += stats.Ambiguous

		ctxutil.GetLogger(ctx).InfoContext(ctx, "fetch_finished",
			slog.Int("files", len(files)),
			slog.Int("records", len(importer.records)),
			slog.Int("repositories_created", stats.Created),
			slog.Int("taxonomy_misses", importer.terms.Misses()),
		)
		return nil
	})
}

func (importer *Importer) fetchFile(ctx context.Context, scope Scope, repositories *library.Resolver, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	ctxutil.GetLogger(ctx).InfoContext(ctx, "file_started", slog.String("source", path))
	reader := newRowReader(file)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		row, line, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}

		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			importer.progress.add(&importer.progress.rows)
			importer.skip(ctx, apperr.MalformedRow(path, parseErr.StartLine, parseErr.Err))
			continue
		}
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		importer.progress.add(&importer.progress.rows)

		rec, err := importer.variant.Map(path, line, row)
		if err != nil {
			if ae := apperr.As(err); ae != nil && ae.Code == apperr.CodeMalformedRow {
				importer.skip(ctx, ae)
				continue
			}
			return err
		}

		if err := importer.enrich(ctx, scope, repositories, rec); err != nil {
			return err
		}

		importer.records = append(importer.records, rec)
		importer.progress.add(&importer.progress.records)
	}
}

// enrich assigns the record's title and replaces raw values with resolved
// terms and the repository reference.
func (importer *Importer) enrich(ctx context.Context, scope Scope, repositories *library.Resolver, rec *record.Record) error {
	variant := importer.variant

	if _, err := title.Generate(rec, variant.Title, importer.titles); err != nil {
		return err
	}
	if variant.MirrorTitle {
		rec.Set(constants.MetaTitle, record.Text(rec.Title()))
	}

	for _, rule := range variant.Taxonomies {
		value, ok := rec.Get(rule.Field)
		if !ok {
			continue
		}

		var ids []int64
		var err error
		if value.Kind == record.KindList {
			ids, err = importer.terms.ResolveAll(ctx, rule.Namespace, value.Items)
		} else {
			ids, err = importer.terms.Resolve(ctx, rule.Namespace, value.Text)
		}
		if err != nil {
			return err
		}
		rec.Set(rule.Field, record.Terms(ids))
	}

	rule := variant.Repository
	if rule == nil {
		return nil
	}

	holder := library.Holder{
		Name:   rec.Text(rule.Name),
		City:   rec.Text(rule.City),
		Nation: rec.Text(rule.Nation),
	}

	var reference record.Value
	err := scope.Savepoint(ctx, func(ctx context.Context) error {
		var err error
		reference, err = repositories.Resolve(ctx, holder)
		return err
	})
	if err != nil {
		if err := importer.fail(ctx, rec, rule.Target, err); err != nil {
			return err
		}
		reference = record.Value{Kind: record.KindReference}
	} else if reference.IsEmpty() {
		ctxutil.GetLogger(ctx).DebugContext(ctx, "repository_missing",
			slog.String("title", rec.Title()),
			slog.String("source", rec.Source),
			slog.Int("line", rec.Line),
		)
	}

	rec.Set(rule.Target, reference)
	return nil
}
