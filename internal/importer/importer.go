// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package importer runs a scrolls CSV import into the content store.

A run moves through up to four phases, each one unit of work:

  - reset: delete previously imported entries (only when requested)
  - fetch: map every row, assign titles, resolve taxonomy and repositories
  - posts: insert one entry per record, in input order
  - meta: look every entry up by title again and write its metadata and term links

The meta phase finds entries by title rather than carrying ids forward, so it
can run on its own against entries written by an earlier run.

Row-level problems (malformed rows, failed writes) never stop a run; they are
collected into the [Report]. Only store-level failures abort.
*/
package importer

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/taibuivan/scrolls/internal/core/record"
	"github.com/taibuivan/scrolls/internal/core/taxonomy"
	"github.com/taibuivan/scrolls/internal/core/title"
	"github.com/taibuivan/scrolls/internal/platform/apperr"
	"github.com/taibuivan/scrolls/internal/platform/ctxutil"
	"github.com/taibuivan/scrolls/pkg/uuid"
)

// Mode selects which write phases a run performs.
type Mode string

const (
	ModeFull  Mode = "full"
	ModePosts Mode = "posts"
	ModeMeta  Mode = "meta"
)

// Modes lists the accepted modes.
var Modes = []string{string(ModeFull), string(ModePosts), string(ModeMeta)}

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeFull, ModePosts, ModeMeta:
		return Mode(s), nil
	default:
		return "", apperr.ValidationError("unknown import mode", apperr.FieldError{
			Field:   "mode",
			Message: "Must be one of: full, posts, meta",
		})
	}
}

// Option configures an [Importer].
type Option func(*Importer)

// WithClock replaces the clock used for the run timestamp.
func WithClock(now func() time.Time) Option {
	return func(importer *Importer) { importer.clock = now }
}

// WithWriteLimit caps store writes per second. Zero or less means unlimited.
func WithWriteLimit(perSecond float64) Option {
	return func(importer *Importer) {
		if perSecond > 0 {
			importer.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
		}
	}
}

// WithRunID sets the run identifier instead of generating one.
func WithRunID(id string) Option {
	return func(importer *Importer) { importer.runID = id }
}

// Importer holds the state of one run. It must not be reused across runs.
type Importer struct {
	backend  Backend
	variant  *record.Variant
	logger   *slog.Logger
	clock    func() time.Time
	limiter  *rate.Limiter
	runID    string
	runAt    time.Time
	terms    *taxonomy.Resolver
	titles   *title.Set
	records  []*record.Record
	progress *Progress
	report   *Report
}

// New creates an Importer for one run over variant's layout.
func New(backend Backend, variant *record.Variant, logger *slog.Logger, opts ...Option) *Importer {
	importer := &Importer{
		backend:  backend,
		variant:  variant,
		logger:   logger,
		clock:    time.Now,
		limiter:  rate.NewLimiter(rate.Inf, 1),
		terms:    taxonomy.NewResolver(backend.Terms()),
		titles:   title.NewSet(),
		progress: newProgress(),
	}
	for _, opt := range opts {
		opt(importer)
	}
	if importer.runID == "" {
		importer.runID = uuid.New()
	}

	importer.runAt = importer.clock()
	importer.report = &Report{
		RunID:     importer.runID,
		Variant:   variant.Name,
		StartedAt: importer.runAt,
	}
	return importer
}

// RunID returns the run identifier.
func (importer *Importer) RunID() string { return importer.runID }

// Progress returns the live progress of the run.
func (importer *Importer) Progress() *Progress { return importer.progress }

// Records returns the records fetched so far.
func (importer *Importer) Records() []*record.Record { return importer.records }

// Summary closes the run and returns its report. Use it after calling the
// phases directly instead of Run.
func (importer *Importer) Summary() *Report { return importer.finish() }

// Run performs a complete import of inputPath and returns its report. The
// report is returned even when the run fails part way.
func (importer *Importer) Run(ctx context.Context, inputPath string, reset bool, mode Mode) (*Report, error) {
	ctx = importer.scope(ctx)
	logger := ctxutil.GetLogger(ctx)
	importer.report.Mode = mode

	logger.InfoContext(ctx, "import_started",
		slog.String("input", inputPath),
		slog.String("variant", importer.variant.Name),
		slog.String("mode", string(mode)),
		slog.Bool("reset", reset),
	)

	err := importer.run(ctx, inputPath, reset, mode)
	report := importer.finish()

	if err != nil {
		logger.ErrorContext(ctx, "import_failed", slog.Any("error", err))
		return report, err
	}

	logger.InfoContext(ctx, "import_finished",
		slog.Int("records", report.Records),
		slog.Int("posts_written", report.PostsWritten),
		slog.Int("meta_written", report.MetaWritten),
		slog.Int("skipped", len(report.Skipped)),
		slog.Int("failures", len(report.Failures)),
		slog.Duration("elapsed", report.FinishedAt.Sub(report.StartedAt)),
	)
	return report, nil
}

func (importer *Importer) run(ctx context.Context, inputPath string, reset bool, mode Mode) error {
	if reset {
		if err := importer.Reset(ctx); err != nil {
			return err
		}
	}

	if err := importer.Fetch(ctx, inputPath); err != nil {
		return err
	}

	if mode == ModeFull || mode == ModePosts {
		if err := importer.WritePosts(ctx); err != nil {
			return err
		}
	}
	if mode == ModeFull || mode == ModeMeta {
		if err := importer.WriteMeta(ctx); err != nil {
			return err
		}
	}
	return nil
}

// scope attaches the run id and a run logger to ctx.
func (importer *Importer) scope(ctx context.Context) context.Context {
	if ctxutil.GetRunID(ctx) == importer.runID {
		return ctx
	}
	ctx = ctxutil.WithRunID(ctx, importer.runID)
	return ctxutil.WithLogger(ctx, importer.logger.With(slog.String("run_id", importer.runID)))
}

func (importer *Importer) finish() *Report {
	snapshot := importer.progress.Snapshot()
	report := importer.report

	report.FinishedAt = importer.clock()
	report.RowsRead = int(snapshot.RowsRead)
	report.Records = len(importer.records)
	report.PostsWritten = int(snapshot.Posts)
	report.MetaWritten = int(snapshot.Meta)
	report.TermLinks = int(snapshot.TermLinks)
	report.TaxonomyMisses = importer.terms.Misses()

	importer.progress.setPhase(PhaseDone)
	return report
}

// wait applies the write limit before a store write.
func (importer *Importer) wait(ctx context.Context) error {
	return importer.limiter.Wait(ctx)
}

// skip records a row that could not be mapped.
func (importer *Importer) skip(ctx context.Context, err *apperr.AppError) {
	importer.report.Skipped = append(importer.report.Skipped, err)
	importer.progress.add(&importer.progress.skipped)

	ctxutil.GetLogger(ctx).WarnContext(ctx, "row_skipped",
		slog.String("code", err.Code),
		slog.String("source", err.Source),
		slog.Int("line", err.Line),
		slog.Any("error", err.Cause),
	)
}

// fail records a write that failed and lets the run continue, unless the
// phase itself is broken.
func (importer *Importer) fail(ctx context.Context, rec *record.Record, field string, err error) error {
	if errors.Is(err, ErrPhaseAborted) || ctx.Err() != nil {
		return err
	}

	failure := apperr.StoreWrite(rec.Title(), field, err)
	failure.Source, failure.Line = rec.Source, rec.Line
	if ae := apperr.As(err); ae != nil && ae.Code == apperr.CodeNotFound {
		// ae may be a shared sentinel such as dberr.ErrNotFound.
		copied := *ae
		copied.Title, copied.Field = rec.Title(), field
		copied.Source, copied.Line = rec.Source, rec.Line
		failure = &copied
	}

	importer.report.Failures = append(importer.report.Failures, failure)
	importer.progress.add(&importer.progress.failures)

	ctxutil.GetLogger(ctx).ErrorContext(ctx, "record_write_failed",
		slog.String("code", failure.Code),
		slog.String("title", rec.Title()),
		slog.String("field", field),
		slog.String("source", rec.Source),
		slog.Int("line", rec.Line),
		slog.Any("error", err),
	)
	return nil
}

// logProgress reports every interval writes once count reaches floor.
func logProgress(ctx context.Context, event string, count int64, floor, interval int64) {
	if count >= floor && count%interval == 0 {
		ctxutil.GetLogger(ctx).InfoContext(ctx, event, slog.Int64("count", count))
	}
}
