// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package importer

import (
	"context"
	"errors"
	"log/slog"

	"github.com/taibuivan/scrolls/internal/platform/constants"
	"github.com/taibuivan/scrolls/internal/platform/ctxutil"
)

// Reset deletes every previously imported entry, its metadata and its term
// links, then restarts entry ids at the baseline. The deletes are
// all-or-nothing; a failed id restart is logged and tolerated.
func (importer *Importer) Reset(ctx context.Context) error {
	ctx = importer.scope(ctx)
	importer.progress.setPhase(PhaseReset)

	return importer.backend.Phase(ctx, PhaseReset, func(ctx context.Context, scope Scope) error {
		logger := ctxutil.GetLogger(ctx)
		store := scope.Content()

		result, err := store.DeleteManaged(ctx, constants.ManagedTypes)
		if err != nil {
			return err
		}
		importer.report.Reset = &result

		err = scope.Savepoint(ctx, func(ctx context.Context) error {
			return store.ResetSequence(ctx, constants.SequenceBaseline)
		})
		if errors.Is(err, ErrPhaseAborted) {
			return err
		}
		if err != nil {
			logger.WarnContext(ctx, "sequence_reset_failed", slog.Any("error", err))
		}

		logger.InfoContext(ctx, "reset_finished",
			slog.Int64("entries", result.Entries),
			slog.Int64("meta", result.Meta),
			slog.Int64("relationships", result.Relationships),
		)
		return nil
	})
}
