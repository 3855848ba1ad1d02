// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package importer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/scrolls/internal/core/content"
	"github.com/taibuivan/scrolls/internal/core/taxonomy"
	"github.com/taibuivan/scrolls/internal/platform/ctxutil"
	"github.com/taibuivan/scrolls/internal/platform/postgres"
)

// PostgresBackend runs every phase in its own transaction on the pool.
type PostgresBackend struct {
	pool  *pgxpool.Pool
	terms *taxonomy.PostgresRepository
}

func NewPostgresBackend(pool *pgxpool.Pool) *PostgresBackend {
	return &PostgresBackend{
		pool:  pool,
		terms: taxonomy.NewPostgresRepository(pool),
	}
}

func (backend *PostgresBackend) Terms() taxonomy.Repository { return backend.terms }

func (backend *PostgresBackend) Phase(ctx context.Context, name string, fn func(ctx context.Context, scope Scope) error) error {
	err := postgres.InTx(ctx, backend.pool, func(tx pgx.Tx) error {
		return fn(ctx, &postgresScope{tx: tx, content: content.NewPostgresRepository(tx)})
	})
	if err != nil {
		ctxutil.GetLogger(ctx).ErrorContext(ctx, "phase_rolled_back",
			slog.String("phase", name),
			slog.Any("error", err),
		)
		return fmt.Errorf("%s phase: %w", name, err)
	}
	return nil
}

type postgresScope struct {
	tx      pgx.Tx
	content *content.PostgresRepository
}

func (scope *postgresScope) Content() content.Repository { return scope.content }

func (scope *postgresScope) Savepoint(ctx context.Context, fn func(ctx context.Context) error) error {
	var fnErr error
	err := postgres.InTx(ctx, scope.tx, func(pgx.Tx) error {
		fnErr = fn(ctx)
		return fnErr
	})

	if fnErr != nil {
		return fnErr
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPhaseAborted, err)
	}
	return nil
}
