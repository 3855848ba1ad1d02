// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/taibuivan/scrolls/internal/api"
	"github.com/taibuivan/scrolls/internal/core/record"
	"github.com/taibuivan/scrolls/internal/importer"
	"github.com/taibuivan/scrolls/internal/platform/config"
	"github.com/taibuivan/scrolls/internal/platform/constants"
	"github.com/taibuivan/scrolls/internal/platform/migration"
	pgstore "github.com/taibuivan/scrolls/internal/platform/postgres"
	redisstore "github.com/taibuivan/scrolls/internal/platform/redis"
)

// loadConfig builds the logger and reads the configuration.
func loadConfig(cmd *cobra.Command, global *globalOptions) (*config.Config, *slog.Logger, error) {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	log := newLogger(cmd.ErrOrStderr(), false, false)

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load(global.envFile)
	if err != nil {
		log.Error("startup_failure", slog.String("context", "load configuration"), slog.Any("error", err))
		return nil, nil, withCode(exitUsage, err)
	}

	if cfg.Debug || cfg.IsDevelopment() {
		log = newLogger(cmd.ErrOrStderr(), cfg.Debug, cfg.IsDevelopment())
		log.Debug("debug_logging_enabled")
	}
	slog.SetDefault(log)

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("variant", cfg.SchemaVariant),
	)
	return cfg, log, nil
}

// resolveVariant looks up the configured variant among the built-ins and
// the optional schema file.
func resolveVariant(cfg *config.Config) (*record.Variant, error) {
	registry := record.NewRegistry()
	if cfg.SchemaFile != "" {
		if err := registry.LoadFile(cfg.SchemaFile); err != nil {
			return nil, withCode(exitUsage, err)
		}
	}

	variant, err := registry.Lookup(cfg.SchemaVariant)
	if err != nil {
		return nil, withCode(exitUsage, err)
	}
	return variant, nil
}

// runtime holds the connections of one command invocation.
type runtime struct {
	cfg   *config.Config
	log   *slog.Logger
	runID string

	pool  *pgxpool.Pool
	redis *goredis.Client
	lock  *redisstore.Lock
}

// connect opens the store and, when configured, migrates it and takes the
// run lock for runID.
func connect(ctx context.Context, cfg *config.Config, log *slog.Logger, runID string) (*runtime, error) {
	// Use a startup deadline so misconfiguration is caught quickly rather
	// than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(ctx, constants.StartupTimeout)
	defer startupCancel()

	rt := &runtime{cfg: cfg, log: log, runID: runID}

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	if err != nil {
		return nil, withCode(exitDB, err)
	}
	rt.pool = pool

	// ── 4. Migrations ─────────────────────────────────────────────────────
	if cfg.RunMigrations {
		if _, err := migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log); err != nil {
			rt.Close()
			return nil, withCode(exitDB, err)
		}
	}

	// ── 5. Redis Run Lock ─────────────────────────────────────────────────
	if cfg.LockEnabled() {
		client, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		if err != nil {
			rt.Close()
			return nil, withCode(exitGeneric, err)
		}
		rt.redis = client

		lock, err := redisstore.AcquireLock(startupCtx, client, constants.RunLockKey, runID, constants.RunLockTTL)
		if err != nil {
			rt.Close()
			return nil, withCode(exitGeneric, err)
		}
		rt.lock = lock
		log.Info("run_lock_acquired", slog.String("key", constants.RunLockKey), slog.String("run_id", runID))
	}

	return rt, nil
}

// Close releases the lock and closes every connection.
func (rt *runtime) Close() {
	if rt.lock != nil {
		ctx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
		if err := rt.lock.Release(ctx); err != nil {
			rt.log.Error("run_lock_release_failed", slog.Any("error", err))
		}
		cancel()
	}

	if rt.redis != nil {
		rt.log.Info("closing redis client")
		if err := rt.redis.Close(); err != nil {
			rt.log.Error("redis close error", slog.Any("error", err))
		}
	}

	if rt.pool != nil {
		rt.log.Info("closing postgres pool")
		rt.pool.Close()
	}
}

// serveStatus starts the status server for run when STATUS_ADDR is set and
// returns the function that stops it.
func (rt *runtime) serveStatus(run *importer.Importer) func() {
	if !rt.cfg.StatusEnabled() {
		return func() {}
	}

	dependencies := api.HealthDependencies{
		CheckDatabase: func(ctx context.Context) error {
			return pgstore.Ping(ctx, rt.pool)
		},
	}
	if rt.redis != nil {
		dependencies.CheckLock = func(ctx context.Context) error {
			return redisstore.Ping(ctx, rt.redis)
		}
	}
	liveness, readiness := api.NewHealthHandlers(dependencies, rt.log)

	server := api.NewServer(rt.cfg.StatusAddr, rt.log, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Progress:  api.NewProgressHandler(run.RunID(), run.Progress()),
	})

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			rt.log.Error("status_server_failed", slog.Any("error", err))
		}
	}()

	return func() {
		if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
			rt.log.Error("status_server_shutdown_failed", slog.Any("error", err))
		}
	}
}
