// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxkey defines typed context keys shared across the importer.
//
// # Safety
//
// It is used to store and retrieve per-run values (run ID, logger) and
// per-request values of the status server (request ID).
// Using a private, unexported type for keys prevents collisions with third-party
// packages that might also use context for storage.
package ctxkey

// key is an unexported type used for context keys to ensure type safety.
type key string

const (
	// KeyRunID is the context key for the import run identifier.
	KeyRunID key = "run_id"

	// KeyRequestID is the context key for the status server's X-Request-ID value.
	KeyRequestID key = "request_id"

	// KeyLogger is the context key for the run- or request-scoped [*log/slog.Logger].
	KeyLogger key = "logger"
)
