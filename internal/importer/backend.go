// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package importer

import (
	"context"
	"errors"

	"github.com/taibuivan/scrolls/internal/core/content"
	"github.com/taibuivan/scrolls/internal/core/taxonomy"
)

// ErrPhaseAborted marks a failure that leaves the current phase unusable,
// e.g. a lost connection. The phase stops and is rolled back.
var ErrPhaseAborted = errors.New("importer: phase aborted")

// Backend is the content store an import run writes to.
type Backend interface {
	// Terms reads vocabulary terms outside of any phase.
	Terms() taxonomy.Repository
	// Phase runs fn in one unit of work, committed when fn returns nil.
	Phase(ctx context.Context, name string, fn func(ctx context.Context, scope Scope) error) error
}

// Scope is the view of the store inside a phase.
type Scope interface {
	Content() content.Repository
	// Savepoint runs fn so that its failure undoes only fn's writes. fn's
	// error is returned unchanged; any other failure wraps [ErrPhaseAborted].
	Savepoint(ctx context.Context, fn func(ctx context.Context) error) error
}
