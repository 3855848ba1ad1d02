// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides centralized, immutable values for the entire importer.

It defines the fixed attributes stamped on every imported entry, progress
reporting cadence, timeouts and cross-cutting keys shared between layers.

Categories:

  - Content: Author, status and types of the entries the importer manages.
  - Progress: How often long phases report.
  - Timing: Startup, status server and lock timeouts.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "scrolls-importer"
	AppVersion = "0.1.0-dev"
)

// # Content

const (
	// AuthorID is the fixed author of every imported entry.
	AuthorID int64 = 1

	// StatusPublish is the status of every imported entry.
	StatusPublish = "publish"

	// TypeScroll is the content type of a manuscript fragment.
	TypeScroll = "scroll"

	// TypeRepository is the content type of a holding institution.
	TypeRepository = "repository"

	// SequenceBaseline is the first entry id issued after a reset.
	SequenceBaseline int64 = 100

	// StatusAutoDraft marks editor drafts removed by a reset.
	StatusAutoDraft = "auto-draft"
)

// ManagedTypes are the content types a reset deletes. "scrolls" is a legacy
// type name still present in older databases.
var ManagedTypes = []string{TypeScroll, "scrolls", TypeRepository}

// # Metadata Keys

const (
	// MetaTitle mirrors the entry title into metadata.
	MetaTitle = "meta_title"

	// MetaNation is the repository nation taxonomy field.
	MetaNation = "nation"

	// MetaCity is the repository city field.
	MetaCity = "city"
)

// # Taxonomy Namespaces

const (
	TaxonomyCountry     = "country"
	TaxonomyQuality     = "quality"
	TaxonomyLanguage    = "language"
	TaxonomyOrientation = "orientation"
	TaxonomyType        = "type"
)

// # Progress

const (
	// PostsProgressFloor is the count after which post inserts start reporting.
	PostsProgressFloor = 1000

	// MetaProgressFloor is the count after which metadata writes start reporting.
	MetaProgressFloor = 100

	// ProgressInterval is the reporting cadence once past the floor.
	ProgressInterval = 100
)

// # Timing

const (
	// StartupTimeout bounds connecting to the store and the lock service.
	StartupTimeout = 30 * time.Second

	// StatementTimeout is the per-statement deadline set on every connection.
	StatementTimeout = 60 * time.Second

	// RunLockTTL is how long the run lock survives a crashed importer.
	RunLockTTL = 6 * time.Hour

	// DefaultReadTimeout is the status server's request read deadline.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the status server's response write deadline.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// ShutdownTimeout is how long the status server drains on exit.
	ShutdownTimeout = 5 * time.Second
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
)

// # Lock Keys

const (
	// RunLockKey guards the single-writer assumption of repository find-or-create.
	RunLockKey = "scrolls:import:lock"
)
