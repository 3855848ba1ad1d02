// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package importer

import (
	"sync/atomic"
	"time"

	"github.com/taibuivan/scrolls/internal/core/content"
	"github.com/taibuivan/scrolls/internal/platform/apperr"
)

// Phase names, in run order.
const (
	PhaseIdle  = "idle"
	PhaseReset = "reset"
	PhaseFetch = "fetch"
	PhasePosts = "posts"
	PhaseMeta  = "meta"
	PhaseDone  = "done"
)

// Progress is the live state of a run. It is updated by the run and may be
// read concurrently, e.g. by the status server.
type Progress struct {
	phase      atomic.Value
	rows       atomic.Int64
	records    atomic.Int64
	posts      atomic.Int64
	meta       atomic.Int64
	links      atomic.Int64
	failures   atomic.Int64
	skipped    atomic.Int64
	lastUpdate atomic.Int64
}

// ProgressSnapshot is a point-in-time copy of [Progress].
type ProgressSnapshot struct {
	Phase     string    `json:"phase"`
	RowsRead  int64     `json:"rows_read"`
	Records   int64     `json:"records"`
	Posts     int64     `json:"posts_written"`
	Meta      int64     `json:"meta_written"`
	TermLinks int64     `json:"term_links"`
	Failures  int64     `json:"failures"`
	Skipped   int64     `json:"skipped_rows"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newProgress() *Progress {
	progress := &Progress{}
	progress.setPhase(PhaseIdle)
	return progress
}

func (progress *Progress) setPhase(phase string) {
	progress.phase.Store(phase)
	progress.touch()
}

func (progress *Progress) add(counter *atomic.Int64) int64 {
	n := counter.Add(1)
	progress.touch()
	return n
}

func (progress *Progress) touch() {
	progress.lastUpdate.Store(time.Now().UnixNano())
}

// Snapshot returns the current counters.
func (progress *Progress) Snapshot() ProgressSnapshot {
	phase, _ := progress.phase.Load().(string)
	return ProgressSnapshot{
		Phase:     phase,
		RowsRead:  progress.rows.Load(),
		Records:   progress.records.Load(),
		Posts:     progress.posts.Load(),
		Meta:      progress.meta.Load(),
		TermLinks: progress.links.Load(),
		Failures:  progress.failures.Load(),
		Skipped:   progress.skipped.Load(),
		UpdatedAt: time.Unix(0, progress.lastUpdate.Load()).UTC(),
	}
}

// Report is the summary of a finished run.
type Report struct {
	RunID      string    `json:"run_id"`
	Variant    string    `json:"variant"`
	Mode       Mode      `json:"mode"`
	Files      []string  `json:"files"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`

	RowsRead            int `json:"rows_read"`
	Records             int `json:"records"`
	PostsWritten        int `json:"posts_written"`
	MetaWritten         int `json:"meta_written"`
	TermLinks           int `json:"term_links"`
	RepositoriesCreated int `json:"repositories_created"`
	RepositoriesReused  int `json:"repositories_reused"`
	TaxonomyMisses      int `json:"taxonomy_misses"`
	AmbiguousTitles     int `json:"ambiguous_titles"`

	Reset *content.DeleteResult `json:"reset,omitempty"`

	// Skipped are rows that could not be mapped.
	Skipped []*apperr.AppError `json:"skipped,omitempty"`
	// Failures are writes that failed and need manual remediation.
	Failures []*apperr.AppError `json:"failures,omitempty"`
}

// Partial reports whether any row was skipped or any write failed.
func (report *Report) Partial() bool {
	return len(report.Skipped) > 0 || len(report.Failures) > 0
}
