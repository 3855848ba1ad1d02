// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api

import (
	"net/http"

	"github.com/taibuivan/scrolls/internal/importer"
	"github.com/taibuivan/scrolls/internal/platform/respond"
)

// ProgressSource exposes the live counters of a run.
type ProgressSource interface {
	Snapshot() importer.ProgressSnapshot
}

// NewProgressHandler creates the /progress http.HandlerFunc.
func NewProgressHandler(runID string, source ProgressSource) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		respond.OK(writer, map[string]any{
			"run_id":   runID,
			"progress": source.Snapshot(),
		})
	}
}
