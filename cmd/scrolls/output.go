// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/taibuivan/scrolls/internal/platform/constants"
)

func writeJSONLine(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return withCode(exitGeneric, fmt.Errorf("json encode: %w", err))
	}
	return nil
}

// newLogger builds the JSON logger. Logs go to stderr so stdout only carries
// the report line. Development runs also record the source location.
func newLogger(out io.Writer, debug, development bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{
		Level:     level,
		AddSource: development,
	})).With(slog.String("app", constants.AppName))
}
