// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/scrolls/internal/platform/apperr"
	"github.com/taibuivan/scrolls/internal/platform/constants"
)

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), err
}

/*
TestExitCode verifies the mapping from errors to process exit codes.
*/
func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "Success", err: nil, want: exitOK},
		{name: "Plain error", err: errors.New("boom"), want: exitGeneric},
		{name: "Coded", err: withCode(exitDB, errors.New("down")), want: exitDB},
		{name: "Wrapped coded", err: fmt.Errorf("run: %w", withCode(exitPartial, errors.New("2 failures"))), want: exitPartial},
		{name: "Validation", err: classify(apperr.ValidationError("bad input")), want: exitUsage},
		{name: "Run locked", err: classify(apperr.RunLocked("other-run")), want: exitGeneric},
		{name: "Phase failure", err: classify(errors.New("commit failed")), want: exitDB},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}

	assert.NoError(t, withCode(exitDB, nil))
	assert.NoError(t, classify(nil))
}

/*
TestVariantsCmd verifies that every variant is printed as one JSON line.
*/
func TestVariantsCmd(t *testing.T) {
	schema := filepath.Join(t.TempDir(), "variants.yaml")
	content := `
variants:
  - name: minimal
    column_count: 2
    columns:
      - field: shelfmark
        index: 0
      - field: repository
        index: 1
    title:
      fields: [repository, shelfmark]
      primary: shelfmark
`
	require.NoError(t, os.WriteFile(schema, []byte(content), 0o600))

	stdout, err := execute(t, "variants", "--schema-file", schema)
	require.NoError(t, err)

	var lines []variantSummary
	decoder := json.NewDecoder(bytes.NewBufferString(stdout))
	for decoder.More() {
		var line variantSummary
		require.NoError(t, decoder.Decode(&line))
		lines = append(lines, line)
	}

	require.Len(t, lines, 3)
	assert.Equal(t, "catalogue", lines[0].Name)
	assert.Equal(t, 29, lines[0].ColumnCount)
	assert.Equal(t, "inventory", lines[1].Name)
	assert.Equal(t, 17, lines[1].MinColumns)
	assert.Equal(t, "minimal", lines[2].Name)
	assert.Equal(t, []string{"repository", "shelfmark"}, lines[2].Title)
}

/*
TestImportCmd_Usage verifies that configuration mistakes stop the run
before any connection is made.
*/
func TestImportCmd_Usage(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "missing.env")

	tests := []struct {
		name        string
		databaseURL string
		args        []string
	}{
		{name: "Missing database URL", args: []string{"import"}},
		{name: "Unknown mode", databaseURL: "postgres://localhost/scrolls", args: []string{"import", "--mode", "titles"}},
		{name: "Unknown variant", databaseURL: "postgres://localhost/scrolls", args: []string{"import", "--variant", "ledger"}},
		{name: "Unknown flag", databaseURL: "postgres://localhost/scrolls", args: []string{"import", "--dry-run"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DATABASE_URL", tt.databaseURL)
			if tt.databaseURL == "" {
				require.NoError(t, os.Unsetenv("DATABASE_URL"))
			}

			stdout, err := execute(t, append(tt.args, "--env-file", envFile)...)
			require.Error(t, err)
			assert.Equal(t, exitUsage, exitCode(err))
			assert.Empty(t, stdout)
		})
	}
}

/*
TestResetCmd_RequiresConfirmation verifies that reset refuses to run without --yes.
*/
func TestResetCmd_RequiresConfirmation(t *testing.T) {
	_, err := execute(t, "reset")

	require.ErrorIs(t, err, errResetNotConfirmed)
	assert.Equal(t, exitUsage, exitCode(err))
}

/*
TestNewLogger verifies the level and source settings of the JSON logger.
*/
func TestNewLogger(t *testing.T) {
	tests := []struct {
		name        string
		debug       bool
		development bool
		wantDebug   bool
		wantSource  bool
	}{
		{name: "Production", debug: false, development: false, wantDebug: false, wantSource: false},
		{name: "Debug", debug: true, development: false, wantDebug: true, wantSource: false},
		{name: "Development", debug: false, development: true, wantDebug: false, wantSource: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			log := newLogger(&out, tt.debug, tt.development)

			log.Debug("debug_line")
			assert.Equal(t, tt.wantDebug, strings.Contains(out.String(), "debug_line"))

			out.Reset()
			log.Info("info_line")

			var entry map[string]any
			require.NoError(t, json.Unmarshal(out.Bytes(), &entry))
			assert.Equal(t, constants.AppName, entry["app"])
			_, hasSource := entry["source"]
			assert.Equal(t, tt.wantSource, hasSource)
		})
	}
}
