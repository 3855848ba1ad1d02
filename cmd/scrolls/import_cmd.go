// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taibuivan/scrolls/internal/importer"
	"github.com/taibuivan/scrolls/pkg/uuid"
)

type importOptions struct {
	input   string
	variant string
	mode    string
	reset   bool
}

func newImportCmd(global *globalOptions) *cobra.Command {
	var opts importOptions

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import scroll CSV files into the content database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, global, opts)
		},
	}

	cmd.Flags().StringVar(&opts.input, "input", "", "CSV file or directory searched for *.csv (overrides INPUT_PATH)")
	cmd.Flags().StringVar(&opts.variant, "variant", "", "Schema variant (overrides SCHEMA_VARIANT)")
	cmd.Flags().StringVar(&opts.mode, "mode", "", "Mode: full, posts or meta (overrides IMPORT_MODE)")
	cmd.Flags().BoolVar(&opts.reset, "reset", false, "Delete previously imported content first (overrides RESET)")
	return cmd
}

func runImport(cmd *cobra.Command, global *globalOptions, opts importOptions) error {
	cfg, log, err := loadConfig(cmd, global)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.InputPath = opts.input
	}
	if flags.Changed("variant") {
		cfg.SchemaVariant = opts.variant
	}
	if flags.Changed("mode") {
		cfg.Mode = opts.mode
	}
	if flags.Changed("reset") {
		cfg.Reset = opts.reset
	}

	mode, err := importer.ParseMode(cfg.Mode)
	if err != nil {
		return withCode(exitUsage, err)
	}
	variant, err := resolveVariant(cfg)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	runID := uuid.New()

	rt, err := connect(ctx, cfg, log, runID)
	if err != nil {
		return err
	}
	defer rt.Close()

	// ── 6. Importer ───────────────────────────────────────────────────────
	run := importer.New(importer.NewPostgresBackend(rt.pool), variant, log,
		importer.WithRunID(runID),
		importer.WithWriteLimit(cfg.MaxWritesPerSecond),
	)

	stopStatus := rt.serveStatus(run)
	defer stopStatus()

	report, runErr := run.Run(ctx, cfg.InputPath, cfg.Reset, mode)
	if err := writeJSONLine(cmd.OutOrStdout(), report); err != nil {
		return err
	}
	if runErr != nil {
		return classify(runErr)
	}

	if report.Partial() {
		return withCode(exitPartial, fmt.Errorf("import finished with %d skipped rows and %d failed writes",
			len(report.Skipped), len(report.Failures)))
	}
	return nil
}
