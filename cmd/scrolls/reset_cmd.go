// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/taibuivan/scrolls/internal/importer"
	"github.com/taibuivan/scrolls/pkg/uuid"
)

var errResetNotConfirmed = errors.New("reset deletes every imported entry; pass --yes to confirm")

func newResetCmd(global *globalOptions) *cobra.Command {
	var confirmed bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete previously imported content and restart entry ids",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirmed {
				return withCode(exitUsage, errResetNotConfirmed)
			}
			return runReset(cmd, global)
		},
	}

	cmd.Flags().BoolVar(&confirmed, "yes", false, "Confirm the destructive reset")
	return cmd
}

func runReset(cmd *cobra.Command, global *globalOptions) error {
	cfg, log, err := loadConfig(cmd, global)
	if err != nil {
		return err
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

	run := importer.New(importer.NewPostgresBackend(rt.pool), variant, log, importer.WithRunID(runID))

	resetErr := run.Reset(ctx)
	if err := writeJSONLine(cmd.OutOrStdout(), run.Summary()); err != nil {
		return err
	}
	return classify(resetErr)
}
