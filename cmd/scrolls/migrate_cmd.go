// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"github.com/spf13/cobra"

	"github.com/taibuivan/scrolls/internal/platform/migration"
)

func newMigrateCmd(global *globalOptions) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig(cmd, global)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("path") {
				cfg.MigrationPath = path
			}

			result, err := migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log)
			if err != nil {
				return withCode(exitDB, err)
			}
			return writeJSONLine(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "Migrations directory (overrides MIGRATION_PATH)")
	return cmd
}
