// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/taibuivan/scrolls/internal/core/record"
)

// variantSummary is one output line of the variants command.
type variantSummary struct {
	Name        string   `json:"name"`
	ColumnCount int      `json:"column_count"`
	MinColumns  int      `json:"min_columns"`
	Title       []string `json:"title"`
}

func newVariantsCmd() *cobra.Command {
	var schemaFile string

	cmd := &cobra.Command{
		Use:   "variants",
		Short: "List the known schema variants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := record.NewRegistry()
			if schemaFile != "" {
				if err := registry.LoadFile(schemaFile); err != nil {
					return withCode(exitUsage, err)
				}
			}

			for _, name := range registry.Names() {
				variant, err := registry.Lookup(name)
				if err != nil {
					return err
				}

				line := variantSummary{
					Name:        variant.Name,
					ColumnCount: variant.ColumnCount,
					MinColumns:  variant.MinColumns(),
					Title:       variant.Title.Fields,
				}
				if err := writeJSONLine(cmd.OutOrStdout(), line); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&schemaFile, "schema-file", os.Getenv("SCHEMA_FILE"), "YAML file with extra variants")
	return cmd
}
