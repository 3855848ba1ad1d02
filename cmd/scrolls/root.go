// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/taibuivan/scrolls/internal/platform/constants"
)

// globalOptions are the flags shared by every subcommand.
type globalOptions struct {
	envFile string
}

func newRootCmd() *cobra.Command {
	global := &globalOptions{}

	cmd := &cobra.Command{
		Use:           "scrolls",
		Short:         "Scroll catalogue CSV importer",
		Version:       constants.AppVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&global.envFile, "env-file", ".env", "Credentials file loaded before the environment is read")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return withCode(exitUsage, err)
	})

	cmd.AddCommand(newImportCmd(global))
	cmd.AddCommand(newResetCmd(global))
	cmd.AddCommand(newMigrateCmd(global))
	cmd.AddCommand(newVariantsCmd())
	return cmd
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		code := exitCode(err)
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(code)
	}
}
