// SPDX-License-Identifier: MIT

// Package cli implements the fibpath command line.
package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

// Execute is the entry point to running the CLI
func Execute(ctx context.Context, version string) {
	input := new(Input)
	if err := createRootCommand(ctx, input, version).Execute(); err != nil {
		os.Exit(1)
	}
}

func createRootCommand(ctx context.Context, input *Input, version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "fibpath",
		Short:        "Shortest paths over weighted graphs with Fibonacci or binary heaps.",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := input.newLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			input.logger = logger
			return nil
		},
	}
	rootCmd.SetContext(ctx)
	rootCmd.PersistentFlags().BoolVarP(&input.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&input.logFormat, "log-format", "text", "log format: text or json")

	rootCmd.AddCommand(
		newSearchCommand(input),
		newTableCommand(input),
		newGenerateCommand(input),
	)

	return rootCmd
}
