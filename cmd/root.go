/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for tokencss.
package cmd

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"bennypowers.dev/tokencss/cmd/build"
	"bennypowers.dev/tokencss/cmd/list"
	"bennypowers.dev/tokencss/cmd/validate"
	"bennypowers.dev/tokencss/cmd/version"
	"bennypowers.dev/tokencss/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "tokencss",
	Short: "Generate CSS custom properties from design token exports",
	Long: `tokencss converts a Figma Tokens / Tokens Studio export into
colors.css, spacing.css, typography.css and an index.css that imports them.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		logger.SetVerbose(verbose)
	},
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "✗ %v\n", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(build.Cmd)
	rootCmd.AddCommand(list.Cmd)
	rootCmd.AddCommand(validate.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
