/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package build provides the build command for tokencss.
package build

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	buildlib "bennypowers.dev/tokencss/build"
	"bennypowers.dev/tokencss/cmd/project"
	"bennypowers.dev/tokencss/emit"
	"bennypowers.dev/tokencss/internal/logger"
)

// Cmd is the build cobra command.
var Cmd = &cobra.Command{
	Use:   "build [input]",
	Short: "Generate CSS custom property files from a token export",
	Long: `Generate colors.css, spacing.css, typography.css and index.css from a
Figma Tokens / Tokens Studio export.

Settings are read from .config/tokencss.{yaml,yml,json,toml} under --root.
Flags override the config file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func init() {
	project.AddInputFlags(Cmd.Flags())
	project.AddOutputFlags(Cmd.Flags())
}

func run(cmd *cobra.Command, args []string) error {
	p, err := project.Load(cmd, args)
	if err != nil {
		return err
	}

	report, err := buildlib.Run(p.BuildOptions())
	if err != nil {
		return err
	}

	for _, k := range emit.Kinds {
		logger.Info("%s: %d declaration(s)", k, report.Counts[k])
	}
	for _, f := range report.Files {
		logger.Debug("wrote %s", f)
	}

	_, err = color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Tokens built to %s\n", p.Config.OutDir)
	return err
}
