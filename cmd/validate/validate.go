/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validate provides the validate command for tokencss.
package validate

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"bennypowers.dev/tokencss/build"
	"bennypowers.dev/tokencss/cmd/project"
	"bennypowers.dev/tokencss/validator"
)

// ErrDiagnostics is returned in strict mode when validation reports anything.
var ErrDiagnostics = errors.New("validation reported problems")

// Cmd is the validate cobra command.
var Cmd = &cobra.Command{
	Use:   "validate [input]",
	Short: "Check a token export for problems in the generated CSS",
	Long: `Check a token export for problems a build would not report: duplicate
variable names, var() references to undeclared variables, unparseable colors
and tokens skipped for missing values.`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func init() {
	project.AddInputFlags(Cmd.Flags())
	Cmd.Flags().Bool("strict", false, "Fail when any problem is reported")
	Cmd.Flags().Bool("quiet", false, "Only output problems")
	Cmd.Flags().StringP("format", "f", "text", "Output format: text, json")
}

func run(cmd *cobra.Command, args []string) error {
	strict, _ := cmd.Flags().GetBool("strict")
	quiet, _ := cmd.Flags().GetBool("quiet")
	format, _ := cmd.Flags().GetString("format")

	p, err := project.Load(cmd, args)
	if err != nil {
		return err
	}
	tree, err := p.LoadTree()
	if err != nil {
		return err
	}

	diags := validator.Validate(build.Generate(tree))
	w := cmd.OutOrStdout()

	switch format {
	case "json":
		if diags == nil {
			diags = []validator.Diagnostic{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(diags); err != nil {
			return fmt.Errorf("error encoding diagnostics: %w", err)
		}
	case "text":
		printText(w, tree.Source, diags, quiet)
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	if strict && len(diags) > 0 {
		return fmt.Errorf("%w: %d problem(s)", ErrDiagnostics, len(diags))
	}
	return nil
}

func printText(w io.Writer, source string, diags []validator.Diagnostic, quiet bool) {
	if !quiet {
		fmt.Fprintf(w, "Validating %s...\n", source)
	}
	yellow := color.New(color.FgYellow)
	for _, d := range diags {
		yellow.Fprintf(w, "  ⚠ %s\n", d.Error())
	}
	if quiet {
		return
	}
	if len(diags) == 0 {
		color.New(color.FgGreen).Fprintln(w, "✓ No problems found.")
		return
	}
	fmt.Fprintf(w, "%d problem(s) found.\n", len(diags))
}
