/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package list provides the list command for tokencss.
package list

import (
	"fmt"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"bennypowers.dev/tokencss/build"
	"bennypowers.dev/tokencss/cmd/project"
	"bennypowers.dev/tokencss/cmd/render"
	"bennypowers.dev/tokencss/emit"
	"bennypowers.dev/tokencss/writer"
)

// Cmd is the list cobra command.
var Cmd = &cobra.Command{
	Use:   "list [input]",
	Short: "List the CSS custom properties a build would generate",
	Long:  `List the declarations generated from a token export without writing any files.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  run,
}

func init() {
	project.AddInputFlags(Cmd.Flags())
	Cmd.Flags().String(project.FlagSelector, "", "CSS selector for --format css (:root, :host)")
	Cmd.Flags().StringSlice("section", nil, "Only list these sections (colors, spacing, typography)")
	Cmd.Flags().String("filter", "", "Only list variables whose name contains this text")
	Cmd.Flags().StringP("format", "f", "table", "Output format: table, json, css, markdown, names")
}

func run(cmd *cobra.Command, args []string) error {
	sectionNames, _ := cmd.Flags().GetStringSlice("section")
	filter, _ := cmd.Flags().GetString("filter")
	format, _ := cmd.Flags().GetString("format")

	kinds, err := parseSections(sectionNames)
	if err != nil {
		return err
	}

	p, err := project.Load(cmd, args)
	if err != nil {
		return err
	}
	tree, err := p.LoadTree()
	if err != nil {
		return err
	}

	sections := selectSections(build.Generate(tree).Sections, kinds, filter)
	w := cmd.OutOrStdout()

	switch format {
	case "json":
		return render.JSON(w, render.ComputeRows(sections))
	case "css":
		return render.CSS(w, sections, writer.Options{
			Selector: writer.Selector(p.Config.Selector),
			Source:   tree.Source,
		})
	case "markdown", "md":
		return render.Markdown(w, render.ComputeRows(sections))
	case "names":
		return render.Names(w, render.ComputeRows(sections))
	case "table":
		return render.Table(w, render.ComputeRows(sections), !color.NoColor)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func parseSections(names []string) ([]emit.Kind, error) {
	if len(names) == 0 {
		return emit.Kinds, nil
	}
	kinds := make([]emit.Kind, 0, len(names))
	for _, name := range names {
		k, ok := emit.ParseKind(name)
		if !ok {
			return nil, fmt.Errorf("unknown section %q", name)
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

// selectSections keeps the requested sections and the declarations whose
// names contain filter.
func selectSections(sections []emit.Section, kinds []emit.Kind, filter string) []emit.Section {
	var out []emit.Section
	for _, s := range sections {
		if !slices.Contains(kinds, s.Kind) {
			continue
		}
		if filter == "" {
			out = append(out, s)
			continue
		}
		kept := emit.Section{Kind: s.Kind}
		for _, b := range s.Blocks {
			fb := emit.Block{Label: b.Label}
			for _, d := range b.Declarations {
				if strings.Contains(d.Name, filter) {
					fb.Declarations = append(fb.Declarations, d)
				}
			}
			if len(fb.Declarations) > 0 {
				kept.Blocks = append(kept.Blocks, fb)
			}
		}
		out = append(out, kept)
	}
	return out
}
