/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package render provides shared rendering functions for CLI output.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/tokencss/emit"
	"bennypowers.dev/tokencss/writer"
)

// Row holds computed display values for a single declaration.
type Row struct {
	Section string `json:"section"`
	Block   string `json:"block"`
	Name    string `json:"name"`
	Value   string `json:"value"`
	// Hex is the normalized sRGB hex for parseable colors.
	Hex string `json:"hex,omitempty"`
	// IsColor reports whether Value is a parseable literal color.
	IsColor bool `json:"-"`
}

// ComputeRows flattens sections into display rows in output order.
func ComputeRows(sections []emit.Section) []Row {
	var rows []Row
	for _, s := range sections {
		for _, b := range s.Blocks {
			for _, d := range b.Declarations {
				row := Row{
					Section: s.Kind.String(),
					Block:   b.Label,
					Name:    d.Name,
					Value:   d.Value,
				}
				if s.Kind == emit.KindColors && !strings.HasPrefix(d.Value, "var(") {
					if hex, ok := NormalizeHex(d.Value); ok {
						row.Hex = hex
						row.IsColor = true
					}
				}
				rows = append(rows, row)
			}
		}
	}
	return rows
}

// NormalizeHex converts any CSS color to a lowercase #rrggbb string.
// Alpha is appended as a fourth byte when the color is not opaque.
func NormalizeHex(value string) (string, bool) {
	c, err := csscolorparser.Parse(value)
	if err != nil {
		return "", false
	}
	hex := colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex()
	if c.A < 1 {
		hex += fmt.Sprintf("%02x", int(c.A*255+0.5))
	}
	return hex, true
}

// ColorSwatch returns a 24-bit ANSI color block for the given color value.
func ColorSwatch(value string) string {
	c, err := csscolorparser.Parse(value)
	if err != nil {
		return ""
	}
	r, g, b, _ := c.RGBA255()
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m ", r, g, b)
}

// ColumnWidths calculates the max width needed for the name and section columns.
func ColumnWidths(rows []Row) (name, section int) {
	name, section = 4, 7 // minimums for headers
	for _, r := range rows {
		name = max(name, len(r.Name))
		section = max(section, len(r.Section))
	}
	return
}

// Table renders rows as an aligned table. Swatches are drawn for colors
// when enabled.
func Table(w io.Writer, rows []Row, swatches bool) error {
	if len(rows) == 0 {
		return nil
	}
	nameW, sectionW := ColumnWidths(rows)
	for _, r := range rows {
		swatch := ""
		if swatches && r.IsColor {
			swatch = ColorSwatch(r.Value)
		}
		hex := ""
		if r.Hex != "" && !strings.EqualFold(r.Hex, r.Value) {
			hex = " (" + r.Hex + ")"
		}
		if _, err := fmt.Fprintf(w, "%-*s  %-*s  %s%s%s\n", sectionW, r.Section, nameW, r.Name, swatch, r.Value, hex); err != nil {
			return err
		}
	}
	return nil
}

// JSON renders rows as an indented JSON array.
func JSON(w io.Writer, rows []Row) error {
	if rows == nil {
		rows = []Row{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

// CSS renders each section as the file tokencss build would write.
func CSS(w io.Writer, sections []emit.Section, opts writer.Options) error {
	for i, s := range sections {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if _, err := w.Write(writer.Render(s, opts)); err != nil {
			return err
		}
	}
	return nil
}

// Names renders just the variable names, one per line.
func Names(w io.Writer, rows []Row) error {
	for _, r := range rows {
		if _, err := fmt.Fprintln(w, r.Name); err != nil {
			return err
		}
	}
	return nil
}

// Markdown renders rows as one table per block, grouped under a heading
// per section.
func Markdown(w io.Writer, rows []Row) error {
	section, block := "", ""
	started := false
	for _, r := range rows {
		newSection := !started || r.Section != section
		newBlock := newSection || r.Block != block
		if newBlock && started {
			fmt.Fprintln(w)
		}
		started = true

		if newSection {
			section = r.Section
			fmt.Fprintf(w, "## %s {#%s}\n\n", toTitleCase(section), slugify(section))
		}
		if newBlock {
			block = r.Block
			fmt.Fprintf(w, "### %s {#%s}\n\n", block, slugify(section+" "+block))
			fmt.Fprintln(w, "| Name | Value |")
			fmt.Fprintln(w, "|------|-------|")
		}
		if _, err := fmt.Fprintf(w, "| `%s` | `%s` |\n", r.Name, r.Value); err != nil {
			return err
		}
	}
	return nil
}

// slugify converts a name to a URL-safe anchor ID.
// e.g., "Heading 1 / Bold" -> "heading-1-bold"
func slugify(name string) string {
	var result strings.Builder
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			result.WriteRune(r)
		} else if r == ' ' || r == '-' || r == '_' || r == '.' {
			result.WriteRune('-')
		}
	}
	s := result.String()
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	return strings.Trim(s, "-")
}

// toTitleCase converts a string to Title Case.
func toTitleCase(s string) string {
	return cases.Title(language.English).String(s)
}
