/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package writer renders emitted sections as CSS custom property files and
// writes them, plus the index.css aggregator, to an output directory.
package writer

import (
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/tokencss/emit"
)

// Selector specifies the CSS selector wrapping the declarations.
type Selector string

const (
	// SelectorRoot uses :root (document level).
	SelectorRoot Selector = ":root"
	// SelectorHost uses :host (shadow DOM scoped).
	SelectorHost Selector = ":host"
)

// DefaultSource is named in file headers when Options.Source is empty.
const DefaultSource = "import.json"

// IndexFileName is the aggregator written after the section files.
const IndexFileName = "index.css"

// Options configures rendering and writing.
type Options struct {
	// Selector wraps the declarations. Defaults to :root.
	Selector Selector

	// Source is the input the tokens came from. Only its base name is used.
	Source string

	// Atomic stages every file next to its destination and renames them
	// into place once all of them were written.
	Atomic bool
}

var title = cases.Title(language.English)

// Header returns the comment block that opens a generated section file.
func Header(kind emit.Kind, source string) string {
	if source == "" {
		source = DefaultSource
	}
	return fmt.Sprintf("/**\n * %s Design Tokens\n * Generated from %s — do not edit manually\n */\n",
		title.String(kind.Noun()), filepath.Base(source))
}

// Render formats a section as a CSS file. Each non-empty block is followed
// by a blank line.
func Render(section emit.Section, opts Options) []byte {
	selector := opts.Selector
	if selector == "" {
		selector = SelectorRoot
	}

	var sb strings.Builder
	sb.WriteString(Header(section.Kind, opts.Source))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "%s {\n", selector)
	for _, block := range section.Blocks {
		if len(block.Declarations) == 0 {
			continue
		}
		for _, d := range block.Declarations {
			fmt.Fprintf(&sb, "\t%s: %s;\n", d.Name, d.Value)
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n")
	return []byte(sb.String())
}

// RenderIndex returns the fixed index.css aggregator.
func RenderIndex() []byte {
	var sb strings.Builder
	sb.WriteString("/**\n * Design Tokens Index\n * Aggregates all design token files (generated by tokencss)\n */\n\n")
	for _, k := range emit.Kinds {
		fmt.Fprintf(&sb, "@import './%s';\n", k.FileName())
	}
	return []byte(sb.String())
}
