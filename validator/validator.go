/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validator reports problems in generated token output that do not
// stop a build but would produce surprising CSS.
package validator

import (
	"cmp"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/mazznoer/csscolorparser"

	"bennypowers.dev/tokencss/build"
	"bennypowers.dev/tokencss/emit"
	"bennypowers.dev/tokencss/token"
)

// Diagnostic describes one problem.
type Diagnostic struct {
	// Section is the output section ("colors", "typography") or "input".
	Section string `json:"section"`
	// Name is the variable name or token path the diagnostic is about.
	Name string `json:"name"`
	// Message describes what's wrong.
	Message string `json:"message"`
	// Suggestion provides an actionable fix.
	Suggestion string `json:"suggestion,omitempty"`
}

// Error implements the error interface.
func (d Diagnostic) Error() string {
	var sb strings.Builder
	if d.Section != "" {
		sb.WriteString(d.Section)
		sb.WriteString(": ")
	}
	if d.Name != "" {
		sb.WriteString(d.Name)
		sb.WriteString(": ")
	}
	sb.WriteString(d.Message)
	if d.Suggestion != "" {
		sb.WriteString(" (")
		sb.WriteString(d.Suggestion)
		sb.WriteString(")")
	}
	return sb.String()
}

// SectionInput labels diagnostics about the export itself.
const SectionInput = "input"

var varPattern = regexp.MustCompile(`^var\((--[^),\s]+)\)$`)

// Validate checks a generated result. Checks:
//   - variable names declared more than once across all sections
//   - var() indirections to variables no section declares
//   - color values that are not parseable CSS colors
//   - tokens the parser skipped for missing values
//   - Tokens Studio style tokens inside a DTCG export
//
// Diagnostics are sorted by section, then name.
func Validate(result *build.Result) []Diagnostic {
	var diags []Diagnostic
	diags = append(diags, duplicates(result.Sections)...)
	diags = append(diags, unresolved(result.Sections)...)
	diags = append(diags, colors(result.Section(emit.KindColors))...)
	diags = append(diags, skipped(result.Tree)...)
	diags = append(diags, legacyTokens(result.Tree)...)

	slices.SortStableFunc(diags, func(a, b Diagnostic) int {
		return cmp.Or(
			cmp.Compare(a.Section, b.Section),
			cmp.Compare(a.Name, b.Name),
		)
	})
	return diags
}

func duplicates(sections []emit.Section) []Diagnostic {
	type seen struct {
		section string
		count   int
	}
	counts := make(map[string]*seen)
	var order []string
	for _, s := range sections {
		for _, d := range s.All() {
			if c, ok := counts[d.Name]; ok {
				c.count++
				continue
			}
			counts[d.Name] = &seen{section: s.Kind.String(), count: 1}
			order = append(order, d.Name)
		}
	}

	var diags []Diagnostic
	for _, name := range order {
		c := counts[name]
		if c.count < 2 {
			continue
		}
		diags = append(diags, Diagnostic{
			Section:    c.section,
			Name:       name,
			Message:    fmt.Sprintf("declared %d times; the last declaration wins", c.count),
			Suggestion: "rename one of the source tokens so their joined paths differ",
		})
	}
	return diags
}

func unresolved(sections []emit.Section) []Diagnostic {
	declared := make(map[string]bool)
	for _, s := range sections {
		for _, d := range s.All() {
			declared[d.Name] = true
		}
	}

	var diags []Diagnostic
	for _, s := range sections {
		for _, d := range s.All() {
			m := varPattern.FindStringSubmatch(d.Value)
			if m == nil || declared[m[1]] {
				continue
			}
			diags = append(diags, Diagnostic{
				Section:    s.Kind.String(),
				Name:       d.Name,
				Message:    fmt.Sprintf("references %s, which is not declared", m[1]),
				Suggestion: "add the referenced token to the export or fix the reference",
			})
		}
	}
	return diags
}

func colors(section emit.Section) []Diagnostic {
	var diags []Diagnostic
	for _, d := range section.All() {
		if varPattern.MatchString(d.Value) || strings.HasPrefix(d.Value, "color(") {
			continue
		}
		if _, err := csscolorparser.Parse(d.Value); err != nil {
			diags = append(diags, Diagnostic{
				Section: section.Kind.String(),
				Name:    d.Name,
				Message: fmt.Sprintf("%q is not a valid CSS color", d.Value),
			})
		}
	}
	return diags
}

func skipped(tree *token.Tree) []Diagnostic {
	var diags []Diagnostic
	for _, path := range tree.Skipped() {
		diags = append(diags, Diagnostic{
			Section:    SectionInput,
			Name:       path,
			Message:    "token has no usable value and was skipped",
			Suggestion: "give the token both a type and a value",
		})
	}
	return diags
}

// legacyTokens finds groups that hold bare "type" and "value" scalars,
// which happens when a Tokens Studio export is read as DTCG.
func legacyTokens(tree *token.Tree) []Diagnostic {
	var diags []Diagnostic
	var visit func(g *token.Group, path []string)
	visit = func(g *token.Group, path []string) {
		if len(path) > 0 && isScalar(g, "value") && isScalar(g, "type") {
			diags = append(diags, Diagnostic{
				Section:    SectionInput,
				Name:       strings.Join(path, "."),
				Message:    "looks like a Tokens Studio token in a DTCG export",
				Suggestion: "set format to tokens-studio",
			})
			return
		}
		for _, n := range g.Entries {
			if child, ok := n.(*token.Group); ok {
				visit(child, append(slices.Clip(path), child.Name))
			}
		}
	}
	if tree != nil && tree.Root != nil {
		visit(tree.Root, nil)
	}
	return diags
}

func isScalar(g *token.Group, key string) bool {
	n, ok := g.Get(key)
	if !ok {
		return false
	}
	_, ok = n.(*token.Scalar)
	return ok
}
