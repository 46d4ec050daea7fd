/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package naming converts token paths, references and values into CSS
// custom property names and literals. Every function is total.
package naming

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/tokencss/token"
)

// DefaultUnit is appended to bare numeric dimensions.
const DefaultUnit = "px"

var (
	lower          = cases.Lower(language.Und)
	whitespaceRun  = regexp.MustCompile(`\s+`)
	disallowedName = regexp.MustCompile(`[^a-z0-9-]`)
	hyphenRun      = regexp.MustCompile(`-{2,}`)
)

// Variable joins segments with hyphens behind the "--" custom property marker.
func Variable(segments ...string) string {
	return "--" + strings.Join(segments, "-")
}

// ColorVariable returns the variable for a color token.
// e.g. ("bg", ["button", "primary"]) => --color-bg-button-primary
func ColorVariable(section string, path []string) string {
	segs := make([]string, 0, len(path)+2)
	segs = append(segs, "color", section)
	segs = append(segs, path...)
	return Variable(segs...)
}

// ReferenceVariable converts a reference like {fontSize.6} to --font-size-6.
func ReferenceVariable(ref string) string {
	r := token.ParseReference(ref)
	return "--" + CategoryPrefix(r.Category) + "-" + strings.Join(r.Key, "-")
}

// WithUnit renders a dimension. Strings already carry their unit or are
// keywords and pass through; numbers get unit appended.
func WithUnit(v token.Value, unit string) string {
	switch x := v.(type) {
	case nil:
		return ""
	case token.String:
		return string(x)
	case token.Number:
		return x.String() + unit
	default:
		return x.String()
	}
}

// CamelToKebab converts fontSize to font-size. The first character is
// lowercased without a leading hyphen.
func CamelToKebab(name string) string {
	var sb strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				sb.WriteByte('-')
			}
			sb.WriteRune(unicode.ToLower(r))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// StyleName normalizes a composite style name for use in a variable:
// "Heading 1 / Bold" => heading-1-bold.
func StyleName(name string) string {
	s := lower.String(name)
	s = whitespaceRun.ReplaceAllString(s, "-")
	s = disallowedName.ReplaceAllString(s, "")
	s = hyphenRun.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
