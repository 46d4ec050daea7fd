/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"regexp"
	"strings"
)

// curlyBracePattern matches {token.path} references.
var curlyBracePattern = regexp.MustCompile(`\{([^{}]+)\}`)

// Reference is a parsed curly brace reference such as {fontSize.6}.
type Reference struct {
	// Raw is the original reference string.
	Raw string

	// Category is the first path segment (e.g., "fontSize").
	Category string

	// Key holds the remaining segments (e.g., ["6"]).
	Key []string
}

// ParseReference splits a reference into its category and key segments.
// Braces are optional; a string without any dot yields an empty Key.
func ParseReference(raw string) Reference {
	inner := strings.NewReplacer("{", "", "}", "").Replace(raw)
	segs := strings.Split(inner, ".")
	return Reference{
		Raw:      raw,
		Category: segs[0],
		Key:      segs[1:],
	}
}

// IsCurlyBraceRef returns true if the value contains a curly brace reference.
func IsCurlyBraceRef(value string) bool {
	return curlyBracePattern.MatchString(value)
}
