/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package naming

import (
	"strconv"
	"strings"
)

// DefaultFontWeight is used for names that are neither keywords nor integers.
const DefaultFontWeight = 400

var fontWeights = map[string]int{
	"thin":        100,
	"extralight":  200,
	"extra light": 200,
	"ultralight":  200,
	"light":       300,
	"regular":     400,
	"normal":      400,
	"medium":      500,
	"semibold":    600,
	"semi bold":   600,
	"demibold":    600,
	"bold":        700,
	"extrabold":   800,
	"extra bold":  800,
	"ultrabold":   800,
	"black":       900,
	"heavy":       900,
}

// FontWeight maps a weight keyword such as "SemiBold" to its numeric value.
// Unknown keywords fall back to their leading integer ("650", "700 italic");
// anything else yields 400.
func FontWeight(name string) int {
	if w, ok := fontWeights[strings.ToLower(strings.TrimSpace(name))]; ok {
		return w
	}
	if n, ok := leadingInt(name); ok {
		return n
	}
	return DefaultFontWeight
}

// leadingInt parses an optionally signed run of digits at the start of s.
func leadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
