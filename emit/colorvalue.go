/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package emit

import (
	"fmt"
	"strings"

	"bennypowers.dev/tokencss/token"
)

// AlphaThreshold is the value below which alpha is included in CSS output.
// Values >= 0.999 are treated as fully opaque to avoid unnecessary alpha channels.
const AlphaThreshold = 0.999

// ColorLiteral renders a color value. String colors are passed through as
// written. Structured colors ({colorSpace, components, alpha, hex}) become
// their hex field or a CSS color function.
func ColorLiteral(v token.Value) string {
	obj, ok := v.(token.Object)
	if !ok {
		return v.String()
	}
	if css, ok := structuredColor(obj); ok {
		return css
	}
	return v.String()
}

func structuredColor(obj token.Object) (string, bool) {
	if hex, ok := obj.Get("hex"); ok {
		if s, ok := hex.(token.String); ok && s != "" {
			return string(s), true
		}
	}

	spaceVal, ok := obj.Get("colorSpace")
	if !ok {
		return "", false
	}
	space, ok := spaceVal.(token.String)
	if !ok || space == "" {
		return "", false
	}
	compsVal, ok := obj.Get("components")
	if !ok {
		return "", false
	}
	comps, ok := compsVal.(token.List)
	if !ok || len(comps) == 0 {
		return "", false
	}

	parts := make([]string, 0, len(comps))
	for _, c := range comps {
		switch x := c.(type) {
		case token.Number:
			parts = append(parts, fmt.Sprintf("%.4g", float64(x)))
		case token.String:
			parts = append(parts, string(x)) // "none" keyword
		default:
			return "", false
		}
	}
	compStr := strings.Join(parts, " ")

	alphaSuffix := ""
	if a, ok := obj.Get("alpha"); ok {
		if n, ok := a.(token.Number); ok && float64(n) < AlphaThreshold {
			alphaSuffix = fmt.Sprintf(" / %.4g", float64(n))
		}
	}

	// Color spaces that have native CSS functions
	switch space {
	case "hsl", "hwb", "lab", "lch", "oklab", "oklch":
		return fmt.Sprintf("%s(%s%s)", space, compStr, alphaSuffix), true
	default:
		return fmt.Sprintf("color(%s %s%s)", space, compStr, alphaSuffix), true
	}
}
