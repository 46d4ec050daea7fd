/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package specifier resolves the token export argument. It accepts a local
// path or an npm:/jsr: package specifier for an export installed under
// node_modules.
package specifier

import (
	"regexp"
	"strings"
)

// Kind indicates the type of specifier.
type Kind int

const (
	// KindLocal is a local file path.
	KindLocal Kind = iota
	// KindNPM is an npm package specifier.
	KindNPM
	// KindJSR is a jsr package specifier.
	KindJSR
)

func (k Kind) String() string {
	switch k {
	case KindNPM:
		return "npm"
	case KindJSR:
		return "jsr"
	default:
		return "local"
	}
}

// Specifier represents a parsed specifier.
type Specifier struct {
	// Kind is the type of specifier (local, npm, jsr).
	Kind Kind

	// Package is the package name (e.g., "@scope/pkg" or "pkg").
	Package string

	// File is the file path within the package, or the local path.
	File string

	// Raw is the original specifier string.
	Raw string
}

// packagePattern matches npm:@scope/pkg/path, jsr:pkg/path, or bare npm:pkg.
var packagePattern = regexp.MustCompile(`^(npm|jsr):(@[^/]+/[^/]+|[^/]+)(/.*)?$`)

// Parse parses a specifier string. Anything that is not a well-formed
// package specifier is a local path.
func Parse(spec string) *Specifier {
	if m := packagePattern.FindStringSubmatch(spec); m != nil {
		kind := KindNPM
		if m[1] == "jsr" {
			kind = KindJSR
		}
		return &Specifier{
			Kind:    kind,
			Package: m[2],
			File:    strings.TrimPrefix(m[3], "/"),
			Raw:     spec,
		}
	}
	return &Specifier{Kind: KindLocal, File: spec, Raw: spec}
}

// IsPackageSpecifier reports whether spec is a valid npm: or jsr: specifier.
func IsPackageSpecifier(spec string) bool {
	return Parse(spec).Kind != KindLocal
}
