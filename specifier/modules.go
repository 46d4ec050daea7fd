/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package specifier

import (
	"fmt"
	"path/filepath"
	"strings"

	tokenfs "bennypowers.dev/tokencss/fs"
)

// NodeModulesResolver resolves package specifiers to files installed under
// node_modules, walking up from the root directory.
//
// jsr packages installed through the npm compatibility layer live under
// the @jsr scope: jsr:@scope/pkg becomes node_modules/@jsr/scope__pkg.
type NodeModulesResolver struct {
	fs   tokenfs.Reader
	root string
	kind Kind
}

// NewNPMResolver creates a resolver for npm: specifiers.
func NewNPMResolver(fs tokenfs.Reader, root string) (*NodeModulesResolver, error) {
	return newNodeModulesResolver(fs, root, KindNPM)
}

// NewJSRResolver creates a resolver for jsr: specifiers.
func NewJSRResolver(fs tokenfs.Reader, root string) (*NodeModulesResolver, error) {
	return newNodeModulesResolver(fs, root, KindJSR)
}

// The root must be absolute so walk-up also works on in-memory filesystems.
func newNodeModulesResolver(fs tokenfs.Reader, root string, kind Kind) (*NodeModulesResolver, error) {
	if !filepath.IsAbs(root) {
		return nil, fmt.Errorf("root must be an absolute path, got: %s", root)
	}
	return &NodeModulesResolver{fs: fs, root: root, kind: kind}, nil
}

// Resolve implements Resolver.
func (r *NodeModulesResolver) Resolve(spec string) (*ResolvedFile, error) {
	parsed := Parse(spec)
	if parsed.Kind != r.kind {
		return nil, fmt.Errorf("not a %s specifier: %s", r.kind, spec)
	}

	pkg := parsed.Package
	if r.kind == KindJSR {
		pkg = filepath.Join("@jsr", jsrCompatName(pkg))
	}

	for dir := r.root; ; {
		base := filepath.Join(dir, "node_modules")
		candidate := filepath.Clean(filepath.Join(base, pkg, parsed.File))
		if !isInsideDir(candidate, base) {
			return nil, fmt.Errorf("path traversal detected in specifier: %s", spec)
		}
		if r.fs.Exists(candidate) {
			return &ResolvedFile{Specifier: spec, Path: candidate, Kind: r.kind}, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return nil, fmt.Errorf("%w: %s (looked in node_modules starting from %s)", ErrPackageNotFound, parsed.Package, r.root)
}

// CanResolve implements Resolver.
func (r *NodeModulesResolver) CanResolve(spec string) bool {
	return strings.HasPrefix(spec, r.kind.String()+":")
}

// jsrCompatName converts @scope/pkg to scope__pkg.
func jsrCompatName(pkg string) string {
	if scoped, ok := strings.CutPrefix(pkg, "@"); ok {
		return strings.Replace(scoped, "/", "__", 1)
	}
	return pkg
}

func isInsideDir(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
