/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package specifier

import "path/filepath"

// LocalResolver handles local filesystem paths. Relative paths are joined
// to the root directory.
type LocalResolver struct {
	root string
}

// NewLocalResolver creates a resolver for local paths below root.
// An empty root leaves relative paths unchanged.
func NewLocalResolver(root string) *LocalResolver {
	return &LocalResolver{root: root}
}

// Resolve implements Resolver.
func (r *LocalResolver) Resolve(spec string) (*ResolvedFile, error) {
	path := spec
	if r.root != "" && !filepath.IsAbs(path) {
		path = filepath.Join(r.root, path)
	}
	return &ResolvedFile{Specifier: spec, Path: path, Kind: KindLocal}, nil
}

// CanResolve returns true for paths that are not package specifiers.
func (r *LocalResolver) CanResolve(spec string) bool {
	return !IsPackageSpecifier(spec)
}
