/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package specifier

import (
	"errors"
	"fmt"
)

var (
	// ErrNoResolver is returned when no resolver in a chain accepts a specifier.
	ErrNoResolver = errors.New("no resolver for specifier")

	// ErrPackageNotFound is returned when no node_modules directory holds the file.
	ErrPackageNotFound = errors.New("package not found")
)

// ResolvedFile preserves both the original specifier and the resolved filesystem path.
type ResolvedFile struct {
	// Specifier is the original specifier (e.g., "npm:@acme/tokens/import.json").
	Specifier string

	// Path is the resolved filesystem path.
	Path string

	// Kind indicates the type of specifier.
	Kind Kind
}

// Resolver resolves specifiers to filesystem paths.
type Resolver interface {
	// Resolve resolves a specifier to a ResolvedFile.
	Resolve(spec string) (*ResolvedFile, error)

	// CanResolve returns true if this resolver can handle the given specifier.
	CanResolve(spec string) bool
}

// ChainResolver tries multiple resolvers in order.
type ChainResolver struct {
	resolvers []Resolver
}

// NewChainResolver creates a resolver that delegates to the first resolver
// accepting a specifier.
func NewChainResolver(resolvers ...Resolver) *ChainResolver {
	return &ChainResolver{resolvers: resolvers}
}

// Resolve implements Resolver.
func (c *ChainResolver) Resolve(spec string) (*ResolvedFile, error) {
	for _, r := range c.resolvers {
		if r.CanResolve(spec) {
			return r.Resolve(spec)
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNoResolver, spec)
}

// CanResolve implements Resolver.
func (c *ChainResolver) CanResolve(spec string) bool {
	for _, r := range c.resolvers {
		if r.CanResolve(spec) {
			return true
		}
	}
	return false
}
