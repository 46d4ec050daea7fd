/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package load reads a token export into a token tree.
package load

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"bennypowers.dev/tokencss/fs"
	"bennypowers.dev/tokencss/internal/logger"
	"bennypowers.dev/tokencss/parser"
	"bennypowers.dev/tokencss/schema"
	"bennypowers.dev/tokencss/specifier"
	"bennypowers.dev/tokencss/token"
)

// DefaultModeKeys match the wrapper a Figma Tokens export puts around its
// default mode.
var DefaultModeKeys = []string{"Tokens/Mode 1"}

// ErrBadModeKey is returned for a mode key that is not a valid glob pattern.
var ErrBadModeKey = errors.New("invalid mode key pattern")

// MissingInputError reports an input that does not exist.
type MissingInputError struct {
	Path string
	Err  error
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("input not found: %s: %v", e.Path, e.Err)
}

func (e *MissingInputError) Unwrap() error {
	return e.Err
}

// MalformedInputError reports an input that could not be parsed.
type MalformedInputError struct {
	Path string
	Err  error
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed input %s: %v", e.Path, e.Err)
}

func (e *MalformedInputError) Unwrap() error {
	return e.Err
}

// Options configures how tokens are loaded.
type Options struct {
	// FS is the filesystem to use. Defaults to the OS filesystem.
	FS fs.Reader

	// Root is the directory relative paths and node_modules lookups start
	// from. Defaults to the working directory.
	Root string

	// ModeKeys are glob patterns for top-level mode wrappers. The first
	// top-level key matching any pattern becomes the root. Nil means
	// DefaultModeKeys; an empty slice disables unwrapping.
	ModeKeys []string

	// Format overrides detection of the export format.
	Format schema.Format

	// Resolver overrides the default specifier resolver chain.
	Resolver specifier.Resolver
}

// Load loads design tokens from a specifier.
//
// The specifier can be:
//   - Local file path: "import.json" or "/path/to/import.json"
//   - npm package: "npm:@scope/pkg/import.json" (requires node_modules)
//   - jsr package: "jsr:@scope/pkg/import.json" (requires node_modules)
//
// The loading process:
//  1. Resolves the specifier to a path
//  2. Reads the file
//  3. Parses it, detecting the format unless one is given
//  4. Replaces the root with the first matching mode wrapper, if any
func Load(spec string, opts Options) (*token.Tree, error) {
	filesystem := opts.FS
	if filesystem == nil {
		filesystem = fs.NewOSFileSystem()
	}

	root := opts.Root
	if root == "" {
		root = "."
	}
	if !filepath.IsAbs(root) {
		absRoot, err := filepath.Abs(root)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve root path: %w", err)
		}
		root = absRoot
	}

	modeKeys := opts.ModeKeys
	if modeKeys == nil {
		modeKeys = DefaultModeKeys
	}
	for _, p := range modeKeys {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("%w: %q", ErrBadModeKey, p)
		}
	}

	res := opts.Resolver
	if res == nil {
		var err error
		res, err = specifier.NewDefaultResolver(filesystem, root)
		if err != nil {
			return nil, fmt.Errorf("failed to create resolver: %w", err)
		}
	}

	resolved, err := res.Resolve(spec)
	if err != nil {
		return nil, &MissingInputError{Path: spec, Err: err}
	}

	content, err := filesystem.ReadFile(resolved.Path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, &MissingInputError{Path: resolved.Path, Err: err}
		}
		return nil, fmt.Errorf("failed to read %s: %w", resolved.Path, err)
	}

	format := opts.Format
	if format == schema.Unknown {
		// Content the detector cannot read (comments, trailing commas) is
		// left to the parser.
		if detected, err := schema.DetectFormat(content, nil); err == nil {
			format = detected
			logger.Debug("detected %s format in %s", format, resolved.Path)
		}
	}

	tree, err := parser.NewJSONParser().Parse(content, parser.Options{Format: format})
	if err != nil {
		return nil, &MalformedInputError{Path: resolved.Path, Err: err}
	}

	if mode, ok := UnwrapMode(tree, modeKeys); ok {
		logger.Debug("using mode %q from %s", mode.Root.Name, resolved.Path)
		tree = mode
	}
	tree.Source = resolved.Path

	return tree, nil
}

// UnwrapMode returns a tree rooted at the first top-level group whose key
// matches one of the patterns. Patterns are doublestar globs, so
// "Tokens/*" matches any mode. Leaf paths and skipped paths are rebased
// onto the new root.
func UnwrapMode(tree *token.Tree, patterns []string) (*token.Tree, bool) {
	for _, n := range tree.Entries() {
		g, ok := n.(*token.Group)
		if !ok || !matchesAny(patterns, g.Name) {
			continue
		}

		token.Walk(g, func(_ []string, l *token.Leaf) {
			if len(l.Path) > 0 {
				l.Path = l.Path[1:]
			}
		})

		prefix := g.Name + "."
		g.Skipped = nil
		for _, s := range tree.Skipped() {
			if rest, ok := strings.CutPrefix(s, prefix); ok {
				g.Skipped = append(g.Skipped, rest)
			}
		}

		return &token.Tree{Root: g, Source: tree.Source}, true
	}
	return tree, false
}

func matchesAny(patterns []string, key string) bool {
	for _, p := range patterns {
		if ok, _ := doublestar.Match(p, key); ok {
			return true
		}
	}
	return false
}
