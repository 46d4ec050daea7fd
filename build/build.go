/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package build runs the token pipeline: load the export, emit the
// colors, spacing and typography sections, and write the CSS files.
package build

import (
	"fmt"
	"path/filepath"

	"bennypowers.dev/tokencss/emit"
	"bennypowers.dev/tokencss/fs"
	"bennypowers.dev/tokencss/internal/logger"
	"bennypowers.dev/tokencss/load"
	"bennypowers.dev/tokencss/schema"
	"bennypowers.dev/tokencss/token"
	"bennypowers.dev/tokencss/writer"
)

const (
	// DefaultInput is the export read when no input is given.
	DefaultInput = "import.json"

	// DefaultOutDir is where the CSS files are written by default.
	DefaultOutDir = "src/lib/styles/tokens"
)

// Phase names a pipeline step in errors.
type Phase string

const (
	PhaseLoad  Phase = "load"
	PhaseWrite Phase = "write"
)

// Error wraps a failure with the phase it happened in. The cause keeps its
// type, so errors.As still finds *load.MissingInputError and friends.
type Error struct {
	Phase Phase
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Phase, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Options configures a build.
type Options struct {
	// Input is the export path or package specifier. Defaults to DefaultInput.
	Input string

	// OutDir is the output directory. Defaults to DefaultOutDir.
	// Relative paths are resolved against Root.
	OutDir string

	// ModeKeys are glob patterns for the mode wrapper. See load.Options.
	ModeKeys []string

	// Format overrides export format detection.
	Format schema.Format

	// Selector wraps the declarations. Defaults to :root.
	Selector writer.Selector

	// Atomic stages all files before renaming them into place.
	Atomic bool

	// FS is the filesystem to use. Defaults to the OS filesystem.
	FS fs.FileSystem

	// Root is the project directory. Defaults to the working directory.
	Root string
}

// Result holds the emitted sections for a tree.
type Result struct {
	Tree     *token.Tree
	Sections []emit.Section
}

// Section returns the emitted section of the given kind.
func (r *Result) Section(kind emit.Kind) emit.Section {
	for _, s := range r.Sections {
		if s.Kind == kind {
			return s
		}
	}
	return emit.Section{Kind: kind}
}

// Generate runs every emitter over the tree. It has no side effects.
func Generate(tree *token.Tree) *Result {
	return &Result{Tree: tree, Sections: emit.All(tree)}
}

// Report summarizes a completed build.
type Report struct {
	// Source is the resolved input path.
	Source string

	// OutDir is the absolute output directory.
	OutDir string

	// Files lists the written files in write order.
	Files []string

	// Counts is the number of declarations per section.
	Counts map[emit.Kind]int
}

// Run loads the input, generates every section and writes the files.
func Run(opts Options) (*Report, error) {
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

	input := opts.Input
	if input == "" {
		input = DefaultInput
	}
	outDir := opts.OutDir
	if outDir == "" {
		outDir = DefaultOutDir
	}
	if !filepath.IsAbs(outDir) {
		outDir = filepath.Join(root, outDir)
	}

	tree, err := load.Load(input, load.Options{
		FS:       filesystem,
		Root:     root,
		ModeKeys: opts.ModeKeys,
		Format:   opts.Format,
	})
	if err != nil {
		return nil, &Error{Phase: PhaseLoad, Err: err}
	}
	if skipped := tree.Skipped(); len(skipped) > 0 {
		logger.Warn("skipped %d token(s) without a value", len(skipped))
	}

	result := Generate(tree)

	files, err := writer.Write(filesystem, outDir, result.Sections, writer.Options{
		Selector: opts.Selector,
		Source:   tree.Source,
		Atomic:   opts.Atomic,
	})
	if err != nil {
		return nil, &Error{Phase: PhaseWrite, Err: err}
	}

	report := &Report{
		Source: tree.Source,
		OutDir: outDir,
		Files:  files,
		Counts: make(map[emit.Kind]int, len(result.Sections)),
	}
	for _, s := range result.Sections {
		report.Counts[s.Kind] = s.Len()
		logger.Debug("%s: %d declaration(s)", s.Kind, s.Len())
	}
	return report, nil
}
