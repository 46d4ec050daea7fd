/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package parser provides token export parsing.
package parser

import (
	"bennypowers.dev/tokencss/fs"
	"bennypowers.dev/tokencss/schema"
	"bennypowers.dev/tokencss/token"
)

// Options configures token parsing.
type Options struct {
	// Format overrides auto-detection of the export format.
	Format schema.Format
}

// Parser parses design token exports.
type Parser interface {
	// Parse parses token data and returns the token tree.
	Parse(data []byte, opts Options) (*token.Tree, error)

	// ParseFile parses a token file and returns the token tree.
	ParseFile(filesystem fs.FileSystem, path string, opts Options) (*token.Tree, error)
}
