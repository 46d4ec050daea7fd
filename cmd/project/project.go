/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package project resolves the effective settings for a command from the
// config file and command-line flags.
package project

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"bennypowers.dev/tokencss/build"
	"bennypowers.dev/tokencss/config"
	"bennypowers.dev/tokencss/fs"
	"bennypowers.dev/tokencss/internal/logger"
	"bennypowers.dev/tokencss/load"
	"bennypowers.dev/tokencss/schema"
	"bennypowers.dev/tokencss/token"
	"bennypowers.dev/tokencss/writer"
)

// Flag names shared by the commands.
const (
	FlagRoot        = "root"
	FlagInput       = "input"
	FlagInputFormat = "input-format"
	FlagModeKey     = "mode-key"
	FlagOut         = "out"
	FlagSelector    = "selector"
	FlagAtomic      = "atomic"
)

// flagKeys maps config keys to the flags that override them.
var flagKeys = map[string]string{
	config.KeyInput:    FlagInput,
	config.KeyFormat:   FlagInputFormat,
	config.KeyModeKeys: FlagModeKey,
	config.KeyOutDir:   FlagOut,
	config.KeySelector: FlagSelector,
	config.KeyAtomic:   FlagAtomic,
}

// AddInputFlags registers the flags that select and read the export.
func AddInputFlags(flags *pflag.FlagSet) {
	flags.String(FlagRoot, ".", "Project root for config lookup and relative paths")
	flags.StringP(FlagInput, "i", "", "Token export path, glob or npm:/jsr: specifier (default: import.json)")
	flags.String(FlagInputFormat, "", "Force export format (dtcg, tokens-studio)")
	flags.StringSlice(FlagModeKey, nil, `Mode wrapper glob patterns (default: "Tokens/Mode 1")`)
}

// AddOutputFlags registers the flags that control writing.
func AddOutputFlags(flags *pflag.FlagSet) {
	flags.StringP(FlagOut, "o", "", "Output directory (default: src/lib/styles/tokens)")
	flags.String(FlagSelector, "", "CSS selector wrapping the declarations (:root, :host)")
	flags.Bool(FlagAtomic, false, "Write all files to temporary names, then rename them into place")
}

// Project holds the effective settings for one command run.
type Project struct {
	FS     fs.FileSystem
	Root   string
	Config *config.Config
	Input  string
	Format schema.Format
}

// Load reads the config file below --root and applies flags on top.
// A positional argument replaces the input.
func Load(cmd *cobra.Command, args []string) (*Project, error) {
	filesystem := fs.NewOSFileSystem()

	root, err := cmd.Flags().GetString(FlagRoot)
	if err != nil || root == "" {
		root = "."
	}

	cfg, err := config.Load(filesystem, root)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if cfg == nil {
		cfg = config.Default()
	} else {
		logger.Debug("loaded config from %s", root)
	}

	v, err := cfg.Bind(cmd.Flags(), flagKeys)
	if err != nil {
		return nil, err
	}
	eff := config.FromViper(v)
	if len(args) > 0 {
		eff.Input = args[0]
	}
	if err := eff.Validate(); err != nil {
		return nil, err
	}

	format, err := eff.ExportFormat()
	if err != nil {
		return nil, err
	}

	input, err := eff.ResolveInput(filesystem, root)
	if err != nil {
		return nil, err
	}

	return &Project{
		FS:     filesystem,
		Root:   root,
		Config: eff,
		Input:  input,
		Format: format,
	}, nil
}

// LoadTree loads the export.
func (p *Project) LoadTree() (*token.Tree, error) {
	return load.Load(p.Input, load.Options{
		FS:       p.FS,
		Root:     p.Root,
		ModeKeys: p.Config.ModeKeys,
		Format:   p.Format,
	})
}

// BuildOptions returns the options for build.Run.
func (p *Project) BuildOptions() build.Options {
	return build.Options{
		Input:    p.Input,
		OutDir:   p.Config.OutDir,
		ModeKeys: p.Config.ModeKeys,
		Format:   p.Format,
		Selector: writer.Selector(p.Config.Selector),
		Atomic:   p.Config.Atomic,
		FS:       p.FS,
		Root:     p.Root,
	}
}
