/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config loads tokencss settings from .config/tokencss.{yaml,yml,json,toml}
// and merges them with command-line flags.
package config

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"bennypowers.dev/tokencss/schema"
)

// Config represents the tokencss configuration.
type Config struct {
	// Input is the token export path or package specifier. May be a glob
	// that matches exactly one file.
	Input string `yaml:"input" json:"input" toml:"input"`

	// OutDir is the directory the CSS files are written to.
	OutDir string `yaml:"outDir" json:"outDir" toml:"outDir"`

	// ModeKeys are glob patterns for the mode wrapper to unwrap.
	ModeKeys []string `yaml:"modeKeys" json:"modeKeys" toml:"modeKeys"`

	// Format forces the export format (optional).
	// Valid values: "dtcg", "tokens-studio"
	Format string `yaml:"format" json:"format" toml:"format"`

	// Selector wraps the declarations: ":root" or ":host".
	Selector string `yaml:"selector" json:"selector" toml:"selector"`

	// Atomic stages all files before moving them into place.
	Atomic bool `yaml:"atomic" json:"atomic" toml:"atomic"`
}

// Keys that may be set in the config file and overridden by flags.
const (
	KeyInput    = "input"
	KeyOutDir   = "outDir"
	KeyModeKeys = "modeKeys"
	KeyFormat   = "format"
	KeySelector = "selector"
	KeyAtomic   = "atomic"
)

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Input:    "import.json",
		OutDir:   "src/lib/styles/tokens",
		ModeKeys: []string{"Tokens/Mode 1"},
		Selector: ":root",
	}
}

// merge fills zero fields of c from defaults.
func (c *Config) merge(defaults *Config) {
	if c.Input == "" {
		c.Input = defaults.Input
	}
	if c.OutDir == "" {
		c.OutDir = defaults.OutDir
	}
	if c.ModeKeys == nil {
		c.ModeKeys = defaults.ModeKeys
	}
	if c.Selector == "" {
		c.Selector = defaults.Selector
	}
}

// ExportFormat returns the parsed export format.
// An empty Format yields schema.Unknown, which means detect.
func (c *Config) ExportFormat() (schema.Format, error) {
	return schema.FromString(c.Format)
}

// Validate reports invalid values.
func (c *Config) Validate() error {
	if _, err := c.ExportFormat(); err != nil {
		return err
	}
	switch c.Selector {
	case "", ":root", ":host":
	default:
		return fmt.Errorf("invalid selector %q: must be :root or :host", c.Selector)
	}
	return nil
}

// Bind returns a viper instance whose defaults are the config values and
// whose keys are bound to the given flags. Flags override the file only
// when set on the command line. Flags absent from the set are skipped.
func (c *Config) Bind(flags *pflag.FlagSet, flagNames map[string]string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(KeyInput, c.Input)
	v.SetDefault(KeyOutDir, c.OutDir)
	v.SetDefault(KeyModeKeys, c.ModeKeys)
	v.SetDefault(KeyFormat, c.Format)
	v.SetDefault(KeySelector, c.Selector)
	v.SetDefault(KeyAtomic, c.Atomic)

	for key, name := range flagNames {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return nil, fmt.Errorf("binding flag --%s: %w", name, err)
		}
	}
	return v, nil
}

// FromViper reads the effective configuration back out of v.
func FromViper(v *viper.Viper) *Config {
	return &Config{
		Input:    v.GetString(KeyInput),
		OutDir:   v.GetString(KeyOutDir),
		ModeKeys: v.GetStringSlice(KeyModeKeys),
		Format:   v.GetString(KeyFormat),
		Selector: v.GetString(KeySelector),
		Atomic:   v.GetBool(KeyAtomic),
	}
}
