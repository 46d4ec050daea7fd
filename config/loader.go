/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	tokenfs "bennypowers.dev/tokencss/fs"
	"bennypowers.dev/tokencss/specifier"
)

// ConfigFileName is the base name of the config file without extension.
const ConfigFileName = "tokencss"

// ConfigDir is the directory where config files are stored.
const ConfigDir = ".config"

// configExtensions are the supported config file extensions in priority order.
var configExtensions = []string{".yaml", ".yml", ".json", ".toml"}

var (
	// ErrNoInputMatch is returned when an input glob matches no file.
	ErrNoInputMatch = errors.New("input pattern matched no files")

	// ErrAmbiguousInput is returned when an input glob matches several files.
	ErrAmbiguousInput = errors.New("input pattern matched more than one file")
)

// Load searches for .config/tokencss.{yaml,yml,json,toml} in rootDir.
// Returns nil if no config found (not an error). Missing keys take their
// default values.
func Load(filesystem tokenfs.Reader, rootDir string) (*Config, error) {
	for _, ext := range configExtensions {
		configPath := filepath.Join(rootDir, ConfigDir, ConfigFileName+ext)
		if !filesystem.Exists(configPath) {
			continue
		}

		data, err := filesystem.ReadFile(configPath)
		if err != nil {
			return nil, err
		}

		cfg := &Config{}
		switch ext {
		case ".yaml", ".yml":
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("%s: %w", configPath, err)
			}
		case ".json":
			if err := json.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("%s: %w", configPath, err)
			}
		case ".toml":
			if err := toml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("%s: %w", configPath, err)
			}
		}
		cfg.merge(Default())

		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", configPath, err)
		}
		return cfg, nil
	}

	return nil, nil
}

// ResolveInput expands a glob input against rootDir. Package specifiers
// and plain paths are returned unchanged.
func (c *Config) ResolveInput(filesystem tokenfs.Reader, rootDir string) (string, error) {
	input := c.Input
	if specifier.IsPackageSpecifier(input) || !containsGlob(input) {
		return input, nil
	}

	pattern := input
	if !filepath.IsAbs(pattern) {
		pattern = filepath.Join(rootDir, pattern)
	}

	matches, err := expandGlob(filesystem, pattern)
	if err != nil {
		return "", err
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %s", ErrNoInputMatch, input)
	case 1:
		return matches[0], nil
	default:
		slices.Sort(matches)
		return "", fmt.Errorf("%w: %s (%s)", ErrAmbiguousInput, input, strings.Join(matches, ", "))
	}
}

// containsGlob returns true if the pattern contains glob characters.
func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

// expandGlob expands a glob pattern against the filesystem.
func expandGlob(filesystem tokenfs.Reader, pattern string) ([]string, error) {
	// Find the base directory (non-glob prefix)
	baseDir := pattern
	for containsGlob(baseDir) {
		baseDir = filepath.Dir(baseDir)
	}

	relPattern := strings.TrimPrefix(pattern, baseDir)
	relPattern = strings.TrimPrefix(relPattern, string(filepath.Separator))

	var matches []string
	err := fs.WalkDir(filesystem, baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if d.Name() == "node_modules" {
				return fs.SkipDir
			}
			return nil
		}

		relPath := strings.TrimPrefix(path, baseDir)
		relPath = strings.TrimPrefix(relPath, string(filepath.Separator))
		if ok, _ := doublestar.Match(relPattern, relPath); ok {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}
