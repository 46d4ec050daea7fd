/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package testutil provides fixture and golden file helpers for tests.
package testutil

import (
	"flag"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"bennypowers.dev/tokencss/internal/mapfs"
)

// Run `go test ./... -update` to rewrite golden files from actual output.
var updateGolden = flag.Bool("update", false, "update golden files with actual output")

// testdataDirs are tried in order; tests run from their package directory,
// at most two levels below the module root.
var testdataDirs = []string{
	"testdata",
	filepath.Join("..", "testdata"),
	filepath.Join("..", "..", "testdata"),
}

// locate returns the first existing testdata path for rel.
func locate(rel string) (string, bool) {
	for _, dir := range testdataDirs {
		p := filepath.Join(dir, rel)
		if _, err := os.Stat(p); err == nil {
			return p, true
		}
	}
	return "", false
}

// NewFixtureFS copies a testdata fixture directory into a MapFileSystem
// below rootPath.
func NewFixtureFS(t *testing.T, fixtureDir string, rootPath string) *mapfs.MapFileSystem {
	t.Helper()

	src, ok := locate(fixtureDir)
	if !ok {
		t.Fatalf("fixture directory %s not found", fixtureDir)
	}

	mfs := mapfs.New()
	err := filepath.WalkDir(src, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		content, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, p)
		if err != nil {
			return err
		}
		mfs.AddFile(filepath.Join(rootPath, rel), string(content), 0o644)
		return nil
	})
	if err != nil {
		t.Fatalf("loading fixture %s: %v", fixtureDir, err)
	}
	return mfs
}

// LoadFixtureFile reads a single fixture file.
func LoadFixtureFile(t *testing.T, fixturePath string) []byte {
	t.Helper()

	p, ok := locate(fixturePath)
	if !ok {
		t.Fatalf("fixture %s not found", fixturePath)
	}
	content, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("reading fixture %s: %v", fixturePath, err)
	}
	return content
}

// WriteFixture copies a fixture file to dir/name on disk and returns dir.
// Used by command tests that run against the OS filesystem.
func WriteFixture(t *testing.T, fixturePath, dir, name string) string {
	t.Helper()

	content := LoadFixtureFile(t, fixturePath)
	if err := os.WriteFile(filepath.Join(dir, name), content, 0o644); err != nil {
		t.Fatalf("writing fixture %s: %v", fixturePath, err)
	}
	return dir
}

// UpdateGoldenFile writes actual to the golden file when -update is set.
func UpdateGoldenFile(t *testing.T, goldenPath string, actual []byte) {
	t.Helper()
	if !*updateGolden {
		return
	}

	target := filepath.Join(testdataDirs[0], goldenPath)
	for _, dir := range testdataDirs {
		if _, err := os.Stat(dir); err == nil {
			target = filepath.Join(dir, goldenPath)
			break
		}
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		t.Fatalf("creating directory for golden file %s: %v", goldenPath, err)
	}
	if err := os.WriteFile(target, actual, 0o644); err != nil {
		t.Fatalf("writing golden file %s: %v", goldenPath, err)
	}
	t.Logf("updated golden file: %s", target)
}
