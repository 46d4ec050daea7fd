/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package load_test

import (
	"errors"
	"slices"
	"testing"

	"bennypowers.dev/tokencss/internal/mapfs"
	"bennypowers.dev/tokencss/load"
	"bennypowers.dev/tokencss/schema"
	"bennypowers.dev/tokencss/testutil"
	"bennypowers.dev/tokencss/token"
)

func keys(tree *token.Tree) []string {
	var out []string
	for _, n := range tree.Entries() {
		out = append(out, n.Key())
	}
	return out
}

func TestLoad_UnwrapsDefaultMode(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/import/figma", "/test")

	tree, err := load.Load("import.json", load.Options{FS: mfs, Root: "/test"})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if tree.Source != "/test/import.json" {
		t.Errorf("Source = %q", tree.Source)
	}
	if tree.Section("bg") == nil {
		t.Fatalf("expected bg at the root after unwrapping, got keys %v", keys(tree))
	}
	if _, ok := tree.Lookup("Tokens/Mode 1"); ok {
		t.Error("mode wrapper should not remain in the tree")
	}

	leaves := tree.Section("text").Leaves()
	if len(leaves) == 0 {
		t.Fatal("expected text leaves")
	}
	if got := leaves[0].DotPath(); got != "text.primary" {
		t.Errorf("DotPath() = %q, want text.primary", got)
	}
}

func TestLoad_ModeKeyGlob(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/p/import.json", `{
		"Tokens/Light": {"bg": {"page": {"$type": "color", "$value": "#fff"}}},
		"Tokens/Dark": {"bg": {"page": {"$type": "color", "$value": "#000"}}}
	}`, 0o644)

	tests := []struct {
		name     string
		modeKeys []string
		want     string
	}{
		{"first match in document order", []string{"Tokens/*"}, "#fff"},
		{"explicit key", []string{"Tokens/Dark"}, "#000"},
		{"any pattern may match", []string{"Nope", "Tokens/D*"}, "#000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, err := load.Load("import.json", load.Options{FS: mfs, Root: "/p", ModeKeys: tt.modeKeys})
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			n, ok := tree.Section("bg").Get("page")
			if !ok {
				t.Fatalf("bg.page missing, keys %v", keys(tree))
			}
			v, _ := token.ValueOf(n)
			if v.String() != tt.want {
				t.Errorf("bg.page = %v, want %s", v, tt.want)
			}
		})
	}
}

func TestLoad_NoModeWrapper(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/import/legacy", "/test")

	tree, err := load.Load("import.json", load.Options{FS: mfs, Root: "/test"})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if tree.Section("bg") == nil || tree.Section("spacing") == nil {
		t.Errorf("expected document root to be used, got keys %v", keys(tree))
	}
}

func TestLoad_UnwrappingDisabled(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/import/figma", "/test")

	tree, err := load.Load("import.json", load.Options{FS: mfs, Root: "/test", ModeKeys: []string{}})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := keys(tree); !slices.Equal(got, []string{"Tokens/Mode 1"}) {
		t.Errorf("keys = %v", got)
	}
}

func TestLoad_SkippedRebased(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/p/import.json", `{"Tokens/Mode 1": {"spacing": {"sm": {"$type": "spacing", "$value": null}}}}`, 0o644)

	tree, err := load.Load("import.json", load.Options{FS: mfs, Root: "/p"})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := tree.Skipped(); !slices.Equal(got, []string{"spacing.sm"}) {
		t.Errorf("Skipped() = %v", got)
	}
}

func TestLoad_ForcedFormat(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/import/legacy", "/test")

	tree, err := load.Load("import.json", load.Options{FS: mfs, Root: "/test", Format: schema.DTCG})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := len(tree.Section("bg").Leaves()); got != 0 {
		t.Errorf("legacy keys read as DTCG should produce no leaves, got %d", got)
	}
}

func TestLoad_NPMSpecifier(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/p/node_modules/@acme/tokens/import.json", `{"bg": {"page": {"$type": "color", "$value": "#fff"}}}`, 0o644)

	tree, err := load.Load("npm:@acme/tokens/import.json", load.Options{FS: mfs, Root: "/p"})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if tree.Source != "/p/node_modules/@acme/tokens/import.json" {
		t.Errorf("Source = %q", tree.Source)
	}
}

func TestLoad_Errors(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/import/malformed", "/test")
	mfs.AddFile("/test/empty.json", "", 0o644)
	mfs.AddFile("/test/list.json", `[1, 2]`, 0o644)

	tests := []struct {
		name      string
		spec      string
		modeKeys  []string
		missing   bool
		malformed bool
	}{
		{name: "missing file", spec: "nope.json", missing: true},
		{name: "missing package", spec: "npm:@acme/missing/import.json", missing: true},
		{name: "truncated json", spec: "import.json", malformed: true},
		{name: "empty file", spec: "empty.json", malformed: true},
		{name: "non-object root", spec: "list.json", malformed: true},
		{name: "bad mode pattern", spec: "import.json", modeKeys: []string{"Tokens/[Mode"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := load.Load(tt.spec, load.Options{FS: mfs, Root: "/test", ModeKeys: tt.modeKeys})
			if err == nil {
				t.Fatal("expected error")
			}

			var missing *load.MissingInputError
			var malformed *load.MalformedInputError
			if got := errors.As(err, &missing); got != tt.missing {
				t.Errorf("MissingInputError = %v, want %v (%v)", got, tt.missing, err)
			}
			if got := errors.As(err, &malformed); got != tt.malformed {
				t.Errorf("MalformedInputError = %v, want %v (%v)", got, tt.malformed, err)
			}
			if tt.modeKeys != nil && !errors.Is(err, load.ErrBadModeKey) {
				t.Errorf("expected ErrBadModeKey, got %v", err)
			}
		})
	}
}

func TestUnwrapMode_NoMatch(t *testing.T) {
	root := token.NewGroup("")
	root.Add(token.NewGroup("bg"))
	tree := token.NewTree(root)

	got, ok := load.UnwrapMode(tree, load.DefaultModeKeys)
	if ok || got != tree {
		t.Error("expected the tree to be returned unchanged")
	}
}
