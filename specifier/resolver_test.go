/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package specifier

import (
	"errors"
	"testing"

	"bennypowers.dev/tokencss/internal/mapfs"
)

func TestLocalResolver(t *testing.T) {
	tests := []struct {
		name string
		root string
		spec string
		want string
	}{
		{"relative path joined to root", "/project", "design/import.json", "/project/design/import.json"},
		{"absolute path unchanged", "/project", "/exports/import.json", "/exports/import.json"},
		{"no root", "", "import.json", "import.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rf, err := NewLocalResolver(tt.root).Resolve(tt.spec)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rf.Path != tt.want {
				t.Errorf("Path = %q, want %q", rf.Path, tt.want)
			}
			if rf.Specifier != tt.spec {
				t.Errorf("Specifier = %q, want %q", rf.Specifier, tt.spec)
			}
			if rf.Kind != KindLocal {
				t.Errorf("Kind = %v, want local", rf.Kind)
			}
		})
	}
}

func TestLocalResolver_CanResolve(t *testing.T) {
	r := NewLocalResolver("/")
	if !r.CanResolve("./import.json") {
		t.Error("expected CanResolve to return true for local path")
	}
	if r.CanResolve("npm:pkg/import.json") {
		t.Error("expected CanResolve to return false for npm specifier")
	}
	if r.CanResolve("jsr:@scope/pkg/import.json") {
		t.Error("expected CanResolve to return false for jsr specifier")
	}
}

func TestNodeModulesResolver(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/node_modules/@acme/tokens/import.json", `{}`, 0o644)
	mfs.AddFile("/node_modules/hoisted/import.json", `{}`, 0o644)
	mfs.AddFile("/project/node_modules/@jsr/std__tokens/import.json", `{}`, 0o644)

	npm, err := NewNPMResolver(mfs, "/project/packages/app")
	if err != nil {
		t.Fatal(err)
	}
	jsr, err := NewJSRResolver(mfs, "/project")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		resolver *NodeModulesResolver
		spec     string
		want     string
		wantErr  error
	}{
		{"walks up to project", npm, "npm:@acme/tokens/import.json", "/project/node_modules/@acme/tokens/import.json", nil},
		{"walks up to filesystem root", npm, "npm:hoisted/import.json", "/node_modules/hoisted/import.json", nil},
		{"jsr compatibility scope", jsr, "jsr:@std/tokens/import.json", "/project/node_modules/@jsr/std__tokens/import.json", nil},
		{"missing package", npm, "npm:@acme/missing/import.json", "", ErrPackageNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rf, err := tt.resolver.Resolve(tt.spec)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rf.Path != tt.want {
				t.Errorf("Path = %q, want %q", rf.Path, tt.want)
			}
		})
	}
}

func TestNodeModulesResolver_PathTraversal(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/secret.json", `{}`, 0o644)

	r, err := NewNPMResolver(mfs, "/project")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := r.Resolve("npm:pkg/../../secret.json"); err == nil {
		t.Error("expected traversal outside node_modules to fail")
	}
}

func TestNodeModulesResolver_RelativeRoot(t *testing.T) {
	if _, err := NewNPMResolver(mapfs.New(), "project"); err == nil {
		t.Error("expected error for relative root")
	}
}

func TestDefaultResolver(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/node_modules/@acme/tokens/import.json", `{}`, 0o644)

	r, err := NewDefaultResolver(mfs, "/project")
	if err != nil {
		t.Fatal(err)
	}

	rf, err := r.Resolve("npm:@acme/tokens/import.json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rf.Kind != KindNPM {
		t.Errorf("Kind = %v, want npm", rf.Kind)
	}

	rf, err = r.Resolve("import.json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rf.Path != "/project/import.json" || rf.Kind != KindLocal {
		t.Errorf("got %+v", rf)
	}
}

func TestChainResolver_NoMatch(t *testing.T) {
	_, err := NewChainResolver().Resolve("import.json")
	if !errors.Is(err, ErrNoResolver) {
		t.Errorf("error = %v, want ErrNoResolver", err)
	}
}
