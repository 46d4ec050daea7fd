/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package build_test

import (
	"errors"
	iofs "io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tokencss/build"
	"bennypowers.dev/tokencss/emit"
	"bennypowers.dev/tokencss/internal/mapfs"
	"bennypowers.dev/tokencss/load"
	"bennypowers.dev/tokencss/testutil"
	"bennypowers.dev/tokencss/writer"
)

const figmaFixture = "fixtures/import/figma"

func TestRun_Golden(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, figmaFixture, "/test")

	report, err := build.Run(build.Options{FS: mfs, Root: "/test", OutDir: "out"})
	require.NoError(t, err)

	assert.Equal(t, "/test/import.json", report.Source)
	assert.Equal(t, []string{
		"/test/out/colors.css",
		"/test/out/spacing.css",
		"/test/out/typography.css",
		"/test/out/index.css",
	}, report.Files)
	assert.Equal(t, 8, report.Counts[emit.KindColors])
	assert.Equal(t, 5, report.Counts[emit.KindSpacing])
	assert.Equal(t, 27, report.Counts[emit.KindTypography])

	for _, name := range []string{"colors.css", "spacing.css", "typography.css", "index.css"} {
		t.Run(name, func(t *testing.T) {
			got, err := mfs.ReadFile(filepath.Join("/test/out", name))
			require.NoError(t, err)

			golden := filepath.Join(figmaFixture, "expected", name)
			testutil.UpdateGoldenFile(t, golden, got)
			want := testutil.LoadFixtureFile(t, golden)
			assert.Equal(t, string(want), string(got))
		})
	}
}

func TestRun_DefaultOutDir(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, figmaFixture, "/test")

	report, err := build.Run(build.Options{FS: mfs, Root: "/test"})
	require.NoError(t, err)

	assert.Equal(t, "/test/src/lib/styles/tokens", report.OutDir)
	assert.True(t, mfs.Exists("/test/src/lib/styles/tokens/index.css"))
}

func TestRun_Idempotent(t *testing.T) {
	for _, atomic := range []bool{false, true} {
		mfs := testutil.NewFixtureFS(t, figmaFixture, "/test")
		opts := build.Options{FS: mfs, Root: "/test", OutDir: "out", Atomic: atomic}

		_, err := build.Run(opts)
		require.NoError(t, err)
		first := snapshot(t, mfs)

		_, err = build.Run(opts)
		require.NoError(t, err)
		assert.Equal(t, first, snapshot(t, mfs), "atomic=%v", atomic)
	}
}

func TestRun_AtomicMatchesDirect(t *testing.T) {
	direct := testutil.NewFixtureFS(t, figmaFixture, "/test")
	_, err := build.Run(build.Options{FS: direct, Root: "/test", OutDir: "out"})
	require.NoError(t, err)

	atomic := testutil.NewFixtureFS(t, figmaFixture, "/test")
	_, err = build.Run(build.Options{FS: atomic, Root: "/test", OutDir: "out", Atomic: true})
	require.NoError(t, err)

	assert.Equal(t, snapshot(t, direct), snapshot(t, atomic))
	for _, p := range atomic.Files() {
		assert.False(t, strings.HasSuffix(p, ".tmp"), "staging file left behind: %s", p)
	}
}

func TestRun_HostSelector(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, figmaFixture, "/test")

	_, err := build.Run(build.Options{FS: mfs, Root: "/test", OutDir: "out", Selector: writer.SelectorHost})
	require.NoError(t, err)

	got, err := mfs.ReadFile("/test/out/colors.css")
	require.NoError(t, err)
	assert.Contains(t, string(got), "\n:host {\n")
}

func TestRun_MissingInput(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddDir("/test", 0o755)

	_, err := build.Run(build.Options{FS: mfs, Root: "/test"})
	require.Error(t, err)

	var missing *load.MissingInputError
	require.ErrorAs(t, err, &missing)
	assert.True(t, errors.Is(err, iofs.ErrNotExist))

	var phase *build.Error
	require.ErrorAs(t, err, &phase)
	assert.Equal(t, build.PhaseLoad, phase.Phase)
	assert.True(t, strings.HasPrefix(err.Error(), "load: "))

	assert.False(t, mfs.Exists("/test/src"), "nothing should be written")
}

func TestRun_MalformedInput(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/import/malformed", "/test")

	_, err := build.Run(build.Options{FS: mfs, Root: "/test", OutDir: "out"})

	var malformed *load.MalformedInputError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "/test/import.json", malformed.Path)
	assert.False(t, mfs.Exists("/test/out"), "nothing should be written")
}

func TestRun_WriteFailure(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, figmaFixture, "/test")
	mfs.AddFile("/test/out", "not a directory", 0o644)

	_, err := build.Run(build.Options{FS: mfs, Root: "/test", OutDir: "out"})

	var werr *writer.WriteError
	require.ErrorAs(t, err, &werr)
	var phase *build.Error
	require.ErrorAs(t, err, &phase)
	assert.Equal(t, build.PhaseWrite, phase.Phase)
}

func TestGenerate_PreservesDocumentOrder(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/p/import.json", `{
		"spacing": {
			"xl": {"$type": "spacing", "$value": 32},
			"xs": {"$type": "spacing", "$value": 4},
			"md": {"$type": "spacing", "$value": 16}
		}
	}`, 0o644)

	tree, err := load.Load("import.json", load.Options{FS: mfs, Root: "/p"})
	require.NoError(t, err)

	var names []string
	for _, d := range build.Generate(tree).Section(emit.KindSpacing).All() {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"--spacing-xl", "--spacing-xs", "--spacing-md"}, names)
}

func TestGenerate_EmptyExport(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/p/import.json", `{}`, 0o644)

	report, err := build.Run(build.Options{FS: mfs, Root: "/p", OutDir: "out"})
	require.NoError(t, err)
	for _, k := range emit.Kinds {
		assert.Zero(t, report.Counts[k])
	}

	got, err := mfs.ReadFile("/p/out/spacing.css")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(got), ":root {\n}\n"))
}

func snapshot(t *testing.T, mfs *mapfs.MapFileSystem) map[string]string {
	t.Helper()
	out := make(map[string]string)
	for _, name := range []string{"colors.css", "spacing.css", "typography.css", "index.css"} {
		data, err := mfs.ReadFile(filepath.Join("/test/out", name))
		require.NoError(t, err)
		out[name] = string(data)
	}
	return out
}
