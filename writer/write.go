/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package writer

import (
	"fmt"
	"path/filepath"

	"bennypowers.dev/tokencss/emit"
	"bennypowers.dev/tokencss/fs"
	"bennypowers.dev/tokencss/internal/logger"
)

// WriteError reports a file that could not be created or written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

type file struct {
	path string
	data []byte
}

// Write renders the sections and index.css into dir, creating it if needed
// and overwriting existing files. It returns the written paths in order.
//
// Without Options.Atomic a failure may leave earlier files updated and
// later ones stale.
func Write(fsys fs.Writer, dir string, sections []emit.Section, opts Options) ([]string, error) {
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return nil, &WriteError{Path: dir, Err: err}
	}

	files := make([]file, 0, len(sections)+1)
	for _, s := range sections {
		files = append(files, file{
			path: filepath.Join(dir, s.Kind.FileName()),
			data: Render(s, opts),
		})
	}
	files = append(files, file{path: filepath.Join(dir, IndexFileName), data: RenderIndex()})

	if opts.Atomic {
		return writeAtomic(fsys, files)
	}

	written := make([]string, 0, len(files))
	for _, f := range files {
		if err := fsys.WriteFile(f.path, f.data, 0o644); err != nil {
			return written, &WriteError{Path: f.path, Err: err}
		}
		logger.Debug("wrote %s", f.path)
		written = append(written, f.path)
	}
	return written, nil
}

// stagingPath returns the hidden temporary name used for atomic writes.
func stagingPath(path string) string {
	return filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+".tmp")
}

func writeAtomic(fsys fs.Writer, files []file) ([]string, error) {
	staged := make([]string, 0, len(files))
	cleanup := func() {
		for _, p := range staged {
			_ = fsys.Remove(p)
		}
	}

	for _, f := range files {
		tmp := stagingPath(f.path)
		if err := fsys.WriteFile(tmp, f.data, 0o644); err != nil {
			cleanup()
			return nil, &WriteError{Path: f.path, Err: err}
		}
		staged = append(staged, tmp)
	}

	written := make([]string, 0, len(files))
	for i, f := range files {
		if err := fsys.Rename(staged[i], f.path); err != nil {
			staged = staged[i:]
			cleanup()
			return written, &WriteError{Path: f.path, Err: err}
		}
		logger.Debug("wrote %s", f.path)
		written = append(written, f.path)
	}
	return written, nil
}
