/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package mapfs provides an in-memory filesystem for tests.
package mapfs

import (
	"errors"
	"io/fs"
	"path"
	"slices"
	"strings"
	"sync"
	"testing/fstest"
	"time"

	tokenfs "bennypowers.dev/tokencss/fs"
)

// keepFile marks an explicitly created directory.
const keepFile = ".keep"

var errNotDir = errors.New("not a directory")

// MapFileSystem implements fs.FileSystem on top of fstest.MapFS.
// Paths may be absolute or relative; both map to the same entry.
type MapFileSystem struct {
	mu      sync.RWMutex
	files   fstest.MapFS
	modTime time.Time
}

var _ tokenfs.FileSystem = (*MapFileSystem)(nil)

// New creates an empty filesystem.
func New() *MapFileSystem {
	return &MapFileSystem{
		files:   make(fstest.MapFS),
		modTime: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// AddFile stores content at p, replacing any existing file.
func (m *MapFileSystem) AddFile(p string, content string, mode fs.FileMode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.put(key(p), []byte(content), mode)
}

// AddDir creates an empty directory at p.
func (m *MapFileSystem) AddDir(p string, mode fs.FileMode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.put(path.Join(key(p), keepFile), nil, mode.Perm())
}

// Files returns the absolute paths of all regular files, sorted.
func (m *MapFileSystem) Files() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]string, 0, len(m.files))
	for p := range m.files {
		if path.Base(p) == keepFile {
			continue
		}
		out = append(out, "/"+p)
	}
	slices.Sort(out)
	return out
}

func (m *MapFileSystem) Open(name string) (fs.File, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.files.Open(key(name))
}

func (m *MapFileSystem) ReadFile(name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return fs.ReadFile(m.files, key(name))
}

// Exists reports whether name is a file or a directory holding any entry.
func (m *MapFileSystem) Exists(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	k := key(name)
	if _, ok := m.files[k]; ok {
		return true
	}
	prefix := k + "/"
	for p := range m.files {
		if strings.HasPrefix(p, prefix) {
			return true
		}
	}
	return false
}

func (m *MapFileSystem) MkdirAll(p string, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	k := key(p)
	if err := m.checkNoFileAt(k, "mkdir"); err != nil {
		return err
	}
	m.put(path.Join(k, keepFile), nil, perm.Perm())
	return nil
}

func (m *MapFileSystem) WriteFile(name string, data []byte, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	k := key(name)
	if err := m.checkNoFileAt(path.Dir(k), "open"); err != nil {
		return err
	}
	m.put(k, data, perm)
	return nil
}

func (m *MapFileSystem) Rename(oldpath, newpath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	from, to := key(oldpath), key(newpath)
	file, ok := m.files[from]
	if !ok {
		return &fs.PathError{Op: "rename", Path: oldpath, Err: fs.ErrNotExist}
	}
	if err := m.checkNoFileAt(path.Dir(to), "rename"); err != nil {
		return err
	}
	m.files[to] = file
	delete(m.files, from)
	return nil
}

func (m *MapFileSystem) Remove(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	k := key(name)
	if _, ok := m.files[k]; !ok {
		return &fs.PathError{Op: "remove", Path: name, Err: fs.ErrNotExist}
	}
	delete(m.files, k)
	return nil
}

func (m *MapFileSystem) put(k string, data []byte, mode fs.FileMode) {
	m.files[k] = &fstest.MapFile{
		Data:    slices.Clone(data),
		Mode:    mode,
		ModTime: m.modTime,
	}
}

// checkNoFileAt fails when a regular file occupies a directory position.
func (m *MapFileSystem) checkNoFileAt(dir, op string) error {
	if dir == "." || dir == "" {
		return nil
	}
	if file, ok := m.files[dir]; ok && !file.Mode.IsDir() {
		return &fs.PathError{Op: op, Path: "/" + dir, Err: errNotDir}
	}
	return nil
}

// key converts p to the unrooted form fstest.MapFS expects.
func key(p string) string {
	k := strings.TrimPrefix(path.Clean("/"+p), "/")
	if k == "" {
		return "."
	}
	return k
}
