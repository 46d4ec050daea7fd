/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package fs provides filesystem abstractions for reading token exports and writing CSS.
package fs

import (
	"io/fs"
	"os"
)

// Reader is the read side used to locate and load token exports and config.
// It is an fs.FS so it works with fs.WalkDir.
type Reader interface {
	fs.FS
	ReadFile(name string) ([]byte, error)
	Exists(path string) bool
}

// Writer is the write side used to emit CSS files.
type Writer interface {
	MkdirAll(path string, perm fs.FileMode) error
	WriteFile(name string, data []byte, perm fs.FileMode) error
	// Rename replaces newpath if it exists.
	Rename(oldpath, newpath string) error
	Remove(name string) error
}

// FileSystem combines Reader and Writer.
type FileSystem interface {
	Reader
	Writer
}

// OSFileSystem implements FileSystem on the host filesystem.
// Paths are passed to the os package as given, so absolute paths work.
type OSFileSystem struct{}

var _ FileSystem = (*OSFileSystem)(nil)

// NewOSFileSystem creates a new filesystem that uses the standard os package.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

func (*OSFileSystem) Open(name string) (fs.File, error) { return os.Open(name) }

func (*OSFileSystem) ReadFile(name string) ([]byte, error) { return os.ReadFile(name) }

func (*OSFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (*OSFileSystem) MkdirAll(path string, perm fs.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (*OSFileSystem) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(name, data, perm)
}

func (*OSFileSystem) Rename(oldpath, newpath string) error { return os.Rename(oldpath, newpath) }

func (*OSFileSystem) Remove(name string) error { return os.Remove(name) }
