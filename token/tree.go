/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

// Tree is a parsed token export. It is read-only once loaded.
type Tree struct {
	// Root is the top-level group.
	Root *Group

	// Source is the file or specifier the tree was loaded from.
	Source string
}

// NewTree wraps a root group.
func NewTree(root *Group) *Tree {
	if root == nil {
		root = NewGroup("")
	}
	return &Tree{Root: root}
}

// Lookup returns the top-level node with the given key.
func (t *Tree) Lookup(key string) (Node, bool) {
	if t == nil {
		return nil, false
	}
	return t.Root.Get(key)
}

// Section returns the top-level group with the given key, or nil if it
// is absent or not a group.
func (t *Tree) Section(key string) *Group {
	if t == nil {
		return nil
	}
	return t.Root.Group(key)
}

// Entries returns the top-level nodes in document order.
func (t *Tree) Entries() []Node {
	if t == nil || t.Root == nil {
		return nil
	}
	return t.Root.Entries
}

// Skipped returns dot paths of tokens dropped for missing values.
func (t *Tree) Skipped() []string {
	if t == nil || t.Root == nil {
		return nil
	}
	return t.Root.Skipped
}
