/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

// Group represents a group of tokens (can be nested).
// Entries keep the key order of the source document.
type Group struct {
	// Name is the group's key in its parent, empty for the root.
	Name string

	// Type is the group's $type, inherited by descendant tokens.
	Type string

	// Description is optional documentation for the group.
	Description string

	// Entries contains child nodes in document order.
	Entries []Node

	// Skipped lists dot paths of tokens that declared a $type but no $value.
	// Only populated on the root group.
	Skipped []string
}

// NewGroup creates a new empty token group.
func NewGroup(name string) *Group {
	return &Group{Name: name}
}

// Key implements Node.
func (g *Group) Key() string { return g.Name }

func (*Group) node() {}

// Add appends a child node.
func (g *Group) Add(n Node) {
	g.Entries = append(g.Entries, n)
}

// Get returns the first child with the given key.
func (g *Group) Get(key string) (Node, bool) {
	if g == nil {
		return nil, false
	}
	for _, n := range g.Entries {
		if n.Key() == key {
			return n, true
		}
	}
	return nil, false
}

// Group returns the child group with the given key, or nil.
func (g *Group) Group(key string) *Group {
	n, ok := g.Get(key)
	if !ok {
		return nil
	}
	child, _ := n.(*Group)
	return child
}

// Len returns the number of direct children.
func (g *Group) Len() int {
	if g == nil {
		return 0
	}
	return len(g.Entries)
}

// Leaves returns all leaves in this group and nested groups, depth-first in document order.
func (g *Group) Leaves() []*Leaf {
	var leaves []*Leaf
	Walk(g, func(_ []string, l *Leaf) {
		leaves = append(leaves, l)
	})
	return leaves
}

// Walk visits every leaf below g depth-first in document order.
// The path passed to fn is relative to g and must not be retained.
func Walk(g *Group, fn func(path []string, l *Leaf)) {
	walk(g, nil, fn)
}

func walk(g *Group, path []string, fn func([]string, *Leaf)) {
	if g == nil {
		return
	}
	for _, n := range g.Entries {
		switch v := n.(type) {
		case *Leaf:
			fn(append(path, v.Name), v)
		case *Group:
			walk(v, append(path, v.Name), fn)
		}
	}
}
