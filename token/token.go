/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package token provides the in-memory token tree loaded from a design-tool export.
//
// A tree is built from three node kinds: Group (an intermediate mapping),
// Leaf (a typed token carrying a value) and Scalar (a bare value placed
// directly under a group). Consumers switch over the concrete type instead
// of probing for marker fields.
package token

import "strings"

// TypeTypography is the $type of composite typography styles.
const TypeTypography = "typography"

// Node is a token tree node: *Group, *Leaf or *Scalar.
type Node interface {
	// Key is the node's key in its parent group.
	Key() string
	node()
}

// Leaf represents a typed design token.
type Leaf struct {
	// Name is the token's key in its parent group.
	Name string

	// Path is the key path from the tree root (e.g., ["bg", "button", "primary"]).
	Path []string

	// Type is the token's $type, or the type inherited from an ancestor group.
	Type string

	// Value is the token's $value. Nil when the value field was absent or null.
	Value Value

	// Description is optional documentation for the token.
	Description string
}

// Key implements Node.
func (l *Leaf) Key() string { return l.Name }

func (*Leaf) node() {}

// HasValue reports whether the leaf carries a usable value.
func (l *Leaf) HasValue() bool {
	return l != nil && l.Value != nil
}

// DotPath returns the dot-separated path to this token.
func (l *Leaf) DotPath() string {
	return strings.Join(l.Path, ".")
}

// Scalar is a raw value that appears directly under a group without a
// $type/$value wrapper, e.g. "fontFamilies": {"body": "Inter"}.
type Scalar struct {
	Name  string
	Value Value
}

// Key implements Node.
func (s *Scalar) Key() string { return s.Name }

func (*Scalar) node() {}

// ValueOf returns the value carried by a leaf or scalar node.
// Groups, and leaves without a value, report false.
func ValueOf(n Node) (Value, bool) {
	switch v := n.(type) {
	case *Leaf:
		return v.Value, v.Value != nil
	case *Scalar:
		return v.Value, v.Value != nil
	default:
		return nil, false
	}
}
