/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package emit walks a token tree and produces ordered CSS declarations
// for the colors, spacing and typography sections.
//
// Emitters never fail: absent sections produce no declarations and tokens
// without a value are left out.
package emit

import "bennypowers.dev/tokencss/token"

// Kind identifies an output section.
type Kind int

const (
	KindColors Kind = iota
	KindSpacing
	KindTypography
)

// Kinds lists the sections in output order.
var Kinds = []Kind{KindColors, KindSpacing, KindTypography}

var kindInfo = [...]struct {
	name, noun string
}{
	KindColors:     {"colors", "color"},
	KindSpacing:    {"spacing", "spacing"},
	KindTypography: {"typography", "typography"},
}

// String returns the section name ("colors", "spacing", "typography").
func (k Kind) String() string {
	return kindInfo[k].name
}

// Noun returns the singular noun used in file headers ("color").
func (k Kind) Noun() string {
	return kindInfo[k].noun
}

// FileName returns the generated file name for the section.
func (k Kind) FileName() string {
	return k.String() + ".css"
}

// ParseKind returns the kind for a section name.
func ParseKind(s string) (Kind, bool) {
	for _, k := range Kinds {
		if k.String() == s {
			return k, true
		}
	}
	return 0, false
}

// Declaration is a single custom property. Value is either a literal or a
// var() indirection to another declaration.
type Declaration struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Block groups the declarations that came from one source group.
type Block struct {
	Label        string        `json:"label"`
	Declarations []Declaration `json:"declarations"`
}

// Section is the ordered output of one emitter.
type Section struct {
	Kind   Kind    `json:"-"`
	Blocks []Block `json:"blocks"`
}

// All returns every declaration in order.
func (s Section) All() []Declaration {
	var out []Declaration
	for _, b := range s.Blocks {
		out = append(out, b.Declarations...)
	}
	return out
}

// Len returns the number of declarations.
func (s Section) Len() int {
	n := 0
	for _, b := range s.Blocks {
		n += len(b.Declarations)
	}
	return n
}

func (b *Block) add(name, value string) {
	b.Declarations = append(b.Declarations, Declaration{Name: name, Value: value})
}

// Emitter produces one section from a tree.
type Emitter func(tree *token.Tree) Section

// All runs the colors, spacing and typography emitters in output order.
func All(tree *token.Tree) []Section {
	emitters := []Emitter{
		func(t *token.Tree) Section { return Colors(t) },
		Spacing,
		Typography,
	}
	sections := make([]Section, 0, len(emitters))
	for _, e := range emitters {
		sections = append(sections, e(tree))
	}
	return sections
}
