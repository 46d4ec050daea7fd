/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package emit

import (
	"bennypowers.dev/tokencss/naming"
	"bennypowers.dev/tokencss/token"
)

// ColorSections are the top-level groups the colors emitter owns by default.
var ColorSections = []string{"bg", "text", "border", "icons"}

// Colors emits one declaration per color leaf below each section,
// depth-first in document order. Defaults to ColorSections.
func Colors(tree *token.Tree, sections ...string) Section {
	if len(sections) == 0 {
		sections = ColorSections
	}

	out := Section{Kind: KindColors}
	for _, key := range sections {
		g := tree.Section(key)
		if g == nil {
			continue
		}
		block := Block{Label: key}
		token.Walk(g, func(path []string, l *token.Leaf) {
			if !l.HasValue() {
				return
			}
			block.add(naming.ColorVariable(key, path), ColorLiteral(l.Value))
		})
		out.Blocks = append(out.Blocks, block)
	}
	return out
}
