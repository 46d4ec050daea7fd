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

// spacingSections maps the spacing emitter's section keys to variable prefixes.
var spacingSections = []struct {
	key, prefix string
}{
	{"spacing", "spacing"},
	{"border radius", "border-radius"},
}

// Spacing emits the leaves directly under "spacing" and "border radius".
// Numeric values get the default px unit.
func Spacing(tree *token.Tree) Section {
	out := Section{Kind: KindSpacing}
	for _, s := range spacingSections {
		g := tree.Section(s.key)
		if g == nil {
			continue
		}
		block := Block{Label: s.key}
		for _, n := range g.Entries {
			l, ok := n.(*token.Leaf)
			if !ok || !l.HasValue() {
				continue
			}
			block.add(naming.Variable(s.prefix, l.Name), naming.WithUnit(l.Value, naming.DefaultUnit))
		}
		out.Blocks = append(out.Blocks, block)
	}
	return out
}
