/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package emit

import (
	"strconv"

	"bennypowers.dev/tokencss/naming"
	"bennypowers.dev/tokencss/token"
)

// Typography emits the primitive typography categories followed by every
// top-level composite style. Composite properties become var() indirections
// to the primitives they reference; the targets are not checked here.
func Typography(tree *token.Tree) Section {
	out := Section{Kind: KindTypography}

	for _, cat := range naming.Categories() {
		g := tree.Section(cat.Key())
		if g == nil {
			continue
		}
		block := Block{Label: cat.Key()}
		for _, n := range g.Entries {
			v, ok := token.ValueOf(n)
			if !ok {
				continue
			}
			block.add(naming.Variable(cat.Prefix(), n.Key()), primitiveValue(cat, v))
		}
		out.Blocks = append(out.Blocks, block)
	}

	for _, n := range tree.Entries() {
		l, ok := n.(*token.Leaf)
		if !ok || l.Type != token.TypeTypography {
			continue
		}
		style, ok := l.Value.(token.Object)
		if !ok {
			continue
		}
		out.Blocks = append(out.Blocks, composite(l.Name, style))
	}

	return out
}

func primitiveValue(cat naming.Category, v token.Value) string {
	switch {
	case cat == naming.FontWeights:
		return strconv.Itoa(naming.FontWeight(v.String()))
	case cat.HasUnit():
		return naming.WithUnit(v, naming.DefaultUnit)
	default:
		return v.String()
	}
}

// composite emits --typography-<style>-<property> for each property.
// Properties holding a {reference} become var(--<category>-<key>); plain
// string literals are emitted as written; other values are skipped.
func composite(name string, style token.Object) Block {
	styleName := naming.StyleName(name)
	block := Block{Label: name}
	for _, p := range style {
		s, ok := p.Value.(token.String)
		if !ok {
			continue
		}
		value := string(s)
		if token.IsCurlyBraceRef(value) {
			value = "var(" + naming.ReferenceVariable(value) + ")"
		}
		block.add(naming.Variable("typography", styleName, naming.CamelToKebab(p.Name)), value)
	}
	return block
}
