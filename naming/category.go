/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package naming

// Category is a primitive typography token category.
type Category int

const (
	FontFamilies Category = iota
	FontWeights
	FontSize
	LineHeights
	LetterSpacing
	ParagraphSpacing
	ParagraphIndent
	TextCase
	TextDecoration
)

var categories = [...]struct {
	key    string
	prefix string
	unit   bool
}{
	FontFamilies:     {"fontFamilies", "font-family", false},
	FontWeights:      {"fontWeights", "font-weight", false},
	FontSize:         {"fontSize", "font-size", true},
	LineHeights:      {"lineHeights", "line-height", true},
	LetterSpacing:    {"letterSpacing", "letter-spacing", false},
	ParagraphSpacing: {"paragraphSpacing", "paragraph-spacing", true},
	ParagraphIndent:  {"paragraphIndent", "paragraph-indent", true},
	TextCase:         {"textCase", "text-case", false},
	TextDecoration:   {"textDecoration", "text-decoration", false},
}

// Categories returns every category in emission order.
func Categories() []Category {
	out := make([]Category, len(categories))
	for i := range categories {
		out[i] = Category(i)
	}
	return out
}

// ParseCategory returns the category for a top-level export key.
func ParseCategory(key string) (Category, bool) {
	for i, c := range categories {
		if c.key == key {
			return Category(i), true
		}
	}
	return 0, false
}

// Key returns the export key for the category (e.g., "fontSize").
func (c Category) Key() string {
	return categories[c].key
}

// Prefix returns the CSS variable prefix for the category (e.g., "font-size").
func (c Category) Prefix() string {
	return categories[c].prefix
}

// HasUnit reports whether numeric values in this category get a unit.
func (c Category) HasUnit() bool {
	return categories[c].unit
}

// String implements fmt.Stringer.
func (c Category) String() string {
	return c.Key()
}

// CategoryPrefix maps an export key to its CSS prefix.
// Unknown keys pass through unchanged.
func CategoryPrefix(key string) string {
	if c, ok := ParseCategory(key); ok {
		return c.Prefix()
	}
	return key
}
