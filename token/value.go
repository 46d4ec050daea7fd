/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"strconv"
	"strings"
)

// Value is a token value: String, Number, Bool, Object or List.
type Value interface {
	// String renders the value as a literal.
	String() string
	value()
}

// String is a string token value.
type String string

// Number is a numeric token value.
type Number float64

// Bool is a boolean token value.
type Bool bool

// Property is a named member of an Object value.
type Property struct {
	Name  string
	Value Value
}

// Object is a composite value whose properties keep document order.
type Object []Property

// List is an array value.
type List []Value

func (String) value() {}
func (Number) value() {}
func (Bool) value()   {}
func (Object) value() {}
func (List) value()   {}

func (s String) String() string { return string(s) }

// String formats the number without trailing zeros, e.g. 16 or 1.5.
func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}

func (b Bool) String() string { return strconv.FormatBool(bool(b)) }

// String renders the object as "{name: value, ...}".
func (o Object) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	for i, p := range o {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.Name)
		sb.WriteString(": ")
		if p.Value != nil {
			sb.WriteString(p.Value.String())
		}
	}
	sb.WriteString("}")
	return sb.String()
}

// String renders the list comma-separated.
func (l List) String() string {
	parts := make([]string, 0, len(l))
	for _, v := range l {
		if v == nil {
			continue
		}
		parts = append(parts, v.String())
	}
	return strings.Join(parts, ", ")
}

// Get returns the value of the named property.
func (o Object) Get(name string) (Value, bool) {
	for _, p := range o {
		if p.Name == name {
			return p.Value, true
		}
	}
	return nil, false
}
