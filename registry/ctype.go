// SPDX-License-Identifier: Unlicense OR MIT

package registry

import "strings"

// CType is the C type of a prototype return value or parameter, as
// declared by the mixed text of a <proto> or <param> element.
type CType struct {
	Base    string
	Pointer int
	Const   bool
}

// IsVoid reports a plain void type, i.e. no return value.
func (t CType) IsVoid() bool {
	return t.Base == "void" && t.Pointer == 0
}

// String renders the type in C syntax.
func (t CType) String() string {
	var b strings.Builder
	if t.Const {
		b.WriteString("const ")
	}
	b.WriteString(t.Base)
	b.WriteString(strings.Repeat("*", t.Pointer))
	return b.String()
}

// parseCType analyzes the inner XML of a <proto> or <param> element.
// The declared name is part of the mixed text and is ignored; the base
// type comes from <ptype> when present, otherwise from the first plain
// text token.
func parseCType(raw, ptype, name string) CType {
	text := stripTags(raw)
	t := CType{
		Base:    ptype,
		Pointer: strings.Count(text, "*"),
		Const:   strings.Contains(text, "const"),
	}
	if t.Base == "" {
		fields := strings.Fields(strings.ReplaceAll(text, "*", " "))
		for _, f := range fields {
			if f == "const" || f == "struct" || f == name {
				continue
			}
			t.Base = f
			break
		}
	}
	return t
}

// stripTags removes XML tags from mixed content, keeping character
// data only.
func stripTags(s string) string {
	var b strings.Builder
	depth := 0
	for _, r := range s {
		switch {
		case r == '<':
			depth++
		case r == '>':
			if depth > 0 {
				depth--
			}
		case depth == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}
