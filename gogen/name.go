// SPDX-License-Identifier: Unlicense OR MIT

package gogen

import (
	"go/token"
	"strings"
	"unicode"
)

// goFuncName maps a registry command name to the exported Go
// identifier it is exposed as: the gl prefix is stripped, so
// glGenBuffers becomes GenBuffers.
func goFuncName(name string) string {
	if strings.HasPrefix(name, "gl") && len(name) > 2 && unicode.IsUpper(rune(name[2])) {
		return name[2:]
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// goEnumName maps a registry enum name to its exported constant name
// by stripping the GL_ prefix. Names that would start with a digit
// after stripping keep the prefix, since they would not be valid
// identifiers.
func goEnumName(name string) string {
	stripped := strings.TrimPrefix(name, "GL_")
	if stripped == "" || unicode.IsDigit(rune(stripped[0])) {
		return name
	}
	return stripped
}

// goParamName escapes parameter names that collide with Go keywords,
// most commonly "type" and "func" in the registry.
func goParamName(name string) string {
	if token.Lookup(name).IsKeyword() {
		return "x" + name
	}
	return name
}
