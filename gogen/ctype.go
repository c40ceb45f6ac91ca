// SPDX-License-Identifier: Unlicense OR MIT

package gogen

import "glbind.org/registry"

// baseTypes maps registry C base types to the Go types the generated
// signatures use. GLenum maps to the package-local Enum type; anything
// the table does not know degrades to unsafe.Pointer.
var baseTypes = map[string]string{
	"GLenum":      "Enum",
	"GLboolean":   "bool",
	"GLbitfield":  "uint32",
	"GLbyte":      "int8",
	"GLubyte":     "uint8",
	"GLshort":     "int16",
	"GLushort":    "uint16",
	"GLint":       "int32",
	"GLuint":      "uint32",
	"GLint64":     "int64",
	"GLint64EXT":  "int64",
	"GLuint64":    "uint64",
	"GLuint64EXT": "uint64",
	"GLsizei":     "int32",
	"GLfloat":     "float32",
	"GLclampf":    "float32",
	"GLdouble":    "float64",
	"GLclampd":    "float64",
	"GLchar":      "byte",
	"GLcharARB":   "byte",
	"GLfixed":     "int32",
	"GLhalf":      "uint16",
	"GLhalfNV":    "uint16",
	"GLintptr":    "int",
	"GLsizeiptr":  "int",
}

// goType renders a C type as the Go type used in a generated
// signature. The empty string means no type, i.e. a void return.
func goType(t registry.CType) string {
	if t.IsVoid() {
		return ""
	}
	base, ok := baseTypes[t.Base]
	switch {
	case ok && t.Pointer == 0:
		return base
	case ok && t.Pointer == 1 && base != "bool":
		return "*" + base
	default:
		return "unsafe.Pointer"
	}
}
