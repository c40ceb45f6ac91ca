// SPDX-License-Identifier: Unlicense OR MIT

/*

Package gogen emits a resolved registry selection as a Go package.

The generated package is the aggregation surface of the binding
pipeline: one namespace exposing the union of the core functions, the
extension functions and the enum values of a selection. Emission
refuses to run if any two origin groups collide on a name, so a
conflict can never be papered over by shadowing.

The generated function variables are declared unbound. Wiring them to
real entry points is the consumer's loader concern and is deliberately
not generated here.

*/
package gogen

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/exp/slices"
	"golang.org/x/tools/imports"

	"glbind.org/manifest"
	"glbind.org/registry"
)

// Options control the shape of the emitted package.
type Options struct {
	// Package is the Go package name of the generated files.
	Package string
	// Tool is the invocation recorded in the generated-file headers;
	// it defaults to "glbind".
	Tool string
}

type goCommand struct {
	name string
	cmd  registry.Command
}

type goEnum struct {
	name  string
	value string
}

// Files renders the generated package and returns its files keyed by
// name. The contents are gofmt-clean and byte-identical for identical
// resolutions.
func Files(res *registry.Resolution, opts Options) (map[string][]byte, *manifest.Manifest, error) {
	if opts.Package == "" {
		return nil, nil, fmt.Errorf("gogen: no package name")
	}
	core := commandList(res.Core)
	ext := commandList(res.Ext)
	enums := enumList(res.Enums)

	m, err := aggregate(core, ext, enums)
	if err != nil {
		return nil, nil, err
	}

	files := map[string][]byte{
		"doc.go":     docFile(res, opts),
		"enums.go":   enumsFile(enums, opts),
		"funcs.go":   funcsFile(core, res, opts),
		"symbols.go": symbolsFile(core, ext, enums, opts),
	}
	if len(ext) > 0 {
		files["ext.go"] = extFile(ext, res, opts)
	}
	fmtOpts := &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	}
	for name, src := range files {
		out, err := imports.Process(name, src, fmtOpts)
		if err != nil {
			return nil, nil, fmt.Errorf("gogen: formatting %s: %w", name, err)
		}
		files[name] = out
	}
	return files, m, nil
}

// Generate renders the package and writes its files into dir,
// creating it if needed.
func Generate(res *registry.Resolution, opts Options, dir string) error {
	files, _, err := Files(res, opts)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), files[name], 0o644); err != nil {
			return err
		}
	}
	return nil
}

// Manifest aggregates a resolution's origin groups under the Go names
// the generated package would export, without emitting anything.
func Manifest(res *registry.Resolution) (*manifest.Manifest, error) {
	return aggregate(commandList(res.Core), commandList(res.Ext), enumList(res.Enums))
}

func aggregate(core, ext []goCommand, enums []goEnum) (*manifest.Manifest, error) {
	m, err := manifest.New(
		manifest.Group{Origin: manifest.OriginCore, Names: commandNames(core)},
		manifest.Group{Origin: manifest.OriginExtension, Names: commandNames(ext)},
		manifest.Group{Origin: manifest.OriginEnum, Names: enumNames(enums)},
	)
	if err != nil {
		return nil, fmt.Errorf("gogen: %w", err)
	}
	return m, nil
}

func commandList(cmds []registry.Command) []goCommand {
	out := make([]goCommand, len(cmds))
	for i, c := range cmds {
		out[i] = goCommand{name: goFuncName(c.Name), cmd: c}
	}
	slices.SortFunc(out, func(a, b goCommand) bool {
		return a.name < b.name
	})
	return out
}

func enumList(enums []registry.Enum) []goEnum {
	out := make([]goEnum, len(enums))
	for i, e := range enums {
		out[i] = goEnum{name: goEnumName(e.Name), value: constValue(e.Value)}
	}
	slices.SortFunc(out, func(a, b goEnum) bool {
		return a.name < b.name
	})
	return out
}

func commandNames(cmds []goCommand) []string {
	names := make([]string, len(cmds))
	for i, c := range cmds {
		names[i] = c.name
	}
	return names
}

func enumNames(enums []goEnum) []string {
	names := make([]string, len(enums))
	for i, e := range enums {
		names[i] = e.name
	}
	return names
}

// valueRE accepts the numeric prefix of a registry enum value,
// dropping C integer suffixes like the u in 0xFFFFFFFFu.
var valueRE = regexp.MustCompile(`^-?(0[xX][0-9a-fA-F]+|[0-9]+)`)

func constValue(v string) string {
	if m := valueRE.FindString(v); m != "" {
		return m
	}
	return v
}

func header(b *bytes.Buffer, opts Options) {
	tool := opts.Tool
	if tool == "" {
		tool = "glbind"
	}
	fmt.Fprintf(b, "// Code generated by %s; DO NOT EDIT.\n", tool)
	b.WriteString("// SPDX-License-Identifier: Unlicense OR MIT\n\n")
}

func selectionDoc(sel registry.Selection) string {
	return fmt.Sprintf("%s %s (%s profile)", sel.API, sel.Version, sel.Profile)
}

func docFile(res *registry.Resolution, opts Options) []byte {
	var b bytes.Buffer
	header(&b, opts)
	sel := res.Selection
	fmt.Fprintf(&b, "// Package %s exposes the %s API as a single namespace:\n", opts.Package, selectionDoc(sel))
	b.WriteString("// core functions, extension functions and enum values aggregated\n")
	b.WriteString("// from the Khronos registry.\n")
	b.WriteString("//\n")
	b.WriteString("// The function variables are declared unbound; assigning them to\n")
	b.WriteString("// real entry points is the loader's concern, not this package's.\n")
	if len(sel.Extensions) > 0 {
		b.WriteString("//\n// Included extensions:\n//\n")
		exts := slices.Clone(sel.Extensions)
		slices.Sort(exts)
		for _, e := range exts {
			fmt.Fprintf(&b, "//\t%s\n", e)
		}
	}
	fmt.Fprintf(&b, "package %s\n\n", opts.Package)
	b.WriteString("// Enum is a value from the GLenum name space.\n")
	b.WriteString("type Enum uint32\n")
	return b.Bytes()
}

func enumsFile(enums []goEnum, opts Options) []byte {
	var b bytes.Buffer
	header(&b, opts)
	fmt.Fprintf(&b, "package %s\n\n", opts.Package)
	b.WriteString("const (\n")
	for _, e := range enums {
		fmt.Fprintf(&b, "\t%s = %s\n", e.name, e.value)
	}
	b.WriteString(")\n")
	return b.Bytes()
}

func funcsFile(cmds []goCommand, res *registry.Resolution, opts Options) []byte {
	var b bytes.Buffer
	header(&b, opts)
	fmt.Fprintf(&b, "package %s\n\n", opts.Package)
	writeImports(&b, cmds)
	fmt.Fprintf(&b, "// Core commands of %s.\n", selectionDoc(res.Selection))
	writeVars(&b, cmds)
	return b.Bytes()
}

func extFile(cmds []goCommand, res *registry.Resolution, opts Options) []byte {
	var b bytes.Buffer
	header(&b, opts)
	fmt.Fprintf(&b, "package %s\n\n", opts.Package)
	writeImports(&b, cmds)
	b.WriteString("// Extension commands of the selection.\n")
	writeVars(&b, cmds)
	return b.Bytes()
}

func writeImports(b *bytes.Buffer, cmds []goCommand) {
	for _, c := range cmds {
		if strings.Contains(signature(c.cmd), "unsafe.Pointer") {
			b.WriteString("import \"unsafe\"\n\n")
			return
		}
	}
}

func writeVars(b *bytes.Buffer, cmds []goCommand) {
	b.WriteString("var (\n")
	for i, c := range cmds {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(b, "\t// %s\n", cSignature(c.cmd))
		fmt.Fprintf(b, "\t%s %s\n", c.name, signature(c.cmd))
	}
	b.WriteString(")\n")
}

// signature renders the Go type of a generated function variable.
func signature(cmd registry.Command) string {
	var b strings.Builder
	b.WriteString("func(")
	for i, p := range cmd.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(goParamName(p.Name))
		b.WriteString(" ")
		b.WriteString(goType(p.Type))
	}
	b.WriteString(")")
	if ret := goType(cmd.Return); ret != "" {
		b.WriteString(" ")
		b.WriteString(ret)
	}
	return b.String()
}

// cSignature renders the original C prototype for the doc comment.
func cSignature(cmd registry.Command) string {
	var b strings.Builder
	b.WriteString(cmd.Return.String())
	b.WriteString(" ")
	b.WriteString(cmd.Name)
	b.WriteString("(")
	for i, p := range cmd.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Type.String())
		b.WriteString(" ")
		b.WriteString(p.Name)
	}
	b.WriteString(")")
	return b.String()
}

func symbolsFile(core, ext []goCommand, enums []goEnum, opts Options) []byte {
	var b bytes.Buffer
	header(&b, opts)
	fmt.Fprintf(&b, "package %s\n\n", opts.Package)
	b.WriteString("import \"glbind.org/manifest\"\n\n")
	b.WriteString("var (\n")
	writeNameTable(&b, "coreFuncNames", commandNames(core))
	writeNameTable(&b, "extFuncNames", commandNames(ext))
	writeNameTable(&b, "enumValueNames", enumNames(enums))
	b.WriteString(")\n\n")
	b.WriteString("// Symbols returns the manifest of every name this package exposes,\n")
	b.WriteString("// tagged with the origin group that produced it.\n")
	b.WriteString("func Symbols() (*manifest.Manifest, error) {\n")
	b.WriteString("\treturn manifest.New(\n")
	b.WriteString("\t\tmanifest.Group{Origin: manifest.OriginCore, Names: coreFuncNames},\n")
	b.WriteString("\t\tmanifest.Group{Origin: manifest.OriginExtension, Names: extFuncNames},\n")
	b.WriteString("\t\tmanifest.Group{Origin: manifest.OriginEnum, Names: enumValueNames},\n")
	b.WriteString("\t)\n")
	b.WriteString("}\n")
	return b.Bytes()
}

func writeNameTable(b *bytes.Buffer, ident string, names []string) {
	if len(names) == 0 {
		fmt.Fprintf(b, "\t%s []string\n", ident)
		return
	}
	fmt.Fprintf(b, "\t%s = []string{\n", ident)
	for _, n := range names {
		fmt.Fprintf(b, "\t\t%q,\n", n)
	}
	b.WriteString("\t}\n")
}
