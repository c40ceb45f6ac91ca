// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"glbind.org/registry"
)

func TestParseSelections(t *testing.T) {
	sels, err := parseSelections("gl@3.3,gles2@2.0", "core", "GL_EXT_a, GL_EXT_b")
	if err != nil {
		t.Fatal(err)
	}
	if len(sels) != 2 {
		t.Fatalf("parsed %d selections, want 2", len(sels))
	}
	if sels[0].API != "gl" || sels[0].Version != (registry.Version{Major: 3, Minor: 3}) {
		t.Errorf("first selection = %+v", sels[0])
	}
	if sels[1].API != "gles2" || sels[1].Version != (registry.Version{Major: 2, Minor: 0}) {
		t.Errorf("second selection = %+v", sels[1])
	}
	for _, sel := range sels {
		if sel.Profile != registry.ProfileCore {
			t.Errorf("profile = %q", sel.Profile)
		}
		if len(sel.Extensions) != 2 || sel.Extensions[0] != "GL_EXT_a" || sel.Extensions[1] != "GL_EXT_b" {
			t.Errorf("extensions = %v", sel.Extensions)
		}
	}

	for _, bad := range []string{"", "gl", "gl@", "@3.3", "gl@three"} {
		if _, err := parseSelections(bad, "core", ""); err == nil {
			t.Errorf("parseSelections(%q) did not fail", bad)
		}
	}
}

func TestInvocation(t *testing.T) {
	sel := registry.Selection{
		API:        "gles2",
		Version:    registry.Version{Major: 2, Minor: 0},
		Profile:    registry.ProfileCore,
		Extensions: []string{"GL_OES_vertex_array_object"},
	}
	want := "glbind -api gles2@2.0 -profile core -ext GL_OES_vertex_array_object"
	if got := invocation(sel); got != want {
		t.Errorf("invocation = %q, want %q", got, want)
	}
}

const testRegistryXML = `<registry>
    <enums namespace="GL">
        <enum value="0x1F03" name="GL_EXTENSIONS"/>
    </enums>
    <commands namespace="GL">
        <command>
            <proto>void <name>glClear</name></proto>
            <param><ptype>GLbitfield</ptype> <name>mask</name></param>
        </command>
    </commands>
    <feature api="gl" name="GL_VERSION_1_0" number="1.0">
        <require>
            <enum name="GL_EXTENSIONS"/>
            <command name="glClear"/>
        </require>
    </feature>
</registry>`

func TestGenerateFromFile(t *testing.T) {
	dir := t.TempDir()
	regPath := filepath.Join(dir, "gl.xml")
	if err := os.WriteFile(regPath, []byte(testRegistryXML), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "out")

	defer resetFlags(t)
	*registryPath = regPath
	*apiSpecs = "gl@1.0"
	*profileName = "compatibility"
	*extNames = ""
	*destPath = out
	*pkgName = ""
	*listOnly = false

	if err := mainErr(); err != nil {
		t.Fatal(err)
	}
	src, err := os.ReadFile(filepath.Join(out, "funcs.go"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(src), "package gl") {
		t.Error("generated package name does not default to the API name")
	}
	if !strings.Contains(string(src), "Clear func(mask uint32)") {
		t.Errorf("funcs.go missing the generated command:\n%s", src)
	}
}

func resetFlags(t *testing.T) {
	t.Helper()
	*registryPath = registry.KhronosGL
	*apiSpecs = ""
	*profileName = "core"
	*extNames = ""
	*destPath = "."
	*pkgName = ""
	*listOnly = false
}
