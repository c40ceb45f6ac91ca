// SPDX-License-Identifier: Unlicense OR MIT

package gles2

import (
	"os"
	"strings"
	"testing"

	"glbind.org/gogen"
	"glbind.org/manifest"
	"glbind.org/registry"
)

func TestSymbolsManifest(t *testing.T) {
	m, err := Symbols()
	if err != nil {
		t.Fatal(err)
	}
	want := len(coreFuncNames) + len(extFuncNames) + len(enumValueNames)
	if m.Len() != want {
		t.Fatalf("manifest has %d symbols, want %d", m.Len(), want)
	}
	checks := []struct {
		name   string
		origin manifest.Origin
	}{
		{"Clear", manifest.OriginCore},
		{"CreateShader", manifest.OriginCore},
		{"BindVertexArrayOES", manifest.OriginExtension},
		{"BLEND", manifest.OriginEnum},
		{"TEXTURE_MAX_ANISOTROPY_EXT", manifest.OriginEnum},
	}
	for _, c := range checks {
		sym, ok := m.Lookup(c.name)
		if !ok {
			t.Errorf("Lookup(%q) not found", c.name)
			continue
		}
		if sym.Origin != c.origin {
			t.Errorf("%s has origin %s, want %s", c.name, sym.Origin, c.origin)
		}
	}
}

func TestConstantValues(t *testing.T) {
	tests := []struct {
		name string
		got  uint32
		want uint32
	}{
		{"ARRAY_BUFFER", ARRAY_BUFFER, 0x8892},
		{"COLOR_BUFFER_BIT", COLOR_BUFFER_BIT, 0x4000},
		{"TEXTURE_MAX_ANISOTROPY_EXT", TEXTURE_MAX_ANISOTROPY_EXT, 0x84FE},
		{"VERTEX_ARRAY_BINDING_OES", VERTEX_ARRAY_BINDING_OES, 0x85B5},
		{"TRUE", TRUE, 1},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %#x, want %#x", tt.name, tt.got, tt.want)
		}
	}
}

func TestFunctionVariablesUnbound(t *testing.T) {
	// The package declares names only; nothing may bind them at init.
	if Clear != nil || CreateProgram != nil || BindVertexArrayOES != nil {
		t.Error("a function variable is bound without a loader")
	}
}

// TestRegeneration proves the checked-in files are exactly what the
// generator emits from testdata/gles2.xml.
func TestRegeneration(t *testing.T) {
	reg, err := registry.Load("testdata/gles2.xml")
	if err != nil {
		t.Fatal(err)
	}
	res, err := reg.Resolve(registry.Selection{
		API:     "gles2",
		Version: registry.Version{Major: 2, Minor: 0},
		Profile: registry.ProfileCore,
		Extensions: []string{
			"GL_OES_vertex_array_object",
			"GL_EXT_texture_filter_anisotropic",
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	files, _, err := gogen.Files(res, gogen.Options{
		Package: "gles2",
		Tool:    "glbind -api gles2@2.0 -profile core -ext GL_OES_vertex_array_object,GL_EXT_texture_filter_anisotropic",
	})
	if err != nil {
		t.Fatal(err)
	}
	for name, want := range files {
		got, err := os.ReadFile(name)
		if err != nil {
			t.Fatal(err)
		}
		if flat(got) != flat(want) {
			t.Errorf("%s differs from regenerated output", name)
		}
	}
	if len(files) != 5 {
		t.Errorf("generator emitted %d files, want 5", len(files))
	}
}

func flat(src []byte) string {
	return strings.Join(strings.Fields(string(src)), " ")
}
