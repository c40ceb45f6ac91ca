// SPDX-License-Identifier: Unlicense OR MIT

/*

Package registry parses the Khronos XML API registry and resolves a
feature and extension selection into the symbol groups a binding
generator consumes.

The registry describes every enum and command of an API family along
with the features (versioned API levels) and vendor extensions that
require them. Parsing keeps only what symbol generation needs: names,
values, prototypes and the require/remove relationships.

*/
package registry

import (
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// Enum is a named constant declared by an <enums> block.
type Enum struct {
	Name      string
	Value     string
	Namespace string
	Type      string
	Group     string
	Vendor    string
}

// Command is a function prototype declared by a <commands> block.
type Command struct {
	Name   string
	Return CType
	Params []Param
}

// Param is one parameter of a command prototype.
type Param struct {
	Name  string
	Group string
	Type  CType
}

// Group is a named collection of enum names, used by the registry to
// annotate parameter domains.
type Group struct {
	Name  string
	Enums []string
}

// Version is a feature's API level.
type Version struct {
	Major, Minor int
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Compare returns -1, 0 or 1 ordering v against o.
func (v Version) Compare(o Version) int {
	switch {
	case v.Major != o.Major:
		if v.Major < o.Major {
			return -1
		}
		return 1
	case v.Minor != o.Minor:
		if v.Minor < o.Minor {
			return -1
		}
		return 1
	default:
		return 0
	}
}

// ParseVersion parses a "major.minor" version number.
func ParseVersion(s string) (Version, error) {
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return Version{}, fmt.Errorf("registry: malformed version %q", s)
	}
	major, err := strconv.Atoi(s[:dot])
	if err != nil {
		return Version{}, fmt.Errorf("registry: malformed version %q", s)
	}
	minor, err := strconv.Atoi(s[dot+1:])
	if err != nil {
		return Version{}, fmt.Errorf("registry: malformed version %q", s)
	}
	return Version{Major: major, Minor: minor}, nil
}

// Require lists the enum and command names demanded by one <require>
// block. An empty Profile applies to every profile.
type Require struct {
	Profile  string
	Enums    []string
	Commands []string
}

// Remove lists the names a feature withdraws from a profile, as in the
// core profile removals of GL 3.2.
type Remove struct {
	Profile  string
	Enums    []string
	Commands []string
}

// Feature is a versioned API level such as GL_VERSION_3_2.
type Feature struct {
	Name    string
	API     string
	Version Version
	Require []Require
	Remove  []Remove
}

// Extension is a vendor extension and the APIs it supports.
type Extension struct {
	Name      string
	Supported []string
	Require   []Require
}

// SupportsAPI reports whether the extension lists api in its supported
// set. The "glcore" tag counts as support for the gl API.
func (e Extension) SupportsAPI(api string) bool {
	for _, s := range e.Supported {
		if s == api || (api == "gl" && s == "glcore") {
			return true
		}
	}
	return false
}

// Registry is the parsed registry document.
type Registry struct {
	Comment    string
	Enums      map[string]Enum
	Commands   map[string]Command
	Groups     map[string]Group
	Features   map[string][]Feature            // by API, ascending version
	Extensions map[string]map[string]Extension // by API, by name
}

// Feature returns the feature declaring exactly the given API level.
func (r *Registry) Feature(api string, v Version) (Feature, bool) {
	for _, f := range r.Features[api] {
		if f.Version == v {
			return f, true
		}
	}
	return Feature{}, false
}

// FeaturesUpTo returns the API's features up to and including v, in
// ascending version order.
func (r *Registry) FeaturesUpTo(api string, v Version) []Feature {
	var fs []Feature
	for _, f := range r.Features[api] {
		if f.Version.Compare(v) <= 0 {
			fs = append(fs, f)
		}
	}
	return fs
}

// Extension returns the named extension if it exists and supports api.
func (r *Registry) Extension(api, name string) (Extension, error) {
	ext, ok := r.Extensions[api][name]
	if !ok {
		return Extension{}, fmt.Errorf("registry: unknown extension %s for API %s", name, api)
	}
	return ext, nil
}

type (
	xmlRegistry struct {
		Comment    string         `xml:"comment"`
		Groups     []xmlGroup     `xml:"groups>group"`
		Enums      []xmlEnums     `xml:"enums"`
		Commands   []xmlCommand   `xml:"commands>command"`
		Features   []xmlFeature   `xml:"feature"`
		Extensions []xmlExtension `xml:"extensions>extension"`
	}
	xmlGroup struct {
		Name  string   `xml:"name,attr"`
		Enums []xmlRef `xml:"enum"`
	}
	xmlRef struct {
		Name string `xml:"name,attr"`
	}
	xmlEnums struct {
		Namespace string    `xml:"namespace,attr"`
		Type      string    `xml:"type,attr"`
		Group     string    `xml:"group,attr"`
		Vendor    string    `xml:"vendor,attr"`
		Enums     []xmlEnum `xml:"enum"`
	}
	xmlEnum struct {
		Name  string `xml:"name,attr"`
		Value string `xml:"value,attr"`
	}
	xmlCommand struct {
		Proto  xmlProto   `xml:"proto"`
		Params []xmlProto `xml:"param"`
	}
	xmlProto struct {
		Raw   string `xml:",innerxml"`
		Group string `xml:"group,attr"`
		Name  string `xml:"name"`
		Ptype string `xml:"ptype"`
	}
	xmlFeature struct {
		API     string       `xml:"api,attr"`
		Name    string       `xml:"name,attr"`
		Number  string       `xml:"number,attr"`
		Require []xmlRequire `xml:"require"`
		Remove  []xmlRequire `xml:"remove"`
	}
	xmlExtension struct {
		Name      string       `xml:"name,attr"`
		Supported string       `xml:"supported,attr"`
		Require   []xmlRequire `xml:"require"`
	}
	xmlRequire struct {
		Profile  string   `xml:"profile,attr"`
		Enums    []xmlRef `xml:"enum"`
		Commands []xmlRef `xml:"command"`
	}
)

// Decode parses a registry XML document. Unused enum ranges and type
// declarations are skipped; they carry no symbol names.
func Decode(r io.Reader) (*Registry, error) {
	var doc xmlRegistry
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("registry: %w", err)
	}
	reg := &Registry{
		Comment:    strings.TrimSpace(doc.Comment),
		Enums:      make(map[string]Enum),
		Commands:   make(map[string]Command),
		Groups:     make(map[string]Group),
		Features:   make(map[string][]Feature),
		Extensions: make(map[string]map[string]Extension),
	}
	for _, g := range doc.Groups {
		grp := Group{Name: g.Name}
		for _, e := range g.Enums {
			grp.Enums = append(grp.Enums, e.Name)
		}
		reg.Groups[g.Name] = grp
	}
	for _, block := range doc.Enums {
		for _, e := range block.Enums {
			if e.Name == "" {
				continue
			}
			reg.Enums[e.Name] = Enum{
				Name:      e.Name,
				Value:     e.Value,
				Namespace: block.Namespace,
				Type:      block.Type,
				Group:     block.Group,
				Vendor:    block.Vendor,
			}
		}
	}
	for _, c := range doc.Commands {
		cmd, err := decodeCommand(c)
		if err != nil {
			return nil, err
		}
		reg.Commands[cmd.Name] = cmd
	}
	for _, f := range doc.Features {
		v, err := ParseVersion(f.Number)
		if err != nil {
			return nil, fmt.Errorf("registry: feature %s: %w", f.Name, err)
		}
		reg.Features[f.API] = append(reg.Features[f.API], Feature{
			Name:    f.Name,
			API:     f.API,
			Version: v,
			Require: decodeRequires(f.Require),
			Remove:  decodeRemoves(f.Remove),
		})
	}
	for _, fs := range reg.Features {
		sort.Slice(fs, func(i, j int) bool {
			return fs[i].Version.Compare(fs[j].Version) < 0
		})
	}
	for _, x := range doc.Extensions {
		ext := Extension{
			Name:      x.Name,
			Supported: strings.Split(x.Supported, "|"),
			Require:   decodeRequires(x.Require),
		}
		for _, api := range ext.Supported {
			// glcore marks gl support restricted to the core profile.
			if api == "glcore" {
				api = "gl"
			}
			if reg.Extensions[api] == nil {
				reg.Extensions[api] = make(map[string]Extension)
			}
			reg.Extensions[api][x.Name] = ext
		}
	}
	return reg, nil
}

func decodeCommand(c xmlCommand) (Command, error) {
	if c.Proto.Name == "" {
		return Command{}, fmt.Errorf("registry: command without a prototype name")
	}
	cmd := Command{
		Name:   c.Proto.Name,
		Return: parseCType(c.Proto.Raw, c.Proto.Ptype, c.Proto.Name),
	}
	for _, p := range c.Params {
		cmd.Params = append(cmd.Params, Param{
			Name:  p.Name,
			Group: p.Group,
			Type:  parseCType(p.Raw, p.Ptype, p.Name),
		})
	}
	return cmd, nil
}

func decodeRequires(rs []xmlRequire) []Require {
	var out []Require
	for _, r := range rs {
		req := Require{Profile: r.Profile}
		for _, e := range r.Enums {
			req.Enums = append(req.Enums, e.Name)
		}
		for _, c := range r.Commands {
			req.Commands = append(req.Commands, c.Name)
		}
		out = append(out, req)
	}
	return out
}

func decodeRemoves(rs []xmlRequire) []Remove {
	var out []Remove
	for _, r := range rs {
		rem := Remove{Profile: r.Profile}
		for _, e := range r.Enums {
			rem.Enums = append(rem.Enums, e.Name)
		}
		for _, c := range r.Commands {
			rem.Commands = append(rem.Commands, c.Name)
		}
		out = append(out, rem)
	}
	return out
}
