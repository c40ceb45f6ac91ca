// SPDX-License-Identifier: Unlicense OR MIT

/*

Package manifest aggregates disjoint groups of generated symbol names
into a single namespace.

A binding generation run produces several origin groups: functions from
the core API, functions from vendor extensions, and enumerated
constants. A Manifest is the union of those groups. Aggregation fails
if the same identifier appears twice, whether inside one group or
across two groups; a collision must never be resolved by shadowing
because a consumer could silently bind to the wrong definition.

*/
package manifest

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Origin is the generation pass a symbol came from.
type Origin uint8

const (
	OriginCore Origin = iota
	OriginExtension
	OriginEnum
)

func (o Origin) String() string {
	switch o {
	case OriginCore:
		return "core"
	case OriginExtension:
		return "extension"
	case OriginEnum:
		return "enum"
	default:
		return fmt.Sprintf("origin(%d)", uint8(o))
	}
}

// Symbol is an exported identifier and the origin group that defined it.
type Symbol struct {
	Name   string
	Origin Origin
}

// Group is one origin's list of identifiers, as produced by a
// generation pass.
type Group struct {
	Origin Origin
	Names  []string
}

// Manifest is the aggregated namespace. Symbols keep a stable
// association with exactly one origin.
type Manifest struct {
	symbols []Symbol
	byName  map[string]Symbol
}

// New unions the given groups into one namespace. Group order is
// preserved and names are sorted within each group, so identical
// inputs always produce an identical manifest. A duplicate name is an
// error naming the identifier and both origins.
func New(groups ...Group) (*Manifest, error) {
	n := 0
	for _, g := range groups {
		n += len(g.Names)
	}
	m := &Manifest{
		symbols: make([]Symbol, 0, n),
		byName:  make(map[string]Symbol, n),
	}
	for _, g := range groups {
		names := slices.Clone(g.Names)
		slices.Sort(names)
		for _, name := range names {
			if name == "" {
				return nil, fmt.Errorf("manifest: empty symbol name in %s group", g.Origin)
			}
			if prev, ok := m.byName[name]; ok {
				return nil, fmt.Errorf("manifest: duplicate symbol %q in %s and %s groups", name, prev.Origin, g.Origin)
			}
			sym := Symbol{Name: name, Origin: g.Origin}
			m.byName[name] = sym
			m.symbols = append(m.symbols, sym)
		}
	}
	return m, nil
}

// Symbols returns every aggregated symbol in deterministic order.
func (m *Manifest) Symbols() []Symbol {
	return slices.Clone(m.symbols)
}

// ByOrigin returns the sorted names contributed by one origin group.
func (m *Manifest) ByOrigin(o Origin) []string {
	var names []string
	for _, s := range m.symbols {
		if s.Origin == o {
			names = append(names, s.Name)
		}
	}
	return names
}

// Lookup reports whether name is exposed by the namespace and from
// which origin.
func (m *Manifest) Lookup(name string) (Symbol, bool) {
	s, ok := m.byName[name]
	return s, ok
}

func (m *Manifest) Len() int {
	return len(m.symbols)
}
