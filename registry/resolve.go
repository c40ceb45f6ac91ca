// SPDX-License-Identifier: Unlicense OR MIT

package registry

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Profile selects which registry profile a resolution targets.
type Profile string

const (
	ProfileCore          Profile = "core"
	ProfileCompatibility Profile = "compatibility"
)

// Selection names the API surface to generate: an API, a version, a
// profile and an optional set of extensions.
type Selection struct {
	API        string
	Version    Version
	Profile    Profile
	Extensions []string
}

// Resolution is a selection resolved against a registry: three
// disjoint origin groups, each sorted by name. Commands promoted from
// an extension into core appear in the core group only, so every
// symbol has exactly one origin.
type Resolution struct {
	Selection Selection
	Core      []Command
	Ext       []Command
	Enums     []Enum
}

// Resolve expands a selection into the symbols it covers. Features of
// the API up to and including the selected version contribute the core
// group; core-profile removals withdraw symbols that later levels
// deprecated. A requirement naming an enum or command the registry
// never declares is an error rather than being dropped.
func (r *Registry) Resolve(sel Selection) (*Resolution, error) {
	switch sel.Profile {
	case ProfileCore, ProfileCompatibility:
	default:
		return nil, fmt.Errorf("registry: profile must be core or compatibility, got %q", sel.Profile)
	}
	if _, ok := r.Feature(sel.API, sel.Version); !ok {
		return nil, fmt.Errorf("registry: API %s has no version %s", sel.API, sel.Version)
	}
	features := r.FeaturesUpTo(sel.API, sel.Version)

	coreCmds := make(map[string]bool)
	enums := make(map[string]bool)
	for _, f := range features {
		for _, req := range f.Require {
			if !profileMatch(req.Profile, sel.Profile) {
				continue
			}
			for _, name := range req.Commands {
				coreCmds[name] = true
			}
			for _, name := range req.Enums {
				enums[name] = true
			}
		}
	}
	for _, f := range features {
		for _, rem := range f.Remove {
			if !profileMatch(rem.Profile, sel.Profile) {
				continue
			}
			for _, name := range rem.Commands {
				delete(coreCmds, name)
			}
			for _, name := range rem.Enums {
				delete(enums, name)
			}
		}
	}

	extCmds := make(map[string]bool)
	seenExt := make(map[string]bool)
	for _, name := range sel.Extensions {
		if seenExt[name] {
			continue
		}
		seenExt[name] = true
		ext, err := r.Extension(sel.API, name)
		if err != nil {
			return nil, err
		}
		if !ext.SupportsAPI(sel.API) {
			return nil, fmt.Errorf("registry: extension %s does not support API %s", name, sel.API)
		}
		for _, req := range ext.Require {
			if !profileMatch(req.Profile, sel.Profile) {
				continue
			}
			for _, cname := range req.Commands {
				// Promoted commands keep their core origin.
				if !coreCmds[cname] {
					extCmds[cname] = true
				}
			}
			for _, ename := range req.Enums {
				enums[ename] = true
			}
		}
	}

	res := &Resolution{Selection: sel}
	var err error
	if res.Core, err = r.lookupCommands(coreCmds); err != nil {
		return nil, err
	}
	if res.Ext, err = r.lookupCommands(extCmds); err != nil {
		return nil, err
	}
	if res.Enums, err = r.lookupEnums(enums); err != nil {
		return nil, err
	}
	return res, nil
}

func profileMatch(declared string, sel Profile) bool {
	return declared == "" || declared == string(sel)
}

func (r *Registry) lookupCommands(set map[string]bool) ([]Command, error) {
	names := maps.Keys(set)
	slices.Sort(names)
	cmds := make([]Command, 0, len(names))
	for _, name := range names {
		cmd, ok := r.Commands[name]
		if !ok {
			return nil, fmt.Errorf("registry: required command %s is not declared", name)
		}
		cmds = append(cmds, cmd)
	}
	return cmds, nil
}

func (r *Registry) lookupEnums(set map[string]bool) ([]Enum, error) {
	names := maps.Keys(set)
	slices.Sort(names)
	es := make([]Enum, 0, len(names))
	for _, name := range names {
		e, ok := r.Enums[name]
		if !ok {
			return nil, fmt.Errorf("registry: required enum %s is not declared", name)
		}
		es = append(es, e)
	}
	return es, nil
}
