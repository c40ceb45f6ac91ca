// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"glbind.org/gogen"
	"glbind.org/registry"
)

var (
	registryPath = flag.String("registry", registry.KhronosGL, "registry XML file or URL")
	apiSpecs     = flag.String("api", "", "comma separated API selections, each as name@major.minor (e.g. gl@3.3,gles2@2.0)")
	profileName  = flag.String("profile", "core", "registry profile (core or compatibility)")
	extNames     = flag.String("ext", "", "comma separated extension names to include")
	destPath     = flag.String("o", ".", "output directory.\nEach API generates into its own subdirectory when several are selected.")
	pkgName      = flag.String("pkg", "", "package name of the generated code; defaults to the API name")
	listOnly     = flag.Bool("list", false, "print the resolved symbol manifest and write nothing")
)

func main() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, mainUsage)
	}
	flag.Parse()
	if err := mainErr(); err != nil {
		fmt.Fprintf(os.Stderr, "glbind: %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}

func mainErr() error {
	if *apiSpecs == "" {
		return errors.New("please specify -api")
	}
	sels, err := parseSelections(*apiSpecs, *profileName, *extNames)
	if err != nil {
		return err
	}
	if *pkgName != "" && len(sels) > 1 {
		return errors.New("-pkg cannot be combined with multiple -api selections")
	}
	reg, err := loadRegistry(context.Background(), *registryPath)
	if err != nil {
		return err
	}
	if *listOnly {
		for _, sel := range sels {
			if err := listManifest(reg, sel); err != nil {
				return err
			}
		}
		return nil
	}
	multi := len(sels) > 1
	var works errgroup.Group
	for _, sel := range sels {
		sel := sel
		works.Go(func() error {
			res, err := reg.Resolve(sel)
			if err != nil {
				return err
			}
			pkg := *pkgName
			if pkg == "" {
				pkg = sel.API
			}
			dir := *destPath
			if multi {
				dir = filepath.Join(dir, sel.API)
			}
			opts := gogen.Options{Package: pkg, Tool: invocation(sel)}
			return gogen.Generate(res, opts, dir)
		})
	}
	return works.Wait()
}

func parseSelections(apis, profile, exts string) ([]registry.Selection, error) {
	var extensions []string
	for _, e := range strings.Split(exts, ",") {
		if e = strings.TrimSpace(e); e != "" {
			extensions = append(extensions, e)
		}
	}
	var sels []registry.Selection
	for _, spec := range strings.Split(apis, ",") {
		spec = strings.TrimSpace(spec)
		if spec == "" {
			continue
		}
		at := strings.IndexByte(spec, '@')
		if at <= 0 || at == len(spec)-1 {
			return nil, fmt.Errorf("invalid -api selection %q, expected name@major.minor", spec)
		}
		v, err := registry.ParseVersion(spec[at+1:])
		if err != nil {
			return nil, fmt.Errorf("invalid -api selection %q: %w", spec, err)
		}
		sels = append(sels, registry.Selection{
			API:        spec[:at],
			Version:    v,
			Profile:    registry.Profile(profile),
			Extensions: extensions,
		})
	}
	if len(sels) == 0 {
		return nil, errors.New("please specify -api")
	}
	return sels, nil
}

func loadRegistry(ctx context.Context, path string) (*registry.Registry, error) {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return registry.Fetch(ctx, path)
	}
	return registry.Load(path)
}

func listManifest(reg *registry.Registry, sel registry.Selection) error {
	res, err := reg.Resolve(sel)
	if err != nil {
		return err
	}
	m, err := gogen.Manifest(res)
	if err != nil {
		return err
	}
	fmt.Printf("# %s@%s %s: %d symbols\n", sel.API, sel.Version, sel.Profile, m.Len())
	for _, sym := range m.Symbols() {
		fmt.Printf("%-9s %s\n", sym.Origin, sym.Name)
	}
	return nil
}

// invocation is the canonical command line recorded in the headers of
// the generated files, so a regeneration is reproducible from the
// files alone.
func invocation(sel registry.Selection) string {
	var b strings.Builder
	fmt.Fprintf(&b, "glbind -api %s@%s -profile %s", sel.API, sel.Version, sel.Profile)
	if len(sel.Extensions) > 0 {
		fmt.Fprintf(&b, " -ext %s", strings.Join(sel.Extensions, ","))
	}
	return b.String()
}
