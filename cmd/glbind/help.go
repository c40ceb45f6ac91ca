// SPDX-License-Identifier: Unlicense OR MIT

package main

const mainUsage = `The glbind command generates Go binding packages from the Khronos
XML API registry.

Usage:

	glbind -api <name@version> [flags]

For every selected API, glbind resolves the features up to the
requested version plus the requested extensions, aggregates the
resulting core functions, extension functions and enum values into one
namespace, and emits that namespace as a Go package. Aggregation fails
if any two groups collide on a name; nothing is ever shadowed.

The mandatory -api flag selects one or more APIs, comma separated,
each as name@major.minor. For example -api gl@3.3 or
-api gl@3.3,gles2@2.0. With several selections each API generates
into its own subdirectory of the output directory, and generation
runs in parallel.

The -registry flag names the registry document, either a local file
or an http(s) URL. It defaults to the canonical Khronos gl.xml.

The -profile flag selects the core or compatibility profile. The core
profile excludes symbols the registry marks as removed.

The -ext flag lists extension names to include, comma separated, for
example -ext GL_EXT_texture_filter_anisotropic. An extension that does
not support a selected API is an error.

The -o flag names the output directory. The -pkg flag overrides the Go
package name of the generated code, which defaults to the API name;
it cannot be combined with multiple API selections.

The -list flag prints the resolved symbol manifest, one origin-tagged
name per line, and writes no files.
`
