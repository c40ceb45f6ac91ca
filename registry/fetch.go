// SPDX-License-Identifier: Unlicense OR MIT

package registry

import (
	"context"
	"fmt"
	"net/http"
	"os"
)

// KhronosGL is the canonical location of the OpenGL registry.
const KhronosGL = "https://registry.khronos.org/OpenGL/xml/gl.xml"

// Load parses a registry document from disk.
func Load(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// Fetch downloads and parses a registry document.
func Fetch(ctx context.Context, url string) (*Registry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("registry: fetching %s: %s", url, resp.Status)
	}
	return Decode(resp.Body)
}
