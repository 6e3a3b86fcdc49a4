// Package yaml loads site lists from YAML files.
package yaml

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/fwojciec/doccrawl"
	"gopkg.in/yaml.v3"
)

// DefaultSitesFile is the site list looked up when no path is given.
const DefaultSitesFile = "doccrawl.yml"

// File is the layout of a site list file:
//
//	sites:
//	  - name: electron
//	    url: https://www.electron.build/
//	    root_url: https://www.electron.build
//	    priority_keywords: [tutorial, guide]
type File struct {
	Sites []*doccrawl.Site `yaml:"sites"`
}

// ParseSites decodes a site list. Unknown keys are rejected so typos do not
// silently drop settings. Every site is validated and names must be unique.
func ParseSites(r io.Reader) ([]*doccrawl.Site, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, doccrawl.Errorf(doccrawl.EINVALID, "site list is empty")
		}
		return nil, doccrawl.Errorf(doccrawl.EINVALID, "invalid site list: %v", err)
	}
	if len(f.Sites) == 0 {
		return nil, doccrawl.Errorf(doccrawl.EINVALID, "site list is empty")
	}

	seen := make(map[string]struct{}, len(f.Sites))
	for i, site := range f.Sites {
		if site == nil {
			return nil, doccrawl.Errorf(doccrawl.EINVALID, "site %d is empty", i+1)
		}
		if site.Format == "" {
			site.Format = doccrawl.FormatText
		}
		if err := site.Validate(); err != nil {
			return nil, err
		}
		if _, ok := seen[site.Name]; ok {
			return nil, doccrawl.Errorf(doccrawl.EINVALID, "duplicate site name %q", site.Name)
		}
		seen[site.Name] = struct{}{}
	}
	return f.Sites, nil
}

// LoadSites reads and parses the site list at path.
func LoadSites(path string) ([]*doccrawl.Site, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, doccrawl.Errorf(doccrawl.ENOTFOUND, "site list %q not found", path)
		}
		return nil, err
	}
	return ParseSites(bytes.NewReader(data))
}

// FindSitesFile returns path if it is set, otherwise the first
// DefaultSitesFile found in dir or the XDG config directory. It returns ""
// when there is none.
func FindSitesFile(path, dir string) string {
	if path != "" {
		return path
	}
	candidates := []string{
		filepath.Join(dir, DefaultSitesFile),
		filepath.Join(xdg.ConfigHome, "doccrawl", DefaultSitesFile),
	}
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c
		}
	}
	return ""
}
