package doccrawl

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Format selects how page content is rendered before it is persisted.
type Format string

// Supported content formats.
const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
)

// Site describes a documentation site to crawl.
// A Site is read-only for the duration of a crawl.
type Site struct {
	// Name identifies the site and names its output directory.
	Name string `yaml:"name"`

	// URL is the seed URL the crawl starts from.
	URL string `yaml:"url"`

	// RootURL scopes link discovery: only links containing it are followed.
	RootURL string `yaml:"root_url"`

	// PriorityKeywords move matching links to the front of the frontier.
	PriorityKeywords []string `yaml:"priority_keywords"`

	// Exclude holds extra regex patterns rejected in every tier.
	Exclude []string `yaml:"exclude"`

	// Format is the content format written to storage. Defaults to FormatText.
	Format Format `yaml:"format"`
}

// Validate returns an error if the site contains invalid fields.
func (s *Site) Validate() error {
	if s.Name == "" {
		return Errorf(EINVALID, "site name required")
	}
	if strings.ContainsAny(s.Name, `/\`) {
		return Errorf(EINVALID, "site name %q must not contain path separators", s.Name)
	}
	if s.URL == "" {
		return Errorf(EINVALID, "site %q: seed URL required", s.Name)
	}
	if s.RootURL == "" {
		return Errorf(EINVALID, "site %q: root URL required", s.Name)
	}
	switch s.Format {
	case "", FormatText, FormatMarkdown:
	default:
		return Errorf(EINVALID, "site %q: unknown format %q", s.Name, s.Format)
	}
	for _, pattern := range s.Exclude {
		if _, err := regexp.Compile(pattern); err != nil {
			return Errorf(EINVALID, "site %q: invalid exclude pattern %q: %v", s.Name, pattern, err)
		}
	}
	return nil
}

// Policy returns the URL policy for this site, including its exclude patterns.
// Patterns must have passed Validate; invalid ones are skipped.
func (s *Site) Policy() *URLPolicy {
	p := NewURLPolicy()
	for _, pattern := range s.Exclude {
		re, err := regexp.Compile(pattern)
		if err != nil {
			continue
		}
		p.Exclude = append(p.Exclude, re)
	}
	return p
}

// DisplayName returns the site name in title case, as used in file headers.
// Every run of letters starts a new word, so "my_site" becomes "My_Site" and
// "docs2go" becomes "Docs2Go".
func (s *Site) DisplayName() string {
	caser := cases.Title(language.Und)
	var b strings.Builder
	word := -1
	for i, r := range s.Name {
		switch {
		case unicode.IsLetter(r) && word < 0:
			word = i
		case !unicode.IsLetter(r) && word >= 0:
			b.WriteString(caser.String(s.Name[word:i]))
			word = -1
			fallthrough
		case !unicode.IsLetter(r):
			b.WriteRune(r)
		}
	}
	if word >= 0 {
		b.WriteString(caser.String(s.Name[word:]))
	}
	return b.String()
}

// DefaultSites returns the built-in site list used when no configuration
// file is given.
func DefaultSites() []*Site {
	return []*Site{
		{
			Name:             "electron",
			URL:              "https://www.electron.build/",
			RootURL:          "https://www.electron.build",
			PriorityKeywords: []string{},
		},
	}
}
