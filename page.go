package doccrawl

import (
	"context"
	"strings"
	"time"
)

// Page is a fetched page. It is produced once per fetch and never modified.
type Page struct {
	URL     string
	Title   string
	Content string // cleaned text, or markdown when the site format asks for it
	Links   []string
}

// NewPage builds a Page, trimming content and dropping empty and duplicate
// links while keeping their order.
func NewPage(url, title, content string, links []string) *Page {
	seen := make(map[string]struct{}, len(links))
	kept := make([]string, 0, len(links))
	for _, link := range links {
		if link == "" {
			continue
		}
		if _, ok := seen[link]; ok {
			continue
		}
		seen[link] = struct{}{}
		kept = append(kept, link)
	}
	return &Page{
		URL:     url,
		Title:   strings.TrimSpace(title),
		Content: strings.TrimSpace(content),
		Links:   kept,
	}
}

// FetchResult is the outcome of fetching one URL: either a Page or an error.
type FetchResult struct {
	URL  string
	Page *Page
	Err  error
}

// OK reports whether the fetch produced a page.
func (r FetchResult) OK() bool {
	return r.Err == nil && r.Page != nil
}

// HasContent reports whether the fetch produced a page with non-empty content.
func (r FetchResult) HasContent() bool {
	return r.OK() && r.Page.Content != ""
}

// PageFetcher fetches a URL and returns its title, text content and links.
// Implementations must bound the time spent on one URL.
type PageFetcher interface {
	FetchPage(ctx context.Context, site *Site, url string) (*Page, error)
}

// PageStore persists admitted pages.
// The key is unique per page within a site crawl.
type PageStore interface {
	Persist(ctx context.Context, site *Site, key string, page *Page) error
}

// Admitter decides whether a fetched page is kept.
type Admitter interface {
	Admit(ctx context.Context, site *Site, page *Page) bool
}

// AdmitterFunc adapts a function to the Admitter interface.
type AdmitterFunc func(ctx context.Context, site *Site, page *Page) bool

// Admit calls f.
func (f AdmitterFunc) Admit(ctx context.Context, site *Site, page *Page) bool {
	return f(ctx, site, page)
}

// AdmitAll admits every page. It is the default admission policy.
var AdmitAll Admitter = AdmitterFunc(func(context.Context, *Site, *Page) bool { return true })

// MultiStore persists a page to each store in order.
// It stops at the first error.
type MultiStore []PageStore

// Persist implements PageStore.
func (m MultiStore) Persist(ctx context.Context, site *Site, key string, page *Page) error {
	for _, s := range m {
		if err := s.Persist(ctx, site, key, page); err != nil {
			return err
		}
	}
	return nil
}

// Counters tracks the work done by one site crawl.
// All fields only grow while the crawl runs.
type Counters struct {
	Fetched  int
	Admitted int
	Failed   int
	Bytes    int
	Tokens   int
	Elapsed  time.Duration
}

// AveragePerPage returns the mean elapsed time per fetched page.
func (c Counters) AveragePerPage() time.Duration {
	return c.Elapsed / time.Duration(max(c.Fetched, 1))
}
