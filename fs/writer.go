// Package fs stores crawled pages as text files on local disk.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/doccrawl"
)

// headerRule separates the file header from the page metadata.
var headerRule = strings.Repeat("=", 80)

// FormatPage renders a page the way it is stored on disk:
//
//	<Site> Website - <title>
//	================...
//
//	URL: <url>
//	Title: <title>
//
//	<content>
func FormatPage(site *doccrawl.Site, page *doccrawl.Page) string {
	var b strings.Builder
	b.WriteString(site.DisplayName())
	b.WriteString(" Website - ")
	b.WriteString(page.Title)
	b.WriteString("\n")
	b.WriteString(headerRule)
	b.WriteString("\n\nURL: ")
	b.WriteString(page.URL)
	b.WriteString("\nTitle: ")
	b.WriteString(page.Title)
	b.WriteString("\n\n")
	b.WriteString(page.Content)
	return b.String()
}

var _ doccrawl.PageStore = (*Writer)(nil)

// Writer writes each page to <baseDir>/<site name>/<key>.txt.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes under baseDir.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// Path returns the file a page with key is written to.
func (w *Writer) Path(site *doccrawl.Site, key string) string {
	return filepath.Join(w.baseDir, site.Name, key+".txt")
}

// Persist implements doccrawl.PageStore. An existing file with the same
// key is overwritten.
func (w *Writer) Persist(ctx context.Context, site *doccrawl.Site, key string, page *doccrawl.Page) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if key == "" || strings.ContainsAny(key, `/\`) {
		return doccrawl.Errorf(doccrawl.EINVALID, "invalid page key %q", key)
	}

	path := w.Path(site, key)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(FormatPage(site, page)), 0644)
}
