package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/doccrawl"
)

var _ doccrawl.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor collects in-scope anchors from a page.
type LinkExtractor struct {
	// KeepBoilerplate also collects links inside navigation, headers,
	// footers and sidebars. By default those regions are removed first.
	KeepBoilerplate bool
}

// NewLinkExtractor returns a LinkExtractor that ignores boilerplate regions.
func NewLinkExtractor() *LinkExtractor {
	return &LinkExtractor{}
}

// ExtractLinks resolves every a[href] against baseURL, or the document's
// <base href> when present, and keeps absolute URLs containing rootURL and
// no '#'. Duplicates are dropped, keeping document order.
func (e *LinkExtractor) ExtractLinks(html, baseURL, rootURL string) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, doccrawl.Errorf(doccrawl.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := parse(html)
	if err != nil {
		return nil, err
	}

	if href, ok := doc.Find("base[href]").First().Attr("href"); ok {
		if ref, err := url.Parse(strings.TrimSpace(href)); err == nil {
			base = base.ResolveReference(ref)
		}
	}

	if !e.KeepBoilerplate {
		doc.Find(Boilerplate).Remove()
	}

	seen := make(map[string]struct{})
	links := []string{}
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		ref, err := url.Parse(strings.TrimSpace(href))
		if err != nil {
			return
		}
		link := base.ResolveReference(ref).String()
		if !strings.Contains(link, rootURL) || strings.Contains(link, "#") {
			return
		}
		if _, ok := seen[link]; ok {
			return
		}
		seen[link] = struct{}{}
		links = append(links, link)
	})

	return links, nil
}
