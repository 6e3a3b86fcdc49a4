package crawl

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/doccrawl"
)

// DefaultFetchTimeout bounds the time spent fetching one page.
const DefaultFetchTimeout = 30 * time.Second

var _ doccrawl.PageFetcher = (*PageFetcher)(nil)

// PageFetcher turns a URL into a Page: it fetches rendered HTML, extracts
// the title and main content, and collects in-scope links.
type PageFetcher struct {
	Fetcher   doccrawl.Fetcher
	Extractor doccrawl.Extractor
	Links     doccrawl.LinkExtractor

	// Converter renders content as markdown for sites that ask for it.
	// Without one, markdown sites get plain text.
	Converter doccrawl.Converter

	// Timeout bounds each fetch. Zero uses DefaultFetchTimeout.
	Timeout time.Duration
}

// FetchPage implements doccrawl.PageFetcher.
func (f *PageFetcher) FetchPage(ctx context.Context, site *doccrawl.Site, url string) (*doccrawl.Page, error) {
	timeout := f.Timeout
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := f.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	html := resp.HTML

	extracted, err := f.Extractor.Extract(html)
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", url, err)
	}

	content := extracted.Text
	if site.Format == doccrawl.FormatMarkdown && f.Converter != nil {
		content, err = f.Converter.Convert(extracted.ContentHTML)
		if err != nil {
			return nil, fmt.Errorf("convert %s: %w", url, err)
		}
	}

	// Relative links resolve against where the page ended up, so a
	// redirect from /docs to /docs/ changes their base.
	base := resp.URL
	if base == "" {
		base = url
	}

	// A page whose links cannot be read is still a page.
	var links []string
	if f.Links != nil {
		links, _ = f.Links.ExtractLinks(html, base, site.RootURL)
	}

	return doccrawl.NewPage(url, extracted.Title, content, links), nil
}
