package crawl

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/fwojciec/doccrawl"
	"golang.org/x/sync/errgroup"
)

// ContentDiffers reports whether browser-rendered HTML yields materially
// more content than the plain HTTP response: more than 50% longer, or any
// content where HTTP had none. Extraction errors count as a difference.
func ContentDiffers(httpHTML, browserHTML string, extractor doccrawl.Extractor) bool {
	plain, err := extractor.Extract(httpHTML)
	if err != nil {
		return true
	}
	rendered, err := extractor.Extract(browserHTML)
	if err != nil {
		return true
	}

	plainLen, renderedLen := len(plain.Text), len(rendered.Text)
	if plainLen == 0 {
		return renderedLen > 0
	}
	return float64(renderedLen) > float64(plainLen)*1.5
}

// ProbeFetcher fetches seedURL with both fetchers in parallel and picks the
// cheaper HTTP fetcher unless the site needs a browser to render its
// content. If one fetch fails the other fetcher is chosen. It returns an
// error only when both fetches fail.
func ProbeFetcher(ctx context.Context, seedURL string, httpFetcher, browserFetcher doccrawl.Fetcher, extractor doccrawl.Extractor) (doccrawl.Fetcher, error) {
	var (
		httpResp, browserResp *doccrawl.Response
		httpErr, browserErr   error
	)

	var g errgroup.Group
	g.Go(func() error {
		httpResp, httpErr = httpFetcher.Fetch(ctx, seedURL)
		return nil
	})
	g.Go(func() error {
		browserResp, browserErr = browserFetcher.Fetch(ctx, seedURL)
		return nil
	})
	_ = g.Wait()

	switch {
	case httpErr != nil && browserErr != nil:
		return nil, fmt.Errorf("probe %s: %w", seedURL, errors.Join(httpErr, browserErr))
	case httpErr != nil:
		return browserFetcher, nil
	case browserErr != nil:
		return httpFetcher, nil
	case ContentDiffers(httpResp.HTML, browserResp.HTML, extractor):
		return browserFetcher, nil
	default:
		return httpFetcher, nil
	}
}

var _ doccrawl.Fetcher = (*ProbingFetcher)(nil)

// ProbingFetcher picks a fetcher per host with ProbeFetcher the first time
// it sees the host, and keeps using that choice. A probe where both fetches
// fail is not remembered; the host is probed again on its next URL.
type ProbingFetcher struct {
	HTTP      doccrawl.Fetcher
	Browser   doccrawl.Fetcher
	Extractor doccrawl.Extractor

	// OnProbe, when set, is called with each host and the chosen fetcher.
	OnProbe func(host string, browser bool)

	mu     sync.Mutex
	chosen map[string]doccrawl.Fetcher
}

// Fetch implements doccrawl.Fetcher.
func (f *ProbingFetcher) Fetch(ctx context.Context, url string) (*doccrawl.Response, error) {
	fetcher, err := f.fetcherFor(ctx, url)
	if err != nil {
		return nil, err
	}
	return fetcher.Fetch(ctx, url)
}

func (f *ProbingFetcher) fetcherFor(ctx context.Context, url string) (doccrawl.Fetcher, error) {
	host := hostOf(url)

	f.mu.Lock()
	defer f.mu.Unlock()

	if fetcher, ok := f.chosen[host]; ok {
		return fetcher, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fetcher, err := ProbeFetcher(ctx, url, f.HTTP, f.Browser, f.Extractor)
	if err != nil {
		return nil, err
	}
	if f.chosen == nil {
		f.chosen = make(map[string]doccrawl.Fetcher)
	}
	f.chosen[host] = fetcher
	if f.OnProbe != nil {
		f.OnProbe(host, fetcher == f.Browser)
	}
	return fetcher, nil
}

// Close closes both fetchers.
func (f *ProbingFetcher) Close() error {
	return errors.Join(f.HTTP.Close(), f.Browser.Close())
}
