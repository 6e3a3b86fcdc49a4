// Package rod fetches JavaScript-rendered pages with a headless Chrome
// driven by go-rod.
package rod

import (
	"context"
	"time"

	"github.com/fwojciec/doccrawl"
	"github.com/go-rod/rod/lib/proto"
)

// Page load defaults.
const (
	// DefaultIdleTime is how long the network must be quiet before a page
	// counts as loaded.
	DefaultIdleTime = 500 * time.Millisecond

	// DefaultRenderDelay gives client-side frameworks time to render after
	// the network goes idle.
	DefaultRenderDelay = 2 * time.Second
)

var _ doccrawl.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML by loading each URL in a fresh tab
// leased from a BrowserManager.
type Fetcher struct {
	manager     *BrowserManager
	idleTime    time.Duration
	renderDelay time.Duration
	userAgent   string
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithRenderDelay sets the pause after network idle before HTML is read.
func WithRenderDelay(d time.Duration) FetcherOption {
	return func(f *Fetcher) { f.renderDelay = d }
}

// WithIdleTime sets how long the network must be quiet before the page
// counts as loaded.
func WithIdleTime(d time.Duration) FetcherOption {
	return func(f *Fetcher) { f.idleTime = d }
}

// WithUserAgent overrides the browser user agent. An empty value keeps
// Chrome's own.
func WithUserAgent(ua string) FetcherOption {
	return func(f *Fetcher) { f.userAgent = ua }
}

// WithBrowserManager uses an existing manager instead of launching one.
func WithBrowserManager(m *BrowserManager) FetcherOption {
	return func(f *Fetcher) { f.manager = m }
}

// NewFetcher creates a Fetcher, launching a headless browser unless one is
// supplied with WithBrowserManager. Close must be called when done.
func NewFetcher(opts ...FetcherOption) (*Fetcher, error) {
	f := &Fetcher{
		idleTime:    DefaultIdleTime,
		renderDelay: DefaultRenderDelay,
		userAgent:   doccrawl.DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.manager == nil {
		m, err := NewBrowserManager()
		if err != nil {
			return nil, err
		}
		f.manager = m
	}
	return f, nil
}

// Fetch navigates to url, waits for the network to go idle and the render
// delay to pass, and returns the rendered HTML with the URL the page ended
// up at. The context bounds the whole operation.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*doccrawl.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	page, release, err := f.manager.Page()
	if err != nil {
		return nil, err
	}
	defer release()

	page = page.Context(ctx)

	if f.userAgent != "" {
		if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: f.userAgent}); err != nil {
			return nil, contextErr(ctx, err)
		}
	}

	waitIdle := page.WaitRequestIdle(f.idleTime, nil, nil, nil)
	if err := page.Navigate(url); err != nil {
		return nil, contextErr(ctx, err)
	}
	waitIdle()
	if err := page.WaitLoad(); err != nil {
		return nil, contextErr(ctx, err)
	}

	if f.renderDelay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(f.renderDelay):
		}
	}

	html, err := page.HTML()
	if err != nil {
		return nil, contextErr(ctx, err)
	}

	finalURL := url
	if info, err := page.Info(); err == nil && info.URL != "" {
		finalURL = info.URL
	}
	return &doccrawl.Response{URL: finalURL, HTML: html}, nil
}

// Close releases browser resources. It is safe to call more than once.
func (f *Fetcher) Close() error {
	return f.manager.Close()
}

// contextErr prefers the context's error, since rod reports cancellation
// as its own error types.
func contextErr(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return err
}
