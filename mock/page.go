package mock

import (
	"context"

	"github.com/fwojciec/doccrawl"
)

// Compile-time interface verification.
var (
	_ doccrawl.PageFetcher = (*PageFetcher)(nil)
	_ doccrawl.PageStore   = (*PageStore)(nil)
	_ doccrawl.Admitter    = (*Admitter)(nil)
)

// PageFetcher is a mock implementation of doccrawl.PageFetcher.
type PageFetcher struct {
	FetchPageFn func(ctx context.Context, site *doccrawl.Site, url string) (*doccrawl.Page, error)
}

func (f *PageFetcher) FetchPage(ctx context.Context, site *doccrawl.Site, url string) (*doccrawl.Page, error) {
	return f.FetchPageFn(ctx, site, url)
}

// PageStore is a mock implementation of doccrawl.PageStore.
type PageStore struct {
	PersistFn func(ctx context.Context, site *doccrawl.Site, key string, page *doccrawl.Page) error
}

func (s *PageStore) Persist(ctx context.Context, site *doccrawl.Site, key string, page *doccrawl.Page) error {
	return s.PersistFn(ctx, site, key, page)
}

// Admitter is a mock implementation of doccrawl.Admitter.
type Admitter struct {
	AdmitFn func(ctx context.Context, site *doccrawl.Site, page *doccrawl.Page) bool
}

func (a *Admitter) Admit(ctx context.Context, site *doccrawl.Site, page *doccrawl.Page) bool {
	return a.AdmitFn(ctx, site, page)
}
