package mock

import (
	"context"

	"github.com/fwojciec/doccrawl"
)

var (
	_ doccrawl.Fetcher       = (*Fetcher)(nil)
	_ doccrawl.DomainLimiter = (*DomainLimiter)(nil)
)

// Fetcher is a mock implementation of doccrawl.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*doccrawl.Response, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*doccrawl.Response, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

// DomainLimiter is a mock implementation of doccrawl.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
	DoneFn func(domain string)
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}

func (l *DomainLimiter) Done(domain string) {
	if l.DoneFn != nil {
		l.DoneFn(domain)
	}
}
