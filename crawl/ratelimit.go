package crawl

import (
	"context"
	"net/url"
	"sync"
	"time"

	"github.com/fwojciec/doccrawl"
	"golang.org/x/time/rate"
)

// DefaultDelay is the default spacing between fetches to one host.
const DefaultDelay = 2 * time.Second

var _ doccrawl.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter keeps a fixed pause between the end of one request to a host
// and the start of the next, using token buckets with a burst of 1. The
// first request to a host never waits.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	every    rate.Limit
}

// NewDomainLimiter returns a limiter pausing delay between requests to a host.
// A zero or negative delay disables limiting.
func NewDomainLimiter(delay time.Duration) *DomainLimiter {
	every := rate.Inf
	if delay > 0 {
		every = rate.Every(delay)
	}
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		every:    every,
	}
}

// Wait blocks until a request to domain is allowed.
// Returns an error if the context is canceled before the wait completes.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	d.mu.Lock()
	limiter, ok := d.limiters[domain]
	if !ok {
		limiter = rate.NewLimiter(d.every, 1)
		d.limiters[domain] = limiter
	}
	d.mu.Unlock()

	return limiter.Wait(ctx)
}

// Done empties the bucket for domain at the current time, so the next Wait
// blocks for a full delay however long the request took.
func (d *DomainLimiter) Done(domain string) {
	limiter := rate.NewLimiter(d.every, 1)
	limiter.Allow()

	d.mu.Lock()
	d.limiters[domain] = limiter
	d.mu.Unlock()
}

// hostOf returns the host of rawURL, or rawURL itself when it does not parse.
// Unparseable URLs still share one bucket so they are throttled too.
func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	return u.Host
}
