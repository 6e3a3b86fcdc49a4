package doccrawl

import "context"

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error

	// Done records that a request to the domain has finished. The delay
	// before the next request is measured from this call.
	Done(domain string)
}
