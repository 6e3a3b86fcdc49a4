// Package bloom provides a probabilistic prefilter for visited URLs.
//
// A negative answer is exact, so callers can skip an exact lookup for
// URLs the crawl has never seen.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter is a Bloom filter keyed by URL strings.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter returns a filter sized for n URLs at the given false positive rate.
// A zero n is treated as 1.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{f: bloom.NewWithEstimates(max(n, 1), fpRate)}
}

// Add records url.
func (f *Filter) Add(url string) {
	f.f.AddString(url)
}

// MayContain reports whether url might have been added.
// It never returns false for an added URL.
func (f *Filter) MayContain(url string) bool {
	return f.f.TestString(url)
}
