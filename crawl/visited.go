package crawl

import "github.com/fwojciec/doccrawl/bloom"

// Bloom filter sizing for the visited set.
const (
	visitedExpectedURLs      = 10000
	visitedFalsePositiveRate = 0.01
)

// VisitedSet records URLs that have been dequeued for processing.
// A Bloom filter answers most negative lookups; the exact set
// resolves the filter's false positives.
type VisitedSet struct {
	filter *bloom.Filter
	urls   map[string]struct{}
}

// NewVisitedSet returns an empty set sized for n URLs.
func NewVisitedSet(n int) *VisitedSet {
	if n < 1 {
		n = visitedExpectedURLs
	}
	return &VisitedSet{
		filter: bloom.NewFilter(uint(n), visitedFalsePositiveRate),
		urls:   make(map[string]struct{}),
	}
}

// Contains reports whether url has been visited.
func (v *VisitedSet) Contains(url string) bool {
	if !v.filter.MayContain(url) {
		return false
	}
	_, ok := v.urls[url]
	return ok
}

// Add marks url as visited. It returns false if url was already visited.
func (v *VisitedSet) Add(url string) bool {
	if v.Contains(url) {
		return false
	}
	v.filter.Add(url)
	v.urls[url] = struct{}{}
	return true
}
