package mock

import "github.com/fwojciec/doccrawl"

var (
	_ doccrawl.Extractor     = (*Extractor)(nil)
	_ doccrawl.LinkExtractor = (*LinkExtractor)(nil)
)

// Extractor is a mock implementation of doccrawl.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*doccrawl.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*doccrawl.ExtractResult, error) {
	return e.ExtractFn(html)
}

// LinkExtractor is a mock implementation of doccrawl.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(html, baseURL, rootURL string) ([]string, error)
}

func (e *LinkExtractor) ExtractLinks(html, baseURL, rootURL string) ([]string, error) {
	return e.ExtractLinksFn(html, baseURL, rootURL)
}
