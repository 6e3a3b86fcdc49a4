// Package readability implements doccrawl.Extractor with go-readability,
// a port of Mozilla's Readability.
package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/doccrawl"
	"github.com/go-shiori/go-readability"
)

var _ doccrawl.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability.
type Extractor struct {
	// PageURL, when set, lets readability resolve relative links and images.
	PageURL *url.URL
}

// NewExtractor returns a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract implements doccrawl.Extractor.
func (e *Extractor) Extract(rawHTML string) (*doccrawl.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, doccrawl.Errorf(doccrawl.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), e.PageURL)
	if err != nil {
		return nil, err
	}

	return &doccrawl.ExtractResult{
		Title:       strings.TrimSpace(article.Title),
		ContentHTML: article.Content,
		Text:        strings.TrimSpace(article.TextContent),
	}, nil
}
