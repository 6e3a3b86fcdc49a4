// Package trafilatura implements doccrawl.Extractor with go-trafilatura,
// which scores the DOM to find the main article.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/doccrawl"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

var _ doccrawl.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura.
type Extractor struct {
	// Precision favors dropping uncertain blocks over keeping them.
	Precision bool
}

// NewExtractor returns an Extractor with fallback extraction enabled.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract implements doccrawl.Extractor.
func (e *Extractor) Extract(rawHTML string) (*doccrawl.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, doccrawl.Errorf(doccrawl.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
		Focus:          trafilatura.Balanced,
	}
	if e.Precision {
		opts.Focus = trafilatura.FavorPrecision
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	out := &doccrawl.ExtractResult{
		Title: strings.TrimSpace(result.Metadata.Title),
		Text:  strings.TrimSpace(result.ContentText),
	}
	if result.ContentNode != nil {
		var buf bytes.Buffer
		if err := html.Render(&buf, result.ContentNode); err != nil {
			return nil, err
		}
		out.ContentHTML = buf.String()
	}
	return out, nil
}
