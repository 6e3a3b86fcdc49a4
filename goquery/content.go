package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/doccrawl"
)

var _ doccrawl.Extractor = (*Extractor)(nil)

// contentSelectors are tried in order; the first match is the main content.
var contentSelectors = []string{"main", ".content", "body"}

// Extractor strips boilerplate elements and returns the first of main,
// .content or body as the page content.
type Extractor struct{}

// NewExtractor returns a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract implements doccrawl.Extractor.
func (e *Extractor) Extract(html string) (*doccrawl.ExtractResult, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())

	doc.Find(Boilerplate).Remove()

	var main *goquery.Selection
	for _, selector := range contentSelectors {
		if sel := doc.Find(selector).First(); sel.Length() > 0 {
			main = sel
			break
		}
	}
	if main == nil {
		return &doccrawl.ExtractResult{Title: title}, nil
	}

	contentHTML, err := main.Html()
	if err != nil {
		return nil, doccrawl.Errorf(doccrawl.EINTERNAL, "failed to render content: %v", err)
	}

	return &doccrawl.ExtractResult{
		Title:       title,
		ContentHTML: strings.TrimSpace(contentHTML),
		Text:        InnerText(main),
	}, nil
}
