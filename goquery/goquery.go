// Package goquery implements link and content extraction on top of
// github.com/PuerkitoBio/goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/doccrawl"
)

// Boilerplate is the selector for elements removed before content and
// link extraction.
const Boilerplate = "script, style, nav, header, footer, .sidebar, .menu"

func parse(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, doccrawl.Errorf(doccrawl.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, nil
}
