// Package htmltomarkdown implements doccrawl.Converter with html-to-markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/doccrawl"
)

var _ doccrawl.Converter = (*Converter)(nil)

// Converter renders cleaned HTML as CommonMark with tables.
type Converter struct {
	conv *converter.Converter
}

// NewConverter returns a new Converter.
func NewConverter() *Converter {
	return &Converter{
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
				table.NewTablePlugin(),
			),
		),
	}
}

// Convert implements doccrawl.Converter. Blank input yields blank output,
// so a page without content is skipped rather than failed.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", nil
	}
	md, err := c.conv.ConvertString(html)
	if err != nil {
		return "", doccrawl.Errorf(doccrawl.EINTERNAL, "convert to markdown: %v", err)
	}
	return strings.TrimSpace(md), nil
}
