package mock

import "github.com/fwojciec/doccrawl"

var _ doccrawl.Converter = (*Converter)(nil)

// Converter is a mock implementation of doccrawl.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
