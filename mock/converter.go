package mock

import "github.com/fwojciec/facdir"

var _ facdir.Converter = (*Converter)(nil)

// Converter is a mock implementation of facdir.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
