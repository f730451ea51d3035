package mock

import "github.com/fwojciec/katadl"

var _ katadl.Converter = (*Converter)(nil)

// Converter is a mock implementation of katadl.Converter.
type Converter struct {
	ConvertFn func(html, language string) (string, error)
}

func (c *Converter) Convert(html, language string) (string, error) {
	return c.ConvertFn(html, language)
}
