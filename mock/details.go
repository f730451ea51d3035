package mock

import "github.com/fwojciec/katadl"

var _ katadl.DetailsExtractor = (*DetailsExtractor)(nil)

// DetailsExtractor is a mock implementation of katadl.DetailsExtractor.
type DetailsExtractor struct {
	ExtractFn func(html string) (*katadl.Details, error)
}

func (e *DetailsExtractor) Extract(html string) (*katadl.Details, error) {
	return e.ExtractFn(html)
}
