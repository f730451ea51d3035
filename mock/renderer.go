package mock

import (
	"context"

	"github.com/fwojciec/katadl"
)

var _ katadl.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of katadl.Renderer.
type Renderer struct {
	RenderFn func(ctx context.Context, url string) (*katadl.RenderedPage, error)
}

func (r *Renderer) Render(ctx context.Context, url string) (*katadl.RenderedPage, error) {
	return r.RenderFn(ctx, url)
}
