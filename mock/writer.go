package mock

import (
	"context"

	"github.com/fwojciec/katadl"
)

var _ katadl.KataWriter = (*KataWriter)(nil)

// KataWriter is a mock implementation of katadl.KataWriter.
type KataWriter struct {
	WriteKataFn func(ctx context.Context, kata *katadl.Kata) (*katadl.KataFiles, error)
}

func (w *KataWriter) WriteKata(ctx context.Context, kata *katadl.Kata) (*katadl.KataFiles, error) {
	return w.WriteKataFn(ctx, kata)
}
