// Package slog provides logging decorators for katadl services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/katadl"
)

// Ensure LoggingRenderer implements katadl.Renderer.
var _ katadl.Renderer = (*LoggingRenderer)(nil)

// LoggingRenderer wraps a Renderer with logging.
type LoggingRenderer struct {
	next   katadl.Renderer
	logger *slog.Logger
}

// NewLoggingRenderer creates a new LoggingRenderer.
func NewLoggingRenderer(next katadl.Renderer, logger *slog.Logger) *LoggingRenderer {
	return &LoggingRenderer{next: next, logger: logger}
}

// Render logs the URL, snapshot size and duration and delegates to the
// wrapped renderer.
func (r *LoggingRenderer) Render(ctx context.Context, url string) (page *katadl.RenderedPage, err error) {
	defer func(begin time.Time) {
		var bytes int
		if page != nil {
			bytes = len(page.HTML)
		}
		r.logger.Info("render",
			"url", url,
			"bytes", bytes,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Render(ctx, url)
}
