package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/katadl"
)

// Ensure LoggingWriter implements katadl.KataWriter.
var _ katadl.KataWriter = (*LoggingWriter)(nil)

// LoggingWriter wraps a KataWriter with logging.
type LoggingWriter struct {
	next   katadl.KataWriter
	logger *slog.Logger
}

// NewLoggingWriter creates a new LoggingWriter.
func NewLoggingWriter(next katadl.KataWriter, logger *slog.Logger) *LoggingWriter {
	return &LoggingWriter{next: next, logger: logger}
}

// WriteKata logs the kata, target directory and duration and delegates to
// the wrapped writer. Empty code buffers are logged as warnings.
func (w *LoggingWriter) WriteKata(ctx context.Context, kata *katadl.Kata) (files *katadl.KataFiles, err error) {
	if kata.InitialCode == "" || kata.TestCode == "" {
		w.logger.Warn("empty editor buffer",
			"kata", kata.Name,
			"initial_code_bytes", len(kata.InitialCode),
			"test_code_bytes", len(kata.TestCode),
		)
	}

	defer func(begin time.Time) {
		var dir string
		if files != nil {
			dir = files.Dir
		}
		w.logger.Info("write kata",
			"language", kata.Language,
			"level", kata.Level,
			"kata", kata.Name,
			"dir", dir,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteKata(ctx, kata)
}
