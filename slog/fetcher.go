// Package slog provides logging decorators for docscheck services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/robertchinezon/docscheck"
)

// Ensure LoggingSpecFetcher implements docscheck.SpecFetcher.
var _ docscheck.SpecFetcher = (*LoggingSpecFetcher)(nil)

// LoggingSpecFetcher wraps a SpecFetcher with debug logging.
type LoggingSpecFetcher struct {
	next   docscheck.SpecFetcher
	logger *slog.Logger
}

// NewLoggingSpecFetcher creates a new LoggingSpecFetcher.
func NewLoggingSpecFetcher(next docscheck.SpecFetcher, logger *slog.Logger) *LoggingSpecFetcher {
	return &LoggingSpecFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingSpecFetcher) Fetch(ctx context.Context, url string) (path string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("spec fetch",
			"url", url,
			"path", path,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}
