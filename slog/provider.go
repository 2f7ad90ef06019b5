package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/robertchinezon/docscheck"
)

// Ensure LoggingProviderRegistry implements docscheck.ProviderRegistry.
var _ docscheck.ProviderRegistry = (*LoggingProviderRegistry)(nil)

// LoggingProviderRegistry wraps a ProviderRegistry with debug logging.
type LoggingProviderRegistry struct {
	next   docscheck.ProviderRegistry
	logger *slog.Logger
}

// NewLoggingProviderRegistry creates a new LoggingProviderRegistry.
func NewLoggingProviderRegistry(next docscheck.ProviderRegistry, logger *slog.Logger) *LoggingProviderRegistry {
	return &LoggingProviderRegistry{next: next, logger: logger}
}

// Providers delegates to the wrapped registry and logs the operation.
func (r *LoggingProviderRegistry) Providers(ctx context.Context) (providers []docscheck.Provider, err error) {
	defer func(begin time.Time) {
		r.logger.Info("provider discovery",
			"count", len(providers),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Providers(ctx)
}
