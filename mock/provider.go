package mock

import (
	"context"

	"github.com/robertchinezon/docscheck"
)

var _ docscheck.ProviderRegistry = (*ProviderRegistry)(nil)

// ProviderRegistry is a mock implementation of docscheck.ProviderRegistry.
type ProviderRegistry struct {
	ProvidersFn func(ctx context.Context) ([]docscheck.Provider, error)
}

func (r *ProviderRegistry) Providers(ctx context.Context) ([]docscheck.Provider, error) {
	return r.ProvidersFn(ctx)
}
