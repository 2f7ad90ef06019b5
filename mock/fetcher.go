package mock

import (
	"context"

	"github.com/robertchinezon/docscheck"
)

var _ docscheck.SpecFetcher = (*SpecFetcher)(nil)

// SpecFetcher is a mock implementation of docscheck.SpecFetcher.
type SpecFetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
}

func (f *SpecFetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}
