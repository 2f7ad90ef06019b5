package docscheck

import "context"

// SpecFetcher retrieves a remote schema specification to a local file.
type SpecFetcher interface {
	// Fetch downloads url and returns the path of the local copy.
	// Implementations may serve an existing copy from a cache when the
	// remote content is unchanged.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (path string, err error)
}
