// Package http provides an HTTP-based implementation of docscheck.SpecFetcher
// that caches fetched specs on disk and revalidates them with conditional
// requests when the server supplied an ETag.
package http

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/robertchinezon/docscheck"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// blobNameMaxLen caps the sanitized name appended to the cache key so that
// cache entries stay well under filename length limits.
const blobNameMaxLen = 64

// Ensure Fetcher implements docscheck.SpecFetcher at compile time.
var _ docscheck.SpecFetcher = (*Fetcher)(nil)

// Fetcher retrieves specs over HTTP into an on-disk cache. Each URL maps to
// one blob file; a known validation token turns the next fetch into a
// conditional request that skips the body transfer when the remote content
// is unchanged.
//
// No locking is done on the cache: concurrent fetches of the same URL race
// with last-writer-wins semantics, which is acceptable for single-invocation
// CI usage.
type Fetcher struct {
	client   *http.Client
	tokens   docscheck.TokenStore
	cacheDir string
	timeout  time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a Fetcher that stores cache blobs under cacheDir and
// validation tokens in tokens.
func NewFetcher(cacheDir string, tokens docscheck.TokenStore, opts ...Option) *Fetcher {
	f := &Fetcher{
		cacheDir: cacheDir,
		tokens:   tokens,
		timeout:  DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch returns the local path of the cached copy of url, downloading the
// body only when the cached copy is missing or stale.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := os.MkdirAll(f.cacheDir, 0o755); err != nil {
		return "", err
	}

	key := CacheKey(url)
	blobPath := filepath.Join(f.cacheDir, key+"-"+blobName(url))

	token, err := f.tokens.Token(key)
	if err != nil {
		return "", err
	}

	// Fast path: revalidate the existing blob with a conditional request.
	if token != "" {
		if _, err := os.Stat(blobPath); err == nil {
			notModified, err := f.revalidate(ctx, url, token)
			if err != nil {
				return "", err
			}
			if notModified {
				return blobPath, nil
			}
		}
	}

	// Slow path: unconditional download.
	etag, body, err := f.download(ctx, url)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(blobPath, body, 0o644); err != nil {
		return "", err
	}

	// Only a response that carries a token updates the metadata; a crash
	// after the blob write but before this point just means the next run
	// fetches unconditionally.
	if etag != "" {
		if err := f.tokens.SetToken(key, etag); err != nil {
			return "", err
		}
	}

	return blobPath, nil
}

func (f *Fetcher) revalidate(ctx context.Context, url, token string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, err
	}
	req.Header.Set("If-None-Match", token)

	resp, err := f.client.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode == http.StatusNotModified, nil
}

func (f *Fetcher) download(ctx context.Context, url string) (etag string, body []byte, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", nil, docscheck.Errorf(docscheck.EINTERNAL, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return "", nil, err
	}

	return resp.Header.Get("ETag"), body, nil
}

// CacheKey derives the stable short identifier for url used to name cache
// entries and metadata records.
func CacheKey(url string) string {
	sum := sha256.Sum256([]byte(url))
	return hex.EncodeToString(sum[:])[:8]
}

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]`)

// blobName sanitizes url into a filesystem-safe, truncated name.
func blobName(url string) string {
	name := nonAlphanumeric.ReplaceAllString(url, "-")
	if len(name) > blobNameMaxLen {
		name = name[:blobNameMaxLen]
	}
	return name
}
