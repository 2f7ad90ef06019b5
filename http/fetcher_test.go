package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/robertchinezon/docscheck"
	dchttp "github.com/robertchinezon/docscheck/http"
	"github.com/robertchinezon/docscheck/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mapTokenStore returns a mock token store backed by an in-memory map.
func mapTokenStore() (*mock.TokenStore, map[string]string) {
	var mu sync.Mutex
	tokens := map[string]string{}
	store := &mock.TokenStore{
		TokenFn: func(key string) (string, error) {
			mu.Lock()
			defer mu.Unlock()
			return tokens[key], nil
		},
		SetTokenFn: func(key, token string) error {
			mu.Lock()
			defer mu.Unlock()
			tokens[key] = token
			return nil
		},
	}
	return store, tokens
}

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("downloads and caches body with token", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("ETag", `"v1"`)
			_, _ = w.Write([]byte(`{"type": "object"}`))
		}))
		defer server.Close()

		store, tokens := mapTokenStore()
		fetcher := dchttp.NewFetcher(t.TempDir(), store)

		path, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, `{"type": "object"}`, string(data))
		assert.Equal(t, `"v1"`, tokens[dchttp.CacheKey(server.URL)])

		// Blob name is the short hash joined with the sanitized URL.
		name := filepath.Base(path)
		assert.True(t, strings.HasPrefix(name, dchttp.CacheKey(server.URL)+"-"))
		assert.NotContains(t, name, ":")
	})

	t.Run("serves cached blob on not modified", func(t *testing.T) {
		t.Parallel()

		requests := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests++
			if r.Header.Get("If-None-Match") == `"v1"` {
				w.WriteHeader(http.StatusNotModified)
				return
			}
			w.Header().Set("ETag", `"v1"`)
			_, _ = w.Write([]byte("original"))
		}))
		defer server.Close()

		store, _ := mapTokenStore()
		fetcher := dchttp.NewFetcher(t.TempDir(), store)

		first, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)

		second, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, 2, requests)

		data, err := os.ReadFile(second)
		require.NoError(t, err)
		assert.Equal(t, "original", string(data))
	})

	t.Run("redownloads and updates token when content changed", func(t *testing.T) {
		t.Parallel()

		version := "1"
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("ETag", `"v`+version+`"`)
			_, _ = w.Write([]byte("body " + version))
		}))
		defer server.Close()

		store, tokens := mapTokenStore()
		fetcher := dchttp.NewFetcher(t.TempDir(), store)

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)

		version = "2"
		path, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "body 2", string(data))
		assert.Equal(t, `"v2"`, tokens[dchttp.CacheKey(server.URL)])
	})

	t.Run("fetches unconditionally when server sent no token", func(t *testing.T) {
		t.Parallel()

		conditional := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("If-None-Match") != "" {
				conditional++
			}
			_, _ = w.Write([]byte("no etag here"))
		}))
		defer server.Close()

		store, tokens := mapTokenStore()
		fetcher := dchttp.NewFetcher(t.TempDir(), store)

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		_, err = fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)

		assert.Empty(t, tokens)
		assert.Zero(t, conditional)
	})

	t.Run("returns error for non-2xx status codes", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte("404 Not Found"))
		}))
		defer server.Close()

		store, _ := mapTokenStore()
		fetcher := dchttp.NewFetcher(t.TempDir(), store)

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Equal(t, docscheck.EINTERNAL, docscheck.ErrorCode(err))
		assert.Contains(t, docscheck.ErrorMessage(err), "404")
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		store, _ := mapTokenStore()
		fetcher := dchttp.NewFetcher(t.TempDir(), store)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := fetcher.Fetch(ctx, server.URL)
		require.Error(t, err)
	})
}

func TestCacheKey(t *testing.T) {
	t.Parallel()

	key := dchttp.CacheKey("https://example.com/schema.json")

	assert.Len(t, key, 8)
	assert.Equal(t, key, dchttp.CacheKey("https://example.com/schema.json"))
	assert.NotEqual(t, key, dchttp.CacheKey("https://example.com/other.json"))
}
