// Package fs provides a file-backed implementation of docscheck.TokenStore.
package fs

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/robertchinezon/docscheck"
)

// MetadataFilename is the name of the cache metadata file inside the cache
// directory.
const MetadataFilename = "cache-metadata.json"

// Ensure TokenStore implements docscheck.TokenStore at compile time.
var _ docscheck.TokenStore = (*TokenStore)(nil)

// TokenStore persists validation tokens in a single JSON file mapping cache
// key to ETag. A corrupt metadata file is recoverable: it is deleted and
// treated as empty rather than failing the run.
type TokenStore struct {
	path string
}

// NewTokenStore creates a TokenStore backed by the metadata file in dir.
func NewTokenStore(dir string) *TokenStore {
	return &TokenStore{path: filepath.Join(dir, MetadataFilename)}
}

// Token returns the token recorded for key, or "" when no token is known.
func (s *TokenStore) Token(key string) (string, error) {
	m, err := s.read()
	if err != nil {
		return "", err
	}
	return m[key], nil
}

// SetToken records token for key, overwriting any previous value.
func (s *TokenStore) SetToken(key, token string) error {
	m, err := s.read()
	if err != nil {
		return err
	}
	m[key] = token

	data, err := json.Marshal(m)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

func (s *TokenStore) read() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, err
	}

	m := map[string]string{}
	if err := json.Unmarshal(data, &m); err != nil {
		// Corrupt metadata: drop the file and start over.
		if rmErr := os.Remove(s.path); rmErr != nil {
			return nil, rmErr
		}
		return map[string]string{}, nil
	}
	return m, nil
}
