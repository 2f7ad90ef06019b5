package mock

import "github.com/robertchinezon/docscheck"

var _ docscheck.TokenStore = (*TokenStore)(nil)

// TokenStore is a mock implementation of docscheck.TokenStore.
type TokenStore struct {
	TokenFn    func(key string) (string, error)
	SetTokenFn func(key, token string) error
}

func (s *TokenStore) Token(key string) (string, error) {
	return s.TokenFn(key)
}

func (s *TokenStore) SetToken(key, token string) error {
	return s.SetTokenFn(key, token)
}
