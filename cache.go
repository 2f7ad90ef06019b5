package docscheck

// TokenStore persists HTTP validation tokens (ETags) keyed by cache key.
// A key is present only if a prior successful fetch stored a non-empty
// token for it.
type TokenStore interface {
	// Token returns the validation token recorded for key, or "" when
	// no token is known. An unknown key is not an error.
	Token(key string) (string, error)

	// SetToken records token for key, overwriting any previous value.
	SetToken(key, token string) error
}
