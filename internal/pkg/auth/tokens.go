// Package auth holds the session's bearer credential and inspects its
// claims. Token issuance and verification belong to the backend; this
// side only stores the opaque token and reads what it can without a key.
package auth

import (
	"sync"

	"github.com/thanhvu/engcenter-console/internal/pkg/apperrors"
)

// TokenStore is the in-memory home of the session's bearer token. It
// plays the role a cookie jar plays in the browser console: written on
// login, cleared on logout, read on every authenticated request.
type TokenStore struct {
	mu    sync.RWMutex
	token string
}

// NewTokenStore creates an empty token store
func NewTokenStore() *TokenStore {
	return &TokenStore{}
}

// Set stores the bearer token issued at login
func (s *TokenStore) Set(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// Token returns the stored bearer token, or an error when the session
// holds none or the token has visibly expired.
func (s *TokenStore) Token() (string, error) {
	s.mu.RLock()
	token := s.token
	s.mu.RUnlock()

	if token == "" {
		return "", apperrors.ErrNoToken
	}

	// An expiry readable from the claims saves a guaranteed 401 round trip
	if claims, err := Inspect(token); err == nil && claims.Expired() {
		return "", apperrors.ErrTokenExpired
	}

	return token, nil
}

// Clear drops the stored token
func (s *TokenStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
}
