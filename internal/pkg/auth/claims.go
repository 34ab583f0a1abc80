package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims errors
var (
	ErrInvalidFormat = errors.New("invalid token format")
)

// Claims is the subset of the access token's payload the console reads.
// The signature is not checked here; verification is the backend's job.
type Claims struct {
	Subject   string
	Email     string
	Roles     []string
	ExpiresAt time.Time
}

// Expired reports whether the token's expiry has passed
func (c Claims) Expired() bool {
	return !c.ExpiresAt.IsZero() && time.Now().After(c.ExpiresAt)
}

// tokenClaims maps the backend's JWT payload
type tokenClaims struct {
	Email string   `json:"email"`
	Roles []string `json:"roles"`
	Scope string   `json:"scope"`
	jwt.RegisteredClaims
}

// Inspect decodes the token payload without verifying its signature
func Inspect(token string) (Claims, error) {
	parsed := tokenClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &parsed); err != nil {
		return Claims{}, ErrInvalidFormat
	}

	claims := Claims{
		Subject: parsed.Subject,
		Email:   parsed.Email,
		Roles:   parsed.Roles,
	}
	if parsed.ExpiresAt != nil {
		claims.ExpiresAt = parsed.ExpiresAt.Time
	}
	// Some backends carry a single space-joined scope instead of a role list
	if len(claims.Roles) == 0 && parsed.Scope != "" {
		claims.Roles = []string{parsed.Scope}
	}

	return claims, nil
}
