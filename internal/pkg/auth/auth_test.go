package auth

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/thanhvu/engcenter-console/internal/pkg/apperrors"
)

func buildToken(t *testing.T, payload map[string]any) string {
	t.Helper()
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("failed to encode claims: %v", err)
	}
	return header + "." + base64.RawURLEncoding.EncodeToString(body) + ".signature"
}

func TestInspect_ReadsClaims(t *testing.T) {
	exp := time.Now().Add(time.Hour)
	token := buildToken(t, map[string]any{
		"sub":   "u1",
		"email": "admin@center.vn",
		"roles": []string{"ADMIN"},
		"exp":   exp.Unix(),
	})

	claims, err := Inspect(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.Subject != "u1" || claims.Email != "admin@center.vn" {
		t.Errorf("unexpected claims: %+v", claims)
	}
	if len(claims.Roles) != 1 || claims.Roles[0] != "ADMIN" {
		t.Errorf("unexpected roles: %v", claims.Roles)
	}
	if claims.Expired() {
		t.Errorf("future expiry reported as expired")
	}
}

func TestInspect_ScopeFallback(t *testing.T) {
	token := buildToken(t, map[string]any{"sub": "u2", "scope": "TEACHER"})

	claims, err := Inspect(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(claims.Roles) != 1 || claims.Roles[0] != "TEACHER" {
		t.Errorf("expected the scope claim as role fallback, got %v", claims.Roles)
	}
}

func TestInspect_RejectsGarbage(t *testing.T) {
	if _, err := Inspect("not-a-jwt"); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("expected a format error, got %v", err)
	}
}

func TestTokenStore_Lifecycle(t *testing.T) {
	store := NewTokenStore()

	if _, err := store.Token(); !errors.Is(err, apperrors.ErrNoToken) {
		t.Errorf("expected no-token error from an empty store, got %v", err)
	}

	token := buildToken(t, map[string]any{"sub": "u1", "exp": time.Now().Add(time.Hour).Unix()})
	store.Set(token)

	got, err := store.Token()
	if err != nil || got != token {
		t.Errorf("expected the stored token back, got %q, %v", got, err)
	}

	store.Clear()
	if _, err := store.Token(); !errors.Is(err, apperrors.ErrNoToken) {
		t.Errorf("expected no-token error after clear, got %v", err)
	}
}

func TestTokenStore_RejectsExpiredToken(t *testing.T) {
	store := NewTokenStore()
	store.Set(buildToken(t, map[string]any{"sub": "u1", "exp": time.Now().Add(-time.Minute).Unix()}))

	if _, err := store.Token(); !errors.Is(err, apperrors.ErrTokenExpired) {
		t.Errorf("expected an expired-token error, got %v", err)
	}
}

func TestTokenStore_OpaqueTokensPassThrough(t *testing.T) {
	// Tokens that are not JWTs cannot be inspected; they are attached
	// as-is and the backend decides
	store := NewTokenStore()
	store.Set("opaque-session-token")

	got, err := store.Token()
	if err != nil || got != "opaque-session-token" {
		t.Errorf("expected the opaque token back, got %q, %v", got, err)
	}
}
