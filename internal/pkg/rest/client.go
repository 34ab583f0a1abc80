// Package rest performs the console's HTTP round trips against the
// backend. Every response is expected in the {code, message, result}
// envelope; callers receive the unwrapped result or a normalized error
// carrying a single user-facing message.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"

	"github.com/thanhvu/engcenter-console/internal/pkg/apperrors"
)

// TokenSource supplies the bearer credential attached to requests
type TokenSource interface {
	Token() (string, error)
}

// Config holds client construction parameters
type Config struct {
	BaseURL string
	Timeout time.Duration
	Logger  zerolog.Logger
}

// Client issues requests against the backend. A client built with a
// TokenSource authenticates every request; the Public variant sends
// none and serves the login and password-recovery flows.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	breaker *gobreaker.CircuitBreaker
	logger  zerolog.Logger
}

// NewClient creates an authenticated client
func NewClient(cfg Config, tokens TokenSource) *Client {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name: "backend",
	})

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
		tokens:  tokens,
		breaker: breaker,
		logger:  cfg.Logger,
	}
}

// Public returns a variant of this client that attaches no credential.
// Transport, breaker and logger are shared.
func (c *Client) Public() *Client {
	return &Client{
		baseURL: c.baseURL,
		http:    c.http,
		breaker: c.breaker,
		logger:  c.logger,
	}
}

// envelope is the backend's uniform response wrapper
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}

// Do issues one request and decodes the envelope's result into T
func Do[T any](ctx context.Context, c *Client, method, path string, query url.Values, body any) (T, error) {
	var zero T

	result, err := c.roundTrip(ctx, method, path, query, body)
	if err != nil {
		return zero, err
	}

	if len(result) == 0 || string(result) == "null" {
		return zero, nil
	}

	var out T
	if err := json.Unmarshal(result, &out); err != nil {
		c.logger.Error().Err(err).Str("path", path).Msg("Failed to decode response result")
		return zero, &apperrors.RequestError{Err: apperrors.ErrUnexpected, Message: apperrors.FallbackBackendMessage}
	}

	return out, nil
}

// DoVoid issues one request and discards the envelope's result
func DoVoid(ctx context.Context, c *Client, method, path string, query url.Values, body any) error {
	_, err := c.roundTrip(ctx, method, path, query, body)
	return err
}

// roundTrip performs the request and returns the raw envelope result
func (c *Client) roundTrip(ctx context.Context, method, path string, query url.Values, body any) (json.RawMessage, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.tokens != nil {
		token, err := c.tokens.Token()
		if err != nil {
			return nil, &apperrors.RequestError{Err: errors.Join(apperrors.ErrUnauthorized, err), Message: "Please sign in again"}
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	started := time.Now()
	raw, err := c.breaker.Execute(func() (interface{}, error) {
		return c.http.Do(req)
	})
	if err != nil {
		return nil, c.mapTransportError(ctx, method, path, err)
	}
	resp := raw.(*http.Response)
	defer resp.Body.Close()

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(started)).
		Msg("Request completed")

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.NewTransportError(err)
	}

	var env envelope
	if len(data) > 0 {
		// A malformed envelope on an error status must not mask the failure
		if err := json.Unmarshal(data, &env); err != nil && resp.StatusCode < 300 {
			return nil, &apperrors.RequestError{Err: apperrors.ErrUnexpected, Message: apperrors.FallbackBackendMessage}
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn().
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode).
			Str("message", env.Message).
			Msg("Backend rejected request")
		return nil, apperrors.NewBackendError(env.Message).WithStatus(resp.StatusCode).WithCode(env.Code)
	}

	return env.Result, nil
}

// mapTransportError folds transport failures into the error taxonomy.
// Context expiry wins over whatever the transport reported.
func (c *Client) mapTransportError(ctx context.Context, method, path string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		c.logger.Warn().Str("method", method).Str("path", path).Msg("Request timed out")
		return apperrors.NewTimeoutError()
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return apperrors.NewTransportError(err)
	}

	c.logger.Warn().Err(err).Str("method", method).Str("path", path).Msg("Request failed")
	return apperrors.NewTransportError(err)
}
