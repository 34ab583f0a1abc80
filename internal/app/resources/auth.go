// Package resources holds one async function per backend operation.
// Each performs exactly one HTTP call and returns the unwrapped result;
// caching and validation live with the callers.
package resources

import (
	"context"
	"net/http"

	"github.com/thanhvu/engcenter-console/internal/app/models"
	"github.com/thanhvu/engcenter-console/internal/app/models/dto"
	"github.com/thanhvu/engcenter-console/internal/pkg/rest"
)

// Login authenticates and returns the token plus user profile.
// Callers run this on an unauthenticated client under the login timeout.
func Login(ctx context.Context, c *rest.Client, req dto.LoginRequest) (dto.LoginResult, error) {
	return rest.Do[dto.LoginResult](ctx, c, http.MethodPost, "/auth/login", nil, req)
}

// Logout invalidates the session server-side
func Logout(ctx context.Context, c *rest.Client) error {
	return rest.DoVoid(ctx, c, http.MethodPost, "/auth/logout", nil, nil)
}

// SendOTP starts the password-recovery flow
func SendOTP(ctx context.Context, c *rest.Client, req dto.SendOTPRequest) error {
	return rest.DoVoid(ctx, c, http.MethodPost, "/auth/send-otp", nil, req)
}

// VerifyOTP checks the one-time code
func VerifyOTP(ctx context.Context, c *rest.Client, req dto.VerifyOTPRequest) error {
	return rest.DoVoid(ctx, c, http.MethodPost, "/auth/verify-otp", nil, req)
}

// ResetPassword sets a new password after OTP verification
func ResetPassword(ctx context.Context, c *rest.Client, req dto.ResetPasswordRequest) error {
	return rest.DoVoid(ctx, c, http.MethodPost, "/auth/reset-password", nil, req)
}

// MyInfo fetches the authenticated user's profile for session bootstrap
func MyInfo(ctx context.Context, c *rest.Client) (models.User, error) {
	return rest.Do[models.User](ctx, c, http.MethodGet, "/api/v1/users/my-info", nil, nil)
}
