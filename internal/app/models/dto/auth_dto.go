package dto

import "github.com/thanhvu/engcenter-console/internal/app/models"

// LoginRequest carries login credentials
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is the token plus the authenticated user's profile
type LoginResult struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// SendOTPRequest starts the password-recovery flow for an email address
type SendOTPRequest struct {
	Email string `json:"email"`
}

// VerifyOTPRequest checks the one-time code sent to the user
type VerifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// ResetPasswordRequest sets a new password after OTP verification
type ResetPasswordRequest struct {
	Email       string `json:"email"`
	OTP         string `json:"otp"`
	NewPassword string `json:"newPassword"`
}
