package validation

import (
	"errors"
	"testing"

	"github.com/thanhvu/engcenter-console/internal/pkg/apperrors"
)

func TestEmail(t *testing.T) {
	valid := []string{"an.nguyen@example.com", "mai+parent@center.vn", "a_b@sub.domain.org"}
	for _, addr := range valid {
		if err := Email(addr); err != nil {
			t.Errorf("Email(%q) = %v, want nil", addr, err)
		}
	}

	invalid := []string{"", "not-an-email", "a@b", "@example.com", "a b@example.com"}
	for _, addr := range invalid {
		if err := Email(addr); err == nil {
			t.Errorf("Email(%q) = nil, want error", addr)
		}
	}
}

func TestPhone(t *testing.T) {
	valid := []string{"0912345678", "+84 91 234 5678", "091-234-5678", "123456789"}
	for _, number := range valid {
		if err := Phone(number); err != nil {
			t.Errorf("Phone(%q) = %v, want nil", number, err)
		}
	}

	tests := []struct {
		number string
		want   error
	}{
		{"", apperrors.ErrRequiredField},
		{"12345678", apperrors.ErrInvalidPhone},      // 8 digits
		{"123456789012", apperrors.ErrInvalidPhone},  // 12 digits
		{"0912-ABC-345", apperrors.ErrInvalidPhone},  // letters
	}
	for _, tt := range tests {
		if err := Phone(tt.number); !errors.Is(err, tt.want) {
			t.Errorf("Phone(%q) = %v, want %v", tt.number, err, tt.want)
		}
	}
}

func TestDateOrder(t *testing.T) {
	if err := DateOrder("2026-09-01", "2026-12-19"); err != nil {
		t.Errorf("valid range rejected: %v", err)
	}

	if err := DateOrder("2026-12-19", "2026-09-01"); !errors.Is(err, apperrors.ErrInvalidDateRange) {
		t.Errorf("reversed range accepted: %v", err)
	}
	// The end must be strictly after the start
	if err := DateOrder("2026-09-01", "2026-09-01"); !errors.Is(err, apperrors.ErrInvalidDateRange) {
		t.Errorf("equal dates accepted: %v", err)
	}
	if err := DateOrder("", "2026-09-01"); !errors.Is(err, apperrors.ErrRequiredField) {
		t.Errorf("missing start accepted: %v", err)
	}
	if err := DateOrder("09/01/2026", "2026-12-19"); err == nil {
		t.Errorf("malformed date accepted")
	}
}

func TestStruct_FoldsFirstFailureIntoMessage(t *testing.T) {
	type draft struct {
		Name  string `validate:"required"`
		Email string `validate:"required,email"`
	}

	err := Struct(draft{Name: "An", Email: "nope"})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected a validation error, got %v", err)
	}
	if err.Error() != "Email is not a valid email address" {
		t.Errorf("unexpected message: %q", err.Error())
	}

	if err := Struct(draft{Name: "An", Email: "an@example.com"}); err != nil {
		t.Errorf("valid draft rejected: %v", err)
	}
}
