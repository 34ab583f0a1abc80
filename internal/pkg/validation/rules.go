// Package validation holds the client-local validation rules form
// drafts are checked against before any mutation is attempted.
package validation

import (
	"fmt"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/thanhvu/engcenter-console/internal/pkg/apperrors"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	// Phone numbers must carry between 9 and 11 digits; separators and
	// a leading + are tolerated
	PhoneMinDigits = 9
	PhoneMaxDigits = 11

	// DateLayout is the calendar format form inputs use
	DateLayout = "2006-01-02"
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email      *regexp.Regexp
	PhoneChars *regexp.Regexp
	Digit      *regexp.Regexp
}{
	Email:      regexp.MustCompile(EmailPattern),
	PhoneChars: regexp.MustCompile(`^[0-9+\-. ()]+$`),
	Digit:      regexp.MustCompile(`[0-9]`),
}

// validate is the shared struct validator backing tag-based checks
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// phone is not a built-in tag
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return Phone(fl.Field().String()) == nil
	})
	return v
}

// Struct runs tag-based validation on a draft and folds the first
// failure into a single user-facing validation error.
func Struct(draft any) error {
	err := validate.Struct(draft)
	if err == nil {
		return nil
	}

	if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		switch fe.Tag() {
		case "required":
			return apperrors.NewValidationError(fmt.Sprintf("%s is required", fe.Field()))
		case "email":
			return apperrors.NewValidationError(fmt.Sprintf("%s is not a valid email address", fe.Field()))
		case "phone":
			return apperrors.NewValidationError(fmt.Sprintf("%s is not a valid phone number", fe.Field()))
		case "min", "max":
			return apperrors.NewValidationError(fmt.Sprintf("%s has an invalid length", fe.Field()))
		default:
			return apperrors.NewValidationError(fmt.Sprintf("%s is invalid", fe.Field()))
		}
	}

	return apperrors.NewValidationError("form contains invalid fields")
}

// Email checks an address against the email pattern
func Email(address string) error {
	if address == "" {
		return apperrors.ErrRequiredField
	}
	if !CompiledPatterns.Email.MatchString(address) {
		return apperrors.ErrInvalidEmail
	}
	return nil
}

// Phone checks that a phone number carries an acceptable digit count
func Phone(number string) error {
	if number == "" {
		return apperrors.ErrRequiredField
	}
	if !CompiledPatterns.PhoneChars.MatchString(number) {
		return apperrors.ErrInvalidPhone
	}

	digits := len(CompiledPatterns.Digit.FindAllString(number, -1))
	if digits < PhoneMinDigits || digits > PhoneMaxDigits {
		return apperrors.ErrInvalidPhone
	}
	return nil
}

// DateOrder checks that end falls strictly after start. Both values use
// DateLayout.
func DateOrder(start, end string) error {
	if start == "" || end == "" {
		return apperrors.ErrRequiredField
	}

	startDate, err := time.Parse(DateLayout, start)
	if err != nil {
		return apperrors.NewValidationError("start date is not a valid date")
	}
	endDate, err := time.Parse(DateLayout, end)
	if err != nil {
		return apperrors.NewValidationError("end date is not a valid date")
	}

	if !endDate.After(startDate) {
		return apperrors.ErrInvalidDateRange
	}
	return nil
}

// ParseDate parses a form date value using DateLayout
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}
