package apperrors

import "errors"

// Common errors
var (
	// Validation errors (client-local, never sent to the network)
	ErrValidationFailed = errors.New("validation failed")
	ErrRequiredField    = errors.New("required field is missing")
	ErrInvalidEmail     = errors.New("invalid email format")
	ErrInvalidPhone     = errors.New("invalid phone number")
	ErrInvalidDateRange = errors.New("end date must be after start date")

	// Transport errors
	ErrTransport = errors.New("network error")
	ErrTimeout   = errors.New("network timeout")

	// Backend errors
	ErrBackend      = errors.New("request rejected by server")
	ErrUnauthorized = errors.New("session is not authenticated")

	// Anything that does not fit the taxonomy above
	ErrUnexpected = errors.New("unexpected error")
)

// Session errors
var (
	ErrNoToken      = errors.New("no access token stored")
	ErrTokenExpired = errors.New("access token expired")
)

// Cascade errors
var (
	ErrNoParentSelected = errors.New("no parent entity selected")
	ErrUnknownChild     = errors.New("child is not part of the loaded options")
	ErrAlreadyLinked    = errors.New("student is already linked")
	ErrNotLinked        = errors.New("student is not linked")
	ErrNotAvailable     = errors.New("student is not in the available pool")
)

// Fallback user-facing messages, used when the backend does not supply one.
const (
	FallbackBackendMessage   = "Something went wrong, please try again"
	FallbackTimeoutMessage   = "The server did not respond in time"
	FallbackTransportMessage = "Could not reach the server"
)

// RequestError represents a failed operation with user-facing context
type RequestError struct {
	Err        error
	Message    string
	HTTPStatus int
	Code       int
}

// Error implements error interface
func (e *RequestError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *RequestError) Unwrap() error {
	return e.Err
}

// WithStatus adds the HTTP status the backend answered with
func (e *RequestError) WithStatus(status int) *RequestError {
	e.HTTPStatus = status
	return e
}

// WithCode adds the backend envelope code
func (e *RequestError) WithCode(code int) *RequestError {
	e.Code = code
	return e
}

// NewBackendError creates an error for a non-2xx backend response.
// The backend-provided message is passed through to the user as-is;
// an empty message falls back to a static string.
func NewBackendError(message string) *RequestError {
	if message == "" {
		message = FallbackBackendMessage
	}
	return &RequestError{Err: ErrBackend, Message: message}
}

// NewTimeoutError creates an error for a request that exceeded its time budget
func NewTimeoutError() *RequestError {
	return &RequestError{Err: ErrTimeout, Message: FallbackTimeoutMessage}
}

// NewTransportError creates an error for a failed network round trip
func NewTransportError(cause error) *RequestError {
	return &RequestError{Err: errors.Join(ErrTransport, cause), Message: FallbackTransportMessage}
}

// NewValidationError creates a client-local validation error with an inline message
func NewValidationError(message string) *RequestError {
	return &RequestError{Err: ErrValidationFailed, Message: message}
}

// Is returns whether target matches err or any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}
	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
