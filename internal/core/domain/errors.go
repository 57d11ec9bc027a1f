package domain

import "errors"

var (
	ErrEmailExists  = errors.New("Email already exists")
	ErrInvalidLogin = errors.New("invalid email or password")
	ErrUnauthorized = errors.New("unauthorized")
)

// ValidationError carries a client-facing message for malformed input.
// The message is surfaced verbatim in the 400 response body.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError with the given message.
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
