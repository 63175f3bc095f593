package domain

import "errors"

// Sentinel errors shared across the voting context. Handlers translate these
// into HTTP statuses; repositories translate driver errors into them.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAlreadyExists      = errors.New("already exists")
)

// ValidationError reports user-correctable input problems such as empty
// nomination fields or an over-capacity append.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError with the given message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}
