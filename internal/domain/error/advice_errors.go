// Package error defines domain-specific errors for the Finance Coach application.
package error

import "errors"

// Advice domain errors.
var (
	// ErrAdviceCardNotFound is returned when an advice card is not found for the user.
	ErrAdviceCardNotFound = errors.New("advice card not found")
)

// AdviceErrorCode defines error codes for advice errors.
// Format: ADV-XXYYYY where XX is category and YYYY is specific error.
type AdviceErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeAdviceCardNotFound AdviceErrorCode = "ADV-010001"

	// Internal errors (99XXXX)
	ErrCodeAdviceInternalError AdviceErrorCode = "ADV-990001"
)

// AdviceError represents an advice error with code and message.
type AdviceError struct {
	Code    AdviceErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AdviceError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AdviceError) Unwrap() error {
	return e.Err
}

// NewAdviceError creates a new AdviceError with the given code and message.
func NewAdviceError(code AdviceErrorCode, message string, err error) *AdviceError {
	return &AdviceError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
