// Package error defines domain-specific errors for the Finance Coach application.
package error

import "errors"

// Ledger record domain errors.
var (
	// ErrNegativeAmount is returned when a record is created with a negative amount.
	ErrNegativeAmount = errors.New("amount must not be negative")

	// ErrMissingDate is returned when a record is created without a date.
	ErrMissingDate = errors.New("date is required")

	// ErrInvalidIncomeCategory is returned when the income category is unknown.
	ErrInvalidIncomeCategory = errors.New("income category must be business or personal")
)

// RecordErrorCode defines error codes for ledger record errors.
// Format: REC-XXYYYY where XX is category and YYYY is specific error.
type RecordErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeNegativeAmount        RecordErrorCode = "REC-010001"
	ErrCodeMissingDate           RecordErrorCode = "REC-010002"
	ErrCodeInvalidIncomeCategory RecordErrorCode = "REC-010003"

	// Internal errors (99XXXX)
	ErrCodeRecordInternalError RecordErrorCode = "REC-990001"
)

// RecordError represents a ledger record error with code and message.
type RecordError struct {
	Code    RecordErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RecordError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RecordError) Unwrap() error {
	return e.Err
}

// NewRecordError creates a new RecordError with the given code and message.
func NewRecordError(code RecordErrorCode, message string, err error) *RecordError {
	return &RecordError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
