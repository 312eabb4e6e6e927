// Package error defines domain-specific errors for the Finance Coach application.
package error

import "errors"

// Coach domain errors.
var (
	// ErrInvalidDays is returned when the analysis window is not a positive day count.
	ErrInvalidDays = errors.New("days must be a positive integer")

	// ErrInvalidWeeks is returned when the heatmap window is not a positive week count.
	ErrInvalidWeeks = errors.New("weeks must be a positive integer")

	// ErrInvalidMonths is returned when the buffer horizon is not a positive month count.
	ErrInvalidMonths = errors.New("months must be a positive integer")

	// ErrInvalidLowIncomeThreshold is returned when a settings write carries a
	// non-positive low income threshold.
	ErrInvalidLowIncomeThreshold = errors.New("low_income_threshold must be greater than zero")

	// ErrInvalidExpenseRatio is returned when a settings write carries a ratio
	// outside (0, 1].
	ErrInvalidExpenseRatio = errors.New("high_expense_ratio must be in (0, 1]")
)

// CoachErrorCode defines error codes for coach errors.
// Format: CCH-XXYYYY where XX is category and YYYY is specific error.
type CoachErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidDays               CoachErrorCode = "CCH-010001"
	ErrCodeInvalidWeeks              CoachErrorCode = "CCH-010002"
	ErrCodeInvalidMonths             CoachErrorCode = "CCH-010003"
	ErrCodeInvalidLowIncomeThreshold CoachErrorCode = "CCH-010004"
	ErrCodeInvalidExpenseRatio       CoachErrorCode = "CCH-010005"

	// Internal errors (99XXXX)
	ErrCodeCoachInternalError CoachErrorCode = "CCH-990001"
)

// CoachError represents a coach error with code and message.
type CoachError struct {
	Code    CoachErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CoachError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CoachError) Unwrap() error {
	return e.Err
}

// NewCoachError creates a new CoachError with the given code and message.
func NewCoachError(code CoachErrorCode, message string, err error) *CoachError {
	return &CoachError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
