// Package error defines domain-specific errors for the Strength Check application.
package error

import "errors"

// Password strength domain errors.
// Scoring itself never fails; these cover the request boundary and statistics.
var (
	// ErrPasswordTooLong is returned when a submitted password exceeds the accepted request size.
	ErrPasswordTooLong = errors.New("password too long")

	// ErrBatchTooLarge is returned when a batch evaluation exceeds the configured size.
	ErrBatchTooLarge = errors.New("batch too large")

	// ErrEmptyBatch is returned when a batch evaluation contains no passwords.
	ErrEmptyBatch = errors.New("batch is empty")

	// ErrStatsUnavailable is returned when evaluation statistics cannot be read.
	ErrStatsUnavailable = errors.New("statistics unavailable")
)

// StrengthErrorCode defines error codes for password strength errors.
// Format: PWD-XXYYYY where XX is category and YYYY is specific error.
type StrengthErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodePasswordTooLong      StrengthErrorCode = "PWD-010001"
	ErrCodeBatchTooLarge        StrengthErrorCode = "PWD-010002"
	ErrCodeEmptyBatch           StrengthErrorCode = "PWD-010003"
	ErrCodeMissingPasswordField StrengthErrorCode = "PWD-010004"

	// Availability errors (02XXXX)
	ErrCodeStatsUnavailable StrengthErrorCode = "PWD-020001"
	ErrCodeRateLimited      StrengthErrorCode = "PWD-020002"
)

// StrengthError represents a password strength error with code and message.
type StrengthError struct {
	Code    StrengthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *StrengthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *StrengthError) Unwrap() error {
	return e.Err
}

// NewStrengthError creates a new StrengthError with the given code and message.
func NewStrengthError(code StrengthErrorCode, message string, err error) *StrengthError {
	return &StrengthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
