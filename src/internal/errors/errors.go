// Package errors provides domain-specific error types for the ip2networkd application.
//
// Every failure that aborts a run is reported as an *Error carrying a code, so callers
// and tests can tell a bad input document apart from a failed write.
package errors

import "fmt"

// ErrorCode represents a category of error that can occur in the application.
type ErrorCode string

const (
	// ErrCodeUsage indicates the command line is malformed.
	ErrCodeUsage ErrorCode = "USAGE_ERROR"

	// ErrCodeConfig indicates the configuration file could not be read or parsed.
	ErrCodeConfig ErrorCode = "CONFIG_ERROR"

	// ErrCodeValidation indicates a configuration value is out of range or malformed.
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"

	// ErrCodeInput indicates an input document is missing, unreadable or does not match the iproute2 JSON schema.
	ErrCodeInput ErrorCode = "INPUT_ERROR"

	// ErrCodeOutput indicates the output directory or a unit file could not be written.
	ErrCodeOutput ErrorCode = "OUTPUT_ERROR"

	// ErrCodeInternal indicates a broken internal invariant.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// Error represents a domain-specific error with an error code and optional cause.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error for errors.Is and errors.As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target error code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a new domain error with the specified code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new domain error wrapping an existing error.
func Wrap(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewUsageError creates a new command line usage error.
func NewUsageError(message string) *Error {
	return New(ErrCodeUsage, message)
}

// NewConfigError creates a new configuration error.
func NewConfigError(message string, cause error) *Error {
	return Wrap(ErrCodeConfig, message, cause)
}

// NewValidationError creates a new validation error.
func NewValidationError(message string, cause error) *Error {
	return Wrap(ErrCodeValidation, message, cause)
}

// NewInputError creates a new input document error.
func NewInputError(message string, cause error) *Error {
	return Wrap(ErrCodeInput, message, cause)
}

// NewOutputError creates a new output write error.
func NewOutputError(message string, cause error) *Error {
	return Wrap(ErrCodeOutput, message, cause)
}

// NewInternalError creates a new internal error.
func NewInternalError(message string, cause error) *Error {
	return Wrap(ErrCodeInternal, message, cause)
}

// HasCode reports whether err is, or wraps, an *Error with the given code.
func HasCode(err error, code ErrorCode) bool {
	for err != nil {
		if e, ok := err.(*Error); ok && e.Code == code {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
