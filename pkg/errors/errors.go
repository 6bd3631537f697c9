package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Homebrew errors
	ErrBrewNotInstalled ErrorCode = "BREW_NOT_INSTALLED"
	ErrCommandExecute   ErrorCode = "COMMAND_EXECUTE"

	// Output errors
	ErrOutputFormat ErrorCode = "OUTPUT_FORMAT"
	ErrOutputWrite  ErrorCode = "OUTPUT_WRITE"
)

// BrewdumpError represents a structured error with code and details
type BrewdumpError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *BrewdumpError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *BrewdumpError) Unwrap() error {
	return e.Wrapped
}

// Is matches any BrewdumpError carrying the same code
func (e *BrewdumpError) Is(target error) bool {
	var targetErr *BrewdumpError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new BrewdumpError with the given code and message
func New(code ErrorCode, message string) *BrewdumpError {
	return &BrewdumpError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new BrewdumpError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *BrewdumpError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) *BrewdumpError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *BrewdumpError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *BrewdumpError) WithDetail(key string, value interface{}) *BrewdumpError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var bdErr *BrewdumpError
	if errors.As(err, &bdErr) {
		return bdErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a BrewdumpError
func GetErrorCode(err error) ErrorCode {
	var bdErr *BrewdumpError
	if errors.As(err, &bdErr) {
		return bdErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a BrewdumpError
func GetErrorDetails(err error) map[string]interface{} {
	var bdErr *BrewdumpError
	if errors.As(err, &bdErr) {
		return bdErr.Details
	}
	return nil
}
