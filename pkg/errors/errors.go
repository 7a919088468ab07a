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

	// Docs tree errors
	ErrDocsNotFound ErrorCode = "DOCS_NOT_FOUND"
	ErrDocsInvalid  ErrorCode = "DOCS_INVALID"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"

	// Output errors
	ErrFileWrite     ErrorCode = "FILE_WRITE"
	ErrRenderFailed  ErrorCode = "RENDER_FAILED"
	ErrUnknownFormat ErrorCode = "UNKNOWN_FORMAT"
)

// DocnavError represents a structured error with code and details
type DocnavError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DocnavError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DocnavError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *DocnavError) Is(target error) bool {
	var targetErr *DocnavError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DocnavError with the given code and message
func New(code ErrorCode, message string) *DocnavError {
	return &DocnavError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DocnavError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DocnavError {
	return &DocnavError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a DocnavError
func Wrap(err error, code ErrorCode, message string) *DocnavError {
	if err == nil {
		return nil
	}
	return &DocnavError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DocnavError {
	if err == nil {
		return nil
	}
	return &DocnavError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *DocnavError) WithDetail(key string, value interface{}) *DocnavError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var navErr *DocnavError
	if errors.As(err, &navErr) {
		return navErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a DocnavError
func GetErrorCode(err error) ErrorCode {
	var navErr *DocnavError
	if errors.As(err, &navErr) {
		return navErr.Code
	}
	return ErrUnknown
}
