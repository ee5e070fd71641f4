// Package errors provides structured errors with stable codes so that
// commands and tests can distinguish failure categories without matching
// on message text.
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

	// Environment errors
	ErrEnvMissing ErrorCode = "ENV_MISSING"
	ErrEnvInvalid ErrorCode = "ENV_INVALID"

	// Config store errors
	ErrConfigWrite   ErrorCode = "CONFIG_WRITE"
	ErrSettingsParse ErrorCode = "SETTINGS_PARSE"
	ErrRootInvalid   ErrorCode = "ROOT_INVALID"

	// Template errors
	ErrTemplateRead ErrorCode = "TEMPLATE_READ"

	// Target file errors
	ErrTargetRead  ErrorCode = "TARGET_READ"
	ErrTargetWrite ErrorCode = "TARGET_WRITE"

	// Bundle generation errors
	ErrBundleWrite ErrorCode = "BUNDLE_WRITE"
)

// TTError represents a structured error with code and details
type TTError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *TTError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *TTError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *TTError) Is(target error) bool {
	var targetErr *TTError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new TTError with the given code and message
func New(code ErrorCode, message string) *TTError {
	return &TTError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new TTError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *TTError {
	return &TTError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a TTError
func Wrap(err error, code ErrorCode, message string) *TTError {
	if err == nil {
		return nil
	}
	return &TTError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *TTError {
	if err == nil {
		return nil
	}
	return &TTError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *TTError) WithDetail(key string, value interface{}) *TTError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// GetCode extracts the error code from an error, returning ErrUnknown
// for errors that are not TTErrors.
func GetCode(err error) ErrorCode {
	var ttErr *TTError
	if errors.As(err, &ttErr) {
		return ttErr.Code
	}
	return ErrUnknown
}

// IsCode checks whether err carries the given code
func IsCode(err error, code ErrorCode) bool {
	return GetCode(err) == code
}
