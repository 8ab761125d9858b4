// Package errors provides coded errors for lazysetup.
//
// Codes are stable strings so tests and callers can branch on the kind of
// failure without matching on message text.
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
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Install unit errors
	ErrTargetName    ErrorCode = "TARGET_NAME"
	ErrCommandLaunch ErrorCode = "COMMAND_LAUNCH"
	ErrCloneFailed   ErrorCode = "CLONE_FAILED"
	ErrAttempts      ErrorCode = "ATTEMPTS_EXHAUSTED"

	// FileSystem errors
	ErrDirRemove  ErrorCode = "DIR_REMOVE"
	ErrDirCreate  ErrorCode = "DIR_CREATE"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
	ErrFileAccess ErrorCode = "FILE_ACCESS"
)

// LazyError represents a structured error with code and details
type LazyError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *LazyError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *LazyError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *LazyError) Is(target error) bool {
	var targetErr *LazyError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new LazyError with the given code and message
func New(code ErrorCode, message string) *LazyError {
	return &LazyError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new LazyError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *LazyError {
	return &LazyError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a LazyError
func Wrap(err error, code ErrorCode, message string) *LazyError {
	if err == nil {
		return nil
	}
	return &LazyError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *LazyError {
	if err == nil {
		return nil
	}
	return &LazyError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *LazyError) WithDetail(key string, value interface{}) *LazyError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var lazyErr *LazyError
	if errors.As(err, &lazyErr) {
		return lazyErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a LazyError
func GetErrorCode(err error) ErrorCode {
	var lazyErr *LazyError
	if errors.As(err, &lazyErr) {
		return lazyErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a LazyError
func GetErrorDetails(err error) map[string]interface{} {
	var lazyErr *LazyError
	if errors.As(err, &lazyErr) {
		return lazyErr.Details
	}
	return nil
}
