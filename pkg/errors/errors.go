// Package errors provides structured error types for mosaic.
//
// Every failure raised by the tiling core carries a machine-readable [Code]
// so that callers (CLI, HTTP server, tests) can tell apart the three kinds of
// failure the core distinguishes:
//
//   - INVALID_ARGUMENT: the caller supplied parameters that can never work
//     (non-positive sizes, out-of-range indices, a shape with no room left,
//     a distribution that does not match its grid)
//   - INVALID_STATE: a balancing step was requested when no legal adjustment
//     exists
//   - RETRIES_EXHAUSTED: the randomized search gave up; different parameters
//     (more retries, other rates, a larger grid) may succeed
//   - CANCELED: the caller's context ended while the search was retrying
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidArgument, "columns must be positive, got %d", n)
//	if errors.Is(err, errors.ErrCodeInvalidArgument) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidArgument, ErrNoSlot, "no slot for %s", shape)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for the tiling core.
const (
	ErrCodeInvalidArgument  Code = "INVALID_ARGUMENT"
	ErrCodeInvalidState     Code = "INVALID_STATE"
	ErrCodeRetriesExhausted Code = "RETRIES_EXHAUSTED"
	ErrCodeCanceled         Code = "CANCELED" // context ended between fill attempts

	// Surface errors (CLI, server)
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInternal      Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// IsInvalidInput reports whether err was caused by bad caller input
// (INVALID_ARGUMENT, INVALID_STATE, INVALID_FORMAT or INVALID_CONFIG).
func IsInvalidInput(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidArgument, ErrCodeInvalidState, ErrCodeInvalidFormat, ErrCodeInvalidConfig:
		return true
	}
	return false
}
