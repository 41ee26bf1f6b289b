// Package errors provides structured error types for gridboard.
//
// Every failure reported by the layout engine carries a machine-readable
// [Code] so that callers (the CLI, the HTTP API, a rendering layer) can decide
// how to react without parsing messages. All engine errors are recoverable:
// a failed operation never leaves partial state behind.
//
// # Error Codes
//
//   - INVALID_ARGUMENT: missing or malformed id, box, configuration or dimensions
//   - REJECTED_PLACEMENT: candidate geometry violates bounds or collision rules
//   - UNKNOWN_PALLETE: no pallete with the requested id
//   - DUPLICATE_ID: a box or pallete id is already taken
//   - NO_DEFAULT_PALLETE: a transfer named no pallete and none is registered
//   - NOT_FOUND: unknown board or box
//   - INVALID_CONFIG, STORAGE, INTERNAL: plumbing around the engine
//
// # Usage
//
//	err := errors.New(errors.ErrCodeRejectedPlacement, "box %q collides with %q", a, b)
//	if errors.Is(err, errors.ErrCodeRejectedPlacement) {
//	    // keep the box at its last committed dimensions
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeStorage, origErr, "save board %s", id)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Engine errors
	ErrCodeInvalidArgument   Code = "INVALID_ARGUMENT"
	ErrCodeRejectedPlacement Code = "REJECTED_PLACEMENT"
	ErrCodeUnknownPallete    Code = "UNKNOWN_PALLETE"
	ErrCodeDuplicateID       Code = "DUPLICATE_ID"
	ErrCodeNoDefaultPallete  Code = "NO_DEFAULT_PALLETE"

	// Lookup errors
	ErrCodeNotFound Code = "NOT_FOUND"

	// Infrastructure errors
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeStorage       Code = "STORAGE"
	ErrCodeInternal      Code = "INTERNAL"
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
