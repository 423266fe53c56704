// Package errors provides the structured error type and the user-facing error
// taxonomy for statcards.
//
// Every failure below the card renderer is reported as an *Error carrying a
// Code. Six of those codes form the closed ErrorClass taxonomy: each maps to
// exactly one rendered error card. RENDER_FAILED is the only code outside the
// taxonomy; it marks a template-binding failure and is surfaced as a generic
// server error instead of a card.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeUserNotFound, "no such user %q", login)
//	if errors.Is(err, errors.ErrCodeUserNotFound) {
//	    // render the user-not-found card
//	}
//
//	// Collapse anything into one of the six classes
//	class := errors.ClassOf(err)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// ErrorClass codes. The set is closed: normalizers select exactly one of
// these per failed request.
const (
	ErrCodeUserNotFound         Code = "USER_NOT_FOUND"
	ErrCodeRepoNotFound         Code = "REPO_NOT_FOUND"
	ErrCodeLanguagesUnavailable Code = "LANGUAGES_UNAVAILABLE"
	ErrCodeBadCredentials       Code = "BAD_CREDENTIALS"
	ErrCodeRateLimited          Code = "RATE_LIMITED"
	ErrCodeUnknown              Code = "UNKNOWN"
)

// ErrCodeRenderFailed marks a template-binding failure. It is not part of the
// ErrorClass taxonomy.
const ErrCodeRenderFailed Code = "RENDER_FAILED"

// Classes lists the ErrorClass codes in display order.
var Classes = []Code{
	ErrCodeUserNotFound,
	ErrCodeRepoNotFound,
	ErrCodeLanguagesUnavailable,
	ErrCodeBadCredentials,
	ErrCodeRateLimited,
	ErrCodeUnknown,
}

// IsClass reports whether c belongs to the ErrorClass taxonomy.
func IsClass(c Code) bool {
	for _, known := range Classes {
		if c == known {
			return true
		}
	}
	return false
}

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

// ClassOf collapses err into one of the ErrorClass codes.
// Errors without a taxonomy code, including RENDER_FAILED, become UNKNOWN.
func ClassOf(err error) Code {
	if c := GetCode(err); IsClass(c) {
		return c
	}
	return ErrCodeUnknown
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
