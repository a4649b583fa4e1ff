// Package domainerrors carries coded errors from the domain layer to transports.
//
// Services return *Error values; handlers translate the Code into a status and an
// envelope body. Stores never construct these directly, they return sentinel errors
// that services translate.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code classifies a domain error independent of transport.
type Code string

const (
	CodeBadRequest         Code = "bad_request"
	CodeValidation         Code = "validation_error"
	CodeInvalidInput       Code = "invalid_input"
	CodeConflict           Code = "conflict"
	CodeNotFound           Code = "not_found"
	CodeUnauthorized       Code = "unauthorized"
	CodeForbidden          Code = "forbidden"
	CodeInvalidState       Code = "invalid_state"
	CodeInvariantViolation Code = "invariant_violation"
	CodeTimeout            Code = "timeout"
	CodeInternal           Code = "internal_error"
)

// Error is a coded domain error with an optional cause.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error with the same code and message, so tests can
// assert with errors.Is(err, New(code, msg)).
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}

// New creates a coded error.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches a code and message to an underlying cause.
func Wrap(err error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// From extracts the outermost *Error in the chain.
func From(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// HasCode reports whether the outermost coded error carries code.
func HasCode(err error, code Code) bool {
	de, ok := From(err)
	return ok && de.Code == code
}

// Is is a shorthand for errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// IsClientError reports whether the code describes a caller mistake.
func (c Code) IsClientError() bool {
	switch c {
	case CodeInternal, CodeTimeout, CodeInvariantViolation:
		return false
	default:
		return true
	}
}
