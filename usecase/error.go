package usecase

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failure.
//
// The set of kinds is open: packages may declare their own ErrorKind values.
type ErrorKind string

// Built-in error kinds.
const (
	// BadRequest indicates that the command is malformed or violates a business rule.
	BadRequest ErrorKind = "BadRequest"

	// NotFound indicates that an entity the command refers to does not exist.
	NotFound ErrorKind = "NotFound"

	// InternalError is the fallback kind for failures nobody classified.
	InternalError ErrorKind = "InternalError"

	Unauthorized  ErrorKind = "Unauthorized"
	Forbidden     ErrorKind = "Forbidden"
	Conflict      ErrorKind = "Conflict"
	Unprocessable ErrorKind = "Unprocessable"
	Unavailable   ErrorKind = "Unavailable"
)

// String returns the name of the kind. An empty kind reports as InternalError.
func (k ErrorKind) String() string {
	if k == "" {
		return string(InternalError)
	}

	return string(k)
}

// Error describes a single failure recorded by a use case.
//
// Error is a value object: two records are equal when their kinds and messages are.
type Error struct {
	Kind    ErrorKind `json:"kind" yaml:"kind"`
	Message string    `json:"message" yaml:"message"`
}

// NewError returns a new Error record.
func NewError(kind ErrorKind, message string) Error {
	return Error{
		Kind:    kind,
		Message: message,
	}
}

func (e Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// BusinessError is returned by handlers to signal an expected, classified failure.
//
// Use cases record business errors with their own kind and never propagate them.
type BusinessError struct {
	Kind    ErrorKind
	Message string

	// Cause is the underlying error, if any.
	Cause error
}

// NewBusinessError returns a new BusinessError.
func NewBusinessError(kind ErrorKind, format string, args ...any) *BusinessError {
	return &BusinessError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// WrapBusinessError returns a new BusinessError caused by cause.
func WrapBusinessError(cause error, kind ErrorKind, format string, args ...any) *BusinessError {
	e := NewBusinessError(kind, format, args...)
	e.Cause = cause

	return e
}

func (e *BusinessError) Error() string {
	if e == nil {
		return "<nil>"
	}

	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}

	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *BusinessError) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.Cause
}

// Record returns the Error record describing e.
// An empty kind is recorded as InternalError.
func (e *BusinessError) Record() Error {
	kind := e.Kind
	if kind == "" {
		kind = InternalError
	}

	return NewError(kind, e.Message)
}

// AsBusinessError finds the first BusinessError in err's chain.
func AsBusinessError(err error) (*BusinessError, bool) {
	var be *BusinessError
	if errors.As(err, &be) && be != nil {
		return be, true
	}

	return nil, false
}
