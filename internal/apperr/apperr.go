// Package apperr defines the application-wide error type
package apperr

import (
	"errors"
	"fmt"
)

// Error is a user-facing application error. Message may contain printf verbs
// that are filled in with Fmt before the error is returned to the caller.
type Error struct {
	Cause    error
	template *Error
	Message  string
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}

	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Fmt fills in the printf verbs in the error message. The returned error
// still matches the original in errors.Is comparisons.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		Message:  fmt.Sprintf(e.Message, args...),
		template: e.base(),
	}
}

// Wrap attaches an underlying cause to the error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		Message:  e.Message,
		template: e.base(),
		Cause:    err,
	}
}

func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}

	return e.base() == t.base()
}

func (e *Error) base() *Error {
	if e.template != nil {
		return e.template
	}

	return e
}
