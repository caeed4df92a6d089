package kitchen

import (
	"errors"
	"fmt"
)

// Error is a catalog error with a machine-readable code.
//
// Catalog errors include:
//   - Invalid argument: bad price, difficulty, sort key or outcome label
//   - Conflict: duplicate meal name, soft-deleted rows included
//   - Not found: no row for the given id or name
//   - Gone: the row exists but has been soft-deleted
//   - Unavailable: the underlying database failed
type Error struct {
	// Code identifies the error category.
	Code Code

	// Message is a human-readable description.
	Message string

	// Cause is the wrapped underlying error, if any.
	Cause error
}

// Code categorizes catalog errors.
type Code string

const (
	// CodeInvalidArgument indicates malformed input.
	CodeInvalidArgument Code = "INVALID_ARGUMENT"

	// CodeConflict indicates a duplicate meal name.
	CodeConflict Code = "CONFLICT"

	// CodeNotFound indicates no meal matches the identifier.
	CodeNotFound Code = "NOT_FOUND"

	// CodeGone indicates the meal exists but was soft-deleted.
	CodeGone Code = "GONE"

	// CodeUnavailable indicates a database failure.
	CodeUnavailable Code = "UNAVAILABLE"
)

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Cause
}

// CodeOf extracts the catalog error code from err.
// Returns CodeUnavailable for errors that are not catalog errors.
func CodeOf(err error) Code {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Code
	}
	return CodeUnavailable
}

// IsNotFound reports whether err is a catalog not-found error.
func IsNotFound(err error) bool {
	var ce *Error
	return errors.As(err, &ce) && ce.Code == CodeNotFound
}

// IsGone reports whether err references a soft-deleted meal.
func IsGone(err error) bool {
	var ce *Error
	return errors.As(err, &ce) && ce.Code == CodeGone
}

// IsConflict reports whether err is a duplicate-name error.
func IsConflict(err error) bool {
	var ce *Error
	return errors.As(err, &ce) && ce.Code == CodeConflict
}

// IsInvalidArgument reports whether err is a malformed-input error.
func IsInvalidArgument(err error) bool {
	var ce *Error
	return errors.As(err, &ce) && ce.Code == CodeInvalidArgument
}

// NewInvalidArgument creates an invalid-argument error.
func NewInvalidArgument(message string) *Error {
	return &Error{Code: CodeInvalidArgument, Message: message}
}

// NewConflict creates a duplicate-name error.
func NewConflict(name string) *Error {
	return &Error{Code: CodeConflict, Message: fmt.Sprintf("meal with name %q already exists", name)}
}

// NewNotFound creates a not-found error for an id or name.
func NewNotFound(message string) *Error {
	return &Error{Code: CodeNotFound, Message: message}
}

// NewGone creates a soft-deleted error for an id or name.
func NewGone(message string) *Error {
	return &Error{Code: CodeGone, Message: message}
}

// wrapUnavailable wraps a database failure.
func wrapUnavailable(message string, cause error) *Error {
	return &Error{Code: CodeUnavailable, Message: message, Cause: cause}
}
