package types

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures so the HTTP layer can pick a status code.
type ErrorKind string

const (
	ErrorKindValidation      ErrorKind = "VALIDATION"
	ErrorKindUnauthenticated ErrorKind = "UNAUTHENTICATED"
	ErrorKindForbidden       ErrorKind = "FORBIDDEN"
	ErrorKindNotFound        ErrorKind = "NOT_FOUND"
	ErrorKindConflict        ErrorKind = "CONFLICT"
	ErrorKindInternal        ErrorKind = "INTERNAL"
)

// AppError is the single error type returned by services and repositories.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewValidationError(message string) *AppError {
	return &AppError{Kind: ErrorKindValidation, Message: message}
}

func NewUnauthenticatedError(message string) *AppError {
	return &AppError{Kind: ErrorKindUnauthenticated, Message: message}
}

func NewForbiddenError(message string) *AppError {
	return &AppError{Kind: ErrorKindForbidden, Message: message}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Kind: ErrorKindNotFound, Message: message}
}

func NewConflictError(message string) *AppError {
	return &AppError{Kind: ErrorKindConflict, Message: message}
}

// NewInternalError wraps an unexpected failure. The message is for logs only;
// clients always see a generic text.
func NewInternalError(message string, err error) *AppError {
	return &AppError{Kind: ErrorKindInternal, Message: message, Err: err}
}

// KindOf returns the kind of err, or ErrorKindInternal for anything that is
// not an AppError.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ErrorKindInternal
}

// IsKind reports whether err is an AppError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return err != nil && KindOf(err) == kind
}
