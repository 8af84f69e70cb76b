package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is the outcome class of a failed operation.
type Kind int

const (
	// DatabaseError is the zero value so unclassified failures land here.
	DatabaseError Kind = iota
	ValidationFailed
	Unauthenticated
	DuplicateAction
	SelfReferenceNotAllowed
	NotFound
)

func (k Kind) String() string {
	switch k {
	case ValidationFailed:
		return "validation_failed"
	case Unauthenticated:
		return "unauthenticated"
	case DuplicateAction:
		return "duplicate_action"
	case SelfReferenceNotAllowed:
		return "self_reference_not_allowed"
	case NotFound:
		return "not_found"
	default:
		return "database_error"
	}
}

// Code returns the stable error code written in API responses.
func (k Kind) Code() string {
	switch k {
	case ValidationFailed:
		return "VALIDATION_FAILED"
	case Unauthenticated:
		return "UNAUTHORIZED"
	case DuplicateAction:
		return "DUPLICATE_ACTION"
	case SelfReferenceNotAllowed:
		return "SELF_REFERENCE"
	case NotFound:
		return "NOT_FOUND"
	default:
		return "DATABASE_ERROR"
	}
}

// Status maps a kind to the HTTP status used by the API.
func (k Kind) Status() int {
	switch k {
	case ValidationFailed, DuplicateAction, SelfReferenceNotAllowed:
		return http.StatusBadRequest
	case Unauthenticated:
		return http.StatusUnauthorized
	case NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Error is a classified failure.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches another *Error by kind, so errors.Is(err, apperr.New(NotFound, "")) works.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// New creates a classified error.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap classifies cause under kind.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Err: cause}
}

func Validation(message string) *Error { return New(ValidationFailed, message) }

func Unauthorized(message string) *Error { return New(Unauthenticated, message) }

func Duplicate(message string) *Error { return New(DuplicateAction, message) }

func SelfReference(message string) *Error { return New(SelfReferenceNotAllowed, message) }

func NotFoundf(format string, args ...interface{}) *Error {
	return New(NotFound, fmt.Sprintf(format, args...))
}

func Database(message string, cause error) *Error { return Wrap(DatabaseError, message, cause) }

// KindOf returns the kind carried by err. Any error that was never classified
// is reported as DatabaseError.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return DatabaseError
}

// MessageOf returns the client-facing message for err.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return "internal database error"
}
