// Package apperr provides the typed errors returned by the persistence layer.
// Handlers map an error's Kind to an HTTP status; errors.Is matches by Kind,
// so a wrapped write failure still satisfies errors.Is(err, ErrStorageWrite).
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind represents the category of error.
type Kind int

const (
	KindUnknown Kind = iota
	// KindStorageUnavailable means the connector holds no live handle.
	KindStorageUnavailable
	// KindStorageWrite means an insert reached the store and failed.
	KindStorageWrite
	// KindStorageRead means a query reached the store and failed.
	KindStorageRead
	// KindValidation indicates invalid input data.
	KindValidation
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindStorageUnavailable:
		return "storage_unavailable"
	case KindStorageWrite:
		return "storage_write"
	case KindStorageRead:
		return "storage_read"
	case KindValidation:
		return "validation"
	case KindInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is checks.
var (
	ErrStorageUnavailable = New(KindStorageUnavailable, "storage unavailable")
	ErrStorageWrite       = New(KindStorageWrite, "storage write failed")
	ErrStorageRead        = New(KindStorageRead, "storage read failed")
	ErrValidation         = New(KindValidation, "validation failed")
)

// Error is a domain error with a typed Kind.
type Error struct {
	Kind    Kind
	Message string
	Op      string // Operation that failed (optional)
	Err     error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, msg)
	}
	return msg
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// HTTPStatus returns the HTTP status code for this error kind.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// New creates a new domain error with the given kind and message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap creates a new domain error wrapping an existing error.
func Wrap(kind Kind, op, message string, err error) *Error {
	return &Error{Kind: kind, Op: op, Message: message, Err: err}
}

// KindOf returns the Kind of the first *Error in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// StatusOf returns the HTTP status for err, defaulting to 500.
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.HTTPStatus()
	}
	return http.StatusInternalServerError
}
