// Package serrors defines semantic error kinds shared by the storage layer,
// the tab tracker and the HTTP API. A kind travels with the error through
// fmt.Errorf wrapping and is recovered with errors.Is or KindOf.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a semantic error category. Kinds are plain comparable values and
// can be matched with errors.Is anywhere in a chain.
type Kind string

func (k Kind) Error() string { return string(k) }

// NewKind declares a semantic kind.
func NewKind(name string) Kind { return Kind(name) }

// Kinds used across the service.
const (
	// ErrNotFound indicates the requested entity (tab, court, notification) does not exist.
	ErrNotFound Kind = "NOT_FOUND"
	// ErrUnauthorized indicates a missing or invalid bearer token.
	ErrUnauthorized Kind = "UNAUTHORIZED"
	// ErrBadRequest indicates the client sent invalid data.
	ErrBadRequest Kind = "BAD_REQUEST"
	// ErrInternal indicates an unexpected failure.
	ErrInternal Kind = "INTERNAL"
	// ErrUnavailable indicates a dependency such as the database is unreachable.
	ErrUnavailable Kind = "UNAVAILABLE"
)

// Error attaches a Kind and a message to an optional cause. Both the kind and
// the cause are reachable through Unwrap.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With creates an error of kind k with a formatted message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap is With plus a cause.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly creates an error that carries nothing but k.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

func (e *Error) Error() string {
	switch {
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	default:
		return string(e.kind)
	}
}

// Unwrap exposes the kind first, then the cause.
func (e *Error) Unwrap() []error {
	if e.err == nil {
		return []error{e.kind}
	}

	return []error{e.kind, e.err}
}

// Kind returns the semantic kind.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the message without the cause.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped cause, which may be nil.
func (e *Error) Cause() error { return e.err }

// KindOf returns the first Kind found in err's chain, or ErrInternal when the
// chain carries none.
func KindOf(err error) Kind {
	var k Kind
	if errors.As(err, &k) {
		return k
	}

	return ErrInternal
}
