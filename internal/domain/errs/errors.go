// Package errs defines the typed errors returned by services and guards.
// The api layer maps each Kind to an HTTP status exactly once.
package errs

import (
	"errors"
	"strings"
)

// Kind classifies an application error.
type Kind int

const (
	KindInternal Kind = iota
	KindInvalid
	KindUnauthorized
	KindForbidden
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not found"
	default:
		return "internal"
	}
}

// Error carries one or more client-facing messages and an optional cause.
type Error struct {
	Kind     Kind
	Messages []string
	Err      error
}

func (e *Error) Error() string {
	msg := strings.Join(e.Messages, "; ")
	if e.Err == nil {
		return msg
	}
	if msg == "" {
		return e.Err.Error()
	}
	return msg + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Invalid reports input that failed validation. Each message describes one field.
func Invalid(messages ...string) *Error {
	return &Error{Kind: KindInvalid, Messages: messages}
}

// Unauthorized reports a missing or unusable session.
func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Messages: []string{message}}
}

// Forbidden reports an authenticated caller that may not perform the action.
func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Messages: []string{message}}
}

// NotFound reports a missing resource.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Messages: []string{message}}
}

// Internal wraps an unexpected failure. Its cause is never shown to clients.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Messages: []string{MsgRequestFailed}, Err: err}
}

// KindOf returns the Kind of the first *Error in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// MessagesOf returns the client-facing messages of err.
// Errors outside this package yield a generic message.
func MessagesOf(err error) []string {
	var e *Error
	if errors.As(err, &e) && len(e.Messages) > 0 {
		return e.Messages
	}
	return []string{MsgRequestFailed}
}

// Is reports whether err is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
