package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies a failure independently of transport. The HTTP layer is
// the only place a Kind is turned into a status code.
type Kind int

const (
	KindValidation Kind = iota // malformed or missing input, malformed id
	KindAuth                   // bad credentials or bad/absent token
	KindNotFound               // no record for a well-formed id
	KindConflict               // uniqueness violation
	KindPersistence            // storage failure or anything unclassified
)

// Error is a domain error raised by the service layer.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation returns a KindValidation error with the given client-visible message.
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// Auth returns a KindAuth error with the given client-visible message.
func Auth(message string) *Error {
	return &Error{Kind: KindAuth, Message: message}
}

// NotFound returns a KindNotFound error with the given client-visible message.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Conflict returns a KindConflict error with the given client-visible message.
func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// Persistence wraps a storage failure. The cause is kept for logging but is
// never sent to the client.
func Persistence(message string, err error) *Error {
	return &Error{Kind: KindPersistence, Message: message, Err: err}
}

// KindOf extracts the Kind from err, or KindPersistence when err is not a
// domain error.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindPersistence
}
