// Package apperr defines the error taxonomy from spec §7: kinds, not
// distinct exported types per kind, carried as one Error value so the
// dispatcher can type-switch only on the Fatal/non-fatal distinction.
package apperr

import (
	"errors"
	"fmt"
)

// Kind is one of the taxonomy's error kinds.
type Kind int

const (
	Parse Kind = iota
	SQL
	IO
	Schema
	State
	Fatal
)

func (k Kind) String() string {
	switch k {
	case Parse:
		return "ParseError"
	case SQL:
		return "SqlError"
	case IO:
		return "IoError"
	case Schema:
		return "SchemaError"
	case State:
		return "StateError"
	case Fatal:
		return "FatalError"
	default:
		return "Error"
	}
}

// Error is a taxonomy-tagged error. Non-fatal kinds are routed to the
// status bar by the action dispatcher (C9); Fatal unwinds to main.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func New(kind Kind, msg string) *Error { return &Error{Kind: kind, Msg: msg} }

func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// IsFatal reports whether err (or any error it wraps) is a FatalError.
func IsFatal(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == Fatal
	}
	return false
}
