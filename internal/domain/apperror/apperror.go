// Package apperror carries the failure kind of an upload alongside its
// caller-visible message, so transports can pick a status without parsing text.
package apperror

import (
	"errors"
	"strings"
)

type Kind uint8

const (
	KindUnknown Kind = iota
	KindValidation
	KindSizeExceeded // a Validation failure caused by the size limit
	KindPolicy
	KindCompression
	KindStore
	KindPersistence
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindSizeExceeded:
		return "size_exceeded"
	case KindPolicy:
		return "policy"
	case KindCompression:
		return "compression"
	case KindStore:
		return "store"
	case KindPersistence:
		return "persistence"
	default:
		return "unknown"
	}
}

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error joins the message with the wrapped cause so logs keep the upstream reason.
func (e *Error) Error() string {
	switch {
	case e.Err == nil && e.Message == "":
		return e.Kind.String()
	case e.Err == nil:
		return e.Message
	case e.Message == "":
		return e.Err.Error()
	}

	cause := e.Err.Error()
	if strings.HasSuffix(cause, e.Message) {
		return cause
	}

	return e.Message + ": " + cause
}

// Public returns the caller-visible message without the cause.
func (e *Error) Public() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}

	return e.Kind.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Details returns the wrapped cause, or the kind name when there is none.
func (e *Error) Details() string {
	if e.Err != nil {
		return e.Err.Error()
	}

	return e.Kind.String()
}

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Message: msg, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}

	return KindUnknown
}

// IsValidation reports whether err is user-correctable input, including size violations.
func IsValidation(err error) bool {
	k := KindOf(err)

	return k == KindValidation || k == KindSizeExceeded
}
