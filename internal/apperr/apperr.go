// Package apperr defines the error taxonomy shared by the ledger core and the
// transport layer.
//
// Every failure surfaced to a caller is an *Error carrying a Kind (how the
// caller should react) and a stable Code (what happened). errors.Is matches
// on Code, so sentinels below can be compared against errors enriched with
// field details or wrapped causes.
package apperr

import (
	"errors"
	"fmt"
	"maps"
)

// Kind classifies an error by how a client should react to it.
type Kind uint8

const (
	// KindInternal is an unexpected failure (storage down, bug).
	KindInternal Kind = iota
	// KindValidation is client-correctable bad input.
	KindValidation
	// KindNotFound means the addressed resource does not exist.
	KindNotFound
	// KindForbidden means the acting member may not perform the operation.
	KindForbidden
	// KindConflict means the resource changed state; refresh and retry.
	KindConflict
	// KindInvariant is a broken ledger invariant. Always a bug.
	KindInvariant
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindForbidden:
		return "forbidden"
	case KindConflict:
		return "conflict"
	case KindInvariant:
		return "invariant_violation"
	default:
		return "internal"
	}
}

// Error is a classified application error.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	// Fields holds field-level detail, e.g. {"amount": "must be greater than 0"}.
	Fields map[string]string

	cause error
}

// New returns an error of the given kind.
func New(kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target is an *Error with the same Code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// WithField returns a copy of e with field detail attached.
func (e *Error) WithField(field, detail string) *Error {
	cp := *e
	cp.Fields = make(map[string]string, len(e.Fields)+1)
	maps.Copy(cp.Fields, e.Fields)
	cp.Fields[field] = detail
	return &cp
}

// WithMessage returns a copy of e with a more specific message.
func (e *Error) WithMessage(format string, args ...any) *Error {
	cp := *e
	cp.Message = fmt.Sprintf(format, args...)
	return &cp
}

// Wrap returns a copy of e that records cause.
func (e *Error) Wrap(cause error) *Error {
	cp := *e
	cp.cause = cause
	return &cp
}

// KindOf returns the Kind of err, or KindInternal for unclassified errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// FieldsOf returns the field details attached to err, if any.
func FieldsOf(err error) map[string]string {
	var e *Error
	if errors.As(err, &e) {
		return e.Fields
	}
	return nil
}

// Validation builds a validation error from a field → detail map.
func Validation(message string, fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Code: ErrInvalidArgument.Code, Message: message, Fields: fields}
}
