// Package apperr defines the typed failures returned by services.
package apperr

import (
	"errors"
	"strings"
)

type Kind string

const (
	KindValidation   Kind = "validation_failed"
	KindNotFound     Kind = "not_found"
	KindConflict     Kind = "conflict"
	KindUnauthorized Kind = "unauthorized"
	KindStorage      Kind = "storage_error"
)

// Kind sentinels. errors.Is(err, ErrNotFound) matches any not-found error.
var (
	ErrValidation   = &Error{Kind: KindValidation}
	ErrNotFound     = &Error{Kind: KindNotFound}
	ErrConflict     = &Error{Kind: KindConflict}
	ErrUnauthorized = &Error{Kind: KindUnauthorized}
	ErrStorage      = &Error{Kind: KindStorage}
)

// FieldError is a single violation against a request field.
type FieldError struct {
	Field   string         `json:"field"`
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Params  map[string]any `json:"-"`
	Unique  bool           `json:"-"`
}

func (f FieldError) String() string {
	return f.Field + ": " + f.Message
}

type Error struct {
	Kind    Kind
	Code    string
	Message string
	Details []string
	Params  map[string]any
	Fields  []FieldError
	Err     error
}

func New(kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = string(e.Kind)
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches by code when the target carries one, otherwise by kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Code != "" {
		return e.Code == t.Code
	}
	return e.Kind == t.Kind
}

func (e *Error) clone() *Error {
	c := *e
	return &c
}

// With returns a copy of e wrapping cause.
func (e *Error) With(cause error) *Error {
	c := e.clone()
	c.Err = cause
	return c
}

func (e *Error) WithDetails(details ...string) *Error {
	c := e.clone()
	c.Details = details
	return c
}

func (e *Error) WithParams(params map[string]any) *Error {
	c := e.clone()
	c.Params = params
	return c
}

func (e *Error) WithMessage(message string) *Error {
	c := e.clone()
	c.Message = message
	return c
}

// Storage wraps a low-level persistence failure.
func Storage(err error) *Error {
	return &Error{Kind: KindStorage, Code: "storage_error", Message: "storage failure", Err: err}
}

// Violations builds an error from collected field violations. The result is a
// conflict when every violation is a uniqueness failure.
func Violations(fields []FieldError) *Error {
	if len(fields) == 0 {
		return nil
	}
	kind, code := KindConflict, "conflict"
	details := make([]string, 0, len(fields))
	for _, f := range fields {
		if !f.Unique {
			kind, code = KindValidation, "validation_failed"
		}
		details = append(details, f.Message)
	}
	return &Error{
		Kind:    kind,
		Code:    code,
		Message: strings.Join(details, ", "),
		Details: details,
		Fields:  fields,
	}
}

// KindOf reports the kind of err, or KindStorage for untyped errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindStorage
}
