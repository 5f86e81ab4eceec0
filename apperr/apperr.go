// Package apperr defines the failure kinds every operation can return.
// Handlers map each kind to exactly one HTTP status; anything that is not
// an *Error is reported as a 500.
package apperr

import "errors"

var (
	ErrValidation  = errors.New("validation failed")
	ErrDuplicate   = errors.New("duplicate")
	ErrCredentials = errors.New("invalid credentials")
	ErrNotFound    = errors.New("not found")
	ErrForbidden   = errors.New("forbidden")
	ErrUpload      = errors.New("upload failed")
	ErrTooLarge    = errors.New("payload too large")
	ErrSelfFollow  = errors.New("self reference")
)

type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

func Validation(msg string) *Error {
	return &Error{Kind: ErrValidation, Message: msg}
}

func Duplicate(msg string) *Error {
	return &Error{Kind: ErrDuplicate, Message: msg}
}

func Credentials(msg string) *Error {
	return &Error{Kind: ErrCredentials, Message: msg}
}

func NotFound(msg string) *Error {
	return &Error{Kind: ErrNotFound, Message: msg}
}

func Forbidden(msg string) *Error {
	return &Error{Kind: ErrForbidden, Message: msg}
}

func Upload(msg string) *Error {
	return &Error{Kind: ErrUpload, Message: msg}
}

func TooLarge(msg string) *Error {
	return &Error{Kind: ErrTooLarge, Message: msg}
}

func SelfFollow(msg string) *Error {
	return &Error{Kind: ErrSelfFollow, Message: msg}
}
