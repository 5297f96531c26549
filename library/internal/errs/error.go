package errs

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrPreconditionFailed = errors.New("precondition failed")
	ErrForbidden          = errors.New("forbidden")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrLimitExceeded      = errors.New("limit exceeded")
)

type Kind string

const (
	KindNotFound           Kind = "NotFound"
	KindConflict           Kind = "Conflict"
	KindInvalidArgument    Kind = "InvalidArgument"
	KindPreconditionFailed Kind = "PreconditionFailed"
	KindForbidden          Kind = "Forbidden"
	KindUnauthorized       Kind = "Unauthorized"
	KindLimitExceeded      Kind = "LimitExceeded"
	KindInternal           Kind = "Internal"
)

var kinds = []struct {
	err  error
	kind Kind
}{
	{ErrNotFound, KindNotFound},
	{ErrConflict, KindConflict},
	{ErrInvalidArgument, KindInvalidArgument},
	{ErrPreconditionFailed, KindPreconditionFailed},
	{ErrForbidden, KindForbidden},
	{ErrUnauthorized, KindUnauthorized},
	{ErrLimitExceeded, KindLimitExceeded},
}

// Error is a business rule rejection. Message is safe to show to the caller.
type Error struct {
	Err     error
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(err error, format string, args ...any) error {
	return &Error{Err: err, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) error {
	return New(ErrNotFound, format, args...)
}

func Conflict(format string, args ...any) error {
	return New(ErrConflict, format, args...)
}

func InvalidArgument(format string, args ...any) error {
	return New(ErrInvalidArgument, format, args...)
}

func PreconditionFailed(format string, args ...any) error {
	return New(ErrPreconditionFailed, format, args...)
}

func Forbidden(format string, args ...any) error {
	return New(ErrForbidden, format, args...)
}

func Unauthorized(format string, args ...any) error {
	return New(ErrUnauthorized, format, args...)
}

func LimitExceeded(format string, args ...any) error {
	return New(ErrLimitExceeded, format, args...)
}

func KindOf(err error) Kind {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return KindInternal
}

// Response is the JSON body of every failed call.
type Response struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}
