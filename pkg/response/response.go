// Package response defines the error envelope REST handlers return: a
// sentinel carrying the HTTP status alongside the message, so services can
// decide the status and handlerUtil only has to unwrap it.
package response

import (
	"errors"
)

type Error struct {
	Code int
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Is(target error) bool {
	var t *Error
	ok := errors.As(target, &t)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Err.Error() == t.Err.Error()
}

// NewError builds a status-carrying sentinel, typically declared once per
// domain in its error.go.
func NewError(code int, err string) error {
	return &Error{code, errors.New(err)}
}
