package pkgerror

import (
	"errors"
	"net/http"
)

type Type int

const (
	TypeServer Type = iota
	TypeBusiness
)

type Code int

const (
	CodeInternal Code = iota
	CodeInvalidInput
	CodeNotFound
	CodeConflict
)

func (c Code) HTTPStatus() int {
	switch c {
	case CodeInvalidInput:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

type Error struct {
	msg  string
	typ  Type
	code Code
	err  error
}

// NewBusiness is an error caused by the caller; its message is safe to show.
func NewBusiness(msg string, code Code) *Error {
	return &Error{msg: msg, typ: TypeBusiness, code: code}
}

// NewServer wraps an internal failure; callers only see msg.
func NewServer(err error) *Error {
	return &Error{msg: "internal server error", typ: TypeServer, code: CodeInternal, err: err}
}

func (e *Error) Error() string {
	if e.err != nil {
		return e.msg + ": " + e.err.Error()
	}
	return e.msg
}

func (e *Error) Unwrap() error { return e.err }

func (e *Error) Msg() string { return e.msg }

func (e *Error) Type() Type { return e.typ }

func (e *Error) Code() Code { return e.code }

// As unwraps err into *Error; anything else is treated as a server error.
func As(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return NewServer(err)
}
