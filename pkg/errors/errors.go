package errors

import (
	"errors"
	"fmt"
)

const (
	CodeValidation = "VALIDATION_ERROR"
	CodeDecode     = "DECODE_ERROR"
	CodeTransport  = "TRANSPORT_ERROR"
	CodeInternal   = "INTERNAL_ERROR"
)

const (
	ExitOK        = 0
	ExitStreamEnd = 1
	ExitUsage     = 2
)

var (
	ErrValidation = NewError(CodeValidation, "invalid arguments")
	ErrDecode     = NewError(CodeDecode, "Malformed JSON")
	ErrTransport  = NewError(CodeTransport, "Stream closed")
	ErrInternal   = NewError(CodeInternal, "internal error")
)

type FatalError interface {
	error
	IsFatal() bool
}

// Error is the application error type. Message is a fixed, human readable head
// ("WebSocket closed") and Detail is the variable part ("1000 bye"); together they
// form the text shown to the user.
type Error struct {
	Code    string
	Message string
	Detail  string
	Cause   error
}

func NewError(code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Detail)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// IsFatal reports whether the error ends the stream. Decode errors only skip the
// offending message.
func (e *Error) IsFatal() bool {
	return e.Code != CodeDecode
}

func (e *Error) WithCause(cause error) *Error {
	err := *e
	err.Cause = cause
	return &err
}

func (e *Error) WithMessage(message string) *Error {
	err := *e
	err.Message = message
	return &err
}

func (e *Error) WithDetail(format string, args ...interface{}) *Error {
	err := *e
	err.Detail = fmt.Sprintf(format, args...)
	return &err
}

func Wrap(err error, appErr *Error) *Error {
	if err == nil {
		return nil
	}
	return appErr.WithCause(err)
}

// Validation builds a configuration-time error carrying a user-facing message.
func Validation(format string, args ...interface{}) *Error {
	return ErrValidation.WithMessage(fmt.Sprintf(format, args...))
}

// Transport builds a terminal connection error, e.g. Transport("WebSocket closed", "%d %s", code, reason).
func Transport(message string, detailFormat string, args ...interface{}) *Error {
	err := ErrTransport.WithMessage(message)
	if detailFormat != "" {
		err = err.WithDetail(detailFormat, args...)
	}
	return err
}

func hasCode(err error, code string) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

func IsValidation(err error) bool {
	return hasCode(err, CodeValidation)
}

func IsDecode(err error) bool {
	return hasCode(err, CodeDecode)
}

func IsTransport(err error) bool {
	return hasCode(err, CodeTransport)
}

// ExitCode maps an error returned by a command to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if IsValidation(err) {
		return ExitUsage
	}
	return ExitStreamEnd
}

// As re-exports errors.As so callers need a single import.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
