package errcode

import (
	"errors"

	"frameworkec-go/drivers/crosec"
)

// Code is a stable, caller-facing error identifier.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK            Code = "ok"
	NotPresent    Code = "not_present"
	IO            Code = "io_error"
	InvalidParams Code = "invalid_params"
	Unsupported   Code = "unsupported"
	Busy          Code = "busy"
	Timeout       Code = "timeout"

	Error Code = "error" // generic fallback
)

// Optional wrapper when we want to keep context and a cause.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	if e.Msg != "" {
		return string(e.C) + ": " + e.Msg
	}
	return string(e.C)
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Of extracts a Code from an error, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	if c, ok := err.(Code); ok {
		return c
	}
	type coder interface{ Code() Code }
	if x, ok := err.(coder); ok {
		return x.Code()
	}
	return Error
}

// MapDriverErr collapses a crosec driver error to its category. The
// underlying error is never re-exposed to callers, only its code.
func MapDriverErr(err error) Code {
	if err == nil {
		return OK
	}
	if errors.Is(err, crosec.ErrNotPresent) {
		return NotPresent
	}
	var re *crosec.ResultError
	if errors.As(err, &re) {
		switch re.Result {
		case crosec.ResBusy, crosec.ResInProgress:
			return Busy
		case crosec.ResTimeout:
			return Timeout
		case crosec.ResInvalidParam:
			return InvalidParams
		}
		return IO
	}
	// Anything else came out of the channel itself.
	return IO
}
