package duo

import "errors"

// Panic values raised by construction and the unwrap family. Each message
// names the operation and the variant it was misapplied to, so a recovered
// panic is attributable without a stack trace.
var (
	ErrInvalidConstruction = errors.New("duo: Some requires a non-nil value")
	ErrUnwrapOnNone        = errors.New("duo: called Unwrap on a None option")
	ErrUnwrapOnErr         = errors.New("duo: called Unwrap on an Err result")
	ErrUnwrapErrOnOk       = errors.New("duo: called UnwrapErr on an Ok result")
)

// ErrRejected stands in for a rejection that carried no reason.
var ErrRejected = errors.New("duo: rejected with no reason")

// ExpectError is the panic value of Expect and ExpectErr, carrying the
// caller-supplied message in place of the original payload.
type ExpectError struct {
	Message string
}

func (e ExpectError) Error() string { return e.Message }
