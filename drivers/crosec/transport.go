package crosec

import "errors"

// Transport owns one channel to the EC and performs a single blocking
// request/response round trip per call. Implementations serialise
// callers internally; there is never more than one exchange in flight
// on a channel. No retries, no partial success: an exchange either
// yields a full-size payload with an EC status, or an error.
type Transport interface {
	Exchange(cmd Command) (Response, error)
}

var (
	// Sentinel errors.
	ErrNotPresent   = errors.New("ec not present")
	ErrResponseSize = errors.New("short response payload")
	ErrChecksum     = errors.New("response checksum mismatch")
	ErrFrame        = errors.New("malformed response frame")
)

// ResultError reports an exchange the EC completed with a non-success
// status code.
type ResultError struct {
	Result Result
}

func (e *ResultError) Error() string { return "ec status: " + e.Result.String() }
