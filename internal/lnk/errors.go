package lnk

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidHeader means the input is not a shell link: wrong header
	// size or class identifier.
	ErrInvalidHeader = errors.New("invalid shell link header")
	// ErrTruncated means a required fixed-size field ended early.
	ErrTruncated = errors.New("truncated shell link")
	// ErrMalformed means a fixed-size structure declared an impossible size.
	ErrMalformed = errors.New("malformed shell link")
)

// DecodeError reports a fatal decode failure and where it happened.
type DecodeError struct {
	Section string
	Offset  int64
	Err     error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %s at offset %d: %v", e.Section, e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
