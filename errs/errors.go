// Package errs defines the error values shared across cesu8str packages.
//
// Decode and validation failures are reported as *DecodeError values
// wrapping one of the sentinel errors below, so callers can match the
// failure class with errors.Is and recover the byte offset with errors.As.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSequence indicates a byte or byte group that violates the
	// encoding's grammar: a bad continuation byte, an overlong encoding
	// other than the Modified UTF-8 null escape, or a sequence truncated
	// by the end of the buffer.
	ErrInvalidSequence = errors.New("invalid byte sequence")

	// ErrUnpairedSurrogate indicates a high surrogate with no following
	// low surrogate, or a low surrogate with no preceding high surrogate.
	ErrUnpairedSurrogate = errors.New("unpaired surrogate")

	// ErrDisallowedCodePoint indicates a construct that is legal UTF-8 but
	// illegal in the source variant: a raw four-byte sequence in CESU-8
	// input, or a standalone null byte in Modified UTF-8 input.
	ErrDisallowedCodePoint = errors.New("disallowed code point")
)

// DecodeError reports the first malformed unit found while decoding or
// validating a buffer. Offset is the index of the unit's first byte,
// relative to the original input buffer, even when the scan builds output
// incrementally.
type DecodeError struct {
	Err    error // one of the sentinel errors above
	Offset int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%v at offset %d", e.Err, e.Offset)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
