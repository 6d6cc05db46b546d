package cbor

import (
	"errors"
	"strconv"
)

// Error kinds surfaced by the codec. Decode failures arrive wrapped in
// a *PosError carrying the byte offset; match kinds with errors.Is.
var (
	// ErrTruncated is returned when the buffer ends in the middle of an item.
	ErrTruncated = errors.New("cbor: truncated input")

	// ErrUnsupported is returned for an initial byte the codec does not
	// decode, including semantic tags (major type 6).
	ErrUnsupported = errors.New("cbor: unsupported initial byte")

	// ErrBadUTF8 is returned when a text string is not valid UTF-8.
	ErrBadUTF8 = errors.New("cbor: invalid UTF-8 in text string")

	// ErrBadKey is returned when an object key does not decode to a text string.
	ErrBadKey = errors.New("cbor: object key is not a text string")

	// ErrUnexpectedBreak is returned when a break byte (0xff) appears
	// outside an indefinite-length container.
	ErrUnexpectedBreak = errors.New("cbor: unexpected break")

	// ErrOverflow is returned when a negative integer does not fit in int64.
	ErrOverflow = errors.New("cbor: negative integer overflows int64")

	// ErrTooDeep is returned when container nesting exceeds the decoder's
	// depth limit.
	ErrTooDeep = errors.New("cbor: nesting depth exceeds limit")
)

// PosError wraps a decode error with the byte offset it was detected
// at, measured from the start of the input buffer.
type PosError struct {
	Off int
	Err error
}

// Error implements the error interface.
func (e *PosError) Error() string {
	return e.Err.Error() + " at offset " + strconv.Itoa(e.Off)
}

// Unwrap returns the error kind.
func (e *PosError) Unwrap() error { return e.Err }

func posErr(off int, err error) error { return &PosError{Off: off, Err: err} }

// Offset returns the byte offset recorded in err, or -1 when err does
// not carry one.
func Offset(err error) int {
	var pe *PosError
	if errors.As(err, &pe) {
		return pe.Off
	}
	return -1
}
