package chunk

import (
	"errors"
	"fmt"
)

// ErrTooShort is returned when a buffer is too short to contain a chunk.
var ErrTooShort = errors.New("buffer is too short to contain a chunk")

// ErrInvalidUTF8 is returned when chunk data requested as text is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("chunk data is not valid UTF-8")

// InvalidTypeError is returned when a chunk type code cannot be parsed.
type InvalidTypeError struct {
	Value  string
	Reason string
}

// Error implements the error interface.
func (e InvalidTypeError) Error() string {
	return fmt.Sprintf("invalid chunk type %q: %s", e.Value, e.Reason)
}

// TruncatedError is returned when the declared payload length exceeds the
// bytes available in the buffer.
type TruncatedError struct {
	Declared  uint32
	Available int
}

// Error implements the error interface.
func (e TruncatedError) Error() string {
	return fmt.Sprintf("truncated chunk: payload of %d bytes declared, %d available",
		e.Declared, e.Available)
}

// CRCMismatchError is returned when the CRC stored in a buffer does not
// match the one computed over type and payload.
type CRCMismatchError struct {
	Expected uint32
	Actual   uint32
}

// Error implements the error interface.
func (e CRCMismatchError) Error() string {
	return fmt.Sprintf("CRC mismatch: stored 0x%08x, computed 0x%08x", e.Actual, e.Expected)
}
