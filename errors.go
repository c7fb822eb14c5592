package fixnum

import (
	"errors"
	"fmt"
)

// ErrInvalidHex is wrapped by errors returned when hex text contains a
// character outside [0-9a-fA-F].
var ErrInvalidHex = errors.New("fixnum: invalid hex")

// ValueOverflow is returned when a value does not fit into a bounded
// integer. Max is the largest value the type can hold.
type ValueOverflow struct {
	Max   uint64
	Value uint64
}

func (e *ValueOverflow) Error() string {
	return fmt.Sprintf("fixnum: value %d overflows max value %d", e.Value, e.Max)
}

// ParseLengthError is returned when a byte, word or character buffer used to
// construct a value is not exactly the required length.
type ParseLengthError struct {
	Actual   int
	Expected int
}

func (e *ParseLengthError) Error() string {
	return fmt.Sprintf("fixnum: invalid length: got %d, expected %d", e.Actual, e.Expected)
}
