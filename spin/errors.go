package spin

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned for arguments that violate the API
// contract, such as a non-positive length or an out-of-range integer code.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrIndexOutOfRange indicates a site index outside [0, Length).
type ErrIndexOutOfRange struct {
	Index  int
	Length int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("index out of range: %d not in [0, %d)", e.Index, e.Length)
}

// ErrDimensionMismatch indicates a bit sequence whose length does not match
// the configuration length.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}
