package isingo

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned for arguments that violate the API
// contract: a non-positive temperature, a site count too large to
// enumerate, and similar. The wrapping error carries the detail.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrDimensionMismatch indicates a configuration or field vector whose
// length does not match the model's site count.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ErrIndexOutOfRange indicates a site or neighbor index outside [0, Sites()).
type ErrIndexOutOfRange struct {
	Index  int
	Length int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("index out of range: %d not in [0, %d)", e.Index, e.Length)
}
