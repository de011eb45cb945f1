package spin

import (
	"fmt"
	"strings"
)

// maxCodecLen is the largest configuration length with a defined integer
// encoding. Beyond 63 bits the code space no longer fits a uint64;
// exhaustive enumeration is infeasible long before that point anyway.
const maxCodecLen = 63

// BitConfig is a fixed-length configuration of binary spins.
//
// The length is set at construction and never changes. Bits are stored
// unpacked (one byte per site) because the energy kernel reads individual
// sites in its inner loop and configurations are tens of bits at most.
//
// A BitConfig is not safe for concurrent mutation; enumeration code uses
// one scratch instance per worker.
type BitConfig struct {
	bits []uint8
}

// New returns an all-zero configuration of length n.
// Returns ErrInvalidArgument if n is not positive.
func New(n int) (*BitConfig, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: length must be positive, got %d", ErrInvalidArgument, n)
	}
	return &BitConfig{bits: make([]uint8, n)}, nil
}

// Len returns the number of sites.
func (c *BitConfig) Len() int { return len(c.bits) }

// Bit returns the bit at site i.
// Bounds are the caller's responsibility; this is the hot-path accessor
// used by the energy kernel and it performs no checking beyond the
// runtime's own.
func (c *BitConfig) Bit(i int) uint8 { return c.bits[i] }

// Spin returns the physical spin at site i, mapping bit values {0,1}
// to {-1,+1}.
func (c *BitConfig) Spin(i int) int { return 2*int(c.bits[i]) - 1 }

// CountOn returns the number of 1-bits.
func (c *BitConfig) CountOn() int {
	ones := 0
	for _, b := range c.bits {
		if b == 1 {
			ones++
		}
	}
	return ones
}

// CountOff returns the number of 0-bits.
// CountOn() + CountOff() == Len() always holds.
func (c *BitConfig) CountOff() int { return len(c.bits) - c.CountOn() }

// Magnetization returns the net spin, i.e. the sum of the ±1 spins.
func (c *BitConfig) Magnetization() int { return 2*c.CountOn() - len(c.bits) }

// Flip toggles the bit at site i in place.
// Returns ErrIndexOutOfRange if i is outside [0, Len()).
func (c *BitConfig) Flip(i int) error {
	if i < 0 || i >= len(c.bits) {
		return &ErrIndexOutOfRange{Index: i, Length: len(c.bits)}
	}
	c.bits[i] ^= 1
	return nil
}

// SetBits copies the given 0/1 sequence into the configuration.
// Returns ErrDimensionMismatch if the lengths differ and
// ErrInvalidArgument if any value is not 0 or 1.
func (c *BitConfig) SetBits(bits []uint8) error {
	if len(bits) != len(c.bits) {
		return &ErrDimensionMismatch{Expected: len(c.bits), Actual: len(bits)}
	}
	for _, b := range bits {
		if b > 1 {
			return fmt.Errorf("%w: bit value must be 0 or 1, got %d", ErrInvalidArgument, b)
		}
	}
	copy(c.bits, bits)
	return nil
}

// ToInteger returns the unsigned integer whose binary representation equals
// the bit sequence, with site 0 as the most-significant bit.
// Returns ErrInvalidArgument if the configuration is longer than 63 bits.
func (c *BitConfig) ToInteger() (uint64, error) {
	n := len(c.bits)
	if n > maxCodecLen {
		return 0, fmt.Errorf("%w: integer encoding undefined for %d sites (max %d)", ErrInvalidArgument, n, maxCodecLen)
	}
	var d uint64
	for _, b := range c.bits {
		d = d<<1 | uint64(b)
	}
	return d, nil
}

// FromInteger sets the bits so that ToInteger afterward returns d.
// Returns ErrInvalidArgument if d >= 2^Len() or the configuration is longer
// than 63 bits.
func (c *BitConfig) FromInteger(d uint64) error {
	n := len(c.bits)
	if n > maxCodecLen {
		return fmt.Errorf("%w: integer encoding undefined for %d sites (max %d)", ErrInvalidArgument, n, maxCodecLen)
	}
	if d >= 1<<uint(n) {
		return fmt.Errorf("%w: %d out of range [0, 2^%d)", ErrInvalidArgument, d, n)
	}
	for i := range c.bits {
		c.bits[i] = uint8(d >> uint(n-1-i) & 1)
	}
	return nil
}

// Equal reports whether other has the same length and identical bits at
// every site. Configurations of different lengths are never equal.
func (c *BitConfig) Equal(other *BitConfig) bool {
	if other == nil || len(c.bits) != len(other.bits) {
		return false
	}
	for i, b := range c.bits {
		if b != other.bits[i] {
			return false
		}
	}
	return true
}

// Bits returns a copy of the bit sequence.
func (c *BitConfig) Bits() []uint8 {
	out := make([]uint8, len(c.bits))
	copy(out, c.bits)
	return out
}

// Clone returns an independent copy of the configuration.
func (c *BitConfig) Clone() *BitConfig {
	return &BitConfig{bits: c.Bits()}
}

// String renders the bits space-separated inside brackets,
// e.g. "[ 1 0 1 0 ]".
func (c *BitConfig) String() string {
	var sb strings.Builder
	sb.Grow(2*len(c.bits) + 3)
	sb.WriteString("[ ")
	for _, b := range c.bits {
		sb.WriteByte('0' + b)
		sb.WriteByte(' ')
	}
	sb.WriteByte(']')
	return sb.String()
}
