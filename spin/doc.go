// Package spin provides the bit-level spin configuration type used by the
// Ising enumeration engine.
//
// A BitConfig is a fixed-length vector of 0/1 values. Bit 0 is the
// most-significant bit of the integer encoding, so FromInteger/ToInteger
// walk the configuration space [0, 2^n) in the natural counting order.
//
// # Usage
//
//	c, _ := spin.New(4)
//	c.FromInteger(10)
//	fmt.Println(c) // [ 1 0 1 0 ]
package spin
