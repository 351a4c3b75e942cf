// Package bignum implements fixed-width multi-precision integer arithmetic
// over limb arrays of three widths, plus a Montgomery reduction engine used
// by the RSA and classical-ECC envelopes built on top of it.
//
// Every value has a statically fixed bit width chosen at construction time;
// there is no dynamic growth. Arithmetic wraps modulo 2^W, with carry/borrow
// returned explicitly by the unsigned primitives so callers can detect
// overflow when they need to.
package bignum

import "fmt"

// Width is the bit width of a fixed-width integer. Only the three widths
// named below are supported; Width.Limbs panics on any other value, the same
// way the teacher's ring package panics on a mismatched polynomial degree.
type Width int

// Supported widths, matching the three RSA-class moduli sizes this engine
// is sized for.
const (
	W4352 Width = 4352
	W6400 Width = 6400
	W8448 Width = 8448
)

// Limbs returns the number of 32-bit limbs needed to hold a value of width w.
func (w Width) Limbs() int {
	switch w {
	case W4352, W6400, W8448:
		return (int(w) + 31) / 32
	default:
		panic(fmt.Errorf("bignum: unsupported width %d", int(w)))
	}
}

// Bytes returns the number of bytes needed to hold a value of width w.
func (w Width) Bytes() int {
	return int(w) / 8
}
