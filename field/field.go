// Package field declares the common operation set every fixed-width prime
// field element type in this module exposes. nistec's Jacobian group law
// (§4.5) is written once against this interface instead of being duplicated
// per NIST curve, the way field/p25519 and field/p448 are each hand-rolled
// for their own pseudo-Mersenne prime (§4.2).
package field

import "math/big"

// Elem is a field element. Implementations (field/p256, field/p384,
// field/p521) are fixed-width limb arrays; every method returns a new value
// rather than mutating the receiver.
type Elem interface {
	Add(b Elem) Elem
	Sub(b Elem) Elem
	Mul(b Elem) Elem
	Square() Elem
	Invert() Elem
	IsZero() bool
	Equal(b Elem) bool
	Bytes() []byte
	ToBig() *big.Int

	// Select returns the receiver when bit == 1 and other when bit == 0,
	// branch-free (bit must be 0 or 1). Used by nistec's constant-time
	// scalar-multiplication ladder (§4.5) to pick the just-added point or
	// the running accumulator without a secret-dependent conditional.
	Select(bit uint64, other Elem) Elem
}
