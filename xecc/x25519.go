// Package xecc implements X25519 and X448 Diffie-Hellman key agreement over
// the Montgomery curves curve25519 and curve448, using the constant-time
// Montgomery ladder of §4.3.
package xecc

import "github.com/tuneinsight/lattigo-core/field/p25519"

// ScalarSize25519 and PointSize25519 are the RFC 7748 byte sizes for
// curve25519.
const (
	ScalarSize25519 = 32
	PointSize25519  = 32
)

// basePoint25519 is the curve25519 base point u-coordinate, 9.
var basePoint25519 = [32]byte{9}

// clampScalar25519 clears the low 3 bits, sets the high bit, and clears the
// bit above it, per §4.3.
func clampScalar25519(k *[32]byte) {
	k[0] &= 248
	k[31] &= 127
	k[31] |= 64
}

// X25519 computes the Diffie-Hellman shared secret for private scalar
// scalar and peer u-coordinate point, using the Montgomery ladder with
// cswap (§4.3). The returned ok is false iff the result is the all-zero
// u-coordinate (small-order input detection); callers must not treat that
// output as a valid secret.
func X25519(scalar, point [32]byte) (shared [32]byte, ok bool) {
	clampScalar25519(&scalar)
	u := p25519.FromBytes(point)

	x1 := u
	x2 := p25519.One()
	z2 := p25519.Zero()
	x3 := u
	z3 := p25519.One()
	swap := uint64(0)

	for t := 254; t >= 0; t-- {
		kt := uint64(scalar[t/8]>>(uint(t)%8)) & 1
		swap ^= kt
		p25519.CSwap(swap, &x2, &x3)
		p25519.CSwap(swap, &z2, &z3)
		swap = kt

		a := p25519.Add(x2, z2)
		aa := p25519.Square(a)
		b := p25519.Sub(x2, z2)
		bb := p25519.Square(b)
		e := p25519.Sub(aa, bb)
		c := p25519.Add(x3, z3)
		d := p25519.Sub(x3, z3)
		da := p25519.Mul(d, a)
		cb := p25519.Mul(c, b)

		x3 = p25519.Square(p25519.Add(da, cb))
		z3 = p25519.Mul(x1, p25519.Square(p25519.Sub(da, cb)))
		x2 = p25519.Mul(aa, bb)

		// a24 = 121665, the curve25519 Montgomery curve constant.
		a24e := p25519.Mul(e, elemFromU32(121665))
		z2 = p25519.Mul(e, p25519.Add(aa, a24e))
	}
	p25519.CSwap(swap, &x2, &x3)
	p25519.CSwap(swap, &z2, &z3)

	zInv := p25519.Invert(z2)
	result := p25519.Mul(x2, zInv)
	out := result.ToBytes()

	zero := true
	for _, b := range out {
		if b != 0 {
			zero = false
			break
		}
	}
	return out, !zero
}

func elemFromU32(v uint64) p25519.Elem {
	return p25519.Elem{v, 0, 0, 0, 0}
}

// X25519Base computes the public key for a clamped private scalar (DH with
// the fixed base point u=9).
func X25519Base(scalar [32]byte) [32]byte {
	pub, _ := X25519(scalar, basePoint25519)
	return pub
}
