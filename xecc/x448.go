package xecc

import "github.com/tuneinsight/lattigo-core/field/p448"

// ScalarSize448 and PointSize448 are the RFC 7748 byte sizes for curve448.
const (
	ScalarSize448 = 56
	PointSize448  = 56
)

var basePoint448 = func() [56]byte {
	var b [56]byte
	b[0] = 5
	return b
}()

// clampScalar448 clears the low 2 bits and sets the top bit, per §4.3 (no
// second-highest-bit clear for curve448, unlike curve25519).
func clampScalar448(k *[56]byte) {
	k[0] &= 252
	k[55] |= 128
}

// X448 computes the Diffie-Hellman shared secret over curve448 using the
// Montgomery ladder with cswap (§4.3). ok is false iff the result is the
// all-zero u-coordinate.
func X448(scalar, point [56]byte) (shared [56]byte, ok bool) {
	clampScalar448(&scalar)
	u := p448.FromBytes(point)

	x1 := u
	x2 := p448.One()
	z2 := p448.Zero()
	x3 := u
	z3 := p448.One()
	swap := uint64(0)

	// a24 = (156326-2)/4 = 39081, the curve448 Montgomery curve constant.
	a24 := p448.Elem{39081}

	for t := 447; t >= 0; t-- {
		kt := uint64(scalar[t/8]>>(uint(t)%8)) & 1
		swap ^= kt
		p448.CSwap(swap, &x2, &x3)
		p448.CSwap(swap, &z2, &z3)
		swap = kt

		a := p448.Add(x2, z2)
		aa := p448.Square(a)
		b := p448.Sub(x2, z2)
		bb := p448.Square(b)
		e := p448.Sub(aa, bb)
		c := p448.Add(x3, z3)
		d := p448.Sub(x3, z3)
		da := p448.Mul(d, a)
		cb := p448.Mul(c, b)

		x3 = p448.Square(p448.Add(da, cb))
		z3 = p448.Mul(x1, p448.Square(p448.Sub(da, cb)))
		x2 = p448.Mul(aa, bb)
		z2 = p448.Mul(e, p448.Add(aa, p448.Mul(e, a24)))
	}
	p448.CSwap(swap, &x2, &x3)
	p448.CSwap(swap, &z2, &z3)

	zInv := p448.Invert(z2)
	result := p448.Mul(x2, zInv)
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

// X448Base computes the public key for a clamped private scalar.
func X448Base(scalar [56]byte) [56]byte {
	pub, _ := X448(scalar, basePoint448)
	return pub
}
