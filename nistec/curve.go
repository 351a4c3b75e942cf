// Package nistec implements ECDH and ECDSA over the NIST short-Weierstrass
// curves P-256, P-384 and P-521 (§4.5). Field elements are represented by
// field/p256, field/p384 and field/p521 — dedicated fixed-width limb field
// packages that fold each curve's generalized-Mersenne prime the way
// field/p25519/field/p448 fold curve25519/448's pseudo-Mersenne prime
// (§4.2), rather than normalizing through math/big.Int.Mod. Group-law code
// here is written once against the field.Elem interface and shared by all
// three curves; only the Curve value's field constants and conversion
// closure differ per curve.
package nistec

import (
	"crypto/rand"
	"errors"
	"math/big"

	"github.com/tuneinsight/lattigo-core/field"
	"github.com/tuneinsight/lattigo-core/field/p256"
	"github.com/tuneinsight/lattigo-core/field/p384"
	"github.com/tuneinsight/lattigo-core/field/p521"
)

// Curve holds the parameters of a NIST short-Weierstrass curve y^2 = x^3 -
// 3x + b over GF(p), with base point (Gx, Gy) of order N.
type Curve struct {
	Name string
	P    *big.Int
	N    *big.Int
	bits int

	b, gx, gy field.Elem
	zero, one field.Elem
	fromBig   func(*big.Int) field.Elem
}

func mustBig(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("nistec: bad constant")
	}
	return v
}

// P256 returns the NIST P-256 curve parameters (FIPS 186-4).
func P256() *Curve {
	fromBig := func(v *big.Int) field.Elem { return p256.FromBig(v) }
	return &Curve{
		Name:    "P-256",
		P:       mustBig("ffffffff00000001000000000000000000000000ffffffffffffffffffffffff"),
		N:       mustBig("ffffffff00000000ffffffffffffffffbce6faada7179e84f3b9cac2fc632551"),
		bits:    256,
		b:       fromBig(mustBig("5ac635d8aa3a93e7b3ebbd55769886bc651d06b0cc53b0f63bce3c3e27d2604b")),
		gx:      fromBig(mustBig("6b17d1f2e12c4247f8bce6e563a440f277037d812deb33a0f4a13945d898c296")),
		gy:      fromBig(mustBig("4fe342e2fe1a7f9b8ee7eb4a7c0f9e162bce33576b315ececbb6406837bf51f5")),
		zero:    p256.Zero(),
		one:     p256.One(),
		fromBig: fromBig,
	}
}

// P384 returns the NIST P-384 curve parameters.
func P384() *Curve {
	fromBig := func(v *big.Int) field.Elem { return p384.FromBig(v) }
	return &Curve{
		Name: "P-384",
		P: mustBig("fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffe" +
			"ffffffff0000000000000000ffffffff"),
		N: mustBig("ffffffffffffffffffffffffffffffffffffffffffffffffc7634d81f4372dd" +
			"f581a0db248b0a77aecec196accc52973"),
		bits: 384,
		b: fromBig(mustBig("b3312fa7e23ee7e4988e056be3f82d19181d9c6efe8141120314088f5013875a" +
			"c656398d8a2ed19d2a85c8edd3ec2aef")),
		gx: fromBig(mustBig("aa87ca22be8b05378eb1c71ef320ad746e1d3b628ba79b9859f741e082542a38" +
			"5502f25dbf55296c3a545e3872760ab7")),
		gy: fromBig(mustBig("3617de4a96262c6f5d9e98bf9292dc29f8f41dbd289a147ce9da3113b5f0b8c0" +
			"0a60b1ce1d7e819d7a431d7c90ea0e5f")),
		zero:    p384.Zero(),
		one:     p384.One(),
		fromBig: fromBig,
	}
}

// P521 returns the NIST P-521 curve parameters.
func P521() *Curve {
	fromBig := func(v *big.Int) field.Elem { return p521.FromBig(v) }
	return &Curve{
		Name:    "P-521",
		P:       mustBig("1ff" + "ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"),
		N:       mustBig("1ff" + "fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffa51868783bf2f966b7fcc0148f709a5d03bb5c9b8899c47aebb6fb71e91386409"),
		bits:    521,
		b:       fromBig(mustBig("051" + "953eb9618e1c9a1f929a21a0b68540eea2da725b99b315f3b8b489918ef109e156193951ec7e937b1652c0bd3bb1bf073573df883d2c34f1ef451fd46b503f00")),
		gx:      fromBig(mustBig("c6" + "858e06b70404e9cd9e3ecb662395b4429c648139053fb521f828af606b4d3dbaa14b5e77efe75928fe1dc127a2ffa8de3348b3c1856a429bf97e7e31c2e5bd66")),
		gy:      fromBig(mustBig("118" + "39296a789a3bc0045c8a5fb42c7d1bd998f54449579b446817afbd17273e662c97ee72995ef42640c550b9013fad0761353c7086a272c24088be94769fd16650")),
		zero:    p521.Zero(),
		one:     p521.One(),
		fromBig: fromBig,
	}
}

// jacobian is a Jacobian-coordinate point; Z == 0 represents infinity (§3).
type jacobian struct{ X, Y, Z field.Elem }

func (c *Curve) infinity() jacobian {
	return jacobian{X: c.one, Y: c.one, Z: c.zero}
}

func isInfinity(p jacobian) bool { return p.Z.IsZero() }

// mulSmall computes k*a for the small fixed multipliers the group-law
// formulas use, by repeated doubling/adding — k is always a formula
// constant, never secret data, so the number of Adds per call is fixed.
func mulSmall(a field.Elem, k int) field.Elem {
	switch k {
	case 2:
		return a.Add(a)
	case 3:
		return a.Add(a).Add(a)
	case 4:
		v := a.Add(a)
		return v.Add(v)
	case 8:
		v := a.Add(a)
		v = v.Add(v)
		return v.Add(v)
	default:
		panic("nistec: unsupported small multiplier")
	}
}

// double computes 2P in Jacobian coordinates using the a=-3 specialization
// (M = 3X^2 - 3Z^4), per §4.5.
func (c *Curve) double(p jacobian) jacobian {
	if isInfinity(p) || p.Y.IsZero() {
		return c.infinity()
	}
	x, y, z := p.X, p.Y, p.Z
	ySq := y.Mul(y)
	s := mulSmall(x.Mul(ySq), 4)
	ySqSq := ySq.Mul(ySq)
	zSq := z.Mul(z)
	zQuad := zSq.Mul(zSq)
	m := mulSmall(x.Mul(x), 3).Sub(mulSmall(zQuad, 3))
	x3 := m.Mul(m).Sub(mulSmall(s, 2))
	y3 := m.Mul(s.Sub(x3)).Sub(mulSmall(ySqSq, 8))
	z3 := mulSmall(y.Mul(z), 2)
	return jacobian{X: x3, Y: y3, Z: z3}
}

// add computes P1+P2 in Jacobian coordinates for arbitrary (not necessarily
// affine) operands, the "add-2007-bl" formula, needed because the
// always-add scalar ladder doubles a running Jacobian base point every
// round instead of keeping it in affine form.
func (c *Curve) add(p1, p2 jacobian) jacobian {
	if isInfinity(p1) {
		return p2
	}
	if isInfinity(p2) {
		return p1
	}
	z1z1 := p1.Z.Mul(p1.Z)
	z2z2 := p2.Z.Mul(p2.Z)
	u1 := p1.X.Mul(z2z2)
	u2 := p2.X.Mul(z1z1)
	s1 := p1.Y.Mul(p2.Z).Mul(z2z2)
	s2 := p2.Y.Mul(p1.Z).Mul(z1z1)
	h := u2.Sub(u1)
	r := mulSmall(s2.Sub(s1), 2)
	if h.IsZero() {
		if r.IsZero() {
			return c.double(p1)
		}
		return c.infinity()
	}
	i := mulSmall(h, 2)
	i = i.Mul(i)
	j := h.Mul(i)
	v := u1.Mul(i)
	x3 := r.Mul(r).Sub(j).Sub(mulSmall(v, 2))
	y3 := r.Mul(v.Sub(x3)).Sub(mulSmall(s1.Mul(j), 2))
	zSum := p1.Z.Add(p2.Z)
	z3 := zSum.Mul(zSum).Sub(z1z1).Sub(z2z2).Mul(h)
	return jacobian{X: x3, Y: y3, Z: z3}
}

func selectJacobian(bit uint64, a, b jacobian) jacobian {
	return jacobian{
		X: a.X.Select(bit, b.X),
		Y: a.Y.Select(bit, b.Y),
		Z: a.Z.Select(bit, b.Z),
	}
}

func (c *Curve) toAffine(p jacobian) (x, y field.Elem, ok bool) {
	if isInfinity(p) {
		return nil, nil, false
	}
	zInv := p.Z.Invert()
	zInv2 := zInv.Mul(zInv)
	zInv3 := zInv2.Mul(zInv)
	return p.X.Mul(zInv2), p.Y.Mul(zInv3), true
}

// ScalarMult computes k*(ax,ay) with an always-add, constant-time-select
// ladder: every one of the fixed c.bits rounds computes an add and a
// double, and a branch-free Select keeps or discards the add based on the
// scalar's bit — mirroring eddsa.selectPoint's ladder shape (§4.5, "keeps
// the number of adds uniform and independent of the scalar").
func (c *Curve) ScalarMult(k *big.Int, ax, ay *big.Int) (x, y *big.Int, ok bool) {
	kk := new(big.Int).Mod(k, c.N)
	base := jacobian{X: c.fromBig(ax), Y: c.fromBig(ay), Z: c.one}
	result := c.infinity()
	for i := 0; i < c.bits; i++ {
		bit := uint64(0)
		if i < kk.BitLen() {
			bit = uint64(kk.Bit(i))
		}
		added := c.add(result, base)
		result = selectJacobian(bit, added, result)
		base = c.double(base)
	}
	xe, ye, ok := c.toAffine(result)
	if !ok {
		return nil, nil, false
	}
	return xe.ToBig(), ye.ToBig(), true
}

// ScalarBaseMult computes k*G.
func (c *Curve) ScalarBaseMult(k *big.Int) (x, y *big.Int, ok bool) {
	return c.ScalarMult(k, c.gx.ToBig(), c.gy.ToBig())
}

// IsOnCurve checks y^2 = x^3 - 3x + b (mod p) and x,y < p.
func (c *Curve) IsOnCurve(x, y *big.Int) bool {
	if x.Sign() < 0 || y.Sign() < 0 || x.Cmp(c.P) >= 0 || y.Cmp(c.P) >= 0 {
		return false
	}
	xe, ye := c.fromBig(x), c.fromBig(y)
	lhs := ye.Mul(ye)
	rhs := xe.Mul(xe).Mul(xe).Sub(mulSmall(xe, 3)).Add(c.b)
	return lhs.Equal(rhs)
}

// validPrivateScalar checks 1 <= k < n.
func (c *Curve) validPrivateScalar(k *big.Int) bool {
	return k.Sign() > 0 && k.Cmp(c.N) < 0
}

var errInvalidKey = errors.New("nistec: invalid private scalar")
var errInvalidPoint = errors.New("nistec: public point not on curve")

// ECDH computes the shared x-coordinate for private scalar d and peer public
// point (qx, qy).
func (c *Curve) ECDH(d *big.Int, qx, qy *big.Int) ([]byte, error) {
	if !c.validPrivateScalar(d) {
		return nil, errInvalidKey
	}
	if !c.IsOnCurve(qx, qy) {
		return nil, errInvalidPoint
	}
	x, _, ok := c.ScalarMult(d, qx, qy)
	if !ok {
		return nil, errors.New("nistec: shared point is the point at infinity")
	}
	return bigToFixed(x, (c.bits+7)/8), nil
}

func bigToFixed(v *big.Int, size int) []byte {
	return v.FillBytes(make([]byte, size))
}

// GenerateKey returns a random private scalar and its public point.
func (c *Curve) GenerateKey() (d, x, y *big.Int, err error) {
	for {
		buf := make([]byte, (c.bits+7)/8)
		if _, err := rand.Read(buf); err != nil {
			return nil, nil, nil, err
		}
		d = new(big.Int).SetBytes(buf)
		d.Mod(d, new(big.Int).Sub(c.N, big.NewInt(1)))
		d.Add(d, big.NewInt(1))
		if !c.validPrivateScalar(d) {
			continue
		}
		x, y, _ = c.ScalarBaseMult(d)
		return d, x, y, nil
	}
}
