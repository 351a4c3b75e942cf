// Package eddsa implements Ed25519 and Ed448 signing and verification
// (§4.4): twisted-Edwards/Edwards group law, point compression, and the
// EdDSA sign/verify construction over SHA-512 (25519) or SHAKE-256 (448).
package eddsa

import (
	"crypto/sha512"
	"errors"
	"math/big"

	"github.com/tuneinsight/lattigo-core/field/p25519"
)

// SeedSize25519, PublicKeySize25519 and SignatureSize25519 are the RFC 8032
// byte sizes for Ed25519.
const (
	SeedSize25519      = 32
	PublicKeySize25519 = 32
	SignatureSize25519 = 64
)

// d25519 is the twisted-Edwards curve constant -121665/121666 mod p.
var d25519 = func() p25519.Elem {
	num := p25519.Neg(elemFromU64(121665))
	den := elemFromU64(121666)
	return p25519.Mul(num, p25519.Invert(den))
}()

// l25519 is the order of the Ed25519 base point subgroup.
var l25519, _ = new(big.Int).SetString("1000000000000000000000000000000014def9dea2f79cd65812631a5cf5d3ed", 16)

func elemFromU64(v uint64) p25519.Elem { return p25519.Elem{v, 0, 0, 0, 0} }

// point25519 is a twisted-Edwards point in extended projective coordinates
// (X:Y:Z:T) with T*Z = X*Y (§3 "Curve point").
type point25519 struct {
	X, Y, Z, T p25519.Elem
}

func identity25519() point25519 {
	return point25519{X: p25519.Zero(), Y: p25519.One(), Z: p25519.One(), T: p25519.Zero()}
}

var basePoint25519 = func() point25519 {
	// Standard Ed25519 base point, as given in RFC 8032.
	by := mustElem("46316835694926478169428394003475163141307993866256225615783033603165251855960")
	bx := mustElem("15112221349535400772501151409588531511454012693041857206046113283949847762202")
	t := p25519.Mul(bx, by)
	return point25519{X: bx, Y: by, Z: p25519.One(), T: t}
}()

func mustElem(decimal string) p25519.Elem {
	v, ok := new(big.Int).SetString(decimal, 10)
	if !ok {
		panic("eddsa: bad constant")
	}
	var b [32]byte
	v.FillBytes(b[:]) // big-endian
	// reverse to little-endian for FromBytes
	for i, j := 0, 31; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return p25519.FromBytes(b)
}

// addPoints25519 adds two extended-coordinate points using the unified
// twisted-Edwards addition formula (always valid since a = -1 for Ed25519).
func addPoints25519(p, q point25519) point25519 {
	a := p25519.Mul(p25519.Sub(p.Y, p.X), p25519.Sub(q.Y, q.X))
	b := p25519.Mul(p25519.Add(p.Y, p.X), p25519.Add(q.Y, q.X))
	c := p25519.Mul(p25519.Mul(p.T, elemFromU64(2)), p25519.Mul(q.T, d25519))
	dd := p25519.Mul(p25519.Mul(p.Z, elemFromU64(2)), q.Z)
	e := p25519.Sub(b, a)
	f := p25519.Sub(dd, c)
	g := p25519.Add(dd, c)
	h := p25519.Add(b, a)
	return point25519{
		X: p25519.Mul(e, f),
		Y: p25519.Mul(g, h),
		Z: p25519.Mul(f, g),
		T: p25519.Mul(e, h),
	}
}

func doublePoint25519(p point25519) point25519 {
	return addPoints25519(p, p)
}

// scalarMult25519 computes k*P with a constant-time "always add" double-and-
// add ladder: every bit performs an add, selected in or out by a constant-
// time mask (§4.4 "the always-add construction keeps control flow
// uniform").
func scalarMult25519(k *big.Int, p point25519) point25519 {
	result := identity25519()
	base := p
	for i := 0; i < 256; i++ {
		bit := uint64(0)
		if i < k.BitLen() {
			bit = uint64(k.Bit(i))
		}
		added := addPoints25519(result, base)
		result = selectPoint(bit, added, result)
		base = doublePoint25519(base)
	}
	return result
}

func selectPoint(bit uint64, a, b point25519) point25519 {
	mask := -bit
	var out point25519
	for i := range out.X {
		out.X[i] = (a.X[i] & mask) | (b.X[i] &^ mask)
		out.Y[i] = (a.Y[i] & mask) | (b.Y[i] &^ mask)
		out.Z[i] = (a.Z[i] & mask) | (b.Z[i] &^ mask)
		out.T[i] = (a.T[i] & mask) | (b.T[i] &^ mask)
	}
	return out
}

// compress25519 encodes Y little-endian with the low bit of X packed into
// the spare high bit (§4.4 "Point compression").
func compress25519(p point25519) [32]byte {
	zInv := p25519.Invert(p.Z)
	x := p25519.Mul(p.X, zInv)
	y := p25519.Mul(p.Y, zInv)
	out := y.ToBytes()
	xBytes := x.ToBytes()
	out[31] |= (xBytes[0] & 1) << 7
	return out
}

// decompress25519 recovers X from encoded Y and the packed sign bit via
// (Y^2-1)/(dY^2+1) and a (p+3)/8 square-root candidate step (§4.4).
func decompress25519(enc [32]byte) (point25519, error) {
	sign := enc[31] >> 7
	enc[31] &= 0x7f
	y := p25519.FromBytes(enc)

	y2 := p25519.Square(y)
	u := p25519.Sub(y2, p25519.One())
	v := p25519.Add(p25519.Mul(d25519, y2), p25519.One())
	vInv := p25519.Invert(v)
	uv := p25519.Mul(u, vInv)

	exp := sqrtExponent25519()
	x := p25519.Pow(uv, exp)
	// Candidate check: x^2 should equal u/v; if not, multiply by sqrt(-1).
	x2 := p25519.Square(x)
	uvCheck := p25519.Mul(v, x2)
	if !p25519.Equal(uvCheck, u) {
		sqrtM1 := mustElem("19681161376707505956807079304988542015446066515923890162744021073123829784752")
		x = p25519.Mul(x, sqrtM1)
		x2 = p25519.Square(x)
		uvCheck = p25519.Mul(v, x2)
		if !p25519.Equal(uvCheck, u) {
			return point25519{}, errors.New("eddsa: invalid point encoding")
		}
	}
	xBytes := x.ToBytes()
	if (xBytes[0] & 1) != sign {
		x = p25519.Neg(x)
	}
	if p25519.Equal(x, p25519.Zero()) && sign == 1 {
		return point25519{}, errors.New("eddsa: invalid point encoding")
	}
	t := p25519.Mul(x, y)
	return point25519{X: x, Y: y, Z: p25519.One(), T: t}, nil
}

func sqrtExponent25519() *big.Int {
	p, _ := new(big.Int).SetString("7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffed", 16)
	exp := new(big.Int).Add(p, big.NewInt(3))
	exp.Rsh(exp, 3)
	return exp
}

func clampSeed25519(h []byte) *big.Int {
	var s [32]byte
	copy(s[:], h[:32])
	s[0] &= 248
	s[31] &= 127
	s[31] |= 64
	return leBytesToInt(s[:])
}

func leBytesToInt(b []byte) *big.Int {
	be := make([]byte, len(b))
	for i, v := range b {
		be[len(b)-1-i] = v
	}
	return new(big.Int).SetBytes(be)
}

func intToLeBytes(v *big.Int, size int) []byte {
	be := v.FillBytes(make([]byte, size))
	out := make([]byte, size)
	for i, b := range be {
		out[size-1-i] = b
	}
	return out
}

// PublicKey25519 derives the public key for a 32-byte seed, hashing with
// SHA-512 and clamping the first half into the secret scalar (§4.4).
func PublicKey25519(seed [SeedSize25519]byte) [PublicKeySize25519]byte {
	h := sha512.Sum512(seed[:])
	s := clampSeed25519(h[:])
	pub := scalarMult25519(s, basePoint25519)
	return compress25519(pub)
}

// Sign25519 produces an RFC 8032 Ed25519 signature over msg.
func Sign25519(seed [SeedSize25519]byte, msg []byte) [SignatureSize25519]byte {
	h := sha512.Sum512(seed[:])
	s := clampSeed25519(h[:])
	prefix := h[32:64]

	pubBytes := compress25519(scalarMult25519(s, basePoint25519))

	rh := sha512.New()
	rh.Write(prefix)
	rh.Write(msg)
	rDigest := rh.Sum(nil)
	r := reduceModL(leBytesToInt(rDigest))

	rPoint := scalarMult25519(r, basePoint25519)
	rBytes := compress25519(rPoint)

	kh := sha512.New()
	kh.Write(rBytes[:])
	kh.Write(pubBytes[:])
	kh.Write(msg)
	kDigest := kh.Sum(nil)
	k := reduceModL(leBytesToInt(kDigest))

	// s = (r + k*a) mod L
	ka := new(big.Int).Mul(k, s)
	sSum := new(big.Int).Add(r, ka)
	sSum.Mod(sSum, l25519)

	var out [SignatureSize25519]byte
	copy(out[:32], rBytes[:])
	copy(out[32:], intToLeBytes(sSum, 32))
	return out
}

// Verify25519 checks an Ed25519 signature, returning an error for any
// malformed or invalid input (tampering any bit of msg, sig, or pub must
// produce an error, per §8 property 6).
func Verify25519(pub [PublicKeySize25519]byte, sig [SignatureSize25519]byte, msg []byte) error {
	A, err := decompress25519(pub)
	if err != nil {
		return err
	}
	var rEnc [32]byte
	copy(rEnc[:], sig[:32])
	R, err := decompress25519(rEnc)
	if err != nil {
		return err
	}
	s := leBytesToInt(sig[32:64])
	if s.Cmp(l25519) >= 0 {
		return errors.New("eddsa: s out of range")
	}

	kh := sha512.New()
	kh.Write(sig[:32])
	kh.Write(pub[:])
	kh.Write(msg)
	kDigest := kh.Sum(nil)
	k := reduceModL(leBytesToInt(kDigest))

	sB := scalarMult25519(s, basePoint25519)
	kA := scalarMult25519(k, A)
	rPlusKA := addPoints25519(R, kA)

	lhs := compress25519(sB)
	rhs := compress25519(rPlusKA)
	if lhs != rhs {
		return errors.New("eddsa: signature verification failed")
	}
	return nil
}

func reduceModL(v *big.Int) *big.Int {
	return new(big.Int).Mod(v, l25519)
}
