// Package p25519 implements the curve25519 base-field arithmetic: the
// pseudo-Mersenne field GF(2^255 - 19), represented as five 51-bit limbs
// (§4.2). Add/Sub carry-propagate once, then fold the overflow back in by
// multiplying by 19 (since 2^255 ≡ 19 mod p); Mul schoolbooks the ten
// cross-limb products and folds twice, matching the "two folds" rule of
// §4.2.
package p25519

import (
	"encoding/binary"
	"math/big"

	"github.com/tuneinsight/lattigo-core/field/internal/wide"
)

// mask51 extracts the low 51 bits of a limb.
const mask51 = (uint64(1) << 51) - 1

// Elem is a field element in radix-2^51 representation, five limbs
// little-endian, loosely reduced (each limb may exceed 51 bits by a small
// margin between operations; Reduce produces the canonical form).
type Elem [5]uint64

// Zero returns the additive identity.
func Zero() Elem { return Elem{} }

// One returns the multiplicative identity.
func One() Elem { return Elem{1, 0, 0, 0, 0} }

// FromBytes decodes 32 little-endian bytes (the top bit is masked off, per
// the curve25519 u-coordinate convention) into a field element.
func FromBytes(b [32]byte) Elem {
	b[31] &= 0x7f
	var e Elem
	e[0] = load64(b[0:]) & mask51
	e[1] = (load64(b[6:]) >> 3) & mask51
	e[2] = (load64(b[12:]) >> 6) & mask51
	e[3] = (load64(b[19:]) >> 1) & mask51
	e[4] = (load64(b[24:]) >> 12) & mask51
	return e
}

func load64(b []byte) uint64 {
	var buf [8]byte
	copy(buf[:], b)
	return binary.LittleEndian.Uint64(buf[:])
}

// ToBytes encodes a canonically-reduced field element as 32 little-endian
// bytes.
func (e Elem) ToBytes() [32]byte {
	r := e.Reduce()
	var out [32]byte
	var t uint64
	var bitpos uint
	byteIdx := 0
	for i := 0; i < 5; i++ {
		t |= r[i] << bitpos
		bitpos += 51
		for bitpos >= 8 && byteIdx < 32 {
			out[byteIdx] = byte(t)
			t >>= 8
			bitpos -= 8
			byteIdx++
		}
	}
	if byteIdx < 32 {
		out[byteIdx] = byte(t)
	}
	return out
}

// Add computes a+b, then carry-propagates and folds the overflow by 19.
func Add(a, b Elem) (r Elem) {
	for i := range r {
		r[i] = a[i] + b[i]
	}
	return reduceAcc(widen(r))
}

// Sub computes a-b, adding a multiple of p first so every limb subtraction
// stays non-negative.
func Sub(a, b Elem) (r Elem) {
	// 4*p in limb form, precomputed so a-b+4p never borrows.
	bias := [5]uint64{
		0xFFFFFFFFFFFDA * 2,
		0xFFFFFFFFFFFFE * 2,
		0xFFFFFFFFFFFFE * 2,
		0xFFFFFFFFFFFFE * 2,
		0xFFFFFFFFFFFFE * 2,
	}
	for i := range r {
		r[i] = a[i] + bias[i] - b[i]
	}
	return reduceAcc(widen(r))
}

// Neg computes -a.
func Neg(a Elem) Elem { return Sub(Zero(), a) }

// Mul computes a*b mod p via schoolbook multiplication over the five limbs
// (with the customary 19x weighting on wraparound terms) followed by a
// carry-propagation fold (§4.2 "mul").
func Mul(a, b Elem) Elem {
	const r19 = 19

	// Limb products stay under 2^110, which needs more than 64 bits of
	// accumulator; acc carries each weighted bucket as a software 128-bit
	// (hi:lo) sum.
	var acc [5]wide.U128
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			k := i + j
			weight := uint64(1)
			ai, bj := a[i], b[j]
			if k >= 5 {
				k -= 5
				weight = r19
			}
			acc[k] = acc[k].Add(wide.Mul64(ai, bj*weight))
		}
	}

	return reduceAcc(acc)
}

// reduceAcc folds the five 2^51-weighted accumulator buckets down to a
// loosely-reduced Elem by repeated carry propagation and a final 19x fold of
// the top limb (the "second fold" of §4.2).
func reduceAcc(acc [5]wide.U128) Elem {
	var limb [5]uint64
	var carryHi wide.U128
	for i := 0; i < 5; i++ {
		total := acc[i].Add(carryHi)
		limb[i] = total.Lo & mask51
		carryHi = wide.U128{Hi: 0, Lo: total.Lo>>51 | total.Hi<<13}
	}
	// Fold any residual carry (weighted 2^255 ≡ 19) back into limb[0], twice.
	limb[0] += carryHi.Lo * 19
	for i := 0; i < 2; i++ {
		c := limb[0] >> 51
		limb[0] &= mask51
		limb[1] += c
		c = limb[1] >> 51
		limb[1] &= mask51
		limb[2] += c
		c = limb[2] >> 51
		limb[2] &= mask51
		limb[3] += c
		c = limb[3] >> 51
		limb[3] &= mask51
		limb[4] += c
		c = limb[4] >> 51
		limb[4] &= mask51
		limb[0] += c * 19
	}
	return Elem(limb)
}

// Square computes a*a (an alias of Mul for clarity at call sites).
func Square(a Elem) Elem { return Mul(a, a) }

// Reduce returns the canonical representative in [0, p).
func (e Elem) Reduce() Elem {
	r := e
	// One more weak-fold pass, then subtract p if still >= p.
	r = reduceAcc(widen(r))
	p := Elem{
		0x7FFFFFFFFFFED,
		0x7FFFFFFFFFFFF,
		0x7FFFFFFFFFFFF,
		0x7FFFFFFFFFFFF,
		0x7FFFFFFFFFFFF,
	}
	// constant-time conditional subtract: compute r-p; if it doesn't
	// borrow, keep it.
	var borrow uint64
	var diff [5]uint64
	for i := 0; i < 5; i++ {
		d := r[i] - p[i] - borrow
		diff[i] = d & mask51
		borrow = (d >> 63) & 1
	}
	mask := -(borrow ^ 1) // all-ones if borrow==0 (r>=p), else 0
	for i := range r {
		r[i] = (diff[i] & mask) | (r[i] &^ mask)
	}
	return r
}

func widen(e Elem) [5]wide.U128 {
	var acc [5]wide.U128
	for i := 0; i < 5; i++ {
		acc[i] = wide.U128{Lo: e[i]}
	}
	return acc
}

// Invert computes a^(p-2) mod p via a fixed addition chain over the
// exponent 2^255-21, as specified in §4.2. Must only be called on nonzero
// input.
func Invert(a Elem) Elem {
	// Standard curve25519 addition chain (as in RFC 7748 / ref10).
	z2 := Square(a)
	z8 := Square(Square(z2))
	z9 := Mul(z8, a)
	z11 := Mul(z9, z2)
	z22 := Square(z11)
	z_5_0 := Mul(z22, z9)

	z_10_0 := z_5_0
	for i := 0; i < 5; i++ {
		z_10_0 = Square(z_10_0)
	}
	z_10_0 = Mul(z_10_0, z_5_0)

	z_20_0 := z_10_0
	for i := 0; i < 10; i++ {
		z_20_0 = Square(z_20_0)
	}
	z_20_0 = Mul(z_20_0, z_10_0)

	z_40_0 := z_20_0
	for i := 0; i < 20; i++ {
		z_40_0 = Square(z_40_0)
	}
	z_40_0 = Mul(z_40_0, z_20_0)

	z_50_0 := z_40_0
	for i := 0; i < 10; i++ {
		z_50_0 = Square(z_50_0)
	}
	z_50_0 = Mul(z_50_0, z_10_0)

	z_100_0 := z_50_0
	for i := 0; i < 50; i++ {
		z_100_0 = Square(z_100_0)
	}
	z_100_0 = Mul(z_100_0, z_50_0)

	z_200_0 := z_100_0
	for i := 0; i < 100; i++ {
		z_200_0 = Square(z_200_0)
	}
	z_200_0 = Mul(z_200_0, z_100_0)

	z_250_0 := z_200_0
	for i := 0; i < 50; i++ {
		z_250_0 = Square(z_250_0)
	}
	z_250_0 = Mul(z_250_0, z_50_0)

	out := z_250_0
	for i := 0; i < 5; i++ {
		out = Square(out)
	}
	return Mul(out, z11)
}

// Pow computes a^exp mod p by square-and-multiply, used by callers needing
// an exponent other than the fixed p-2 addition chain (e.g. Ed25519's
// (p+3)/8 square-root candidate in §4.4). Not constant-time on exp's bit
// pattern; exp here is always a public curve constant, never a secret.
func Pow(a Elem, exp *big.Int) Elem {
	result := One()
	base := a
	for i := 0; i < exp.BitLen(); i++ {
		if exp.Bit(i) == 1 {
			result = Mul(result, base)
		}
		base = Square(base)
	}
	return result
}

// CSwap conditionally swaps a and b in constant time when swap == 1.
func CSwap(swap uint64, a, b *Elem) {
	mask := -swap
	for i := range a {
		t := mask & (a[i] ^ b[i])
		a[i] ^= t
		b[i] ^= t
	}
}

// Equal reports whether a and b are the same field element (after
// reduction); used only in tests and non-secret-path checks.
func Equal(a, b Elem) bool {
	ra, rb := a.Reduce(), b.Reduce()
	return ra == rb
}
