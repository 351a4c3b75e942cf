// Package p448 implements the curve448 base-field arithmetic: GF(2^448 -
// 2^224 - 1), represented as eight 56-bit limbs. The reduction identity is
// the split-word form 2^448 ≡ 2^224 + 1 (§4.2): a double-width product is
// folded by adding its high half once at weight 2^224 and once at weight 1,
// with the fold performed twice to absorb the resulting carry.
package p448

import (
	"encoding/binary"
	"math/big"

	"github.com/tuneinsight/lattigo-core/field/internal/wide"
)

const mask56 = (uint64(1) << 56) - 1

// Elem is a field element as eight limbs, little-endian, radix 2^56.
type Elem [8]uint64

func Zero() Elem { return Elem{} }
func One() Elem  { return Elem{1} }

// FromBytes decodes 56 little-endian bytes into a field element.
func FromBytes(b [56]byte) Elem {
	var e Elem
	for i := 0; i < 8; i++ {
		e[i] = load56(b[i*7:])
	}
	return e
}

func load56(b []byte) uint64 {
	var buf [8]byte
	copy(buf[:7], b[:7])
	return binary.LittleEndian.Uint64(buf[:]) & mask56
}

// ToBytes encodes the canonical representative as 56 little-endian bytes.
func (e Elem) ToBytes() [56]byte {
	r := e.Reduce()
	var out [56]byte
	for i := 0; i < 8; i++ {
		v := r[i]
		for j := 0; j < 7; j++ {
			out[i*7+j] = byte(v)
			v >>= 8
		}
	}
	return out
}

// Add computes a+b with a single carry-propagation fold.
func Add(a, b Elem) (r Elem) {
	for i := range r {
		r[i] = a[i] + b[i]
	}
	return foldCarries(r)
}

// Sub computes a-b, biasing each limb with 2p first so no borrow occurs.
func Sub(a, b Elem) (r Elem) {
	// p = 2^448 - 2^224 - 1: every limb of p is 2^56-1 except limb 4, which
	// is 2^56-2 (the -2^224 term); using 2p as a bias keeps every
	// subtraction non-negative regardless of a/b's loose reduction state.
	bias := biasTwoP()
	for i := range r {
		r[i] = a[i] + bias[i] - b[i]
	}
	return foldCarries(r)
}

func biasTwoP() [8]uint64 {
	var p Elem
	for i := 0; i < 8; i++ {
		p[i] = mask56
	}
	p[4] -= 1 // subtract 2^224 from the 448-bit all-ones value 2^448-1
	var two [8]uint64
	for i := range two {
		two[i] = p[i] * 2
	}
	return two
}

func foldCarries(r Elem) Elem {
	var carry uint64
	for i := 0; i < 8; i++ {
		v := r[i] + carry
		r[i] = v & mask56
		carry = v >> 56
	}
	// 2^448 ≡ 2^224 + 1: fold the carry into limb 0 (weight 1) and limb 4
	// (weight 2^224, i.e. limb index 4 since 224/56 = 4), twice.
	for pass := 0; pass < 2 && carry != 0; pass++ {
		r[0] += carry
		r[4] += carry
		carry = 0
		for i := 0; i < 8; i++ {
			v := r[i] + carry
			r[i] = v & mask56
			carry = v >> 56
		}
	}
	return r
}

// Neg computes -a.
func Neg(a Elem) Elem { return Sub(Zero(), a) }

// Mul computes a*b mod p via schoolbook multiplication over eight limbs,
// folding the double-width product through the 2^224+1 identity.
func Mul(a, b Elem) Elem {
	var acc [15]wide.U128
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			acc[i+j] = acc[i+j].Add(wide.Mul64(a[i], b[j]))
		}
	}
	return reduceWide(acc)
}

func Square(a Elem) Elem { return Mul(a, a) }

// reduceWide folds a 15-limb (radix 2^56) double-width product down to a
// loosely-reduced 8-limb Elem using the 2^448 ≡ 2^224+1 identity: limb k>=8
// contributes to limb k-8 (weight 1) and limb k-4 (weight 2^224).
func reduceWide(acc [15]wide.U128) Elem {
	var limb [16]uint64
	var carry wide.U128
	for i := 0; i < 15; i++ {
		total := acc[i].Add(carry)
		limb[i] = total.Lo & mask56
		carry = wide.U128{Lo: total.Lo>>56 | total.Hi<<8}
	}
	limb[15] = carry.Lo

	var out Elem
	for k := 15; k >= 8; k-- {
		v := limb[k]
		limb[k] = 0
		limb[k-8] += v
		limb[k-4] += v
	}
	var c uint64
	for i := 0; i < 8; i++ {
		v := limb[i] + c
		out[i] = v & mask56
		c = v >> 56
	}
	if c != 0 {
		out = foldCarries(addCarry(out, c))
	}
	return out
}

func addCarry(e Elem, c uint64) Elem {
	e[0] += c
	e[4] += c
	return e
}

// Reduce returns the canonical representative in [0, p).
func (e Elem) Reduce() Elem {
	r := foldCarries(e)
	p := canonicalP()
	var borrow uint64
	var diff Elem
	for i := 0; i < 8; i++ {
		d := r[i] - p[i] - borrow
		diff[i] = d & mask56
		borrow = (d >> 63) & 1
	}
	mask := -(borrow ^ 1)
	for i := range r {
		r[i] = (diff[i] & mask) | (r[i] &^ mask)
	}
	return r
}

func canonicalP() Elem {
	var p Elem
	for i := range p {
		p[i] = mask56
	}
	p[4] -= 1
	return p
}

// Invert computes a^(p-2) mod p via a plain Fermat-ladder loop over the
// 448-bit exponent (§4.2: "a plain Fermat loop at the scalar length for the
// others"). Must only be called on nonzero input.
func Invert(a Elem) Elem {
	// p-2 in binary, most-significant bit first, computed once.
	exp := pMinus2BitsMSB
	result := One()
	base := a
	for _, bit := range exp {
		result = Square(result)
		if bit == 1 {
			result = Mul(result, base)
		}
	}
	return result
}

// pMinus2BitsMSB holds the bits of p-2, built once at package init.
var pMinus2BitsMSB = pMinus2Bits()

// Pow computes a^exp mod p by square-and-multiply over exp's bits, most
// significant first. Not constant-time on exp's bit pattern.
func Pow(a Elem, exp *big.Int) Elem {
	result := One()
	for i := exp.BitLen() - 1; i >= 0; i-- {
		result = Square(result)
		if exp.Bit(i) == 1 {
			result = Mul(result, a)
		}
	}
	return result
}

// pMinus2Bits returns the bits of p-2 = 2^448 - 2^224 - 3, MSB first. This
// constant is computed once via math/big rather than hand-derived, the same
// way the teacher precomputes Montgomery/Barrett parameters in
// ring/modular_reduction.go's BRedParams.
func pMinus2Bits() []byte {
	p := new(big.Int).Lsh(big.NewInt(1), 448)
	p.Sub(p, new(big.Int).Lsh(big.NewInt(1), 224))
	p.Sub(p, big.NewInt(1))
	p.Sub(p, big.NewInt(2))

	bits := make([]byte, 448)
	for i := 0; i < 448; i++ {
		bits[447-i] = byte(p.Bit(i))
	}
	return bits
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

// Equal reports whether a and b are the same field element after reduction.
func Equal(a, b Elem) bool {
	ra, rb := a.Reduce(), b.Reduce()
	return ra == rb
}
