// Package p384 implements the NIST P-384 base-field arithmetic: GF(p) for
// the generalized-Mersenne prime p = 2^384 - 2^128 - 2^96 + 2^32 - 1 (FIPS
// 186-4 D.2.4), represented as twelve 32-bit limbs (§4.2). See field/p256
// for the shared schoolbook-then-Solinas-fold shape; only the term list and
// limb count differ.
package p384

import (
	"math/big"

	"github.com/tuneinsight/lattigo-core/field"
	"github.com/tuneinsight/lattigo-core/field/internal/limb"
)

const nlimbs = 12

// Elem is a field element: twelve little-endian 32-bit limbs. Add, Sub and
// Mul return the canonical representative in [0, p).
type Elem [nlimbs]uint32

var primeBig = mustHex("fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffe" +
	"ffffffff0000000000000000ffffffff")
var pMinus2 = new(big.Int).Sub(primeBig, big.NewInt(2))
var pWords = toLimbs(primeBig)

const foldRounds = 8

var foldTerms = []limb.Term{
	{WordShift: 4, Sign: 1},
	{WordShift: 3, Sign: 1},
	{WordShift: 1, Sign: -1},
	{WordShift: 0, Sign: 1},
}

func mustHex(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("p384: bad constant")
	}
	return v
}

func toLimbs(v *big.Int) []uint32 {
	buf := v.FillBytes(make([]byte, nlimbs*4))
	out := make([]uint32, nlimbs)
	for i := 0; i < nlimbs; i++ {
		b := buf[len(buf)-4*(i+1) : len(buf)-4*i]
		out[i] = uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
	}
	return out
}

// Zero returns the additive identity.
func Zero() Elem { return Elem{} }

// One returns the multiplicative identity.
func One() Elem { return Elem{1} }

// FromBig reduces v mod p into a canonical Elem.
func FromBig(v *big.Int) Elem {
	r := new(big.Int).Mod(v, primeBig)
	var e Elem
	copy(e[:], toLimbs(r))
	return e
}

// ToBig returns the element's canonical value as a big.Int.
func (e Elem) ToBig() *big.Int { return new(big.Int).SetBytes(e.Bytes()) }

// FromBytes decodes 48 big-endian bytes into a field element.
func FromBytes(b []byte) (Elem, error) {
	if len(b) != nlimbs*4 {
		return Elem{}, errLen(len(b))
	}
	var e Elem
	for i := 0; i < nlimbs; i++ {
		w := b[len(b)-4*(i+1) : len(b)-4*i]
		e[i] = uint32(w[0])<<24 | uint32(w[1])<<16 | uint32(w[2])<<8 | uint32(w[3])
	}
	return e.reduce(), nil
}

func errLen(n int) error { return &lenError{n} }

type lenError struct{ n int }

func (e *lenError) Error() string { return "p384: encoded field element must be 48 bytes" }

// Bytes encodes the canonically-reduced element as 48 big-endian bytes.
func (e Elem) Bytes() []byte {
	r := e.reduce()
	out := make([]byte, nlimbs*4)
	for i := 0; i < nlimbs; i++ {
		w := r[i]
		out[len(out)-4*i-1] = byte(w)
		out[len(out)-4*i-2] = byte(w >> 8)
		out[len(out)-4*i-3] = byte(w >> 16)
		out[len(out)-4*i-4] = byte(w >> 24)
	}
	return out
}

func (e Elem) reduce() Elem {
	out := limb.CondSub(e[:], pWords)
	var r Elem
	copy(r[:], out)
	return r
}

func addRaw(a, b Elem) Elem {
	sum, carry := limb.Add(a[:], b[:])
	diff, borrow := limb.Sub(sum, pWords)
	// Subtract p when the sum carried out of the top limb or is at least p.
	mask := (carry | (borrow ^ 1)) * 0xFFFFFFFF
	var r Elem
	copy(r[:], limb.Select(mask, diff, sum))
	return r
}

func subRaw(a, b Elem) Elem {
	diff, borrow := limb.Sub(a[:], b[:])
	added, _ := limb.Add(diff, pWords)
	mask := borrow * 0xFFFFFFFF
	out := limb.Select(mask, added, diff)
	var r Elem
	copy(r[:], out)
	return r
}

func mulRaw(a, b Elem) Elem {
	full := limb.MulFull(a[:], b[:])
	reduced := limb.Fold(full, nlimbs, foldTerms, foldRounds)
	var r Elem
	copy(r[:], limb.CondSub(reduced, pWords))
	return r
}

// Add computes a+b mod p.
func (e Elem) Add(bi field.Elem) field.Elem { return addRaw(e, bi.(Elem)) }

// Sub computes a-b mod p.
func (e Elem) Sub(bi field.Elem) field.Elem { return subRaw(e, bi.(Elem)) }

// Mul computes a*b mod p via schoolbook multiplication and a Solinas fold.
func (e Elem) Mul(bi field.Elem) field.Elem { return mulRaw(e, bi.(Elem)) }

// Square computes a*a mod p.
func (e Elem) Square() field.Elem { return mulRaw(e, e) }

// Invert computes e^(p-2) mod p by square-and-multiply over the fixed,
// public exponent p-2 (see field/p256.Invert for why this is constant-time
// in the secret base). Must only be called on nonzero input.
func (e Elem) Invert() field.Elem {
	result := One()
	base := e
	for i := 0; i < pMinus2.BitLen(); i++ {
		if pMinus2.Bit(i) == 1 {
			result = mulRaw(result, base)
		}
		base = mulRaw(base, base)
	}
	return result
}

// Select returns e when bit == 1 and other when bit == 0, branch-free.
func (e Elem) Select(bit uint64, bi field.Elem) field.Elem {
	other := bi.(Elem)
	mask := uint32(bit) * 0xFFFFFFFF
	out := limb.Select(mask, e[:], other[:])
	var r Elem
	copy(r[:], out)
	return r
}

// IsZero reports whether e's canonical value is zero.
func (e Elem) IsZero() bool { return limb.IsZero(e.reduce().ToWords()) }

// ToWords exposes the element's raw little-endian limbs.
func (e Elem) ToWords() []uint32 { return append([]uint32(nil), e[:]...) }

// Equal reports whether a and b are the same field element (after
// reduction).
func (e Elem) Equal(bi field.Elem) bool {
	b := bi.(Elem)
	return limb.Cmp(e.reduce().ToWords(), b.reduce().ToWords()) == 0
}
