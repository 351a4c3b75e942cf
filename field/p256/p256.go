// Package p256 implements the NIST P-256 base-field arithmetic: GF(p) for
// the generalized-Mersenne prime p = 2^256 - 2^224 + 2^192 + 2^96 - 1 (FIPS
// 186-4 D.2.3), represented as eight 32-bit limbs (§4.2). Mul/Square
// schoolbook the 16 cross-limb products into a 512-bit buffer, then fold it
// down using the Solinas identity 2^256 ≡ 2^224 - 2^192 - 2^96 + 1 (mod p),
// mirroring field/p25519's schoolbook-then-fold shape but over positional
// (not radix-51) limbs, since a Solinas fold works word-by-word rather than
// by a single small-prime multiplier.
package p256

import (
	"math/big"

	"github.com/tuneinsight/lattigo-core/field"
	"github.com/tuneinsight/lattigo-core/field/internal/limb"
)

const nlimbs = 8

// Elem is a field element: eight little-endian 32-bit limbs. Add, Sub and
// Mul return the canonical representative in [0, p); the unexported reduce
// used by FromBytes and Bytes is a single conditional subtract of p.
type Elem [nlimbs]uint32

var primeBig = mustHex("ffffffff00000001000000000000000000000000ffffffffffffffffffffffff")
var pMinus2 = new(big.Int).Sub(primeBig, big.NewInt(2))
var pWords = toLimbs(primeBig)

// foldRounds is a fixed round count for Fold, chosen generously above the
// worst-case convergence measured for this prime's term list so every call
// takes the same number of steps regardless of input.
const foldRounds = 14

var foldTerms = []limb.Term{
	{WordShift: 7, Sign: 1},
	{WordShift: 6, Sign: -1},
	{WordShift: 3, Sign: -1},
	{WordShift: 0, Sign: 1},
}

func mustHex(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("p256: bad constant")
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
func (e Elem) ToBig() *big.Int {
	return new(big.Int).SetBytes(e.Bytes())
}

// FromBytes decodes 32 big-endian bytes into a field element; the value is
// reduced mod p if it's not already canonical.
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

func errLen(n int) error {
	return &lenError{n}
}

type lenError struct{ n int }

func (e *lenError) Error() string { return "p256: encoded field element must be 32 bytes" }

// Bytes encodes the canonically-reduced element as 32 big-endian bytes.
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

// reduce brings e into [0, p) with a single constant-time conditional
// subtract (every Add/Sub/Mul result here already sits below 2p).
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
// public exponent p-2: since the exponent's bit pattern never depends on
// secret data, branching on its bits here doesn't leak anything about e,
// the standard justification for a Fermat inverse being constant-time in
// its base (§4.2, §4.5). Must only be called on nonzero input.
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

// ToWords exposes the element's raw little-endian limbs (used internally by
// IsZero; exported for tests that need to inspect limb layout directly).
func (e Elem) ToWords() []uint32 { return append([]uint32(nil), e[:]...) }

// Equal reports whether a and b are the same field element (after
// reduction).
func (e Elem) Equal(bi field.Elem) bool {
	b := bi.(Elem)
	return limb.Cmp(e.reduce().ToWords(), b.reduce().ToWords()) == 0
}
