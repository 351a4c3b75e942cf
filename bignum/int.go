package bignum

import (
	"fmt"
)

// Int is a fixed-width signed integer: an unsigned magnitude stored as
// little-endian 32-bit limbs, paired with a sign flag. Zero is always
// represented with Sign == 0; negation flips Sign, it never two's-complements
// the limbs (spec.md §3 "Limbed integer").
type Int struct {
	width Width
	sign  uint8 // 0 (non-negative) or 1 (negative)
	limb  []uint32
}

// New allocates a zero-valued Int of the given width.
func New(w Width) Int {
	return Int{width: w, limb: make([]uint32, w.Limbs())}
}

// Width reports the Int's fixed bit width.
func (a Int) Width() Width { return a.width }

// Sign reports 0 for non-negative, 1 for negative. Zero is always sign 0.
func (a Int) Sign() uint8 { return a.sign }

// Move copies the value of src into dst in place (same width required).
func Move(dst *Int, src Int) {
	mustSameWidth(*dst, src)
	copy(dst.limb, src.limb)
	dst.sign = src.sign
}

// Swap exchanges the values of a and b in place.
func Swap(a, b *Int) {
	mustSameWidth(*a, *b)
	a.limb, b.limb = b.limb, a.limb
	a.sign, b.sign = b.sign, a.sign
}

// Clone returns an independent copy.
func (a Int) Clone() Int {
	c := New(a.width)
	copy(c.limb, a.limb)
	c.sign = a.sign
	return c
}

// SetU32 sets a to the unsigned value v, clearing the sign.
func (a *Int) SetU32(v uint32) {
	for i := range a.limb {
		a.limb[i] = 0
	}
	a.limb[0] = v
	a.sign = 0
}

// IsZero reports whether a's magnitude is zero.
func (a Int) IsZero() bool {
	for _, l := range a.limb {
		if l != 0 {
			return false
		}
	}
	return true
}

// normalizeZero enforces the invariant that zero always carries sign 0.
func (a *Int) normalizeZero() {
	if a.IsZero() {
		a.sign = 0
	}
}

// FromBytes loads a big-endian unsigned magnitude of at most Width.Bytes()
// into a new Int of width w. The sign is always 0 (non-negative).
func FromBytes(w Width, b []byte) (Int, error) {
	if len(b) > w.Bytes() {
		return Int{}, errTooLong(w, len(b))
	}
	a := New(w)
	// Big-endian input, little-endian limb storage.
	for i, bi := 0, len(b)-1; bi >= 0; i, bi = i+1, bi-1 {
		a.limb[i/4] |= uint32(b[bi]) << uint((i%4)*8)
	}
	return a, nil
}

// ToBytes renders a's unsigned magnitude into a big-endian buffer of exactly
// Width.Bytes() bytes (the sign is not encoded).
func (a Int) ToBytes() []byte {
	out := make([]byte, a.width.Bytes())
	n := len(out)
	for i := 0; i < n; i++ {
		limb := a.limb[i/4]
		out[n-1-i] = byte(limb >> uint((i%4)*8))
	}
	return out
}

// Bits returns the bit length of a's magnitude (0 for zero).
func (a Int) Bits() int {
	for i := len(a.limb) - 1; i >= 0; i-- {
		if a.limb[i] != 0 {
			return i*32 + bitLen32(a.limb[i])
		}
	}
	return 0
}

func bitLen32(v uint32) int {
	n := 0
	for v != 0 {
		n++
		v >>= 1
	}
	return n
}

func mustSameWidth(a, b Int) {
	if a.width != b.width {
		panic("bignum: operand width mismatch")
	}
}

func errTooLong(w Width, n int) error {
	return fmt.Errorf("bignum: input of %d bytes exceeds width %d", n, int(w))
}
