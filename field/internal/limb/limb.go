// Package limb provides shared base-2^32 fixed-width multi-precision helpers
// for the NIST prime field packages (field/p256, field/p384, field/p521):
// schoolbook multiplication and a generalized Solinas fold, mirroring
// bignum/mul.go's ripple-carry/schoolbook idiom but sized to a single
// curve's prime rather than bignum's generic widths (§4.2).
package limb

// Term is one word-shifted, signed contribution of a Solinas reduction: the
// identity 2^(32*n) ≡ sum(Sign * 2^(32*WordShift)) (mod p).
type Term struct {
	WordShift int
	Sign      int64
}

// MulFull multiplies two equal-length little-endian limb slices (length n)
// and returns a slice of length 2n, exactly mirroring bignum's
// mulLimbsSchoolbook.
func MulFull(a, b []uint32) []uint32 {
	n := len(a)
	out := make([]uint64, 2*n)
	for i := 0; i < n; i++ {
		if a[i] == 0 {
			continue
		}
		var carry uint64
		for j := 0; j < n; j++ {
			p := uint64(a[i])*uint64(b[j]) + out[i+j] + carry
			out[i+j] = p & 0xFFFFFFFF
			carry = p >> 32
		}
		k := i + n
		for carry != 0 {
			s := out[k] + carry
			out[k] = s & 0xFFFFFFFF
			carry = s >> 32
			k++
		}
	}
	res := make([]uint32, 2*n)
	for i, v := range out {
		res[i] = uint32(v)
	}
	return res
}

// Add adds two equal-length limb slices, returning the sum and the carry
// out of the top limb.
func Add(a, b []uint32) ([]uint32, uint32) {
	n := len(a)
	out := make([]uint32, n)
	var carry uint64
	for i := 0; i < n; i++ {
		s := uint64(a[i]) + uint64(b[i]) + carry
		out[i] = uint32(s)
		carry = s >> 32
	}
	return out, uint32(carry)
}

// Sub subtracts b from a (equal length), returning the difference (wrapped
// mod 2^(32n)) and the borrow out of the top limb (1 if a<b).
func Sub(a, b []uint32) ([]uint32, uint32) {
	n := len(a)
	out := make([]uint32, n)
	var borrow uint64
	for i := 0; i < n; i++ {
		d := uint64(a[i]) - uint64(b[i]) - borrow
		out[i] = uint32(d)
		borrow = (d >> 63) & 1
	}
	return out, uint32(borrow)
}

// Cmp compares two equal-length limb slices as unsigned magnitudes.
func Cmp(a, b []uint32) int {
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// IsZero reports whether every limb is zero.
func IsZero(a []uint32) bool {
	for _, v := range a {
		if v != 0 {
			return false
		}
	}
	return true
}

// Select picks a when mask==^uint32(0), b when mask==0 (constant-time,
// branch-free), limb by limb.
func Select(mask uint32, a, b []uint32) []uint32 {
	out := make([]uint32, len(a))
	for i := range out {
		out[i] = (a[i] & mask) | (b[i] &^ mask)
	}
	return out
}

// CondSub conditionally subtracts p (both n words) from a in constant time,
// returning a-p when a>=p and a unchanged otherwise. a and p must be equal
// length; the result has that same length (the borrow out of the top limb
// decides the selection, no data-dependent branch).
func CondSub(a, p []uint32) []uint32 {
	diff, borrow := Sub(a, p)
	mask := (borrow ^ 1) * 0xFFFFFFFF // all-ones if no borrow (a>=p)
	return Select(mask, diff, a)
}

// Fold reduces a value given as 2n little-endian limbs using the Solinas
// identity 2^(32n) ≡ sum(term.Sign * 2^(32*term.WordShift)) (mod p),
// applying the word-shifted accumulate step a fixed number of rounds
// (independent of the input, so the routine takes the same number of steps
// for every input — the fixed round count, not early termination on a
// shrinking bit length, is what keeps this constant-time). After enough
// rounds the high n limbs of the 2n-limb working buffer are zero and the
// low n limbs hold a value within [0, 2p); one CondSub finishes reduction.
func Fold(full []uint32, n int, terms []Term, rounds int) []uint32 {
	width := 2 * n
	cur := make([]uint32, width)
	copy(cur, full)
	for r := 0; r < rounds; r++ {
		cur = foldOnce(cur, n, terms)
	}
	out := make([]uint32, n)
	copy(out, cur[:n])
	return out
}

func foldOnce(cur []uint32, n int, terms []Term) []uint32 {
	width := len(cur)
	acc := make([]int64, width)
	for i := 0; i < n; i++ {
		acc[i] += int64(cur[i])
	}
	for _, t := range terms {
		for i := 0; i < n; i++ {
			idx := i + t.WordShift
			if idx >= width {
				continue
			}
			acc[idx] += t.Sign * int64(cur[n+i])
		}
	}
	out := make([]uint32, width)
	var carry int64
	for i := 0; i < width; i++ {
		v := acc[i] + carry
		lo := v & 0xFFFFFFFF
		carry = (v - lo) >> 32
		out[i] = uint32(lo)
	}
	return out
}

// ShiftRightBits shifts a little-endian limb array right by n bits
// (non-word-aligned), used by field/p521 whose modulus 2^521-1 doesn't
// split on a 32-bit word boundary.
func ShiftRightBits(a []uint32, n int) []uint32 {
	wordShift := n / 32
	bitShift := uint(n % 32)
	out := make([]uint32, len(a))
	for i := range out {
		srcIdx := i + wordShift
		if srcIdx >= len(a) {
			continue
		}
		lo := a[srcIdx] >> bitShift
		var hi uint32
		if bitShift != 0 && srcIdx+1 < len(a) {
			hi = a[srcIdx+1] << (32 - bitShift)
		}
		out[i] = lo | hi
	}
	return out
}

// MaskLowBits zeroes every bit at position n and above in a little-endian
// limb array.
func MaskLowBits(a []uint32, n int) []uint32 {
	out := make([]uint32, len(a))
	copy(out, a)
	fullWords := n / 32
	rem := uint(n % 32)
	if rem == 0 {
		for i := fullWords; i < len(out); i++ {
			out[i] = 0
		}
		return out
	}
	out[fullWords] &= (uint32(1) << rem) - 1
	for i := fullWords + 1; i < len(out); i++ {
		out[i] = 0
	}
	return out
}
