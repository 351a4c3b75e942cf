package bignum

// karatsubaThreshold is the limb count below which mulLimbs falls back to
// mulLimbsSchoolbook (an odd limb count falls back too); at or above it
// mulLimbs splits into halves and recurses with Karatsuba. The recursion
// depth depends only on the width's limb count (136 -> 68 -> 34 -> 17 limbs
// for W4352), not on how many bits the operands occupy, and no operand size
// sends the whole product to schoolbook.
const karatsubaThreshold = 8

// mulLimbsSchoolbook multiplies two equal-length limb slices (little-endian)
// and returns a slice of length 2*len(a).
func mulLimbsSchoolbook(a, b []uint32) []uint32 {
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

// addLimbsInto adds src into dst (both little-endian, dst at least as long
// as src plus offset), propagating carry; returns final carry.
func addLimbsInto(dst []uint32, off int, src []uint32) uint32 {
	var carry uint64
	for i, v := range src {
		s := uint64(dst[off+i]) + uint64(v) + carry
		dst[off+i] = uint32(s)
		carry = s >> 32
	}
	for i := off + len(src); carry != 0 && i < len(dst); i++ {
		s := uint64(dst[i]) + carry
		dst[i] = uint32(s)
		carry = s >> 32
	}
	return uint32(carry)
}

// subLimbsFrom subtracts src from dst in place starting at offset off,
// returning the borrow.
func subLimbsFrom(dst []uint32, off int, src []uint32) uint32 {
	var borrow uint64
	for i, v := range src {
		d := uint64(dst[off+i]) - uint64(v) - borrow
		dst[off+i] = uint32(d)
		borrow = (d >> 63) & 1
	}
	for i := off + len(src); borrow != 0 && i < len(dst); i++ {
		d := uint64(dst[i]) - borrow
		dst[i] = uint32(d)
		borrow = (d >> 63) & 1
	}
	return uint32(borrow)
}

func isZeroLimbs(a []uint32) bool {
	for _, v := range a {
		if v != 0 {
			return false
		}
	}
	return true
}

func cmpLimbs(a, b []uint32) int {
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

// mulLimbs multiplies two equal-length little-endian limb slices (length
// must be even for the Karatsuba split) and returns a slice of length
// 2*len(a).
func mulLimbs(a, b []uint32) []uint32 {
	n := len(a)
	if n < karatsubaThreshold || n%2 != 0 {
		return mulLimbsSchoolbook(a, b)
	}

	half := n / 2
	aLo, aHi := a[:half], a[half:]
	bLo, bHi := b[:half], b[half:]

	z0 := mulLimbs(aLo, bLo) // length n
	z2 := mulLimbs(aHi, bHi) // length n

	// z1 = (aLo+aHi)*(bLo+bHi) - z0 - z2
	sumA := make([]uint32, half+1)
	copy(sumA, aLo)
	sumA[half] = addLimbsInto(sumA, 0, aHi)
	sumB := make([]uint32, half+1)
	copy(sumB, bLo)
	sumB[half] = addLimbsInto(sumB, 0, bHi)

	var z1 []uint32
	if len(sumA) < karatsubaThreshold || len(sumA)%2 != 0 {
		z1 = mulLimbsSchoolbook(padEven(sumA), padEven(sumB))
	} else {
		z1 = mulLimbs(sumA, sumB)
	}
	z1 = z1[:2*len(sumA)]

	subLimbsFrom(z1, 0, z0)
	subLimbsFrom(z1, 0, z2)

	out := make([]uint32, 2*n)
	copy(out, z0)
	addLimbsInto(out, half, z1)
	addLimbsInto(out, n, z2)
	return out
}

func padEven(a []uint32) []uint32 {
	if len(a)%2 == 0 {
		return a
	}
	b := make([]uint32, len(a)+1)
	copy(b, a)
	return b
}

// Umul computes the full 2W-bit unsigned product a*b, split into the high
// and low W-bit halves.
func Umul(a, b Int) (hi, lo Int) {
	mustSameWidth(a, b)
	full := mulLimbs(a.limb, b.limb)
	n := len(a.limb)
	lo = New(a.width)
	hi = New(a.width)
	copy(lo.limb, full[:n])
	copy(hi.limb, full[n:])
	return hi, lo
}

// Umul1 multiplies a's magnitude by a single limb v, returning the overflow
// limb and the low W-bit result.
func Umul1(a Int, v uint32) (overflow uint32, lo Int) {
	lo = New(a.width)
	var carry uint64
	for i := range a.limb {
		p := uint64(a.limb[i])*uint64(v) + carry
		lo.limb[i] = uint32(p)
		carry = p >> 32
	}
	return uint32(carry), lo
}

// Mul computes dst = a*b as a signed value, truncated to W bits (overflow is
// defined as modulo 2^W, per §4.1).
func Mul(dst *Int, a, b Int) {
	mustSameWidth(*dst, a)
	mustSameWidth(a, b)
	_, lo := Umul(a, b)
	lo.sign = a.sign ^ b.sign
	lo.normalizeZero()
	Move(dst, lo)
}
