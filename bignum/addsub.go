package bignum

// Uadd computes dst = a + b mod 2^W over the unsigned magnitudes, returning
// the carry out of the top limb.
func Uadd(dst *Int, a, b Int) (carry uint32) {
	mustSameWidth(*dst, a)
	mustSameWidth(a, b)
	var c uint64
	for i := range dst.limb {
		s := uint64(a.limb[i]) + uint64(b.limb[i]) + c
		dst.limb[i] = uint32(s)
		c = s >> 32
	}
	dst.sign = 0
	return uint32(c)
}

// Uadd1 adds a single-limb value v to a's magnitude, returning the carry.
func Uadd1(dst *Int, a Int, v uint32) (carry uint32) {
	mustSameWidth(*dst, a)
	c := uint64(v)
	for i := range dst.limb {
		s := uint64(a.limb[i]) + c
		dst.limb[i] = uint32(s)
		c = s >> 32
	}
	dst.sign = 0
	return uint32(c)
}

// Usub computes dst = a - b mod 2^W over the unsigned magnitudes, returning
// the borrow out of the top limb (1 iff a < b).
func Usub(dst *Int, a, b Int) (borrow uint32) {
	mustSameWidth(*dst, a)
	mustSameWidth(a, b)
	var br uint64
	for i := range dst.limb {
		d := uint64(a.limb[i]) - uint64(b.limb[i]) - br
		dst.limb[i] = uint32(d)
		br = (d >> 63) & 1
	}
	dst.sign = 0
	return uint32(br)
}

// Usub1 subtracts a single-limb value v from a's magnitude, returning the
// borrow.
func Usub1(dst *Int, a Int, v uint32) (borrow uint32) {
	mustSameWidth(*dst, a)
	br := uint64(v)
	for i := range dst.limb {
		d := uint64(a.limb[i]) - br
		dst.limb[i] = uint32(d)
		br = (d >> 63) & 1
	}
	dst.sign = 0
	return uint32(br)
}

// neg returns a copy of a with its sign flipped (never with the limbs
// two's-complemented — §4.1/§9).
func neg(a Int) Int {
	b := a.Clone()
	if !b.IsZero() {
		b.sign ^= 1
	}
	return b
}

// Add computes dst = a + b as signed values, switching on sign as in §4.1.
func Add(dst *Int, a, b Int) {
	mustSameWidth(*dst, a)
	mustSameWidth(a, b)
	switch {
	case a.sign == b.sign:
		Uadd(dst, a, b)
		dst.sign = a.sign
	case a.sign == 0: // b negative
		subSigned(dst, a, b)
	default: // a negative, b non-negative
		subSigned(dst, b, a)
	}
	dst.normalizeZero()
}

// Sub computes dst = a - b as signed values.
func Sub(dst *Int, a, b Int) {
	Add(dst, a, neg(b))
}

// subSigned computes p - |n| for non-negative p and n of opposite sign,
// producing the correctly signed magnitude difference.
func subSigned(dst *Int, p, n Int) {
	if Ucmp(p, n) >= 0 {
		Usub(dst, p, n)
		dst.sign = 0
	} else {
		Usub(dst, n, p)
		dst.sign = 1
	}
}
