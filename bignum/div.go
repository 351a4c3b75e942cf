package bignum

// Udiv computes unsigned quotient q = a/b and remainder r = a%b using binary
// long division: align the divisor by (bits(a) - bits(b)), then repeatedly
// compare-and-subtract, shifting the divisor down one bit per step (§4.1).
// If b is zero, Udiv is a silent no-op (caller must check the divisor).
func Udiv(q, r *Int, a, b Int) {
	mustSameWidth(*q, a)
	mustSameWidth(*r, a)
	mustSameWidth(a, b)
	if b.IsZero() {
		return
	}

	rem := a.Clone()
	rem.sign = 0
	quot := New(a.width)

	ab, bb := a.Bits(), b.Bits()
	if ab < bb {
		Move(q, quot)
		Move(r, rem)
		return
	}
	shift := ab - bb
	divisor := New(a.width)
	Lshift(&divisor, Int{width: b.width, sign: 0, limb: append([]uint32(nil), b.limb...)}, shift)

	for i := shift; i >= 0; i-- {
		if Ucmp(rem, divisor) >= 0 {
			Usub(&rem, rem, divisor)
			setBit(&quot, i)
		}
		if i > 0 {
			Rshift(&divisor, divisor, 1)
		}
	}
	quot.sign = 0
	rem.sign = 0
	Move(q, quot)
	Move(r, rem)
}

func setBit(a *Int, bit int) {
	a.limb[bit/32] |= 1 << uint(bit%32)
}

// Udiv1 divides a's magnitude by a single limb v, returning quotient and
// remainder (remainder fits in a uint32). If v is 0 it returns a zero
// quotient and remainder 0.
func Udiv1(a Int, v uint32) (q Int, r uint32) {
	q = New(a.width)
	if v == 0 {
		return q, 0
	}
	var rem uint64
	for i := len(a.limb) - 1; i >= 0; i-- {
		cur := rem<<32 | uint64(a.limb[i])
		q.limb[i] = uint32(cur / uint64(v))
		rem = cur % uint64(v)
	}
	return q, uint32(rem)
}

// DivMod computes Euclidean quotient and remainder for signed a, b: the
// remainder is always in [0, |b|), correcting a negative remainder by adding
// |b| (§4.1).
func DivMod(q, r *Int, a, b Int) {
	mustSameWidth(*q, a)
	mustSameWidth(*r, a)
	mustSameWidth(a, b)
	if b.IsZero() {
		return
	}
	magA := a.Clone()
	magA.sign = 0
	magB := b.Clone()
	magB.sign = 0

	uq := New(a.width)
	ur := New(a.width)
	Udiv(&uq, &ur, magA, magB)

	// Euclidean correction: a negative dividend with a nonzero remainder
	// takes one more unit of quotient magnitude and the remainder becomes
	// |b|-r, so a = q*b + r with 0 <= r < |b| for either sign of b.
	if a.sign == 1 && !ur.IsZero() {
		Uadd1(&uq, uq, 1)
		Usub(&ur, magB, ur)
	}
	uq.sign = a.sign ^ b.sign
	uq.normalizeZero()
	ur.sign = 0
	Move(q, uq)
	Move(r, ur)
}

// DivMod1 is DivMod against a single-limb signed divisor magnitude v.
func DivMod1(q *Int, a Int, v uint32) (r uint32) {
	mustSameWidth(*q, a)
	mag := a.Clone()
	mag.sign = 0
	uq, ur := Udiv1(mag, v)
	if a.sign == 1 && ur != 0 {
		Uadd1(&uq, uq, 1)
		ur = v - ur
	}
	uq.sign = a.sign
	uq.normalizeZero()
	Move(q, uq)
	return ur
}

// Div computes dst = a/b, rem = a%b as signed values following the sign
// dispatch rules of §4.1 (delegates to DivMod).
func Div(dst, rem *Int, a, b Int) {
	DivMod(dst, rem, a, b)
}
