package bignum

// ModPow computes a^e mod m by square-and-multiply, reducing after every
// step. It is NOT constant-time and must only be used for non-secret
// exponents (e.g. RSA signature verification with a public exponent); any
// routine operating on a secret exponent must use Context.Pow instead
// (§4.1, §9).
func ModPow(a, e, m Int) Int {
	w := a.width
	result := New(w)
	result.SetU32(1)

	base := New(w)
	qq := New(w)
	DivMod(&qq, &base, a, m)

	exp := e.Clone()
	exp.sign = 0

	for !exp.IsZero() {
		if exp.limb[0]&1 == 1 {
			tmp := New(w)
			Mul(&tmp, result, base)
			rq := New(w)
			DivMod(&rq, &result, tmp, m)
		}
		sq := New(w)
		Mul(&sq, base, base)
		rq2 := New(w)
		DivMod(&rq2, &base, sq, m)

		half := New(w)
		Rshift(&half, exp, 1)
		exp = half
	}
	return result
}
