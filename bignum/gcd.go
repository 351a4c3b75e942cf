package bignum

// GCD computes g = gcd(a, b) and signed Bezout coefficients x, y such that
// a*x + b*y = g, using a non-recursive extended Euclidean algorithm (§4.1).
func GCD(a, b Int) (g, x, y Int) {
	w := a.width
	oldR, r := a.Clone(), b.Clone()
	oldS, s := New(w), New(w)
	oldT, t := New(w), New(w)
	oldS.SetU32(1)
	t.SetU32(1)

	zero := New(w)
	for !r.IsZero() {
		q := New(w)
		rm := New(w)
		DivMod(&q, &rm, oldR, r)

		oldR, r = r, rm

		tmp := New(w)
		Mul(&tmp, q, s)
		ns := New(w)
		Sub(&ns, oldS, tmp)
		oldS, s = s, ns

		Mul(&tmp, q, t)
		nt := New(w)
		Sub(&nt, oldT, tmp)
		oldT, t = t, nt
	}
	_ = zero
	return oldR, oldS, oldT
}

// Inv computes the modular inverse of a modulo m: r such that a*r ≡ 1 (mod
// m). Returns a non-nil error iff gcd(a, m) ≠ 1.
func Inv(a, m Int) (Int, error) {
	g, x, _ := GCD(a, m)
	one := New(a.width)
	one.SetU32(1)
	if Ucmp(absVal(g), one) != 0 {
		return Int{}, errNotInvertible
	}
	// Reduce x into [0, m).
	q := New(a.width)
	r := New(a.width)
	DivMod(&q, &r, x, m)
	return r, nil
}

func absVal(a Int) Int {
	b := a.Clone()
	b.sign = 0
	return b
}

type notInvertibleErr struct{}

func (notInvertibleErr) Error() string { return "bignum: value is not invertible modulo m" }

var errNotInvertible = notInvertibleErr{}
