package bignum

// Context is an immutable Montgomery reduction context over an odd modulus
// N: R = 2^k mod N where k = bits(N), N' = (-N^-1) mod R, and a word mask
// R-1 (§3 "Montgomery reduction context"). It is valid for the lifetime of
// any REDC operation it serves.
type Context struct {
	n    Int
	r    Int // 2^k mod N
	nInv Int // (-N^-1) mod R
	mask Int // R - 1
	k    int
}

// RedcInit builds a Montgomery context for modulus n. It fails iff n is
// even (gcd(n, 2^k) != 1), mirroring redc_init's contract in §4.1.
func RedcInit(n Int) (Context, error) {
	if n.limb[0]&1 == 0 {
		return Context{}, errEvenModulus
	}
	w := n.width
	k := n.Bits()

	r := New(w)
	one := New(w)
	one.SetU32(1)
	Lshift(&r, one, k)
	rModN := New(w)
	q := New(w)
	DivMod(&q, &rModN, r, n)

	// N' = (-N^-1) mod R : invert N modulo R = 2^k, then negate mod R.
	nInvPos, err := Inv(n, r)
	if err != nil {
		return Context{}, errEvenModulus
	}
	nInv := New(w)
	Sub(&nInv, r, nInvPos)
	if nInvPos.IsZero() {
		nInv = New(w)
	}

	mask := New(w)
	Usub1(&mask, r, 1)

	return Context{n: n, r: rModN, nInv: nInv, mask: mask, k: k}, nil
}

var errEvenModulus = modErr{}

type modErr struct{}

func (modErr) Error() string { return "bignum: modulus must be odd for Montgomery reduction" }

// Mod reduces a value a from the extended domain [0, N*R) back into [0, N)
// (redc_mod).
func (c Context) Mod(a Int) Int {
	w := a.width
	// m = (a mod R) * N' mod R
	aLow := New(w)
	And(&aLow, a, c.mask)
	m := New(w)
	Mul(&m, aLow, c.nInv)
	And(&m, m, c.mask)

	mn := New(w)
	Mul(&mn, m, c.n)
	t := New(w)
	Add(&t, a, mn)
	t2 := New(w)
	Rshift(&t2, t, c.k)

	if Ucmp(t2, c.n) >= 0 {
		Usub(&t2, t2, c.n)
	}
	return t2
}

// Mont converts a into Montgomery form: a*R mod N (redc_mont).
func (c Context) Mont(a Int) Int {
	w := a.width
	t := New(w)
	Mul(&t, a, c.r)
	q := New(w)
	r := New(w)
	DivMod(&q, &r, t, c.n)
	return r
}

// Pow computes a^e mod N in Montgomery form throughout, the constant-time-
// friendly exponentiation routine used for any secret exponent (redc_pow).
// Fails iff the context failed to initialize; since Context is always
// constructed via RedcInit, callers pass a zero-value Context here only by
// mistake, in which case Pow returns the zero Int.
func (c Context) Pow(a, e Int) Int {
	w := a.width
	if c.n.IsZero() {
		return New(w)
	}
	aMont := c.Mont(a)
	resultMont := c.Mont(oneOf(w))

	exp := e.Clone()
	exp.sign = 0
	for !exp.IsZero() {
		if exp.limb[0]&1 == 1 {
			resultMont = c.mulMont(resultMont, aMont)
		}
		aMont = c.mulMont(aMont, aMont)
		next := New(w)
		Rshift(&next, exp, 1)
		exp = next
	}
	return c.Mod(resultMont)
}

// mulMont multiplies two Montgomery-form values and reduces: (a*b)/R mod N.
func (c Context) mulMont(a, b Int) Int {
	w := a.width
	prod := New(w)
	Mul(&prod, a, b)
	// prod is up to 2*bits(N); REDC it directly against c.n using the same
	// m = (t mod R)*N' mod R, t' = (t + m*N)/R correction as Mod, without
	// assuming prod < N*R (prod here is bounded by N^2 < N*R since R >= N).
	return c.Mod(prod)
}

func oneOf(w Width) Int {
	o := New(w)
	o.SetU32(1)
	return o
}
