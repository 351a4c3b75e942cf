// Package rsa implements the RSA envelope on top of bignum's fixed-width
// arithmetic: a key-generation consistency check, the RSAEP/RSADP
// primitives, and CRT-accelerated private-key decryption (§1/§2 "RSA
// envelope (on big-num)"). Key generation itself — sourcing fresh random
// primes — is explicitly out of scope (spec.md §1 Non-goals); every key
// here is built from caller-supplied primes.
package rsa

import (
	"errors"

	"github.com/tuneinsight/lattigo-core/bignum"
)

// PublicKey is an RSA public key (n, e).
type PublicKey struct {
	N bignum.Int
	E bignum.Int
}

// PrivateKey is an RSA private key in CRT form: the two primes p, q and the
// precomputed CRT exponents/coefficient, plus the public modulus/exponent
// for RSAEP and consistency checks.
//
// p, q and the CRT values are stored as bignum.Int of the same Width as N,
// simply using fewer of their limbs; bignum only exposes three fixed
// widths (§4.1), so sub-moduli about half N's bit length reuse N's Width
// rather than requiring a fourth, narrower Width class.
type PrivateKey struct {
	Pub  PublicKey
	P    bignum.Int
	Q    bignum.Int
	Dp   bignum.Int // d mod (p-1)
	Dq   bignum.Int // d mod (q-1)
	Qinv bignum.Int // q^-1 mod p

	pCtx bignum.Context
	qCtx bignum.Context
}

// NewPrivateKey builds a CRT private key from caller-supplied primes and
// precomputes their Montgomery contexts for RSADP. It performs the §1
// "key generation check": n == p*q and e is invertible modulo both p-1 and
// q-1 (i.e. e*d ≡ 1 mod (p-1) and mod (q-1), consistent with the supplied
// dP/dQ).
func NewPrivateKey(n, e, p, q, dP, dQ, qInv bignum.Int) (*PrivateKey, error) {
	w := n.Width()
	prod := bignum.New(w)
	bignum.Mul(&prod, p, q)
	if bignum.Cmp(prod, n) != 0 {
		return nil, errors.New("rsa: p*q does not equal n")
	}

	if err := checkExponentConsistency(e, dP, p); err != nil {
		return nil, err
	}
	if err := checkExponentConsistency(e, dQ, q); err != nil {
		return nil, err
	}

	pCtx, err := bignum.RedcInit(p)
	if err != nil {
		return nil, err
	}
	qCtx, err := bignum.RedcInit(q)
	if err != nil {
		return nil, err
	}

	return &PrivateKey{
		Pub:  PublicKey{N: n, E: e},
		P:    p,
		Q:    q,
		Dp:   dP,
		Dq:   dQ,
		Qinv: qInv,
		pCtx: pCtx,
		qCtx: qCtx,
	}, nil
}

// checkExponentConsistency verifies e*d ≡ 1 (mod prime-1).
func checkExponentConsistency(e, d, prime bignum.Int) error {
	w := prime.Width()
	pMinus1 := bignum.New(w)
	bignum.Usub1(&pMinus1, prime, 1)

	ed := bignum.New(w)
	bignum.Mul(&ed, e, d)

	q := bignum.New(w)
	r := bignum.New(w)
	bignum.DivMod(&q, &r, ed, pMinus1)

	one := bignum.New(w)
	one.SetU32(1)
	if bignum.Cmp(r, one) != 0 {
		return errors.New("rsa: e*d is not congruent to 1 modulo p-1/q-1")
	}
	return nil
}

// Encrypt computes RSAEP: c = m^e mod n. e is the public exponent, so the
// non-constant-time bignum.ModPow is appropriate here (§4.1, §9).
func (pub PublicKey) Encrypt(m bignum.Int) bignum.Int {
	return bignum.ModPow(m, pub.E, pub.N)
}

// Decrypt computes RSADP via CRT: m1 = c^dP mod p, m2 = c^dQ mod q (both
// over secret exponents, via the constant-time-friendly Context.Pow), then
// recombines with Garner's formula: h = qInv*(m1-m2) mod p, m = m2 + h*q.
func (priv *PrivateKey) Decrypt(c bignum.Int) bignum.Int {
	w := priv.Pub.N.Width()

	m1 := priv.pCtx.Pow(c, priv.Dp)
	m2 := priv.qCtx.Pow(c, priv.Dq)

	diff := bignum.New(w)
	bignum.Sub(&diff, m1, m2)

	h := bignum.New(w)
	bignum.Mul(&h, diff, priv.Qinv)
	hq := bignum.New(w)
	r := bignum.New(w)
	// DivMod's Euclidean correction always leaves r in [0, p), covering the
	// case where diff (and so h) came out negative.
	bignum.DivMod(&hq, &r, h, priv.P)

	hTimesQ := bignum.New(w)
	bignum.Mul(&hTimesQ, r, priv.Q)
	m := bignum.New(w)
	bignum.Add(&m, m2, hTimesQ)

	final := bignum.New(w)
	finalQ := bignum.New(w)
	bignum.DivMod(&finalQ, &final, m, priv.Pub.N)
	return final
}
