package nistec

import (
	"crypto/hmac"
	"crypto/rand"
	"errors"
	"hash"
	"io"
	"math/big"
)

// Signature is an ECDSA (r, s) pair.
type Signature struct {
	R, S *big.Int
}

var (
	errInvalidSignature = errors.New("nistec: invalid signature")
	errZeroDigest       = errors.New("nistec: zero-length digest")
)

// hashToScalar truncates a digest to the curve's bit length and reduces it
// mod N, per FIPS 186-4 §6.4's "bits2int" step.
func (c *Curve) hashToScalar(digest []byte) *big.Int {
	z := new(big.Int).SetBytes(digest)
	excess := 8*len(digest) - c.bits
	if excess > 0 {
		z.Rsh(z, uint(excess))
	}
	return z.Mod(z, c.N)
}

// Sign produces an ECDSA signature over a pre-computed hash digest z using
// the supplied per-message nonce value deterministicK, or a fresh random
// nonce when it is nil (§4.5
// "ECDSA sign over hash-digest z").
func (c *Curve) Sign(priv *big.Int, digest []byte, deterministicK *big.Int) (*Signature, error) {
	if len(digest) == 0 {
		return nil, errZeroDigest
	}
	z := c.hashToScalar(digest)

	for {
		var k *big.Int
		if deterministicK != nil {
			k = new(big.Int).Mod(deterministicK, c.N)
			deterministicK = nil // only honor the caller's k on the first attempt
		} else {
			var err error
			k, err = randFieldElement(rand.Reader, c.N)
			if err != nil {
				return nil, err
			}
		}
		if k.Sign() == 0 {
			continue
		}
		x, _, ok := c.ScalarBaseMult(k)
		if !ok {
			continue
		}
		r := new(big.Int).Mod(x, c.N)
		if r.Sign() == 0 {
			continue
		}
		kInv := new(big.Int).ModInverse(k, c.N)
		if kInv == nil {
			continue
		}
		s := new(big.Int).Mul(priv, r)
		s.Add(s, z)
		s.Mul(s, kInv)
		s.Mod(s, c.N)
		if s.Sign() == 0 {
			continue
		}
		return &Signature{R: r, S: s}, nil
	}
}

// Verify checks an ECDSA signature over digest against public point (qx, qy)
// (§4.5 "ECDSA verify").
func (c *Curve) Verify(qx, qy *big.Int, digest []byte, sig *Signature) error {
	if len(digest) == 0 {
		return errZeroDigest
	}
	if sig.R.Sign() <= 0 || sig.R.Cmp(c.N) >= 0 || sig.S.Sign() <= 0 || sig.S.Cmp(c.N) >= 0 {
		return errInvalidSignature
	}
	if !c.IsOnCurve(qx, qy) {
		return errInvalidPoint
	}
	z := c.hashToScalar(digest)

	sInv := new(big.Int).ModInverse(sig.S, c.N)
	u1 := new(big.Int).Mul(z, sInv)
	u1.Mod(u1, c.N)
	u2 := new(big.Int).Mul(sig.R, sInv)
	u2.Mod(u2, c.N)

	x1, y1, ok1 := c.ScalarBaseMult(u1)
	x2, y2, ok2 := c.ScalarMult(u2, qx, qy)
	var x *big.Int
	switch {
	case !ok1 && !ok2:
		return errInvalidSignature
	case !ok1:
		x = x2
	case !ok2:
		x = x1
	default:
		p1 := jacobian{X: c.fromBig(x1), Y: c.fromBig(y1), Z: c.one}
		p2 := jacobian{X: c.fromBig(x2), Y: c.fromBig(y2), Z: c.one}
		sum := c.add(p1, p2)
		xe, _, ok := c.toAffine(sum)
		if !ok {
			return errInvalidSignature
		}
		x = xe.ToBig()
	}
	v := new(big.Int).Mod(x, c.N)
	if v.Cmp(sig.R) != 0 {
		return errInvalidSignature
	}
	return nil
}

// randFieldElement returns a uniform random integer in [1, n).
func randFieldElement(rnd io.Reader, n *big.Int) (*big.Int, error) {
	size := (n.BitLen() + 7) / 8
	for {
		buf := make([]byte, size)
		if _, err := rnd.Read(buf); err != nil {
			return nil, err
		}
		k := new(big.Int).SetBytes(buf)
		nMinus1 := new(big.Int).Sub(n, big.NewInt(1))
		if k.Cmp(nMinus1) >= 0 {
			continue
		}
		return k.Add(k, big.NewInt(1)), nil
	}
}

// DeterministicK derives the RFC 6979 deterministic nonce for priv and
// digest using the given hash constructor (sha256.New for P-256, sha512.New
// for P-384/P-521 when following the common convention of matching digest
// size to curve size).
func (c *Curve) DeterministicK(priv *big.Int, digest []byte, newHash func() hash.Hash) *big.Int {
	qlen := c.N.BitLen()
	holen := newHash().Size()
	z := c.hashToScalar(digest)

	v := make([]byte, holen)
	for i := range v {
		v[i] = 0x01
	}
	k := make([]byte, holen)

	privBytes := int2octets(priv, qlen)
	hBytes := bits2octets(z, c.N, qlen)

	k = hmacSum(newHash, k, concat(v, []byte{0x00}, privBytes, hBytes))
	v = hmacSum(newHash, k, v)
	k = hmacSum(newHash, k, concat(v, []byte{0x01}, privBytes, hBytes))
	v = hmacSum(newHash, k, v)

	for {
		var t []byte
		for len(t) < (qlen+7)/8 {
			v = hmacSum(newHash, k, v)
			t = append(t, v...)
		}
		candidate := bitsToInt(t, qlen)
		if candidate.Sign() > 0 && candidate.Cmp(c.N) < 0 {
			return candidate
		}
		k = hmacSum(newHash, k, concat(v, []byte{0x00}))
		v = hmacSum(newHash, k, v)
	}
}

func hmacSum(newHash func() hash.Hash, key, msg []byte) []byte {
	mac := hmac.New(newHash, key)
	mac.Write(msg)
	return mac.Sum(nil)
}

func concat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func int2octets(v *big.Int, qlen int) []byte {
	return v.FillBytes(make([]byte, (qlen+7)/8))
}

func bitsToInt(b []byte, qlen int) *big.Int {
	v := new(big.Int).SetBytes(b)
	excess := 8*len(b) - qlen
	if excess > 0 {
		v.Rsh(v, uint(excess))
	}
	return v
}

func bits2octets(z *big.Int, n *big.Int, qlen int) []byte {
	z2 := new(big.Int).Mod(z, n)
	return int2octets(z2, qlen)
}
