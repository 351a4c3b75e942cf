package eddsa

import (
	"errors"
	"math/big"

	"golang.org/x/crypto/sha3"

	"github.com/tuneinsight/lattigo-core/field/p448"
)

// SeedSize448, PublicKeySize448 and SignatureSize448 are the RFC 8032 byte
// sizes for Ed448.
const (
	SeedSize448      = 57
	PublicKeySize448 = 57
	SignatureSize448 = 114
)

// dom448 is the ASCII context prefix prepended to every Ed448 hash input
// (§4.4).
var dom448 = []byte("SigEd448\x00\x00")

// d448 is the Edwards curve constant for edwards448 (-39081 mod p).
var d448 = p448.Neg(elem448FromU64(39081))

var l448, _ = new(big.Int).SetString("3fffffffffffffffffffffffffffffffffffffffffffffffffffffff7cca23e9c44edb49aed63690216cc2728dc58f552378c292ab5844f3", 16)

func elem448FromU64(v uint64) p448.Elem { return p448.Elem{v} }

// point448 is an Edwards point in projective coordinates (X:Y:Z), a=1.
type point448 struct {
	X, Y, Z p448.Elem
}

func identity448() point448 {
	return point448{X: p448.Zero(), Y: p448.One(), Z: p448.One()}
}

var basePoint448Ed = func() point448 {
	// RFC 8032 base point coordinates, as big-endian decimal constants.
	bx := mustElem448("224580040295924300187604334099896036246789641632564134246125461686950415467406032909029192869357953282578032075146446173674602635247710")
	by := mustElem448("298819210078481492676017930443930673437544040154080242095928241372331506189835876003536878655418784733982303233503462500531545062832660")
	return point448{X: bx, Y: by, Z: p448.One()}
}()

func mustElem448(decimal string) p448.Elem {
	v, ok := new(big.Int).SetString(decimal, 10)
	if !ok {
		panic("eddsa: bad ed448 constant")
	}
	var b [56]byte
	v.FillBytes(b[:])
	for i, j := 0, 55; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return p448.FromBytes(b)
}

// addPoints448 adds two Edwards points (a=1 curve equation x^2+y^2 =
// 1+d*x^2*y^2*... in projective form).
func addPoints448(p, q point448) point448 {
	a := p448.Mul(p.Z, q.Z)
	b := p448.Square(a)
	c := p448.Mul(p.X, q.X)
	d := p448.Mul(p.Y, q.Y)
	e := p448.Mul(d448, p448.Mul(c, d))
	f := p448.Sub(b, e)
	g := p448.Add(b, e)
	x3 := p448.Mul(p448.Mul(a, f), p448.Sub(p448.Mul(p448.Add(p.X, p.Y), p448.Add(q.X, q.Y)), p448.Add(c, d)))
	y3 := p448.Mul(p448.Mul(a, g), p448.Sub(d, c))
	z3 := p448.Mul(f, g)
	return point448{X: x3, Y: y3, Z: z3}
}

func doublePoint448(p point448) point448 { return addPoints448(p, p) }

func scalarMult448(k *big.Int, p point448) point448 {
	result := identity448()
	base := p
	for i := 0; i < 448; i++ {
		bit := uint64(0)
		if i < k.BitLen() {
			bit = uint64(k.Bit(i))
		}
		added := addPoints448(result, base)
		result = selectPoint448(bit, added, result)
		base = doublePoint448(base)
	}
	return result
}

func selectPoint448(bit uint64, a, b point448) point448 {
	mask := -bit
	var out point448
	for i := range out.X {
		out.X[i] = (a.X[i] & mask) | (b.X[i] &^ mask)
		out.Y[i] = (a.Y[i] & mask) | (b.Y[i] &^ mask)
		out.Z[i] = (a.Z[i] & mask) | (b.Z[i] &^ mask)
	}
	return out
}

func compress448(p point448) [57]byte {
	zInv := p448.Invert(p.Z)
	x := p448.Mul(p.X, zInv)
	y := p448.Mul(p.Y, zInv)
	yBytes := y.ToBytes()
	xBytes := x.ToBytes()
	var out [57]byte
	copy(out[:56], yBytes[:])
	out[56] = (xBytes[0] & 1) << 7
	return out
}

func decompress448(enc [57]byte) (point448, error) {
	sign := enc[56] >> 7
	var yEnc [56]byte
	copy(yEnc[:], enc[:56])
	y := p448.FromBytes(yEnc)

	y2 := p448.Square(y)
	u := p448.Sub(y2, p448.One())
	v := p448.Add(p448.Mul(d448, y2), p448.Neg(p448.One()))
	vInv := p448.Invert(v)
	uv := p448.Mul(u, vInv)

	exp := sqrtExponent448()
	x := p448.Pow(uv, exp)
	x2 := p448.Square(x)
	if !p448.Equal(p448.Mul(v, x2), u) {
		return point448{}, errors.New("eddsa: invalid ed448 point encoding")
	}
	xBytes := x.ToBytes()
	if (xBytes[0] & 1) != sign {
		x = p448.Neg(x)
	}
	return point448{X: x, Y: y, Z: p448.One()}, nil
}

// sqrtExponent448 is (p+1)/4 for edwards448's square-root step (§4.4).
func sqrtExponent448() *big.Int {
	p := new(big.Int).Lsh(big.NewInt(1), 448)
	p.Sub(p, new(big.Int).Lsh(big.NewInt(1), 224))
	p.Sub(p, big.NewInt(1))
	exp := new(big.Int).Add(p, big.NewInt(1))
	exp.Rsh(exp, 2)
	return exp
}

func shake256(size int, parts ...[]byte) []byte {
	h := sha3.NewShake256()
	for _, p := range parts {
		h.Write(p)
	}
	out := make([]byte, size)
	h.Read(out)
	return out
}

func clampSeed448(h []byte) *big.Int {
	var s [56]byte
	copy(s[:], h[:56])
	s[0] &= 252
	s[55] = 0
	s[54] |= 128
	return leBytesToInt448(s[:])
}

func leBytesToInt448(b []byte) *big.Int {
	be := make([]byte, len(b))
	for i, v := range b {
		be[len(b)-1-i] = v
	}
	return new(big.Int).SetBytes(be)
}

func intToLeBytes448(v *big.Int, size int) []byte {
	be := v.FillBytes(make([]byte, size))
	out := make([]byte, size)
	for i, b := range be {
		out[size-1-i] = b
	}
	return out
}

// PublicKey448 derives the public key for a 57-byte seed, hashing with
// SHAKE-256 to 114 bytes (§4.4).
func PublicKey448(seed [SeedSize448]byte) [PublicKeySize448]byte {
	h := shake256(114, seed[:])
	s := clampSeed448(h[:56])
	pub := scalarMult448(s, basePoint448Ed)
	return compress448(pub)
}

// Sign448 produces an Ed448 signature over msg with an empty context
// string.
func Sign448(seed [SeedSize448]byte, msg []byte) [SignatureSize448]byte {
	h := shake256(114, seed[:])
	s := clampSeed448(h[:56])
	prefix := h[56:114]

	pubBytes := compress448(scalarMult448(s, basePoint448Ed))

	rDigest := shake256(114, dom448, prefix, msg)
	r := reduceModL448(leBytesToInt448(rDigest))

	rPoint := scalarMult448(r, basePoint448Ed)
	rBytes := compress448(rPoint)

	kDigest := shake256(114, dom448, rBytes[:], pubBytes[:], msg)
	k := reduceModL448(leBytesToInt448(kDigest))

	ka := new(big.Int).Mul(k, s)
	sSum := new(big.Int).Add(r, ka)
	sSum.Mod(sSum, l448)

	var out [SignatureSize448]byte
	copy(out[:57], rBytes[:])
	copy(out[57:], intToLeBytes448(sSum, 57))
	return out
}

// Verify448 checks an Ed448 signature over msg with an empty context
// string.
func Verify448(pub [PublicKeySize448]byte, sig [SignatureSize448]byte, msg []byte) error {
	A, err := decompress448(pub)
	if err != nil {
		return err
	}
	var rEnc [57]byte
	copy(rEnc[:], sig[:57])
	R, err := decompress448(rEnc)
	if err != nil {
		return err
	}
	s := leBytesToInt448(sig[57:114])
	if s.Cmp(l448) >= 0 {
		return errors.New("eddsa: s out of range")
	}

	kDigest := shake256(114, dom448, sig[:57], pub[:], msg)
	k := reduceModL448(leBytesToInt448(kDigest))

	sB := scalarMult448(s, basePoint448Ed)
	kA := scalarMult448(k, A)
	rPlusKA := addPoints448(R, kA)

	if compress448(sB) != compress448(rPlusKA) {
		return errors.New("eddsa: ed448 signature verification failed")
	}
	return nil
}

func reduceModL448(v *big.Int) *big.Int {
	return new(big.Int).Mod(v, l448)
}
