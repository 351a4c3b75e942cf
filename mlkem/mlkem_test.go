package mlkem

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func seed(n int, fill byte) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = fill + byte(i)
	}
	return b
}

func TestNTTRoundTrip(t *testing.T) {
	var f Poly
	for i := range f {
		f[i] = int16((i*7 + 3) % Q)
	}
	orig := f
	NTT(&f)
	InvNTT(&f)
	f.Normalize()
	want := orig
	want.Normalize()
	require.Equal(t, want, f)
}

func TestBaseMulMatchesSchoolbook(t *testing.T) {
	var f, g Poly
	for i := range f {
		f[i] = int16((2*i + 1) % Q)
		g[i] = int16((3*i + 5) % Q)
	}
	fh, gh := f, g
	NTT(&fh)
	NTT(&gh)
	hh := BaseMul(&fh, &gh)
	InvNTT(hh)
	hh.Normalize()

	want := schoolbookMul(&f, &g)
	want.Normalize()
	require.Equal(t, *want, *hh)
}

// schoolbookMul computes f*g mod (X^256+1) directly, for cross-checking
// BaseMul's NTT-domain pointwise product.
func schoolbookMul(f, g *Poly) *Poly {
	var acc [2 * N]int32
	for i, fi := range f {
		for j, gj := range g {
			acc[i+j] += int32(fi) * int32(gj)
		}
	}
	var out Poly
	for i := 0; i < N; i++ {
		v := mods(acc[i] - acc[i+N])
		out[i] = v
	}
	return &out
}

func TestCompressDecompressRoundTrip(t *testing.T) {
	for _, d := range []int{1, 4, 5, 10, 11} {
		for y := uint16(0); y < uint16(1)<<d; y++ {
			x := Decompress(y, d)
			got := Compress(uint16(normalizeCoeff(x)), d)
			require.Equal(t, y, got, "d=%d y=%d", d, y)
		}
	}
}

func TestByteEncodeDecodeRoundTrip(t *testing.T) {
	var p Poly
	for i := range p {
		p[i] = int16(i % Q)
	}
	enc := ByteEncode(&p, 12)
	dec := ByteDecode(enc, 12)
	require.Equal(t, p, *dec)
}

func TestMessageEncodeDecodeRoundTrip(t *testing.T) {
	m := seed(32, 0x11)
	p := EncodeMessage(m)
	back := DecodeMessage(p)
	require.Equal(t, m, back)
}

func TestKEMRoundTrip(t *testing.T) {
	for _, p := range []ParamSet{ML512(), ML768(), ML1024()} {
		d := seed(32, 0x01)
		z := seed(32, 0x02)
		ek, dk, err := deriveKeyPairDeterministic(p, d, z)
		require.NoError(t, err)

		m := seed(32, 0x03)
		ct, ss1, err := encapsulateDeterministic(ek, m)
		require.NoError(t, err)
		require.Len(t, ct, p.CiphertextBytes())

		ss2, err := Decapsulate(dk, ct)
		require.NoError(t, err)
		require.Equal(t, ss1, ss2, p.Name)
	}
}

// TestKEMImplicitReject checks that a tampered ciphertext decapsulates to
// J(z||ct) rather than erroring or recovering the original shared secret
// (FIPS 203's defense against chosen-ciphertext attacks).
func TestKEMImplicitReject(t *testing.T) {
	p := ML768()
	d := seed(32, 0x04)
	z := seed(32, 0x05)
	ek, dk, err := deriveKeyPairDeterministic(p, d, z)
	require.NoError(t, err)

	m := seed(32, 0x06)
	ct, ss1, err := encapsulateDeterministic(ek, m)
	require.NoError(t, err)

	tampered := bytes.Clone(ct)
	tampered[0] ^= 0xff

	want := J(z, tampered)
	got, err := Decapsulate(dk, tampered)
	require.NoError(t, err)
	require.Equal(t, want, got)
	require.NotEqual(t, ss1, got)
}
