package rsa_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/lattigo-core/bignum"
	"github.com/tuneinsight/lattigo-core/rsa"
)

func num(t *testing.T, w bignum.Width, s string) bignum.Int {
	t.Helper()
	v, err := bignum.Str2Num(w, s, 0, 10)
	require.NoError(t, err)
	return v
}

// TestRSACRTRoundTrip exercises the textbook RSA example (n=61*53=3233,
// e=17, d=2753) through the CRT decryption path.
func TestRSACRTRoundTrip(t *testing.T) {
	w := bignum.W4352
	n := num(t, w, "3233")
	e := num(t, w, "17")
	p := num(t, w, "61")
	q := num(t, w, "53")
	dP := num(t, w, "53")
	dQ := num(t, w, "49")
	qInv := num(t, w, "38")

	priv, err := rsa.NewPrivateKey(n, e, p, q, dP, dQ, qInv)
	require.NoError(t, err)

	m := num(t, w, "65")
	c := priv.Pub.Encrypt(m)
	require.Equal(t, 0, bignum.Cmp(c, num(t, w, "2790")))

	back := priv.Decrypt(c)
	require.Equal(t, 0, bignum.Cmp(back, m))
}

func TestRSAKeyConsistencyRejected(t *testing.T) {
	w := bignum.W4352
	n := num(t, w, "3233")
	e := num(t, w, "17")
	p := num(t, w, "61")
	q := num(t, w, "53")
	badDp := num(t, w, "1") // wrong: e*1 != 1 mod 60
	dQ := num(t, w, "49")
	qInv := num(t, w, "38")

	_, err := rsa.NewPrivateKey(n, e, p, q, badDp, dQ, qInv)
	require.Error(t, err)
}

func TestRSANMismatchRejected(t *testing.T) {
	w := bignum.W4352
	wrongN := num(t, w, "3234")
	e := num(t, w, "17")
	p := num(t, w, "61")
	q := num(t, w, "53")
	dP := num(t, w, "53")
	dQ := num(t, w, "49")
	qInv := num(t, w, "38")

	_, err := rsa.NewPrivateKey(wrongN, e, p, q, dP, dQ, qInv)
	require.Error(t, err)
}
