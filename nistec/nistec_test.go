package nistec_test

import (
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/lattigo-core/nistec"
)

func hexBig(t *testing.T, s string) *big.Int {
	t.Helper()
	v, ok := new(big.Int).SetString(s, 16)
	require.True(t, ok)
	return v
}

// TestP256ECDSAVector checks spec.md S3 (FIPS 186-4 P-256 ECDSA example).
func TestP256ECDSAVector(t *testing.T) {
	c := nistec.P256()
	d := hexBig(t, "c9afa9d845ba75166b5c215767b1d6934e50c3db36e89b127b8a622b120f6721")
	digest, err := hex.DecodeString("a41a41a12a799548211c410c65d8133afde34e4c8e593b03617cf9a3de26ad82")
	require.NoError(t, err)
	k := hexBig(t, "7a1a7e52797fc8caaa435d2a4dace39158504bf204fbe19f14dbb427faee50ae")

	sig, err := c.Sign(d, digest, k)
	require.NoError(t, err)
	require.Equal(t, "2b42f576d07f4165ff65d1f3b1500f81e44c316f1f0b3ef57325b69aca46104f", hex.EncodeToString(sig.R.Bytes()))
	require.Equal(t, "39ddfd1290197edd248777ddcaca8f4d8cdc3e526c1cf608486e0512ac4d8119", hex.EncodeToString(sig.S.Bytes()))

	qx, qy, ok := c.ScalarBaseMult(d)
	require.True(t, ok)
	require.NoError(t, c.Verify(qx, qy, digest, sig))
}

func TestP256ECDSATamperDetection(t *testing.T) {
	c := nistec.P256()
	d, qx, qy, err := c.GenerateKey()
	require.NoError(t, err)
	digest := make([]byte, 32)
	digest[0] = 0x42

	sig, err := c.Sign(d, digest, nil)
	require.NoError(t, err)
	require.NoError(t, c.Verify(qx, qy, digest, sig))

	tampered := &nistec.Signature{R: new(big.Int).Add(sig.R, big.NewInt(1)), S: sig.S}
	require.Error(t, c.Verify(qx, qy, digest, tampered))
}

func TestECDHRoundTrip(t *testing.T) {
	for _, c := range []*nistec.Curve{nistec.P256(), nistec.P384(), nistec.P521()} {
		dA, qxA, qyA, err := c.GenerateKey()
		require.NoError(t, err)
		dB, qxB, qyB, err := c.GenerateKey()
		require.NoError(t, err)

		sharedA, err := c.ECDH(dA, qxB, qyB)
		require.NoError(t, err)
		sharedB, err := c.ECDH(dB, qxA, qyA)
		require.NoError(t, err)
		require.Equal(t, sharedA, sharedB)
	}
}

func TestIsOnCurveRejectsGarbage(t *testing.T) {
	c := nistec.P256()
	require.False(t, c.IsOnCurve(big.NewInt(1), big.NewInt(2)))
}
