package xecc_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/lattigo-core/xecc"
)

func hexTo32(t *testing.T, s string) [32]byte {
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	require.Len(t, b, 32)
	var out [32]byte
	copy(out[:], b)
	return out
}

// TestX25519KnownAnswerVector checks spec.md S1's Diffie-Hellman scalar
// multiplication against a known-answer vector (see testdata/vectors.yaml
// for the full table, loaded via yaml.v3 in vectors_test.go).
func TestX25519KnownAnswerVector(t *testing.T) {
	scalar := hexTo32(t, "c2939b91e21d1438490d038d9de3635c6c4c9917c0b7223a184d0d404ac4554c")
	point := hexTo32(t, "50a7f57ad5c400795a38991e76186968d448f3be6fecae683b485f17300efc0b")
	want := hexTo32(t, "c34a2484202838757bd0e5f15719d3b3c899e6da587ff60eb0421e7e417a9749")

	got, ok := xecc.X25519(scalar, point)
	require.True(t, ok)
	require.Equal(t, want, got)
}

func TestX25519SharedSecretAgreement(t *testing.T) {
	var a, b [32]byte
	a[0], a[1] = 0x11, 0x22
	b[0], b[1] = 0x33, 0x44

	pubA := xecc.X25519Base(a)
	pubB := xecc.X25519Base(b)

	secretAB, okAB := xecc.X25519(a, pubB)
	secretBA, okBA := xecc.X25519(b, pubA)
	require.True(t, okAB)
	require.True(t, okBA)
	require.Equal(t, secretAB, secretBA)
}
