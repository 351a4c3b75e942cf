package diag_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/lattigo-core/internal/diag"
)

func TestDecimalDigits(t *testing.T) {
	// 2^10 = 1024, a 4-digit number.
	got := diag.DecimalDigits(big.NewInt(2), big.NewInt(10))
	require.Equal(t, "~4 decimal digits", got)
}

func TestDecimalDigitsZeroBase(t *testing.T) {
	require.Equal(t, "0 (a == 0)", diag.DecimalDigits(big.NewInt(0), big.NewInt(5)))
}

func TestFingerprintDeterministicAndSensitive(t *testing.T) {
	a := diag.Fingerprint([]byte("hello"))
	b := diag.Fingerprint([]byte("hello"))
	c := diag.Fingerprint([]byte("hellp"))
	require.Equal(t, a, b)
	require.NotEqual(t, a, c)
	require.Len(t, a, 16) // 8 bytes, hex-encoded
}
