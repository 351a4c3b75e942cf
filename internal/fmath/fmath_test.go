package fmath_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/lattigo-core/internal/fmath"
)

func TestFrexpLdexpRoundTrip(t *testing.T) {
	for _, f := range []float64{1, -1, 0.5, 123.456, 1e300, -1e-300} {
		frac, exp := fmath.Frexp(f)
		got := fmath.Ldexp(frac, exp)
		require.InEpsilon(t, f, got, 1e-12, "f=%v", f)
		require.True(t, math.Abs(frac) >= 0.5 && math.Abs(frac) < 1, "frac=%v out of range", frac)
	}
}

func TestFrexpSubnormal(t *testing.T) {
	f := 5e-310 // subnormal float64
	frac, exp := fmath.Frexp(f)
	got := fmath.Ldexp(frac, exp)
	require.InEpsilon(t, f, got, 1e-6)
}

func TestFrexpZero(t *testing.T) {
	frac, exp := fmath.Frexp(0)
	require.Equal(t, 0.0, frac)
	require.Equal(t, 0, exp)
}
