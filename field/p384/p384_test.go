package p384_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/lattigo-core/field"
	"github.com/tuneinsight/lattigo-core/field/p384"
)

func TestAddSubRoundTrip(t *testing.T) {
	a := p384.FromBig(big.NewInt(123456789))
	b := p384.FromBig(big.NewInt(987654321))

	sum := a.Add(b)
	back := sum.Sub(b)
	require.True(t, back.Equal(a))
}

func TestMulByOneIsIdentity(t *testing.T) {
	a := p384.FromBig(big.NewInt(42))
	one := p384.One()
	require.True(t, a.Mul(one).Equal(a))
}

func TestInvertRoundTrip(t *testing.T) {
	a := p384.FromBig(big.NewInt(12345))
	inv := a.Invert()
	require.True(t, a.Mul(inv).Equal(p384.One()))
}

func TestSelectPicksCorrectOperand(t *testing.T) {
	a := p384.FromBig(big.NewInt(111))
	b := p384.FromBig(big.NewInt(222))
	require.True(t, a.Select(1, b).(p384.Elem).Equal(a))
	require.True(t, a.Select(0, b).(p384.Elem).Equal(b))
}

func TestBytesRoundTrip(t *testing.T) {
	a := p384.FromBig(big.NewInt(0xdeadbeef))
	back, err := p384.FromBytes(a.Bytes())
	require.NoError(t, err)
	require.True(t, back.Equal(a))
}

var _ field.Elem = p384.Elem{}
