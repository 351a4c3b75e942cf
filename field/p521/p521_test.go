package p521_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/lattigo-core/field"
	"github.com/tuneinsight/lattigo-core/field/p521"
)

func TestAddSubRoundTrip(t *testing.T) {
	a := p521.FromBig(big.NewInt(123456789))
	b := p521.FromBig(big.NewInt(987654321))

	sum := a.Add(b)
	back := sum.Sub(b)
	require.True(t, back.Equal(a))
}

func TestMulByOneIsIdentity(t *testing.T) {
	a := p521.FromBig(big.NewInt(42))
	one := p521.One()
	require.True(t, a.Mul(one).Equal(a))
}

func TestMulWrapsModPrime(t *testing.T) {
	p := new(big.Int).Lsh(big.NewInt(1), 521)
	p.Sub(p, big.NewInt(1))
	pMinus1 := new(big.Int).Sub(p, big.NewInt(1))
	a := p521.FromBig(pMinus1)
	sq := a.Mul(a)
	require.True(t, sq.Equal(p521.One()))
}

func TestInvertRoundTrip(t *testing.T) {
	a := p521.FromBig(big.NewInt(12345))
	inv := a.Invert()
	require.True(t, a.Mul(inv).Equal(p521.One()))
}

func TestSelectPicksCorrectOperand(t *testing.T) {
	a := p521.FromBig(big.NewInt(111))
	b := p521.FromBig(big.NewInt(222))
	require.True(t, a.Select(1, b).(p521.Elem).Equal(a))
	require.True(t, a.Select(0, b).(p521.Elem).Equal(b))
}

func TestBytesRoundTrip(t *testing.T) {
	a := p521.FromBig(big.NewInt(0xdeadbeef))
	back, err := p521.FromBytes(a.Bytes())
	require.NoError(t, err)
	require.True(t, back.Equal(a))
}

func TestFromBytesRejectsOverlong(t *testing.T) {
	_, err := p521.FromBytes(make([]byte, 67))
	require.Error(t, err)
}

var _ field.Elem = p521.Elem{}
