package p256_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/lattigo-core/field"
	"github.com/tuneinsight/lattigo-core/field/p256"
)

func TestAddSubRoundTrip(t *testing.T) {
	a := p256.FromBig(big.NewInt(123456789))
	b := p256.FromBig(big.NewInt(987654321))

	sum := a.Add(b)
	back := sum.Sub(b)
	require.True(t, back.Equal(a))
}

func TestMulByOneIsIdentity(t *testing.T) {
	a := p256.FromBig(big.NewInt(42))
	one := p256.One()
	require.True(t, a.Mul(one).Equal(a))
}

func TestMulWrapsModPrime(t *testing.T) {
	// p-1 squared, reduced, must equal 1 (Fermat: (-1)^2 = 1 mod p).
	pMinus1 := new(big.Int).Sub(primeForTest(), big.NewInt(1))
	a := p256.FromBig(pMinus1)
	sq := a.Mul(a)
	require.True(t, sq.Equal(p256.One()))
}

func TestInvertRoundTrip(t *testing.T) {
	a := p256.FromBig(big.NewInt(12345))
	inv := a.Invert()
	require.True(t, a.Mul(inv).Equal(p256.One()))
}

func TestSelectPicksCorrectOperand(t *testing.T) {
	a := p256.FromBig(big.NewInt(111))
	b := p256.FromBig(big.NewInt(222))
	require.True(t, a.Select(1, b).(p256.Elem).Equal(a))
	require.True(t, a.Select(0, b).(p256.Elem).Equal(b))
}

func TestBytesRoundTrip(t *testing.T) {
	a := p256.FromBig(big.NewInt(0xdeadbeef))
	back, err := p256.FromBytes(a.Bytes())
	require.NoError(t, err)
	require.True(t, back.Equal(a))
}

var _ field.Elem = p256.Elem{}

func primeForTest() *big.Int {
	v, _ := new(big.Int).SetString("ffffffff00000001000000000000000000000000ffffffffffffffffffffffff", 16)
	return v
}
