package bignum_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/lattigo-core/bignum"
)

func TestByteRoundTrip(t *testing.T) {
	w := bignum.W4352
	buf := make([]byte, w.Bytes())
	buf[len(buf)-1] = 0x7a
	buf[len(buf)-2] = 0x01
	a, err := bignum.FromBytes(w, buf)
	require.NoError(t, err)
	require.Equal(t, buf, a.ToBytes())
}

func TestAddSubRoundTrip(t *testing.T) {
	w := bignum.W4352
	a, err := bignum.Str2Num(w, "123456789012345678901234567890", 0, 10)
	require.NoError(t, err)
	b, err := bignum.Str2Num(w, "98765432109876543210", 0, 10)
	require.NoError(t, err)

	sum := bignum.New(w)
	bignum.Add(&sum, a, b)

	back := bignum.New(w)
	bignum.Sub(&back, sum, b)
	require.Equal(t, 0, bignum.Cmp(back, a))
}

func TestMulCommutative(t *testing.T) {
	w := bignum.W4352
	a, _ := bignum.Str2Num(w, "123456789", 0, 10)
	b, _ := bignum.Str2Num(w, "987654321", 0, 10)

	ab := bignum.New(w)
	bignum.Mul(&ab, a, b)
	ba := bignum.New(w)
	bignum.Mul(&ba, b, a)
	require.Equal(t, 0, bignum.Cmp(ab, ba))
}

func TestDivModEuclidean(t *testing.T) {
	w := bignum.W4352
	a, _ := bignum.Str2Num(w, "1000000007", 0, 10)
	b, _ := bignum.Str2Num(w, "97", 0, 10)

	q := bignum.New(w)
	r := bignum.New(w)
	bignum.DivMod(&q, &r, a, b)

	prod := bignum.New(w)
	bignum.Mul(&prod, q, b)
	sum := bignum.New(w)
	bignum.Add(&sum, prod, r)
	require.Equal(t, 0, bignum.Cmp(sum, a))

	zero := bignum.New(w)
	require.True(t, bignum.Cmp(r, zero) >= 0)
	require.True(t, bignum.Ucmp(r, b) < 0)
}

func TestInverseModN(t *testing.T) {
	w := bignum.W4352
	a, _ := bignum.Str2Num(w, "17", 0, 10)
	m, _ := bignum.Str2Num(w, "3120", 0, 10)

	inv, err := bignum.Inv(a, m)
	require.NoError(t, err)

	prod := bignum.New(w)
	bignum.Mul(&prod, a, inv)
	q := bignum.New(w)
	r := bignum.New(w)
	bignum.DivMod(&q, &r, prod, m)

	one := bignum.New(w)
	one.SetU32(1)
	require.Equal(t, 0, bignum.Cmp(r, one))
}

func TestMontgomeryRoundTrip(t *testing.T) {
	w := bignum.W4352
	n, _ := bignum.Str2Num(w, "3233", 0, 10) // 61*53
	ctx, err := bignum.RedcInit(n)
	require.NoError(t, err)

	a, _ := bignum.Str2Num(w, "65", 0, 10)
	mont := ctx.Mont(a)
	back := ctx.Mod(mont)

	q := bignum.New(w)
	r := bignum.New(w)
	bignum.DivMod(&q, &r, a, n)
	require.Equal(t, 0, bignum.Cmp(back, r))
}

func TestModPowSmallRSA(t *testing.T) {
	w := bignum.W4352
	n, _ := bignum.Str2Num(w, "3233", 0, 10)
	e, _ := bignum.Str2Num(w, "17", 0, 10)
	m, _ := bignum.Str2Num(w, "65", 0, 10)

	c := bignum.ModPow(m, e, n)

	d, _ := bignum.Str2Num(w, "2753", 0, 10)
	back := bignum.ModPow(c, d, n)
	require.Equal(t, 0, bignum.Cmp(back, m))
}

// TestModPowGoldenBytes checks ModPow's big-endian encoding against a
// golden byte buffer. cmp.Diff gives a readable per-byte diff on mismatch,
// which require.Equal's byte-slice formatting does not.
func TestModPowGoldenBytes(t *testing.T) {
	w := bignum.W4352
	n, _ := bignum.Str2Num(w, "3233", 0, 10)
	e, _ := bignum.Str2Num(w, "17", 0, 10)
	m, _ := bignum.Str2Num(w, "65", 0, 10)

	c := bignum.ModPow(m, e, n)

	// 65^17 mod 3233 = 2790 = 0x0AE6.
	want := make([]byte, w.Bytes())
	want[len(want)-1] = 0xe6
	want[len(want)-2] = 0x0a

	if diff := cmp.Diff(want, c.ToBytes()); diff != "" {
		t.Fatalf("ModPow result mismatch (-want +got):\n%s", diff)
	}
}

func TestDivisionByZeroIsNoOp(t *testing.T) {
	w := bignum.W4352
	a, _ := bignum.Str2Num(w, "42", 0, 10)
	zero := bignum.New(w)
	q := bignum.New(w)
	q.SetU32(99)
	r := bignum.New(w)
	r.SetU32(99)
	bignum.DivMod(&q, &r, a, zero)

	sentinel := bignum.New(w)
	sentinel.SetU32(99)
	require.Equal(t, 0, bignum.Cmp(q, sentinel))
	require.Equal(t, 0, bignum.Cmp(r, sentinel))
}
