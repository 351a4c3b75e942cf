package flate_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/lattigo-core/flate"
)

// TestDeflateInflateRoundTrip checks spec.md S5.
func TestDeflateInflateRoundTrip(t *testing.T) {
	input := []byte(strings.Repeat("The quick brown fox jumps over the lazy dog", 1000))
	compressed := flate.Compress(input, 9)
	require.Less(t, len(compressed), 2*1024)

	out, err := flate.Decompress(compressed)
	require.NoError(t, err)
	require.True(t, bytes.Equal(input, out))
}

func TestDeflateInflateRoundTripAllLevels(t *testing.T) {
	input := []byte("abcabcabcabc xyzxyzxyz aaaaaaaaaaaaaaaaaaaaaaaaaaaaaa hello world, hello world!")
	for level := 0; level <= 9; level++ {
		compressed := flate.Compress(input, level)
		out, err := flate.Decompress(compressed)
		require.NoError(t, err, "level %d", level)
		require.Equal(t, input, out, "level %d", level)
	}
}

func TestDeflateEmptyInput(t *testing.T) {
	compressed := flate.Compress(nil, 6)
	out, err := flate.Decompress(compressed)
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestInflateRejectsBadStoredLength(t *testing.T) {
	// BFINAL=1, BTYPE=00 (stored), byte-aligned, LEN=5 but NLEN isn't ~LEN.
	data := []byte{0x01, 0x05, 0x00, 0x00, 0x00, 'h', 'e', 'l', 'l', 'o'}
	_, err := flate.Decompress(data)
	require.Error(t, err)
}

// TestInflateHLITBoundary checks spec.md S6: HLIT=286 is legal, HLIT=287 is
// DYN_HEAD.
func TestInflateHLITBoundary(t *testing.T) {
	// Encode a minimal dynamic header by hand: BFINAL=1, BTYPE=10, then
	// HLIT/HDIST/HCLEN with every bit-length code length set to 0 so the
	// header is as small as possible; the HLIT value alone is under test.
	build := func(hlitField uint32) []byte {
		var w struct {
			out  []byte
			bits uint32
			n    uint
		}
		write := func(v uint32, n uint) {
			w.bits |= v << w.n
			w.n += n
			for w.n >= 8 {
				w.out = append(w.out, byte(w.bits))
				w.bits >>= 8
				w.n -= 8
			}
		}
		write(1, 1)        // BFINAL
		write(2, 2)         // BTYPE=10
		write(hlitField, 5) // HLIT
		write(0, 5)         // HDIST
		write(0, 4)         // HCLEN = 4 (minimum)
		for i := 0; i < 4; i++ {
			write(0, 3) // all-zero CL code lengths: an invalid/empty CL table,
		}
		if w.n > 0 {
			w.out = append(w.out, byte(w.bits))
		}
		return w.out
	}

	_, err := flate.Decompress(build(29)) // HLIT = 286: within range
	require.NotErrorIs(t, err, flate.ErrDynHeader)

	_, err = flate.Decompress(build(30)) // HLIT = 287: out of range
	require.ErrorIs(t, err, flate.ErrDynHeader)
}
