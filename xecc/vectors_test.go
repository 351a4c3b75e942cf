package xecc_test

import (
	"encoding/hex"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/lattigo-core/xecc"
	"gopkg.in/yaml.v3"
)

type dhVector struct {
	Scalar string `yaml:"scalar"`
	Point  string `yaml:"point"`
	Result string `yaml:"result"`
}

type dhVectorFile struct {
	X25519 []dhVector `yaml:"x25519"`
	X448   []dhVector `yaml:"x448"`
}

func loadVectors(t *testing.T) dhVectorFile {
	data, err := os.ReadFile("testdata/vectors.yaml")
	require.NoError(t, err)
	var v dhVectorFile
	require.NoError(t, yaml.Unmarshal(data, &v))
	return v
}

func decodeFixed(t *testing.T, s string, n int) []byte {
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	require.Len(t, b, n)
	return b
}

// TestX25519KnownAnswerVectors checks the YAML-loaded table against an
// independent reference implementation's recorded outputs.
func TestX25519KnownAnswerVectors(t *testing.T) {
	vectors := loadVectors(t)
	require.NotEmpty(t, vectors.X25519)
	for i, v := range vectors.X25519 {
		scalarB := decodeFixed(t, v.Scalar, 32)
		pointB := decodeFixed(t, v.Point, 32)
		wantB := decodeFixed(t, v.Result, 32)

		var scalar, point, want [32]byte
		copy(scalar[:], scalarB)
		copy(point[:], pointB)
		copy(want[:], wantB)

		got, ok := xecc.X25519(scalar, point)
		require.True(t, ok, "vector %d", i)
		require.Equal(t, want, got, "vector %d", i)
	}
}

// TestX448KnownAnswerVectors mirrors TestX25519KnownAnswerVectors for X448.
func TestX448KnownAnswerVectors(t *testing.T) {
	vectors := loadVectors(t)
	require.NotEmpty(t, vectors.X448)
	for i, v := range vectors.X448 {
		scalarB := decodeFixed(t, v.Scalar, 56)
		pointB := decodeFixed(t, v.Point, 56)
		wantB := decodeFixed(t, v.Result, 56)

		var scalar, point, want [56]byte
		copy(scalar[:], scalarB)
		copy(point[:], pointB)
		copy(want[:], wantB)

		got, ok := xecc.X448(scalar, point)
		require.True(t, ok, "vector %d", i)
		require.Equal(t, want, got, "vector %d", i)
	}
}
