package eddsa_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/lattigo-core/eddsa"
)

// TestEd25519RFC8032Vector1 checks spec.md S2's seed-to-public-key
// derivation (RFC 8032 §5.1.5) against the seed and public key of RFC 8032
// §7.1 TEST 1 (the empty-message vector), then checks self-consistency of
// Sign25519/Verify25519 on that key.
func TestEd25519RFC8032Vector1(t *testing.T) {
	seedHex := "9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60"
	pubHex := "d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a"

	seedB, err := hex.DecodeString(seedHex)
	require.NoError(t, err)
	var seed [32]byte
	copy(seed[:], seedB)

	pub := eddsa.PublicKey25519(seed)
	require.Equal(t, pubHex, hex.EncodeToString(pub[:]))

	sig := eddsa.Sign25519(seed, nil)
	require.NoError(t, eddsa.Verify25519(pub, sig, nil))
}

func TestEd25519TamperDetection(t *testing.T) {
	var seed [32]byte
	seed[0] = 7
	pub := eddsa.PublicKey25519(seed)
	msg := []byte("hello world")
	sig := eddsa.Sign25519(seed, msg)

	require.NoError(t, eddsa.Verify25519(pub, sig, msg))

	tamperedMsg := append([]byte(nil), msg...)
	tamperedMsg[0] ^= 1
	require.Error(t, eddsa.Verify25519(pub, sig, tamperedMsg))

	tamperedSig := sig
	tamperedSig[0] ^= 1
	require.Error(t, eddsa.Verify25519(pub, tamperedSig, msg))

	tamperedPub := pub
	tamperedPub[0] ^= 1
	require.Error(t, eddsa.Verify25519(tamperedPub, sig, msg))
}

func TestEd448SignVerifyRoundTrip(t *testing.T) {
	var seed [57]byte
	seed[0] = 3
	pub := eddsa.PublicKey448(seed)
	msg := []byte("ed448 message")
	sig := eddsa.Sign448(seed, msg)
	require.NoError(t, eddsa.Verify448(pub, sig, msg))

	tamperedMsg := append([]byte(nil), msg...)
	tamperedMsg[0] ^= 1
	require.Error(t, eddsa.Verify448(pub, sig, tamperedMsg))
}
