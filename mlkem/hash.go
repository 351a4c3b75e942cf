package mlkem

import "golang.org/x/crypto/sha3"

// H, G and J are the three hash wrappers FIPS 203 builds K-PKE/KEM from
// (§4.6): H = SHA3-256, G = SHA3-512 (split into two 32-byte halves), and
// J = SHAKE-256 truncated to 32 bytes. Grounded on golang.org/x/crypto/sha3,
// already a go.mod dependency pulled in by the teacher's noise-distribution
// tooling.
func H(data ...[]byte) []byte {
	h := sha3.New256()
	for _, d := range data {
		h.Write(d)
	}
	return h.Sum(nil)
}

// G returns the two 32-byte halves of SHA3-512(data).
func G(data ...[]byte) (a, b []byte) {
	h := sha3.New512()
	for _, d := range data {
		h.Write(d)
	}
	sum := h.Sum(nil)
	return sum[:32], sum[32:]
}

// J derives the implicit-rejection pseudorandom value: SHAKE-256(data),
// truncated to 32 bytes.
func J(data ...[]byte) []byte {
	x := sha3.NewShake256()
	for _, d := range data {
		x.Write(d)
	}
	out := make([]byte, 32)
	x.Read(out)
	return out
}

// PRF expands a seed and a single-byte nonce into 64*eta pseudorandom bytes
// via SHAKE-256 (FIPS 203 §4.1).
func PRF(eta int, seed []byte, nonce byte) []byte {
	x := sha3.NewShake256()
	x.Write(seed)
	x.Write([]byte{nonce})
	out := make([]byte, 64*eta)
	x.Read(out)
	return out
}

// xof is a SHAKE-128 stream seeded with rho and a pair of indices, used by
// SampleNTT's rejection loop.
type xof struct {
	sponge sha3.ShakeHash
}

func newXOF(rho []byte, i, j byte) *xof {
	s := sha3.NewShake128()
	s.Write(rho)
	s.Write([]byte{i, j})
	return &xof{sponge: s}
}

func (x *xof) read(n int) []byte {
	out := make([]byte, n)
	x.sponge.Read(out)
	return out
}
