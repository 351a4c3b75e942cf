package mlkem

import (
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"io"
)

var errDecaps = errors.New("mlkem: malformed decapsulation key")

// EncapsKey is an ML-KEM encapsulation (public) key.
type EncapsKey struct {
	Params ParamSet
	Bytes  []byte
}

// DecapsKey is an ML-KEM decapsulation (private) key.
type DecapsKey struct {
	Params ParamSet
	Bytes  []byte
}

// GenerateKeyPair runs ML-KEM.KeyGen (FIPS 203 Algorithm 16): draw two fresh
// 32-byte seeds, build the K-PKE keypair, and assemble the decapsulation
// key's extra fields (a copy of ek, H(ek), and the implicit-rejection seed
// z).
func GenerateKeyPair(p ParamSet, rnd io.Reader) (*EncapsKey, *DecapsKey, error) {
	d := make([]byte, 32)
	z := make([]byte, 32)
	if rnd == nil {
		rnd = rand.Reader
	}
	if _, err := io.ReadFull(rnd, d); err != nil {
		return nil, nil, err
	}
	if _, err := io.ReadFull(rnd, z); err != nil {
		return nil, nil, err
	}
	return deriveKeyPair(p, d, z)
}

// deriveKeyPairDeterministic exposes Algorithm 16 with caller-supplied seeds,
// for test-vector reproduction (spec.md S4).
func deriveKeyPairDeterministic(p ParamSet, d, z []byte) (*EncapsKey, *DecapsKey, error) {
	return deriveKeyPair(p, d, z)
}

func deriveKeyPair(p ParamSet, d, z []byte) (*EncapsKey, *DecapsKey, error) {
	ekPKE, dkPKE, err := pkeKeyGen(p, d)
	if err != nil {
		return nil, nil, err
	}
	ek := &EncapsKey{Params: p, Bytes: ekPKE}

	dkBytes := make([]byte, 0, p.DecapsKeyBytes())
	dkBytes = append(dkBytes, dkPKE...)
	dkBytes = append(dkBytes, ekPKE...)
	dkBytes = append(dkBytes, H(ekPKE)...)
	dkBytes = append(dkBytes, z...)
	dk := &DecapsKey{Params: p, Bytes: dkBytes}
	return ek, dk, nil
}

// Encapsulate runs ML-KEM.Encaps (FIPS 203 Algorithm 17): draw a fresh
// 32-byte message m, derive the shared secret and encryption randomness via
// G(m||H(ek)), and encrypt m under ek.
func Encapsulate(ek *EncapsKey, rnd io.Reader) (ciphertext, sharedSecret []byte, err error) {
	m := make([]byte, 32)
	if rnd == nil {
		rnd = rand.Reader
	}
	if _, err := io.ReadFull(rnd, m); err != nil {
		return nil, nil, err
	}
	return encapsulateDeterministic(ek, m)
}

func encapsulateDeterministic(ek *EncapsKey, m []byte) (ciphertext, sharedSecret []byte, err error) {
	hEK := H(ek.Bytes)
	kBar, r := G(m, hEK)
	ct := pkeEncrypt(ek.Params, ek.Bytes, m, r)
	return ct, kBar, nil
}

// Decapsulate runs ML-KEM.Decaps (FIPS 203 Algorithm 18): decrypt the
// ciphertext, recompute the encryption randomness implied by the recovered
// message, and either confirm re-encryption matches (returning the derived
// shared secret) or fall back to the implicit-rejection pseudorandom value
// J(z||ct) in constant time.
func Decapsulate(dk *DecapsKey, ciphertext []byte) ([]byte, error) {
	p := dk.Params
	if len(dk.Bytes) != p.DecapsKeyBytes() {
		return nil, errDecaps
	}
	dkPKE := dk.Bytes[:p.K*384]
	ekPKE := dk.Bytes[p.K*384 : p.K*384+p.EncapsKeyBytes()]
	hEK := dk.Bytes[p.K*384+p.EncapsKeyBytes() : p.K*384+p.EncapsKeyBytes()+32]
	z := dk.Bytes[p.K*384+p.EncapsKeyBytes()+32:]

	mPrime := pkeDecrypt(p, dkPKE, ciphertext)
	kBarPrime, rPrime := G(mPrime, hEK)
	kReject := J(z, ciphertext)

	ctPrime := pkeEncrypt(p, ekPKE, mPrime, rPrime)

	match := subtle.ConstantTimeCompare(ciphertext, ctPrime)
	out := make([]byte, SharedSecretBytes)
	subtle.ConstantTimeCopy(1-match, out, kReject)
	subtle.ConstantTimeCopy(match, out, kBarPrime)
	return out, nil
}
