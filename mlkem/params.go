// Package mlkem implements the ML-KEM (FIPS 203 / Kyber) key-encapsulation
// mechanism: polynomial arithmetic over Z_q[X]/(X^256+1) with q = 3329, the
// number-theoretic transform, CBD/XOF sampling, K-PKE, and the outer KEM
// with implicit rejection (§4.6 "ML-KEM/Kyber PQC KEM").
//
// Grounded on ring's NTT/Poly split (ring/ntt.go, ring/poly.go): one file
// per concern (params, ntt, poly, sample, hash, pke, kem), the transform
// itself kept free of sampling/encoding concerns the way ring.NTT is kept
// free of ring.GaussianSampler.
package mlkem

import "fmt"

// Q is the ML-KEM modulus.
const Q = 3329

// N is the ring degree: polynomials live in Z_q[X]/(X^256+1).
const N = 256

// ParamSet names one of the three standard ML-KEM parameter sets
// (FIPS 203 §8, table 2).
type ParamSet struct {
	Name string
	K    int // module rank
	Eta1 int // CBD width used when sampling secret/error vectors
	Eta2 int // CBD width used when sampling encryption-time error terms
	Du   int // ciphertext compression width for u
	Dv   int // ciphertext compression width for v
}

// ML512 is ML-KEM-512.
func ML512() ParamSet { return ParamSet{Name: "ML-KEM-512", K: 2, Eta1: 3, Eta2: 2, Du: 10, Dv: 4} }

// ML768 is ML-KEM-768.
func ML768() ParamSet { return ParamSet{Name: "ML-KEM-768", K: 3, Eta1: 2, Eta2: 2, Du: 10, Dv: 4} }

// ML1024 is ML-KEM-1024.
func ML1024() ParamSet { return ParamSet{Name: "ML-KEM-1024", K: 4, Eta1: 2, Eta2: 2, Du: 11, Dv: 5} }

// EncapsKeyBytes is the byte length of an encapsulation (public) key.
func (p ParamSet) EncapsKeyBytes() int { return p.K*384 + 32 }

// DecapsKeyBytes is the byte length of a decapsulation (private) key.
func (p ParamSet) DecapsKeyBytes() int { return p.K*384 + p.EncapsKeyBytes() + 32 + 32 }

// CiphertextBytes is the byte length of a KEM ciphertext.
func (p ParamSet) CiphertextBytes() int { return p.K*32*p.Du + 32*p.Dv }

// SharedSecretBytes is the fixed length of the derived shared secret.
const SharedSecretBytes = 32

func (p ParamSet) String() string {
	return fmt.Sprintf("%s(k=%d,eta1=%d,eta2=%d,du=%d,dv=%d)", p.Name, p.K, p.Eta1, p.Eta2, p.Du, p.Dv)
}
