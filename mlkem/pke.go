package mlkem

import "errors"

// pkeKeyGen is K-PKE.KeyGen (FIPS 203 Algorithm 13): derive the public
// matrix A from rho, sample secret/error vectors s, e from the CBD via PRF
// seeded with sigma, and return the encryption/decryption keys.
//
// ekBytes is ByteEncode_12(t) || rho; dkBytes is ByteEncode_12(s).
func pkeKeyGen(p ParamSet, d []byte) (ekBytes, dkBytes []byte, err error) {
	if len(d) != 32 {
		return nil, nil, errors.New("mlkem: keygen seed must be 32 bytes")
	}
	rho, sigma := G(d, []byte{byte(p.K)})

	a := sampleMatrix(p.K, rho, false)

	s := NewPolyVec(p.K)
	e := NewPolyVec(p.K)
	nonce := byte(0)
	for i := 0; i < p.K; i++ {
		s[i] = *SamplePolyCBD(PRF(p.Eta1, sigma, nonce), p.Eta1)
		nonce++
	}
	for i := 0; i < p.K; i++ {
		e[i] = *SamplePolyCBD(PRF(p.Eta1, sigma, nonce), p.Eta1)
		nonce++
	}

	sHat := ntted(s)
	eHat := ntted(e)

	tHat := NewPolyVec(p.K)
	for i := 0; i < p.K; i++ {
		row := a[i]
		acc := InnerProductNTT(row, sHat)
		tHat[i].Add(acc, &eHat[i])
	}

	ek := make([]byte, 0, p.EncapsKeyBytes())
	for i := range tHat {
		ek = append(ek, ByteEncode(&tHat[i], 12)...)
	}
	ek = append(ek, rho...)

	dk := make([]byte, 0, p.K*384)
	for i := range sHat {
		dk = append(dk, ByteEncode(&sHat[i], 12)...)
	}
	return ek, dk, nil
}

// pkeEncrypt is K-PKE.Encrypt (FIPS 203 Algorithm 14): encode the message m
// against public key ek using fresh randomness r, returning the ciphertext.
func pkeEncrypt(p ParamSet, ek, m, r []byte) []byte {
	tHat := decodeVec(ek[:p.K*384], 12)
	rho := ek[p.K*384:]

	aT := sampleMatrix(p.K, rho, true)

	rVec := NewPolyVec(p.K)
	e1 := NewPolyVec(p.K)
	nonce := byte(0)
	for i := 0; i < p.K; i++ {
		rVec[i] = *SamplePolyCBD(PRF(p.Eta1, r, nonce), p.Eta1)
		nonce++
	}
	for i := 0; i < p.K; i++ {
		e1[i] = *SamplePolyCBD(PRF(p.Eta2, r, nonce), p.Eta2)
		nonce++
	}
	e2 := SamplePolyCBD(PRF(p.Eta2, r, nonce), p.Eta2)

	rHat := ntted(rVec)

	u := NewPolyVec(p.K)
	for i := 0; i < p.K; i++ {
		acc := InnerProductNTT(aT[i], rHat)
		InvNTT(acc)
		u[i].Add(acc, &e1[i])
	}

	vAcc := InnerProductNTT(tHat, rHat)
	InvNTT(vAcc)
	mu := EncodeMessage(m)
	var v Poly
	v.Add(vAcc, e2)
	v.Add(&v, mu)

	out := make([]byte, 0, p.CiphertextBytes())
	for i := range u {
		out = append(out, ByteEncode(compressClone(&u[i], p.Du), p.Du)...)
	}
	out = append(out, ByteEncode(compressClone(&v, p.Dv), p.Dv)...)
	return out
}

// pkeDecrypt is K-PKE.Decrypt (FIPS 203 Algorithm 15).
func pkeDecrypt(p ParamSet, dk, ct []byte) []byte {
	uBytesLen := (N * p.Du) / 8
	u := NewPolyVec(p.K)
	for i := 0; i < p.K; i++ {
		u[i] = *compressedDecode(ct[i*uBytesLen:(i+1)*uBytesLen], p.Du)
	}
	vBytes := ct[p.K*uBytesLen:]
	v := compressedDecode(vBytes, p.Dv)

	sHat := decodeVec(dk, 12)
	uHat := ntted(u)

	acc := InnerProductNTT(sHat, uHat)
	InvNTT(acc)

	var mPoly Poly
	mPoly.Sub(v, acc)
	return DecodeMessage(&mPoly)
}

// sampleMatrix derives the k*k public matrix A (or its transpose) from rho
// via SampleNTT, per FIPS 203 Algorithm 13's "for i,j" loop. transpose
// selects A^T's indexing, used by Encrypt.
func sampleMatrix(k int, rho []byte, transpose bool) []PolyVec {
	a := make([]PolyVec, k)
	for i := 0; i < k; i++ {
		a[i] = NewPolyVec(k)
		for j := 0; j < k; j++ {
			if transpose {
				a[i][j] = *SampleNTT(rho, byte(i), byte(j))
			} else {
				a[i][j] = *SampleNTT(rho, byte(j), byte(i))
			}
		}
	}
	return a
}

func ntted(v PolyVec) PolyVec {
	out := make(PolyVec, len(v))
	for i := range v {
		p := v[i]
		NTT(&p)
		out[i] = p
	}
	return out
}

func decodeVec(data []byte, d int) PolyVec {
	k := len(data) / ((N * d) / 8)
	out := NewPolyVec(k)
	step := (N * d) / 8
	for i := 0; i < k; i++ {
		out[i] = *ByteDecode(data[i*step:(i+1)*step], d)
	}
	return out
}

func compressClone(p *Poly, d int) *Poly {
	vals := CompressPoly(p, d)
	var out Poly
	for i, v := range vals {
		out[i] = int16(v)
	}
	return &out
}

func compressedDecode(data []byte, d int) *Poly {
	packed := ByteDecode(data, d)
	vals := make([]uint16, N)
	for i, c := range packed {
		vals[i] = uint16(c)
	}
	return DecompressPoly(vals, d)
}
