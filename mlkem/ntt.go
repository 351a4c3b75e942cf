package mlkem

// zetas holds pow(17, brv7(i), Q) for i in [0,128): the primitive 256th
// root of unity 17 raised to bit-reversed powers, per FIPS 203 §4.3. Layer i
// of the NTT uses zetas[k] for an incrementing k that walks this table
// exactly once top to bottom.
var zetas = [128]int16{
	1, 1729, 2580, 3289, 2642, 630, 1897, 848, 1062, 1919, 193, 797, 2786, 3260, 569, 1746,
	296, 2447, 1339, 1476, 3046, 56, 2240, 1333, 1426, 2094, 535, 2882, 2393, 2879, 1974, 821,
	289, 331, 3253, 1756, 1197, 2304, 2277, 2055, 650, 1977, 2513, 632, 2865, 33, 1320, 1915,
	2319, 1435, 807, 452, 1438, 2868, 1534, 2402, 2647, 2617, 1481, 648, 2474, 3110, 1227, 910,
	17, 2761, 583, 2649, 1637, 723, 2288, 1100, 1409, 2662, 3281, 233, 756, 2156, 3015, 3050,
	1703, 1651, 2789, 1789, 1847, 952, 1461, 2687, 939, 2308, 2437, 2388, 733, 2337, 268, 641,
	1584, 2298, 2037, 3220, 375, 2549, 2090, 1645, 1063, 319, 2773, 757, 2099, 561, 2466, 2594,
	2804, 1092, 403, 1026, 1143, 2150, 2775, 886, 1722, 1212, 1874, 1029, 2110, 2935, 885, 2154,
}

// nttButterfly computes (u + v*z, u - v*z) mod Q, keeping every intermediate
// in int32 to avoid overflow before the final reduction.
func nttButterfly(u, v, z int16) (int16, int16) {
	t := mods(int32(v) * int32(z))
	x := mods(int32(u) + int32(t))
	y := mods(int32(u) - int32(t))
	return x, y
}

// mods reduces x into (-Q/2, Q/2], the centered representative FIPS 203
// uses for signed coefficients; Poly.Normalize canonicalizes to [0, Q) at
// the boundaries where a non-negative range is required (encoding, CBD).
func mods(x int32) int16 {
	r := x % Q
	if r < 0 {
		r += Q
	}
	if r > Q/2 {
		r -= Q
	}
	return int16(r)
}

// NTT applies the in-place forward number-theoretic transform to a length-256
// coefficient array, per FIPS 203 Algorithm 9.
func NTT(f *Poly) {
	k := 1
	for length := 128; length >= 2; length >>= 1 {
		for start := 0; start < N; start += 2 * length {
			zeta := zetas[k]
			k++
			for j := start; j < start+length; j++ {
				f[j], f[j+length] = nttButterfly(f[j], f[j+length], zeta)
			}
		}
	}
}

// InvNTT applies the in-place inverse number-theoretic transform, per
// FIPS 203 Algorithm 10. The final ×3303 scaling (3303 = 128^-1 mod Q)
// is applied in a separate pass after the last layer.
func InvNTT(f *Poly) {
	k := 127
	for length := 2; length <= 128; length <<= 1 {
		for start := 0; start < N; start += 2 * length {
			zeta := zetas[k]
			k--
			for j := start; j < start+length; j++ {
				u, v := f[j], f[j+length]
				f[j] = mods(int32(u) + int32(v))
				f[j+length] = mods(int32(zeta) * int32(mods(int32(v)-int32(u))))
			}
		}
	}
	const nInv = 3303 // 128^-1 mod 3329
	for i := range f {
		f[i] = mods(int32(f[i]) * nInv)
	}
}

// BaseMul computes the product of two polynomials already in NTT domain,
// coefficient-block by coefficient-block (FIPS 203 Algorithm 12): each block
// of 4 real coefficients holds two degree-1 residues, one in
// Z_q[X]/(X^2-zetas[64+b]) and one in Z_q[X]/(X^2+zetas[64+b]), each
// multiplied with baseCaseMultiply.
func BaseMul(f, g *Poly) *Poly {
	var h Poly
	for b := 0; b < 64; b++ {
		zeta := zetas[64+b]
		i := 4 * b
		h[i], h[i+1] = baseCaseMultiply(f[i], f[i+1], g[i], g[i+1], zeta)
		h[i+2], h[i+3] = baseCaseMultiply(f[i+2], f[i+3], g[i+2], g[i+3], mods(-int32(zeta)))
	}
	return &h
}

// baseCaseMultiply computes (a0+a1X)(b0+b1X) mod (X^2 - zeta) in Z_q[X].
func baseCaseMultiply(a0, a1, b0, b1, zeta int16) (int16, int16) {
	c0 := mods(int32(a0)*int32(b0) + int32(mods(int32(a1)*int32(b1)))*int32(zeta))
	c1 := mods(int32(a0)*int32(b1) + int32(a1)*int32(b0))
	return c0, c1
}
