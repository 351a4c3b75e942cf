package bignum

// Lshift sets dst = a << n (mod 2^W), for n in [0, W]. The sign is preserved.
func Lshift(dst *Int, a Int, n int) {
	mustSameWidth(*dst, a)
	limbs := len(a.limb)
	if n <= 0 {
		Move(dst, a)
		return
	}
	if n >= int(a.width) {
		for i := range dst.limb {
			dst.limb[i] = 0
		}
		dst.sign = a.sign
		dst.normalizeZero()
		return
	}
	wordShift := n / 32
	bitShift := uint(n % 32)
	out := make([]uint32, limbs)
	for i := limbs - 1; i >= 0; i-- {
		srcIdx := i - wordShift
		if srcIdx < 0 {
			continue
		}
		v := a.limb[srcIdx] << bitShift
		if bitShift > 0 && srcIdx-1 >= 0 {
			v |= a.limb[srcIdx-1] >> (32 - bitShift)
		}
		out[i] = v
	}
	copy(dst.limb, out)
	dst.sign = a.sign
	dst.normalizeZero()
}

// Rshift sets dst = a >> n (logical, unsigned magnitude), for n in [0, W].
// The sign is preserved as-is (callers performing arithmetic shifts on signed
// values must renormalize a zero result themselves).
func Rshift(dst *Int, a Int, n int) {
	mustSameWidth(*dst, a)
	limbs := len(a.limb)
	if n <= 0 {
		Move(dst, a)
		return
	}
	if n >= int(a.width) {
		for i := range dst.limb {
			dst.limb[i] = 0
		}
		dst.sign = a.sign
		dst.normalizeZero()
		return
	}
	wordShift := n / 32
	bitShift := uint(n % 32)
	out := make([]uint32, limbs)
	for i := 0; i < limbs; i++ {
		srcIdx := i + wordShift
		if srcIdx >= limbs {
			continue
		}
		v := a.limb[srcIdx] >> bitShift
		if bitShift > 0 && srcIdx+1 < limbs {
			v |= a.limb[srcIdx+1] << (32 - bitShift)
		}
		out[i] = v
	}
	copy(dst.limb, out)
	dst.sign = a.sign
	dst.normalizeZero()
}
