package bignum

// And, Or, Xor and Not operate on the unsigned magnitude only and always
// clear the sign of the result (spec.md §4.1).

func And(dst *Int, a, b Int) {
	mustSameWidth(*dst, a)
	mustSameWidth(a, b)
	for i := range dst.limb {
		dst.limb[i] = a.limb[i] & b.limb[i]
	}
	dst.sign = 0
}

func Or(dst *Int, a, b Int) {
	mustSameWidth(*dst, a)
	mustSameWidth(a, b)
	for i := range dst.limb {
		dst.limb[i] = a.limb[i] | b.limb[i]
	}
	dst.sign = 0
}

func Xor(dst *Int, a, b Int) {
	mustSameWidth(*dst, a)
	mustSameWidth(a, b)
	for i := range dst.limb {
		dst.limb[i] = a.limb[i] ^ b.limb[i]
	}
	dst.sign = 0
}

func Not(dst *Int, a Int) {
	mustSameWidth(*dst, a)
	for i := range dst.limb {
		dst.limb[i] = ^a.limb[i]
	}
	dst.sign = 0
}
