package bignum

// Ucmp compares the unsigned magnitudes of a and b: -1, 0, 1.
func Ucmp(a, b Int) int {
	mustSameWidth(a, b)
	for i := len(a.limb) - 1; i >= 0; i-- {
		if a.limb[i] != b.limb[i] {
			if a.limb[i] < b.limb[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Ucmp1 compares the unsigned magnitude of a against a single-limb value v.
func Ucmp1(a Int, v uint32) int {
	for i := len(a.limb) - 1; i >= 1; i-- {
		if a.limb[i] != 0 {
			return 1
		}
	}
	switch {
	case a.limb[0] < v:
		return -1
	case a.limb[0] > v:
		return 1
	default:
		return 0
	}
}

// Cmp compares a and b as signed values: -1, 0, 1.
func Cmp(a, b Int) int {
	mustSameWidth(a, b)
	switch {
	case a.sign == 0 && b.sign == 1:
		if a.IsZero() && b.IsZero() {
			return 0
		}
		return 1
	case a.sign == 1 && b.sign == 0:
		if a.IsZero() && b.IsZero() {
			return 0
		}
		return -1
	case a.sign == 0:
		return Ucmp(a, b)
	default:
		return -Ucmp(a, b)
	}
}

// Cmp1 compares signed a against unsigned single-limb v.
func Cmp1(a Int, v uint32) int {
	if a.sign == 1 && !a.IsZero() {
		return -1
	}
	return Ucmp1(a, v)
}
