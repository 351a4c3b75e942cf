package bignum

import (
	"fmt"
	"strings"
)

// decimalSuperDigit is 10^9, the largest power of ten that fits in one
// uint32 limb. Str2Num and Num2Str do not use it: both process one digit per
// limb-by-limb multiply or divide step.
const decimalSuperDigit = uint32(1_000_000_000)

// Str2Num parses the base-`base` digit string s (bases 2, 10, and 16 are
// supported) into a new Int of width w, with sign given by e (0 or 1).
func Str2Num(w Width, s string, e uint8, base int) (Int, error) {
	if base != 2 && base != 10 && base != 16 {
		return Int{}, fmt.Errorf("bignum: unsupported base %d", base)
	}
	s = strings.TrimSpace(s)
	a := New(w)
	baseInt := New(w)
	baseInt.SetU32(uint32(base))
	for _, ch := range s {
		d, ok := digitValue(ch)
		if !ok || d >= base {
			return Int{}, fmt.Errorf("bignum: invalid digit %q for base %d", ch, base)
		}
		Mul(&a, a, baseInt)
		Uadd1(&a, a, uint32(d))
	}
	a.sign = e & 1
	a.normalizeZero()
	return a, nil
}

func digitValue(ch rune) (int, bool) {
	switch {
	case ch >= '0' && ch <= '9':
		return int(ch - '0'), true
	case ch >= 'a' && ch <= 'f':
		return int(ch-'a') + 10, true
	case ch >= 'A' && ch <= 'F':
		return int(ch-'A') + 10, true
	default:
		return 0, false
	}
}

// Num2Str renders a's magnitude as a decimal string into out. A leading '-'
// is written for negative values. For a nonzero a it returns the length of
// the full rendering, which can exceed len(out); only the bytes that fit are
// stored. For zero it returns the number of bytes of "0" copied.
func Num2Str(a Int, out []byte) int {
	if a.IsZero() {
		n := copy(out, "0")
		return n
	}
	w := a.width
	mag := a.Clone()
	mag.sign = 0

	var digits []byte
	ten := New(w)
	ten.SetU32(10)
	for !mag.IsZero() {
		q := New(w)
		var rem uint32
		rem = DivMod1(&q, mag, 10)
		digits = append(digits, byte('0')+byte(rem))
		mag = q
	}
	n := 0
	if a.sign == 1 {
		if n < len(out) {
			out[n] = '-'
		}
		n++
	}
	for i := len(digits) - 1; i >= 0; i-- {
		if n < len(out) {
			out[n] = digits[i]
		}
		n++
	}
	return n
}
