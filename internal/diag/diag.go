// Package diag formats big-exponent magnitudes: how many decimal digits a^e
// would have, without ever materializing the number itself. It also
// provides short fingerprints of key material and ciphertexts, so a log
// line or test failure message can name which key was involved without
// printing the raw secret. No other package of this module imports it.
//
// Grounded on the teacher's go.mod dependencies on github.com/ALTree/bigfloat
// and github.com/zeebo/blake3, both otherwise unwired by any copied
// teacher source.
package diag

import (
	"fmt"
	"math/big"

	"github.com/ALTree/bigfloat"
	"github.com/zeebo/blake3"
)

// DecimalDigits estimates the number of base-10 digits of a^e using
// bigfloat.Log (arbitrary-precision natural log over *big.Float), avoiding
// computing a^e directly — which for RSA-sized exponents would itself be
// the very big-number cost this package exists to report on.
func DecimalDigits(a *big.Int, e *big.Int) string {
	if a.Sign() == 0 {
		return "0 (a == 0)"
	}
	af := new(big.Float).SetPrec(128).SetInt(a)
	ln := bigfloat.Log(af)
	ef := new(big.Float).SetPrec(128).SetInt(e)
	lnPow := new(big.Float).SetPrec(128).Mul(ln, ef)

	ln10 := bigfloat.Log(big.NewFloat(10))
	digitsF := new(big.Float).SetPrec(128).Quo(lnPow, ln10)
	digits, _ := digitsF.Int(nil)
	digits.Add(digits, big.NewInt(1)) // floor(log10(a^e)) + 1
	return fmt.Sprintf("~%s decimal digits", digits.String())
}

// Fingerprint returns a short hex-encoded BLAKE3 digest of data, for log
// lines and error messages that need to name a key or ciphertext without
// printing it in full.
func Fingerprint(data []byte) string {
	sum := blake3.Sum256(data)
	return fmt.Sprintf("%x", sum[:8])
}
