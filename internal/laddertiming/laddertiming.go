// Package laddertiming provides the statistical harness behind §8
// property 11: sampling repeated executions of a constant-time scalar
// ladder (X25519/X448, Ed25519/Ed448, the NIST P-curves' signed-binary
// ladder, ML-KEM's J-hash reject path) and checking that execution time
// has no detectable dependence on the secret scalar's value.
//
// This is a statistical sanity check, not a cache-timing or
// speculative-execution audit (§1 Non-goals explicitly excludes
// microarchitectural side channels); it only catches gross violations of
// uniform control flow, such as an accidentally reintroduced early exit.
package laddertiming

import (
	"time"

	"github.com/montanaflynn/stats"
)

// Sample is one timed execution of a ladder operation, tagged with which
// input class it ran against (so callers can bucket e.g. "scalar with low
// bit 0" vs "scalar with low bit 1").
type Sample struct {
	Class    string
	Duration time.Duration
}

// Report summarizes per-class timing statistics.
type Report struct {
	Classes map[string]ClassStats
}

// ClassStats holds the timing distribution for one input class.
type ClassStats struct {
	Mean, StdDev float64
	N            int
}

// Analyze groups samples by class and computes each class's mean/stddev,
// in nanoseconds.
func Analyze(samples []Sample) (*Report, error) {
	byClass := map[string][]float64{}
	for _, s := range samples {
		byClass[s.Class] = append(byClass[s.Class], float64(s.Duration.Nanoseconds()))
	}
	r := &Report{Classes: make(map[string]ClassStats, len(byClass))}
	for class, durations := range byClass {
		mean, err := stats.Mean(durations)
		if err != nil {
			return nil, err
		}
		sd, err := stats.StandardDeviation(durations)
		if err != nil {
			return nil, err
		}
		r.Classes[class] = ClassStats{Mean: mean, StdDev: sd, N: len(durations)}
	}
	return r, nil
}

// LooksConstantTime reports whether every class's mean falls within
// toleranceStdDevs standard deviations of the grand mean across all
// classes — a coarse check that no class is systematically slower, which
// would indicate a secret-dependent branch.
func (r *Report) LooksConstantTime(toleranceStdDevs float64) bool {
	var means []float64
	for _, c := range r.Classes {
		means = append(means, c.Mean)
	}
	if len(means) < 2 {
		return true
	}
	grandMean, err := stats.Mean(means)
	if err != nil {
		return false
	}
	grandSD, err := stats.StandardDeviation(means)
	if err != nil {
		return false
	}
	if grandSD == 0 {
		return true
	}
	for _, c := range r.Classes {
		dev := (c.Mean - grandMean) / grandSD
		if dev < 0 {
			dev = -dev
		}
		if dev > toleranceStdDevs {
			return false
		}
	}
	return true
}
