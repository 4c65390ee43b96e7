package markov

import (
	"fmt"
	"math"
)

// rateEpsilon keeps the timescale finite for zero rates.
const rateEpsilon = 1e-16

// StableLabel marks transitions whose timescale is effectively zero.
const StableLabel = "Stable"

// TransitionRate converts a per-step probability into an instantaneous rate,
// -ln(1-p)/dt. Probabilities of 1 or more map to +Inf.
func TransitionRate(p, dt float64) float64 {
	if p >= 1 {
		return math.Inf(1)
	}
	return -math.Log1p(-p) / dt
}

// Timescale returns the characteristic time 1/rate of a transition.
func Timescale(rate float64) float64 {
	return 1 / (rate + rateEpsilon)
}

// TimescaleLabel formats a timescale: "Stable" below 1e-6, microseconds below
// 0.5 and milliseconds otherwise.
func TimescaleLabel(tau float64) string {
	switch {
	case tau < 1e-6:
		return StableLabel
	case tau < 0.5:
		return fmt.Sprintf("%.0f µs", tau*1e3)
	default:
		return fmt.Sprintf("%.1f ms", tau)
	}
}

// ProbabilityLabel formats p with two decimals.
func ProbabilityLabel(p float64) string {
	return fmt.Sprintf("%.2f", p)
}

// EdgeLabel returns the text drawn next to an edge of probability p.
func EdgeLabel(p float64, opts Options) string {
	if opts.UseTimescale {
		return TimescaleLabel(Timescale(TransitionRate(p, opts.DT)))
	}
	return ProbabilityLabel(p)
}

// StateLabel is the default label of node i.
func StateLabel(i int) string {
	return fmt.Sprintf("State %d", i+1)
}
