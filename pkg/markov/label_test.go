package markov

import (
	"math"
	"testing"
)

func TestTransitionRate(t *testing.T) {
	if got := TransitionRate(0.5, 1); math.Abs(got-math.Ln2) > 1e-12 {
		t.Errorf("TransitionRate(0.5, 1) = %v, want ln 2", got)
	}
	if got := TransitionRate(0.5, 2); math.Abs(got-math.Ln2/2) > 1e-12 {
		t.Errorf("TransitionRate(0.5, 2) = %v, want ln 2 / 2", got)
	}
	for _, p := range []float64{1, 1.5} {
		if got := TransitionRate(p, 1); !math.IsInf(got, 1) {
			t.Errorf("TransitionRate(%v, 1) = %v, want +Inf", p, got)
		}
	}
	if got := TransitionRate(0, 1); got != 0 {
		t.Errorf("TransitionRate(0, 1) = %v, want 0", got)
	}
}

func TestTimescaleLabel(t *testing.T) {
	tests := []struct {
		tau  float64
		want string
	}{
		{0, StableLabel},
		{9e-7, StableLabel},
		{1e-6, "0 µs"},
		{0.0123, "12 µs"},
		{0.4994, "499 µs"},
		{0.5, "0.5 ms"},
		{1 / math.Ln2, "1.4 ms"},
		{250, "250.0 ms"},
	}
	for _, tt := range tests {
		if got := TimescaleLabel(tt.tau); got != tt.want {
			t.Errorf("TimescaleLabel(%v) = %q, want %q", tt.tau, got, tt.want)
		}
	}
}

func TestEdgeLabel(t *testing.T) {
	tests := []struct {
		p    float64
		opts Options
		want string
	}{
		{0.5, Options{DT: 1}, "0.50"},
		{0.123, Options{DT: 1}, "0.12"},
		{0.5, Options{DT: 1, UseTimescale: true}, "1.4 ms"},
		{1, Options{DT: 1, UseTimescale: true}, StableLabel},
		{0, Options{DT: 1, UseTimescale: true}, "10000000000000000.0 ms"},
	}
	for _, tt := range tests {
		if got := EdgeLabel(tt.p, tt.opts); got != tt.want {
			t.Errorf("EdgeLabel(%v, %+v) = %q, want %q", tt.p, tt.opts, got, tt.want)
		}
	}
}
