package signal

import (
	"github.com/cwbudde/algo-dsp/dsp/conv"

	"github.com/matzehuels/chainviz/pkg/errors"
)

// ConvolveValid returns the linear convolution of a and b restricted to the
// positions where the shorter input fully overlaps the longer one. The result
// has max(len(a), len(b)) - min(len(a), len(b)) + 1 samples.
func ConvolveValid(a, b []float64) ([]float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "convolution of empty input")
	}
	if len(b) > len(a) {
		a, b = b, a
	}
	out, err := conv.ConvolveMode(a, b, conv.ModeValid)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "convolve %d samples with %d taps", len(a), len(b))
	}
	return out, nil
}
