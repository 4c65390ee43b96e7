package signal

import (
	"gonum.org/v1/gonum/floats"

	"github.com/matzehuels/chainviz/pkg/array"
	"github.com/matzehuels/chainviz/pkg/errors"
)

// Defaults used by the CLI and HTTP API when the caller does not choose.
const (
	DefaultWindowLen = 11
	DefaultWindow    = Hanning
)

// Smooth convolves the rank-1 array x with a normalized window of length
// windowLen after extending x with reflected copies of its ends.
//
// Checks happen in this order: x must be rank 1 (INVALID_DIMENSION), x must
// hold at least windowLen samples (INSUFFICIENT_LENGTH), a windowLen below 3
// returns x itself untouched, and only then is the window name resolved
// (INVALID_WINDOW).
//
// The output is not re-centred on the input. The head reflection contributes
// windowLen/2-1 samples and the tail (windowLen+1)/2, so the result has
// len(x) samples shifted by the asymmetry; callers that need alignment with x
// must trim or shift it themselves.
func Smooth(x *array.Dense, windowLen int, window string) (*array.Dense, error) {
	if x.Rank() != 1 {
		return nil, errors.New(errors.ErrCodeInvalidDimension, "smooth only accepts 1 dimension arrays, got rank %d", x.Rank())
	}
	if x.Size() < windowLen {
		return nil, errors.New(errors.ErrCodeInsufficientLength,
			"input vector needs to be bigger than window size: %d < %d", x.Size(), windowLen)
	}
	if windowLen < 3 {
		return x, nil
	}

	w, err := ParseWindow(window)
	if err != nil {
		return nil, err
	}
	y, err := smooth(x.Data(), windowLen, w)
	if err != nil {
		return nil, err
	}
	return array.FromSlice(y), nil
}

// SmoothSlice is Smooth for a plain signal and an already resolved window kind.
// For windowLen below 3 it returns x itself.
func SmoothSlice(x []float64, windowLen int, w Window) ([]float64, error) {
	if len(x) < windowLen {
		return nil, errors.New(errors.ErrCodeInsufficientLength,
			"input vector needs to be bigger than window size: %d < %d", len(x), windowLen)
	}
	if windowLen < 3 {
		return x, nil
	}
	return smooth(x, windowLen, w)
}

func smooth(x []float64, windowLen int, w Window) ([]float64, error) {
	coeffs, err := Coefficients(w, windowLen)
	if err != nil {
		return nil, err
	}
	floats.Scale(1/floats.Sum(coeffs), coeffs)

	return ConvolveValid(Reflect(x, windowLen), coeffs)
}

// Reflect extends x with mirrored copies of its ends for a window of length
// windowLen: x[windowLen/2-1], ..., x[1] in front and the last
// (windowLen+1)/2 samples reversed behind. The result has
// len(x)+windowLen-1 samples. It requires len(x) >= windowLen.
func Reflect(x []float64, windowLen int) []float64 {
	n := len(x)
	head := max(windowLen/2-1, 0)
	tail := (windowLen + 1) / 2

	s := make([]float64, 0, head+n+tail)
	for i := head; i >= 1; i-- {
		s = append(s, x[i])
	}
	s = append(s, x...)
	for i := n - 1; i >= n-tail; i-- {
		s = append(s, x[i])
	}
	return s
}
