package signal

import (
	"strings"

	"github.com/cwbudde/algo-dsp/dsp/window"

	"github.com/matzehuels/chainviz/pkg/errors"
)

// Window identifies a smoothing window shape.
type Window int

const (
	Flat Window = iota
	Hanning
	Hamming
	Bartlett
	Blackman
)

var windowNames = map[Window]string{
	Flat:     "flat",
	Hanning:  "hanning",
	Hamming:  "hamming",
	Bartlett: "bartlett",
	Blackman: "blackman",
}

// windowKinds maps each supported shape to its algo-dsp generator. All
// entries produce the symmetric form.
var windowKinds = map[Window]struct {
	typ  window.Type
	opts []window.Option
}{
	Flat:     {typ: window.TypeRectangular},
	Hanning:  {typ: window.TypeHann},
	Hamming:  {typ: window.TypeHamming},
	Bartlett: {typ: window.TypeTriangle, opts: []window.Option{window.WithBartlett()}},
	Blackman: {typ: window.TypeBlackman},
}

// String returns the lowercase window name.
func (w Window) String() string {
	if s, ok := windowNames[w]; ok {
		return s
	}
	return "unknown"
}

// Windows returns all supported window kinds in declaration order.
func Windows() []Window {
	return []Window{Flat, Hanning, Hamming, Bartlett, Blackman}
}

// ParseWindow maps a window name to its kind. Matching is case-insensitive.
func ParseWindow(name string) (Window, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for w, s := range windowNames {
		if s == key {
			return w, nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidWindow,
		"window is one of 'flat', 'hanning', 'hamming', 'bartlett', 'blackman', got %q", name)
}

// Coefficients returns the length-n weighting curve for w. A length of one
// yields [1]; non-positive lengths yield nil.
func Coefficients(w Window, n int) ([]float64, error) {
	kind, ok := windowKinds[w]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidWindow, "unknown window kind %d", int(w))
	}
	if n <= 0 {
		return nil, nil
	}
	if n == 1 {
		return []float64{1}, nil
	}
	return window.Generate(kind.typ, n, kind.opts...), nil
}
