package signal

import (
	"fmt"
	"math"
	"testing"

	"github.com/matzehuels/chainviz/pkg/errors"
)

func TestParseWindow(t *testing.T) {
	tests := []struct {
		in      string
		want    Window
		wantErr bool
	}{
		{"flat", Flat, false},
		{"hanning", Hanning, false},
		{"Hamming", Hamming, false},
		{" bartlett ", Bartlett, false},
		{"blackman", Blackman, false},
		{"hann", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseWindow(tt.in)
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidWindow) {
					t.Errorf("ParseWindow(%q) error = %v, want INVALID_WINDOW", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseWindow(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseWindow(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestCoefficientsSymmetric(t *testing.T) {
	for _, w := range Windows() {
		for _, n := range []int{3, 4, 7, 11} {
			c, err := Coefficients(w, n)
			if err != nil {
				t.Fatalf("Coefficients(%s, %d) error: %v", w, n, err)
			}
			if len(c) != n {
				t.Fatalf("Coefficients(%s, %d) length = %d", w, n, len(c))
			}
			for k := 0; k < n/2; k++ {
				if math.Abs(c[k]-c[n-1-k]) > 1e-12 {
					t.Errorf("Coefficients(%s, %d): c[%d]=%v != c[%d]=%v", w, n, k, c[k], n-1-k, c[n-1-k])
				}
			}
		}
	}
}

// Reference values from numpy.hanning, hamming, bartlett and blackman.
func TestCoefficientsValues(t *testing.T) {
	tests := []struct {
		w    Window
		want []float64
	}{
		{Flat, []float64{1, 1, 1, 1, 1}},
		{Hanning, []float64{0, 0.5, 1, 0.5, 0}},
		{Hamming, []float64{0.08, 0.54, 1, 0.54, 0.08}},
		{Bartlett, []float64{0, 0.5, 1, 0.5, 0}},
		{Blackman, []float64{0, 0.34, 1, 0.34, 0}},
		{Flat, []float64{1, 1, 1, 1}},
		{Hanning, []float64{0, 0.75, 0.75, 0}},
		{Hamming, []float64{0.08, 0.77, 0.77, 0.08}},
		{Bartlett, []float64{0, 2.0 / 3, 2.0 / 3, 0}},
		{Blackman, []float64{0, 0.63, 0.63, 0}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%d", tt.w, len(tt.want)), func(t *testing.T) {
			c, err := Coefficients(tt.w, len(tt.want))
			if err != nil {
				t.Fatal(err)
			}
			if len(c) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(c), len(tt.want))
			}
			for i := range tt.want {
				if math.Abs(c[i]-tt.want[i]) > 1e-9 {
					t.Errorf("c[%d] = %v, want %v", i, c[i], tt.want[i])
				}
			}
		})
	}
}

func TestCoefficientsEdgeLengths(t *testing.T) {
	c, err := Coefficients(Hanning, 1)
	if err != nil || len(c) != 1 || c[0] != 1 {
		t.Errorf("Coefficients(len 1) = %v, %v; want [1]", c, err)
	}
	c, err = Coefficients(Hanning, 0)
	if err != nil || c != nil {
		t.Errorf("Coefficients(len 0) = %v, %v; want nil", c, err)
	}
	if _, err := Coefficients(Window(42), 5); !errors.Is(err, errors.ErrCodeInvalidWindow) {
		t.Errorf("Coefficients(unknown) error = %v, want INVALID_WINDOW", err)
	}
}
