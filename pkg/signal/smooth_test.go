package signal

import (
	"math"
	"slices"
	"testing"

	"github.com/matzehuels/chainviz/pkg/array"
	"github.com/matzehuels/chainviz/pkg/errors"
)

func ramp(n int) []float64 {
	x := make([]float64, n)
	for i := range x {
		x[i] = float64(i)
	}
	return x
}

func TestSmoothShortWindowIsIdentity(t *testing.T) {
	x := array.FromSlice([]float64{3, 1, 4, 1, 5})

	for _, l := range []int{0, 1, 2} {
		// The window name is never looked at below length 3.
		got, err := Smooth(x, l, "bogus")
		if err != nil {
			t.Fatalf("Smooth(len %d) error: %v", l, err)
		}
		if got != x {
			t.Errorf("Smooth(len %d) returned a new array, want the input", l)
		}
	}
}

func TestSmoothFlatConstant(t *testing.T) {
	x := make([]float64, 20)
	for i := range x {
		x[i] = 2.5
	}

	for _, w := range Windows() {
		t.Run(w.String(), func(t *testing.T) {
			got, err := Smooth(array.FromSlice(x), 5, w.String())
			if err != nil {
				t.Fatalf("Smooth() error: %v", err)
			}
			if got.Size() != len(x) {
				t.Fatalf("Smooth() size = %d, want %d", got.Size(), len(x))
			}
			for i, v := range got.Data() {
				if math.Abs(v-2.5) > 1e-12 {
					t.Errorf("y[%d] = %v, want 2.5", i, v)
				}
			}
		})
	}
}

func TestSmoothOutputLength(t *testing.T) {
	for _, l := range []int{3, 4, 5, 10, 11} {
		x := ramp(25)
		got, err := SmoothSlice(x, l, Hanning)
		if err != nil {
			t.Fatalf("SmoothSlice(len %d) error: %v", l, err)
		}
		if len(got) != len(x) {
			t.Errorf("SmoothSlice(len %d) length = %d, want %d", l, len(got), len(x))
		}
	}
}

func TestSmoothFlatValues(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	got, err := SmoothSlice(x, 3, Flat)
	if err != nil {
		t.Fatalf("SmoothSlice() error: %v", err)
	}
	// s = [1 2 3 4 5 5 4]
	want := []float64{2, 3, 4, 14.0 / 3, 14.0 / 3}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("y[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSmoothErrors(t *testing.T) {
	matrix, err := array.New([]int{3, 4}, make([]float64, 12))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		x      *array.Dense
		l      int
		window string
		code   errors.Code
	}{
		{"rank 2", matrix, 3, "flat", errors.ErrCodeInvalidDimension},
		{"rank 2 short window", matrix, 1, "flat", errors.ErrCodeInvalidDimension},
		{"too short", array.FromSlice(ramp(5)), 11, "hanning", errors.ErrCodeInsufficientLength},
		{"unknown window", array.FromSlice(ramp(20)), 5, "triangle", errors.ErrCodeInvalidWindow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Smooth(tt.x, tt.l, tt.window)
			if !errors.Is(err, tt.code) {
				t.Errorf("Smooth() error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestReflect(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4, 5, 6}
	tests := []struct {
		l    int
		want []float64
	}{
		{3, []float64{0, 1, 2, 3, 4, 5, 6, 6, 5}},
		{4, []float64{1, 0, 1, 2, 3, 4, 5, 6, 6, 5}},
		{5, []float64{1, 0, 1, 2, 3, 4, 5, 6, 6, 5, 4}},
	}
	for _, tt := range tests {
		got := Reflect(x, tt.l)
		if !slices.Equal(got, tt.want) {
			t.Errorf("Reflect(len %d) = %v, want %v", tt.l, got, tt.want)
		}
		if len(got) != len(x)+tt.l-1 {
			t.Errorf("Reflect(len %d) length = %d, want %d", tt.l, len(got), len(x)+tt.l-1)
		}
	}
}
