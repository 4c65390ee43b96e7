package errors

import (
	"math"
	"testing"
)

func TestValidateFormats(t *testing.T) {
	allowed := []string{"svg", "png", "pdf", "dot"}
	tests := []struct {
		name    string
		input   []string
		wantErr bool
	}{
		{"single", []string{"svg"}, false},
		{"multiple", []string{"svg", "png", "dot"}, false},

		{"empty", nil, true},
		{"unknown", []string{"jpeg"}, true},
		{"one bad", []string{"svg", "gif"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFormats(tt.input, allowed)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFormats(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidFormat) {
				t.Errorf("ValidateFormats(%v) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidFormat)
			}
		})
	}
}

func TestValidateNonNegative(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		wantErr bool
	}{
		{"zero", 0, false},
		{"tiny", 1e-6, false},
		{"negative", -0.1, true},
		{"nan", math.NaN(), true},
		{"inf", math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNonNegative("threshold", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateNonNegative(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateAxis(t *testing.T) {
	tests := []struct {
		axis, rank int
		wantErr    bool
	}{
		{0, 1, false},
		{2, 3, false},
		{1, 1, true},
		{-1, 2, true},
	}
	for _, tt := range tests {
		err := ValidateAxis(tt.axis, tt.rank)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateAxis(%d, %d) error = %v, wantErr %v", tt.axis, tt.rank, err, tt.wantErr)
		}
		if err != nil && !Is(err, ErrCodeShapeMismatch) {
			t.Errorf("ValidateAxis(%d, %d) code = %v, want %v", tt.axis, tt.rank, GetCode(err), ErrCodeShapeMismatch)
		}
	}
}
