package errors

import (
	"math"
	"slices"
	"strings"
)

// ValidateFormats checks every requested output format against the allowed set.
// An empty list is rejected so that callers always produce at least one artifact.
func ValidateFormats(formats []string, allowed []string) error {
	if len(formats) == 0 {
		return New(ErrCodeInvalidFormat, "no output format requested")
	}
	for _, f := range formats {
		if !slices.Contains(allowed, f) {
			return New(ErrCodeInvalidFormat, "invalid format: %s (must be one of %s)", f, strings.Join(allowed, ", "))
		}
	}
	return nil
}

// ValidateFinite rejects NaN and infinite values for a named numeric parameter.
func ValidateFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidInput, "%s must be finite, got %v", name, v)
	}
	return nil
}

// ValidateNonNegative rejects negative (or non-finite) values for a named parameter.
func ValidateNonNegative(name string, v float64) error {
	if err := ValidateFinite(name, v); err != nil {
		return err
	}
	if v < 0 {
		return New(ErrCodeInvalidInput, "%s must be >= 0, got %v", name, v)
	}
	return nil
}

// ValidateAxis checks that axis indexes a dimension of an array with the given rank.
func ValidateAxis(axis, rank int) error {
	if axis < 0 || axis >= rank {
		return New(ErrCodeShapeMismatch, "axis %d out of range for array of rank %d", axis, rank)
	}
	return nil
}
