package array

import (
	"gonum.org/v1/gonum/mat"

	"github.com/matzehuels/chainviz/pkg/errors"
)

// DefaultAxis is the axis CropToMinSize aligns along when callers have no preference.
const DefaultAxis = 0

// CropToMinSize truncates every array to the smallest extent found along axis.
//
// Cropping always keeps the leading entries (index 0 onward); there is no
// padding, interpolation or offset alignment. Extents along every other axis
// are unchanged and the result preserves the input order. The inputs are not
// modified.
//
// It returns an INVALID_INPUT error for an empty sequence and SHAPE_MISMATCH
// when axis is not a valid axis of every array.
func CropToMinSize(arrays []*Dense, axis int) ([]*Dense, error) {
	if len(arrays) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no arrays to crop")
	}

	minSize := -1
	for i, a := range arrays {
		if a == nil {
			return nil, errors.New(errors.ErrCodeInvalidInput, "array %d is nil", i)
		}
		if err := errors.ValidateAxis(axis, a.Rank()); err != nil {
			return nil, errors.Wrap(errors.ErrCodeShapeMismatch, err, "array %d", i)
		}
		if n := a.Dim(axis); minSize < 0 || n < minSize {
			minSize = n
		}
	}

	out := make([]*Dense, len(arrays))
	for i, a := range arrays {
		c, err := a.Crop(axis, minSize)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}

// CropMatrices is CropToMinSize for gonum matrices: axis 0 crops rows, axis 1
// crops columns. The results are views into the inputs.
func CropMatrices(ms []*mat.Dense, axis int) ([]*mat.Dense, error) {
	if len(ms) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no matrices to crop")
	}
	if err := errors.ValidateAxis(axis, 2); err != nil {
		return nil, err
	}

	minSize := -1
	for _, m := range ms {
		r, c := m.Dims()
		n := r
		if axis == 1 {
			n = c
		}
		if minSize < 0 || n < minSize {
			minSize = n
		}
	}

	out := make([]*mat.Dense, len(ms))
	for i, m := range ms {
		r, c := m.Dims()
		if axis == 0 {
			r = minSize
		} else {
			c = minSize
		}
		if r == 0 || c == 0 {
			// gonum cannot represent empty views
			return nil, errors.New(errors.ErrCodeShapeMismatch, "matrix %d would be cropped to %dx%d", i, r, c)
		}
		out[i] = m.Slice(0, r, 0, c).(*mat.Dense)
	}
	return out, nil
}
