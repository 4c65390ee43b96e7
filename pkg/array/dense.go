package array

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/matzehuels/chainviz/pkg/errors"
)

// Dense is an n-dimensional array of float64 values stored in row-major order.
//
// The zero value is not usable; construct arrays with [New], [Zeros] or [FromSlice].
type Dense struct {
	shape []int
	data  []float64
}

// New creates an array with the given shape backed by data.
// The data slice is used directly, not copied. It returns an error if any
// extent is negative or if len(data) does not match the product of the extents.
func New(shape []int, data []float64) (*Dense, error) {
	if len(shape) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidDimension, "shape must have at least one axis")
	}
	n := 1
	for i, s := range shape {
		if s < 0 {
			return nil, errors.New(errors.ErrCodeShapeMismatch, "negative extent %d on axis %d", s, i)
		}
		n *= s
	}
	if n != len(data) {
		return nil, errors.New(errors.ErrCodeShapeMismatch, "shape %v needs %d values, got %d", shape, n, len(data))
	}
	return &Dense{shape: slices.Clone(shape), data: data}, nil
}

// Zeros creates a zero-filled array with the given extents.
func Zeros(shape ...int) *Dense {
	n := 1
	for _, s := range shape {
		n *= max(s, 0)
	}
	return &Dense{shape: slices.Clone(shape), data: make([]float64, n)}
}

// FromSlice wraps a 1-D signal as a rank-1 array without copying.
func FromSlice(x []float64) *Dense {
	return &Dense{shape: []int{len(x)}, data: x}
}

// Shape returns a copy of the array's extents.
func (a *Dense) Shape() []int { return slices.Clone(a.shape) }

// Dim returns the extent along axis.
func (a *Dense) Dim(axis int) int { return a.shape[axis] }

// Rank returns the number of axes.
func (a *Dense) Rank() int { return len(a.shape) }

// Size returns the total number of elements.
func (a *Dense) Size() int { return len(a.data) }

// Data returns the backing row-major slice.
func (a *Dense) Data() []float64 { return a.data }

// At returns the element at the given multi-index. It panics if the index has
// the wrong rank or is out of range, like a slice index would.
func (a *Dense) At(idx ...int) float64 {
	return a.data[a.offset(idx)]
}

// Set stores v at the given multi-index.
func (a *Dense) Set(v float64, idx ...int) {
	a.data[a.offset(idx)] = v
}

func (a *Dense) offset(idx []int) int {
	if len(idx) != len(a.shape) {
		panic(fmt.Sprintf("array: index of rank %d into array of rank %d", len(idx), len(a.shape)))
	}
	off := 0
	for i, v := range idx {
		if v < 0 || v >= a.shape[i] {
			panic(fmt.Sprintf("array: index %d out of range [0,%d) on axis %d", v, a.shape[i], i))
		}
		off = off*a.shape[i] + v
	}
	return off
}

// Clone returns a deep copy of the array.
func (a *Dense) Clone() *Dense {
	return &Dense{shape: slices.Clone(a.shape), data: slices.Clone(a.data)}
}

// Crop returns a new array holding the first n entries along axis.
// All other axes keep their extent. n larger than the current extent is an error.
func (a *Dense) Crop(axis, n int) (*Dense, error) {
	if err := errors.ValidateAxis(axis, a.Rank()); err != nil {
		return nil, err
	}
	extent := a.shape[axis]
	if n < 0 || n > extent {
		return nil, errors.New(errors.ErrCodeShapeMismatch, "cannot crop axis %d of extent %d to %d", axis, extent, n)
	}

	outer := 1
	for _, s := range a.shape[:axis] {
		outer *= s
	}
	inner := 1
	for _, s := range a.shape[axis+1:] {
		inner *= s
	}

	shape := slices.Clone(a.shape)
	shape[axis] = n
	out := make([]float64, outer*n*inner)

	src, dst := extent*inner, n*inner
	for o := range outer {
		copy(out[o*dst:(o+1)*dst], a.data[o*src:o*src+dst])
	}
	return &Dense{shape: shape, data: out}, nil
}

type denseJSON struct {
	Shape []int     `json:"shape"`
	Data  []float64 `json:"data"`
}

// MarshalJSON encodes the array as {"shape": [...], "data": [...]}.
func (a *Dense) MarshalJSON() ([]byte, error) {
	data := a.data
	if data == nil {
		data = []float64{}
	}
	return json.Marshal(denseJSON{Shape: a.shape, Data: data})
}

// UnmarshalJSON decodes {"shape": [...], "data": [...]}. A missing shape is
// treated as a 1-D array over data.
func (a *Dense) UnmarshalJSON(b []byte) error {
	var raw denseJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw.Shape == nil {
		raw.Shape = []int{len(raw.Data)}
	}
	d, err := New(raw.Shape, raw.Data)
	if err != nil {
		return err
	}
	*a = *d
	return nil
}
