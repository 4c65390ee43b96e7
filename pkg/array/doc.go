// Package array provides a small n-dimensional array type and alignment helpers.
//
// # Overview
//
// [Dense] stores float64 values in row-major order with an arbitrary number of
// axes. It is deliberately minimal: construction, indexing, cropping and JSON
// encoding. Matrix algebra belongs to gonum; see [CropMatrices] for the gonum
// flavoured helper.
//
// # Alignment
//
// [CropToMinSize] brings a set of arrays to a common extent along one axis by
// truncating each of them to the smallest extent present:
//
//	a := array.Zeros(5, 3)
//	b := array.Zeros(4, 3)
//	out, err := array.CropToMinSize([]*array.Dense{a, b}, 0)
//	// out[0] and out[1] now both have shape [4 3]
//
// # JSON
//
// Arrays encode as {"shape": [...], "data": [...]}, which is the format used by
// the crop command and the HTTP API.
package array
