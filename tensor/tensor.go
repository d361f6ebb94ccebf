// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/mlp/internal/tensor"
)

// Type aliases for public API

// Float is the constraint for supported element types.
type Float = tensor.Float

// DataType represents the element type at runtime.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
)

// Shape represents the dimensions of a matrix or vector.
type Shape = tensor.Shape

// Matrix is a dense row-major matrix.
type Matrix[T Float] = tensor.Matrix[T]

// Errors.
var (
	ErrDimensionMismatch = tensor.ErrDimensionMismatch
	ErrInvalidShape      = tensor.ErrInvalidShape
	ErrEmpty             = tensor.ErrEmpty
)

// NewMatrix creates a zero-filled rows×cols matrix.
func NewMatrix[T Float](rows, cols int) (*Matrix[T], error) {
	return tensor.NewMatrix[T](rows, cols)
}

// FromRows copies a nested slice into a new matrix.
func FromRows[T Float](rows [][]T) (*Matrix[T], error) {
	return tensor.FromRows(rows)
}

// Dot returns the dot product of a and b.
func Dot[T Float](a, b []T) (T, error) {
	return tensor.Dot(a, b)
}

// Apply returns a new slice with fn applied to every element of v.
func Apply[T Float](v []T, fn func(T) T) []T {
	return tensor.Apply(v, fn)
}

// ArgMax returns the index of the largest element (first on ties, -1 if empty).
func ArgMax[T Float](v []T) int {
	return tensor.ArgMax(v)
}

// FromSlice wraps row-major data as a rows×cols matrix without copying.
func FromSlice[T Float](rows, cols int, data []T) (*Matrix[T], error) {
	return tensor.FromSlice(rows, cols, data)
}
