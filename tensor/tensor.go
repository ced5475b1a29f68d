// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/densenet/internal/tensor"
)

// Matrix is a dense row-major float64 matrix.
type Matrix = tensor.Matrix

// Vector is a column vector (a Matrix with one column).
type Vector = tensor.Vector

// Shape holds matrix dimensions as {rows, cols}.
type Shape = tensor.Shape

// ShapeError describes a dimension mismatch.
type ShapeError = tensor.ShapeError

// IndexError is the panic value for out-of-bounds element access.
type IndexError = tensor.IndexError

// Error kinds.
var (
	ErrInvalidArgument = tensor.ErrInvalidArgument
	ErrShapeMismatch   = tensor.ErrShapeMismatch
	ErrOutOfRange      = tensor.ErrOutOfRange
)

// NewMatrix creates a zero-filled rows×cols matrix.
func NewMatrix(rows, cols int) (*Matrix, error) {
	return tensor.NewMatrix(rows, cols)
}

// Full creates a rows×cols matrix filled with value.
func Full(rows, cols int, value float64) (*Matrix, error) {
	return tensor.Full(rows, cols, value)
}

// FromSlice creates a matrix from a copy of row-major values.
//
// Example:
//
//	m, _ := tensor.FromSlice(2, 3, []float64{1, 2, 3, 4, 5, 6})
func FromSlice(rows, cols int, values []float64) (*Matrix, error) {
	return tensor.FromSlice(rows, cols, values)
}

// Wrap creates a matrix that aliases data without copying.
func Wrap(rows, cols int, data []float64) (*Matrix, error) {
	return tensor.Wrap(rows, cols, data)
}

// Identity creates an n×n identity matrix.
func Identity(n int) (*Matrix, error) {
	return tensor.Identity(n)
}

// NewVector creates a zero-filled vector of length n.
func NewVector(n int) (*Vector, error) {
	return tensor.NewVector(n)
}

// FullVector creates a vector of length n filled with value.
func FullVector(n int, value float64) (*Vector, error) {
	return tensor.FullVector(n, value)
}

// VectorFrom creates a vector from a copy of values.
func VectorFrom(values ...float64) (*Vector, error) {
	return tensor.VectorFrom(values...)
}

// MustVector is like VectorFrom but panics on an empty argument list.
//
// Example:
//
//	x := tensor.MustVector(0, 1)
func MustVector(values ...float64) *Vector {
	return tensor.MustVector(values...)
}

// AsVector copies a single-column matrix into a Vector.
func AsVector(m *Matrix) (*Vector, error) {
	return tensor.AsVector(m)
}

// Initializers

// Xavier returns an inCount×outCount matrix drawn uniformly from
// [-sqrt(6/(in+out)), sqrt(6/(in+out))].
func Xavier(inCount, outCount int, seed uint64) (*Matrix, error) {
	return tensor.Xavier(inCount, outCount, seed)
}

// Kaiming returns an inCount×outCount matrix drawn from N(0, 2/in).
func Kaiming(inCount, outCount int, seed uint64) (*Matrix, error) {
	return tensor.Kaiming(inCount, outCount, seed)
}
