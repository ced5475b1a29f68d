// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the dense matrix and column vector used by the
// densenet engine.
//
// # Overview
//
// This package provides:
//   - Matrix: row-major float64 matrix with value semantics
//   - Vector: single-column Matrix indexed by one coordinate
//   - Xavier and Kaiming initializers driven by a deterministic seed
//   - Error kinds: ErrInvalidArgument, ErrShapeMismatch, ErrOutOfRange
//
// # Basic Usage
//
//	import "github.com/born-ml/densenet/tensor"
//
//	func main() {
//	    w, _ := tensor.FromSlice(2, 2, []float64{1, 2, 3, 4})
//	    x := tensor.MustVector(1, 1)
//
//	    // xᵀ·W, the forward map used by network connections
//	    y, _ := w.Apply(x)
//	}
//
// # Ownership
//
// Constructors copy their input and every operation returns a fresh
// value, except Wrap, which aliases the caller's slice.
//
// # Errors
//
// Shape and argument problems are returned as errors that match
// ErrShapeMismatch or ErrInvalidArgument with errors.Is. Element access
// outside a matrix panics with an *IndexError matching ErrOutOfRange.
package tensor
