package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Vector is a column vector: a Matrix with exactly one column.
type Vector struct {
	Matrix
}

func newVector(n int) *Vector {
	return &Vector{Matrix: Matrix{rows: n, cols: 1, data: make([]float64, n)}}
}

// NewVector creates a zero-filled vector of length n.
func NewVector(n int) (*Vector, error) {
	if n <= 0 {
		return nil, invalidArgument("NewVector: length %d (must be > 0)", n)
	}
	return newVector(n), nil
}

// FullVector creates a vector of length n with every element set to value.
func FullVector(n int, value float64) (*Vector, error) {
	v, err := NewVector(n)
	if err != nil {
		return nil, err
	}
	for i := range v.data {
		v.data[i] = value
	}
	return v, nil
}

// VectorFrom creates a vector holding a copy of values.
//
// Example:
//
//	x, _ := tensor.VectorFrom(0, 1)
func VectorFrom(values ...float64) (*Vector, error) {
	v, err := NewVector(len(values))
	if err != nil {
		return nil, err
	}
	copy(v.data, values)
	return v, nil
}

// MustVector is like VectorFrom but panics on an empty argument list.
// It is meant for literals in programs and tests.
func MustVector(values ...float64) *Vector {
	v, err := VectorFrom(values...)
	if err != nil {
		panic(err)
	}
	return v
}

// AsVector copies a single-column matrix into a Vector.
func AsVector(m *Matrix) (*Vector, error) {
	if m.cols != 1 {
		return nil, shapeError("AsVector", Shape{m.rows, 1}, m.Shape())
	}
	return &Vector{Matrix: *m.Clone()}, nil
}

// Len returns the number of elements.
func (v *Vector) Len() int {
	return v.rows
}

// AtVec returns element i.
func (v *Vector) AtVec(i int) float64 {
	return v.At(i, 0)
}

// SetVec writes element i.
func (v *Vector) SetVec(i int, value float64) {
	v.Set(i, 0, value)
}

// Clone returns a deep copy.
func (v *Vector) Clone() *Vector {
	return &Vector{Matrix: *v.Matrix.Clone()}
}

// AddVec returns v + other.
func (v *Vector) AddVec(other *Vector) (*Vector, error) {
	if v.rows != other.rows {
		return nil, shapeError("AddVec", v.Shape(), other.Shape())
	}
	out := newVector(v.rows)
	floats.AddTo(out.data, v.data, other.data)
	return out, nil
}

// SubVec returns v - other.
func (v *Vector) SubVec(other *Vector) (*Vector, error) {
	if v.rows != other.rows {
		return nil, shapeError("SubVec", v.Shape(), other.Shape())
	}
	out := newVector(v.rows)
	floats.SubTo(out.data, v.data, other.data)
	return out, nil
}

// ScaleVec returns v * s.
func (v *Vector) ScaleVec(s float64) *Vector {
	out := newVector(v.rows)
	floats.ScaleTo(out.data, s, v.data)
	return out
}

// Dot returns the inner product of v and other.
func (v *Vector) Dot(other *Vector) (float64, error) {
	if v.rows != other.rows {
		return 0, shapeError("Dot", v.Shape(), other.Shape())
	}
	return floats.Dot(v.data, other.data), nil
}

// Outer returns v·otherᵀ, a Len()×other.Len() matrix.
func (v *Vector) Outer(other *Vector) *Matrix {
	out := newMatrix(v.rows, other.rows)
	for i, a := range v.data {
		row := out.data[i*out.cols : (i+1)*out.cols]
		floats.ScaleTo(row, a, other.data)
	}
	return out
}

// Map returns a vector with f applied to every element.
func (v *Vector) Map(f func(float64) float64) *Vector {
	out := newVector(v.rows)
	for i, x := range v.data {
		out.data[i] = f(x)
	}
	return out
}

// String renders the vector as a bracketed list.
func (v *Vector) String() string {
	return fmt.Sprintf("%v", v.data)
}
