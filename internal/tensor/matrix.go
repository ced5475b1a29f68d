// Package tensor provides the dense float64 matrix and column vector used
// by the network, together with the seeded weight initializers.
//
// Matrices are row-major and have value semantics: every operation that
// returns a matrix allocates a fresh buffer, and constructors that accept a
// slice copy it. Wrap is the single exception and says so in its name.
package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Matrix is a dense rows×cols matrix stored row-major.
//
// Example:
//
//	a, _ := tensor.FromSlice(2, 2, []float64{1, 2, 3, 4})
//	b := a.Transpose()
//	c, _ := a.MatMul(b)
type Matrix struct {
	rows int
	cols int
	data []float64 // len(data) == rows*cols
}

// newMatrix allocates a zeroed matrix. Callers guarantee positive dims.
func newMatrix(rows, cols int) *Matrix {
	return &Matrix{
		rows: rows,
		cols: cols,
		data: make([]float64, rows*cols),
	}
}

// NewMatrix creates a zero-filled rows×cols matrix.
func NewMatrix(rows, cols int) (*Matrix, error) {
	if err := (Shape{rows, cols}).Validate(); err != nil {
		return nil, fmt.Errorf("NewMatrix: %w", err)
	}
	return newMatrix(rows, cols), nil
}

// Full creates a rows×cols matrix with every element set to value.
func Full(rows, cols int, value float64) (*Matrix, error) {
	m, err := NewMatrix(rows, cols)
	if err != nil {
		return nil, err
	}
	for i := range m.data {
		m.data[i] = value
	}
	return m, nil
}

// FromSlice creates a matrix from row-major values.
// The slice is copied into the matrix.
func FromSlice(rows, cols int, values []float64) (*Matrix, error) {
	shape := Shape{rows, cols}
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("FromSlice: %w", err)
	}
	if len(values) != shape.NumElements() {
		return nil, invalidArgument("FromSlice: shape %v requires %d elements, but got %d",
			shape, shape.NumElements(), len(values))
	}
	m := newMatrix(rows, cols)
	copy(m.data, values)
	return m, nil
}

// Wrap creates a matrix that aliases data instead of copying it.
// Writes through either the matrix or the slice are visible to the other.
func Wrap(rows, cols int, data []float64) (*Matrix, error) {
	shape := Shape{rows, cols}
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("Wrap: %w", err)
	}
	if len(data) != shape.NumElements() {
		return nil, invalidArgument("Wrap: shape %v requires %d elements, but got %d",
			shape, shape.NumElements(), len(data))
	}
	return &Matrix{rows: rows, cols: cols, data: data}, nil
}

// Identity creates an n×n identity matrix.
func Identity(n int) (*Matrix, error) {
	m, err := NewMatrix(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int {
	return m.rows
}

// Cols returns the number of columns.
func (m *Matrix) Cols() int {
	return m.cols
}

// Size returns the number of elements.
func (m *Matrix) Size() int {
	return len(m.data)
}

// Shape returns {rows, cols}.
func (m *Matrix) Shape() Shape {
	return Shape{m.rows, m.cols}
}

func (m *Matrix) offset(row, col int) int {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		panic(&IndexError{Row: row, Col: col, Shape: m.Shape()})
	}
	return row*m.cols + col
}

// At returns the element at (row, col).
// It panics with an *IndexError if the position is outside the matrix.
func (m *Matrix) At(row, col int) float64 {
	return m.data[m.offset(row, col)]
}

// Set writes the element at (row, col).
// It panics with an *IndexError if the position is outside the matrix.
func (m *Matrix) Set(row, col int, value float64) {
	m.data[m.offset(row, col)] = value
}

// Row returns a copy of row i.
func (m *Matrix) Row(i int) []float64 {
	start := m.offset(i, 0)
	out := make([]float64, m.cols)
	copy(out, m.data[start:start+m.cols])
	return out
}

// Col returns a copy of column j.
func (m *Matrix) Col(j int) []float64 {
	m.offset(0, j)
	out := make([]float64, m.rows)
	for i := range out {
		out[i] = m.data[i*m.cols+j]
	}
	return out
}

// Values returns a row-major copy of the elements.
func (m *Matrix) Values() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)
	return out
}

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	return &Matrix{rows: m.rows, cols: m.cols, data: m.Values()}
}

// Sum returns the sum of all elements.
func (m *Matrix) Sum() float64 {
	return floats.Sum(m.data)
}

// Zero sets every element to zero.
func (m *Matrix) Zero() {
	for i := range m.data {
		m.data[i] = 0
	}
}

func (m *Matrix) sameShape(op string, other *Matrix) error {
	if m.rows != other.rows || m.cols != other.cols {
		return shapeError(op, m.Shape(), other.Shape())
	}
	return nil
}

// Add returns m + other. Both operands must have the same shape.
func (m *Matrix) Add(other *Matrix) (*Matrix, error) {
	if err := m.sameShape("Add", other); err != nil {
		return nil, err
	}
	out := newMatrix(m.rows, m.cols)
	floats.AddTo(out.data, m.data, other.data)
	return out, nil
}

// Sub returns m - other. Both operands must have the same shape.
func (m *Matrix) Sub(other *Matrix) (*Matrix, error) {
	if err := m.sameShape("Sub", other); err != nil {
		return nil, err
	}
	out := newMatrix(m.rows, m.cols)
	floats.SubTo(out.data, m.data, other.data)
	return out, nil
}

// Hadamard returns the element-wise product of m and other.
func (m *Matrix) Hadamard(other *Matrix) (*Matrix, error) {
	if err := m.sameShape("Hadamard", other); err != nil {
		return nil, err
	}
	out := newMatrix(m.rows, m.cols)
	floats.MulTo(out.data, m.data, other.data)
	return out, nil
}

// Scale returns m * s.
func (m *Matrix) Scale(s float64) *Matrix {
	out := newMatrix(m.rows, m.cols)
	floats.ScaleTo(out.data, s, m.data)
	return out
}

// Div returns m / s. Division by zero is rejected.
func (m *Matrix) Div(s float64) (*Matrix, error) {
	if s == 0 {
		return nil, invalidArgument("Div: division by zero")
	}
	return m.Scale(1 / s), nil
}

// AddInPlace adds other into m.
func (m *Matrix) AddInPlace(other *Matrix) error {
	if err := m.sameShape("AddInPlace", other); err != nil {
		return err
	}
	floats.Add(m.data, other.data)
	return nil
}

// SubInPlace subtracts other from m.
func (m *Matrix) SubInPlace(other *Matrix) error {
	if err := m.sameShape("SubInPlace", other); err != nil {
		return err
	}
	floats.Sub(m.data, other.data)
	return nil
}

// ScaleInPlace multiplies every element of m by s.
func (m *Matrix) ScaleInPlace(s float64) {
	floats.Scale(s, m.data)
}

// dense views m as a gonum matrix sharing the same buffer.
func (m *Matrix) dense() *mat.Dense {
	return mat.NewDense(m.rows, m.cols, m.data)
}

// MatMul returns the matrix product m·other.
//
// Requires m.Cols() == other.Rows(); the result is m.Rows()×other.Cols().
func (m *Matrix) MatMul(other *Matrix) (*Matrix, error) {
	if m.cols != other.rows {
		return nil, shapeError("MatMul", Shape{m.cols, other.cols}, other.Shape())
	}
	out := newMatrix(m.rows, other.cols)
	out.dense().Mul(m.dense(), other.dense())
	return out, nil
}

// Transpose returns a new cols×rows matrix with out[i][j] = m[j][i].
func (m *Matrix) Transpose() *Matrix {
	out := newMatrix(m.cols, m.rows)
	out.dense().Copy(m.dense().T())
	return out
}

// Apply maps a column vector of length Rows() to a vector of length Cols():
//
//	out[c] = Σ_i in[i] * m[i][c]
//
// which is inᵀ·m. Weight matrices are stored in×out, so this is the
// forward affine map without the bias.
func (m *Matrix) Apply(in *Vector) (*Vector, error) {
	if in.cols != 1 || in.rows != m.rows {
		return nil, shapeError("Apply", Shape{m.rows, 1}, in.Shape())
	}
	out := newVector(m.cols)
	mat.NewVecDense(m.cols, out.data).MulVec(m.dense().T(), mat.NewVecDense(in.rows, in.data))
	return out, nil
}

// Equal reports whether m and other have the same shape and elements.
func (m *Matrix) Equal(other *Matrix) bool {
	return m.rows == other.rows && m.cols == other.cols && floats.Equal(m.data, other.data)
}

// EqualApprox reports whether m and other have the same shape and every
// pair of elements differs by at most tol.
func (m *Matrix) EqualApprox(other *Matrix, tol float64) bool {
	return m.rows == other.rows && m.cols == other.cols && floats.EqualApprox(m.data, other.data, tol)
}

// String renders the matrix as an aligned table.
func (m *Matrix) String() string {
	return fmt.Sprintf("%v", mat.Formatted(m.dense(), mat.Squeeze()))
}
