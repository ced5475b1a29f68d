package tensor

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMatrix(t *testing.T, rows, cols int, values ...float64) *Matrix {
	t.Helper()
	m, err := FromSlice(rows, cols, values)
	require.NoError(t, err)
	return m
}

func randomMatrix(rng *rand.Rand, rows, cols int) *Matrix {
	m := newMatrix(rows, cols)
	for i := range m.data {
		m.data[i] = rng.Float64()*2 - 1
	}
	return m
}

func TestNewMatrix(t *testing.T) {
	m, err := NewMatrix(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.Equal(t, 6, m.Size())
	assert.Equal(t, Shape{2, 3}, m.Shape())
	assert.Zero(t, m.Sum())

	for _, dims := range [][2]int{{0, 1}, {1, 0}, {-1, 2}} {
		_, err := NewMatrix(dims[0], dims[1])
		assert.ErrorIs(t, err, ErrInvalidArgument, "dims %v", dims)
	}
}

func TestFromSlice_Copies(t *testing.T) {
	src := []float64{1, 2, 3, 4}
	m := mustMatrix(t, 2, 2, src...)
	src[0] = 100

	assert.Equal(t, 1.0, m.At(0, 0))

	_, err := FromSlice(2, 2, []float64{1, 2, 3})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestWrap_Aliases(t *testing.T) {
	buf := []float64{1, 2, 3, 4, 5, 6}
	m, err := Wrap(2, 3, buf)
	require.NoError(t, err)

	buf[4] = 50
	assert.Equal(t, 50.0, m.At(1, 1))

	m.Set(0, 2, -3)
	assert.Equal(t, -3.0, buf[2])

	_, err = Wrap(3, 3, buf)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestClone_Independent(t *testing.T) {
	m := mustMatrix(t, 1, 2, 1, 2)
	c := m.Clone()
	c.Set(0, 0, 9)

	assert.Equal(t, 1.0, m.At(0, 0))
	assert.Equal(t, 9.0, c.At(0, 0))
}

func TestAt_OutOfRangePanics(t *testing.T) {
	m := mustMatrix(t, 2, 2, 1, 2, 3, 4)

	for _, pos := range [][2]int{{2, 0}, {0, 2}, {-1, 0}, {0, -1}, {1, 2}} {
		func() {
			defer func() {
				r := recover()
				require.NotNil(t, r, "pos %v", pos)
				err, ok := r.(error)
				require.True(t, ok)
				assert.ErrorIs(t, err, ErrOutOfRange)
			}()
			m.At(pos[0], pos[1])
		}()
	}
}

func TestRowCol(t *testing.T) {
	m := mustMatrix(t, 2, 3, 1, 2, 3, 4, 5, 6)
	assert.Equal(t, []float64{4, 5, 6}, m.Row(1))
	assert.Equal(t, []float64{2, 5}, m.Col(1))
}

func TestElementwise(t *testing.T) {
	a := mustMatrix(t, 2, 2, 1, 2, 3, 4)
	b := mustMatrix(t, 2, 2, 5, 6, 7, 8)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{6, 8, 10, 12}, sum.Values())

	diff, err := b.Sub(a)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 4, 4, 4}, diff.Values())

	prod, err := a.Hadamard(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 12, 21, 32}, prod.Values())

	assert.Equal(t, []float64{2, 4, 6, 8}, a.Scale(2).Values())

	half, err := a.Div(2)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.5, 1, 1.5, 2}, half.Values(), 1e-12)

	_, err = a.Div(0)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	// operands untouched
	assert.Equal(t, []float64{1, 2, 3, 4}, a.Values())
}

func TestElementwise_ShapeMismatch(t *testing.T) {
	a := mustMatrix(t, 2, 2, 1, 2, 3, 4)
	b := mustMatrix(t, 1, 4, 1, 2, 3, 4)

	_, err := a.Add(b)
	assert.ErrorIs(t, err, ErrShapeMismatch)
	_, err = a.Sub(b)
	assert.ErrorIs(t, err, ErrShapeMismatch)
	_, err = a.Hadamard(b)
	assert.ErrorIs(t, err, ErrShapeMismatch)
	assert.ErrorIs(t, a.AddInPlace(b), ErrShapeMismatch)
	assert.ErrorIs(t, a.SubInPlace(b), ErrShapeMismatch)

	var shapeErr *ShapeError
	_, err = a.Add(b)
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, "Add", shapeErr.Op)
	assert.Equal(t, Shape{1, 4}, shapeErr.Got)

	assert.Equal(t, []float64{1, 2, 3, 4}, a.Values())
}

func TestInPlace(t *testing.T) {
	a := mustMatrix(t, 1, 3, 1, 2, 3)
	b := mustMatrix(t, 1, 3, 1, 1, 1)

	require.NoError(t, a.AddInPlace(b))
	assert.Equal(t, []float64{2, 3, 4}, a.Values())

	require.NoError(t, a.SubInPlace(b))
	assert.Equal(t, []float64{1, 2, 3}, a.Values())

	a.ScaleInPlace(-1)
	assert.Equal(t, []float64{-1, -2, -3}, a.Values())

	a.Zero()
	assert.Equal(t, []float64{0, 0, 0}, a.Values())
}

func TestMatMul(t *testing.T) {
	a := mustMatrix(t, 2, 3, 1, 2, 3, 4, 5, 6)
	b := mustMatrix(t, 3, 2, 7, 8, 9, 10, 11, 12)

	c, err := a.MatMul(b)
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 2}, c.Shape())
	assert.Equal(t, []float64{58, 64, 139, 154}, c.Values())

	_, err = a.MatMul(a)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestMatMul_Identity(t *testing.T) {
	a := mustMatrix(t, 2, 3, 1, 2, 3, 4, 5, 6)
	id, err := Identity(3)
	require.NoError(t, err)

	c, err := a.MatMul(id)
	require.NoError(t, err)
	assert.True(t, c.Equal(a))
}

func TestAssociativity(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	for trial := 0; trial < 20; trial++ {
		a := randomMatrix(rng, 3, 4)
		b := randomMatrix(rng, 3, 4)
		c := randomMatrix(rng, 3, 4)

		ab, _ := a.Add(b)
		left, _ := ab.Add(c)
		bc, _ := b.Add(c)
		right, _ := a.Add(bc)
		assert.True(t, left.EqualApprox(right, 1e-12), "addition trial %d", trial)

		x := randomMatrix(rng, 2, 3)
		y := randomMatrix(rng, 3, 4)
		z := randomMatrix(rng, 4, 5)

		xy, err := x.MatMul(y)
		require.NoError(t, err)
		xyz1, err := xy.MatMul(z)
		require.NoError(t, err)
		yz, err := y.MatMul(z)
		require.NoError(t, err)
		xyz2, err := x.MatMul(yz)
		require.NoError(t, err)
		assert.True(t, xyz1.EqualApprox(xyz2, 1e-9), "multiplication trial %d", trial)
	}
}

func TestTranspose(t *testing.T) {
	m := mustMatrix(t, 2, 3, 1, 2, 3, 4, 5, 6)
	tr := m.Transpose()

	assert.Equal(t, Shape{3, 2}, tr.Shape())
	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			assert.Equal(t, m.At(j, i), tr.At(i, j))
		}
	}

	rng := rand.New(rand.NewPCG(3, 4))
	for _, dims := range [][2]int{{1, 1}, {1, 5}, {4, 1}, {3, 7}} {
		r := randomMatrix(rng, dims[0], dims[1])
		assert.True(t, r.Transpose().Transpose().Equal(r), "dims %v", dims)
	}
}

func TestApply(t *testing.T) {
	// W = [[1, 2],
	//      [3, 4]]
	// inᵀ·W with in = [5, 6] gives [5*1+6*3, 5*2+6*4] = [23, 34]
	w := mustMatrix(t, 2, 2, 1, 2, 3, 4)
	in := MustVector(5, 6)

	out, err := w.Apply(in)
	require.NoError(t, err)
	assert.Equal(t, []float64{23, 34}, out.Values())

	// explicit summation against a non-square matrix
	w2 := mustMatrix(t, 3, 2, 1, -1, 0.5, 2, -3, 0)
	in2 := MustVector(2, 4, 1)
	out2, err := w2.Apply(in2)
	require.NoError(t, err)
	for c := 0; c < w2.Cols(); c++ {
		want := 0.0
		for i := 0; i < w2.Rows(); i++ {
			want += in2.AtVec(i) * w2.At(i, c)
		}
		assert.InDelta(t, want, out2.AtVec(c), 1e-12)
	}
}

func TestApply_ShapeMismatch(t *testing.T) {
	w := mustMatrix(t, 2, 3, 1, 2, 3, 4, 5, 6)

	_, err := w.Apply(MustVector(1, 2, 3))
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestString(t *testing.T) {
	m := mustMatrix(t, 2, 2, 1, 2, 3, 4)
	s := m.String()
	assert.Contains(t, s, "1")
	assert.Contains(t, s, "4")
}
