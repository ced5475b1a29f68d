package nn_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"

	"github.com/born-ml/densenet/internal/nn"
	"github.com/born-ml/densenet/internal/tensor"
)

// flatten concatenates every weight and bias into one slice.
func flatten(params []nn.ConnectionParams) []float64 {
	var out []float64
	for _, p := range params {
		out = append(out, p.Weights.Values()...)
		out = append(out, p.Biases.Values()...)
	}
	return out
}

// unflatten is the inverse of flatten, shaped like the network's parameters.
func unflatten(t *testing.T, net *nn.Network, theta []float64) []nn.ConnectionParams {
	params := make([]nn.ConnectionParams, len(net.Connections()))
	pos := 0
	for i, c := range net.Connections() {
		shape := c.Weights().Shape()
		w, err := tensor.FromSlice(shape.Rows(), shape.Cols(), theta[pos:pos+shape.NumElements()])
		require.NoError(t, err)
		pos += shape.NumElements()

		n := c.Biases().Len()
		b, err := tensor.VectorFrom(theta[pos : pos+n]...)
		require.NoError(t, err)
		pos += n

		params[i] = nn.ConnectionParams{Weights: w, Biases: b}
	}
	return params
}

func TestBackpropagate_GradientCheck(t *testing.T) {
	topologies := [][]nn.LayerSpec{
		{nn.Dense(2, nn.Linear()), nn.Dense(3, nn.Tanh()), nn.Dense(2, nn.Sigmoid())},
		{nn.Dense(3, nn.Linear()), nn.Dense(4, nn.LeakyReLU(0.1)), nn.Dense(3, nn.Tanh()), nn.Dense(1, nn.Linear())},
		{nn.Dense(2, nn.Linear()), nn.Dense(2, nn.Sigmoid())},
	}

	for ti, topology := range topologies {
		net := mustNetwork(t, 7, topology...)

		input := make([]float64, net.InputSize())
		expected := make([]float64, net.OutputSize())
		for i := range input {
			input[i] = 0.3*float64(i) - 0.4
		}
		for i := range expected {
			expected[i] = 0.2 + 0.5*float64(i)
		}
		x := tensor.MustVector(input...)
		y := tensor.MustVector(expected...)

		theta0 := flatten(net.Parameters())

		loss := func(theta []float64) float64 {
			require.NoError(t, net.UpdateParameters(unflatten(t, net, theta)))
			require.NoError(t, net.SetInput(x))
			net.ForwardPropagate()
			out := net.Output()
			var sum float64
			for i := 0; i < out.Len(); i++ {
				d := y.AtVec(i) - out.AtVec(i)
				sum += d * d
			}
			return sum
		}

		numeric := fd.Gradient(nil, loss, theta0, &fd.Settings{Formula: fd.Central, Step: 1e-5})

		require.NoError(t, net.UpdateParameters(unflatten(t, net, theta0)))
		require.NoError(t, net.SetInput(x))
		net.ForwardPropagate()

		// with a unit learning rate the deltas are the gradient itself
		deltas, ssr, err := net.Backpropagate(y, 1)
		require.NoError(t, err)
		assert.InDelta(t, loss(theta0), ssr, 1e-12)

		analytic := flatten(deltas)
		require.Len(t, analytic, len(numeric))
		for i := range numeric {
			assert.InDelta(t, numeric[i], analytic[i], 1e-3, "topology %d parameter %d", ti, i)
		}
	}
}

func TestBackpropagate_ScalesByLearningRate(t *testing.T) {
	net := mustNetwork(t, 5, xorSpecs()...)
	require.NoError(t, net.SetInput(tensor.MustVector(1, 0)))
	net.ForwardPropagate()

	unit, ssr1, err := net.Backpropagate(tensor.MustVector(1), 1)
	require.NoError(t, err)
	scaled, ssr2, err := net.Backpropagate(tensor.MustVector(1), 0.25)
	require.NoError(t, err)

	assert.Equal(t, ssr1, ssr2)
	for i := range unit {
		assert.True(t, unit[i].Weights.Scale(0.25).EqualApprox(scaled[i].Weights, 1e-15))
		assert.True(t, unit[i].Biases.Scale(0.25).EqualApprox(&scaled[i].Biases.Matrix, 1e-15))
	}
}

func TestBackpropagate_OutputLayerSensitivity(t *testing.T) {
	net := mustNetwork(t, 1, nn.Dense(1, nn.Linear()), nn.Dense(1, nn.Sigmoid()))

	w, _ := tensor.FromSlice(1, 1, []float64{0.5})
	require.NoError(t, net.UpdateParameters([]nn.ConnectionParams{{Weights: w, Biases: tensor.MustVector(0.1)}}))
	require.NoError(t, net.SetInput(tensor.MustVector(2)))
	net.ForwardPropagate()

	z := 0.5*2 + 0.1
	s := 1 / (1 + math.Exp(-z))
	delta := -2 * (1 - s) * s * (1 - s)

	deltas, ssr, err := net.Backpropagate(tensor.MustVector(1), 0.1)
	require.NoError(t, err)
	assert.InDelta(t, (1-s)*(1-s), ssr, 1e-12)
	assert.InDelta(t, 0.1*delta*2, deltas[0].Weights.At(0, 0), 1e-12)
	assert.InDelta(t, 0.1*delta, deltas[0].Biases.AtVec(0), 1e-12)
}

func TestBackpropagate_ShapeMismatch(t *testing.T) {
	net := mustNetwork(t, 1, xorSpecs()...)
	_, _, err := net.Backpropagate(tensor.MustVector(1, 2), 0.1)
	assert.ErrorIs(t, err, nn.ErrShapeMismatch)
}

func TestTakeStep(t *testing.T) {
	net := mustNetwork(t, 3, xorSpecs()...)
	before := net.Parameters()

	require.NoError(t, net.SetInput(tensor.MustVector(0, 1)))
	net.ForwardPropagate()
	deltas, _, err := net.Backpropagate(tensor.MustVector(1), 0.5)
	require.NoError(t, err)

	next, err := net.TakeStep(deltas)
	require.NoError(t, err)

	// TakeStep does not apply anything
	assertSameParams(t, before, net.Parameters())

	for i := range next {
		want, err := before[i].Weights.Sub(deltas[i].Weights)
		require.NoError(t, err)
		assert.True(t, want.Equal(next[i].Weights))

		wantB, err := before[i].Biases.SubVec(deltas[i].Biases)
		require.NoError(t, err)
		assert.Equal(t, wantB.Values(), next[i].Biases.Values())
	}

	require.NoError(t, net.UpdateParameters(next))
	assertSameParams(t, next, net.Parameters())
}

func TestTakeStep_Invalid(t *testing.T) {
	net := mustNetwork(t, 3, xorSpecs()...)
	params := net.Parameters()

	_, err := net.TakeStep(params[:2])
	assert.ErrorIs(t, err, nn.ErrInvalidArgument)

	bad := net.Parameters()
	bad[1].Biases = tensor.MustVector(1, 2)
	_, err = net.TakeStep(bad)
	assert.ErrorIs(t, err, nn.ErrShapeMismatch)
}

func TestUpdateParameters_ValidatesBeforeWriting(t *testing.T) {
	net := mustNetwork(t, 3, xorSpecs()...)
	before := net.Parameters()

	update := net.Parameters()
	update[0].Weights.ScaleInPlace(2)
	w, _ := tensor.NewMatrix(8, 2)
	update[2].Weights = w // wrong shape, should be 8×1

	err := net.UpdateParameters(update)
	assert.ErrorIs(t, err, nn.ErrShapeMismatch)
	assertSameParams(t, before, net.Parameters())

	update[2].Weights = nil
	assert.ErrorIs(t, net.UpdateParameters(update), nn.ErrInvalidArgument)
	assertSameParams(t, before, net.Parameters())
}
