package nn

import (
	"fmt"

	"github.com/born-ml/densenet/internal/tensor"
)

// ConnectionParams pairs a weight matrix with a bias vector for one
// connection. Backpropagate uses it for parameter deltas, TakeStep and
// UpdateParameters for the parameters themselves.
type ConnectionParams struct {
	Weights *tensor.Matrix // [in_size, out_size]
	Biases  *tensor.Vector // [out_size]
}

// squaredResidual returns Σ(expected - predicted)².
func squaredResidual(expected, predicted *tensor.Vector) float64 {
	diff, err := expected.SubVec(predicted)
	if err != nil {
		panic(err)
	}
	ssr, _ := diff.Dot(diff)
	return ssr
}

// outputSensitivity returns δ for the output layer under the loss
// E = Σ(expected - predicted)²:
//
//	δ[i] = -2(expected[i] - predicted[i]) · act'(z[i])
func (n *Network) outputSensitivity(expected *tensor.Vector) *tensor.Vector {
	last := n.layers[len(n.layers)-1]

	delta := last.derivatives()
	for i := 0; i < last.Size(); i++ {
		dE := -2 * (expected.AtVec(i) - last.ActivatedAt(i))
		delta.SetVec(i, dE*delta.AtVec(i))
	}
	return delta
}

// errorSensitivity returns δ for hidden layer l given δ of layer l+1:
//
//	δ_l[i] = act'(z_l[i]) · Σ_j δ_{l+1}[j] · W_l(j, i)
func (n *Network) errorSensitivity(l int, next *tensor.Vector) (*tensor.Vector, error) {
	if l < 0 || l >= len(n.layers)-1 {
		panic(&tensor.IndexError{Row: l, Col: 0, Shape: tensor.Shape{len(n.layers) - 1, 1}})
	}
	conn := n.connections[l]
	current, following := n.layers[l], n.layers[l+1]

	if next.Len() != following.Size() {
		return nil, lengthError("errorSensitivity", following.Size(), next.Len())
	}

	delta := current.derivatives()
	for i := 0; i < current.Size(); i++ {
		var sum float64
		for j := 0; j < following.Size(); j++ {
			sum += next.AtVec(j) * conn.WeightAt(j, i)
		}
		delta.SetVec(i, sum*delta.AtVec(i))
	}
	return delta, nil
}

// gradientStep scales the gradient of the connection feeding a layer with
// sensitivity delta by the learning rate.
func gradientStep(prev *Layer, delta *tensor.Vector, learningRate float64) ConnectionParams {
	weights := prev.activated.Outer(delta)
	weights.ScaleInPlace(learningRate)
	return ConnectionParams{
		Weights: weights,
		Biases:  delta.ScaleVec(learningRate),
	}
}

// Backpropagate computes the learning-rate-scaled parameter deltas for the
// example currently held by the network.
//
// ForwardPropagate must have run for the matching input. The deltas are
// returned in connection order together with the example's sum of squared
// residuals. Parameters are not modified.
func (n *Network) Backpropagate(expected *tensor.Vector, learningRate float64) ([]ConnectionParams, float64, error) {
	if expected.Len() != n.OutputSize() {
		return nil, 0, fmt.Errorf("Backpropagate: %w", lengthError("expected", n.OutputSize(), expected.Len()))
	}

	last := len(n.layers) - 1
	loss := squaredResidual(expected, n.layers[last].activated)

	deltas := make([]ConnectionParams, len(n.connections))

	delta := n.outputSensitivity(expected)
	deltas[last-1] = gradientStep(n.layers[last-1], delta, learningRate)

	for l := last - 1; l >= 1; l-- {
		var err error
		delta, err = n.errorSensitivity(l, delta)
		if err != nil {
			return nil, 0, fmt.Errorf("Backpropagate: layer %d: %w", l, err)
		}
		deltas[l-1] = gradientStep(n.layers[l-1], delta, learningRate)
	}

	return deltas, loss, nil
}

func (n *Network) checkParams(op string, params []ConnectionParams) error {
	if len(params) != len(n.connections) {
		return fmt.Errorf("%s: %w: got %d entries for %d connections",
			op, ErrInvalidArgument, len(params), len(n.connections))
	}
	for i, p := range params {
		conn := n.connections[i]
		if p.Weights == nil || p.Biases == nil {
			return fmt.Errorf("%s: connection %d: %w: missing weights or biases", op, i, ErrInvalidArgument)
		}
		if p.Weights.Shape() != conn.weights.Shape() {
			return fmt.Errorf("%s: connection %d: %w", op, i,
				&tensor.ShapeError{Op: "weights", Want: conn.weights.Shape(), Got: p.Weights.Shape()})
		}
		if p.Biases.Len() != conn.biases.Len() {
			return fmt.Errorf("%s: connection %d: %w", op, i, lengthError("biases", conn.biases.Len(), p.Biases.Len()))
		}
	}
	return nil
}

// TakeStep returns the parameters after one gradient-descent step:
// current - delta for every connection. The deltas are already scaled by
// the learning rate and are not scaled again. The network is not modified.
func (n *Network) TakeStep(deltas []ConnectionParams) ([]ConnectionParams, error) {
	if err := n.checkParams("TakeStep", deltas); err != nil {
		return nil, err
	}

	params := make([]ConnectionParams, len(n.connections))
	for i, conn := range n.connections {
		weights, err := conn.weights.Sub(deltas[i].Weights)
		if err != nil {
			return nil, fmt.Errorf("TakeStep: connection %d: %w", i, err)
		}
		biases, err := conn.biases.SubVec(deltas[i].Biases)
		if err != nil {
			return nil, fmt.Errorf("TakeStep: connection %d: %w", i, err)
		}
		params[i] = ConnectionParams{Weights: weights, Biases: biases}
	}
	return params, nil
}

// UpdateParameters replaces every connection's weights and biases.
// All entries are validated before any connection is written.
func (n *Network) UpdateParameters(params []ConnectionParams) error {
	if err := n.checkParams("UpdateParameters", params); err != nil {
		return err
	}
	for i, conn := range n.connections {
		conn.weights = params[i].Weights.Clone()
		conn.biases = params[i].Biases.Clone()
	}
	return nil
}

// Parameters returns copies of every connection's weights and biases.
func (n *Network) Parameters() []ConnectionParams {
	params := make([]ConnectionParams, len(n.connections))
	for i, conn := range n.connections {
		params[i] = ConnectionParams{Weights: conn.Weights(), Biases: conn.Biases()}
	}
	return params
}
