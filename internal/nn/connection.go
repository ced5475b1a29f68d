package nn

import (
	"fmt"

	"github.com/born-ml/densenet/internal/tensor"
)

// Connection is the learnable affine map between two adjacent layers.
//
// Weights are stored in×out, so weights[i][j] connects source neuron i to
// destination neuron j. Endpoints are indices into the owning Network's
// layer slice.
type Connection struct {
	in      int
	out     int
	weights *tensor.Matrix // [in_size, out_size]
	biases  *tensor.Vector // [out_size]
}

// newConnection joins layers[in] to layers[out]. Weights are initialized
// according to the destination activation, biases start at zero.
func newConnection(layers []*Layer, in, out int, seed uint64) (*Connection, error) {
	src, dst := layers[in], layers[out]

	weights, err := InitWeights(src.Size(), dst.Size(), dst.Activation(), seed)
	if err != nil {
		return nil, fmt.Errorf("connection %d→%d: %w", in, out, err)
	}
	biases, err := tensor.NewVector(dst.Size())
	if err != nil {
		return nil, fmt.Errorf("connection %d→%d: %w", in, out, err)
	}

	return &Connection{
		in:      in,
		out:     out,
		weights: weights,
		biases:  biases,
	}, nil
}

// In returns the index of the source layer.
func (c *Connection) In() int {
	return c.in
}

// Out returns the index of the destination layer.
func (c *Connection) Out() int {
	return c.out
}

// Weights returns a copy of the weight matrix.
func (c *Connection) Weights() *tensor.Matrix {
	return c.weights.Clone()
}

// Biases returns a copy of the bias vector.
func (c *Connection) Biases() *tensor.Vector {
	return c.biases.Clone()
}

// SetWeights replaces the weights with a copy of w.
// w must have exactly the current shape.
func (c *Connection) SetWeights(w *tensor.Matrix) error {
	if w.Shape() != c.weights.Shape() {
		return &tensor.ShapeError{Op: "SetWeights", Want: c.weights.Shape(), Got: w.Shape()}
	}
	c.weights = w.Clone()
	return nil
}

// SetBiases replaces the biases with a copy of b.
// b must have exactly the current length.
func (c *Connection) SetBiases(b *tensor.Vector) error {
	if b.Len() != c.biases.Len() {
		return lengthError("SetBiases", c.biases.Len(), b.Len())
	}
	c.biases = b.Clone()
	return nil
}

// WeightAt returns the weight from source neuron i to destination neuron j.
// Note the argument order: this reads weights[i][j].
func (c *Connection) WeightAt(j, i int) float64 {
	return c.weights.At(i, j)
}

// BiasAt returns the bias of destination neuron i.
func (c *Connection) BiasAt(i int) float64 {
	return c.biases.AtVec(i)
}

// forward computes z = inᵀ·W + b and a = act(z) and stores both in the
// destination layer.
func (c *Connection) forward(layers []*Layer) error {
	src, dst := layers[c.in], layers[c.out]

	products, err := c.weights.Apply(src.activated)
	if err != nil {
		return fmt.Errorf("connection %d→%d: %w", c.in, c.out, err)
	}
	z, err := products.AddVec(c.biases)
	if err != nil {
		return fmt.Errorf("connection %d→%d: %w", c.in, c.out, err)
	}

	dst.unactivated = z
	dst.activated = z.Map(dst.activation.Apply)
	return nil
}
