package nn

import (
	"fmt"

	"github.com/born-ml/densenet/internal/tensor"
)

// LayerSpec describes one layer when building a Network.
type LayerSpec struct {
	Neurons    int        // Number of neurons (> 0)
	Activation Activation // Nonlinearity applied to every neuron
}

// Dense is shorthand for LayerSpec{Neurons: n, Activation: act}.
//
// Example:
//
//	net, err := nn.New(42, []nn.LayerSpec{
//	    nn.Dense(2, nn.Linear()),
//	    nn.Dense(8, nn.Tanh()),
//	    nn.Dense(1, nn.Sigmoid()),
//	})
func Dense(n int, act Activation) LayerSpec {
	return LayerSpec{Neurons: n, Activation: act}
}

// Layer is a group of neurons sharing one activation.
//
// It caches the values of the last forward pass: the affine sums
// (unactivated) and the activation outputs (activated). Both start at zero.
// For the input layer only the activated values are meaningful.
type Layer struct {
	size        int
	activation  Activation
	activated   *tensor.Vector
	unactivated *tensor.Vector
}

// NewLayer creates a layer with n neurons.
//
// Returns an error wrapping ErrInvalidArgument if n < 1 or the activation
// is unset.
func NewLayer(n int, act Activation) (*Layer, error) {
	if n < 1 {
		return nil, fmt.Errorf("NewLayer: %w: neuron count %d (must be > 0)", ErrInvalidArgument, n)
	}
	if err := act.Validate(); err != nil {
		return nil, fmt.Errorf("NewLayer: %w", err)
	}

	activated, _ := tensor.NewVector(n)
	unactivated, _ := tensor.NewVector(n)
	return &Layer{
		size:        n,
		activation:  act,
		activated:   activated,
		unactivated: unactivated,
	}, nil
}

// Size returns the neuron count.
func (l *Layer) Size() int {
	return l.size
}

// Activation returns the layer's activation.
func (l *Layer) Activation() Activation {
	return l.activation
}

// Activated returns a copy of the post-activation values.
func (l *Layer) Activated() *tensor.Vector {
	return l.activated.Clone()
}

// Unactivated returns a copy of the pre-activation values.
func (l *Layer) Unactivated() *tensor.Vector {
	return l.unactivated.Clone()
}

// ActivatedAt returns the post-activation value of neuron i.
func (l *Layer) ActivatedAt(i int) float64 {
	return l.activated.AtVec(i)
}

// UnactivatedAt returns the pre-activation value of neuron i.
func (l *Layer) UnactivatedAt(i int) float64 {
	return l.unactivated.AtVec(i)
}

// SetActivated copies v into the post-activation values.
func (l *Layer) SetActivated(v *tensor.Vector) error {
	if v.Len() != l.size {
		return lengthError("SetActivated", l.size, v.Len())
	}
	l.activated = v.Clone()
	return nil
}

// SetUnactivated copies v into the pre-activation values.
func (l *Layer) SetUnactivated(v *tensor.Vector) error {
	if v.Len() != l.size {
		return lengthError("SetUnactivated", l.size, v.Len())
	}
	l.unactivated = v.Clone()
	return nil
}

// Clear zeroes both cached vectors.
func (l *Layer) Clear() {
	l.activated.Zero()
	l.unactivated.Zero()
}

// derivatives returns act'(z) for every cached pre-activation value z.
func (l *Layer) derivatives() *tensor.Vector {
	return l.unactivated.Map(l.activation.Derivative)
}

func (l *Layer) String() string {
	return fmt.Sprintf("%d(%v)", l.size, l.activation)
}
