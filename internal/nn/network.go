package nn

import (
	"fmt"
	"strings"

	"github.com/born-ml/densenet/internal/tensor"
)

// Config holds construction options for a Network.
type Config struct {
	Seed   uint64      // Seed for weight initialization
	Layers []LayerSpec // Ordered layer specs, input first (at least 2)

	// SharedSeed initializes every connection from Seed itself instead of
	// a per-connection derived seed. Connections of the same shape then
	// start with identical weights.
	SharedSeed bool
}

// Network is a fully connected feed-forward network.
//
// Layers are joined by one Connection per adjacent pair. The topology is
// fixed at construction; only activations, weights and biases change.
// A Network is not safe for concurrent use.
//
// Example:
//
//	net, _ := nn.New(42, []nn.LayerSpec{
//	    nn.Dense(2, nn.Linear()),
//	    nn.Dense(8, nn.Tanh()),
//	    nn.Dense(1, nn.Sigmoid()),
//	})
//	metrics, _ := net.Train(features, labels, nn.TrainConfig{LearningRate: 0.05, Epochs: 1000})
//	y, _ := net.Predict(x)
type Network struct {
	layers      []*Layer
	connections []*Connection
	seed        uint64
}

// New creates a network from seed and an ordered list of layer specs.
//
// Returns an error wrapping ErrInvalidArgument if fewer than two layers
// are given or any layer spec is invalid.
func New(seed uint64, specs []LayerSpec) (*Network, error) {
	return NewWithConfig(Config{Seed: seed, Layers: specs})
}

// NewWithConfig creates a network from cfg.
func NewWithConfig(cfg Config) (*Network, error) {
	if len(cfg.Layers) < 2 {
		return nil, fmt.Errorf("nn.New: %w: need at least 2 layers, got %d", ErrInvalidArgument, len(cfg.Layers))
	}

	layers := make([]*Layer, len(cfg.Layers))
	for i, spec := range cfg.Layers {
		layer, err := NewLayer(spec.Neurons, spec.Activation)
		if err != nil {
			return nil, fmt.Errorf("nn.New: layer %d: %w", i, err)
		}
		layers[i] = layer
	}

	connections := make([]*Connection, len(layers)-1)
	for i := range connections {
		seed := cfg.Seed
		if !cfg.SharedSeed {
			seed = connectionSeed(cfg.Seed, i)
		}
		conn, err := newConnection(layers, i, i+1, seed)
		if err != nil {
			return nil, fmt.Errorf("nn.New: %w", err)
		}
		connections[i] = conn
	}

	return &Network{
		layers:      layers,
		connections: connections,
		seed:        cfg.Seed,
	}, nil
}

// Seed returns the construction seed.
func (n *Network) Seed() uint64 {
	return n.seed
}

// Size returns the number of layers.
func (n *Network) Size() int {
	return len(n.layers)
}

// InputSize returns the neuron count of the input layer.
func (n *Network) InputSize() int {
	return n.layers[0].Size()
}

// OutputSize returns the neuron count of the output layer.
func (n *Network) OutputSize() int {
	return n.layers[len(n.layers)-1].Size()
}

// Layer returns layer l.
func (n *Network) Layer(l int) *Layer {
	n.checkLayer(l)
	return n.layers[l]
}

// Connection returns the connection from layer i to layer i+1.
func (n *Network) Connection(i int) *Connection {
	if i < 0 || i >= len(n.connections) {
		panic(&tensor.IndexError{Row: i, Col: 0, Shape: tensor.Shape{len(n.connections), 1}})
	}
	return n.connections[i]
}

// Connections returns the connections in layer order.
func (n *Network) Connections() []*Connection {
	out := make([]*Connection, len(n.connections))
	copy(out, n.connections)
	return out
}

// NeuronValue returns the activated value of neuron i in layer l.
func (n *Network) NeuronValue(l, i int) float64 {
	return n.Layer(l).ActivatedAt(i)
}

func (n *Network) checkLayer(l int) {
	if l < 0 || l >= len(n.layers) {
		panic(&tensor.IndexError{Row: l, Col: 0, Shape: tensor.Shape{len(n.layers), 1}})
	}
}

// SetInput copies input into the activated values of the input layer.
func (n *Network) SetInput(input *tensor.Vector) error {
	if err := n.layers[0].SetActivated(input); err != nil {
		return fmt.Errorf("SetInput: %w", err)
	}
	return nil
}

// Output returns a copy of the output layer's activated values.
func (n *Network) Output() *tensor.Vector {
	return n.layers[len(n.layers)-1].Activated()
}

// ForwardPropagate runs every connection in layer order, leaving the
// prediction in the output layer.
func (n *Network) ForwardPropagate() {
	for _, conn := range n.connections {
		// Shapes are fixed at construction, so a failure here is a bug.
		if err := conn.forward(n.layers); err != nil {
			panic(err)
		}
	}
}

// Clear zeroes the cached values of every layer.
func (n *Network) Clear() {
	for _, layer := range n.layers {
		layer.Clear()
	}
}

// String describes the topology, e.g. "2(linear) → 8(tanh) → 1(sigmoid)".
func (n *Network) String() string {
	parts := make([]string, len(n.layers))
	for i, layer := range n.layers {
		parts[i] = layer.String()
	}
	return strings.Join(parts, " → ")
}
