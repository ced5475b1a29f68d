// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/densenet/internal/nn"
	"github.com/born-ml/densenet/internal/tensor"
)

// Activations

// Activation is a scalar nonlinearity applied neuron-wise by a layer.
type Activation = nn.Activation

// ActivationKind identifies an activation variant.
type ActivationKind = nn.ActivationKind

// Activation kinds.
const (
	KindUnset     = nn.KindUnset
	KindLinear    = nn.KindLinear
	KindReLU      = nn.KindReLU
	KindLeakyReLU = nn.KindLeakyReLU
	KindSigmoid   = nn.KindSigmoid
	KindLogistic  = nn.KindLogistic
	KindTanh      = nn.KindTanh
)

// Linear returns the identity activation.
func Linear() Activation {
	return nn.Linear()
}

// ReLU returns max(0, x).
func ReLU() Activation {
	return nn.ReLU()
}

// LeakyReLU returns x for x > 0 and alpha*x otherwise.
func LeakyReLU(alpha float64) Activation {
	return nn.LeakyReLU(alpha)
}

// Sigmoid returns 1 / (1 + exp(-x)).
func Sigmoid() Activation {
	return nn.Sigmoid()
}

// Logistic returns L / (1 + exp(-K*x)).
func Logistic(l, k float64) Activation {
	return nn.Logistic(l, k)
}

// Tanh returns the hyperbolic tangent.
func Tanh() Activation {
	return nn.Tanh()
}

// Layers

// Layer is a group of neurons sharing one activation.
type Layer = nn.Layer

// LayerSpec describes a layer when building a Network.
type LayerSpec = nn.LayerSpec

// NewLayer creates a standalone layer with n neurons.
func NewLayer(n int, act Activation) (*Layer, error) {
	return nn.NewLayer(n, act)
}

// Dense is shorthand for LayerSpec{Neurons: n, Activation: act}.
//
// Example:
//
//	spec := nn.Dense(8, nn.Tanh())
func Dense(n int, act Activation) LayerSpec {
	return nn.Dense(n, act)
}

// Connection holds the weights and biases between two adjacent layers.
type Connection = nn.Connection

// ConnectionParams pairs a weight matrix with a bias vector.
type ConnectionParams = nn.ConnectionParams

// InitWeights creates weights for a connection into a layer using dest,
// choosing Kaiming for the ReLU family and Xavier otherwise.
func InitWeights(inSize, outSize int, dest Activation, seed uint64) (*tensor.Matrix, error) {
	return nn.InitWeights(inSize, outSize, dest, seed)
}

// Network

// Network is a fully connected feed-forward network.
type Network = nn.Network

// Config holds construction options for a Network.
type Config = nn.Config

// TrainConfig holds training hyperparameters.
type TrainConfig = nn.TrainConfig

// New creates a network from a seed and ordered layer specs.
//
// Example:
//
//	net, err := nn.New(42, []nn.LayerSpec{
//	    nn.Dense(2, nn.Linear()),
//	    nn.Dense(1, nn.Sigmoid()),
//	})
func New(seed uint64, specs []LayerSpec) (*Network, error) {
	return nn.New(seed, specs)
}

// NewWithConfig creates a network from cfg.
func NewWithConfig(cfg Config) (*Network, error) {
	return nn.NewWithConfig(cfg)
}

// Errors

// Error kinds, matchable with errors.Is.
var (
	ErrInvalidArgument = nn.ErrInvalidArgument
	ErrShapeMismatch   = nn.ErrShapeMismatch
	ErrOutOfRange      = nn.ErrOutOfRange
)
