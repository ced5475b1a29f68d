// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides a fully connected feed-forward network trained with
// plain gradient descent.
//
// # Overview
//
// This package contains:
//   - Activations: Linear, ReLU, LeakyReLU, Sigmoid, Logistic, Tanh
//   - Layer: neuron group with cached pre- and post-activation values
//   - Connection: weights and biases between two adjacent layers
//   - Network: forward pass, backpropagation, training, evaluation, prediction
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/densenet/nn"
//	    "github.com/born-ml/densenet/tensor"
//	)
//
//	func main() {
//	    net, err := nn.New(42, []nn.LayerSpec{
//	        nn.Dense(2, nn.Linear()),
//	        nn.Dense(8, nn.Tanh()),
//	        nn.Dense(8, nn.Tanh()),
//	        nn.Dense(1, nn.Sigmoid()),
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    metrics, err := net.Train(features, labels, nn.TrainConfig{
//	        LearningRate: 0.05,
//	        Epochs:       20000,
//	    })
//
//	    y, err := net.Predict(tensor.MustVector(1, 0))
//	}
//
// # Initialization
//
// Weights feeding a ReLU or LeakyReLU layer use Kaiming normal
// initialization, all others use Xavier uniform. Biases start at zero.
// Each connection draws from its own stream derived from the network seed;
// set Config.SharedSeed to seed every connection identically.
//
// # Training
//
// The loss is the sum of squared residuals. With TrainConfig.Stochastic the
// parameters are updated after every example, otherwise the per-example
// deltas are averaged and applied once per epoch.
package nn
