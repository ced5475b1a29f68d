package nn

import (
	"fmt"

	"github.com/born-ml/densenet/internal/tensor"
)

// TrainConfig holds training hyperparameters.
type TrainConfig struct {
	LearningRate float64 // Step size (> 0)
	Epochs       int     // Passes over the dataset (>= 1)

	// Stochastic applies each example's update immediately. When false the
	// per-example deltas are averaged and applied once per epoch.
	Stochastic bool
}

// Validate checks the hyperparameters.
func (c TrainConfig) Validate() error {
	if c.Epochs < 1 {
		return fmt.Errorf("%w: epochs %d (must be >= 1)", ErrInvalidArgument, c.Epochs)
	}
	if !(c.LearningRate > 0) {
		return fmt.Errorf("%w: learning rate %g (must be > 0)", ErrInvalidArgument, c.LearningRate)
	}
	return nil
}

// checkDataset validates counts and every vector length up front so that
// training and evaluation never fail halfway through.
func (n *Network) checkDataset(op string, features, labels []*tensor.Vector) error {
	if len(features) != len(labels) {
		return fmt.Errorf("%s: %w: %d features but %d labels", op, ErrInvalidArgument, len(features), len(labels))
	}
	if len(features) == 0 {
		return fmt.Errorf("%s: %w: empty dataset", op, ErrInvalidArgument)
	}
	for i := range features {
		if features[i] == nil || labels[i] == nil {
			return fmt.Errorf("%s: example %d: %w: nil vector", op, i, ErrInvalidArgument)
		}
		if features[i].Len() != n.InputSize() {
			return fmt.Errorf("%s: example %d: %w", op, i, lengthError("feature", n.InputSize(), features[i].Len()))
		}
		if labels[i].Len() != n.OutputSize() {
			return fmt.Errorf("%s: example %d: %w", op, i, lengthError("label", n.OutputSize(), labels[i].Len()))
		}
	}
	return nil
}

// zeroParams returns zero-filled parameters shaped like the network's.
func (n *Network) zeroParams() []ConnectionParams {
	params := make([]ConnectionParams, len(n.connections))
	for i, conn := range n.connections {
		weights, _ := tensor.NewMatrix(conn.weights.Rows(), conn.weights.Cols())
		biases, _ := tensor.NewVector(conn.biases.Len())
		params[i] = ConnectionParams{Weights: weights, Biases: biases}
	}
	return params
}

// step applies deltas as one gradient-descent update.
func (n *Network) step(deltas []ConnectionParams) error {
	params, err := n.TakeStep(deltas)
	if err != nil {
		return err
	}
	return n.UpdateParameters(params)
}

// Train fits the network to features/labels with plain gradient descent.
//
// Each epoch visits the examples in order, running a forward pass and a
// backward pass per example. With cfg.Stochastic the update is applied
// after every example; otherwise each delta is weighted by 1/len(features)
// and a single averaged update is applied at the end of the epoch.
//
// Returns the squared residual of every processed example across all
// epochs, in processing order. Invalid arguments are reported before the
// network is touched.
func (n *Network) Train(features, labels []*tensor.Vector, cfg TrainConfig) ([]float64, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("Train: %w", err)
	}
	if err := n.checkDataset("Train", features, labels); err != nil {
		return nil, err
	}

	exampleCount := len(features)
	exampleWeight := 1.0 / float64(exampleCount)
	metrics := make([]float64, 0, cfg.Epochs*exampleCount)

	for epoch := 0; epoch < cfg.Epochs; epoch++ {
		var accumulated []ConnectionParams
		if !cfg.Stochastic {
			accumulated = n.zeroParams()
		}

		for i := range features {
			if err := n.SetInput(features[i]); err != nil {
				return nil, fmt.Errorf("Train: epoch %d example %d: %w", epoch, i, err)
			}
			n.ForwardPropagate()

			deltas, loss, err := n.Backpropagate(labels[i], cfg.LearningRate)
			if err != nil {
				return nil, fmt.Errorf("Train: epoch %d example %d: %w", epoch, i, err)
			}
			metrics = append(metrics, loss)

			if cfg.Stochastic {
				if err := n.step(deltas); err != nil {
					return nil, fmt.Errorf("Train: epoch %d example %d: %w", epoch, i, err)
				}
				continue
			}

			for l, d := range deltas {
				d.Weights.ScaleInPlace(exampleWeight)
				d.Biases.ScaleInPlace(exampleWeight)
				if err := accumulated[l].Weights.AddInPlace(d.Weights); err != nil {
					return nil, fmt.Errorf("Train: epoch %d example %d: %w", epoch, i, err)
				}
				if err := accumulated[l].Biases.AddInPlace(&d.Biases.Matrix); err != nil {
					return nil, fmt.Errorf("Train: epoch %d example %d: %w", epoch, i, err)
				}
			}
		}

		if !cfg.Stochastic {
			if err := n.step(accumulated); err != nil {
				return nil, fmt.Errorf("Train: epoch %d: %w", epoch, err)
			}
		}
	}

	return metrics, nil
}

// Evaluate runs a forward pass for every example and returns its squared
// residual. Weights and biases are not modified.
func (n *Network) Evaluate(features, labels []*tensor.Vector) ([]float64, error) {
	if err := n.checkDataset("Evaluate", features, labels); err != nil {
		return nil, err
	}

	metrics := make([]float64, 0, len(features))
	for i := range features {
		if err := n.SetInput(features[i]); err != nil {
			return nil, fmt.Errorf("Evaluate: example %d: %w", i, err)
		}
		n.ForwardPropagate()
		metrics = append(metrics, squaredResidual(labels[i], n.layers[len(n.layers)-1].activated))
	}
	return metrics, nil
}

// Predict returns the network output for input.
//
// All cached layer values are cleared before returning, so consecutive
// calls never observe state from a previous one.
func (n *Network) Predict(input *tensor.Vector) (*tensor.Vector, error) {
	if err := n.SetInput(input); err != nil {
		return nil, fmt.Errorf("Predict: %w", err)
	}
	n.ForwardPropagate()
	out := n.Output()
	n.Clear()
	return out, nil
}
