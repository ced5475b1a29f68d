package nn

import (
	"github.com/born-ml/densenet/internal/tensor"
)

// InitWeights creates the inSize×outSize weight matrix for a connection
// whose destination layer uses dest.
//
// ReLU and LeakyReLU destinations get Kaiming (He) normal weights, every
// other activation gets Xavier (Glorot) uniform weights. The same seed
// always yields the same matrix.
func InitWeights(inSize, outSize int, dest Activation, seed uint64) (*tensor.Matrix, error) {
	if dest.UsesKaiming() {
		return tensor.Kaiming(inSize, outSize, seed)
	}
	return tensor.Xavier(inSize, outSize, seed)
}

// connectionSeed derives the initializer seed of connection i.
//
// Each connection gets its own stream so that two connections of the same
// shape do not start with identical weights. Connection 0 uses seed as is.
func connectionSeed(seed uint64, i int) uint64 {
	return seed ^ uint64(i) //nolint:gosec // i is a small non-negative index
}
