package tensor

import (
	"math"
	"math/rand/v2"
)

// newSource returns the deterministic stream shared by all initializers.
// Identical seeds yield identical sequences.
func newSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed)) //nolint:gosec // weight init is not security-critical
}

func checkFan(op string, inCount, outCount int) error {
	if inCount <= 0 || outCount <= 0 {
		return invalidArgument("%s: fan-in %d and fan-out %d must be > 0", op, inCount, outCount)
	}
	return nil
}

// Xavier (Glorot) initialization.
//
// Returns an inCount×outCount matrix with values drawn uniformly from
//
//	[-sqrt(6/(in+out)), sqrt(6/(in+out))]
//
// Suited to activations that are roughly linear around zero (tanh, sigmoid).
func Xavier(inCount, outCount int, seed uint64) (*Matrix, error) {
	if err := checkFan("Xavier", inCount, outCount); err != nil {
		return nil, err
	}
	bound := math.Sqrt(6.0 / float64(inCount+outCount))

	rng := newSource(seed)
	m := newMatrix(inCount, outCount)
	for i := range m.data {
		m.data[i] = (rng.Float64()*2.0 - 1.0) * bound
	}
	return m, nil
}

// Kaiming (He) initialization.
//
// Returns an inCount×outCount matrix with values drawn from
// N(0, sqrt(2/in)²). Suited to ReLU-family activations, which zero half
// of their input.
func Kaiming(inCount, outCount int, seed uint64) (*Matrix, error) {
	if err := checkFan("Kaiming", inCount, outCount); err != nil {
		return nil, err
	}
	std := math.Sqrt(2.0 / float64(inCount))

	rng := newSource(seed)
	m := newMatrix(inCount, outCount)
	for i := range m.data {
		m.data[i] = rng.NormFloat64() * std
	}
	return m, nil
}
