package nn

import (
	"fmt"
	"math"

	"github.com/born-ml/densenet/internal/tensor"
)

// ActivationKind identifies one of the supported nonlinearities.
type ActivationKind uint8

// Supported activation kinds. KindUnset is the zero value and is rejected
// by NewLayer.
const (
	KindUnset ActivationKind = iota
	KindLinear
	KindReLU
	KindLeakyReLU
	KindSigmoid
	KindLogistic
	KindTanh
)

var kindNames = map[ActivationKind]string{
	KindUnset:     "unset",
	KindLinear:    "linear",
	KindReLU:      "relu",
	KindLeakyReLU: "leaky_relu",
	KindSigmoid:   "sigmoid",
	KindLogistic:  "logistic",
	KindTanh:      "tanh",
}

// String returns the lower-case kind name.
func (k ActivationKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ActivationKind(%d)", uint8(k))
}

// Activation is a scalar nonlinearity applied neuron-wise by a layer.
//
// It is a plain value: copying an Activation yields an independent
// activation with the same parameters, so layers never share state.
//
// Example:
//
//	act := nn.LeakyReLU(0.01)
//	y := act.Apply(-2)       // -0.02
//	dy := act.Derivative(-2) // 0.01
type Activation struct {
	kind  ActivationKind
	alpha float64 // LeakyReLU negative slope
	l     float64 // Logistic maximum value
	k     float64 // Logistic steepness
}

// Linear returns the identity activation f(x) = x.
func Linear() Activation {
	return Activation{kind: KindLinear}
}

// ReLU returns f(x) = max(0, x).
func ReLU() Activation {
	return Activation{kind: KindReLU}
}

// LeakyReLU returns f(x) = x for x > 0 and alpha*x otherwise.
func LeakyReLU(alpha float64) Activation {
	return Activation{kind: KindLeakyReLU, alpha: alpha}
}

// Sigmoid returns σ(x) = 1 / (1 + exp(-x)).
func Sigmoid() Activation {
	return Activation{kind: KindSigmoid}
}

// Logistic returns f(x) = L / (1 + exp(-K*x)).
func Logistic(l, k float64) Activation {
	return Activation{kind: KindLogistic, l: l, k: k}
}

// Tanh returns the hyperbolic tangent.
func Tanh() Activation {
	return Activation{kind: KindTanh}
}

// Kind returns the activation kind.
func (a Activation) Kind() ActivationKind {
	return a.kind
}

// Alpha returns the LeakyReLU slope (zero for other kinds).
func (a Activation) Alpha() float64 {
	return a.alpha
}

// LogisticParams returns the Logistic (L, K) pair (zeros for other kinds).
func (a Activation) LogisticParams() (l, k float64) {
	return a.l, a.k
}

// Validate rejects the unset and unknown kinds.
func (a Activation) Validate() error {
	if a.kind == KindUnset {
		return fmt.Errorf("%w: activation is not set", tensor.ErrInvalidArgument)
	}
	if _, ok := kindNames[a.kind]; !ok {
		return fmt.Errorf("%w: unknown activation %v", tensor.ErrInvalidArgument, a.kind)
	}
	return nil
}

// UsesKaiming reports whether weights feeding a layer with this activation
// are initialized with Kaiming (ReLU family) rather than Xavier.
func (a Activation) UsesKaiming() bool {
	return a.kind == KindReLU || a.kind == KindLeakyReLU
}

// Apply evaluates the activation at x.
func (a Activation) Apply(x float64) float64 {
	switch a.kind {
	case KindLinear:
		return x
	case KindReLU:
		if x > 0 {
			return x
		}
		return 0
	case KindLeakyReLU:
		if x > 0 {
			return x
		}
		return a.alpha * x
	case KindSigmoid:
		return 1 / (1 + math.Exp(-x))
	case KindLogistic:
		return a.l / (1 + math.Exp(-a.k*x))
	case KindTanh:
		return math.Tanh(x)
	default:
		panic(fmt.Sprintf("Activation.Apply: invalid kind %v", a.kind))
	}
}

// Derivative evaluates df/dx at the pre-activation value x.
//
// Logistic uses v(1-v) with v = Apply(x), matching the sigmoid form; it is
// exact only for L = K = 1.
func (a Activation) Derivative(x float64) float64 {
	switch a.kind {
	case KindLinear:
		return 1
	case KindReLU:
		if x > 0 {
			return 1
		}
		return 0
	case KindLeakyReLU:
		if x > 0 {
			return 1
		}
		return a.alpha
	case KindSigmoid, KindLogistic:
		v := a.Apply(x)
		return v * (1 - v)
	case KindTanh:
		t := math.Tanh(x)
		return 1 - t*t
	default:
		panic(fmt.Sprintf("Activation.Derivative: invalid kind %v", a.kind))
	}
}

// String describes the activation including its parameters.
func (a Activation) String() string {
	switch a.kind {
	case KindLeakyReLU:
		return fmt.Sprintf("leaky_relu(%g)", a.alpha)
	case KindLogistic:
		return fmt.Sprintf("logistic(%g, %g)", a.l, a.k)
	default:
		return a.kind.String()
	}
}
