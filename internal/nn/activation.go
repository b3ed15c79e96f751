package nn

import (
	"fmt"
	"strings"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// Activation selects the non-linearity applied by a Neuron.
type Activation uint8

// Supported activations.
const (
	Linear Activation = iota // identity
	Tanh
	ReLU
	Sigmoid
)

// String returns the activation name as used in configuration files.
func (a Activation) String() string {
	switch a {
	case Linear:
		return "linear"
	case Tanh:
		return "tanh"
	case ReLU:
		return "relu"
	case Sigmoid:
		return "sigmoid"
	default:
		return fmt.Sprintf("Activation(%d)", uint8(a))
	}
}

// ParseActivation converts a name such as "tanh" to an Activation.
func ParseActivation(name string) (Activation, error) {
	switch strings.ToLower(name) {
	case "linear", "":
		return Linear, nil
	case "tanh":
		return Tanh, nil
	case "relu":
		return ReLU, nil
	case "sigmoid":
		return Sigmoid, nil
	default:
		return Linear, fmt.Errorf("%w: %q", ErrUnknownActivation, name)
	}
}

// Apply runs the activation on x.
func (a Activation) Apply(x *autodiff.Value) *autodiff.Value {
	switch a {
	case Tanh:
		return x.Tanh()
	case ReLU:
		return x.ReLU()
	case Sigmoid:
		return x.Sigmoid()
	default:
		return x
	}
}
