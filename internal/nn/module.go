// Package nn implements neural network modules built from scalar Values.
//
// This package provides building blocks for small networks:
//   - Module interface: Base interface for all NN components
//   - Parameter: Trainable weights backed by graph leaves
//   - Neuron, Layer: act(w·x + b) for one or many outputs
//   - Sequential / MLP: Container for stacking layers
//   - Loss functions: MSE, Hinge, BCE, L2 penalty
//
// Every forward pass builds a fresh autodiff graph; calling Backward on the
// loss fills in the gradients read by the optimizers in internal/optim.
package nn

import (
	"github.com/born-ml/micrograd/internal/autodiff"
)

// Module is the base interface for all neural network components.
//
// Every NN module must implement:
//   - Forward: Compute outputs from inputs
//   - Parameters: Return all trainable parameters
type Module interface {
	// Forward computes the outputs of the module for the given inputs.
	//
	// Returns ErrInputSize if len(inputs) does not match the module's fan-in.
	Forward(inputs []*autodiff.Value) ([]*autodiff.Value, error)

	// Parameters returns all trainable parameters of this module,
	// including those of nested modules.
	Parameters() []*Parameter
}

// ZeroGrad clears the gradients of all parameters of m.
func ZeroGrad(m Module) {
	for _, p := range m.Parameters() {
		p.ZeroGrad()
	}
}

// Inputs wraps raw features in fresh leaf Values.
func Inputs(xs ...float64) []*autodiff.Value {
	out := make([]*autodiff.Value, len(xs))
	for i, x := range xs {
		out[i] = autodiff.NewValue(x)
	}
	return out
}
