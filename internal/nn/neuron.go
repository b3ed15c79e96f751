package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// Neuron computes act(w·x + b) for a single output.
//
// Weights are drawn from U(-1, 1); the bias starts at 0.
type Neuron struct {
	weights    []*Parameter
	bias       *Parameter
	activation Activation
}

// NewNeuron creates a neuron with nin inputs.
//
// name prefixes the parameter names (e.g. "layer0.n3" gives "layer0.n3.w0").
func NewNeuron(name string, nin int, act Activation, rng *rand.Rand) *Neuron {
	weights := make([]*Parameter, nin)
	for i := range weights {
		weights[i] = NewParameter(fmt.Sprintf("%s.w%d", name, i), Uniform(rng, 1))
	}
	return &Neuron{
		weights:    weights,
		bias:       NewParameter(name+".b", 0),
		activation: act,
	}
}

// Output computes act(w·x + b).
func (n *Neuron) Output(inputs []*autodiff.Value) (*autodiff.Value, error) {
	if len(inputs) != len(n.weights) {
		return nil, fmt.Errorf("neuron: got %d inputs, want %d: %w", len(inputs), len(n.weights), ErrInputSize)
	}

	act := n.bias.Value()
	for i, w := range n.weights {
		act = act.Add(w.Value().Mul(inputs[i]))
	}

	return n.activation.Apply(act), nil
}

// Forward implements Module with a single output.
func (n *Neuron) Forward(inputs []*autodiff.Value) ([]*autodiff.Value, error) {
	out, err := n.Output(inputs)
	if err != nil {
		return nil, err
	}
	return []*autodiff.Value{out}, nil
}

// Parameters returns the weights followed by the bias.
func (n *Neuron) Parameters() []*Parameter {
	params := make([]*Parameter, 0, len(n.weights)+1)
	params = append(params, n.weights...)
	return append(params, n.bias)
}

// Activation returns the neuron's non-linearity.
func (n *Neuron) Activation() Activation {
	return n.activation
}
