package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// Layer is a fully connected layer of independent neurons sharing the same inputs.
//
// Example:
//
//	layer := nn.NewLayer("hidden", 3, 4, nn.Tanh, nn.NewRand(1))
//	out, err := layer.Forward(nn.Inputs(1, 2, 3)) // 4 outputs
type Layer struct {
	neurons []*Neuron
}

// NewLayer creates a layer mapping nin inputs to nout outputs.
func NewLayer(name string, nin, nout int, act Activation, rng *rand.Rand) *Layer {
	neurons := make([]*Neuron, nout)
	for i := range neurons {
		neurons[i] = NewNeuron(fmt.Sprintf("%s.n%d", name, i), nin, act, rng)
	}
	return &Layer{neurons: neurons}
}

// Forward computes every neuron's output.
func (l *Layer) Forward(inputs []*autodiff.Value) ([]*autodiff.Value, error) {
	outs := make([]*autodiff.Value, len(l.neurons))
	for i, n := range l.neurons {
		out, err := n.Output(inputs)
		if err != nil {
			return nil, err
		}
		outs[i] = out
	}
	return outs, nil
}

// Parameters returns the parameters of all neurons in order.
func (l *Layer) Parameters() []*Parameter {
	var params []*Parameter
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}

// Neurons returns the layer's neurons.
func (l *Layer) Neurons() []*Neuron {
	return l.neurons
}
