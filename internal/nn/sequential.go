package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// Sequential is a container module that chains multiple modules together.
//
// Each module's outputs become the next module's inputs.
//
// Example:
//
//	model := nn.NewSequential(
//	    nn.NewLayer("l0", 2, 16, nn.ReLU, rng),
//	    nn.NewLayer("l1", 16, 1, nn.Linear, rng),
//	)
//
//	scores, err := model.Forward(nn.Inputs(x1, x2))
type Sequential struct {
	modules []Module
}

// NewSequential creates a new Sequential container.
func NewSequential(modules ...Module) *Sequential {
	return &Sequential{
		modules: modules,
	}
}

// Forward applies all modules in sequence.
func (s *Sequential) Forward(inputs []*autodiff.Value) ([]*autodiff.Value, error) {
	outputs := inputs

	for i, module := range s.modules {
		var err error
		outputs, err = module.Forward(outputs)
		if err != nil {
			return nil, fmt.Errorf("module %d: %w", i, err)
		}
	}

	return outputs, nil
}

// Parameters returns the parameters of all modules in order.
func (s *Sequential) Parameters() []*Parameter {
	var params []*Parameter
	for _, m := range s.modules {
		params = append(params, m.Parameters()...)
	}
	return params
}

// Modules returns the contained modules.
func (s *Sequential) Modules() []Module {
	return s.modules
}

// NewMLP builds a multi-layer perceptron.
//
// sizes lists the layer widths including the input, e.g. [2, 16, 16, 1] is two
// inputs, two hidden layers of 16 and one output. Hidden layers use hidden;
// the last layer is linear so it can produce unbounded scores.
func NewMLP(sizes []int, hidden Activation, rng *rand.Rand) (*Sequential, error) {
	if len(sizes) < 2 {
		return nil, fmt.Errorf("mlp: need at least input and output sizes, got %v: %w", sizes, ErrInvalidSize)
	}
	for _, s := range sizes {
		if s <= 0 {
			return nil, fmt.Errorf("mlp: sizes %v: %w", sizes, ErrInvalidSize)
		}
	}

	layers := make([]Module, len(sizes)-1)
	for i := range layers {
		act := hidden
		if i == len(layers)-1 {
			act = Linear
		}
		layers[i] = NewLayer(fmt.Sprintf("layer%d", i), sizes[i], sizes[i+1], act, rng)
	}

	return NewSequential(layers...), nil
}
