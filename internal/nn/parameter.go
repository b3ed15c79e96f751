package nn

import (
	"github.com/born-ml/micrograd/internal/autodiff"
)

// Parameter represents a trainable scalar in a neural network.
//
// Graph nodes never change their data once built, so a Parameter keeps the
// weight itself and hands out a leaf Value for it. The same leaf is reused
// until the weight is updated, so every use within one forward pass
// accumulates into a single gradient. SetData drops the leaf; the next
// forward pass gets a fresh one.
//
// Example:
//
//	w := nn.NewParameter("w", 0.5)
//	y := w.Value().Mul(x)
//	y.Backward()
//	grad, _ := w.Grad()
type Parameter struct {
	name string          // Parameter name (e.g., "layer0.neuron1.w2")
	data float64         // Current weight
	leaf *autodiff.Value // Leaf used by the current forward pass
}

// NewParameter creates a new trainable parameter.
func NewParameter(name string, data float64) *Parameter {
	return &Parameter{
		name: name,
		data: data,
	}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Data returns the current weight.
func (p *Parameter) Data() float64 {
	return p.data
}

// SetData replaces the weight. The leaf from the previous forward pass, and
// its gradient, are discarded.
func (p *Parameter) SetData(data float64) {
	p.data = data
	p.leaf = nil
}

// Value returns the leaf representing this parameter in the current graph.
func (p *Parameter) Value() *autodiff.Value {
	if p.leaf == nil {
		p.leaf = autodiff.NewLabeled(p.data, p.name)
	}
	return p.leaf
}

// Grad returns the gradient accumulated on the current leaf.
//
// The boolean is false when the parameter has not been used since its last
// update, i.e. it did not take part in the computation graph.
func (p *Parameter) Grad() (float64, bool) {
	if p.leaf == nil {
		return 0, false
	}
	return p.leaf.Grad(), true
}

// ZeroGrad clears the gradient on the current leaf, if any.
func (p *Parameter) ZeroGrad() {
	if p.leaf != nil {
		p.leaf.ZeroGrad()
	}
}
