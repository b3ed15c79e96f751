// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/born-ml/micrograd/autodiff"
	"github.com/born-ml/micrograd/internal/nn"
)

// Module interface defines the common interface for all neural network modules.
type Module = nn.Module

// Parameter represents a trainable scalar in a neural network.
type Parameter = nn.Parameter

// NewParameter creates a new parameter with the given name and initial weight.
func NewParameter(name string, data float64) *Parameter {
	return nn.NewParameter(name, data)
}

// ZeroGrad clears the gradients of all parameters of m.
func ZeroGrad(m Module) {
	nn.ZeroGrad(m)
}

// Inputs wraps raw features in fresh leaf Values.
func Inputs(xs ...float64) []*autodiff.Value {
	return nn.Inputs(xs...)
}

// NewRand returns a deterministic source for weight initialization.
func NewRand(seed int64) *rand.Rand {
	return nn.NewRand(seed)
}

// Activation selects the non-linearity applied by a Neuron.
type Activation = nn.Activation

// Supported activations.
const (
	Linear  = nn.Linear
	Tanh    = nn.Tanh
	ReLU    = nn.ReLU
	Sigmoid = nn.Sigmoid
)

// ParseActivation converts a name such as "tanh" to an Activation.
func ParseActivation(name string) (Activation, error) {
	return nn.ParseActivation(name)
}

// Neuron computes act(w·x + b).
type Neuron = nn.Neuron

// NewNeuron creates a neuron with nin inputs.
func NewNeuron(name string, nin int, act Activation, rng *rand.Rand) *Neuron {
	return nn.NewNeuron(name, nin, act, rng)
}

// Layer is a fully connected layer of neurons.
type Layer = nn.Layer

// NewLayer creates a layer mapping nin inputs to nout outputs.
func NewLayer(name string, nin, nout int, act Activation, rng *rand.Rand) *Layer {
	return nn.NewLayer(name, nin, nout, act, rng)
}

// Sequential chains modules together.
type Sequential = nn.Sequential

// NewSequential creates a new Sequential container.
func NewSequential(modules ...Module) *Sequential {
	return nn.NewSequential(modules...)
}

// NewMLP builds a multi-layer perceptron from layer sizes (input first).
//
// Example:
//
//	model, err := nn.NewMLP([]int{3, 4, 4, 1}, nn.Tanh, nn.NewRand(1))
func NewMLP(sizes []int, hidden Activation, rng *rand.Rand) (*Sequential, error) {
	return nn.NewMLP(sizes, hidden, rng)
}

// MSELoss computes mean((predictions - targets)²).
func MSELoss(predictions []*autodiff.Value, targets []float64) (*autodiff.Value, error) {
	return nn.MSELoss(predictions, targets)
}

// HingeLoss computes mean(relu(1 - y·s)) for labels in {-1, +1}.
func HingeLoss(scores []*autodiff.Value, labels []float64) (*autodiff.Value, error) {
	return nn.HingeLoss(scores, labels)
}

// BCELoss computes binary cross-entropy on logits for labels in {0, 1}.
func BCELoss(logits []*autodiff.Value, labels []float64) (*autodiff.Value, error) {
	return nn.BCELoss(logits, labels)
}

// L2Penalty returns alpha · Σ p² over the parameters.
func L2Penalty(params []*Parameter, alpha float64) *autodiff.Value {
	return nn.L2Penalty(params, alpha)
}

// Errors.
var (
	ErrInputSize         = nn.ErrInputSize
	ErrEmptyInput        = nn.ErrEmptyInput
	ErrLengthMismatch    = nn.ErrLengthMismatch
	ErrUnknownActivation = nn.ErrUnknownActivation
	ErrInvalidSize       = nn.ErrInvalidSize
)
