// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network building blocks over scalar Values.
//
// # Overview
//
// This package contains:
//   - Layers: Neuron, Layer, Sequential and the NewMLP helper
//   - Activations: Linear, Tanh, ReLU, Sigmoid
//   - Loss functions: MSELoss, HingeLoss, BCELoss, plus L2Penalty
//   - Utilities: Module interface, Parameter, Inputs
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/micrograd/nn"
//	)
//
//	func main() {
//	    // 2 inputs, two hidden layers of 16, one score
//	    model, err := nn.NewMLP([]int{2, 16, 16, 1}, nn.ReLU, nn.NewRand(1337))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    // Forward pass
//	    scores, err := model.Forward(nn.Inputs(0.5, -1.2))
//	}
//
// # Loss Functions
//
// HingeLoss: max-margin loss for labels in {-1, +1}
//
//	loss, err := nn.HingeLoss(scores, labels)
//
// MSELoss: For regression tasks
//
//	loss, err := nn.MSELoss(predictions, targets)
//
// # Parameter Management
//
// Parameters hand out a leaf Value per forward pass. After loss.Backward()
// their gradients are available through Grad:
//
//	for _, p := range model.Parameters() {
//	    grad, _ := p.Grad()
//	    fmt.Println(p.Name(), p.Data(), grad)
//	}
package nn
