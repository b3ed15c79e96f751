// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimization algorithms for training scalar networks.
//
// # Overview
//
// This package contains:
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation with bias correction
//   - Optimizer interface for custom optimizers
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/micrograd/nn"
//	    "github.com/born-ml/micrograd/optim"
//	)
//
//	func main() {
//	    model, _ := nn.NewMLP([]int{2, 16, 1}, nn.ReLU, nn.NewRand(1))
//
//	    optimizer := optim.NewAdam(model.Parameters(), optim.AdamConfig{LR: 0.01})
//
//	    for epoch := range 100 {
//	        optimizer.ZeroGrad()
//	        loss := computeLoss(model, data) // builds a fresh graph
//	        loss.Backward()
//	        optimizer.Step()
//	    }
//	}
package optim
