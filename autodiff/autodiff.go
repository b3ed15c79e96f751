// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation over scalars.
//
// Operations on a Value compute their result immediately and remember how it
// was derived. Backward then walks the recorded graph from any Value and
// fills in the gradient of every Value it depends on.
//
// Example:
//
//	import "github.com/born-ml/micrograd/autodiff"
//
//	func main() {
//	    x := autodiff.NewLabeled(3, "x")
//	    y := x.Mul(x).Add(x.Tanh()) // y = x² + tanh(x)
//
//	    y.Backward()
//	    fmt.Println(x.Grad()) // 2x + 1 - tanh²(x)
//	}
package autodiff

import (
	"github.com/born-ml/micrograd/internal/autodiff"
)

// Value is a scalar node in the computation graph.
type Value = autodiff.Value

// Op is the operator tag recorded on a Value.
type Op = autodiff.Op

// OpKind identifies an operator.
type OpKind = autodiff.OpKind

// Operator kinds.
const (
	OpLeaf    = autodiff.OpLeaf
	OpAdd     = autodiff.OpAdd
	OpMul     = autodiff.OpMul
	OpPow     = autodiff.OpPow
	OpTanh    = autodiff.OpTanh
	OpReLU    = autodiff.OpReLU
	OpExp     = autodiff.OpExp
	OpLog     = autodiff.OpLog
	OpSigmoid = autodiff.OpSigmoid
)

// Edge connects a parent Value to a child computed from it.
type Edge = autodiff.Edge

// OperandError reports an operand rejected by an operator.
type OperandError = autodiff.OperandError

// Errors returned by operators.
var (
	ErrInvalidExponent = autodiff.ErrInvalidExponent
	ErrInvalidOperand  = autodiff.ErrInvalidOperand
)

// NewValue creates a leaf Value.
func NewValue(data float64) *Value {
	return autodiff.NewValue(data)
}

// NewLabeled creates a labeled leaf Value.
func NewLabeled(data float64, label string) *Value {
	return autodiff.NewLabeled(data, label)
}

// Lift wraps a real number in a leaf, or returns a *Value unchanged.
func Lift(x any) (*Value, error) {
	return autodiff.Lift(x)
}

// Add returns a + b for any mix of *Value and real numbers.
func Add(a, b any) (*Value, error) {
	return autodiff.Add(a, b)
}

// Sub returns a - b for any mix of *Value and real numbers.
func Sub(a, b any) (*Value, error) {
	return autodiff.Sub(a, b)
}

// Mul returns a * b for any mix of *Value and real numbers.
func Mul(a, b any) (*Value, error) {
	return autodiff.Mul(a, b)
}

// Div returns a / b for any mix of *Value and real numbers.
func Div(a, b any) (*Value, error) {
	return autodiff.Div(a, b)
}

// Pow returns base ** exponent. The exponent must be a constant real number.
//
// Example:
//
//	y, err := autodiff.Pow(x, 3)        // ok
//	_, err = autodiff.Pow(x, other)     // errors.Is(err, ErrInvalidExponent)
func Pow(base, exponent any) (*Value, error) {
	return autodiff.Pow(base, exponent)
}

// Sum adds values left to right.
func Sum(values ...*Value) *Value {
	return autodiff.Sum(values...)
}

// TopologicalOrder lists every Value reachable from root, parents first.
func TopologicalOrder(root *Value) []*Value {
	return autodiff.TopologicalOrder(root)
}

// ZeroGrads resets the gradient of root and all of its ancestors.
func ZeroGrads(root *Value) {
	autodiff.ZeroGrads(root)
}

// Trace returns the nodes and parent-to-child edges reachable from root.
func Trace(root *Value) ([]*Value, []Edge) {
	return autodiff.Trace(root)
}
