// Package autodiff implements reverse-mode automatic differentiation over scalars.
//
// Every operation on a Value eagerly computes its result (the forward pass) and
// allocates a new Value that records the operator and its operands. The result
// is a DAG rooted at whatever Value the caller holds. Calling Backward on a
// root walks that DAG in reverse topological order and accumulates into every
// ancestor's Grad the partial derivative of the root with respect to it.
//
// Architecture:
//   - Value: immutable forward data, mutable gradient, operator tag, parents
//   - Op: tagged operator; the backward rule is chosen by dispatch on Op.Kind
//   - TopologicalOrder: parents-before-children ordering of a root's ancestry
//   - Backward: seeds the root with 1 and propagates gradients to the leaves
//
// Usage:
//
//	a := autodiff.NewValue(2).SetLabel("a")
//	b := autodiff.NewValue(-3).SetLabel("b")
//	y := a.Mul(b).Add(a)   // y = a*b + a
//	y.Backward()
//	fmt.Println(a.Grad())  // dy/da = b + 1 = -2
//
// Gradients are never reset implicitly. Running Backward twice over graphs
// that share nodes accumulates into those nodes; call ZeroGrads between
// independent passes.
//
// Values are not safe for concurrent use. Several children may contribute to
// the same parent gradient, so a parallel backward pass would need atomic
// accumulation or a single writer per node.
package autodiff

import (
	"fmt"
	"slices"
)

// Value is a scalar node in the computation graph.
//
// Data is fixed at construction. Grad is the only field that changes
// afterwards, and only through Backward, ZeroGrad and ZeroGrads.
type Value struct {
	data     float64
	grad     float64
	op       Op
	operands []*Value // in operand order; may repeat (x*x)
	parents  []*Value // operands with duplicates removed
	label    string
}

// NewValue creates a leaf Value holding data.
func NewValue(data float64) *Value {
	return &Value{data: data}
}

// NewLabeled creates a leaf Value with a label.
func NewLabeled(data float64, label string) *Value {
	return &Value{data: data, label: label}
}

// newNode allocates the result of an operation.
func newNode(data float64, op Op, operands ...*Value) *Value {
	parents := make([]*Value, 0, len(operands))
	for _, o := range operands {
		if !slices.Contains(parents, o) {
			parents = append(parents, o)
		}
	}
	return &Value{
		data:     data,
		op:       op,
		operands: operands,
		parents:  parents,
	}
}

// Data returns the forward value.
func (v *Value) Data() float64 {
	return v.data
}

// Grad returns the accumulated gradient.
//
// Before any backward pass reaching v this is 0.
func (v *Value) Grad() float64 {
	return v.grad
}

// Op returns the operator that produced v.
func (v *Value) Op() Op {
	return v.op
}

// Parents returns the distinct operands that produced v, in operand order.
// Leaves have no parents. The returned slice is a copy.
func (v *Value) Parents() []*Value {
	return slices.Clone(v.parents)
}

// Label returns the cosmetic label.
func (v *Value) Label() string {
	return v.label
}

// SetLabel sets the cosmetic label and returns v for chaining.
func (v *Value) SetLabel(label string) *Value {
	v.label = label
	return v
}

// IsLeaf reports whether v was created directly rather than by an operation.
func (v *Value) IsLeaf() bool {
	return v.op.IsLeaf()
}

// String implements fmt.Stringer.
func (v *Value) String() string {
	return fmt.Sprintf("Value(%s, data=%g, grad=%g)", v.label, v.data, v.grad)
}

// Lift converts an operand into a Value.
//
// A *Value is returned unchanged. Go integer and floating point numbers are
// wrapped in a fresh leaf. Anything else, including a nil *Value, is rejected
// with ErrInvalidOperand.
func Lift(x any) (*Value, error) {
	if v, ok := x.(*Value); ok {
		if v == nil {
			return nil, &OperandError{Op: "lift", Operand: x, Err: ErrInvalidOperand}
		}
		return v, nil
	}
	f, ok := toFloat(x)
	if !ok {
		return nil, &OperandError{Op: "lift", Operand: x, Err: ErrInvalidOperand}
	}
	return NewValue(f), nil
}

// toFloat converts Go numeric types to float64.
func toFloat(x any) (float64, bool) {
	switch n := x.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
