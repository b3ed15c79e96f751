package autodiff

import "strconv"

// OpKind identifies the operation that produced a Value.
type OpKind uint8

// Supported operation kinds.
const (
	OpLeaf OpKind = iota // user-created constant or input
	OpAdd
	OpMul
	OpPow
	OpTanh
	OpReLU
	OpExp
	OpLog
	OpSigmoid
)

// Op is the tagged operator recorded on every Value.
//
// Exponent is only meaningful for OpPow, where it holds the constant k of x**k.
// The backward pass dispatches on Kind (see propagate), so a Value carries no
// executable state of its own.
type Op struct {
	Kind     OpKind
	Exponent float64
}

// String returns the operator tag used when rendering a graph.
// Leaves render as the empty string.
func (o Op) String() string {
	switch o.Kind {
	case OpLeaf:
		return ""
	case OpAdd:
		return "+"
	case OpMul:
		return "*"
	case OpPow:
		return "**" + strconv.FormatFloat(o.Exponent, 'g', -1, 64)
	case OpTanh:
		return "tanh"
	case OpReLU:
		return "ReLU"
	case OpExp:
		return "exp"
	case OpLog:
		return "log"
	case OpSigmoid:
		return "sigmoid"
	default:
		return "unknown"
	}
}

// IsLeaf reports whether the op marks a leaf node.
func (o Op) IsLeaf() bool {
	return o.Kind == OpLeaf
}
