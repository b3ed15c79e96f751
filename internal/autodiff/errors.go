package autodiff

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrInvalidExponent = errors.New("exponent must be a constant real number, not a differentiable value")
	ErrInvalidOperand  = errors.New("operand is neither a *Value nor a real number")
)

// OperandError reports an operand rejected by an operator.
type OperandError struct {
	Op      string // Operator name (e.g., "pow", "lift")
	Operand any    // Offending operand
	Err     error  // Underlying sentinel error
}

// Error implements the error interface.
func (e *OperandError) Error() string {
	return fmt.Sprintf("%s: operand %v (%T): %v", e.Op, e.Operand, e.Operand, e.Err)
}

// Unwrap returns the sentinel error so callers can use errors.Is.
func (e *OperandError) Unwrap() error {
	return e.Err
}
