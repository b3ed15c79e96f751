package autodiff

import "math"

// Add returns v + other.
//
// Backward: d/dv = 1, d/dother = 1.
func (v *Value) Add(other *Value) *Value {
	return newNode(v.data+other.data, Op{Kind: OpAdd}, v, other)
}

// Mul returns v * other.
//
// Backward: d/dv = other, d/dother = v.
func (v *Value) Mul(other *Value) *Value {
	return newNode(v.data*other.data, Op{Kind: OpMul}, v, other)
}

// Pow returns v ** k for a constant exponent k.
//
// Backward: d/dv = k * v**(k-1).
func (v *Value) Pow(k float64) *Value {
	return newNode(math.Pow(v.data, k), Op{Kind: OpPow, Exponent: k}, v)
}

// Neg returns -v, built as v * -1.
func (v *Value) Neg() *Value {
	return v.Mul(NewValue(-1))
}

// Sub returns v - other, built as v + (-other).
func (v *Value) Sub(other *Value) *Value {
	return v.Add(other.Neg())
}

// Div returns v / other, built as v * other**-1.
func (v *Value) Div(other *Value) *Value {
	return v.Mul(other.Pow(-1))
}

// Tanh returns the hyperbolic tangent of v, computed as (e^2x - 1) / (e^2x + 1).
//
// Backward: d/dv = 1 - tanh(v)^2.
func (v *Value) Tanh() *Value {
	e2x := math.Exp(2 * v.data)
	return newNode((e2x-1)/(e2x+1), Op{Kind: OpTanh}, v)
}

// ReLU returns max(0, v).
//
// Backward: the gradient passes through only when the output is positive.
func (v *Value) ReLU() *Value {
	out := v.data
	if out < 0 {
		out = 0
	}
	return newNode(out, Op{Kind: OpReLU}, v)
}

// Exp returns e^v.
//
// Backward: d/dv = e^v, read from the output.
func (v *Value) Exp() *Value {
	return newNode(math.Exp(v.data), Op{Kind: OpExp}, v)
}

// Log returns the natural logarithm of v.
//
// Backward: d/dv = 1/v.
func (v *Value) Log() *Value {
	return newNode(math.Log(v.data), Op{Kind: OpLog}, v)
}

// Sigmoid returns 1 / (1 + e^-v).
//
// Backward: d/dv = s * (1 - s) where s is the output.
func (v *Value) Sigmoid() *Value {
	return newNode(1/(1+math.Exp(-v.data)), Op{Kind: OpSigmoid}, v)
}

// AddScalar returns v + c, wrapping c in a fresh leaf.
func (v *Value) AddScalar(c float64) *Value {
	return v.Add(NewValue(c))
}

// SubScalar returns v - c, wrapping c in a fresh leaf.
func (v *Value) SubScalar(c float64) *Value {
	return v.Sub(NewValue(c))
}

// MulScalar returns v * c, wrapping c in a fresh leaf.
func (v *Value) MulScalar(c float64) *Value {
	return v.Mul(NewValue(c))
}

// DivScalar returns v / c, wrapping c in a fresh leaf.
func (v *Value) DivScalar(c float64) *Value {
	return v.Div(NewValue(c))
}

// Add returns a + b where either side may be a *Value or a real number.
func Add(a, b any) (*Value, error) {
	x, y, err := liftPair(a, b)
	if err != nil {
		return nil, err
	}
	return x.Add(y), nil
}

// Sub returns a - b where either side may be a *Value or a real number.
func Sub(a, b any) (*Value, error) {
	x, y, err := liftPair(a, b)
	if err != nil {
		return nil, err
	}
	return x.Sub(y), nil
}

// Mul returns a * b where either side may be a *Value or a real number.
func Mul(a, b any) (*Value, error) {
	x, y, err := liftPair(a, b)
	if err != nil {
		return nil, err
	}
	return x.Mul(y), nil
}

// Div returns a / b where either side may be a *Value or a real number.
func Div(a, b any) (*Value, error) {
	x, y, err := liftPair(a, b)
	if err != nil {
		return nil, err
	}
	return x.Div(y), nil
}

// Pow returns base ** exponent.
//
// The base may be a *Value or a real number. The exponent must be a constant
// real number. A *Value exponent (or any other type) fails with
// ErrInvalidExponent, since only constant exponents are differentiated.
func Pow(base, exponent any) (*Value, error) {
	k, ok := toFloat(exponent)
	if !ok {
		return nil, &OperandError{Op: "pow", Operand: exponent, Err: ErrInvalidExponent}
	}
	x, err := Lift(base)
	if err != nil {
		return nil, err
	}
	return x.Pow(k), nil
}

// Sum adds values left to right. Sum of nothing is a leaf holding 0.
func Sum(values ...*Value) *Value {
	if len(values) == 0 {
		return NewValue(0)
	}
	acc := values[0]
	for _, v := range values[1:] {
		acc = acc.Add(v)
	}
	return acc
}

func liftPair(a, b any) (*Value, *Value, error) {
	x, err := Lift(a)
	if err != nil {
		return nil, nil, err
	}
	y, err := Lift(b)
	if err != nil {
		return nil, nil, err
	}
	return x, y, nil
}
