package autodiff_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/micrograd/internal/autodiff"
)

const delta = 1e-9

func TestAdd(t *testing.T) {
	a := autodiff.NewValue(3)
	b := autodiff.NewValue(5)
	out := a.Add(b)

	assert.Equal(t, 8.0, out.Data())
	assert.Equal(t, "+", out.Op().String())

	out.Backward()
	assert.Equal(t, 1.0, out.Grad())
	assert.Equal(t, out.Grad(), a.Grad())
	assert.Equal(t, out.Grad(), b.Grad())
}

func TestMul(t *testing.T) {
	a := autodiff.NewValue(3)
	b := autodiff.NewValue(4)
	out := a.Mul(b)

	assert.Equal(t, 12.0, out.Data())

	out.Backward()
	assert.Equal(t, 4.0, a.Grad())
	assert.Equal(t, 3.0, b.Grad())
}

func TestPow(t *testing.T) {
	a := autodiff.NewValue(2)
	out := a.Pow(3)

	assert.Equal(t, 8.0, out.Data())
	assert.Equal(t, "**3", out.Op().String())

	out.Backward()
	assert.InDelta(t, 12.0, a.Grad(), delta) // 3 * 2^2
}

func TestTanh(t *testing.T) {
	a := autodiff.NewValue(0)
	out := a.Tanh()

	assert.Equal(t, 0.0, out.Data())

	out.Backward()
	assert.Equal(t, 1.0, a.Grad())
}

func TestTanh_MatchesClosedForm(t *testing.T) {
	a := autodiff.NewValue(0.8814)
	out := a.Tanh()

	assert.InDelta(t, 0.7071, out.Data(), 1e-4)

	out.Backward()
	assert.InDelta(t, 1-out.Data()*out.Data(), a.Grad(), delta)
}

func TestReLU(t *testing.T) {
	t.Run("negative", func(t *testing.T) {
		a := autodiff.NewValue(-5)
		out := a.ReLU()
		assert.Equal(t, 0.0, out.Data())

		out.Backward()
		assert.Equal(t, 0.0, a.Grad())
	})

	t.Run("positive", func(t *testing.T) {
		a := autodiff.NewValue(5)
		out := a.ReLU()
		assert.Equal(t, 5.0, out.Data())

		out.Backward()
		assert.Equal(t, 1.0, a.Grad())
	})

	t.Run("zero", func(t *testing.T) {
		a := autodiff.NewValue(0)
		out := a.ReLU()
		assert.Equal(t, 0.0, out.Data())

		out.Backward()
		assert.Equal(t, 0.0, a.Grad())
	})
}

func TestExp(t *testing.T) {
	a := autodiff.NewValue(1)
	out := a.Exp()

	assert.InDelta(t, 2.718281828459045, out.Data(), delta)

	out.Backward()
	assert.Equal(t, out.Data(), a.Grad())
}

func TestLog(t *testing.T) {
	a := autodiff.NewValue(4)
	out := a.Log()

	out.Backward()
	assert.InDelta(t, 0.25, a.Grad(), delta)
}

func TestSigmoid(t *testing.T) {
	a := autodiff.NewValue(0)
	out := a.Sigmoid()

	assert.Equal(t, 0.5, out.Data())

	out.Backward()
	assert.InDelta(t, 0.25, a.Grad(), delta)
}

func TestDerivedOps(t *testing.T) {
	t.Run("neg", func(t *testing.T) {
		a := autodiff.NewValue(3)
		out := a.Neg()
		assert.Equal(t, -3.0, out.Data())
		assert.Equal(t, "*", out.Op().String())

		out.Backward()
		assert.Equal(t, -1.0, a.Grad())
	})

	t.Run("sub", func(t *testing.T) {
		a := autodiff.NewValue(7)
		b := autodiff.NewValue(2)
		out := a.Sub(b)
		assert.Equal(t, 5.0, out.Data())

		out.Backward()
		assert.Equal(t, 1.0, a.Grad())
		assert.Equal(t, -1.0, b.Grad())
	})

	t.Run("div", func(t *testing.T) {
		a := autodiff.NewValue(6)
		b := autodiff.NewValue(3)
		out := a.Div(b)
		assert.InDelta(t, 2.0, out.Data(), delta)

		out.Backward()
		assert.InDelta(t, 1.0/3.0, a.Grad(), delta)
		assert.InDelta(t, -6.0/9.0, b.Grad(), delta)
	})
}

func TestScalarHelpers(t *testing.T) {
	x := autodiff.NewValue(4)

	assert.Equal(t, 6.0, x.AddScalar(2).Data())
	assert.Equal(t, 2.0, x.SubScalar(2).Data())
	assert.Equal(t, 8.0, x.MulScalar(2).Data())
	assert.InDelta(t, 2.0, x.DivScalar(2).Data(), delta)
}

// TestEndToEnd builds L = (a*b + c) * f and checks every gradient by hand.
func TestEndToEnd(t *testing.T) {
	a := autodiff.NewLabeled(2, "a")
	b := autodiff.NewLabeled(-3, "b")
	c := autodiff.NewLabeled(10, "c")
	e := a.Mul(b).SetLabel("e")
	d := e.Add(c).SetLabel("d")
	f := autodiff.NewLabeled(-2, "f")
	L := d.Mul(f).SetLabel("L")

	assert.Equal(t, -6.0, e.Data())
	assert.Equal(t, 4.0, d.Data())
	assert.Equal(t, -8.0, L.Data())

	L.Backward()

	assert.Equal(t, 1.0, L.Grad())
	assert.Equal(t, 4.0, f.Grad())
	assert.Equal(t, -2.0, d.Grad())
	assert.Equal(t, -2.0, c.Grad())
	assert.Equal(t, -2.0, e.Grad())
	assert.Equal(t, 6.0, a.Grad())
	assert.Equal(t, -4.0, b.Grad())
}

func TestSharedParentAccumulates(t *testing.T) {
	t.Run("square", func(t *testing.T) {
		x := autodiff.NewValue(3)
		y := x.Mul(x)

		y.Backward()
		assert.Equal(t, 2*x.Data(), x.Grad())
		assert.Len(t, y.Parents(), 1)
	})

	t.Run("add self", func(t *testing.T) {
		x := autodiff.NewValue(3)
		y := x.Add(x)

		y.Backward()
		assert.Equal(t, 2.0, x.Grad())
	})

	t.Run("diamond", func(t *testing.T) {
		// x feeds y through u = 2x and w = x^2, so dy/dx = 2 + 2x.
		x := autodiff.NewValue(5)
		u := x.MulScalar(2)
		w := x.Pow(2)
		y := u.Add(w)

		y.Backward()
		assert.InDelta(t, 12.0, x.Grad(), delta)
	})
}

func TestForwardValueIsStable(t *testing.T) {
	a := autodiff.NewValue(1.5)
	b := autodiff.NewValue(-0.5)
	out := a.Mul(b).Tanh().Add(a.Exp())

	want := out.Data()
	for i := 0; i < 3; i++ {
		out.Backward()
	}

	assert.Equal(t, want, out.Data())
	assert.Equal(t, 1.5, a.Data())
	assert.Equal(t, -0.5, b.Data())
}

func TestBackward_AccumulatesWithoutReset(t *testing.T) {
	x := autodiff.NewValue(2)
	y := x.MulScalar(3)

	y.Backward()
	assert.Equal(t, 3.0, x.Grad())

	// Second pass adds on top; callers reset explicitly.
	y.Backward()
	assert.Equal(t, 6.0, x.Grad())

	autodiff.ZeroGrads(y)
	assert.Equal(t, 0.0, x.Grad())
	assert.Equal(t, 0.0, y.Grad())

	y.Backward()
	assert.Equal(t, 3.0, x.Grad())
}

func TestBackward_UnreachedNodesKeepGradient(t *testing.T) {
	x := autodiff.NewValue(2)
	y := autodiff.NewValue(7)
	left := x.MulScalar(3)
	right := y.MulScalar(5)

	right.Backward()
	require.Equal(t, 5.0, y.Grad())

	left.Backward()
	assert.Equal(t, 3.0, x.Grad())
	assert.Equal(t, 5.0, y.Grad())
	assert.Equal(t, 0.0, autodiff.NewValue(1).Grad())
}

func TestBackward_FromIntermediateNode(t *testing.T) {
	a := autodiff.NewValue(2)
	b := autodiff.NewValue(3)
	e := a.Mul(b)
	L := e.AddScalar(1).MulScalar(10)

	e.Backward()

	assert.Equal(t, 1.0, e.Grad())
	assert.Equal(t, 3.0, a.Grad())
	assert.Equal(t, 2.0, b.Grad())
	assert.Equal(t, 0.0, L.Grad())
}

func TestZeroGrad_OnlyTouchesNode(t *testing.T) {
	x := autodiff.NewValue(2)
	y := x.MulScalar(3)
	y.Backward()

	y.ZeroGrad()
	assert.Equal(t, 0.0, y.Grad())
	assert.Equal(t, 3.0, x.Grad())
}

func TestLift(t *testing.T) {
	v := autodiff.NewValue(1)

	got, err := autodiff.Lift(v)
	require.NoError(t, err)
	assert.Same(t, v, got)

	for _, lit := range []any{2, int64(2), float32(2), 2.0, uint8(2)} {
		got, err := autodiff.Lift(lit)
		require.NoError(t, err)
		assert.Equal(t, 2.0, got.Data())
		assert.True(t, got.IsLeaf())
	}

	_, err = autodiff.Lift("2")
	assert.ErrorIs(t, err, autodiff.ErrInvalidOperand)

	var nilValue *autodiff.Value
	_, err = autodiff.Lift(nilValue)
	assert.ErrorIs(t, err, autodiff.ErrInvalidOperand)
}

func TestDynamicOperators(t *testing.T) {
	x := autodiff.NewValue(4)

	sum, err := autodiff.Add(1, x) // literal on the left
	require.NoError(t, err)
	assert.Equal(t, 5.0, sum.Data())

	diff, err := autodiff.Sub(10, x)
	require.NoError(t, err)
	assert.Equal(t, 6.0, diff.Data())

	prod, err := autodiff.Mul(x, 2.5)
	require.NoError(t, err)
	assert.Equal(t, 10.0, prod.Data())

	quot, err := autodiff.Div(2, x)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, quot.Data(), delta)

	quot.Backward()
	assert.InDelta(t, -2.0/16.0, x.Grad(), delta)

	_, err = autodiff.Mul(x, []float64{1})
	assert.ErrorIs(t, err, autodiff.ErrInvalidOperand)
}

func TestPow_RejectsValueExponent(t *testing.T) {
	base := autodiff.NewValue(2)
	exp := autodiff.NewValue(3)

	out, err := autodiff.Pow(base, exp)
	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, autodiff.ErrInvalidExponent)

	var opErr *autodiff.OperandError
	require.True(t, errors.As(err, &opErr))
	assert.Equal(t, "pow", opErr.Op)
	assert.Same(t, exp, opErr.Operand)

	_, err = autodiff.Pow(base, "3")
	assert.ErrorIs(t, err, autodiff.ErrInvalidExponent)
}

func TestPow_ConstantExponent(t *testing.T) {
	base := autodiff.NewValue(2)

	out, err := autodiff.Pow(base, 3)
	require.NoError(t, err)
	assert.Equal(t, 8.0, out.Data())

	out.Backward()
	assert.InDelta(t, 12.0, base.Grad(), delta)

	lit, err := autodiff.Pow(9, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, lit.Data(), delta)
}

func TestSum(t *testing.T) {
	assert.Equal(t, 0.0, autodiff.Sum().Data())

	xs := []*autodiff.Value{autodiff.NewValue(1), autodiff.NewValue(2), autodiff.NewValue(3)}
	s := autodiff.Sum(xs...)
	assert.Equal(t, 6.0, s.Data())

	s.Backward()
	for _, x := range xs {
		assert.Equal(t, 1.0, x.Grad())
	}
}

func TestOpString(t *testing.T) {
	tests := []struct {
		op   autodiff.Op
		want string
	}{
		{autodiff.Op{Kind: autodiff.OpLeaf}, ""},
		{autodiff.Op{Kind: autodiff.OpAdd}, "+"},
		{autodiff.Op{Kind: autodiff.OpMul}, "*"},
		{autodiff.Op{Kind: autodiff.OpPow, Exponent: -1}, "**-1"},
		{autodiff.Op{Kind: autodiff.OpPow, Exponent: 0.5}, "**0.5"},
		{autodiff.Op{Kind: autodiff.OpTanh}, "tanh"},
		{autodiff.Op{Kind: autodiff.OpReLU}, "ReLU"},
		{autodiff.Op{Kind: autodiff.OpExp}, "exp"},
		{autodiff.Op{Kind: autodiff.OpLog}, "log"},
		{autodiff.Op{Kind: autodiff.OpSigmoid}, "sigmoid"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.op.String())
	}
}

func TestValueString(t *testing.T) {
	v := autodiff.NewLabeled(2, "a")
	assert.Equal(t, "Value(a, data=2, grad=0)", v.String())
}

func TestParents(t *testing.T) {
	a := autodiff.NewValue(1)
	b := autodiff.NewValue(2)
	out := a.Add(b)

	assert.Empty(t, a.Parents())
	assert.Equal(t, []*autodiff.Value{a, b}, out.Parents())

	// Mutating the returned slice must not affect the graph.
	ps := out.Parents()
	ps[0] = b
	assert.Same(t, a, out.Parents()[0])
}
