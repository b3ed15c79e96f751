package autodiff

import "math"

// TopologicalOrder returns every Value reachable from root, parents first.
//
// The ordering is the post-order of a depth-first walk that visits parents in
// operand order and each node at most once. Every node therefore appears after
// all of its parents, and root is last.
//
// The walk uses an explicit stack, so long chains (a sum over thousands of
// terms) do not grow the goroutine stack.
func TopologicalOrder(root *Value) []*Value {
	type frame struct {
		node *Value
		next int // index of the next parent to visit
	}

	order := make([]*Value, 0, 16)
	visited := map[*Value]struct{}{root: {}}
	stack := []frame{{node: root}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < len(top.node.parents) {
			p := top.node.parents[top.next]
			top.next++
			if _, seen := visited[p]; !seen {
				visited[p] = struct{}{}
				stack = append(stack, frame{node: p})
			}
			continue
		}
		order = append(order, top.node)
		stack = stack[:len(stack)-1]
	}

	return order
}

// Backward computes the gradient of v with respect to every Value it depends on.
//
// Algorithm:
//  1. Order v's ancestry topologically (parents before children)
//  2. Seed v.grad = 1, since dv/dv = 1
//  3. Walk the order in reverse, letting each node add its contribution
//     into its parents' gradients
//
// A node is only processed after all of its children have been, so
// contributions through shared parents (diamonds) are summed before being
// passed on. Nodes not reachable from v keep whatever gradient they held.
func (v *Value) Backward() {
	topo := TopologicalOrder(v)

	v.grad = 1.0

	for i := len(topo) - 1; i >= 0; i-- {
		propagate(topo[i])
	}
}

// propagate adds the local derivative contributions of out into its operands.
func propagate(out *Value) {
	g := out.grad

	switch out.op.Kind {
	case OpLeaf:
		// nothing upstream

	case OpAdd:
		a, b := out.operands[0], out.operands[1]
		a.grad += g
		b.grad += g

	case OpMul:
		a, b := out.operands[0], out.operands[1]
		a.grad += b.data * g
		b.grad += a.data * g

	case OpPow:
		a, k := out.operands[0], out.op.Exponent
		a.grad += k * math.Pow(a.data, k-1) * g

	case OpTanh:
		t := out.data
		out.operands[0].grad += (1 - t*t) * g

	case OpReLU:
		// checks the output, not the input
		if out.data > 0 {
			out.operands[0].grad += g
		}

	case OpExp:
		out.operands[0].grad += out.data * g

	case OpLog:
		a := out.operands[0]
		a.grad += g / a.data

	case OpSigmoid:
		s := out.data
		out.operands[0].grad += s * (1 - s) * g
	}
}

// ZeroGrad resets v's gradient to 0. Ancestors are not touched.
func (v *Value) ZeroGrad() {
	v.grad = 0
}

// ZeroGrads resets the gradient of root and every Value reachable from it.
func ZeroGrads(root *Value) {
	for _, n := range TopologicalOrder(root) {
		n.grad = 0
	}
}
