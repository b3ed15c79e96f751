package autodiff

// Edge connects a parent to a child that was computed from it.
type Edge struct {
	From *Value // parent (operand)
	To   *Value // child (result)
}

// Trace enumerates the graph rooted at root for rendering.
//
// Nodes are listed in topological order (parents first, root last) and edges
// follow the same order, one per distinct parent of each non-leaf node.
func Trace(root *Value) ([]*Value, []Edge) {
	nodes := TopologicalOrder(root)

	var edges []Edge
	for _, n := range nodes {
		for _, p := range n.parents {
			edges = append(edges, Edge{From: p, To: n})
		}
	}

	return nodes, edges
}
