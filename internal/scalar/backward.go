package scalar

// Backward computes gradients of v with respect to every node reachable
// from it.
//
// The graph is first linearized by a depth-first post-order traversal, so
// every node appears after all of its operands; a visited set ensures each
// node is listed once even when it is reachable through several paths
// (shared sub-expressions). v's gradient is set to 1, then the order is
// walked in reverse, invoking each node's local rule exactly once. By the
// time a node is processed, every consumer has already added its
// contribution, so gradients over diamond-shaped graphs sum correctly.
//
// Gradients accumulate: calling Backward again without resetting adds a
// second set of contributions on top of the first, which is what mini-batch
// gradient accumulation wants. Use ZeroGrad between steps otherwise.
func (v *Value) Backward() {
	var order []*Value
	visited := make(map[*Value]struct{})

	var visit func(n *Value)
	visit = func(n *Value) {
		if _, ok := visited[n]; ok {
			return
		}
		visited[n] = struct{}{}
		if n.op != nil {
			for _, in := range n.op.inputs {
				visit(in)
			}
		}
		order = append(order, n)
	}
	visit(v)

	v.grad = 1
	for i := len(order) - 1; i >= 0; i-- {
		if op := order[i].op; op != nil {
			op.backward(order[i])
		}
	}
}

// ZeroGrad resets the gradient of every given node to zero. Data values
// are untouched. Typically called with a model's parameter list between
// training steps.
func ZeroGrad(nodes []*Value) {
	for _, n := range nodes {
		n.grad = 0
	}
}
