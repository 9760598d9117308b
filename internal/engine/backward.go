package engine

import "math"

// Backward computes the gradient of v with respect to every node reachable
// from it, by reverse-mode automatic differentiation.
//
// Algorithm:
//  1. Seed v's gradient with 1 (dv/dv).
//  2. Build a topological order over the reachable graph with a visited-set
//     DFS, so that a node shared by several consumers is ordered once, not
//     once per path.
//  3. Walk the order in reverse (root first, leaves last); each node applies
//     its operation's local gradient rule, adding a contribution to each
//     operand's gradient from the node's own already-finalized gradient.
//
// Accumulation is the load-bearing part: a node used as an operand by more
// than one consumer receives the sum of all path contributions. Overwriting
// instead of adding would silently keep only the last path's term.
//
// Backward is not idempotent. Calling it again on the same root without
// first calling ZeroGrad re-accumulates on top of the existing gradients
// and doubles every value.
func (v *Value) Backward() {
	order := topoSort(v)

	v.grad = 1.0
	for i := len(order) - 1; i >= 0; i-- {
		order[i].backward()
	}
}

// ZeroGrad resets the gradient of every node reachable from v to zero,
// preparing the graph for another Backward call.
func (v *Value) ZeroGrad() {
	visited := make(map[*Value]bool)
	var visit func(*Value)
	visit = func(node *Value) {
		if visited[node] {
			return
		}
		visited[node] = true
		node.grad = 0
		for _, p := range node.prev {
			visit(p)
		}
	}
	visit(v)
}

// topoSort returns the nodes reachable from root in topological order:
// every node's operands appear before the node itself. The visited set
// guarantees single-visit semantics on a DAG — a node reachable through
// two paths is appended exactly once.
func topoSort(root *Value) []*Value {
	visited := make(map[*Value]bool)
	var order []*Value

	var visit func(*Value)
	visit = func(node *Value) {
		if visited[node] {
			return
		}
		visited[node] = true
		for _, p := range node.prev {
			visit(p)
		}
		order = append(order, node)
	}
	visit(root)

	return order
}

// backward applies the node's local gradient rule, adding a contribution to
// each operand's gradient. It assumes the node's own gradient is final,
// which the reverse topological walk in Backward guarantees.
func (v *Value) backward() {
	switch v.op {
	case OpAdd:
		// d(a+b)/da = 1, d(a+b)/db = 1
		v.prev[0].grad += v.grad
		v.prev[1].grad += v.grad
	case OpMul:
		// d(a*b)/da = b, d(a*b)/db = a
		v.prev[0].grad += v.prev[1].data * v.grad
		v.prev[1].grad += v.prev[0].data * v.grad
	case OpPow:
		// d(a^n)/da = n * a^(n-1)
		v.prev[0].grad += v.exponent * math.Pow(v.prev[0].data, v.exponent-1) * v.grad
	case OpTanh:
		// d(tanh(a))/da = 1 - tanh²(a), using the node's own output
		v.prev[0].grad += (1 - v.data*v.data) * v.grad
	case OpLeaf:
		// no operands
	}
}
