// Package engine implements reverse-mode automatic differentiation over
// scalar values.
//
// Every arithmetic operation records itself into a computation graph as it
// executes: the result node remembers which operation produced it and which
// operand nodes it was computed from. Because a node may feed several
// downstream computations the graph is a DAG, not a tree, and Backward
// resolves that sharing by visiting each node exactly once in reverse
// topological order, accumulating gradient contributions from every path.
//
// Usage:
//
//	a := engine.New(2.0)
//	b := engine.New(-3.0)
//	c := engine.New(10.0)
//	f := a.Mul(b).Add(c).Tanh()
//
//	f.Backward()
//	fmt.Println(a.Grad()) // df/da
package engine

import (
	"fmt"
	"math"
)

// Value is a single node in the computation graph.
//
// A Value is created once and never restructured: data, op and prev are fixed
// at construction. The only post-construction mutation is gradient
// accumulation during Backward. Values are shared by pointer — the same node
// may appear as an operand of many downstream nodes, and its pointer identity
// is what dedupes it during traversal.
type Value struct {
	data     float64
	grad     float64
	op       Op
	prev     []*Value
	exponent float64 // exponent captured by Pow, unused for other ops
}

// New creates a leaf node holding data, with zero gradient and no operands.
func New(data float64) *Value {
	return &Value{data: data, op: OpLeaf}
}

// Data returns the forward-computed value of this node.
func (v *Value) Data() float64 {
	return v.data
}

// Grad returns the gradient accumulated into this node by the most recent
// Backward call, or zero if no backward pass has run.
func (v *Value) Grad() float64 {
	return v.grad
}

// Op returns the operation that produced this node.
func (v *Value) Op() Op {
	return v.op
}

// Add returns a new node holding v + other, with operands [v, other].
func (v *Value) Add(other *Value) *Value {
	return &Value{
		data: v.data + other.data,
		op:   OpAdd,
		prev: []*Value{v, other},
	}
}

// Mul returns a new node holding v * other, with operands [v, other].
func (v *Value) Mul(other *Value) *Value {
	return &Value{
		data: v.data * other.data,
		op:   OpMul,
		prev: []*Value{v, other},
	}
}

// Pow returns a new node holding v raised to the fixed exponent n.
//
// The exponent is an ordinary float captured at construction time, not a
// graph node; no gradient flows to it. A non-integer power of a negative
// base yields NaN, which flows through the rest of the graph like any
// other value.
func (v *Value) Pow(n float64) *Value {
	return &Value{
		data:     math.Pow(v.data, n),
		op:       OpPow,
		prev:     []*Value{v},
		exponent: n,
	}
}

// Tanh returns a new node holding the hyperbolic tangent of v.
// The result is strictly inside (-1, 1) for finite input.
func (v *Value) Tanh() *Value {
	return &Value{
		data: math.Tanh(v.data),
		op:   OpTanh,
		prev: []*Value{v},
	}
}

// Neg returns -v, expressed as v * (-1) so it records like any other
// multiplication.
func (v *Value) Neg() *Value {
	return v.Mul(New(-1.0))
}

// Sub returns v - other, expressed as v + (-other).
func (v *Value) Sub(other *Value) *Value {
	return v.Add(other.Neg())
}

// String renders the node's data and gradient for debugging output.
func (v *Value) String() string {
	return fmt.Sprintf("Value(data=%v, grad=%v)", v.data, v.grad)
}
