// Package scalar implements reverse-mode automatic differentiation for
// scalar values.
//
// A Value is one node in a dynamically built computation graph: it carries
// the number itself, an accumulated gradient, and a record of the operation
// that produced it. Arithmetic and activation methods on *Value compute the
// forward result and link the new node to its operands, so the graph grows
// as the expression is written:
//
//	a := scalar.New(2)
//	b := scalar.New(-3)
//	y := a.Mul(b).Add(a).Tanh()
//	y.Backward()
//	_ = a.Grad() // dy/da
//
// Backward walks the graph in reverse-topological order and accumulates
// each node's gradient contribution into its operands.
package scalar

import "fmt"

// Value is one scalar node in the computation graph.
//
// A Value produced by an operation keeps references to its operands; a leaf
// (input or trainable parameter) has none. Values may be shared between any
// number of downstream consumers, so the graph is a DAG, not a tree. A node
// can only reference nodes that existed before it, which keeps the graph
// acyclic.
type Value struct {
	data float64
	grad float64
	op   *operation // nil for leaves
}

// New creates a leaf node holding data. Its gradient starts at zero.
func New(data float64) *Value {
	return &Value{data: data}
}

// Data returns the node's current value.
func (v *Value) Data() float64 {
	return v.data
}

// SetData overwrites the node's value. Optimizers use this to apply
// parameter updates between training steps; it does not touch the gradient.
func (v *Value) SetData(data float64) {
	v.data = data
}

// Grad returns the gradient accumulated by Backward since the last reset.
func (v *Value) Grad() float64 {
	return v.grad
}

// ZeroGrad resets the node's gradient to zero, leaving data unchanged.
func (v *Value) ZeroGrad() {
	v.grad = 0
}

// Kind returns the tag of the operation that produced this node,
// or KindLeaf for inputs and parameters.
func (v *Value) Kind() Kind {
	if v.op == nil {
		return KindLeaf
	}
	return v.op.kind
}

// Operands returns the nodes consumed to produce this one, in the order
// they were passed to the operation. Leaves return nil.
func (v *Value) Operands() []*Value {
	if v.op == nil {
		return nil
	}
	return append([]*Value(nil), v.op.inputs...)
}

// String formats the node as Value(data=…, grad=…).
func (v *Value) String() string {
	return fmt.Sprintf("Value(data=%.4f, grad=%.4f)", v.data, v.grad)
}
