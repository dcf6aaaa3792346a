package scalar

import "math"

// Kind identifies the operation that produced a node. The set is closed:
// every differentiable primitive the engine supports appears here, and the
// backward pass dispatches on it.
type Kind uint8

const (
	KindLeaf Kind = iota
	KindAdd
	KindMul
	KindPow
	KindExp
	KindReLU
	KindLeakyReLU
	KindELU
	KindSigmoid
	KindTanh
)

var kindNames = [...]string{
	KindLeaf:      "leaf",
	KindAdd:       "+",
	KindMul:       "*",
	KindPow:       "**",
	KindExp:       "exp",
	KindReLU:      "relu",
	KindLeakyReLU: "leaky_relu",
	KindELU:       "elu",
	KindSigmoid:   "sigmoid",
	KindTanh:      "tanh",
}

// String returns a short tag for the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// operation records how a node was produced: the kind tag, the operand
// nodes in argument order, and any fixed real parameter the backward rule
// needs (the power exponent, or a leaky-ReLU slope / ELU alpha). Fixed
// parameters are constants of the operation, never differentiated.
type operation struct {
	kind   Kind
	inputs []*Value
	param  float64
}

// backward applies the local derivative rule for out's operation, adding
// each operand's contribution to its gradient. out.grad must already hold
// the full downstream gradient: the reverse-topological order in Backward
// guarantees every consumer of out has run first.
func (op *operation) backward(out *Value) {
	switch op.kind {
	case KindAdd:
		a, b := op.inputs[0], op.inputs[1]
		a.grad += out.grad
		b.grad += out.grad

	case KindMul:
		a, b := op.inputs[0], op.inputs[1]
		a.grad += b.data * out.grad
		b.grad += a.data * out.grad

	case KindPow:
		// At a zero base (valid for k >= 0), k * 0^(k-1) would evaluate
		// to Inf or NaN; the contribution is defined as 0 instead.
		a := op.inputs[0]
		if a.data != 0 {
			a.grad += op.param * math.Pow(a.data, op.param-1) * out.grad
		}

	case KindExp:
		a := op.inputs[0]
		a.grad += out.data * out.grad

	case KindReLU:
		// Sub-gradient at 0 is defined as 0.
		a := op.inputs[0]
		if a.data > 0 {
			a.grad += out.grad
		}

	case KindLeakyReLU:
		a := op.inputs[0]
		if a.data > 0 {
			a.grad += out.grad
		} else {
			a.grad += op.param * out.grad
		}

	case KindELU:
		a := op.inputs[0]
		if a.data > 0 {
			a.grad += out.grad
		} else {
			// For x <= 0, out = alpha*(exp(x)-1), so d(out)/dx = out + alpha.
			a.grad += (out.data + op.param) * out.grad
		}

	case KindSigmoid:
		a := op.inputs[0]
		a.grad += out.data * (1 - out.data) * out.grad

	case KindTanh:
		a := op.inputs[0]
		a.grad += (1 - out.data*out.data) * out.grad
	}
}
