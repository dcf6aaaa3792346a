package nn

import (
	"fmt"

	"github.com/tinygrad-ml/tinygrad/internal/scalar"
)

// Neuron is a single unit: activation(Σ w_i·x_i + b).
//
// It owns one weight leaf per input plus one bias leaf. The forward pass
// is composed from scalar operations, so gradients flow back to the
// weights, the bias and the inputs.
type Neuron struct {
	weights []*scalar.Value
	bias    *scalar.Value
	act     Activation
}

// NewNeuron creates a neuron with nInputs weights drawn from init and a
// zero bias.
func NewNeuron(nInputs int, act Activation, init Initializer) *Neuron {
	return newNeuron(nInputs, 1, act, init)
}

// newNeuron lets Layer pass its own fan-out to the initializer.
func newNeuron(fanIn, fanOut int, act Activation, init Initializer) *Neuron {
	weights := make([]*scalar.Value, fanIn)
	for i := range weights {
		weights[i] = scalar.New(init(fanIn, fanOut))
	}
	return &Neuron{
		weights: weights,
		bias:    scalar.New(0),
		act:     act,
	}
}

// Forward computes activation(Σ w_i·x_i + b) over the input nodes.
//
// Returns ErrShapeMismatch if the input count does not match the neuron's
// configured width; the graph is left unchanged in that case.
func (n *Neuron) Forward(inputs []*scalar.Value) (*scalar.Value, error) {
	if len(inputs) != len(n.weights) {
		return nil, fmt.Errorf("neuron: got %d inputs, want %d: %w", len(inputs), len(n.weights), ErrShapeMismatch)
	}
	sum := n.bias
	for i, w := range n.weights {
		sum = sum.Add(w.Mul(inputs[i]))
	}
	return n.act.apply(sum), nil
}

// Parameters returns the weights followed by the bias.
func (n *Neuron) Parameters() []*scalar.Value {
	params := make([]*scalar.Value, 0, len(n.weights)+1)
	params = append(params, n.weights...)
	return append(params, n.bias)
}

// Activation returns the neuron's configured nonlinearity.
func (n *Neuron) Activation() Activation {
	return n.act
}

// String shows the activation and input width.
func (n *Neuron) String() string {
	return fmt.Sprintf("%sNeuron(%d)", n.act, len(n.weights))
}
