package nn

import (
	"fmt"
	"strings"

	"github.com/tinygrad-ml/tinygrad/internal/scalar"
)

// Layer is a fully connected row of neurons sharing the same inputs.
type Layer struct {
	neurons []*Neuron
	nIn     int
}

// NewLayer creates nOutputs neurons of width nInputs, all with the same
// activation and initializer.
func NewLayer(nInputs, nOutputs int, act Activation, init Initializer) *Layer {
	neurons := make([]*Neuron, nOutputs)
	for i := range neurons {
		neurons[i] = newNeuron(nInputs, nOutputs, act, init)
	}
	return &Layer{neurons: neurons, nIn: nInputs}
}

// Forward feeds the inputs through every neuron and returns the outputs in
// neuron order.
//
// Returns ErrShapeMismatch if the input count does not match the layer's
// input width.
func (l *Layer) Forward(inputs []*scalar.Value) ([]*scalar.Value, error) {
	if len(inputs) != l.nIn {
		return nil, fmt.Errorf("layer: got %d inputs, want %d: %w", len(inputs), l.nIn, ErrShapeMismatch)
	}
	outputs := make([]*scalar.Value, len(l.neurons))
	for i, neuron := range l.neurons {
		out, err := neuron.Forward(inputs)
		if err != nil {
			return nil, err
		}
		outputs[i] = out
	}
	return outputs, nil
}

// Parameters returns every neuron's parameters in neuron order.
func (l *Layer) Parameters() []*scalar.Value {
	var params []*scalar.Value
	for _, neuron := range l.neurons {
		params = append(params, neuron.Parameters()...)
	}
	return params
}

// InputSize returns the layer's input width.
func (l *Layer) InputSize() int {
	return l.nIn
}

// OutputSize returns the number of neurons.
func (l *Layer) OutputSize() int {
	return len(l.neurons)
}

// String lists the layer's neurons.
func (l *Layer) String() string {
	names := make([]string, len(l.neurons))
	for i, neuron := range l.neurons {
		names[i] = neuron.String()
	}
	return fmt.Sprintf("Layer[%s]", strings.Join(names, ", "))
}
