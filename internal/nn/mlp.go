package nn

import (
	"fmt"
	"strings"

	"github.com/tinygrad-ml/tinygrad/internal/scalar"
)

// MLP is a multi-layer perceptron: an ordered stack of fully connected
// layers where each layer's outputs feed the next layer's inputs.
type MLP struct {
	layers []*Layer
}

// NewMLP creates a network taking nInputs values through len(sizes)
// layers; sizes[i] is the width of layer i and activations[i] its
// nonlinearity.
//
// Returns ErrShapeMismatch if the activation list length does not match
// the layer list.
func NewMLP(nInputs int, sizes []int, activations []Activation, init Initializer) (*MLP, error) {
	if len(activations) != len(sizes) {
		return nil, fmt.Errorf("mlp: %d layer sizes but %d activations: %w", len(sizes), len(activations), ErrShapeMismatch)
	}
	layers := make([]*Layer, len(sizes))
	in := nInputs
	for i, out := range sizes {
		layers[i] = NewLayer(in, out, activations[i], init)
		in = out
	}
	return &MLP{layers: layers}, nil
}

// Forward pipes the inputs through each layer in order and returns the
// last layer's outputs.
func (m *MLP) Forward(inputs []*scalar.Value) ([]*scalar.Value, error) {
	xs := inputs
	for _, layer := range m.layers {
		out, err := layer.Forward(xs)
		if err != nil {
			return nil, err
		}
		xs = out
	}
	return xs, nil
}

// Parameters returns every layer's parameters in layer order.
func (m *MLP) Parameters() []*scalar.Value {
	var params []*scalar.Value
	for _, layer := range m.layers {
		params = append(params, layer.Parameters()...)
	}
	return params
}

// Layers returns the network's layers in order.
func (m *MLP) Layers() []*Layer {
	return m.layers
}

// String lists the network's layers.
func (m *MLP) String() string {
	names := make([]string, len(m.layers))
	for i, layer := range m.layers {
		names[i] = layer.String()
	}
	return fmt.Sprintf("MLP[%s]", strings.Join(names, ", "))
}
