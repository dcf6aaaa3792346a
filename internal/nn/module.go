// Package nn implements neural network building blocks on top of the
// scalar autodiff engine.
//
// This package provides:
//   - Module interface: anything that owns trainable parameters
//   - Neuron: a single unit, activation(Σ w·x + b)
//   - Layer: a fully connected row of neurons
//   - MLP: a stack of layers
//   - Activation: configuration for the unit nonlinearity
//   - Initializers: Uniform, Xavier, Constant weight schemes
//
// Every forward pass is built entirely from scalar operations, so the
// resulting output node is automatically differentiable: call Backward on
// it and read gradients off Parameters().
package nn

import (
	"errors"

	"github.com/tinygrad-ml/tinygrad/internal/scalar"
)

// ErrShapeMismatch is returned when a forward pass receives an input count
// that does not match the configured width, or when a network is configured
// with mismatched layer and activation lists.
var ErrShapeMismatch = errors.New("nn: shape mismatch")

// Module is the base interface for all neural network components.
//
// Parameters returns the trainable leaf nodes in a stable construction
// order: for composite modules, layer by layer, neuron by neuron, weights
// before bias. The slice contains only leaves, never intermediate or
// output nodes, so an optimizer can mutate their data directly.
type Module interface {
	Parameters() []*scalar.Value
}

// ZeroGrad resets the gradients of all of m's parameters.
//
// Call between training steps; otherwise Backward accumulates gradients
// across steps.
func ZeroGrad(m Module) {
	scalar.ZeroGrad(m.Parameters())
}
