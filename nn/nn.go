// Copyright 2026 TinyGrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/tinygrad-ml/tinygrad/internal/nn"
)

// Module is the base interface for all neural network components.
type Module = nn.Module

// ErrShapeMismatch is returned when a forward pass receives the wrong
// number of inputs.
var ErrShapeMismatch = nn.ErrShapeMismatch

// ZeroGrad resets the gradients of all of m's parameters.
func ZeroGrad(m Module) {
	nn.ZeroGrad(m)
}

// Neuron is a single unit: activation(Σ w·x + b).
type Neuron = nn.Neuron

// NewNeuron creates a neuron with nInputs weights drawn from init.
func NewNeuron(nInputs int, act Activation, init Initializer) *Neuron {
	return nn.NewNeuron(nInputs, act, init)
}

// Layer is a fully connected row of neurons.
type Layer = nn.Layer

// NewLayer creates nOutputs neurons of width nInputs.
func NewLayer(nInputs, nOutputs int, act Activation, init Initializer) *Layer {
	return nn.NewLayer(nInputs, nOutputs, act, init)
}

// MLP is a multi-layer perceptron.
type MLP = nn.MLP

// NewMLP creates a network of len(sizes) layers over nInputs inputs;
// activations must have one entry per layer.
func NewMLP(nInputs int, sizes []int, activations []Activation, init Initializer) (*MLP, error) {
	return nn.NewMLP(nInputs, sizes, activations, init)
}

// Activation selects a unit's nonlinearity.
type Activation = nn.Activation

// Identity applies no nonlinearity.
func Identity() Activation { return nn.Identity() }

// ReLU applies max(0, x).
func ReLU() Activation { return nn.ReLU() }

// Sigmoid applies 1 / (1 + exp(-x)).
func Sigmoid() Activation { return nn.Sigmoid() }

// Tanh applies the hyperbolic tangent.
func Tanh() Activation { return nn.Tanh() }

// LeakyReLU applies x for positive inputs and slope*x otherwise.
func LeakyReLU(slope float64) Activation { return nn.LeakyReLU(slope) }

// ELU applies x for positive inputs and alpha*(exp(x)-1) otherwise.
func ELU(alpha float64) Activation { return nn.ELU(alpha) }

// Initializer samples one weight for a given fan-in and fan-out.
type Initializer = nn.Initializer

// Uniform draws weights from U(-1, 1).
func Uniform(rng *rand.Rand) Initializer { return nn.Uniform(rng) }

// Xavier draws weights from the Glorot uniform distribution.
func Xavier(rng *rand.Rand) Initializer { return nn.Xavier(rng) }

// Constant initializes every weight to c.
func Constant(c float64) Initializer { return nn.Constant(c) }

// interface guards
var (
	_ Module = (*Neuron)(nil)
	_ Module = (*Layer)(nil)
	_ Module = (*MLP)(nil)
)
