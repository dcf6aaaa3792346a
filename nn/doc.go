// Copyright 2026 TinyGrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network building blocks over the scalar
// autodiff engine.
//
// # Overview
//
// This package contains:
//   - Units: Neuron, Layer, MLP
//   - Activations: Identity, ReLU, Sigmoid, Tanh, LeakyReLU, ELU
//   - Initialization: Uniform, Xavier, Constant
//   - Utilities: Module interface, ZeroGrad
//
// # Basic Usage
//
//	import (
//	    "math/rand"
//
//	    "github.com/tinygrad-ml/tinygrad/nn"
//	    "github.com/tinygrad-ml/tinygrad/scalar"
//	)
//
//	func main() {
//	    rng := rand.New(rand.NewSource(42))
//	    model, _ := nn.NewMLP(2, []int{4, 1},
//	        []nn.Activation{nn.Tanh(), nn.Identity()}, nn.Uniform(rng))
//
//	    inputs := []*scalar.Value{scalar.New(1), scalar.New(-1)}
//	    outputs, _ := model.Forward(inputs)
//	    outputs[0].Backward()
//	}
//
// # Activations
//
// Activation choices are explicit configuration. LeakyReLU and ELU take
// their coefficient as a constructor argument; there is no default:
//
//	nn.LeakyReLU(0.01)
//	nn.ELU(1.0)
//
// # Parameter Management
//
// Every unit exposes its trainable leaves for an external optimizer:
//
//	params := model.Parameters()
//	nn.ZeroGrad(model)
package nn
