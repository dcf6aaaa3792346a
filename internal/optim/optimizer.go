// Package optim implements optimization algorithms for training models
// built on the scalar autodiff engine.
//
// This package provides:
//   - Optimizer interface: base interface for all optimizers
//   - SGD: stochastic gradient descent with optional momentum
//   - Adam: adaptive moment estimation
//
// Optimizers hold the parameter list a model exposes through
// Parameters(), read gradients off it after Backward, and mutate
// parameter data in place:
//
//	opt := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.05})
//	for range epochs {
//	    opt.ZeroGrad()
//	    loss := computeLoss(model, batch)
//	    loss.Backward()
//	    opt.Step()
//	}
package optim

import "github.com/tinygrad-ml/tinygrad/internal/scalar"

// Optimizer is the base interface for all optimization algorithms.
type Optimizer interface {
	// Step applies one gradient update to every parameter, using the
	// gradients accumulated by the last Backward call.
	Step()

	// ZeroGrad clears all parameter gradients. Call before each
	// backward pass to prevent accumulation across iterations.
	ZeroGrad()

	// LR returns the current learning rate, for monitoring and
	// scheduling.
	LR() float64
}

func zeroGrad(params []*scalar.Value) {
	scalar.ZeroGrad(params)
}
