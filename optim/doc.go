// Copyright 2026 TinyGrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimization algorithms for training.
//
// # Overview
//
// This package contains:
//   - Optimizer interface
//   - SGD: stochastic gradient descent with optional momentum
//   - Adam: adaptive moment estimation
//
// # Basic Usage
//
//	opt := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.05})
//
//	for range epochs {
//	    opt.ZeroGrad()
//	    loss := computeLoss(model, data)
//	    loss.Backward()
//	    opt.Step()
//	}
package optim
