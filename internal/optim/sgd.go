package optim

import "github.com/tinygrad-ml/tinygrad/internal/scalar"

// SGD implements stochastic gradient descent with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// With momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
type SGD struct {
	params     []*scalar.Value
	lr         float64
	momentum   float64
	velocities []float64
}

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Momentum float64 // Momentum factor (default: 0, range [0, 1))
}

// NewSGD creates an SGD optimizer over the given parameters.
func NewSGD(params []*scalar.Value, config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}
	return &SGD{
		params:     params,
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make([]float64, len(params)),
	}
}

// Step applies one gradient descent update to every parameter.
func (s *SGD) Step() {
	for i, p := range s.params {
		if s.momentum == 0 {
			p.SetData(p.Data() - s.lr*p.Grad())
			continue
		}
		s.velocities[i] = s.momentum*s.velocities[i] + p.Grad()
		p.SetData(p.Data() - s.lr*s.velocities[i])
	}
}

// ZeroGrad clears gradients for all parameters.
func (s *SGD) ZeroGrad() {
	zeroGrad(s.params)
}

// LR returns the current learning rate.
func (s *SGD) LR() float64 {
	return s.lr
}

// SetLR updates the learning rate, for scheduling during training.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}
