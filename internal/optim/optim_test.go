package optim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinygrad-ml/tinygrad/internal/scalar"
)

// descend minimizes f(x) = x² from x0 with the given optimizer and returns
// the final x.
func descend(t *testing.T, x *scalar.Value, opt Optimizer, steps int) float64 {
	t.Helper()
	for i := 0; i < steps; i++ {
		opt.ZeroGrad()
		y := x.Mul(x)
		y.Backward()
		opt.Step()
	}
	return x.Data()
}

func TestSGDDescendsQuadratic(t *testing.T) {
	x := scalar.New(5)
	opt := NewSGD([]*scalar.Value{x}, SGDConfig{LR: 0.1})

	final := descend(t, x, opt, 100)
	assert.Less(t, math.Abs(final), 1e-6)
}

func TestSGDWithMomentum(t *testing.T) {
	x := scalar.New(5)
	opt := NewSGD([]*scalar.Value{x}, SGDConfig{LR: 0.05, Momentum: 0.9})

	final := descend(t, x, opt, 200)
	assert.Less(t, math.Abs(final), 1e-3)
}

func TestSGDSingleStep(t *testing.T) {
	// x = 3, y = x²: grad = 6, so one step at lr 0.1 gives 3 - 0.6 = 2.4.
	x := scalar.New(3)
	opt := NewSGD([]*scalar.Value{x}, SGDConfig{LR: 0.1})

	y := x.Mul(x)
	y.Backward()
	opt.Step()

	assert.InDelta(t, 2.4, x.Data(), 1e-12)
}

func TestSGDDefaults(t *testing.T) {
	opt := NewSGD(nil, SGDConfig{})
	assert.InDelta(t, 0.01, opt.LR(), 1e-12)

	opt.SetLR(0.5)
	assert.InDelta(t, 0.5, opt.LR(), 1e-12)
}

func TestSGDZeroGrad(t *testing.T) {
	x := scalar.New(2)
	opt := NewSGD([]*scalar.Value{x}, SGDConfig{LR: 0.1})

	y := x.Mul(x)
	y.Backward()
	require.NotZero(t, x.Grad())

	opt.ZeroGrad()
	assert.Zero(t, x.Grad())
	assert.InDelta(t, 2.0, x.Data(), 1e-12)
}

func TestAdamDescendsQuadratic(t *testing.T) {
	x := scalar.New(5)
	opt := NewAdam([]*scalar.Value{x}, AdamConfig{LR: 0.1})

	final := descend(t, x, opt, 500)
	assert.Less(t, math.Abs(final), 0.1)
}

func TestAdamDefaults(t *testing.T) {
	opt := NewAdam(nil, AdamConfig{})
	assert.InDelta(t, 0.001, opt.LR(), 1e-12)
	assert.InDelta(t, 0.9, opt.beta1, 1e-12)
	assert.InDelta(t, 0.999, opt.beta2, 1e-12)
	assert.InDelta(t, 1e-8, opt.eps, 1e-18)
}

func TestAdamFirstStepSize(t *testing.T) {
	// With bias correction, the first Adam step is close to lr in the
	// gradient's direction regardless of its magnitude.
	x := scalar.New(3)
	opt := NewAdam([]*scalar.Value{x}, AdamConfig{LR: 0.1})

	y := x.Mul(x)
	y.Backward()
	opt.Step()

	assert.InDelta(t, 2.9, x.Data(), 1e-6)
}
