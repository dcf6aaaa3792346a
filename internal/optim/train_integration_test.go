package optim_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinygrad-ml/tinygrad/internal/nn"
	"github.com/tinygrad-ml/tinygrad/internal/optim"
	"github.com/tinygrad-ml/tinygrad/internal/scalar"
)

// xorLoss builds the summed squared error of the model over the XOR truth
// table.
func xorLoss(t *testing.T, model *nn.MLP) *scalar.Value {
	t.Helper()
	inputs := [][]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	targets := []float64{0, 1, 1, 0}

	loss := scalar.New(0)
	for i, x := range inputs {
		outs, err := model.Forward([]*scalar.Value{scalar.New(x[0]), scalar.New(x[1])})
		require.NoError(t, err)
		diff := outs[0].Sub(scalar.New(targets[i]))
		loss = loss.Add(diff.Mul(diff))
	}
	return loss
}

// TestTrainXOR runs a full training loop end to end: forward, backward,
// step, repeat. The loss over the XOR table must fall substantially from
// its starting point.
func TestTrainXOR(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	model, err := nn.NewMLP(2, []int{4, 1},
		[]nn.Activation{nn.Tanh(), nn.Identity()}, nn.Uniform(rng))
	require.NoError(t, err)

	opt := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.1})

	initial := xorLoss(t, model).Data()
	for i := 0; i < 200; i++ {
		opt.ZeroGrad()
		loss := xorLoss(t, model)
		loss.Backward()
		opt.Step()
	}
	final := xorLoss(t, model).Data()

	assert.Less(t, final, initial/2, "training did not reduce the loss")
}
