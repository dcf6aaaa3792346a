// Package main provides the tinygrad CLI.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"k8s.io/klog/v2"

	"github.com/tinygrad-ml/tinygrad/nn"
	"github.com/tinygrad-ml/tinygrad/optim"
	"github.com/tinygrad-ml/tinygrad/scalar"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("tinygrad %s\n", version)
		return
	}

	klog.InitFlags(nil)
	epochs := flag.Int("epochs", 500, "number of training epochs")
	lr := flag.Float64("lr", 0.1, "learning rate")
	seed := flag.Int64("seed", 42, "random seed for weight initialization")
	flag.Parse()

	if err := run(*epochs, *lr, *seed); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

// run trains a small MLP on XOR and logs the loss as it falls.
func run(epochs int, lr float64, seed int64) error {
	inputs := [][]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	targets := []float64{0, 1, 1, 0}

	rng := rand.New(rand.NewSource(seed))
	model, err := nn.NewMLP(2, []int{4, 1},
		[]nn.Activation{nn.Tanh(), nn.Identity()}, nn.Uniform(rng))
	if err != nil {
		return fmt.Errorf("building model: %w", err)
	}

	opt := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: lr})
	klog.InfoS("Starting training", "model", model.String(), "epochs", epochs, "lr", lr)

	for epoch := 1; epoch <= epochs; epoch++ {
		opt.ZeroGrad()
		loss, err := meanSquaredError(model, inputs, targets)
		if err != nil {
			return fmt.Errorf("epoch %d: %w", epoch, err)
		}
		loss.Backward()
		opt.Step()

		if epoch%50 == 0 || epoch == 1 {
			klog.InfoS("Epoch complete", "epoch", epoch, "loss", loss.Data())
		}
	}

	for i, x := range inputs {
		out, err := model.Forward([]*scalar.Value{scalar.New(x[0]), scalar.New(x[1])})
		if err != nil {
			return err
		}
		klog.InfoS("Prediction", "input", x, "want", targets[i], "got", out[0].Data())
	}
	return nil
}

// meanSquaredError builds the loss node Σ(pred-target)²/n over the dataset.
func meanSquaredError(model *nn.MLP, inputs [][]float64, targets []float64) (*scalar.Value, error) {
	loss := scalar.New(0)
	for i, x := range inputs {
		out, err := model.Forward([]*scalar.Value{scalar.New(x[0]), scalar.New(x[1])})
		if err != nil {
			return nil, err
		}
		diff := out[0].Sub(scalar.New(targets[i]))
		sq, err := diff.Pow(2)
		if err != nil {
			return nil, err
		}
		loss = loss.Add(sq)
	}
	return loss.Mul(scalar.New(1 / float64(len(inputs)))), nil
}
