package nn

import (
	"math"
	"math/rand"
)

// Initializer samples one weight for a unit with the given fan-in and
// fan-out. Biases are not initialized through this; they start at zero.
type Initializer func(fanIn, fanOut int) float64

// Uniform draws weights from U(-1, 1).
func Uniform(rng *rand.Rand) Initializer {
	return func(_, _ int) float64 {
		return rng.Float64()*2 - 1
	}
}

// Xavier draws weights from the Glorot uniform distribution
// U(-sqrt(6/(fanIn+fanOut)), sqrt(6/(fanIn+fanOut))), which keeps
// activation variance roughly constant across layers.
func Xavier(rng *rand.Rand) Initializer {
	return func(fanIn, fanOut int) float64 {
		bound := math.Sqrt(6.0 / float64(fanIn+fanOut))
		return (rng.Float64()*2 - 1) * bound
	}
}

// Constant initializes every weight to c. Mainly useful in tests, where a
// fixed weight set makes outputs and gradients reproducible by hand.
func Constant(c float64) Initializer {
	return func(_, _ int) float64 {
		return c
	}
}
