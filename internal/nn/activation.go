package nn

import (
	"fmt"

	"github.com/tinygrad-ml/tinygrad/internal/scalar"
)

type actKind uint8

const (
	actIdentity actKind = iota
	actReLU
	actSigmoid
	actTanh
	actLeakyReLU
	actELU
)

// Activation selects the nonlinearity a Neuron applies to its weighted sum.
//
// Construct one with Identity, ReLU, Sigmoid, Tanh, LeakyReLU or ELU.
// LeakyReLU and ELU carry a coefficient that has no default: the
// constructor signature forces the caller to choose it. The zero value is
// Identity.
type Activation struct {
	kind  actKind
	coeff float64
}

// Identity applies no nonlinearity. Typical for output layers.
func Identity() Activation {
	return Activation{kind: actIdentity}
}

// ReLU applies max(0, x).
func ReLU() Activation {
	return Activation{kind: actReLU}
}

// Sigmoid applies 1 / (1 + exp(-x)).
func Sigmoid() Activation {
	return Activation{kind: actSigmoid}
}

// Tanh applies the hyperbolic tangent.
func Tanh() Activation {
	return Activation{kind: actTanh}
}

// LeakyReLU applies x for positive inputs and slope*x otherwise.
func LeakyReLU(slope float64) Activation {
	return Activation{kind: actLeakyReLU, coeff: slope}
}

// ELU applies x for positive inputs and alpha*(exp(x)-1) otherwise.
func ELU(alpha float64) Activation {
	return Activation{kind: actELU, coeff: alpha}
}

// apply builds the activation node on top of v.
func (a Activation) apply(v *scalar.Value) *scalar.Value {
	switch a.kind {
	case actReLU:
		return v.ReLU()
	case actSigmoid:
		return v.Sigmoid()
	case actTanh:
		return v.Tanh()
	case actLeakyReLU:
		return v.LeakyReLU(a.coeff)
	case actELU:
		return v.ELU(a.coeff)
	default:
		return v
	}
}

// String names the activation, including its coefficient where one applies.
func (a Activation) String() string {
	switch a.kind {
	case actReLU:
		return "ReLU"
	case actSigmoid:
		return "Sigmoid"
	case actTanh:
		return "Tanh"
	case actLeakyReLU:
		return fmt.Sprintf("LeakyReLU(%g)", a.coeff)
	case actELU:
		return fmt.Sprintf("ELU(%g)", a.coeff)
	default:
		return "Identity"
	}
}
