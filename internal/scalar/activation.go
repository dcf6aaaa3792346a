package scalar

import "math"

// ReLU returns max(0, v).
//
// Backward: the output gradient passes through where v > 0 and is blocked
// otherwise; the sub-gradient at exactly 0 is 0.
func (v *Value) ReLU() *Value {
	data := v.data
	if data < 0 {
		data = 0
	}
	return &Value{
		data: data,
		op:   &operation{kind: KindReLU, inputs: []*Value{v}},
	}
}

// LeakyReLU returns v for positive inputs and slope*v otherwise. The slope
// is a fixed coefficient of the operation.
func (v *Value) LeakyReLU(slope float64) *Value {
	data := v.data
	if data <= 0 {
		data = slope * data
	}
	return &Value{
		data: data,
		op:   &operation{kind: KindLeakyReLU, inputs: []*Value{v}, param: slope},
	}
}

// ELU returns v for positive inputs and alpha*(exp(v)-1) otherwise. The
// alpha coefficient is a fixed parameter of the operation. exp is evaluated
// only on the non-positive branch, where it cannot overflow.
func (v *Value) ELU(alpha float64) *Value {
	data := v.data
	if data <= 0 {
		data = alpha * (math.Exp(data) - 1)
	}
	return &Value{
		data: data,
		op:   &operation{kind: KindELU, inputs: []*Value{v}, param: alpha},
	}
}

// Sigmoid returns 1 / (1 + exp(-v)).
//
// Backward: d(σ(a))/da = σ(a) * (1 - σ(a)), computed from the output.
func (v *Value) Sigmoid() *Value {
	return &Value{
		data: 1 / (1 + math.Exp(-v.data)),
		op:   &operation{kind: KindSigmoid, inputs: []*Value{v}},
	}
}

// Tanh returns the hyperbolic tangent of v.
//
// Backward: d(tanh(a))/da = 1 - tanh(a)².
func (v *Value) Tanh() *Value {
	return &Value{
		data: math.Tanh(v.data),
		op:   &operation{kind: KindTanh, inputs: []*Value{v}},
	}
}
