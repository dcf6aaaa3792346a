package scalar

import (
	"fmt"
	"math"
)

// Add returns a new node holding v + o.
//
// Backward: the output gradient flows unchanged to both operands.
func (v *Value) Add(o *Value) *Value {
	return &Value{
		data: v.data + o.data,
		op:   &operation{kind: KindAdd, inputs: []*Value{v, o}},
	}
}

// Mul returns a new node holding v * o.
//
// Backward: d(a*b)/da = b, d(a*b)/db = a.
func (v *Value) Mul(o *Value) *Value {
	return &Value{
		data: v.data * o.data,
		op:   &operation{kind: KindMul, inputs: []*Value{v, o}},
	}
}

// Neg returns -v, built as v * (-1).
func (v *Value) Neg() *Value {
	return v.Mul(New(-1))
}

// Sub returns v - o, built as v + (-o).
func (v *Value) Sub(o *Value) *Value {
	return v.Add(o.Neg())
}

// Pow returns v raised to the fixed real exponent k. The exponent is a
// constant of the operation, not a differentiable node.
//
// Backward: d(a**k)/da = k * a**(k-1).
//
// Returns ErrDomain if v is zero and k is negative, or v is negative and k
// is not an integer; returns ErrNumericOverflow if the result is not finite.
func (v *Value) Pow(k float64) (*Value, error) {
	if v.data == 0 && k < 0 {
		return nil, fmt.Errorf("pow(0, %g): %w", k, ErrDomain)
	}
	if v.data < 0 && k != math.Trunc(k) {
		return nil, fmt.Errorf("pow(%g, %g): negative base with non-integer exponent: %w", v.data, k, ErrDomain)
	}
	data := math.Pow(v.data, k)
	if math.IsInf(data, 0) || math.IsNaN(data) {
		return nil, fmt.Errorf("pow(%g, %g): %w", v.data, k, ErrNumericOverflow)
	}
	return &Value{
		data: data,
		op:   &operation{kind: KindPow, inputs: []*Value{v}, param: k},
	}, nil
}

// Div returns v / o, built as v * o**-1.
//
// Returns ErrDivisionByZero if o's data is exactly zero.
func (v *Value) Div(o *Value) (*Value, error) {
	if o.data == 0 {
		return nil, fmt.Errorf("div(%g, 0): %w", v.data, ErrDivisionByZero)
	}
	inv, err := o.Pow(-1)
	if err != nil {
		return nil, err
	}
	return v.Mul(inv), nil
}

// Exp returns e**v.
//
// Backward: d(exp(a))/da = exp(a), i.e. the output itself.
//
// Returns ErrNumericOverflow if the result overflows to +Inf.
func (v *Value) Exp() (*Value, error) {
	data := math.Exp(v.data)
	if math.IsInf(data, 0) {
		return nil, fmt.Errorf("exp(%g): %w", v.data, ErrNumericOverflow)
	}
	return &Value{
		data: data,
		op:   &operation{kind: KindExp, inputs: []*Value{v}},
	}, nil
}
