// Copyright 2026 TinyGrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package scalar provides reverse-mode automatic differentiation over
// scalar values.
//
// Build an expression out of Values, then call Backward on the result to
// populate the gradient of every node that contributed to it:
//
//	import "github.com/tinygrad-ml/tinygrad/scalar"
//
//	func main() {
//	    x := scalar.New(3)
//	    y := x.Mul(x).Add(x) // y = x² + x
//	    y.Backward()
//	    fmt.Println(x.Grad()) // dy/dx = 2x + 1 = 7
//	}
package scalar

import "github.com/tinygrad-ml/tinygrad/internal/scalar"

// Value is one scalar node in the computation graph.
type Value = scalar.Value

// New creates a leaf node holding data.
func New(data float64) *Value {
	return scalar.New(data)
}

// ZeroGrad resets the gradient of every given node to zero.
func ZeroGrad(nodes []*Value) {
	scalar.ZeroGrad(nodes)
}

// Kind identifies the operation that produced a node.
type Kind = scalar.Kind

// Operation kinds.
const (
	KindLeaf      = scalar.KindLeaf
	KindAdd       = scalar.KindAdd
	KindMul       = scalar.KindMul
	KindPow       = scalar.KindPow
	KindExp       = scalar.KindExp
	KindReLU      = scalar.KindReLU
	KindLeakyReLU = scalar.KindLeakyReLU
	KindELU       = scalar.KindELU
	KindSigmoid   = scalar.KindSigmoid
	KindTanh      = scalar.KindTanh
)

// Operation errors.
var (
	ErrDivisionByZero  = scalar.ErrDivisionByZero
	ErrDomain          = scalar.ErrDomain
	ErrNumericOverflow = scalar.ErrNumericOverflow
)
