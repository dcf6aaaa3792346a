// Copyright 2026 TinyGrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package scalar_test

import (
	"errors"
	"testing"

	"github.com/tinygrad-ml/tinygrad/scalar"
)

// TestValueAPI verifies the re-exported Value type exposes the expected API.
func TestValueAPI(t *testing.T) {
	x := scalar.New(3)
	y := x.Mul(x).Add(x) // y = x² + x

	if y.Data() != 12 {
		t.Errorf("Data() = %v, want 12", y.Data())
	}
	if y.Kind() != scalar.KindAdd {
		t.Errorf("Kind() = %v, want %v", y.Kind(), scalar.KindAdd)
	}

	y.Backward()
	if x.Grad() != 7 { // 2x + 1
		t.Errorf("Grad() = %v, want 7", x.Grad())
	}

	scalar.ZeroGrad([]*scalar.Value{x})
	if x.Grad() != 0 {
		t.Errorf("Grad() after ZeroGrad = %v, want 0", x.Grad())
	}
}

// TestErrorKinds verifies the re-exported sentinel errors match the ones
// operations return.
func TestErrorKinds(t *testing.T) {
	if _, err := scalar.New(1).Div(scalar.New(0)); !errors.Is(err, scalar.ErrDivisionByZero) {
		t.Errorf("Div by zero error = %v, want ErrDivisionByZero", err)
	}
	if _, err := scalar.New(0).Pow(-2); !errors.Is(err, scalar.ErrDomain) {
		t.Errorf("Pow(0, -2) error = %v, want ErrDomain", err)
	}
	if _, err := scalar.New(1e9).Exp(); !errors.Is(err, scalar.ErrNumericOverflow) {
		t.Errorf("Exp overflow error = %v, want ErrNumericOverflow", err)
	}
}
