package scalar

import "errors"

// Operation errors. All are programmer or configuration errors: they are
// reported synchronously at the call that triggers them, and the failing
// node is never linked into the graph.
var (
	// ErrDivisionByZero is returned by Div when the divisor's data is
	// exactly zero.
	ErrDivisionByZero = errors.New("scalar: division by zero")

	// ErrDomain is returned by Pow when the result is undefined over the
	// reals: zero raised to a negative exponent, or a negative base with a
	// non-integer exponent.
	ErrDomain = errors.New("scalar: domain error")

	// ErrNumericOverflow is returned when an operation produces a
	// non-finite result, e.g. exp of a large value.
	ErrNumericOverflow = errors.New("scalar: numeric overflow")
)
