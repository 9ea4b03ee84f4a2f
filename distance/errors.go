package distance

import "fmt"

// ErrDimensionMismatch indicates that two vectors of different lengths were
// compared.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ErrZeroVector indicates that cosine distance was requested against a
// zero-norm vector, for which the angle is undefined.
//
// Side reports which operand had zero norm ("left", "right" or "both").
type ErrZeroVector struct {
	Side string
}

func (e *ErrZeroVector) Error() string {
	return fmt.Sprintf("cosine distance undefined: zero-norm vector (%s operand)", e.Side)
}
