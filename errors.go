package centrogo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/centrogo/distance"
)

var (
	// ErrNotFitted is returned when Predict is called before Fit.
	ErrNotFitted = errors.New("classifier is not fitted")

	// ErrNoClasses is returned when a classifier is constructed without any
	// declared classes.
	ErrNoClasses = errors.New("at least one class must be declared")
)

// ErrInvalidDimension indicates an invalid configured dimension.
type ErrInvalidDimension struct {
	Dimension int
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid dimension: %d", e.Dimension)
}

// ErrDuplicateClass indicates a class label declared more than once.
type ErrDuplicateClass struct {
	Class string
}

func (e *ErrDuplicateClass) Error() string {
	return fmt.Sprintf("duplicate class %q", e.Class)
}

// ErrDimensionMismatch indicates a vector whose length does not match the
// classifier's configured dimension.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
	cause    error
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error { return e.cause }

// ErrUnknownClass indicates a training sample labeled with a class that was
// not declared at construction time.
type ErrUnknownClass struct {
	Class string
}

func (e *ErrUnknownClass) Error() string {
	return fmt.Sprintf("unknown class %q", e.Class)
}

// ErrEmptyClass indicates a declared class with zero training samples; its
// mean is undefined.
type ErrEmptyClass struct {
	Class string
}

func (e *ErrEmptyClass) Error() string {
	return fmt.Sprintf("class %q has no training samples", e.Class)
}

// translateError normalizes errors from subpackages into the root taxonomy.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var dm *distance.ErrDimensionMismatch
	if errors.As(err, &dm) {
		return &ErrDimensionMismatch{Expected: dm.Expected, Actual: dm.Actual, cause: err}
	}

	return err
}
