package vectorize

import "fmt"

// ErrShape indicates that a grid or vector does not match the declared
// rows x cols shape.
//
// ActualCols is -1 when only the row count was wrong; ActualRows is -1 when
// a flat vector of the wrong length was passed to Reshape. Row identifies
// the first offending row for ragged grids.
type ErrShape struct {
	ExpectedRows int
	ExpectedCols int
	ActualRows   int
	ActualCols   int
	Row          int
}

func (e *ErrShape) Error() string {
	if e.ActualRows == -1 {
		return fmt.Sprintf("shape mismatch: expected vector of length %d, got %d",
			e.ExpectedRows*e.ExpectedCols, e.ActualCols)
	}
	if e.ActualCols == -1 {
		return fmt.Sprintf("shape mismatch: expected %dx%d grid, got %d rows",
			e.ExpectedRows, e.ExpectedCols, e.ActualRows)
	}
	return fmt.Sprintf("shape mismatch: expected %dx%d grid, row %d has %d columns",
		e.ExpectedRows, e.ExpectedCols, e.Row, e.ActualCols)
}
