// Package vectorize maps fixed-size 2D intensity grids to flat vectors.
//
// The flattening order is part of the contract: element i*cols + j of the
// vector equals grid[i][j]. Centroid averaging and distance computation both
// assume every vector in play was produced with the same order, otherwise
// coordinates are not comparable.
package vectorize

// Grid is a 2D slice of scalar intensities, row-major. Callers are expected
// to have decoded, resized and normalized the image already; this package
// validates only shape.
type Grid [][]float32

// Vectorizer flattens grids of a fixed declared shape.
//
// It is stateless and safe for concurrent use.
type Vectorizer struct {
	rows int
	cols int
}

// New creates a Vectorizer for grids with the given number of rows and
// columns.
func New(rows, cols int) *Vectorizer {
	return &Vectorizer{rows: rows, cols: cols}
}

// Rows returns the declared number of rows.
func (v *Vectorizer) Rows() int { return v.rows }

// Cols returns the declared number of columns.
func (v *Vectorizer) Cols() int { return v.cols }

// Dimension returns the length of vectors produced by this Vectorizer
// (rows * cols).
func (v *Vectorizer) Dimension() int { return v.rows * v.cols }

// Vectorize flattens g into a vector of length Dimension in row-major order.
//
// Returns *ErrShape if g does not have exactly the declared shape.
func (v *Vectorizer) Vectorize(g Grid) ([]float32, error) {
	if len(g) != v.rows {
		return nil, &ErrShape{
			ExpectedRows: v.rows,
			ExpectedCols: v.cols,
			ActualRows:   len(g),
			ActualCols:   -1,
		}
	}

	out := make([]float32, 0, v.rows*v.cols)
	for i, row := range g {
		if len(row) != v.cols {
			return nil, &ErrShape{
				ExpectedRows: v.rows,
				ExpectedCols: v.cols,
				ActualRows:   len(g),
				ActualCols:   len(row),
				Row:          i,
			}
		}
		out = append(out, row...)
	}

	return out, nil
}

// Reshape is the inverse of Vectorize: it rebuilds the rows*cols grid from a
// flat vector. Reporting layers use this to render centroids as mean images.
//
// The returned grid does not alias vec.
func (v *Vectorizer) Reshape(vec []float32) (Grid, error) {
	if len(vec) != v.Dimension() {
		return nil, &ErrShape{
			ExpectedRows: v.rows,
			ExpectedCols: v.cols,
			ActualRows:   -1,
			ActualCols:   len(vec),
		}
	}

	g := make(Grid, v.rows)
	for i := range g {
		g[i] = make([]float32, v.cols)
		copy(g[i], vec[i*v.cols:(i+1)*v.cols])
	}

	return g, nil
}
