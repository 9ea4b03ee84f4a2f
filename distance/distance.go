package distance

import (
	"fmt"
	"math"

	"github.com/hupe1980/centrogo/internal/math32"
)

// ZeroNormEpsilon is the threshold below which an L2 norm is treated as zero
// for cosine distance. Pixel intensities are non-negative, so any vector with
// a single lit coordinate clears this comfortably.
const ZeroNormEpsilon = 1e-12

// Metric represents the distance metric used for vector comparison.
type Metric int

const (
	MetricEuclidean Metric = iota
	MetricManhattan
	MetricCosine
)

func (m Metric) String() string {
	switch m {
	case MetricEuclidean:
		return "Euclidean"
	case MetricManhattan:
		return "Manhattan"
	case MetricCosine:
		return "Cosine"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// ByName returns a built-in metric by its stable name.
//
// This is used by callers that select the metric from configuration.
func ByName(name string) (Metric, bool) {
	switch name {
	case "Euclidean":
		return MetricEuclidean, true
	case "Manhattan":
		return MetricManhattan, true
	case "Cosine":
		return MetricCosine, true
	default:
		return 0, false
	}
}

// Func is a function type for distance calculation.
//
// Distances are returned as float64: kernels accumulate in double precision
// so that argmin comparisons over high-dimensional vectors stay stable.
type Func func(a, b []float32) (float64, error)

// Provider returns the distance function for the given metric.
func Provider(m Metric) (Func, error) {
	switch m {
	case MetricEuclidean:
		return Euclidean, nil
	case MetricManhattan:
		return Manhattan, nil
	case MetricCosine:
		return Cosine, nil
	default:
		return nil, fmt.Errorf("unsupported metric: %v", m)
	}
}

// Euclidean calculates the L2 distance between two vectors.
// Non-negative, symmetric, zero iff a == b.
func Euclidean(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, &ErrDimensionMismatch{Expected: len(a), Actual: len(b)}
	}

	return math.Sqrt(math32.SquaredL2(a, b)), nil
}

// Manhattan calculates the L1 distance between two vectors.
// More robust to outlier coordinates than Euclidean since differences are
// not squared.
func Manhattan(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, &ErrDimensionMismatch{Expected: len(a), Actual: len(b)}
	}

	return math32.AbsDiffSum(a, b), nil
}

// Cosine calculates the cosine distance 1 - cos(a, b) between two vectors.
//
// The result lies in [0, 2] in general and in [0, 1] when all coordinates
// are non-negative. The distance is invariant to positive scaling of either
// operand, which makes it robust to global brightness changes.
//
// Returns *ErrZeroVector when either operand has zero norm; the angle is
// undefined there and a silent NaN would poison every downstream argmin.
func Cosine(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, &ErrDimensionMismatch{Expected: len(a), Actual: len(b)}
	}

	normA := math32.Norm(a)
	normB := math32.Norm(b)

	switch {
	case normA < ZeroNormEpsilon && normB < ZeroNormEpsilon:
		return 0, &ErrZeroVector{Side: "both"}
	case normA < ZeroNormEpsilon:
		return 0, &ErrZeroVector{Side: "left"}
	case normB < ZeroNormEpsilon:
		return 0, &ErrZeroVector{Side: "right"}
	}

	return 1 - math32.Dot(a, b)/(normA*normB), nil
}
