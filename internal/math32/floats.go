// Package math32 provides the scalar kernels behind the distance and
// classifier packages. Vectors are stored as float32; every kernel
// accumulates in float64 so that argmin comparisons and centroid means over
// thousands of coordinates do not drift.
// This is an internal package - external users should use the distance package.
package math32

import "math"

// Dot calculates the dot product of two vectors.
// Assumes vectors are the same length (caller's responsibility).
func Dot(a, b []float32) float64 {
	var ret float64
	for i := range a {
		ret += float64(a[i]) * float64(b[i])
	}

	return ret
}

// SquaredL2 calculates the squared L2 distance between two vectors.
// Assumes vectors are the same length (caller's responsibility).
func SquaredL2(a, b []float32) float64 {
	var distance float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		distance += d * d
	}

	return distance
}

// AbsDiffSum calculates the sum of absolute coordinate differences (L1).
// Assumes vectors are the same length (caller's responsibility).
func AbsDiffSum(a, b []float32) float64 {
	var distance float64
	for i := range a {
		distance += math.Abs(float64(a[i]) - float64(b[i]))
	}

	return distance
}

// Norm calculates the L2 norm (magnitude) of a vector.
func Norm(v []float32) float64 {
	return math.Sqrt(Dot(v, v))
}

// ScaleInPlace multiplies all elements of a by scalar.
func ScaleInPlace(a []float32, scalar float32) {
	for i := range a {
		a[i] *= scalar
	}
}

// AccumulateInPlace adds v coordinate-wise into the float64 accumulator acc.
// Assumes len(acc) == len(v) (caller's responsibility).
//
// Used by centroid fitting: sums are kept in float64 until the final division
// by the sample count.
func AccumulateInPlace(acc []float64, v []float32) {
	for i := range acc {
		acc[i] += float64(v[i])
	}
}
