// Package distance provides the distance metrics used by the nearest-centroid
// rule.
//
// # Supported Metrics
//
//   - Euclidean: sqrt of the sum of squared coordinate differences
//   - Manhattan: sum of absolute coordinate differences
//   - Cosine: 1 - cosine similarity (scale-invariant)
//
// Every metric is oriented so that smaller means closer, so a single argmin
// decision rule works for all of them.
//
// # Usage
//
//	d, err := distance.Euclidean(a, b)
//
//	fn, err := distance.Provider(distance.MetricCosine)
//	d, err = fn(a, b)
package distance
