// Package centrogo provides a nearest-centroid image classifier for Go.
//
// Images arrive as fixed-size intensity grids, are flattened into vectors
// (package vectorize), and are classified by comparing against one mean
// vector (centroid) per class under a selectable distance metric
// (package distance). There is no gradient-based training or iterative
// optimization: fitting is a closed-form batch mean, prediction is a single
// argmin over the class set.
//
// # Quick Start
//
//	clf, err := centrogo.New(1024, []string{"pizza_slice", "whole_pizza", "pizza_box"})
//	if err != nil {
//	    panic(err)
//	}
//
//	if err := clf.Fit(ctx, samples); err != nil {
//	    panic(err)
//	}
//
//	pred, err := clf.Predict(ctx, vec, distance.MetricCosine)
//	if err != nil {
//	    panic(err)
//	}
//	fmt.Println(pred.Class, pred.Distances)
//
// Fit recomputes every centroid from scratch; once it returns, the centroids
// are immutable and the classifier is safe for any number of concurrent
// Predict calls.
//
// Fitted models can be persisted with SaveSnapshot/LoadSnapshot against any
// blobstore backend (local filesystem, in-memory, S3, MinIO), and prediction
// quality can be tallied with package eval.
package centrogo
