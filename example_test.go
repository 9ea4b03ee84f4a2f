package centrogo_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/centrogo"
	"github.com/hupe1980/centrogo/blobstore"
	"github.com/hupe1980/centrogo/distance"
	"github.com/hupe1980/centrogo/vectorize"
)

// Example_fitPredict demonstrates training a classifier and classifying a
// new vector.
func Example_fitPredict() {
	ctx := context.Background()

	clf, err := centrogo.New(3, []string{"pizza", "not_pizza"})
	if err != nil {
		log.Fatal(err)
	}

	err = clf.Fit(ctx, []centrogo.Sample{
		{Class: "pizza", Vector: []float32{0.9, 0.1, 0.1}},
		{Class: "pizza", Vector: []float32{0.8, 0.2, 0.0}},
		{Class: "not_pizza", Vector: []float32{0.1, 0.9, 0.8}},
	})
	if err != nil {
		log.Fatal(err)
	}

	pred, err := clf.Predict(ctx, []float32{0.85, 0.15, 0.05}, distance.MetricEuclidean)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(pred.Class)
	// Output: pizza
}

// Example_vectorize demonstrates flattening a 2D grid into a feature vector
// before training.
func Example_vectorize() {
	vz := vectorize.New(2, 2)

	v, err := vz.Vectorize(vectorize.Grid{
		{1, 2},
		{3, 4},
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(v)
	// Output: [1 2 3 4]
}

// Example_snapshot demonstrates persisting a fitted model and loading it back.
func Example_snapshot() {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	clf, _ := centrogo.New(2, []string{"a", "b"})
	_ = clf.Fit(ctx, []centrogo.Sample{
		{Class: "a", Vector: []float32{0, 0}},
		{Class: "b", Vector: []float32{1, 1}},
	})

	if err := clf.SaveSnapshot(ctx, store, "model.bin"); err != nil {
		log.Fatal(err)
	}

	loaded, err := centrogo.LoadSnapshot(ctx, store, "model.bin")
	if err != nil {
		log.Fatal(err)
	}

	pred, err := loaded.Predict(ctx, []float32{0.9, 0.9}, distance.MetricManhattan)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(pred.Class)
	// Output: b
}
