package centrogo

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/centrogo/blobstore"
	"github.com/hupe1980/centrogo/distance"
	"github.com/hupe1980/centrogo/internal/math32"
	"github.com/hupe1980/centrogo/snapshot"
)

// Sample is one labeled training vector.
type Sample struct {
	Class  string
	Vector []float32
}

// Prediction is the result of classifying a single vector: the winning class
// plus the full per-class distance map, for confusion-matrix style reporting
// by external collaborators.
//
// A Prediction is created fresh per call and never retained by the classifier.
type Prediction struct {
	Class     string
	Distances map[string]float64
}

// Classifier is a nearest-centroid classifier over a fixed, declared class
// set.
//
// It has exactly two states: untrained (Predict returns ErrNotFitted) and
// fitted. Fit always recomputes all centroids from scratch; once it returns,
// the centroids are read-only and the classifier is safe for concurrent
// Predict calls.
type Classifier struct {
	mu        sync.RWMutex
	dimension int
	classes   []string
	classIdx  map[string]int
	epsilon   float64
	centroids map[string][]float32 // nil until fitted
	logger    *Logger
	metrics   MetricsCollector
}

// New creates an untrained Classifier for vectors of the given dimension and
// the declared class set. The declared order of classes is also the
// tie-break order for Predict.
func New(dimension int, classes []string, optFns ...Option) (*Classifier, error) {
	opts := options{
		logger:  NewLogger(nil),
		metrics: NoopMetricsCollector{},
		epsilon: DefaultEpsilon,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	if dimension <= 0 {
		return nil, &ErrInvalidDimension{Dimension: dimension}
	}
	if len(classes) == 0 {
		return nil, ErrNoClasses
	}

	classIdx := make(map[string]int, len(classes))
	for i, c := range classes {
		if _, ok := classIdx[c]; ok {
			return nil, &ErrDuplicateClass{Class: c}
		}
		classIdx[c] = i
	}

	declared := make([]string, len(classes))
	copy(declared, classes)

	return &Classifier{
		dimension: dimension,
		classes:   declared,
		classIdx:  classIdx,
		epsilon:   opts.epsilon,
		logger:    opts.logger,
		metrics:   opts.metrics,
	}, nil
}

// Dimension returns the configured vector dimension.
func (c *Classifier) Dimension() int { return c.dimension }

// Classes returns the declared class set in tie-break order.
func (c *Classifier) Classes() []string {
	out := make([]string, len(c.classes))
	copy(out, c.classes)
	return out
}

// Fitted reports whether Fit has completed successfully.
func (c *Classifier) Fitted() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.centroids != nil
}

// Fit computes one centroid per declared class as the coordinate-wise
// arithmetic mean of that class's training vectors.
//
// Every declared class must have at least one sample (*ErrEmptyClass
// otherwise), every sample must carry a declared label (*ErrUnknownClass)
// and a vector of the configured dimension (*ErrDimensionMismatch).
//
// Sums are accumulated in float64, in sample order within each class, and
// divided by the exact per-class count. Per-class means run concurrently;
// the result is independent of scheduling since classes are disjoint.
//
// On any error the previous centroids (if any) are left untouched.
func (c *Classifier) Fit(ctx context.Context, samples []Sample) error {
	start := time.Now()
	err := c.fit(ctx, samples)
	c.metrics.RecordFit(len(samples), time.Since(start), err)
	c.logger.LogFit(ctx, len(samples), len(c.classes), err)
	return err
}

func (c *Classifier) fit(ctx context.Context, samples []Sample) error {
	// Validate and partition before touching any state.
	byClass := make(map[string][][]float32, len(c.classes))
	for _, s := range samples {
		if _, ok := c.classIdx[s.Class]; !ok {
			return &ErrUnknownClass{Class: s.Class}
		}
		if len(s.Vector) != c.dimension {
			return &ErrDimensionMismatch{Expected: c.dimension, Actual: len(s.Vector)}
		}
		byClass[s.Class] = append(byClass[s.Class], s.Vector)
	}

	for _, class := range c.classes {
		if len(byClass[class]) == 0 {
			return &ErrEmptyClass{Class: class}
		}
	}

	// Compute into a fresh map and swap on success, so a failed or canceled
	// fit never leaves partially updated centroids behind.
	centroids := make([]([]float32), len(c.classes))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, class := range c.classes {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			centroids[i] = mean(byClass[class], c.dimension)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	fitted := make(map[string][]float32, len(c.classes))
	for i, class := range c.classes {
		fitted[class] = centroids[i]
	}

	c.mu.Lock()
	c.centroids = fitted
	c.mu.Unlock()

	return nil
}

// mean computes the coordinate-wise arithmetic mean of vectors, accumulating
// in float64 and dividing by the exact count.
func mean(vectors [][]float32, dim int) []float32 {
	acc := make([]float64, dim)
	for _, v := range vectors {
		math32.AccumulateInPlace(acc, v)
	}

	inv := 1 / float64(len(vectors))
	out := make([]float32, dim)
	for i := range acc {
		out[i] = float32(acc[i] * inv)
	}
	return out
}

// Predict classifies x by the nearest centroid under the given metric.
//
// All supported metrics are "smaller is closer", so a single argmin rule
// applies. Ties within the configured epsilon are broken deterministically
// in favor of the class declared earlier.
func (c *Classifier) Predict(ctx context.Context, x []float32, metric distance.Metric) (*Prediction, error) {
	start := time.Now()
	pred, err := c.predict(ctx, x, metric)
	c.metrics.RecordPredict(time.Since(start), err)

	class := ""
	if pred != nil {
		class = pred.Class
	}
	c.logger.LogPredict(ctx, metric.String(), class, err)

	return pred, err
}

func (c *Classifier) predict(ctx context.Context, x []float32, metric distance.Metric) (*Prediction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.RLock()
	centroids := c.centroids
	c.mu.RUnlock()

	if centroids == nil {
		return nil, ErrNotFitted
	}
	if len(x) != c.dimension {
		return nil, &ErrDimensionMismatch{Expected: c.dimension, Actual: len(x)}
	}

	distFn, err := distance.Provider(metric)
	if err != nil {
		return nil, err
	}

	pred := &Prediction{
		Distances: make(map[string]float64, len(c.classes)),
	}

	best := -1
	var bestDist float64

	for i, class := range c.classes {
		d, err := distFn(x, centroids[class])
		if err != nil {
			return nil, translateError(fmt.Errorf("class %q: %w", class, err))
		}
		pred.Distances[class] = d

		// Strictly-smaller-by-more-than-epsilon replaces the winner, so the
		// earlier declared class keeps ties.
		if best == -1 || d < bestDist-c.epsilon {
			best = i
			bestDist = d
		}
	}

	pred.Class = c.classes[best]
	return pred, nil
}

// PredictBatch classifies a batch of vectors under the given metric,
// parallelized across inputs. Result order matches input order.
//
// The first error aborts the batch.
func (c *Classifier) PredictBatch(ctx context.Context, xs [][]float32, metric distance.Metric) ([]*Prediction, error) {
	start := time.Now()
	preds, err := c.predictBatch(ctx, xs, metric)
	c.metrics.RecordPredictBatch(len(xs), time.Since(start), err)
	c.logger.LogPredictBatch(ctx, len(xs), err)
	return preds, err
}

func (c *Classifier) predictBatch(ctx context.Context, xs [][]float32, metric distance.Metric) ([]*Prediction, error) {
	preds := make([]*Prediction, len(xs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, x := range xs {
		g.Go(func() error {
			pred, err := c.predict(ctx, x, metric)
			if err != nil {
				return fmt.Errorf("input %d: %w", i, err)
			}
			preds[i] = pred
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return preds, nil
}

// Centroid returns a copy of the fitted centroid for the given class.
// Reporting layers reshape this back to a grid to render mean images.
func (c *Classifier) Centroid(class string) ([]float32, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.centroids == nil {
		return nil, ErrNotFitted
	}

	v, ok := c.centroids[class]
	if !ok {
		return nil, &ErrUnknownClass{Class: class}
	}

	out := make([]float32, len(v))
	copy(out, v)
	return out, nil
}

// Centroids returns a copy of all fitted centroids keyed by class.
func (c *Classifier) Centroids() (map[string][]float32, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.centroids == nil {
		return nil, ErrNotFitted
	}

	out := make(map[string][]float32, len(c.centroids))
	for class, v := range c.centroids {
		cp := make([]float32, len(v))
		copy(cp, v)
		out[class] = cp
	}
	return out, nil
}

// SaveSnapshot persists the fitted model to the given blob store.
//
// The snapshot records dimension, class order and centroids; LoadSnapshot
// reconstructs an equivalent fitted classifier from it.
func (c *Classifier) SaveSnapshot(ctx context.Context, store blobstore.Store, name string, optFns ...func(*snapshot.Options)) error {
	start := time.Now()
	err := c.saveSnapshot(ctx, store, name, optFns...)
	c.metrics.RecordSnapshotSave(time.Since(start), err)
	c.logger.LogSnapshot(ctx, "save", name, err)
	return err
}

func (c *Classifier) saveSnapshot(ctx context.Context, store blobstore.Store, name string, optFns ...func(*snapshot.Options)) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.centroids == nil {
		return ErrNotFitted
	}

	model := &snapshot.Model{
		Dimension: c.dimension,
		Classes:   c.classes,
		Centroids: c.centroids,
	}

	return snapshot.Save(ctx, store, name, model, optFns...)
}

// LoadSnapshot reconstructs a fitted Classifier from a snapshot previously
// written by SaveSnapshot.
func LoadSnapshot(ctx context.Context, store blobstore.Store, name string, optFns ...Option) (*Classifier, error) {
	model, err := snapshot.Load(ctx, store, name)
	if err != nil {
		return nil, err
	}

	c, err := New(model.Dimension, model.Classes, optFns...)
	if err != nil {
		return nil, err
	}

	centroids := make(map[string][]float32, len(model.Classes))
	for _, class := range model.Classes {
		v, ok := model.Centroids[class]
		if !ok {
			return nil, &ErrEmptyClass{Class: class}
		}
		if len(v) != model.Dimension {
			return nil, &ErrDimensionMismatch{Expected: model.Dimension, Actual: len(v)}
		}
		cp := make([]float32, len(v))
		copy(cp, v)
		centroids[class] = cp
	}
	c.centroids = centroids

	c.metrics.RecordSnapshotLoad(0, nil)
	c.logger.LogSnapshot(ctx, "load", name, nil)

	return c, nil
}
