// Package testutil provides deterministic random data generators for tests.
package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/centrogo/vectorize"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float32 returns, as a float32, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float32() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float32()
}

// FillUniform fills dst with random values in range [0, 1).
// Locks only once per call (preferred over calling Float32 in a loop).
func (r *RNG) FillUniform(dst []float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = r.rand.Float32()
	}
}

// RandomVector returns a vector of dim random values in [0, 1).
func (r *RNG) RandomVector(dim int) []float32 {
	v := make([]float32, dim)
	r.FillUniform(v)
	return v
}

// RandomGrid returns a rows x cols grid of random intensities in [0, 1).
func (r *RNG) RandomGrid(rows, cols int) vectorize.Grid {
	g := make(vectorize.Grid, rows)
	for i := range g {
		g[i] = make([]float32, cols)
		r.FillUniform(g[i])
	}
	return g
}

// PerturbedVector returns center with per-coordinate noise in
// [-spread, spread). Used to synthesize tight clusters around known
// centroids.
func (r *RNG) PerturbedVector(center []float32, spread float32) []float32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	v := make([]float32, len(center))
	for i := range v {
		v[i] = center[i] + (r.rand.Float32()*2-1)*spread
	}
	return v
}
