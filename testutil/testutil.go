// Package testutil provides deterministic data generators and exact
// reference searches for tests and benchmarks.
package testutil

import (
	"math/rand"
	"sort"
	"sync"
)

// RNG wraps a seeded random number generator. It is thread-safe.
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

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// FillUniform fills dst with random values in range [0, 1).
// Locks only once per call (preferred over calling Float64 in a loop).
func (r *RNG) FillUniform(dst []float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = r.rand.Float64()
	}
}

// FillUniformRange fills dst with random values in range [minVal, maxVal).
func (r *RNG) FillUniformRange(dst []float64, minVal, maxVal float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	span := maxVal - minVal
	for i := range dst {
		dst[i] = minVal + r.rand.Float64()*span
	}
}

// UniformLocations generates num random points of the given dimension
// with coordinates in [0, 1). A single backing array holds all points.
func (r *RNG) UniformLocations(num, dimension int) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dimension)
	locations := make([][]float64, num)

	for i := range num {
		loc := data[i*dimension : (i+1)*dimension]
		for j := range loc {
			loc[j] = r.rand.Float64()
		}
		locations[i] = loc
	}

	return locations
}

// GaussianLocations generates num random points with coordinates drawn
// from a standard normal distribution.
func (r *RNG) GaussianLocations(num, dimension int) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dimension)
	locations := make([][]float64, num)

	for i := range num {
		loc := data[i*dimension : (i+1)*dimension]
		for j := range loc {
			loc[j] = r.rand.NormFloat64()
		}
		locations[i] = loc
	}

	return locations
}

// ClusteredLocations generates points clustered around random
// centroids. Useful for exercising tree shapes on non-uniform data.
func (r *RNG) ClusteredLocations(num, dimension, clusters int, spread float64) [][]float64 {
	centroids := r.UniformLocations(clusters, dimension)

	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dimension)
	locations := make([][]float64, num)

	for i := range num {
		centroid := centroids[i%clusters]
		loc := data[i*dimension : (i+1)*dimension]

		for j := range dimension {
			loc[j] = centroid[j] + r.rand.NormFloat64()*spread
		}
		locations[i] = loc
	}

	return locations
}

// SearchResult is one entry of an exact reference search.
type SearchResult struct {
	Index    int
	Distance float64
}

// SquaredDistance returns the squared euclidean distance between two
// points of equal dimension.
func SquaredDistance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// BruteForceSearch performs an exact k nearest neighbour search over
// locations, for use as ground truth. Results are sorted by distance,
// ties broken by index.
func BruteForceSearch(locations [][]float64, query []float64, k int) []SearchResult {
	results := make([]SearchResult, len(locations))

	for i, loc := range locations {
		results[i] = SearchResult{Index: i, Distance: SquaredDistance(query, loc)}
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Distance != results[j].Distance {
			return results[i].Distance < results[j].Distance
		}
		return results[i].Index < results[j].Index
	})

	if len(results) > k {
		results = results[:k]
	}

	return results
}
