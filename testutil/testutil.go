package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/dispergo/geometry"
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

// UniformPoints generates points uniformly distributed over the
// rectangle [0, width) x [0, height).
func (r *RNG) UniformPoints(num int, width, height float32) []geometry.Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	points := make([]geometry.Point, num)
	for i := range points {
		points[i] = geometry.Point{
			X: r.rand.Float32() * width,
			Y: r.rand.Float32() * height,
		}
	}

	return points
}

// ClusteredPoints generates points grouped around random centroids in
// the unit square, each displaced by Gaussian noise scaled by spread.
// Useful for inputs where many pairwise distances nearly coincide.
func (r *RNG) ClusteredPoints(num, clusters int, spread float32) []geometry.Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	centroids := make([]geometry.Point, clusters)
	for i := range centroids {
		centroids[i] = geometry.Point{
			X: r.rand.Float32(),
			Y: r.rand.Float32(),
		}
	}

	points := make([]geometry.Point, num)
	for i := range points {
		c := centroids[i%clusters]
		points[i] = geometry.Point{
			X: c.X + float32(r.rand.NormFloat64())*spread,
			Y: c.Y + float32(r.rand.NormFloat64())*spread,
		}
	}

	return points
}

// DuplicatePoints appends copies of randomly chosen existing points,
// producing inputs with coincident locations.
func (r *RNG) DuplicatePoints(points []geometry.Point, copies int) []geometry.Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]geometry.Point, 0, len(points)+copies)
	out = append(out, points...)

	for range copies {
		out = append(out, points[r.rand.Intn(len(points))])
	}

	return out
}

// GridPoints generates cols x rows points on the integer lattice, row
// by row starting at (0, 0). The minimum pairwise distance of a grid
// with both dimensions above one is exactly 1.
func GridPoints(cols, rows int) []geometry.Point {
	points := make([]geometry.Point, 0, cols*rows)

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			points = append(points, geometry.Point{X: float32(x), Y: float32(y)})
		}
	}

	return points
}
