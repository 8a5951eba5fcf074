package geometry

import (
	"slices"

	"github.com/chewxy/math32"
)

// Matrix is the symmetric n x n pairwise distance matrix of a point
// slice, stored row-major in a single flat allocation. The diagonal is
// zero. A Matrix is immutable after construction and safe for
// concurrent reads.
type Matrix struct {
	data []float32
	dim  int
}

// NewMatrix computes the full pairwise distance matrix for points.
func NewMatrix(points []Point) *Matrix {
	n := len(points)
	m := &Matrix{
		data: make([]float32, n*n),
		dim:  n,
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := Distance(points[i], points[j])
			m.data[i*n+j] = d
			m.data[j*n+i] = d
		}
	}

	return m
}

// Dim returns the number of points the matrix was built from.
func (m *Matrix) Dim() int {
	return m.dim
}

// At returns the distance between points i and j.
// Assumes both indices are in range (caller's responsibility).
func (m *Matrix) At(i, j int) float32 {
	return m.data[i*m.dim+j]
}

// Row returns the distances from point i to every point, including the
// zero to itself. The returned slice aliases the matrix storage and
// must not be modified.
func (m *Matrix) Row(i int) []float32 {
	return m.data[i*m.dim : (i+1)*m.dim]
}

// MinPairwise returns the smallest distance between any two of the
// given points. With fewer than two indices there is no pair to
// constrain, so the result is +Inf.
func (m *Matrix) MinPairwise(indices []int) float32 {
	minDist := math32.Inf(1)

	for a := 0; a < len(indices); a++ {
		for b := a + 1; b < len(indices); b++ {
			if d := m.At(indices[a], indices[b]); d < minDist {
				minDist = d
			}
		}
	}

	return minDist
}

// Thresholds returns every distinct distance occurring in the matrix,
// sorted ascending. The diagonal guarantees the grid starts at zero for
// any non-empty input. These are the only values at which the feasible
// region can change, so calibrating over them is exact.
func (m *Matrix) Thresholds() []float32 {
	n := m.dim
	grid := make([]float32, 0, n*(n+1)/2)

	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			grid = append(grid, m.data[i*n+j])
		}
	}

	slices.Sort(grid)

	return slices.Compact(grid)
}

// AnchorThresholds returns the distinct distances of row zero only,
// sorted ascending. The reduced grid makes calibration O(n log n)
// probes instead of O(n^2 log n) but is exact only when the optimum
// equals an anchor distance, so it trades accuracy for speed.
func (m *Matrix) AnchorThresholds() []float32 {
	if m.dim == 0 {
		return nil
	}

	grid := slices.Clone(m.Row(0))
	slices.Sort(grid)

	return slices.Compact(grid)
}
