// Package geometry provides the planar primitives of the dispersion
// solver: points, Euclidean distances, the pairwise distance matrix and
// the candidate threshold grids extracted from it.
package geometry

import (
	"github.com/chewxy/math32"
)

// Point is a location in the plane.
type Point struct {
	X float32
	Y float32
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Point) float32 {
	dx := a.X - b.X
	dy := a.Y - b.Y

	return math32.Sqrt(dx*dx + dy*dy)
}

// SquaredDistance returns the squared Euclidean distance between two
// points, avoiding the square root where only comparisons matter.
func SquaredDistance(a, b Point) float32 {
	dx := a.X - b.X
	dy := a.Y - b.Y

	return dx*dx + dy*dy
}
