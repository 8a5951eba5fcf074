package search

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/dispergo/geometry"
	"github.com/hupe1980/dispergo/pointset"
)

// NeighborGraph records, for every point, the set of points that sit
// too close to it at a given threshold: row i holds every j with
// dist(i, j) <= threshold. The comparison is inclusive, so feasible
// selections keep all pairwise distances strictly above the threshold.
// Every row contains its own point, the diagonal distance being zero.
//
// A NeighborGraph is immutable after construction and safe for
// concurrent reads.
type NeighborGraph struct {
	rows      []*pointset.Set
	threshold float32
}

// NewNeighborGraph builds the adjacency rows for the given threshold
// from the distance matrix.
func NewNeighborGraph(m *geometry.Matrix, threshold float32) *NeighborGraph {
	g := newEmptyGraph(m.Dim(), threshold)

	for i := 0; i < m.Dim(); i++ {
		g.fillRow(m, i)
	}

	return g
}

// NewNeighborGraphParallel builds the adjacency rows concurrently,
// splitting the rows into one contiguous chunk per worker. Rows are
// written disjointly, so no locking is needed. It returns early with
// the context error if ctx is done.
func NewNeighborGraphParallel(ctx context.Context, m *geometry.Matrix, threshold float32, workers int) (*NeighborGraph, error) {
	n := m.Dim()
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = max(n, 1)
	}

	g := newEmptyGraph(n, threshold)

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	chunk := (n + workers - 1) / workers
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)

		eg.Go(func() error {
			for i := start; i < end; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}

				g.fillRow(m, i)
			}

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return g, nil
}

func newEmptyGraph(n int, threshold float32) *NeighborGraph {
	rows := make([]*pointset.Set, n)
	for i := range rows {
		rows[i] = pointset.New(n)
	}

	return &NeighborGraph{
		rows:      rows,
		threshold: threshold,
	}
}

func (g *NeighborGraph) fillRow(m *geometry.Matrix, i int) {
	row := g.rows[i]

	for j, d := range m.Row(i) {
		if d <= g.threshold {
			row.Insert(j)
		}
	}
}

// Dim returns the number of points in the graph.
func (g *NeighborGraph) Dim() int {
	return len(g.rows)
}

// Threshold returns the distance the graph was built for.
func (g *NeighborGraph) Threshold() float32 {
	return g.threshold
}

// Row returns the too-close set of point i, including i itself.
// The returned set is shared and must not be modified.
func (g *NeighborGraph) Row(i int) *pointset.Set {
	return g.rows[i]
}
