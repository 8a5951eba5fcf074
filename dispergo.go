package dispergo

import (
	"context"
	"time"

	"github.com/hupe1980/dispergo/geometry"
	"github.com/hupe1980/dispergo/pointset"
	"github.com/hupe1980/dispergo/search"
)

// Solver computes max-min dispersed selections. A Solver carries only
// configuration; every call builds its own matrix, adjacency rows and
// search arena, so a single Solver is safe for concurrent use.
type Solver struct {
	grid             ThresholdGrid
	adjacencyWorkers int
	batchWorkers     int
	metrics          MetricsCollector
	logger           *Logger
}

// New creates a new Solver.
func New(optFns ...Option) *Solver {
	opts := applyOptions(optFns)

	return &Solver{
		grid:             opts.grid,
		adjacencyWorkers: opts.adjacencyWorkers,
		batchWorkers:     opts.batchWorkers,
		metrics:          opts.metricsCollector,
		logger:           opts.logger,
	}
}

// Selection is the outcome of a solve: the chosen point indices in
// ascending order and the smallest pairwise distance they achieve.
// With a single placement there is no pair to constrain and
// MinDistance is +Inf.
type Selection struct {
	Indices     []int
	MinDistance float32
}

// FilterFunc restricts the candidate points of a solve.
// Return false to exclude the point at the given index.
type FilterFunc func(index int) bool

// SolveOptions contains per-call options for Solve.
type SolveOptions struct {
	// FilterFunc excludes points from selection. Excluded points still
	// contribute candidate distances, they just cannot be picked.
	FilterFunc FilterFunc
}

// Solve selects placements points from the given ones, maximizing the
// minimum pairwise distance of the selection. The result is exact for
// GridFull; see ThresholdGrid for the anchor trade-off. Equal inputs
// always produce the same selection.
func (s *Solver) Solve(ctx context.Context, points []geometry.Point, placements int, optFns ...func(o *SolveOptions)) (Selection, error) {
	start := time.Now()

	opts := SolveOptions{
		FilterFunc: nil,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	selection, err := s.solve(ctx, points, placements, opts)
	duration := time.Since(start)
	s.metrics.RecordSolve(duration, err)
	s.logger.LogSolve(ctx, len(points), placements, selection.MinDistance, err)

	return selection, err
}

func (s *Solver) solve(ctx context.Context, points []geometry.Point, placements int, opts SolveOptions) (Selection, error) {
	if len(points) == 0 {
		return Selection{}, ErrEmptyInput
	}

	if placements < 1 || placements > len(points) {
		return Selection{}, &ErrInvalidPlacements{Placements: placements, Points: len(points)}
	}

	m := geometry.NewMatrix(points)

	var grid []float32
	if s.grid == GridAnchor {
		grid = m.AnchorThresholds()
	} else {
		grid = m.Thresholds()
	}

	var searcherOptFns []func(o *search.Options)
	if opts.FilterFunc != nil {
		universe := pointset.New(len(points))
		for i := range points {
			if opts.FilterFunc(i) {
				universe.Insert(i)
			}
		}

		searcherOptFns = append(searcherOptFns, func(o *search.Options) {
			o.Universe = universe
		})
	}

	searcher := search.NewSearcher(len(points), placements, searcherOptFns...)

	// Feasibility is monotone: a selection separated beyond a distance
	// is separated beyond every smaller one. Binary search keeps the
	// witness of the last feasible probe; inclusive bounds mean the
	// extremes of the grid are probed like any other value.
	var best []int

	lo, hi := 0, len(grid)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2

		witness, err := s.probe(ctx, m, grid[mid], searcher)
		if err != nil {
			return Selection{}, err
		}

		if witness != nil {
			best = witness
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}

	if best == nil {
		return Selection{}, ErrUnsolvable
	}

	return Selection{
		Indices:     best,
		MinDistance: m.MinPairwise(best),
	}, nil
}

// probe checks feasibility at one threshold, building the adjacency
// rows for it and reusing the searcher's arena.
func (s *Solver) probe(ctx context.Context, m *geometry.Matrix, threshold float32, searcher *search.Searcher) ([]int, error) {
	start := time.Now()

	var (
		g   *search.NeighborGraph
		err error
	)

	if s.adjacencyWorkers > 1 {
		g, err = search.NewNeighborGraphParallel(ctx, m, threshold, s.adjacencyWorkers)
		if err != nil {
			return nil, err
		}
	} else {
		g = search.NewNeighborGraph(m, threshold)
	}

	before := searcher.Visited()
	witness, err := searcher.Feasible(ctx, g)
	if err != nil {
		return nil, err
	}

	s.metrics.RecordProbe(witness != nil, time.Since(start))
	s.logger.LogProbe(ctx, threshold, witness != nil, searcher.Visited()-before)

	return witness, nil
}
