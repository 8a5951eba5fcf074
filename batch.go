package dispergo

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/dispergo/geometry"
)

// Problem is one independent solve in a batch.
type Problem struct {
	Points     []geometry.Point
	Placements int

	// Filter restricts the candidate points of this problem (optional).
	Filter FilterFunc
}

// BatchSolveResult represents the result of a batch solve. Slot i holds
// the outcome of the i-th problem: Selections[i] is valid exactly when
// Errors[i] is nil.
type BatchSolveResult struct {
	Selections []Selection
	Errors     []error
}

// BatchSolve solves independent problems concurrently, bounded by the
// configured batch workers. Problems fail individually: an unsolvable
// slot never affects its siblings. A canceled context surfaces in the
// slots that were cut short.
func (s *Solver) BatchSolve(ctx context.Context, problems []Problem) BatchSolveResult {
	start := time.Now()
	result := BatchSolveResult{
		Selections: make([]Selection, len(problems)),
		Errors:     make([]error, len(problems)),
	}

	var g errgroup.Group
	// Limit concurrency: every slot owns a full matrix and arena.
	g.SetLimit(max(s.batchWorkers, 1))

	for i, p := range problems {
		g.Go(func() error {
			selection, err := s.solve(ctx, p.Points, p.Placements, SolveOptions{
				FilterFunc: p.Filter,
			})

			result.Selections[i] = selection
			result.Errors[i] = err

			// Slot outcomes are reported per problem, never through
			// the group.
			return nil
		})
	}

	_ = g.Wait()

	failed := 0
	for _, err := range result.Errors {
		if err != nil {
			failed++
		}
	}

	duration := time.Since(start)
	s.metrics.RecordBatchSolve(len(problems), failed, duration)
	s.logger.LogBatchSolve(ctx, len(problems), failed)

	return result
}
