package dispergo

import (
	"context"
	"slices"
	"time"

	"github.com/chewxy/math32"

	"github.com/hupe1980/dispergo/geometry"
)

// checkInterval is the number of enumeration steps between cooperative
// context checks. Must be a power of two.
const checkInterval = 4096

// BruteSolveOptions contains options for brute-force solving.
type BruteSolveOptions struct {
	// FilterFunc excludes points from selection.
	FilterFunc FilterFunc
}

// BruteSolve selects placements points by exhaustive enumeration of
// all subsets, pruned by the incumbent minimum. The cost grows
// exponentially with the placement count; use it to verify calibrated
// results on small inputs. The outcome contract matches Solve,
// including ErrUnsolvable when no selection keeps every pair at a
// strictly positive distance.
func (s *Solver) BruteSolve(ctx context.Context, points []geometry.Point, placements int, optFns ...func(o *BruteSolveOptions)) (Selection, error) {
	start := time.Now()

	opts := BruteSolveOptions{
		FilterFunc: nil,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	selection, err := s.bruteSolve(ctx, points, placements, opts)
	s.metrics.RecordBruteSolve(time.Since(start), err)
	s.logger.LogBruteSolve(ctx, len(points), placements, err)

	return selection, err
}

func (s *Solver) bruteSolve(ctx context.Context, points []geometry.Point, placements int, opts BruteSolveOptions) (Selection, error) {
	if len(points) == 0 {
		return Selection{}, ErrEmptyInput
	}

	if placements < 1 || placements > len(points) {
		return Selection{}, &ErrInvalidPlacements{Placements: placements, Points: len(points)}
	}

	candidates := make([]int, 0, len(points))
	for i := range points {
		if opts.FilterFunc == nil || opts.FilterFunc(i) {
			candidates = append(candidates, i)
		}
	}

	e := &bruteEnum{
		m:          geometry.NewMatrix(points),
		candidates: candidates,
		placements: placements,
		chosen:     make([]int, 0, placements),
	}

	if err := e.run(ctx, 0, math32.Inf(1)); err != nil {
		return Selection{}, err
	}

	if e.best == nil {
		return Selection{}, ErrUnsolvable
	}

	return Selection{
		Indices:     e.best,
		MinDistance: e.bestMin,
	}, nil
}

// bruteEnum enumerates index subsets in lexicographic order. bestMin
// starts at zero, so selections containing a zero-distance pair never
// become the incumbent and ties keep the earlier selection.
type bruteEnum struct {
	m          *geometry.Matrix
	candidates []int
	placements int
	chosen     []int
	best       []int
	bestMin    float32
	visited    uint64
}

func (e *bruteEnum) run(ctx context.Context, from int, currentMin float32) error {
	if len(e.chosen) == e.placements {
		if currentMin > e.bestMin {
			e.best = slices.Clone(e.chosen)
			e.bestMin = currentMin
		}

		return nil
	}

	needed := e.placements - len(e.chosen)

	for i := from; i+needed <= len(e.candidates); i++ {
		e.visited++
		if e.visited&(checkInterval-1) == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		id := e.candidates[i]

		branchMin := currentMin
		for _, c := range e.chosen {
			if d := e.m.At(id, c); d < branchMin {
				branchMin = d
			}
		}

		// Adding points only lowers the minimum, so a branch at or
		// below the incumbent cannot improve on it.
		if branchMin <= e.bestMin {
			continue
		}

		e.chosen = append(e.chosen, id)
		if err := e.run(ctx, i+1, branchMin); err != nil {
			return err
		}
		e.chosen = e.chosen[:len(e.chosen)-1]
	}

	return nil
}
