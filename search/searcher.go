package search

import (
	"context"

	"github.com/hupe1980/dispergo/pointset"
)

// checkInterval is the number of search states between cooperative
// context checks. Must be a power of two.
const checkInterval = 4096

// State is one frame of the search: the points committed so far and
// the candidates still compatible with every one of them.
type State struct {
	Selected  *pointset.Set
	Remaining *pointset.Set
}

// Options for the Searcher.
type Options struct {
	// Universe restricts the candidate points. It must have the same
	// capacity as the point count. Defaults to every index.
	Universe *pointset.Set
}

// Searcher answers feasibility questions for successive thresholds,
// reusing one pre-allocated State frame per recursion depth. The frame
// at depth d always holds exactly d selected points, so placements+1
// frames cover every reachable depth. A Searcher is not safe for
// concurrent use; witnesses returned by Feasible remain valid after
// the next probe, the frames do not.
type Searcher struct {
	dim        int
	placements int
	universe   *pointset.Set
	arena      []State
	visited    uint64
}

// NewSearcher creates a Searcher for n points and the given selection
// size.
func NewSearcher(n, placements int, optFns ...func(o *Options)) *Searcher {
	opts := Options{
		Universe: pointset.NewFull(n),
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	arena := make([]State, placements+1)
	for i := range arena {
		arena[i] = State{
			Selected:  pointset.New(n),
			Remaining: pointset.New(n),
		}
	}

	return &Searcher{
		dim:        n,
		placements: placements,
		universe:   opts.Universe,
		arena:      arena,
	}
}

// Visited returns the total number of search states examined,
// accumulated across probes.
func (s *Searcher) Visited() uint64 {
	return s.visited
}

// Feasible reports whether the selection size can be reached with all
// pairwise distances strictly above the graph's threshold. On success
// it returns the selected indices in ascending order; on proven
// infeasibility it returns nil with a nil error. The graph must cover
// the same points the Searcher was created for.
func (s *Searcher) Feasible(ctx context.Context, g *NeighborGraph) ([]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	root := s.arena[0]
	root.Selected.Reset()
	root.Remaining.SetTo(s.universe)

	ok, err := s.solve(ctx, g, 0)
	if err != nil {
		return nil, err
	}

	if !ok {
		return nil, nil
	}

	// Snapshot the witness: the next probe reuses the arena frames.
	return s.arena[s.placements].Selected.Indices(), nil
}

func (s *Searcher) solve(ctx context.Context, g *NeighborGraph, depth int) (bool, error) {
	st := s.arena[depth]

	for {
		s.visited++
		if s.visited&(checkInterval-1) == 0 {
			if err := ctx.Err(); err != nil {
				return false, err
			}
		}

		if st.Selected.Len() == s.placements {
			return true, nil
		}

		// Not enough candidates left to ever reach the target size.
		if st.Remaining.Len() < s.placements-st.Selected.Len() {
			return false, nil
		}

		v := st.Remaining.First()

		// Include v: the next frame drops v's whole too-close row from
		// the candidates in one fused pass, v itself along with it.
		next := s.arena[depth+1]
		next.Selected.SetTo(st.Selected)
		next.Selected.Insert(v)
		next.Remaining.DifferenceOf(st.Remaining, g.Row(v))

		ok, err := s.solve(ctx, g, depth+1)
		if err != nil {
			return false, err
		}

		if ok {
			return true, nil
		}

		// Exclude v and rescan this frame.
		st.Remaining.Remove(v)
	}
}
