package dispergo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/dispergo/geometry"
	"github.com/hupe1980/dispergo/testutil"
)

func TestBatchSolve(t *testing.T) {
	ctx := context.Background()

	t.Run("IndependentSlots", func(t *testing.T) {
		solver := New(WithBatchWorkers(2))

		problems := []Problem{
			{Points: rectanglePoints(), Placements: 3},
			{Points: nil, Placements: 1},
			{Points: rectanglePoints(), Placements: 9},
			{Points: []geometry.Point{{X: 0, Y: 0}, {X: 0, Y: 0}}, Placements: 2},
			{Points: rectanglePoints(), Placements: 2},
		}

		result := solver.BatchSolve(ctx, problems)
		require.Len(t, result.Selections, len(problems))
		require.Len(t, result.Errors, len(problems))

		require.NoError(t, result.Errors[0])
		assert.Equal(t, []int{1, 3, 4}, result.Selections[0].Indices)

		require.ErrorIs(t, result.Errors[1], ErrEmptyInput)

		var invalidErr *ErrInvalidPlacements
		require.ErrorAs(t, result.Errors[2], &invalidErr)

		require.ErrorIs(t, result.Errors[3], ErrUnsolvable)

		require.NoError(t, result.Errors[4])
		assert.Len(t, result.Selections[4].Indices, 2)
	})

	t.Run("MatchesSequentialSolve", func(t *testing.T) {
		solver := New()
		rng := testutil.NewRNG(23)

		problems := make([]Problem, 8)
		for i := range problems {
			problems[i] = Problem{
				Points:     rng.UniformPoints(20+i, 10, 10),
				Placements: 3,
			}
		}

		result := solver.BatchSolve(ctx, problems)

		for i, p := range problems {
			require.NoError(t, result.Errors[i])

			want, err := solver.Solve(ctx, p.Points, p.Placements)
			require.NoError(t, err)
			assert.Equal(t, want.Indices, result.Selections[i].Indices, "slot %d", i)
		}
	})

	t.Run("PerProblemFilter", func(t *testing.T) {
		solver := New()

		problems := []Problem{
			{Points: rectanglePoints(), Placements: 3},
			{
				Points:     rectanglePoints(),
				Placements: 3,
				Filter:     func(i int) bool { return i != 1 },
			},
		}

		result := solver.BatchSolve(ctx, problems)

		require.NoError(t, result.Errors[0])
		require.NoError(t, result.Errors[1])
		assert.Contains(t, result.Selections[0].Indices, 1)
		assert.NotContains(t, result.Selections[1].Indices, 1)
	})

	t.Run("Empty", func(t *testing.T) {
		solver := New()

		result := solver.BatchSolve(ctx, nil)
		assert.Empty(t, result.Selections)
		assert.Empty(t, result.Errors)
	})

	t.Run("Metrics", func(t *testing.T) {
		metrics := &BasicMetricsCollector{}
		solver := New(WithMetricsCollector(metrics))

		solver.BatchSolve(ctx, []Problem{
			{Points: rectanglePoints(), Placements: 3},
			{Points: nil, Placements: 1},
		})

		stats := metrics.GetStats()
		assert.Equal(t, int64(1), stats.BatchSolveCount)
		assert.Equal(t, int64(2), stats.BatchSolveItems)
		assert.Equal(t, int64(1), stats.BatchSolveFailed)
	})
}
