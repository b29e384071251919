package solver_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ThunderKey/sudoku-solver/grid"
	"github.com/ThunderKey/sudoku-solver/internal/testutil"
	"github.com/ThunderKey/sudoku-solver/rules"
	"github.com/ThunderKey/sudoku-solver/solver"
)

func TestBacktrackingSolvesSample(t *testing.T) {
	s := solver.NewBacktrackingSolver()
	solution, err := s.Solve(context.Background(), testutil.SamplePuzzle())
	require.NoError(t, err)

	assert.Equal(t, [grid.Size]int{5, 3, 4, 6, 7, 8, 9, 1, 2}, solution[0])
	assert.Equal(t, testutil.SampleSolution(), solution)
}

func TestBacktrackingDoesNotMutateInput(t *testing.T) {
	s := solver.NewBacktrackingSolver()
	in := testutil.SamplePuzzle()
	_, err := s.Solve(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, testutil.SamplePuzzle(), in)
}

func TestBacktrackingNoSolution(t *testing.T) {
	s := solver.NewBacktrackingSolver()
	_, err := s.Solve(context.Background(), testutil.Unsolvable())
	require.ErrorIs(t, err, solver.ErrNoSolution)
}

func TestBacktrackingRejectsOutOfRange(t *testing.T) {
	g := testutil.SamplePuzzle()
	g[0][2] = 42
	s := solver.NewBacktrackingSolver()

	var rangeErr *grid.RangeError
	_, err := s.Solve(context.Background(), g)
	require.ErrorAs(t, err, &rangeErr)

	_, trace, err := s.SolveWithTrace(context.Background(), g)
	require.ErrorAs(t, err, &rangeErr)
	assert.Zero(t, trace.Len(), "rejected input must not produce steps")
}

func TestBacktrackingConflictingGivens(t *testing.T) {
	s := solver.NewBacktrackingSolver()
	_, trace, err := s.SolveWithTrace(context.Background(), testutil.Conflicted())
	require.ErrorIs(t, err, solver.ErrNoSolution)
	assert.Zero(t, trace.Len())
}

func TestBacktrackingHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := solver.NewBacktrackingSolver()
	_, err := s.Solve(ctx, testutil.SamplePuzzle())
	require.ErrorIs(t, err, context.Canceled)
}

func TestBacktrackingTrace(t *testing.T) {
	s := solver.NewBacktrackingSolver()
	solution, trace, err := s.SolveWithTrace(context.Background(), testutil.SamplePuzzle())
	require.NoError(t, err)
	require.Greater(t, trace.Len(), 2)
	assert.NotEmpty(t, trace.ID)

	first := trace.At(0)
	assert.Equal(t, solver.ActionStart, first.Action)
	assert.Equal(t, testutil.SamplePuzzle(), first.Grid)
	assert.Nil(t, first.Move)

	last := trace.At(trace.Len() - 1)
	assert.Equal(t, solver.ActionComplete, last.Action)
	assert.Equal(t, solution, last.Grid)

	for i := 1; i < trace.Len()-1; i++ {
		step := trace.At(i)
		require.NotNil(t, step.Move, "step %d", i)
		switch step.Action {
		case solver.ActionPlace:
			assert.Equal(t, step.Move.Value, step.Grid[step.Move.Row][step.Move.Col])
			assert.Positive(t, step.Move.Value)
		case solver.ActionBacktrack:
			assert.Zero(t, step.Move.Value)
			assert.Zero(t, step.Grid[step.Move.Row][step.Move.Col])
		default:
			t.Fatalf("unexpected action %q at step %d", step.Action, i)
		}
	}
}

func TestBacktrackingTraceEveryStepInRange(t *testing.T) {
	s := solver.NewBacktrackingSolver()
	_, trace, err := s.SolveWithTrace(context.Background(), testutil.SamplePuzzle())
	require.NoError(t, err)
	for i := 0; i < trace.Len(); i++ {
		require.NoError(t, trace.At(i).Grid.CheckRange())
	}
}

func TestSolvedInputReturnsImmediately(t *testing.T) {
	s := solver.NewBacktrackingSolver()
	solution, err := s.Solve(context.Background(), testutil.SampleSolution())
	require.NoError(t, err)
	assert.Equal(t, testutil.SampleSolution(), solution)
	assert.True(t, rules.Complete(solution))
}
