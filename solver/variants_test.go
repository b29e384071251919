package solver_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ThunderKey/sudoku-solver/grid"
	"github.com/ThunderKey/sudoku-solver/internal/testutil"
	"github.com/ThunderKey/sudoku-solver/solver"
)

func TestAllStrategiesConverge(t *testing.T) {
	solvers := []solver.Solver{
		solver.NewBacktrackingSolver(),
		solver.NewSmartBacktrackingSolver(),
		solver.NewConstraintPropagationSolver(),
		solver.NewLogicalSolver(),
		solver.NewBruteForceSolver(),
	}

	want := testutil.SampleSolution()
	for _, s := range solvers {
		t.Run(s.Name(), func(t *testing.T) {
			got, err := s.Solve(context.Background(), testutil.SamplePuzzle())
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestStrategiesReportNoSolution(t *testing.T) {
	solvers := []solver.Solver{
		solver.NewSmartBacktrackingSolver(),
		solver.NewConstraintPropagationSolver(),
		solver.NewLogicalSolver(),
		solver.NewBruteForceSolver(),
	}

	for _, s := range solvers {
		t.Run(s.Name(), func(t *testing.T) {
			_, err := s.Solve(context.Background(), testutil.Unsolvable())
			require.ErrorIs(t, err, solver.ErrNoSolution)
		})
	}
}

func TestSolverMetadata(t *testing.T) {
	tests := []struct {
		s    solver.Solver
		name string
	}{
		{solver.NewBacktrackingSolver(), "Backtracking Solver"},
		{solver.NewSmartBacktrackingSolver(), "Smart Backtracking"},
		{solver.NewConstraintPropagationSolver(), "Constraint Propagation"},
		{solver.NewLogicalSolver(), "Logical Solver"},
		{solver.NewBruteForceSolver(), "Brute Force Solver"},
		{solver.NewRandomFillSolver(), "Random Fill Solver"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.name, tt.s.Name())
		assert.NotEmpty(t, tt.s.Description())
	}
}

func TestSmartBacktrackingTraceShape(t *testing.T) {
	s := solver.NewSmartBacktrackingSolver()
	solution, trace, err := s.SolveWithTrace(context.Background(), testutil.SamplePuzzle())
	require.NoError(t, err)
	require.Greater(t, trace.Len(), 2)

	assert.Equal(t, solver.ActionStart, trace.At(0).Action)
	last := trace.At(trace.Len() - 1)
	assert.Equal(t, solver.ActionComplete, last.Action)
	assert.Equal(t, solution, last.Grid)
}

func TestWrappedSolversEmitSingleStep(t *testing.T) {
	solvers := []solver.Solver{
		solver.NewConstraintPropagationSolver(),
		solver.NewLogicalSolver(),
		solver.NewBruteForceSolver(),
	}

	for _, s := range solvers {
		t.Run(s.Name(), func(t *testing.T) {
			solution, trace, err := s.SolveWithTrace(context.Background(), testutil.SamplePuzzle())
			require.NoError(t, err)
			require.Equal(t, 1, trace.Len())
			assert.NotEmpty(t, trace.ID)

			step := trace.At(0)
			assert.Equal(t, solver.ActionComplete, step.Action)
			assert.Equal(t, solution, step.Grid)
			assert.Equal(t, testutil.SampleSolution(), solution)
		})
	}
}

func TestWrappedSolverFailureHasEmptyTrace(t *testing.T) {
	s := solver.NewLogicalSolver()
	_, trace, err := s.SolveWithTrace(context.Background(), testutil.Unsolvable())
	require.ErrorIs(t, err, solver.ErrNoSolution)
	assert.Zero(t, trace.Len())
	assert.NotEmpty(t, trace.ID)
}

func TestLogicalSolvesSinglesOnlyPuzzle(t *testing.T) {
	// Two empty cells, each resolvable as a naked single.
	g := testutil.NearlyComplete(grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 8, Col: 8})
	s := solver.NewLogicalSolver()
	got, err := s.Solve(context.Background(), g)
	require.NoError(t, err)
	assert.Equal(t, testutil.SampleSolution(), got)
}
