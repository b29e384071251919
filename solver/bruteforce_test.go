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

func TestBruteForceEnumeratesSmallGap(t *testing.T) {
	g := testutil.NearlyComplete(
		grid.Cell{Row: 0, Col: 0},
		grid.Cell{Row: 4, Col: 4},
		grid.Cell{Row: 8, Col: 8},
	)
	s := solver.NewBruteForceSolver()
	got, err := s.Solve(context.Background(), g)
	require.NoError(t, err)
	assert.Equal(t, testutil.SampleSolution(), got)
}

func TestBruteForceCompleteGrid(t *testing.T) {
	s := solver.NewBruteForceSolver()
	got, err := s.Solve(context.Background(), testutil.SampleSolution())
	require.NoError(t, err)
	assert.Equal(t, testutil.SampleSolution(), got)
}

func TestBruteForceDelegatesAboveCutoff(t *testing.T) {
	g := testutil.NearlyComplete(
		grid.Cell{Row: 0, Col: 0},
		grid.Cell{Row: 1, Col: 1},
		grid.Cell{Row: 2, Col: 2},
	)
	s := solver.NewBruteForceSolver(func(o *solver.BruteForceOptions) {
		o.Cutoff = 1
	})
	got, err := s.Solve(context.Background(), g)
	require.NoError(t, err)
	assert.Equal(t, testutil.SampleSolution(), got)
}

func TestBruteForceHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := testutil.NearlyComplete(grid.Cell{Row: 0, Col: 0})
	s := solver.NewBruteForceSolver()
	_, err := s.Solve(ctx, g)
	require.ErrorIs(t, err, context.Canceled)
}
