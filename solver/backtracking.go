package solver

import (
	"context"

	"github.com/ThunderKey/sudoku-solver/grid"
)

// BacktrackingSolver is the classic recursive strategy: first empty cell in
// row-major order, candidates tried in ascending order, undo on exhaustion.
type BacktrackingSolver struct{}

// NewBacktrackingSolver constructs the plain backtracking strategy.
func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

// Name implements Solver.
func (s *BacktrackingSolver) Name() string { return "Backtracking Solver" }

// Description implements Solver.
func (s *BacktrackingSolver) Description() string {
	return "Classic recursive backtracking algorithm"
}

// Solve implements Solver.
func (s *BacktrackingSolver) Solve(ctx context.Context, g grid.Grid) (grid.Grid, error) {
	if err := prepare(g); err != nil {
		return grid.Grid{}, err
	}
	work := g
	if !search(ctx, &work, pickFirstEmpty, nil) {
		return grid.Grid{}, exhausted(ctx)
	}
	return work, nil
}

// SolveWithTrace implements Solver with native step tracking: every
// placement and backtrack lands in the trace.
func (s *BacktrackingSolver) SolveWithTrace(ctx context.Context, g grid.Grid) (grid.Grid, Trace, error) {
	rec := newRecorder()
	if err := prepare(g); err != nil {
		return grid.Grid{}, rec.trace(), err
	}
	work := g
	rec.start(work, "Initial puzzle state")
	if !search(ctx, &work, pickFirstEmpty, rec) {
		return grid.Grid{}, rec.trace(), exhausted(ctx)
	}
	return work, rec.trace(), nil
}
