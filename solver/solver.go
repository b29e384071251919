package solver

import (
	"context"
	"errors"

	"github.com/ThunderKey/sudoku-solver/grid"
	"github.com/ThunderKey/sudoku-solver/rules"
)

// ErrNoSolution reports search exhaustion: the puzzle has no completion
// reachable from its current state. It is a normal, reportable outcome of
// solving, not a fault.
var ErrNoSolution = errors.New("no solution found")

// Solver is the contract every search strategy implements.
//
// Solve returns a completed grid or ErrNoSolution. SolveWithTrace does the
// same and additionally returns the ordered decision log; strategies with no
// native tracing wrap Solve and emit a single complete step. Neither entry
// point mutates the input grid.
//
// Implementations should:
//   - Expose a stable, human-readable Name for registry lookup
//   - Reject out-of-range input before searching
//   - Honor context cancellation inside long searches
type Solver interface {
	// Name returns the unique display name this strategy registers under.
	Name() string

	// Description returns a short human-readable summary of the strategy.
	Description() string

	// Solve returns a completed grid, ErrNoSolution on exhaustion, or a
	// *grid.RangeError for malformed input.
	Solve(ctx context.Context, g grid.Grid) (grid.Grid, error)

	// SolveWithTrace behaves like Solve and additionally returns the
	// decision trace accumulated during the search.
	SolveWithTrace(ctx context.Context, g grid.Grid) (grid.Grid, Trace, error)
}

// prepare is the shared input guard run before any search: out-of-range
// values are structural errors, already-conflicting givens mean the puzzle
// is exhausted before the first decision.
func prepare(g grid.Grid) error {
	if err := g.CheckRange(); err != nil {
		return err
	}
	if !rules.ValidState(g) {
		return ErrNoSolution
	}
	return nil
}

// exhausted maps a failed search to its terminal error, preferring the
// context error when the search was aborted rather than exhausted.
func exhausted(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return ErrNoSolution
}

// wrapSolve is the default SolveWithTrace behavior for strategies without
// native step tracking: run solve and emit a single complete step holding
// the final grid, or return the empty trace alongside the error.
func wrapSolve(
	ctx context.Context,
	g grid.Grid,
	solve func(ctx context.Context, g grid.Grid) (grid.Grid, error),
) (grid.Grid, Trace, error) {
	rec := newRecorder()
	solution, err := solve(ctx, g)
	if err != nil {
		return grid.Grid{}, rec.trace(), err
	}
	rec.complete(solution, "Final solution")
	return solution, rec.trace(), nil
}
