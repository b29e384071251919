package solver

import (
	"context"

	"github.com/ThunderKey/sudoku-solver/grid"
	"github.com/ThunderKey/sudoku-solver/rules"
)

// DefaultBruteForceCutoff is the maximum number of empty cells the
// brute-force strategy will enumerate before delegating to backtracking.
const DefaultBruteForceCutoff = 20

// BruteForceSolver enumerates the full Cartesian product of digit
// assignments over the empty cells and accepts the first valid, complete
// one. It exists for demonstration: the enumeration is exponential and
// impractical beyond a handful of empty cells, so puzzles with more than
// the cutoff delegate entirely to plain backtracking.
type BruteForceSolver struct {
	cutoff int
}

// BruteForceOptions configures the brute-force strategy.
type BruteForceOptions struct {
	// Cutoff is the maximum empty-cell count for exhaustive enumeration.
	// Defaults to DefaultBruteForceCutoff.
	Cutoff int
}

// NewBruteForceSolver constructs the brute-force strategy.
func NewBruteForceSolver(optFns ...func(o *BruteForceOptions)) *BruteForceSolver {
	opts := BruteForceOptions{Cutoff: DefaultBruteForceCutoff}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &BruteForceSolver{cutoff: opts.Cutoff}
}

// Name implements Solver.
func (s *BruteForceSolver) Name() string { return "Brute Force Solver" }

// Description implements Solver.
func (s *BruteForceSolver) Description() string {
	return "Tries all possible combinations (very slow, for demonstration)"
}

// Solve implements Solver.
func (s *BruteForceSolver) Solve(ctx context.Context, g grid.Grid) (grid.Grid, error) {
	if err := prepare(g); err != nil {
		return grid.Grid{}, err
	}
	work := g
	empties := rules.EmptyCells(work)
	if len(empties) == 0 {
		// prepare already verified validity, so a full grid is solved.
		return work, nil
	}
	if len(empties) > s.cutoff {
		if !search(ctx, &work, pickFirstEmpty, nil) {
			return grid.Grid{}, exhausted(ctx)
		}
		return work, nil
	}

	// Odometer over digit assignments: digits[i] is the value written into
	// empties[i], counting 1..9 with carry.
	digits := make([]int, len(empties))
	for i := range digits {
		digits[i] = 1
	}
	for {
		if ctx.Err() != nil {
			return grid.Grid{}, ctx.Err()
		}
		test := work
		for i, cell := range empties {
			test[cell.Row][cell.Col] = digits[i]
		}
		if rules.Complete(test) {
			return test, nil
		}
		i := len(digits) - 1
		for i >= 0 {
			digits[i]++
			if digits[i] <= grid.Size {
				break
			}
			digits[i] = 1
			i--
		}
		if i < 0 {
			return grid.Grid{}, ErrNoSolution
		}
	}
}

// SolveWithTrace implements Solver via the default single-step wrapper.
func (s *BruteForceSolver) SolveWithTrace(ctx context.Context, g grid.Grid) (grid.Grid, Trace, error) {
	return wrapSolve(ctx, g, s.Solve)
}
