package solver

import (
	"context"

	"github.com/ThunderKey/sudoku-solver/grid"
	"github.com/ThunderKey/sudoku-solver/rules"
)

// LogicalSolver applies human-style deduction (naked singles and hidden
// singles over rows, columns and boxes) until no further progress, then
// hands any remaining cells to plain backtracking from the partially
// filled state.
type LogicalSolver struct{}

// NewLogicalSolver constructs the logical-deduction strategy.
func NewLogicalSolver() *LogicalSolver { return &LogicalSolver{} }

// Name implements Solver.
func (s *LogicalSolver) Name() string { return "Logical Solver" }

// Description implements Solver.
func (s *LogicalSolver) Description() string {
	return "Uses naked singles and hidden singles techniques"
}

// Solve implements Solver.
func (s *LogicalSolver) Solve(ctx context.Context, g grid.Grid) (grid.Grid, error) {
	if err := prepare(g); err != nil {
		return grid.Grid{}, err
	}
	work := g
	for progress := true; progress; {
		progress = false
		if nakedSingles(&work) {
			progress = true
		}
		if hiddenSingles(&work) {
			progress = true
		}
		if rules.Complete(work) {
			return work, nil
		}
	}
	if !search(ctx, &work, pickFirstEmpty, nil) {
		return grid.Grid{}, exhausted(ctx)
	}
	return work, nil
}

// SolveWithTrace implements Solver via the default single-step wrapper.
func (s *LogicalSolver) SolveWithTrace(ctx context.Context, g grid.Grid) (grid.Grid, Trace, error) {
	return wrapSolve(ctx, g, s.Solve)
}

// nakedSingles fills every empty cell with exactly one legal candidate.
func nakedSingles(g *grid.Grid) bool {
	progress := false
	for r := 0; r < grid.Size; r++ {
		for c := 0; c < grid.Size; c++ {
			if g[r][c] != 0 {
				continue
			}
			if cands := rules.Candidates(*g, r, c); len(cands) == 1 {
				g[r][c] = cands[0]
				progress = true
			}
		}
	}
	return progress
}

// hiddenSingles fills cells where a digit has exactly one legal position
// within a row, a column or a box.
func hiddenSingles(g *grid.Grid) bool {
	progress := false

	for r := 0; r < grid.Size; r++ {
		for v := 1; v <= grid.Size; v++ {
			spot, count := -1, 0
			for c := 0; c < grid.Size; c++ {
				if g[r][c] == 0 && rules.ValidPlacement(*g, r, c, v) {
					spot, count = c, count+1
				}
			}
			if count == 1 {
				g[r][spot] = v
				progress = true
			}
		}
	}

	for c := 0; c < grid.Size; c++ {
		for v := 1; v <= grid.Size; v++ {
			spot, count := -1, 0
			for r := 0; r < grid.Size; r++ {
				if g[r][c] == 0 && rules.ValidPlacement(*g, r, c, v) {
					spot, count = r, count+1
				}
			}
			if count == 1 {
				g[spot][c] = v
				progress = true
			}
		}
	}

	for boxRow := 0; boxRow < grid.BoxSize; boxRow++ {
		for boxCol := 0; boxCol < grid.BoxSize; boxCol++ {
			for v := 1; v <= grid.Size; v++ {
				var spot grid.Cell
				count := 0
				for r := boxRow * grid.BoxSize; r < (boxRow+1)*grid.BoxSize; r++ {
					for c := boxCol * grid.BoxSize; c < (boxCol+1)*grid.BoxSize; c++ {
						if g[r][c] == 0 && rules.ValidPlacement(*g, r, c, v) {
							spot, count = grid.Cell{Row: r, Col: c}, count+1
						}
					}
				}
				if count == 1 {
					g[spot.Row][spot.Col] = v
					progress = true
				}
			}
		}
	}

	return progress
}
