package solver

import (
	"context"

	"github.com/ThunderKey/sudoku-solver/grid"
	"github.com/ThunderKey/sudoku-solver/rules"
)

// picker is a cell-selection policy: it returns the next empty cell the
// search should branch on, or ok=false when no empty cell remains.
type picker func(g grid.Grid) (row, col int, ok bool)

// pickFirstEmpty selects the first empty cell in row-major order.
func pickFirstEmpty(g grid.Grid) (int, int, bool) {
	for r := 0; r < grid.Size; r++ {
		for c := 0; c < grid.Size; c++ {
			if g[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// pickMostConstrained selects the empty cell with the fewest legal
// candidates (ties broken by row-major scan order) and short-circuits the
// scan as soon as a single-candidate cell turns up.
func pickMostConstrained(g grid.Grid) (int, int, bool) {
	best, bestRow, bestCol, found := grid.Size+1, 0, 0, false
	for r := 0; r < grid.Size; r++ {
		for c := 0; c < grid.Size; c++ {
			if g[r][c] != 0 {
				continue
			}
			n := len(rules.Candidates(g, r, c))
			if n < best {
				best, bestRow, bestCol, found = n, r, c, true
				if best <= 1 {
					return bestRow, bestCol, found
				}
			}
		}
	}
	return bestRow, bestCol, found
}

// search is the recursive engine shared by the backtracking strategies. It
// walks the {Searching, Solved, Exhausted} state machine: pick a cell per
// the policy, try its candidates in ascending order, recurse, and undo the
// placement when the subtree exhausts. No empty cell left is the solved
// base case; a picked cell with zero candidates exhausts immediately since
// the loop body never runs.
//
// The recorder may be nil for untraced solving. Cancellation is checked at
// every frame and treated as exhaustion; the caller distinguishes the two
// via ctx.Err().
func search(ctx context.Context, g *grid.Grid, pick picker, rec *recorder) bool {
	if ctx.Err() != nil {
		return false
	}
	row, col, ok := pick(*g)
	if !ok {
		rec.complete(*g, "Puzzle solved!")
		return true
	}
	for _, v := range rules.Candidates(*g, row, col) {
		g[row][col] = v
		rec.place(*g, row, col, v)
		if search(ctx, g, pick, rec) {
			return true
		}
		g[row][col] = 0
		rec.backtrack(*g, row, col, v)
	}
	return false
}
