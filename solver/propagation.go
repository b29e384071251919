package solver

import (
	"context"
	"math/bits"

	"github.com/ThunderKey/sudoku-solver/grid"
)

// candBoard tracks the remaining candidates of every cell as a bitmask
// (bit v set means digit v is still possible). Filled cells hold the single
// bit of their value. Being a fixed-size array it clones by plain
// assignment, which keeps propagation failures local to a search branch.
type candBoard [grid.Size][grid.Size]uint16

const allCandidates uint16 = 0x3FE // bits 1..9

func bit(v int) uint16 { return 1 << uint(v) }

// newCandBoard derives the candidate board for g: filled cells keep their
// value bit, empty cells start with every digit not used by a peer.
func newCandBoard(g grid.Grid) candBoard {
	var cb candBoard
	for r := 0; r < grid.Size; r++ {
		for c := 0; c < grid.Size; c++ {
			cb[r][c] = allCandidates
		}
	}
	for r := 0; r < grid.Size; r++ {
		for c := 0; c < grid.Size; c++ {
			if g[r][c] != 0 {
				cb[r][c] = bit(g[r][c])
				cb.eliminate(r, c, g[r][c])
			}
		}
	}
	return cb
}

// eliminate removes value from every peer's candidate set and reports
// whether all peers still have at least one candidate left.
func (cb *candBoard) eliminate(row, col, value int) bool {
	ok := true
	drop := func(r, c int) {
		cb[r][c] &^= bit(value)
		if cb[r][c] == 0 {
			ok = false
		}
	}
	for c := 0; c < grid.Size; c++ {
		if c != col {
			drop(row, c)
		}
	}
	for r := 0; r < grid.Size; r++ {
		if r != row {
			drop(r, col)
		}
	}
	boxRow, boxCol := grid.BoxSize*(row/grid.BoxSize), grid.BoxSize*(col/grid.BoxSize)
	for r := boxRow; r < boxRow+grid.BoxSize; r++ {
		for c := boxCol; c < boxCol+grid.BoxSize; c++ {
			if r != row || c != col {
				drop(r, c)
			}
		}
	}
	return ok
}

// values lists the digits of a candidate mask in ascending order.
func values(mask uint16) []int {
	var vs []int
	for v := 1; v <= grid.Size; v++ {
		if mask&bit(v) != 0 {
			vs = append(vs, v)
		}
	}
	return vs
}

// ConstraintPropagationSolver interleaves naked-single propagation with
// MCV search. Propagation fills every cell whose candidate set shrinks to
// one and ripples the elimination through its peers; when it stalls the
// solver branches on the most constrained cell, cloning the candidate board
// so a failed branch leaves its siblings untouched.
type ConstraintPropagationSolver struct{}

// NewConstraintPropagationSolver constructs the propagation strategy.
func NewConstraintPropagationSolver() *ConstraintPropagationSolver {
	return &ConstraintPropagationSolver{}
}

// Name implements Solver.
func (s *ConstraintPropagationSolver) Name() string { return "Constraint Propagation" }

// Description implements Solver.
func (s *ConstraintPropagationSolver) Description() string {
	return "Uses constraint propagation with search"
}

// Solve implements Solver.
func (s *ConstraintPropagationSolver) Solve(ctx context.Context, g grid.Grid) (grid.Grid, error) {
	if err := prepare(g); err != nil {
		return grid.Grid{}, err
	}
	work := g
	cb := newCandBoard(work)
	if !propagate(&work, &cb) {
		return grid.Grid{}, ErrNoSolution
	}
	solution, ok := searchPropagate(ctx, work, cb)
	if !ok {
		return grid.Grid{}, exhausted(ctx)
	}
	return solution, nil
}

// SolveWithTrace implements Solver via the default single-step wrapper.
func (s *ConstraintPropagationSolver) SolveWithTrace(ctx context.Context, g grid.Grid) (grid.Grid, Trace, error) {
	return wrapSolve(ctx, g, s.Solve)
}

// propagate applies naked singles to a fixpoint: any empty cell whose
// candidate set holds exactly one digit is filled and the digit removed
// from its peers. It reports false the moment some peer's set empties.
func propagate(g *grid.Grid, cb *candBoard) bool {
	for changed := true; changed; {
		changed = false
		for r := 0; r < grid.Size; r++ {
			for c := 0; c < grid.Size; c++ {
				if g[r][c] != 0 || bits.OnesCount16(cb[r][c]) != 1 {
					continue
				}
				v := bits.TrailingZeros16(cb[r][c])
				g[r][c] = v
				if !cb.eliminate(r, c, v) {
					return false
				}
				changed = true
			}
		}
	}
	return true
}

// searchPropagate branches on the empty cell with the smallest candidate
// set; grid and candidate board travel by value, so each branch owns its
// state.
func searchPropagate(ctx context.Context, g grid.Grid, cb candBoard) (grid.Grid, bool) {
	if ctx.Err() != nil {
		return grid.Grid{}, false
	}
	best, bestRow, bestCol, found := grid.Size+1, 0, 0, false
	for r := 0; r < grid.Size; r++ {
		for c := 0; c < grid.Size; c++ {
			if g[r][c] != 0 {
				continue
			}
			if n := bits.OnesCount16(cb[r][c]); n < best {
				best, bestRow, bestCol, found = n, r, c, true
			}
		}
	}
	if !found {
		return g, true
	}
	for _, v := range values(cb[bestRow][bestCol]) {
		branch := g
		branchCB := cb
		branch[bestRow][bestCol] = v
		branchCB[bestRow][bestCol] = bit(v)
		if !branchCB.eliminate(bestRow, bestCol, v) {
			continue
		}
		if !propagate(&branch, &branchCB) {
			continue
		}
		if solution, ok := searchPropagate(ctx, branch, branchCB); ok {
			return solution, true
		}
	}
	return grid.Grid{}, false
}
