package testutil

import "github.com/ThunderKey/sudoku-solver/grid"

// SamplePuzzle returns the classic uniquely-solvable demo puzzle.
func SamplePuzzle() grid.Grid {
	return grid.Grid{
		{5, 3, 0, 0, 7, 0, 0, 0, 0},
		{6, 0, 0, 1, 9, 5, 0, 0, 0},
		{0, 9, 8, 0, 0, 0, 0, 6, 0},
		{8, 0, 0, 0, 6, 0, 0, 0, 3},
		{4, 0, 0, 8, 0, 3, 0, 0, 1},
		{7, 0, 0, 0, 2, 0, 0, 0, 6},
		{0, 6, 0, 0, 0, 0, 2, 8, 0},
		{0, 0, 0, 4, 1, 9, 0, 0, 5},
		{0, 0, 0, 0, 8, 0, 0, 7, 9},
	}
}

// SampleSolution returns the unique completion of SamplePuzzle.
func SampleSolution() grid.Grid {
	return grid.Grid{
		{5, 3, 4, 6, 7, 8, 9, 1, 2},
		{6, 7, 2, 1, 9, 5, 3, 4, 8},
		{1, 9, 8, 3, 4, 2, 5, 6, 7},
		{8, 5, 9, 7, 6, 1, 4, 2, 3},
		{4, 2, 6, 8, 5, 3, 7, 9, 1},
		{7, 1, 3, 9, 2, 4, 8, 5, 6},
		{9, 6, 1, 5, 3, 7, 2, 8, 4},
		{2, 8, 7, 4, 1, 9, 6, 3, 5},
		{3, 4, 5, 2, 8, 6, 1, 7, 9},
	}
}

// NearlyComplete returns SampleSolution with the given cells emptied. Handy
// for exercising strategies that only work on small empty counts.
func NearlyComplete(empties ...grid.Cell) grid.Grid {
	g := SampleSolution()
	for _, cell := range empties {
		g[cell.Row][cell.Col] = 0
	}
	return g
}

// Unsolvable returns a valid but unsolvable puzzle: the top-left cell's row
// peers hold 2 through 9 and its column holds the 1, leaving the cell with
// no candidate at all.
func Unsolvable() grid.Grid {
	return grid.Grid{
		{0, 2, 3, 4, 5, 6, 7, 8, 9},
		{1, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
	}
}

// Conflicted returns a grid whose givens already violate the rules (two 5s
// in the first row).
func Conflicted() grid.Grid {
	var g grid.Grid
	g[0][0] = 5
	g[0][4] = 5
	return g
}
