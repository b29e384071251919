package rules

import "github.com/ThunderKey/sudoku-solver/grid"

// Conflict lists the peers (same row, column or box) that share a filled
// cell's value. Cells without conflicting peers are never reported.
type Conflict struct {
	Row   int         `json:"row"`
	Col   int         `json:"col"`
	Cells []grid.Cell `json:"cells"`
}

// ValidPlacement reports whether value may sit at (row, col): no peer in
// the row, the column or the containing 3×3 box holds the same nonzero
// value. Value 0 (clearing a cell) is always valid. The cell itself is
// excluded, so the check also works for values already on the board.
func ValidPlacement(g grid.Grid, row, col, value int) bool {
	if value == 0 {
		return true
	}
	for c := 0; c < grid.Size; c++ {
		if c != col && g[row][c] == value {
			return false
		}
	}
	for r := 0; r < grid.Size; r++ {
		if r != row && g[r][col] == value {
			return false
		}
	}
	boxRow, boxCol := grid.BoxSize*(row/grid.BoxSize), grid.BoxSize*(col/grid.BoxSize)
	for r := boxRow; r < boxRow+grid.BoxSize; r++ {
		for c := boxCol; c < boxCol+grid.BoxSize; c++ {
			if (r != row || c != col) && g[r][c] == value {
				return false
			}
		}
	}
	return true
}

// ValidState reports whether every filled cell is a legal placement when
// evaluated against the rest of the grid.
func ValidState(g grid.Grid) bool {
	for r := 0; r < grid.Size; r++ {
		for c := 0; c < grid.Size; c++ {
			if g[r][c] != 0 && !ValidPlacement(g, r, c, g[r][c]) {
				return false
			}
		}
	}
	return true
}

// Complete reports whether the grid has no empty cells and is valid.
func Complete(g grid.Grid) bool {
	for r := 0; r < grid.Size; r++ {
		for c := 0; c < grid.Size; c++ {
			if g[r][c] == 0 {
				return false
			}
		}
	}
	return ValidState(g)
}

// EmptyCells returns the empty cell coordinates in row-major order.
func EmptyCells(g grid.Grid) []grid.Cell {
	var cells []grid.Cell
	for r := 0; r < grid.Size; r++ {
		for c := 0; c < grid.Size; c++ {
			if g[r][c] == 0 {
				cells = append(cells, grid.Cell{Row: r, Col: c})
			}
		}
	}
	return cells
}

// Candidates returns, in ascending order, the digits 1–9 that are legal at
// the empty cell (row, col). Filled cells have no candidates.
func Candidates(g grid.Grid, row, col int) []int {
	if g[row][col] != 0 {
		return nil
	}
	var vals []int
	for v := 1; v <= grid.Size; v++ {
		if ValidPlacement(g, row, col, v) {
			vals = append(vals, v)
		}
	}
	return vals
}

// Conflicts reports, for every filled cell with at least one conflicting
// peer, the de-duplicated set of peers sharing its value. ValidState(g) is
// false exactly when the result is non-empty.
func Conflicts(g grid.Grid) []Conflict {
	var conflicts []Conflict
	for row := 0; row < grid.Size; row++ {
		for col := 0; col < grid.Size; col++ {
			value := g[row][col]
			if value == 0 {
				continue
			}
			var peers []grid.Cell
			seen := map[grid.Cell]bool{}
			add := func(r, c int) {
				cell := grid.Cell{Row: r, Col: c}
				if !seen[cell] {
					seen[cell] = true
					peers = append(peers, cell)
				}
			}
			for c := 0; c < grid.Size; c++ {
				if c != col && g[row][c] == value {
					add(row, c)
				}
			}
			for r := 0; r < grid.Size; r++ {
				if r != row && g[r][col] == value {
					add(r, col)
				}
			}
			boxRow, boxCol := grid.BoxSize*(row/grid.BoxSize), grid.BoxSize*(col/grid.BoxSize)
			for r := boxRow; r < boxRow+grid.BoxSize; r++ {
				for c := boxCol; c < boxCol+grid.BoxSize; c++ {
					if (r != row || c != col) && g[r][c] == value {
						add(r, c)
					}
				}
			}
			if len(peers) > 0 {
				conflicts = append(conflicts, Conflict{Row: row, Col: col, Cells: peers})
			}
		}
	}
	return conflicts
}
