package grid

// Size is the edge length of the board; BoxSize the edge length of one of
// the nine non-overlapping sub-grids.
const (
	Size    = 9
	BoxSize = 3
)

// Grid is a 9×9 value matrix. Values range 0–9 where 0 marks an empty cell.
// Being a fixed-size array it is copied by assignment, so passing a Grid by
// value already yields an independent snapshot.
type Grid [Size][Size]int

// Mask flags which cells originated from the loaded puzzle (given cells).
type Mask [Size][Size]bool

// Cell identifies a single board position.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// InBounds reports whether (row, col) lies on the board.
func InBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// FromRows converts row-major [][]int input into a Grid. It is the single
// entry point for untyped grid data and returns *ShapeError if the input is
// not exactly 9×9 or *RangeError if any value falls outside 0–9.
func FromRows(rows [][]int) (Grid, error) {
	var g Grid
	if len(rows) != Size {
		return g, &ShapeError{Rows: len(rows), Cols: -1}
	}
	for r, row := range rows {
		if len(row) != Size {
			return g, &ShapeError{Rows: len(rows), Cols: len(row), Row: r}
		}
		for c, v := range row {
			if v < 0 || v > Size {
				return g, &RangeError{Row: r, Col: c, Value: v}
			}
			g[r][c] = v
		}
	}
	return g, nil
}

// Rows converts the grid back into row-major [][]int form.
func (g Grid) Rows() [][]int {
	rows := make([][]int, Size)
	for r := 0; r < Size; r++ {
		rows[r] = make([]int, Size)
		copy(rows[r], g[r][:])
	}
	return rows
}

// Empty reports whether every cell holds 0.
func (g Grid) Empty() bool {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if g[r][c] != 0 {
				return false
			}
		}
	}
	return true
}

// CountEmpty returns the number of cells holding 0.
func (g Grid) CountEmpty() int {
	n := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if g[r][c] == 0 {
				n++
			}
		}
	}
	return n
}

// checkRange returns a *RangeError for the first out-of-range value, if any.
func (g Grid) checkRange() error {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if g[r][c] < 0 || g[r][c] > Size {
				return &RangeError{Row: r, Col: c, Value: g[r][c]}
			}
		}
	}
	return nil
}

// CheckRange validates that every value lies in 0–9. Callers that accept a
// Grid from outside the package (solvers, codecs) use this as their input
// guard before doing any work.
func (g Grid) CheckRange() error { return g.checkRange() }

// maskOf marks every nonzero cell as given.
func maskOf(g Grid) Mask {
	var m Mask
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			m[r][c] = g[r][c] != 0
		}
	}
	return m
}
