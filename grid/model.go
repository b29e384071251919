package grid

// Model owns the mutable puzzle state: the working grid, the originally
// loaded grid, the given-cell mask and a monotonic version counter. The
// version bumps on every mutation and is the sole externally observable
// change signal; the Model pushes no notifications.
//
// A Model is not safe for concurrent use. Exactly one solve is assumed
// active per Model at a time; callers wanting concurrency must serialize
// access themselves.
type Model struct {
	current  Grid
	original Grid
	given    Mask
	version  int
}

// NewModel returns an empty Model at version 0.
func NewModel() *Model { return &Model{} }

// Load installs a new puzzle. Every nonzero cell becomes a given cell; both
// the working and original grids are set to an independent copy of g. A
// *RangeError rejects the whole operation with state unchanged.
func (m *Model) Load(g Grid) error {
	if err := g.checkRange(); err != nil {
		return err
	}
	m.current = g
	m.original = g
	m.given = maskOf(g)
	m.version++
	return nil
}

// SetCell writes value into the working grid. It returns false, mutating
// nothing, for out-of-range coordinates or values and for given cells.
func (m *Model) SetCell(row, col, value int) bool {
	if !InBounds(row, col) || value < 0 || value > Size {
		return false
	}
	if m.given[row][col] {
		return false
	}
	m.current[row][col] = value
	m.version++
	return true
}

// Cell returns the working grid's value at (row, col), or -1 off the board.
func (m *Model) Cell(row, col int) int {
	if !InBounds(row, col) {
		return -1
	}
	return m.current[row][col]
}

// IsGiven reports whether (row, col) is a given cell; false off the board.
func (m *Model) IsGiven(row, col int) bool {
	return InBounds(row, col) && m.given[row][col]
}

// Clear zeroes the working grid. With keepGiven the given cells survive;
// without it the original grid and the mask are wiped as well. Either way
// the version bumps.
func (m *Model) Clear(keepGiven bool) {
	if keepGiven {
		for r := 0; r < Size; r++ {
			for c := 0; c < Size; c++ {
				if !m.given[r][c] {
					m.current[r][c] = 0
				}
			}
		}
	} else {
		m.current = Grid{}
		m.original = Grid{}
		m.given = Mask{}
	}
	m.version++
}

// Apply writes g into the working grid while re-imposing the original value
// on every given cell, so a given cell's displayed value can never diverge
// from the loaded puzzle regardless of what g recorded there.
func (m *Model) Apply(g Grid) {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if m.given[r][c] {
				g[r][c] = m.original[r][c]
			}
		}
	}
	m.current = g
	m.version++
}

// Snapshot returns an independent copy of the working grid.
func (m *Model) Snapshot() Grid { return m.current }

// Original returns an independent copy of the originally loaded grid.
func (m *Model) Original() Grid { return m.original }

// Given returns an independent copy of the given-cell mask.
func (m *Model) Given() Mask { return m.given }

// Version returns the current mutation counter.
func (m *Model) Version() int { return m.version }
