package replay

import (
	"github.com/ThunderKey/sudoku-solver/grid"
	"github.com/ThunderKey/sudoku-solver/solver"
)

// Info summarizes the navigator's position for callers driving playback
// controls.
type Info struct {
	CurrentStep        int    `json:"current_step"`
	TotalSteps         int    `json:"total_steps"`
	CanGoPrev          bool   `json:"can_go_prev"`
	CanGoNext          bool   `json:"can_go_next"`
	CurrentDescription string `json:"current_description"`
}

// Navigator owns one solve's decision trace and a cursor into it. It is
// created empty, populated once per solve via SetTrace (replacing any prior
// trace and resetting the cursor), and discarded on the next load or clear.
// It never mutates the grid model; callers apply CurrentView explicitly.
type Navigator struct {
	trace  solver.Trace
	cursor int
}

// NewNavigator returns an empty navigator.
func NewNavigator() *Navigator { return &Navigator{} }

// SetTrace replaces the current trace and resets the cursor to the first
// step.
func (n *Navigator) SetTrace(t solver.Trace) {
	n.trace = t
	n.cursor = 0
}

// Reset discards the trace and rewinds the cursor.
func (n *Navigator) Reset() {
	n.trace = solver.Trace{}
	n.cursor = 0
}

// Empty reports whether the navigator holds no steps.
func (n *Navigator) Empty() bool { return n.trace.Len() == 0 }

// Trace returns the trace under navigation.
func (n *Navigator) Trace() solver.Trace { return n.trace }

// Next advances the cursor by one step. At the last step it is a no-op
// returning false.
func (n *Navigator) Next() bool {
	if n.cursor >= n.trace.Len()-1 {
		return false
	}
	n.cursor++
	return true
}

// Prev rewinds the cursor by one step. At the first step it is a no-op
// returning false.
func (n *Navigator) Prev() bool {
	if n.cursor <= 0 || n.trace.Len() == 0 {
		return false
	}
	n.cursor--
	return true
}

// Jump moves the cursor to index. Indices outside [0, len-1] are rejected
// with false and leave the cursor unchanged.
func (n *Navigator) Jump(index int) bool {
	if index < 0 || index >= n.trace.Len() {
		return false
	}
	n.cursor = index
	return true
}

// CurrentView returns the current step's grid with every given-cell
// position overwritten by the original puzzle's value. Whatever a solver
// recorded into the step snapshot, given cells always replay as loaded.
// ok is false when no trace is set.
func (n *Navigator) CurrentView(given grid.Mask, original grid.Grid) (grid.Grid, bool) {
	if n.trace.Len() == 0 {
		return grid.Grid{}, false
	}
	view := n.trace.At(n.cursor).Grid
	for r := 0; r < grid.Size; r++ {
		for c := 0; c < grid.Size; c++ {
			if given[r][c] {
				view[r][c] = original[r][c]
			}
		}
	}
	return view, true
}

// Info returns the playback summary for the current cursor position. ok is
// false when no trace is set.
func (n *Navigator) Info() (Info, bool) {
	if n.trace.Len() == 0 {
		return Info{}, false
	}
	return Info{
		CurrentStep:        n.cursor,
		TotalSteps:         n.trace.Len(),
		CanGoPrev:          n.cursor > 0,
		CanGoNext:          n.cursor < n.trace.Len()-1,
		CurrentDescription: n.trace.At(n.cursor).Description,
	}, true
}
