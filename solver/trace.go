package solver

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/ThunderKey/sudoku-solver/grid"
)

// Action categorizes a trace step.
type Action string

const (
	// ActionStart marks the initial puzzle state before any decision.
	ActionStart Action = "start"
	// ActionPlace marks a candidate value written into a cell.
	ActionPlace Action = "place"
	// ActionBacktrack marks a placement undone after its subtree exhausted.
	ActionBacktrack Action = "backtrack"
	// ActionRestart marks a strategy abandoning its progress and starting over.
	ActionRestart Action = "restart"
	// ActionFallback marks a strategy handing the puzzle to its fallback algorithm.
	ActionFallback Action = "fallback"
	// ActionComplete marks a finished solve holding the final grid.
	ActionComplete Action = "complete"
)

// Move is the (row, col, value) decision a step records, when it has one.
// Backtrack steps carry Value 0, mirroring the cleared cell.
type Move struct {
	Row   int `json:"row"`
	Col   int `json:"col"`
	Value int `json:"value"`
}

// Step is one immutable entry of a decision trace: the full grid snapshot
// after the decision, a human-readable description and the decision itself.
type Step struct {
	Grid        grid.Grid `json:"grid"`
	Description string    `json:"description"`
	Move        *Move     `json:"move,omitempty"`
	Action      Action    `json:"action"`
}

// Trace is the ordered, append-only decision log produced during a solve.
// Once the solve finishes it is read-only and randomly addressable. ID
// uniquely identifies the solve run that produced it.
type Trace struct {
	ID    string `json:"id"`
	Steps []Step `json:"steps"`
}

// Len returns the number of recorded steps.
func (t Trace) Len() int { return len(t.Steps) }

// At returns the i-th step. The caller is responsible for bounds.
func (t Trace) At(i int) Step { return t.Steps[i] }

// recorder accumulates trace steps during a search. A nil recorder is valid
// and discards everything, so the traced and untraced search paths share
// one implementation.
type recorder struct {
	id    string
	steps []Step
}

func newRecorder() *recorder { return &recorder{id: uuid.NewString()} }

func (r *recorder) add(g grid.Grid, desc string, move *Move, action Action) {
	if r == nil {
		return
	}
	r.steps = append(r.steps, Step{Grid: g, Description: desc, Move: move, Action: action})
}

func (r *recorder) start(g grid.Grid, desc string) {
	r.add(g, desc, nil, ActionStart)
}

func (r *recorder) place(g grid.Grid, row, col, value int) {
	desc := fmt.Sprintf("Try placing %d at position (%d, %d)", value, row+1, col+1)
	r.add(g, desc, &Move{Row: row, Col: col, Value: value}, ActionPlace)
}

func (r *recorder) backtrack(g grid.Grid, row, col, value int) {
	desc := fmt.Sprintf("Backtrack: Remove %d from (%d, %d)", value, row+1, col+1)
	r.add(g, desc, &Move{Row: row, Col: col, Value: 0}, ActionBacktrack)
}

func (r *recorder) restart(g grid.Grid, desc string) {
	r.add(g, desc, nil, ActionRestart)
}

func (r *recorder) fallback(g grid.Grid, desc string) {
	r.add(g, desc, nil, ActionFallback)
}

func (r *recorder) complete(g grid.Grid, desc string) {
	r.add(g, desc, nil, ActionComplete)
}

// trace freezes the accumulated steps into a Trace value.
func (r *recorder) trace() Trace {
	if r == nil {
		return Trace{ID: uuid.NewString()}
	}
	return Trace{ID: r.id, Steps: r.steps}
}
