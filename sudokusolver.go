// Package sudokusolver provides a high-level façade over the grid model,
// the solver registry and the step navigator, enabling collaborators (UI or
// HTTP layers) to drive a complete solve session through one explicitly
// owned aggregate. Most applications interact with this package by:
//  1. Creating a Workbench via New() (optionally pointing it at an
//     extension-solver directory and a structured logger)
//  2. Loading a puzzle and editing cells
//  3. Solving with a registered strategy, then replaying the decision
//     trace step by step
//
// The Workbench holds no hidden process-wide state; everything lives in
// the aggregate, so independent Workbenches never interfere. It is not
// safe for concurrent use; callers wanting parallelism must serialize
// access, and exactly one solve is assumed active at a time.
package sudokusolver

import (
	"context"
	"fmt"
	"time"

	"github.com/ThunderKey/sudoku-solver/grid"
	"github.com/ThunderKey/sudoku-solver/logging"
	"github.com/ThunderKey/sudoku-solver/registry"
	"github.com/ThunderKey/sudoku-solver/replay"
	"github.com/ThunderKey/sudoku-solver/rules"
	"github.com/ThunderKey/sudoku-solver/solver"
)

// Direction selects where Navigate moves the step cursor.
type Direction string

const (
	// Prev rewinds playback by one step.
	Prev Direction = "prev"
	// Next advances playback by one step.
	Next Direction = "next"
)

// State is the full externally visible grid state. Version is the sole
// change signal: it bumps on every mutation, so collaborators poll it
// instead of receiving notifications.
type State struct {
	Grid         grid.Grid        `json:"grid"`
	OriginalGrid grid.Grid        `json:"original_grid"`
	GivenMask    grid.Mask        `json:"given_cells"`
	IsEmpty      bool             `json:"is_empty"`
	IsValid      bool             `json:"is_valid"`
	IsComplete   bool             `json:"is_complete"`
	EmptyCount   int              `json:"empty_count"`
	FilledCount  int              `json:"filled_count"`
	Conflicts    []rules.Conflict `json:"conflicts"`
	Version      int              `json:"version"`
}

// SolveResult reports a completed solve: the solution grid, the decision
// trace (single complete step for untraced strategies), and the playback
// summary when the trace was handed to the navigator.
type SolveResult struct {
	Solution grid.Grid
	Trace    solver.Trace
	StepInfo *replay.Info
}

// Metrics captures performance characteristics of the last solve.
type Metrics struct {
	SolveTime time.Duration `json:"solve_time"`
	StepCount int           `json:"step_count"`
}

// Options configures a Workbench.
type Options struct {
	// ExtensionDir is the directory scanned for YAML solver descriptors.
	// Empty disables the extension source.
	ExtensionDir string

	// Sources, when set, replaces the default source list entirely
	// (built-in first, then the extension dir if configured).
	Sources []registry.Source

	// Logger receives registry and solve diagnostics. Defaults to NoOp.
	Logger logging.Logger
}

// Workbench aggregates one puzzle's complete session state: the grid
// model, the solver registry and the step navigator.
type Workbench struct {
	model    *grid.Model
	registry *registry.Registry
	nav      *replay.Navigator
	logger   logging.Logger

	lastSolveTime time.Duration
	stepCount     int
	hasMetrics    bool
}

// New creates a Workbench with optional overrides and runs the initial
// solver discovery.
func New(optFns ...func(o *Options)) *Workbench {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	sources := opts.Sources
	if sources == nil {
		sources = []registry.Source{registry.NewBuiltinSource()}
		if opts.ExtensionDir != "" {
			sources = append(sources, registry.NewExtensionSource(opts.ExtensionDir))
		}
	}
	reg := registry.New(func(o *registry.Options) {
		o.Sources = sources
		o.Logger = opts.Logger
	})
	return &Workbench{
		model:    grid.NewModel(),
		registry: reg,
		nav:      replay.NewNavigator(),
		logger:   opts.Logger,
	}
}

// LoadPuzzle installs a new puzzle from row-major [][]int data, marking
// every nonzero cell as given. Shape and range violations reject the load
// with the grid package's typed errors and leave all state unchanged.
func (w *Workbench) LoadPuzzle(rows [][]int) error {
	g, err := grid.FromRows(rows)
	if err != nil {
		return err
	}
	return w.LoadGrid(g)
}

// LoadGrid is LoadPuzzle for callers that already hold a typed grid.
func (w *Workbench) LoadGrid(g grid.Grid) error {
	if err := w.model.Load(g); err != nil {
		return err
	}
	w.clearSolutionState()
	return nil
}

// UpdateCell writes value into a cell. It returns false, changing nothing
// (version included), for out-of-range coordinates or values and for given
// cells.
func (w *Workbench) UpdateCell(row, col, value int) bool {
	return w.model.SetCell(row, col, value)
}

// Clear zeroes the working grid, keeping the given cells when keepGiven is
// set, and discards any solution trace.
func (w *Workbench) Clear(keepGiven bool) {
	w.model.Clear(keepGiven)
	w.clearSolutionState()
}

// State returns the full externally visible grid state. An entirely empty
// board reports valid, incomplete and conflict-free without running the
// checks.
func (w *Workbench) State() State {
	g := w.model.Snapshot()
	isEmpty := g.Empty()
	st := State{
		Grid:         g,
		OriginalGrid: w.model.Original(),
		GivenMask:    w.model.Given(),
		IsEmpty:      isEmpty,
		IsValid:      true,
		EmptyCount:   g.CountEmpty(),
		FilledCount:  grid.Size*grid.Size - g.CountEmpty(),
		Version:      w.model.Version(),
	}
	if !isEmpty {
		st.IsValid = rules.ValidState(g)
		st.IsComplete = rules.Complete(g)
		st.Conflicts = rules.Conflicts(g)
	}
	return st
}

// ListSolvers returns the registered strategies in registration order.
func (w *Workbench) ListSolvers() []registry.Info {
	return w.registry.List()
}

// Solve runs the named strategy against the current grid. With showSteps
// the decision trace is handed to the navigator for stepwise playback,
// even when the search exhausted, so the caller can replay how it failed;
// the grid itself stays untouched until the caller navigates. Without
// showSteps a found solution is applied to the model directly.
//
// Errors: registry.ErrNotFound for unknown names, solver.ErrNoSolution on
// exhaustion, *grid.RangeError for malformed values.
func (w *Workbench) Solve(ctx context.Context, solverName string, showSteps bool) (SolveResult, error) {
	def, err := w.registry.Get(solverName)
	if err != nil {
		return SolveResult{}, err
	}
	s := def.New()
	work := w.model.Snapshot()
	start := time.Now()

	if showSteps {
		solution, trace, err := s.SolveWithTrace(ctx, work)
		elapsed := time.Since(start)
		w.nav.SetTrace(trace)
		w.setMetrics(elapsed, trace.Len())
		if err != nil {
			w.logger.Warn("solve failed", "solver", solverName, "trace_id", trace.ID, "error", err)
			return SolveResult{Trace: trace}, err
		}
		info, _ := w.nav.Info()
		w.logger.Info("solve completed", "solver", solverName,
			"trace_id", trace.ID, "steps", trace.Len(), "duration", elapsed)
		return SolveResult{Solution: solution, Trace: trace, StepInfo: &info}, nil
	}

	solution, err := s.Solve(ctx, work)
	elapsed := time.Since(start)
	if err != nil {
		w.logger.Warn("solve failed", "solver", solverName, "error", err)
		return SolveResult{}, err
	}
	w.nav.Reset()
	w.setMetrics(elapsed, 0)
	w.model.Apply(solution)
	w.logger.Info("solve completed", "solver", solverName, "duration", elapsed)
	return SolveResult{Solution: solution}, nil
}

// Navigate moves the step cursor one step in the given direction and
// applies the resulting view to the grid model (given cells re-imposed
// from the original puzzle). ok is false at the trace boundaries or when
// no trace is loaded.
func (w *Workbench) Navigate(direction Direction) (replay.Info, bool) {
	var moved bool
	switch direction {
	case Prev:
		moved = w.nav.Prev()
	case Next:
		moved = w.nav.Next()
	default:
		return replay.Info{}, false
	}
	if !moved {
		return replay.Info{}, false
	}
	w.applyCurrentStep()
	info, _ := w.nav.Info()
	return info, true
}

// JumpToStep moves the cursor to an absolute step index and applies the
// resulting view to the grid model. ok is false outside the trace bounds.
func (w *Workbench) JumpToStep(index int) (replay.Info, bool) {
	if !w.nav.Jump(index) {
		return replay.Info{}, false
	}
	w.applyCurrentStep()
	info, _ := w.nav.Info()
	return info, true
}

// StepInfo returns the playback summary for the current trace, if any.
func (w *Workbench) StepInfo() (replay.Info, bool) {
	return w.nav.Info()
}

// Metrics returns the performance metrics of the last solve, if one ran
// since the last load or clear.
func (w *Workbench) Metrics() (Metrics, bool) {
	if !w.hasMetrics {
		return Metrics{}, false
	}
	return Metrics{SolveTime: w.lastSolveTime, StepCount: w.stepCount}, true
}

// ReloadSolvers clears all registrations and re-runs discovery over every
// configured source.
func (w *Workbench) ReloadSolvers() {
	w.registry.Reload()
}

// InstallSolver persists a YAML solver descriptor into the extension
// directory and registers it immediately. Failure reports an error without
// affecting already-registered solvers.
func (w *Workbench) InstallSolver(sourceText, name string) error {
	if err := w.registry.Install(sourceText, name); err != nil {
		return fmt.Errorf("install solver %q: %w", name, err)
	}
	return nil
}

// DiscoveryFailures returns the definitions skipped by the last discovery
// pass.
func (w *Workbench) DiscoveryFailures() []error {
	return w.registry.Failures()
}

func (w *Workbench) applyCurrentStep() {
	view, ok := w.nav.CurrentView(w.model.Given(), w.model.Original())
	if ok {
		w.model.Apply(view)
	}
}

func (w *Workbench) clearSolutionState() {
	w.nav.Reset()
	w.lastSolveTime = 0
	w.stepCount = 0
	w.hasMetrics = false
}

func (w *Workbench) setMetrics(elapsed time.Duration, steps int) {
	w.lastSolveTime = elapsed
	w.stepCount = steps
	w.hasMetrics = true
}
