package solver

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/ThunderKey/sudoku-solver/grid"
	"github.com/ThunderKey/sudoku-solver/rules"
)

// DefaultRandomFillAttempts bounds the random phase before the strategy
// gives up and falls back to backtracking.
const DefaultRandomFillAttempts = 1000

// randomFillTraceAttempts caps the random phase when tracing so the trace
// stays a manageable length.
const randomFillTraceAttempts = 100

// RandomFillSolver repeatedly picks a uniformly random empty cell and
// assigns a uniformly random legal candidate, restarting from the original
// grid whenever it dead-ends. After a bounded number of attempts it falls
// back to plain backtracking. It demonstrates the extension-solver
// mechanism rather than a serious strategy.
type RandomFillSolver struct {
	maxAttempts int
	rng         *rand.Rand
}

// RandomFillOptions configures the random-fill strategy.
type RandomFillOptions struct {
	// MaxAttempts bounds the random phase. Defaults to DefaultRandomFillAttempts.
	MaxAttempts int
	// Seed makes the random sequence reproducible. 0 seeds from the clock.
	Seed int64
}

// NewRandomFillSolver constructs the random-fill strategy.
func NewRandomFillSolver(optFns ...func(o *RandomFillOptions)) *RandomFillSolver {
	opts := RandomFillOptions{MaxAttempts: DefaultRandomFillAttempts}
	for _, fn := range optFns {
		fn(&opts)
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandomFillSolver{
		maxAttempts: opts.MaxAttempts,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

// Name implements Solver.
func (s *RandomFillSolver) Name() string { return "Random Fill Solver" }

// Description implements Solver.
func (s *RandomFillSolver) Description() string {
	return "Randomly fills cells with valid values (demonstration only)"
}

// Solve implements Solver.
func (s *RandomFillSolver) Solve(ctx context.Context, g grid.Grid) (grid.Grid, error) {
	if err := prepare(g); err != nil {
		return grid.Grid{}, err
	}
	if solution, ok := s.randomPhase(ctx, g, s.maxAttempts, nil); ok {
		return solution, nil
	}
	work := g
	if !search(ctx, &work, pickFirstEmpty, nil) {
		return grid.Grid{}, exhausted(ctx)
	}
	return work, nil
}

// SolveWithTrace implements Solver with native step tracking. The random
// phase runs with a reduced attempt budget; when it fails, the
// backtracking fallback's result is appended as a single fallback step.
func (s *RandomFillSolver) SolveWithTrace(ctx context.Context, g grid.Grid) (grid.Grid, Trace, error) {
	rec := newRecorder()
	if err := prepare(g); err != nil {
		return grid.Grid{}, rec.trace(), err
	}
	rec.start(g, "Starting random fill solver")

	attempts := s.maxAttempts
	if attempts > randomFillTraceAttempts {
		attempts = randomFillTraceAttempts
	}
	if solution, ok := s.randomPhase(ctx, g, attempts, rec); ok {
		rec.complete(solution, "Puzzle solved with random filling!")
		return solution, rec.trace(), nil
	}

	work := g
	if !search(ctx, &work, pickFirstEmpty, nil) {
		return grid.Grid{}, rec.trace(), exhausted(ctx)
	}
	rec.fallback(work, "Random approach failed, solved with backtracking")
	return work, rec.trace(), nil
}

// randomPhase runs up to maxAttempts single random decisions. Each attempt
// either fills one cell with a random legal candidate or, on a dead end,
// restarts from the original grid. ok=false means the budget ran out.
func (s *RandomFillSolver) randomPhase(ctx context.Context, g grid.Grid, maxAttempts int, rec *recorder) (grid.Grid, bool) {
	work := g
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if ctx.Err() != nil {
			return grid.Grid{}, false
		}
		empties := rules.EmptyCells(work)
		if len(empties) == 0 {
			if rules.Complete(work) {
				return work, true
			}
			work = g
			rec.restart(work, "Invalid state reached, restarting...")
			continue
		}
		cell := empties[s.rng.Intn(len(empties))]
		cands := rules.Candidates(work, cell.Row, cell.Col)
		if len(cands) == 0 {
			work = g
			rec.restart(work, "No valid moves, restarting...")
			continue
		}
		v := cands[s.rng.Intn(len(cands))]
		work[cell.Row][cell.Col] = v
		desc := fmt.Sprintf("Randomly placed %d at (%d, %d)", v, cell.Row+1, cell.Col+1)
		rec.add(work, desc, &Move{Row: cell.Row, Col: cell.Col, Value: v}, ActionPlace)
	}
	return grid.Grid{}, false
}
