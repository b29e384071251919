// Package solver implements the search-strategy subsystem: the Solver
// contract every strategy satisfies, the decision Trace a strategy can emit
// while working, and the six built-in strategies (plain and heuristic
// backtracking, constraint propagation, logical deduction, brute-force
// enumeration and random filling).
//
// All strategies share the same outer behavior:
//   - The input grid is never mutated; each solve works on an owned copy.
//   - Values outside 0–9 are rejected with *grid.RangeError before any
//     search starts; a grid whose filled cells already conflict is reported
//     as ErrNoSolution immediately.
//   - Search exhaustion is a normal outcome, returned as ErrNoSolution
//     together with whatever trace accumulated, never a panic.
//   - Context cancellation aborts the search and surfaces ctx.Err().
//
// Strategies without native step tracking satisfy SolveWithTrace through a
// default wrapper that runs Solve and emits a single "complete" step.
package solver
