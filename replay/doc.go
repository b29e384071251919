// Package replay navigates the decision trace a solver produced: a cursor
// over the ordered steps with forward/backward movement, random jumps, and
// a view accessor that re-imposes the puzzle's given cells so a replayed
// step can never show a given cell diverging from the loaded puzzle.
package replay
