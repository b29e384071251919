// Package rules implements the Sudoku constraint checks as pure functions
// over a grid snapshot: placement legality, whole-state validity,
// completeness, empty-cell and candidate enumeration, and conflict
// reporting. Nothing here carries state or mutates its argument; grids are
// passed by value.
package rules
