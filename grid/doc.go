// Package grid holds the core 9×9 Sudoku data model: the Grid value matrix,
// the given-cell Mask and the mutable Model that owns both together with a
// monotonically increasing version counter. The Model is the single owner of
// puzzle state; everything handed out (snapshots, the original grid, the
// mask) is an independent copy, never an alias of internal storage.
//
// Structural validation happens at the boundary: FromRows converts untyped
// [][]int input into a Grid and is the only place a ShapeError can arise,
// while value-range violations surface as RangeError from FromRows or
// Model.Load. After construction a Grid's shape is guaranteed by its type.
package grid
