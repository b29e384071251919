package grid

import "fmt"

// ShapeError reports input that is not a 9×9 matrix. Cols is -1 when the
// row count itself is wrong, otherwise it carries the offending row's length
// and Row its index.
type ShapeError struct {
	Rows int
	Cols int
	Row  int
}

func (e *ShapeError) Error() string {
	if e.Cols < 0 {
		return fmt.Sprintf("grid must have %d rows, got %d", Size, e.Rows)
	}
	return fmt.Sprintf("grid row %d must have %d values, got %d", e.Row, Size, e.Cols)
}

// RangeError reports a cell value outside 0–9.
type RangeError struct {
	Row   int
	Col   int
	Value int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("grid value %d at (%d, %d) outside 0-%d", e.Value, e.Row, e.Col, Size)
}
