// Package puzzle implements the interchange formats consumed and produced
// by file-handling collaborators: a JSON form (an object carrying the grid
// under "grid", "puzzle" or "board", or a bare 9×9 array) and a plain-text
// form (nine non-comment lines of nine digits separated by commas,
// whitespace or nothing). Decoding funnels through grid.FromRows, so shape
// and range violations surface as the grid package's typed errors.
package puzzle
