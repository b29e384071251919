package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRows(t *testing.T) {
	rows := make([][]int, Size)
	for r := range rows {
		rows[r] = make([]int, Size)
	}
	rows[3][4] = 7

	g, err := FromRows(rows)
	require.NoError(t, err)
	assert.Equal(t, 7, g[3][4])

	// Round trip back to [][]int.
	assert.Equal(t, rows, g.Rows())
}

func TestFromRowsShapeErrors(t *testing.T) {
	_, err := FromRows(make([][]int, 4))
	var shapeErr *ShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, 4, shapeErr.Rows)

	rows := make([][]int, Size)
	for r := range rows {
		rows[r] = make([]int, Size)
	}
	rows[5] = make([]int, 3)
	_, err = FromRows(rows)
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, 5, shapeErr.Row)
	assert.Equal(t, 3, shapeErr.Cols)
}

func TestFromRowsRangeError(t *testing.T) {
	rows := make([][]int, Size)
	for r := range rows {
		rows[r] = make([]int, Size)
	}
	rows[2][8] = 12

	_, err := FromRows(rows)
	var rangeErr *RangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, 2, rangeErr.Row)
	assert.Equal(t, 8, rangeErr.Col)
	assert.Equal(t, 12, rangeErr.Value)
}

func TestRowsIsIndependentCopy(t *testing.T) {
	var g Grid
	g[0][0] = 5
	rows := g.Rows()
	rows[0][0] = 9
	assert.Equal(t, 5, g[0][0])
}

func TestEmptyAndCount(t *testing.T) {
	var g Grid
	assert.True(t, g.Empty())
	assert.Equal(t, Size*Size, g.CountEmpty())

	g[4][4] = 1
	assert.False(t, g.Empty())
	assert.Equal(t, Size*Size-1, g.CountEmpty())
}

func TestInBounds(t *testing.T) {
	assert.True(t, InBounds(0, 0))
	assert.True(t, InBounds(8, 8))
	assert.False(t, InBounds(-1, 0))
	assert.False(t, InBounds(0, 9))
	assert.False(t, InBounds(9, 0))
}
