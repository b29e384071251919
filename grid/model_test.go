package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func puzzleWithGivens() Grid {
	var g Grid
	g[0][0] = 5
	g[4][4] = 9
	return g
}

func TestModelLoad(t *testing.T) {
	m := NewModel()
	require.NoError(t, m.Load(puzzleWithGivens()))

	assert.Equal(t, 1, m.Version())
	assert.True(t, m.IsGiven(0, 0))
	assert.True(t, m.IsGiven(4, 4))
	assert.False(t, m.IsGiven(1, 1))
	assert.Equal(t, puzzleWithGivens(), m.Snapshot())
	assert.Equal(t, puzzleWithGivens(), m.Original())
}

func TestModelLoadRejectsRange(t *testing.T) {
	m := NewModel()
	require.NoError(t, m.Load(puzzleWithGivens()))
	version := m.Version()

	bad := puzzleWithGivens()
	bad[8][8] = 11
	var rangeErr *RangeError
	require.ErrorAs(t, m.Load(bad), &rangeErr)

	// Rejected load mutates nothing.
	assert.Equal(t, version, m.Version())
	assert.Equal(t, puzzleWithGivens(), m.Snapshot())
}

func TestModelSetCell(t *testing.T) {
	m := NewModel()
	require.NoError(t, m.Load(puzzleWithGivens()))
	version := m.Version()

	assert.True(t, m.SetCell(1, 1, 3))
	assert.Equal(t, 3, m.Cell(1, 1))
	assert.Equal(t, version+1, m.Version())

	// Clearing a user cell is allowed.
	assert.True(t, m.SetCell(1, 1, 0))
	assert.Equal(t, 0, m.Cell(1, 1))
}

func TestModelSetCellRejections(t *testing.T) {
	m := NewModel()
	require.NoError(t, m.Load(puzzleWithGivens()))
	version := m.Version()

	// Given cell.
	assert.False(t, m.SetCell(0, 0, 3))
	// Out-of-range coordinates and values.
	assert.False(t, m.SetCell(-1, 0, 3))
	assert.False(t, m.SetCell(0, 9, 3))
	assert.False(t, m.SetCell(1, 1, 10))
	assert.False(t, m.SetCell(1, 1, -1))

	// Failed updates leave the version untouched.
	assert.Equal(t, version, m.Version())
	assert.Equal(t, 5, m.Cell(0, 0))
}

func TestModelClearKeepGiven(t *testing.T) {
	m := NewModel()
	require.NoError(t, m.Load(puzzleWithGivens()))
	m.SetCell(1, 1, 3)

	m.Clear(true)
	assert.Equal(t, 5, m.Cell(0, 0))
	assert.Equal(t, 9, m.Cell(4, 4))
	assert.Equal(t, 0, m.Cell(1, 1))
	assert.True(t, m.IsGiven(0, 0))

	// Idempotent: clearing twice equals clearing once.
	snapshot := m.Snapshot()
	version := m.Version()
	m.Clear(true)
	assert.Equal(t, snapshot, m.Snapshot())
	assert.Equal(t, version+1, m.Version())
}

func TestModelClearAll(t *testing.T) {
	m := NewModel()
	require.NoError(t, m.Load(puzzleWithGivens()))

	m.Clear(false)
	assert.True(t, m.Snapshot().Empty())
	assert.True(t, m.Original().Empty())
	assert.False(t, m.IsGiven(0, 0))

	// Previously given cells are editable again.
	assert.True(t, m.SetCell(0, 0, 7))
}

func TestModelApplyProtectsGivens(t *testing.T) {
	m := NewModel()
	require.NoError(t, m.Load(puzzleWithGivens()))

	var stepGrid Grid
	stepGrid[0][0] = 1 // diverges from the given 5
	stepGrid[2][2] = 4
	m.Apply(stepGrid)

	assert.Equal(t, 5, m.Cell(0, 0), "given cell must be re-imposed from the original")
	assert.Equal(t, 9, m.Cell(4, 4))
	assert.Equal(t, 4, m.Cell(2, 2))
}

func TestModelSnapshotNoAliasing(t *testing.T) {
	m := NewModel()
	require.NoError(t, m.Load(puzzleWithGivens()))

	snap := m.Snapshot()
	snap[0][0] = 9
	assert.Equal(t, 5, m.Cell(0, 0))
}

func TestModelVersionMonotonic(t *testing.T) {
	m := NewModel()
	require.NoError(t, m.Load(puzzleWithGivens()))
	v1 := m.Version()
	m.SetCell(1, 1, 2)
	v2 := m.Version()
	m.Clear(true)
	v3 := m.Version()
	m.Apply(Grid{})
	v4 := m.Version()

	assert.Less(t, v1, v2)
	assert.Less(t, v2, v3)
	assert.Less(t, v3, v4)
}
