package puzzle

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/ThunderKey/sudoku-solver/grid"
)

// jsonPuzzle is the on-disk JSON envelope.
type jsonPuzzle struct {
	Grid    [][]int `json:"grid"`
	Format  string  `json:"format"`
	Version string  `json:"version"`
}

// EncodeJSON renders the grid in the JSON interchange envelope.
func EncodeJSON(g grid.Grid) ([]byte, error) {
	return json.MarshalIndent(jsonPuzzle{
		Grid:    g.Rows(),
		Format:  "sudoku",
		Version: "1.0",
	}, "", "  ")
}

// EncodeText renders the grid in the plain-text interchange form with a
// commented header and space-separated rows.
func EncodeText(g grid.Grid) []byte {
	var b strings.Builder
	b.WriteString("# Sudoku Puzzle\n")
	b.WriteString("# 0 represents empty cells\n")
	b.WriteString("\n")
	for r := 0; r < grid.Size; r++ {
		for c := 0; c < grid.Size; c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%d", g[r][c])
		}
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// solutionExport pairs a puzzle with its solution and solve metadata.
type solutionExport struct {
	OriginalPuzzle [][]int        `json:"original_puzzle"`
	Solution       [][]int        `json:"solution"`
	Metadata       exportMetadata `json:"metadata"`
}

type exportMetadata struct {
	Solver           string  `json:"solver"`
	SolveTimeSeconds float64 `json:"solve_time_seconds"`
	Format           string  `json:"format"`
	Version          string  `json:"version"`
}

// ExportSolution renders puzzle and solution together with the solver name
// and solve duration.
func ExportSolution(original, solution grid.Grid, solverName string, solveTime time.Duration) ([]byte, error) {
	return json.MarshalIndent(solutionExport{
		OriginalPuzzle: original.Rows(),
		Solution:       solution.Rows(),
		Metadata: exportMetadata{
			Solver:           solverName,
			SolveTimeSeconds: solveTime.Seconds(),
			Format:           "sudoku_solution",
			Version:          "1.0",
		},
	}, "", "  ")
}
