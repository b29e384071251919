package puzzle

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/ThunderKey/sudoku-solver/grid"
)

// Decode sniffs the payload and dispatches to DecodeJSON or DecodeText.
func Decode(data []byte) (grid.Grid, error) {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return DecodeJSON(data)
	}
	return DecodeText(data)
}

// DecodeJSON parses the JSON interchange form: an object holding the grid
// under one of the keys "grid", "puzzle" or "board", or a bare 9×9 array of
// integers 0–9.
func DecodeJSON(data []byte) (grid.Grid, error) {
	var payload any
	if err := json.Unmarshal(data, &payload); err != nil {
		return grid.Grid{}, fmt.Errorf("invalid JSON: %w", err)
	}

	var raw any
	switch v := payload.(type) {
	case map[string]any:
		var ok bool
		for _, key := range []string{"grid", "puzzle", "board"} {
			if raw, ok = v[key]; ok {
				break
			}
		}
		if !ok {
			return grid.Grid{}, fmt.Errorf(`JSON must contain "grid", "puzzle", or "board" field`)
		}
	case []any:
		raw = v
	default:
		return grid.Grid{}, fmt.Errorf("invalid JSON format")
	}

	outer, ok := raw.([]any)
	if !ok {
		return grid.Grid{}, fmt.Errorf("grid field must be an array of rows")
	}
	rows := make([][]int, 0, len(outer))
	for i, rowAny := range outer {
		inner, ok := rowAny.([]any)
		if !ok {
			return grid.Grid{}, fmt.Errorf("row %d must be an array", i)
		}
		row := make([]int, 0, len(inner))
		for j, cell := range inner {
			num, ok := cell.(float64)
			if !ok || num != float64(int(num)) {
				return grid.Grid{}, fmt.Errorf("cell (%d, %d) must be an integer", i, j)
			}
			row = append(row, int(num))
		}
		rows = append(rows, row)
	}
	return grid.FromRows(rows)
}

// DecodeText parses the plain-text interchange form: exactly nine
// non-comment lines (lines starting with '#' are ignored), each holding
// nine digits separated by commas, whitespace, or nothing at all.
func DecodeText(data []byte) (grid.Grid, error) {
	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) != grid.Size {
		return grid.Grid{}, fmt.Errorf("text format must have exactly %d lines, got %d", grid.Size, len(lines))
	}

	rows := make([][]int, 0, grid.Size)
	for i, line := range lines {
		row, err := parseTextRow(line)
		if err != nil {
			return grid.Grid{}, fmt.Errorf("line %d: %w", i+1, err)
		}
		rows = append(rows, row)
	}
	return grid.FromRows(rows)
}

func parseTextRow(line string) ([]int, error) {
	var fields []string
	switch {
	case strings.Contains(line, ","):
		fields = strings.Split(line, ",")
	case strings.ContainsAny(line, " \t"):
		fields = strings.Fields(line)
	default:
		for _, r := range line {
			if r >= '0' && r <= '9' {
				fields = append(fields, string(r))
			}
		}
	}
	row := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", strings.TrimSpace(f))
		}
		row = append(row, n)
	}
	return row, nil
}
