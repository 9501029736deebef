package sheets

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// fakeValues is an in-memory ValuesService backed by one grid per
// worksheet. It mimics the API's trimming of trailing empty rows and
// cells on reads.
type fakeValues struct {
	grids   map[string][][]interface{}
	getErr  error
	updErr  error
	updates []string
}

func newFakeValues() *fakeValues {
	return &fakeValues{grids: make(map[string][][]interface{})}
}

func (f *fakeValues) Get(ctx context.Context, readRange string) ([][]interface{}, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	sheet, ref := splitRange(readRange)
	grid := f.grids[sheet]
	if ref == "" {
		return trimGrid(grid), nil
	}
	col, row, err := parseRef(strings.Split(ref, ":")[0])
	if err != nil {
		return nil, err
	}
	if row >= len(grid) || col >= len(grid[row]) {
		return nil, nil
	}
	return [][]interface{}{{grid[row][col]}}, nil
}

func (f *fakeValues) Update(ctx context.Context, writeRange string, values [][]interface{}) error {
	if f.updErr != nil {
		return f.updErr
	}
	f.updates = append(f.updates, writeRange)
	sheet, ref := splitRange(writeRange)
	col, row, err := parseRef(strings.Split(ref, ":")[0])
	if err != nil {
		return err
	}
	grid := f.grids[sheet]
	for r, rowValues := range values {
		for len(grid) <= row+r {
			grid = append(grid, nil)
		}
		for c, v := range rowValues {
			for len(grid[row+r]) <= col+c {
				grid[row+r] = append(grid[row+r], "")
			}
			grid[row+r][col+c] = v
		}
	}
	f.grids[sheet] = grid
	return nil
}

func splitRange(rng string) (sheet, ref string) {
	parts := strings.SplitN(rng, "!", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

// parseRef converts an A1 cell reference to zero-based column and row.
func parseRef(ref string) (col, row int, err error) {
	i := 0
	for i < len(ref) && ref[i] >= 'A' && ref[i] <= 'Z' {
		col = col*26 + int(ref[i]-'A'+1)
		i++
	}
	if i == 0 || i == len(ref) {
		return 0, 0, fmt.Errorf("bad cell reference %q", ref)
	}
	n, err := strconv.Atoi(ref[i:])
	if err != nil {
		return 0, 0, fmt.Errorf("bad cell reference %q", ref)
	}
	return col - 1, n - 1, nil
}

func trimGrid(grid [][]interface{}) [][]interface{} {
	lastRow := -1
	for r, row := range grid {
		for _, cell := range row {
			if cellString(cell) != "" {
				lastRow = r
				break
			}
		}
	}
	out := make([][]interface{}, 0, lastRow+1)
	for r := 0; r <= lastRow; r++ {
		row := grid[r]
		lastCell := -1
		for c, cell := range row {
			if cellString(cell) != "" {
				lastCell = c
			}
		}
		out = append(out, row[:lastCell+1])
	}
	return out
}

var errBackend = errors.New("backend unreachable")
