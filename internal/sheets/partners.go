package sheets

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// partnerColumn is the header of the directory column holding counterparty
// names, shared with the directory worksheet.
const partnerColumn = "نام مشتری"

// Directory reads and appends the shared counterparty name list kept in
// its own worksheet. Every failure degrades: reads yield an empty list,
// appends report false. The conversation never depends on the directory
// being reachable.
type Directory struct {
	values ValuesService
	sheet  string
	log    zerolog.Logger

	// mu serializes check-then-append so concurrent sessions in this
	// process cannot both add the same new name.
	mu sync.Mutex
}

// NewDirectory creates a directory adapter over the given worksheet.
func NewDirectory(values ValuesService, sheet string, log zerolog.Logger) *Directory {
	return &Directory{values: values, sheet: sheet, log: log}
}

// ListNames returns all non-empty names in stored order. It returns an
// empty list on any failure, including a missing name column, so callers
// fall back to free-text entry.
func (d *Directory) ListNames(ctx context.Context) []string {
	names, _, _ := d.readColumn(ctx)
	return names
}

// Add appends a new name to the first row past the last non-empty entry.
// It returns false without writing when the name already exists (exact,
// case-sensitive match) or when the directory is unreachable.
func (d *Directory) Add(ctx context.Context, name string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	names, colIdx, lastRow := d.readColumn(ctx)
	if colIdx < 0 {
		return false
	}
	for _, existing := range names {
		if existing == name {
			return false
		}
	}

	cell := fmt.Sprintf("%s!%s%d", d.sheet, columnLetter(colIdx), lastRow+1)
	if err := d.values.Update(ctx, cell, [][]interface{}{{name}}); err != nil {
		d.log.Warn().Err(err).Str("name", name).Msg("Failed to append partner name")
		return false
	}

	d.log.Info().Str("name", name).Str("cell", cell).Msg("Added partner name to directory")
	return true
}

// Hint reads a single cell from the directory worksheet, best effort.
// Used for the "last recorded receipt number" prompt prefix; any failure
// yields an empty string.
func (d *Directory) Hint(ctx context.Context, cell string) string {
	rows, err := d.values.Get(ctx, fmt.Sprintf("%s!%s", d.sheet, cell))
	if err != nil || len(rows) == 0 || len(rows[0]) == 0 {
		return ""
	}
	return cellString(rows[0][0])
}

// readColumn returns the non-empty names, the zero-based column index of
// the name column (-1 when unavailable), and the one-based row number of
// the last non-empty entry (the header row when the column is empty).
func (d *Directory) readColumn(ctx context.Context) ([]string, int, int) {
	rows, err := d.values.Get(ctx, d.sheet)
	if err != nil {
		d.log.Warn().Err(err).Str("sheet", d.sheet).Msg("Partner directory unavailable")
		return nil, -1, 0
	}
	if len(rows) == 0 {
		d.log.Warn().Str("sheet", d.sheet).Msg("Partner directory has no header row")
		return nil, -1, 0
	}

	colIdx := -1
	for i, cell := range rows[0] {
		if strings.TrimSpace(cellString(cell)) == partnerColumn {
			colIdx = i
			break
		}
	}
	if colIdx < 0 {
		d.log.Warn().Str("sheet", d.sheet).Str("column", partnerColumn).Msg("Partner name column not found")
		return nil, -1, 0
	}

	var names []string
	lastRow := 1
	for r := 1; r < len(rows); r++ {
		if colIdx >= len(rows[r]) {
			continue
		}
		name := strings.TrimSpace(cellString(rows[r][colIdx]))
		if name == "" {
			continue
		}
		names = append(names, name)
		lastRow = r + 1
	}
	return names, colIdx, lastRow
}
