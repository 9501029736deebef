package sheets

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/itsmoein/ledgerbot/internal/domain"
	"github.com/itsmoein/ledgerbot/internal/schema"
)

const recordedAtFormat = "2006-01-02 15:04:05"

// PersistError reports a failed commit, carrying the underlying cause.
// The caller surfaces it to the user; no retry is performed here.
type PersistError struct {
	Err error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("persist transaction: %v", e.Err)
}

func (e *PersistError) Unwrap() error {
	return e.Err
}

// Ledger commits finalized drafts as rows of the transactions worksheet.
type Ledger struct {
	values ValuesService
	sheet  string
	log    zerolog.Logger
}

// NewLedger creates a ledger adapter over the given worksheet.
func NewLedger(values ValuesService, sheet string, log zerolog.Logger) *Ledger {
	return &Ledger{values: values, sheet: sheet, log: log}
}

// Commit maps the draft onto the 16-column schema and writes it at the
// first row past all existing rows, stamping recordedAt into the last
// column. The header row is rewritten first if it does not match the
// schema exactly.
func (l *Ledger) Commit(ctx context.Context, d *domain.Draft, recordedAt time.Time) error {
	commitID := uuid.NewString()
	log := l.log.With().Str("commit_id", commitID).Str("variant", string(d.Variant)).Logger()

	rows, err := l.values.Get(ctx, l.sheet)
	if err != nil {
		log.Error().Err(err).Msg("Failed to read transactions sheet")
		return &PersistError{Err: err}
	}

	if !headerMatches(rows) {
		headerRange := fmt.Sprintf("%s!A1:%s1", l.sheet, columnLetter(len(schema.Headers)-1))
		header := make([]interface{}, len(schema.Headers))
		for i, h := range schema.Headers {
			header[i] = h
		}
		if err := l.values.Update(ctx, headerRange, [][]interface{}{header}); err != nil {
			log.Error().Err(err).Msg("Failed to rewrite header row")
			return &PersistError{Err: err}
		}
		log.Info().Msg("Rewrote transactions header row")
	}

	existing := len(rows)
	if existing == 0 {
		// The header written above occupies row 1.
		existing = 1
	}
	next := existing + 1

	row := buildRow(d, recordedAt)
	writeRange := fmt.Sprintf("%s!A%d:%s%d", l.sheet, next, columnLetter(len(row)-1), next)
	if err := l.values.Update(ctx, writeRange, [][]interface{}{row}); err != nil {
		log.Error().Err(err).Int("row", next).Msg("Failed to write transaction row")
		return &PersistError{Err: err}
	}

	log.Info().Int("row", next).Msg("Transaction committed")
	return nil
}

func headerMatches(rows [][]interface{}) bool {
	if len(rows) == 0 || len(rows[0]) < len(schema.Headers) {
		return false
	}
	for i, want := range schema.Headers {
		if cellString(rows[0][i]) != want {
			return false
		}
	}
	return true
}

// buildRow produces the 16 positional values for one draft.
func buildRow(d *domain.Draft, recordedAt time.Time) []interface{} {
	row := make([]interface{}, 0, len(schema.Headers))
	row = append(row, d.Variant.Label(), d.Date.String())
	for _, key := range schema.RowFields {
		value := d.Value(key)
		if schema.Numeric(key) {
			row = append(row, coerceNumeric(value))
		} else {
			row = append(row, value)
		}
	}
	row = append(row, recordedAt.Format(recordedAtFormat))
	return row
}

// coerceNumeric attempts integer then float conversion after stripping
// thousands separators, keeping the original string when neither parses.
// Conversion is best effort and never fails the commit.
func coerceNumeric(s string) interface{} {
	if strings.TrimSpace(s) == "" {
		return s
	}
	stripped := strings.ReplaceAll(s, ",", "")
	if n, err := strconv.ParseInt(stripped, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(stripped, 64); err == nil {
		return f
	}
	return s
}
