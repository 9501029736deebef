package sheets

import "context"

// ValuesService is the slice of the spreadsheet API the adapters need.
// Ranges use A1 notation, optionally prefixed with a worksheet name.
// This interface enables mocking and testing of sheet operations.
type ValuesService interface {
	// Get reads the values in the given range. Trailing empty rows and
	// cells are not returned.
	Get(ctx context.Context, readRange string) ([][]interface{}, error)

	// Update writes the values into the given range.
	Update(ctx context.Context, writeRange string, values [][]interface{}) error
}
