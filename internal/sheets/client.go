// Package sheets binds the bot to its Google Sheets backend: the
// transactions worksheet rows are committed to, and the partner directory
// worksheet names are read from and appended to.
package sheets

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// callTimeout bounds every spreadsheet call. Expiry surfaces as the
// operation's normal failure mode.
const callTimeout = 15 * time.Second

// Client implements ValuesService over the Sheets v4 API for a single
// spreadsheet.
type Client struct {
	svc           *sheetsapi.Service
	spreadsheetID string
}

// NewClient creates a Sheets client for the given spreadsheet. Credentials
// are supplied through client options (service-account JSON or Application
// Default Credentials when none are given).
func NewClient(ctx context.Context, spreadsheetID string, opts ...option.ClientOption) (*Client, error) {
	svc, err := sheetsapi.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return &Client{svc: svc, spreadsheetID: spreadsheetID}, nil
}

// Get implements ValuesService.
func (c *Client) Get(ctx context.Context, readRange string) ([][]interface{}, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read range %q: %w", readRange, err)
	}
	return resp.Values, nil
}

// Update implements ValuesService.
func (c *Client) Update(ctx context.Context, writeRange string, values [][]interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	vr := &sheetsapi.ValueRange{Values: values}
	_, err := c.svc.Spreadsheets.Values.
		Update(c.spreadsheetID, writeRange, vr).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("update range %q: %w", writeRange, err)
	}
	return nil
}

// columnLetter converts a zero-based column index to its A1 letter.
func columnLetter(i int) string {
	letters := ""
	for i >= 0 {
		letters = string(rune('A'+i%26)) + letters
		i = i/26 - 1
	}
	return letters
}

// cellString renders a cell value as the string the user would see.
func cellString(v interface{}) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
