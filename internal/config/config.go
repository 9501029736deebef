// Package config loads bootstrap configuration from the environment.
package config

import (
	"fmt"
	"os"
)

// Defaults for the worksheet names shared with the spreadsheet.
const (
	DefaultTransactionsSheet = "Transactions"
	DefaultDirectorySheet    = "GreenLand"
)

// Config carries everything the bot needs at startup.
type Config struct {
	// TelegramToken authenticates the chat transport. Optional: the
	// console transport runs without it.
	TelegramToken string

	// SpreadsheetID identifies the target spreadsheet.
	SpreadsheetID string

	// CredentialsFile is the path to a service-account JSON key file.
	// CredentialsJSON holds the key material inline; it wins when both
	// are set. When neither is set, Application Default Credentials
	// apply.
	CredentialsFile string
	CredentialsJSON string

	// TransactionsSheet and DirectorySheet name the two worksheets.
	TransactionsSheet string
	DirectorySheet    string
}

// Load reads configuration from the environment and validates required
// values.
func Load() (*Config, error) {
	cfg := &Config{
		TelegramToken:     os.Getenv("TELEGRAM_TOKEN"),
		SpreadsheetID:     os.Getenv("SPREADSHEET_ID"),
		CredentialsFile:   os.Getenv("GOOGLE_CREDENTIALS_FILE"),
		CredentialsJSON:   os.Getenv("GOOGLE_CREDENTIALS_JSON"),
		TransactionsSheet: envOr("TRANSACTIONS_SHEET", DefaultTransactionsSheet),
		DirectorySheet:    envOr("DIRECTORY_SHEET", DefaultDirectorySheet),
	}

	if cfg.SpreadsheetID == "" {
		return nil, fmt.Errorf("SPREADSHEET_ID is required")
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
