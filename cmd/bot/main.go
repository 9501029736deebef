package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/api/option"

	"github.com/itsmoein/ledgerbot/internal/config"
	"github.com/itsmoein/ledgerbot/internal/flow"
	"github.com/itsmoein/ledgerbot/internal/logger"
	"github.com/itsmoein/ledgerbot/internal/session"
	"github.com/itsmoein/ledgerbot/internal/sheets"
	"github.com/itsmoein/ledgerbot/internal/transport/console"
)

func main() {
	log := logger.New()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var opts []option.ClientOption
	switch {
	case cfg.CredentialsJSON != "":
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.CredentialsJSON)))
	case cfg.CredentialsFile != "":
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := sheets.NewClient(ctx, cfg.SpreadsheetID, opts...)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Google Sheets")
	}

	directory := sheets.NewDirectory(client, cfg.DirectorySheet, logger.For(log, "sheets"))
	ledger := sheets.NewLedger(client, cfg.TransactionsSheet, logger.For(log, "sheets"))

	router := flow.NewRouter(session.NewStore(), directory, ledger, logger.For(log, "flow"))

	log.Info().
		Str("spreadsheet_id", cfg.SpreadsheetID).
		Str("transactions_sheet", cfg.TransactionsSheet).
		Str("directory_sheet", cfg.DirectorySheet).
		Msg("Starting ledger bot")

	loop := console.New(router, os.Stdin, os.Stdout, logger.For(log, "console"))

	errCh := make(chan error, 1)
	go func() {
		errCh <- loop.Run(ctx)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		log.Info().Msg("Shutting down...")
		cancel()
	case err := <-errCh:
		if err != nil {
			log.Error().Err(err).Msg("Console loop failed")
		}
	}

	log.Info().Msg("Ledger bot exited")
}
