package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/studio-site/internal/adapters/http/dto"
	"github.com/jsamuelsen/studio-site/internal/adapters/store/database"
)

// errNoPersistentStore is returned when quotes are requested without a
// database; in-memory quotes die with the process that took them.
var errNoPersistentStore = errors.New("no database url configured, quote requests are only kept by the persistent store")

func newQuotesCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "quotes",
		Short: "Print stored quote requests as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return listQuotes(cmd.Context(), *opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}

// listQuotes writes every stored quote request to out, oldest first.
// Logs go to logOut so out stays valid JSON.
func listQuotes(ctx context.Context, opts options, out, logOut io.Writer) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	if !cfg.UsePersistentStore() {
		return errNoPersistentStore
	}

	logger := newLogger(cfg, logOut)

	store, err := database.Open(ctx, databaseConfig(cfg), logger)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}

	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			logger.Error("closing store", slog.Any("error", closeErr))
		}
	}()

	quotes, err := store.ListQuoteRequests(ctx)
	if err != nil {
		return err
	}

	resp := make([]dto.QuoteRequestResponse, 0, len(quotes))
	for i := range quotes {
		resp = append(resp, dto.FromQuoteRequest(&quotes[i]))
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")

	return enc.Encode(resp)
}
