package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/DjordjeVuckovic/crawl-report/internal/app"
	"github.com/DjordjeVuckovic/crawl-report/internal/settings"
	"github.com/DjordjeVuckovic/crawl-report/internal/storage/factory"
	"github.com/DjordjeVuckovic/crawl-report/pkg/config/env"
	"github.com/spf13/cobra"
)

var jsonOutput bool

var rootCmd = &cobra.Command{
	Use:   "reportctl",
	Short: "Inspect the crawl report store from the command line",
	Long: `reportctl runs the reporting queries of the crawl report service
directly against the configured store, without the HTTP server.

It reads the same environment as the API (STORAGE_TYPE, SQLITE_PATH,
PG_CONNECTION_STRING, CATALOG_SOURCE, TIME_ZONE, ...).`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print JSON instead of a table")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// openApp loads configuration and opens the store. Callers must Close it.
func openApp(ctx context.Context) (*app.App, error) {
	if err := env.LoadDotEnv(os.Getenv("ENV"), ".env", "cmd/reportctl/.env"); err != nil {
		slog.Debug("Continuing without .env", "error", err)
	}

	s, err := settings.LoadEnv()
	if err != nil {
		return nil, err
	}
	slog.SetLogLoggerLevel(s.LogLevel)

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		return nil, err
	}

	store, err := factory.NewStore(ctx, *storageCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	return app.New(store, s, nil), nil
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
