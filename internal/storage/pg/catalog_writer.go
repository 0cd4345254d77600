package pg

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/crawl-report/internal/domain"
	"github.com/DjordjeVuckovic/crawl-report/internal/storage"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const createCatalogTable = `
	CREATE TABLE IF NOT EXISTS catalog_entries (
		site_key   TEXT NOT NULL,
		page_key   TEXT NOT NULL,
		site_label TEXT NOT NULL DEFAULT '',
		page_label TEXT NOT NULL DEFAULT '',
		site_url   TEXT NOT NULL DEFAULT '',
		detail_url TEXT NOT NULL DEFAULT '',
		ordinal    INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (site_key, page_key)
	)`

type CatalogWriter struct {
	db *pgxpool.Pool
}

func NewCatalogWriter(pool *ConnectionPool) *CatalogWriter {
	return &CatalogWriter{db: pool.Pool()}
}

// ReplaceCatalog clears catalog_entries and copies entries in, inside one
// transaction. Concurrent readers see either the old or the new catalog.
func (w *CatalogWriter) ReplaceCatalog(ctx context.Context, entries []domain.CatalogEntry) error {
	if _, err := w.db.Exec(ctx, createCatalogTable); err != nil {
		return fmt.Errorf("failed to create catalog table: %w", err)
	}

	tx, err := w.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin catalog transaction: %w", err)
	}
	defer func() {
		// no-op after commit
		_ = tx.Rollback(ctx)
	}()

	if _, err := tx.Exec(ctx, "DELETE FROM catalog_entries"); err != nil {
		return fmt.Errorf("failed to clear catalog: %w", err)
	}

	rows := make([][]interface{}, len(entries))
	for i, e := range entries {
		rows[i] = []interface{}{
			e.SiteKey,
			e.PageKey,
			e.SiteLabel,
			e.PageLabel,
			e.SiteURL,
			e.DetailURL,
			i,
		}
	}

	n, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{"catalog_entries"},
		[]string{"site_key", "page_key", "site_label", "page_label", "site_url", "detail_url", "ordinal"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("failed to bulk insert catalog entries: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit catalog: %w", err)
	}

	slog.Info("pg catalog replaced", "rows", n)
	return nil
}

var _ storage.CatalogWriter = (*CatalogWriter)(nil)
