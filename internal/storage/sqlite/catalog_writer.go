package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/crawl-report/internal/domain"
	"github.com/DjordjeVuckovic/crawl-report/internal/storage"
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
	);`

type CatalogWriter struct {
	db *sql.DB
}

func NewCatalogWriter(db *DB) *CatalogWriter {
	return &CatalogWriter{db: db.db}
}

// ReplaceCatalog clears and refills catalog_entries in one transaction.
func (w *CatalogWriter) ReplaceCatalog(ctx context.Context, entries []domain.CatalogEntry) error {
	if _, err := w.db.ExecContext(ctx, createCatalogTable); err != nil {
		return fmt.Errorf("failed to create catalog table: %w", err)
	}

	tx, err := w.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin catalog transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, "DELETE FROM catalog_entries"); err != nil {
		return fmt.Errorf("failed to clear catalog: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO catalog_entries (site_key, page_key, site_label, page_label, site_url, detail_url, ordinal)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare catalog insert: %w", err)
	}
	defer stmt.Close()

	for i, e := range entries {
		if _, err := stmt.ExecContext(ctx, e.SiteKey, e.PageKey, e.SiteLabel, e.PageLabel, e.SiteURL, e.DetailURL, i); err != nil {
			return fmt.Errorf("failed to insert catalog entry %s/%s: %w", e.SiteKey, e.PageKey, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit catalog: %w", err)
	}

	slog.Info("sqlite catalog replaced", "rows", len(entries))
	return nil
}

var _ storage.CatalogWriter = (*CatalogWriter)(nil)
