package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

type Config struct {
	Path string
}

// DB wraps the SQLite file the crawler writes into.
type DB struct {
	db *sql.DB
}

// Open opens or creates the SQLite database at cfg.Path
func Open(ctx context.Context, cfg Config) (*DB, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("sqlite path is not set")
	}
	if dir := filepath.Dir(cfg.Path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", cfg.Path+"?_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// WAL lets readers keep a consistent snapshot while the crawler or a
	// catalog sync writes.
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode = WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable WAL: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &DB{db: db}, nil
}

func (d *DB) Close() error {
	return d.db.Close()
}

// TableExists looks name up in sqlite_master.
func (d *DB) TableExists(ctx context.Context, name string) (bool, error) {
	var n int
	err := d.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", name).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("lookup table %s: %w", name, err)
	}
	return n > 0, nil
}

// SQL exposes the underlying handle for fixtures and tools.
func (d *DB) SQL() *sql.DB {
	return d.db
}

// EnsureSchema creates the crawler tables when they are missing, so a fresh
// file can serve (empty) reports.
func (d *DB) EnsureSchema(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS documents (
		id                INTEGER PRIMARY KEY AUTOINCREMENT,
		site_key          TEXT NOT NULL,
		page_key          TEXT NOT NULL,
		sequence_id       TEXT NOT NULL DEFAULT '',
		title             TEXT NOT NULL DEFAULT '',
		registration_date TEXT,
		collected_at      TEXT NOT NULL,
		origin_url        TEXT NOT NULL DEFAULT '',
		summary           TEXT NOT NULL DEFAULT '',
		category          TEXT NOT NULL DEFAULT ''
	);

	CREATE INDEX IF NOT EXISTS idx_documents_site_page ON documents(site_key, page_key);
	CREATE INDEX IF NOT EXISTS idx_documents_collected_at ON documents(collected_at);

	CREATE TABLE IF NOT EXISTS attachments (
		id             INTEGER PRIMARY KEY AUTOINCREMENT,
		parent_id      INTEGER NOT NULL REFERENCES documents(id),
		save_folder    TEXT NOT NULL DEFAULT '',
		save_file_name TEXT NOT NULL DEFAULT '',
		collected_at   TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_attachments_parent ON attachments(parent_id);
	` + createCatalogTable

	if _, err := d.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}
