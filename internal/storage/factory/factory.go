package factory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/crawl-report/internal/storage"
	"github.com/DjordjeVuckovic/crawl-report/internal/storage/pg"
	"github.com/DjordjeVuckovic/crawl-report/internal/storage/sqlite"
	pkgserver "github.com/DjordjeVuckovic/crawl-report/pkg/server"
)

// Store bundles what the reporting components need from one backend.
type Store struct {
	Type     storage.Type
	Executor storage.RawExecutor
	Dialect  storage.Dialect
	Catalog  storage.CatalogWriter
	Health   pkgserver.HealthChecker

	close func()
}

func (s *Store) Close() {
	if s.close != nil {
		s.close()
	}
}

// NewStore opens the backend selected by cfg.Type
func NewStore(ctx context.Context, cfg StorageConfig) (*Store, error) {
	switch cfg.Type {
	case storage.PG:
		if cfg.Pg == nil {
			return nil, fmt.Errorf("missing PostgreSQL configuration")
		}
		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}
		slog.Info("Connected to PostgreSQL store")

		return &Store{
			Type:     storage.PG,
			Executor: pg.NewRawExecutor(pool),
			Dialect:  pg.Dialect{},
			Catalog:  pg.NewCatalogWriter(pool),
			Health:   pg.NewHealthChecker(pool),
			close:    pool.Close,
		}, nil

	case storage.SQLite:
		if cfg.SQLite == nil {
			return nil, fmt.Errorf("missing SQLite configuration")
		}
		db, err := sqlite.Open(ctx, *cfg.SQLite)
		if err != nil {
			return nil, fmt.Errorf("failed to open SQLite store: %w", err)
		}
		if err := db.EnsureSchema(ctx); err != nil {
			_ = db.Close()
			return nil, err
		}
		slog.Info("Opened SQLite store", "path", cfg.SQLite.Path)

		return &Store{
			Type:     storage.SQLite,
			Executor: sqlite.NewRawExecutor(db),
			Dialect:  sqlite.Dialect{},
			Catalog:  sqlite.NewCatalogWriter(db),
			Health:   sqlite.NewHealthChecker(db),
			close: func() {
				if err := db.Close(); err != nil {
					slog.Error("Failed to close SQLite store", "error", err)
				}
			},
		}, nil

	default:
		return nil, fmt.Errorf("unsupported storage type %q", cfg.Type)
	}
}
