package factory

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/DjordjeVuckovic/crawl-report/internal/storage"
	"github.com/DjordjeVuckovic/crawl-report/internal/storage/pg"
	"github.com/DjordjeVuckovic/crawl-report/internal/storage/sqlite"
)

type StorageConfig struct {
	storage.Type
	Pg     *pg.PoolConfig
	SQLite *sqlite.Config
}

func LoadEnv() (*StorageConfig, error) {
	raw := os.Getenv("STORAGE_TYPE")
	if raw == "" {
		slog.Info("STORAGE_TYPE environment variable is not set, defaulting to sqlite")
		raw = string(storage.SQLite)
	}
	storageType, err := storage.ParseType(raw)
	if err != nil {
		slog.Error("Invalid STORAGE_TYPE environment variable value", "value", raw)
		return nil, err
	}

	var pgCfg *pg.PoolConfig
	if storageType == storage.PG {
		pgCfg = &pg.PoolConfig{
			ConnStr: os.Getenv("PG_CONNECTION_STRING"),
		}
		if pgCfg.ConnStr == "" {
			slog.Error("PostgreSQL connection string is not set")
			return nil, fmt.Errorf("PostgreSQL connection string is not set")
		}
		if v := os.Getenv("PG_MAX_CONNS"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 {
				return nil, fmt.Errorf("invalid PG_MAX_CONNS value: %s", v)
			}
			pgCfg.MaxConns = int32(n)
		}
	}

	var sqliteCfg *sqlite.Config
	if storageType == storage.SQLite {
		sqliteCfg = &sqlite.Config{
			Path: os.Getenv("SQLITE_PATH"),
		}
		if sqliteCfg.Path == "" {
			sqliteCfg.Path = "data/DB/crawl_summary.db"
			slog.Info("SQLITE_PATH is not set, using default path", "path", sqliteCfg.Path)
		}
	}

	return &StorageConfig{
		Type:   storageType,
		Pg:     pgCfg,
		SQLite: sqliteCfg,
	}, nil
}
