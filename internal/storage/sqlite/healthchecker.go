package sqlite

import (
	"context"
	"log/slog"
)

// HealthChecker reports healthy when the file answers and the crawler's
// documents table is present.
type HealthChecker struct {
	db *DB
}

func NewHealthChecker(db *DB) *HealthChecker {
	return &HealthChecker{db: db}
}

func (hc *HealthChecker) Healthy(ctx context.Context) bool {
	if hc.db == nil {
		return false
	}

	ok, err := hc.db.TableExists(ctx, "documents")
	if err != nil {
		slog.Warn("SQLite health check failed", "error", err)
		return false
	}
	return ok
}
