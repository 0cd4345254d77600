package pg

import (
	"context"
	"log/slog"
)

// HealthChecker reports healthy when the pool answers and the crawler's
// documents table is present.
type HealthChecker struct {
	pool *ConnectionPool
}

func NewHealthChecker(pool *ConnectionPool) *HealthChecker {
	return &HealthChecker{pool: pool}
}

func (hc *HealthChecker) Healthy(ctx context.Context) bool {
	if hc.pool == nil {
		return false
	}

	ok, err := hc.pool.TableExists(ctx, "documents")
	if err != nil {
		slog.Warn("PostgreSQL health check failed", "error", err)
		return false
	}
	if !ok {
		slog.Warn("PostgreSQL health check failed: documents table is missing")
	}
	return ok
}
