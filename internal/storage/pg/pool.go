package pg

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	applicationName = "crawl-report"
	maxConnIdleTime = 5 * time.Minute
)

type PoolConfig struct {
	ConnStr  string
	MaxConns int32
}

// ConnectionPool is the read-side pool over the crawler's database.
type ConnectionPool struct {
	pool *pgxpool.Pool
}

func NewConnectionPool(ctx context.Context, cfg PoolConfig) (*ConnectionPool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.ConnStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	poolCfg.MaxConnIdleTime = maxConnIdleTime
	if _, ok := poolCfg.ConnConfig.RuntimeParams["application_name"]; !ok {
		poolCfg.ConnConfig.RuntimeParams["application_name"] = applicationName
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}

	return &ConnectionPool{pool: pool}, nil
}

func (p *ConnectionPool) Pool() *pgxpool.Pool {
	return p.pool
}

func (p *ConnectionPool) Close() {
	p.pool.Close()
}

// TableExists resolves name against the connection's search_path.
func (p *ConnectionPool) TableExists(ctx context.Context, name string) (bool, error) {
	var ok bool
	if err := p.pool.QueryRow(ctx, "SELECT to_regclass($1) IS NOT NULL", name).Scan(&ok); err != nil {
		return false, fmt.Errorf("lookup table %s: %w", name, err)
	}
	return ok, nil
}
