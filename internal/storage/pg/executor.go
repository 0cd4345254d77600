package pg

import (
	"context"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/crawl-report/internal/apperr"
	"github.com/DjordjeVuckovic/crawl-report/internal/storage"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const slowQueryThreshold = time.Second

type RawExecutor struct {
	pool *pgxpool.Pool
}

func NewRawExecutor(pool *ConnectionPool) *RawExecutor {
	return &RawExecutor{pool: pool.Pool()}
}

// Exec runs query on a connection acquired for this call only. The
// connection goes back to the pool on every return path.
func (e *RawExecutor) Exec(
	ctx context.Context,
	query string,
	params []interface{},
	opts *storage.ExecOptions) (*storage.Table, error) {
	if opts != nil && opts.TimeoutSeconds > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(opts.TimeoutSeconds)*time.Second)
		defer cancel()
	}

	start := time.Now()
	conn, err := e.pool.Acquire(ctx)
	if err != nil {
		return nil, apperr.NewQueryExecution(query, err)
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, query, params...)
	if err != nil {
		return nil, apperr.NewQueryExecution(query, err)
	}

	table, err := collectTable(rows)
	if err != nil {
		return nil, apperr.NewQueryExecution(query, err)
	}

	elapsed := time.Since(start)
	if elapsed > slowQueryThreshold {
		slog.WarnContext(ctx, "Slow pg query", "sql", query, "elapsed", elapsed, "rows", table.Len())
	} else {
		slog.DebugContext(ctx, "pg query finished", "sql", query, "elapsed", elapsed, "rows", table.Len())
	}
	return table, nil
}

// collectTable drains rows in result order and closes them.
func collectTable(rows pgx.Rows) (*storage.Table, error) {
	defer rows.Close()

	fields := rows.FieldDescriptions()
	table := &storage.Table{
		Columns: make([]string, len(fields)),
		Rows:    [][]interface{}{},
	}
	for i, fd := range fields {
		table.Columns[i] = fd.Name
	}

	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, err
		}
		table.Rows = append(table.Rows, values)
	}
	return table, rows.Err()
}

var _ storage.RawExecutor = (*RawExecutor)(nil)
