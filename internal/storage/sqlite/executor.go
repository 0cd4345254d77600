package sqlite

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/crawl-report/internal/apperr"
	"github.com/DjordjeVuckovic/crawl-report/internal/storage"
)

type RawExecutor struct {
	db *sql.DB
}

func NewRawExecutor(db *DB) *RawExecutor {
	return &RawExecutor{db: db.db}
}

// Exec runs query on a dedicated connection that is returned to the pool
// before Exec returns.
func (e *RawExecutor) Exec(
	ctx context.Context,
	query string,
	params []interface{},
	opts *storage.ExecOptions) (*storage.Table, error) {
	queryCtx, cancel := e.newQueryCtx(ctx, opts)
	defer cancel()

	slog.Debug("Executing sqlite query", "sql", query, "params", params)

	conn, err := e.db.Conn(queryCtx)
	if err != nil {
		return nil, apperr.NewQueryExecution(query, err)
	}
	defer conn.Close()

	rows, err := conn.QueryContext(queryCtx, query, params...)
	if err != nil {
		return nil, apperr.NewQueryExecution(query, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, apperr.NewQueryExecution(query, err)
	}

	table := &storage.Table{
		Columns: columns,
		Rows:    [][]interface{}{},
	}

	for rows.Next() {
		values := make([]interface{}, len(columns))
		dest := make([]interface{}, len(columns))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, apperr.NewQueryExecution(query, err)
		}
		for i, v := range values {
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}
		table.Rows = append(table.Rows, values)
	}

	if err := rows.Err(); err != nil {
		return nil, apperr.NewQueryExecution(query, err)
	}

	slog.Debug("sqlite query finished", "rows", table.Len())
	return table, nil
}

func (e *RawExecutor) newQueryCtx(ctx context.Context, opts *storage.ExecOptions) (context.Context, context.CancelFunc) {
	if opts != nil && opts.TimeoutSeconds > 0 {
		return context.WithTimeout(ctx, time.Duration(opts.TimeoutSeconds)*time.Second)
	}
	return ctx, func() {}
}

var _ storage.RawExecutor = (*RawExecutor)(nil)
