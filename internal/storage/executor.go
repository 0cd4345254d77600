package storage

import (
	"context"
)

type ExecOptions struct {
	TimeoutSeconds int
}

// Table is a generic tabular query result: ordered columns, ordered rows.
type Table struct {
	Columns []string
	Rows    [][]interface{}
}

// RawExecutor defines the interface for executing db queries.
type RawExecutor interface {
	// Exec executes a query with the given parameters and options
	// Order of params must match the order of placeholders in the query.
	// Errors are returned as *apperr.QueryExecutionError.
	Exec(ctx context.Context, query string, params []interface{}, baseOpts *ExecOptions) (*Table, error)
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// Index returns the position of column or -1.
func (t *Table) Index(column string) int {
	for i, c := range t.Columns {
		if c == column {
			return i
		}
	}
	return -1
}

func (t *Table) Value(row int, column string) interface{} {
	i := t.Index(column)
	if i < 0 || row < 0 || row >= len(t.Rows) || i >= len(t.Rows[row]) {
		return nil
	}
	return t.Rows[row][i]
}

func (t *Table) String(row int, column string) string {
	return AsString(t.Value(row, column))
}

func (t *Table) Int(row int, column string) int64 {
	return AsInt64(t.Value(row, column))
}

// Records converts rows into column-keyed maps.
func (t *Table) Records() []map[string]interface{} {
	if t == nil {
		return nil
	}
	records := make([]map[string]interface{}, 0, len(t.Rows))
	for _, row := range t.Rows {
		rec := make(map[string]interface{}, len(t.Columns))
		for i, c := range t.Columns {
			if i < len(row) {
				rec[c] = row[i]
			}
		}
		records = append(records, rec)
	}
	return records
}
