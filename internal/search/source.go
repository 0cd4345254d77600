package search

import (
	"context"

	"github.com/DjordjeVuckovic/crawl-report/internal/domain"
	"github.com/DjordjeVuckovic/crawl-report/internal/domain/query"
	"github.com/DjordjeVuckovic/crawl-report/internal/storage"
	"github.com/DjordjeVuckovic/crawl-report/pkg/pagination"
)

// ResultSource produces one page of the documents matching a filter.
type ResultSource interface {
	Page(ctx context.Context, f query.Filter, req pagination.OffsetRequest) (*pagination.OffsetResult[domain.DocumentRow], error)
}

// MaterializedSource reads the whole filtered set and slices the page in
// memory, so total and page always come from the same read.
type MaterializedSource struct {
	exec    storage.RawExecutor
	dialect storage.Dialect
}

func NewMaterializedSource(exec storage.RawExecutor, dialect storage.Dialect) *MaterializedSource {
	return &MaterializedSource{exec: exec, dialect: dialect}
}

func (s *MaterializedSource) Page(ctx context.Context, f query.Filter, req pagination.OffsetRequest) (*pagination.OffsetResult[domain.DocumentRow], error) {
	sql, args, err := storage.SelectDocuments(s.dialect, f, storage.OrderBySitePageRegistered)
	if err != nil {
		return nil, err
	}
	table, err := s.exec.Exec(ctx, sql, args, nil)
	if err != nil {
		return nil, err
	}
	return pagination.SliceOffsetResult(storage.DocumentRows(table), req), nil
}

// StoreSource pushes paging into the store with a count query followed by
// LIMIT/OFFSET.
type StoreSource struct {
	exec    storage.RawExecutor
	dialect storage.Dialect
}

func NewStoreSource(exec storage.RawExecutor, dialect storage.Dialect) *StoreSource {
	return &StoreSource{exec: exec, dialect: dialect}
}

func (s *StoreSource) Page(ctx context.Context, f query.Filter, req pagination.OffsetRequest) (*pagination.OffsetResult[domain.DocumentRow], error) {
	countSQL, countArgs, err := storage.CountDocuments(s.dialect, f)
	if err != nil {
		return nil, err
	}
	counted, err := s.exec.Exec(ctx, countSQL, countArgs, nil)
	if err != nil {
		return nil, err
	}
	total := counted.Int(0, "total")

	if !req.InRange(total) {
		return pagination.NewOffsetResult[domain.DocumentRow](nil, total, req), nil
	}

	sql, args, err := storage.SelectDocumentPage(s.dialect, f, storage.OrderBySitePageRegistered, req.PageSize, req.Offset())
	if err != nil {
		return nil, err
	}
	table, err := s.exec.Exec(ctx, sql, args, nil)
	if err != nil {
		return nil, err
	}
	return pagination.NewOffsetResult(storage.DocumentRows(table), total, req), nil
}
