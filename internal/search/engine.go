package search

import (
	"context"
	"log/slog"

	"github.com/DjordjeVuckovic/crawl-report/internal/apperr"
	"github.com/DjordjeVuckovic/crawl-report/internal/domain"
	"github.com/DjordjeVuckovic/crawl-report/internal/domain/query"
	"github.com/DjordjeVuckovic/crawl-report/internal/storage"
	"github.com/DjordjeVuckovic/crawl-report/pkg/pagination"
)

type Result = pagination.OffsetResult[domain.DocumentRow]

type Engine struct {
	exec   storage.RawExecutor
	source ResultSource
}

type Option func(*Engine)

// WithSource replaces the default MaterializedSource.
func WithSource(source ResultSource) Option {
	return func(e *Engine) {
		e.source = source
	}
}

func NewEngine(exec storage.RawExecutor, dialect storage.Dialect, opts ...Option) *Engine {
	e := &Engine{
		exec:   exec,
		source: NewMaterializedSource(exec, dialect),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Search pages through documents of the given sites whose title or summary
// contains keyword. With neither sites nor keyword nothing matches and the
// store is not queried. Only invalid paging is reported as an error; store
// failures yield an empty page.
func (e *Engine) Search(ctx context.Context, siteKeys []string, keyword string, page, pageSize int) (*Result, error) {
	req := pagination.NewOffsetRequest(page, pageSize)
	if err := req.Validate(); err != nil {
		return nil, apperr.NewValidationWrap("invalid search paging", err)
	}

	filter := query.NewSearchFilter(siteKeys, keyword)
	if query.IsNothing(filter) {
		return pagination.EmptyOffsetResult[domain.DocumentRow](req), nil
	}

	slog.Debug("Searching documents", "sites", siteKeys, "keyword", keyword, "page", page, "page_size", pageSize)

	res, err := e.source.Page(ctx, filter, req)
	if err != nil {
		slog.Error("Search failed", "sites", siteKeys, "keyword", keyword, "error", err)
		return pagination.EmptyOffsetResult[domain.DocumentRow](req), nil
	}

	slog.Info("Search completed", "total", res.Total, "page", res.Page, "items", len(res.Items))
	return res, nil
}

const selectSites = `SELECT DISTINCT site_key, site_label
	FROM catalog_entries
	ORDER BY site_label, site_key`

// Sites lists catalog sites by label for the search form.
func (e *Engine) Sites(ctx context.Context) []domain.Site {
	table, err := e.exec.Exec(ctx, selectSites, nil, nil)
	if err != nil {
		slog.Error("Failed to list sites", "error", err)
		return []domain.Site{}
	}

	seen := make(map[string]struct{}, table.Len())
	sites := make([]domain.Site, 0, table.Len())
	for i := 0; i < table.Len(); i++ {
		code := table.String(i, "site_key")
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		sites = append(sites, domain.Site{Code: code, Name: table.String(i, "site_label")})
	}
	return sites
}
