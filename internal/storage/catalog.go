package storage

import (
	"context"

	"github.com/DjordjeVuckovic/crawl-report/internal/domain"
)

// CatalogWriter replaces the catalog_entries table. Implementations must
// make the clear and the insert one atomic unit.
type CatalogWriter interface {
	ReplaceCatalog(ctx context.Context, entries []domain.CatalogEntry) error
}

// SelectCatalog lists catalog rows in their declared order.
const SelectCatalog = `SELECT site_key, page_key, site_label, page_label, site_url, detail_url
	FROM catalog_entries
	ORDER BY ordinal, site_key, page_key`

func CatalogEntries(t *Table) []domain.CatalogEntry {
	entries := make([]domain.CatalogEntry, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		entries = append(entries, domain.CatalogEntry{
			SiteKey:   t.String(i, "site_key"),
			PageKey:   t.String(i, "page_key"),
			SiteLabel: t.String(i, "site_label"),
			PageLabel: t.String(i, "page_label"),
			SiteURL:   t.String(i, "site_url"),
			DetailURL: t.String(i, "detail_url"),
		})
	}
	return entries
}
