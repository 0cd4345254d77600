package statistics

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/DjordjeVuckovic/crawl-report/internal/domain"
	"github.com/DjordjeVuckovic/crawl-report/internal/storage"
)

const (
	selectSiteCounts = `SELECT c.site_label, COUNT(*) AS total
	` + storage.DocumentJoin + `
	GROUP BY c.site_label
	ORDER BY c.site_label`

	attachmentJoin = `FROM documents d
	INNER JOIN attachments a ON d.id = a.parent_id
	INNER JOIN catalog_entries c
		ON d.site_key = c.site_key AND d.page_key = c.page_key`

	selectSiteFileCounts = `SELECT c.site_label, COUNT(*) AS total
	` + attachmentJoin + `
	GROUP BY c.site_label
	ORDER BY c.site_label`

	selectPagePostCounts = `SELECT c.site_label, c.page_label, COUNT(*) AS total
	` + storage.DocumentJoin + `
	GROUP BY c.site_label, c.page_label`

	selectPageFileCounts = `SELECT c.site_label, c.page_label, COUNT(*) AS total
	` + attachmentJoin + `
	GROUP BY c.site_label, c.page_label`

	selectOverview = `SELECT
		(SELECT COUNT(DISTINCT site_key) FROM catalog_entries) AS total_sites,
		(SELECT COUNT(*) FROM catalog_entries) AS total_pages,
		(SELECT COUNT(*) FROM documents) AS total_posts,
		(SELECT COUNT(*) FROM attachments) AS total_attachments`
)

// Roller produces grouped counts over labelled documents. Every failure is
// logged and reported as an empty result.
type Roller struct {
	exec    storage.RawExecutor
	dialect storage.Dialect
}

func NewRoller(exec storage.RawExecutor, dialect storage.Dialect) *Roller {
	return &Roller{exec: exec, dialect: dialect}
}

// SiteCounts counts documents per site label.
func (r *Roller) SiteCounts(ctx context.Context) []domain.SiteCount {
	table, err := r.exec.Exec(ctx, selectSiteCounts, nil, nil)
	if err != nil {
		slog.Error("Failed to count documents per site", "error", err)
		return []domain.SiteCount{}
	}

	counts := make([]domain.SiteCount, 0, table.Len())
	for i := 0; i < table.Len(); i++ {
		counts = append(counts, domain.SiteCount{
			Site:  table.String(i, "site_label"),
			Count: table.Int(i, "total"),
		})
	}
	return counts
}

// SiteFileCounts counts attachments per site label.
func (r *Roller) SiteFileCounts(ctx context.Context) []domain.SiteFileCount {
	table, err := r.exec.Exec(ctx, selectSiteFileCounts, nil, nil)
	if err != nil {
		slog.Error("Failed to count attachments per site", "error", err)
		return []domain.SiteFileCount{}
	}

	counts := make([]domain.SiteFileCount, 0, table.Len())
	for i := 0; i < table.Len(); i++ {
		counts = append(counts, domain.SiteFileCount{
			Site:      table.String(i, "site_label"),
			FileCount: table.Int(i, "total"),
		})
	}
	return counts
}

type pageKey struct {
	site string
	page string
}

// DetailCounts outer-merges per-page document and attachment counts. A page
// missing from either side gets zero on that side.
func (r *Roller) DetailCounts(ctx context.Context) []domain.DetailCount {
	posts, err := r.pageCounts(ctx, selectPagePostCounts)
	if err != nil {
		slog.Error("Failed to count documents per page", "error", err)
		return []domain.DetailCount{}
	}
	files, err := r.pageCounts(ctx, selectPageFileCounts)
	if err != nil {
		slog.Error("Failed to count attachments per page", "error", err)
		return []domain.DetailCount{}
	}

	merged := make(map[pageKey]*domain.DetailCount, len(posts))
	row := func(k pageKey) *domain.DetailCount {
		if d, ok := merged[k]; ok {
			return d
		}
		d := &domain.DetailCount{Site: k.site, Page: k.page}
		merged[k] = d
		return d
	}
	for k, n := range posts {
		row(k).Posts += n
	}
	for k, n := range files {
		row(k).Files += n
	}

	details := make([]domain.DetailCount, 0, len(merged))
	for _, d := range merged {
		details = append(details, *d)
	}
	sort.Slice(details, func(i, j int) bool {
		if details[i].Site != details[j].Site {
			return details[i].Site < details[j].Site
		}
		return details[i].Page < details[j].Page
	})
	return details
}

func (r *Roller) pageCounts(ctx context.Context, sql string) (map[pageKey]int64, error) {
	table, err := r.exec.Exec(ctx, sql, nil, nil)
	if err != nil {
		return nil, err
	}
	counts := make(map[pageKey]int64, table.Len())
	for i := 0; i < table.Len(); i++ {
		k := pageKey{site: table.String(i, "site_label"), page: table.String(i, "page_label")}
		counts[k] += table.Int(i, "total")
	}
	return counts, nil
}

// Overview counts catalog sites and pages and all stored documents and
// attachments, catalogued or not.
func (r *Roller) Overview(ctx context.Context) domain.Overview {
	table, err := r.exec.Exec(ctx, selectOverview, nil, nil)
	if err != nil {
		slog.Error("Failed to load statistics overview", "error", err)
		return domain.Overview{}
	}

	o := domain.Overview{
		TotalSites:       table.Int(0, "total_sites"),
		TotalPages:       table.Int(0, "total_pages"),
		TotalPosts:       table.Int(0, "total_posts"),
		TotalAttachments: table.Int(0, "total_attachments"),
	}
	slog.Debug("Statistics overview", "sites", o.TotalSites, "pages", o.TotalPages, "posts", o.TotalPosts, "attachments", o.TotalAttachments)
	return o
}

// CollectionPeriod returns the first and last collection dates. Both are nil
// when no document exists.
func (r *Roller) CollectionPeriod(ctx context.Context) domain.CollectionPeriod {
	sql := fmt.Sprintf(`SELECT %s AS first_date, %s AS last_date FROM documents`,
		r.dialect.DateOf("MIN(collected_at)"), r.dialect.DateOf("MAX(collected_at)"))

	table, err := r.exec.Exec(ctx, sql, nil, nil)
	if err != nil {
		slog.Error("Failed to load collection period", "error", err)
		return domain.CollectionPeriod{}
	}

	var period domain.CollectionPeriod
	if v := table.Value(0, "first_date"); v != nil {
		s := storage.AsString(v)
		period.FirstDate = &s
	}
	if v := table.Value(0, "last_date"); v != nil {
		s := storage.AsString(v)
		period.LastDate = &s
	}
	return period
}
