package storage

import (
	"fmt"

	"github.com/DjordjeVuckovic/crawl-report/internal/domain"
	"github.com/DjordjeVuckovic/crawl-report/internal/domain/query"
)

// DocumentOrder is an ORDER BY list over the document/catalog join.
// d.id breaks ties so repeated reads page identically.
type DocumentOrder string

const (
	OrderBySiteRegistered     DocumentOrder = "d.site_key, d.registration_date DESC, d.id"
	OrderBySitePageRegistered DocumentOrder = "d.site_key, d.page_key, d.registration_date DESC, d.id"
)

// DocumentJoin is the inner join every document read goes through. Documents
// without a catalog entry never appear.
const DocumentJoin = `FROM documents d
	INNER JOIN catalog_entries c
		ON d.site_key = c.site_key AND d.page_key = c.page_key`

const documentColumns = `c.site_label, c.page_label, d.title, d.registration_date,
	d.collected_at, d.site_key, d.page_key, d.sequence_id,
	c.site_url, c.detail_url, d.origin_url, d.summary`

// SelectDocuments builds the labelled document query for f.
func SelectDocuments(d Dialect, f query.Filter, order DocumentOrder) (string, []interface{}, error) {
	st := NewStatement(d)
	where, err := st.Where(f)
	if err != nil {
		return "", nil, err
	}
	sql := fmt.Sprintf("SELECT %s\n%s\nWHERE %s\nORDER BY %s", documentColumns, DocumentJoin, where, order)
	return sql, st.Args(), nil
}

// SelectDocumentPage is SelectDocuments restricted to one page in the store.
func SelectDocumentPage(d Dialect, f query.Filter, order DocumentOrder, limit, offset int) (string, []interface{}, error) {
	st := NewStatement(d)
	where, err := st.Where(f)
	if err != nil {
		return "", nil, err
	}
	sql := fmt.Sprintf("SELECT %s\n%s\nWHERE %s\nORDER BY %s\nLIMIT %s OFFSET %s",
		documentColumns, DocumentJoin, where, order, st.Arg(limit), st.Arg(offset))
	return sql, st.Args(), nil
}

// CountDocuments counts the rows SelectDocuments would return for f.
func CountDocuments(d Dialect, f query.Filter) (string, []interface{}, error) {
	st := NewStatement(d)
	where, err := st.Where(f)
	if err != nil {
		return "", nil, err
	}
	sql := fmt.Sprintf("SELECT COUNT(*) AS total\n%s\nWHERE %s", DocumentJoin, where)
	return sql, st.Args(), nil
}

// DocumentRows maps a SelectDocuments result.
func DocumentRows(t *Table) []domain.DocumentRow {
	rows := make([]domain.DocumentRow, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		rows = append(rows, domain.DocumentRow{
			SiteLabel:        t.String(i, "site_label"),
			PageLabel:        t.String(i, "page_label"),
			Title:            t.String(i, "title"),
			RegistrationDate: t.String(i, "registration_date"),
			CollectionDate:   AsTimestamp(t.Value(i, "collected_at")),
			SiteURL:          t.String(i, "site_url"),
			DetailURL:        t.String(i, "detail_url"),
			OriginURL:        t.String(i, "origin_url"),
			Summary:          t.String(i, "summary"),
			SequenceID:       t.String(i, "sequence_id"),
			SiteKey:          t.String(i, "site_key"),
			PageKey:          t.String(i, "page_key"),
		})
	}
	return rows
}
