package catalog_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DjordjeVuckovic/crawl-report/internal/apperr"
	"github.com/DjordjeVuckovic/crawl-report/internal/catalog"
	"github.com/DjordjeVuckovic/crawl-report/internal/domain"
	pkgtesting "github.com/DjordjeVuckovic/crawl-report/pkg/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const source = `
s1:
  h_name: Alpha
  url: https://alpha.example
  pages:
    - id: p1
      desc: News
      detail_url: https://alpha.example/news
    - id: p2
      desc: Notices
      detail_url: https://alpha.example/notices
s2:
  h_name: Beta
  url: https://beta.example
  pages:
    - id: p1
      desc: Bills
      detail_url: https://beta.example/bills
`

func writeSource(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "site_config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func storedCatalog(t *testing.T, fx *pkgtesting.SQLiteFixture) []domain.CatalogEntry {
	t.Helper()
	table, err := fx.Executor.Exec(context.Background(), `
		SELECT site_key, page_key, site_label, page_label, site_url, detail_url
		FROM catalog_entries ORDER BY ordinal, site_key, page_key`, nil, nil)
	require.NoError(t, err)

	entries := make([]domain.CatalogEntry, 0, table.Len())
	for i := 0; i < table.Len(); i++ {
		entries = append(entries, domain.CatalogEntry{
			SiteKey:   table.String(i, "site_key"),
			PageKey:   table.String(i, "page_key"),
			SiteLabel: table.String(i, "site_label"),
			PageLabel: table.String(i, "page_label"),
			SiteURL:   table.String(i, "site_url"),
			DetailURL: table.String(i, "detail_url"),
		})
	}
	return entries
}

func TestSyncer_SyncFile(t *testing.T) {
	fx := pkgtesting.NewSQLiteFixture(t)
	registry := catalog.NewRegistry(fx.Executor)
	syncer := catalog.NewSyncer(fx.Catalog, registry)

	res, err := syncer.SyncFile(context.Background(), writeSource(t, source))
	require.NoError(t, err)

	assert.Equal(t, 2, res.Sites)
	assert.Equal(t, 3, res.Pages)

	stored := storedCatalog(t, fx)
	require.Len(t, stored, 3)
	assert.Equal(t, domain.CatalogEntry{
		SiteKey:   "s1",
		PageKey:   "p2",
		SiteLabel: "Alpha",
		PageLabel: "Notices",
		SiteURL:   "https://alpha.example",
		DetailURL: "https://alpha.example/notices",
	}, stored[1])

	snap := registry.Current()
	assert.Equal(t, res.Version, snap.Version)
	assert.Equal(t, stored, snap.Entries)
}

func TestSyncer_Idempotent(t *testing.T) {
	fx := pkgtesting.NewSQLiteFixture(t)
	syncer := catalog.NewSyncer(fx.Catalog, catalog.NewRegistry(fx.Executor))
	path := writeSource(t, source)

	_, err := syncer.SyncFile(context.Background(), path)
	require.NoError(t, err)
	first := storedCatalog(t, fx)

	_, err = syncer.SyncFile(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, first, storedCatalog(t, fx))
}

func TestSyncer_ReplacesPreviousCatalog(t *testing.T) {
	fx := pkgtesting.NewSQLiteFixture(t)
	syncer := catalog.NewSyncer(fx.Catalog, catalog.NewRegistry(fx.Executor))

	_, err := syncer.SyncFile(context.Background(), writeSource(t, source))
	require.NoError(t, err)

	res, err := syncer.Sync(context.Background(), "inline", strings.NewReader("s3:\n  h_name: Gamma\n  pages:\n    - id: only\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Pages)

	stored := storedCatalog(t, fx)
	require.Len(t, stored, 1)
	assert.Equal(t, "s3", stored[0].SiteKey)
}

func TestSyncer_EmptySourceClearsCatalog(t *testing.T) {
	fx := pkgtesting.NewSQLiteFixture(t)
	syncer := catalog.NewSyncer(fx.Catalog, catalog.NewRegistry(fx.Executor))

	_, err := syncer.SyncFile(context.Background(), writeSource(t, source))
	require.NoError(t, err)

	res, err := syncer.SyncFile(context.Background(), writeSource(t, ""))
	require.NoError(t, err)

	assert.Zero(t, res.Sites)
	assert.Zero(t, res.Pages)
	assert.Empty(t, storedCatalog(t, fx))
}

func TestSyncer_MissingSource(t *testing.T) {
	fx := pkgtesting.NewSQLiteFixture(t)
	registry := catalog.NewRegistry(fx.Executor)
	syncer := catalog.NewSyncer(fx.Catalog, registry)

	_, err := syncer.SyncFile(context.Background(), writeSource(t, source))
	require.NoError(t, err)
	before := registry.Current()

	_, err = syncer.SyncFile(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	var syncErr *apperr.CatalogSyncError
	require.True(t, errors.As(err, &syncErr))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	assert.Len(t, storedCatalog(t, fx), 3)
	assert.Same(t, before, registry.Current())
}

func TestSyncer_MalformedSource(t *testing.T) {
	fx := pkgtesting.NewSQLiteFixture(t)
	syncer := catalog.NewSyncer(fx.Catalog, catalog.NewRegistry(fx.Executor))

	_, err := syncer.SyncFile(context.Background(), writeSource(t, "s1: [broken\n"))

	var syncErr *apperr.CatalogSyncError
	assert.True(t, errors.As(err, &syncErr))
}

func TestRegistry_Reload(t *testing.T) {
	fx := pkgtesting.NewSQLiteFixture(t)
	fx.SeedCatalog(
		domain.CatalogEntry{SiteKey: "s2", PageKey: "p1", SiteLabel: "Beta"},
		domain.CatalogEntry{SiteKey: "s1", PageKey: "p1", SiteLabel: "Alpha"},
		domain.CatalogEntry{SiteKey: "s1", PageKey: "p2", SiteLabel: "Alpha"},
	)

	registry := catalog.NewRegistry(fx.Executor)
	assert.Empty(t, registry.Current().Entries)

	snap, err := registry.Reload(context.Background())
	require.NoError(t, err)

	assert.Len(t, snap.Entries, 3)
	assert.Equal(t, "s2", snap.Entries[0].SiteKey)
	assert.Equal(t, []domain.Site{
		{Code: "s1", Name: "Alpha"},
		{Code: "s2", Name: "Beta"},
	}, snap.Sites())
}
