package router_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/crawl-report/internal/apperr"
	"github.com/DjordjeVuckovic/crawl-report/internal/attachment"
	"github.com/DjordjeVuckovic/crawl-report/internal/catalog"
	"github.com/DjordjeVuckovic/crawl-report/internal/dashboard"
	"github.com/DjordjeVuckovic/crawl-report/internal/domain"
	"github.com/DjordjeVuckovic/crawl-report/internal/logstore"
	"github.com/DjordjeVuckovic/crawl-report/internal/router"
	"github.com/DjordjeVuckovic/crawl-report/internal/search"
	"github.com/DjordjeVuckovic/crawl-report/internal/statistics"
	"github.com/DjordjeVuckovic/crawl-report/internal/storage/sqlite"
	pkgtesting "github.com/DjordjeVuckovic/crawl-report/pkg/testing"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 10, 3, 0, 0, 0, time.UTC)

const siteSource = `
s1:
  h_name: Alpha
  url: https://alpha.example
  pages:
    - id: p1
      desc: News
      detail_url: https://alpha.example/news
`

type env struct {
	e       *echo.Echo
	fx      *pkgtesting.SQLiteFixture
	logDir  string
	fileDir string
}

func newEnv(t *testing.T) *env {
	t.Helper()
	fx := pkgtesting.NewSQLiteFixture(t)
	dialect := sqlite.Dialect{}

	sourcePath := filepath.Join(t.TempDir(), "site_config.yaml")
	require.NoError(t, os.WriteFile(sourcePath, []byte(siteSource), 0o644))
	logDir := t.TempDir()
	fileDir := t.TempDir()

	registry := catalog.NewRegistry(fx.Executor)
	syncer := catalog.NewSyncer(fx.Catalog, registry)
	clock := dashboard.NewClock(func() time.Time { return now }, time.UTC)

	e := echo.New()
	e.HTTPErrorHandler = apperr.GlobalErrorHandler()
	api := e.Group("/api/v1")
	router.NewDashboardRouter(api, dashboard.NewAggregator(fx.Executor, dialect, clock)).Bind()
	router.NewSearchRouter(api, search.NewEngine(fx.Executor, dialect)).Bind()
	router.NewStatisticsRouter(api, statistics.NewRoller(fx.Executor, dialect)).Bind()
	router.NewCatalogRouter(api, registry, syncer, sourcePath).Bind()
	router.NewLogRouter(api, logstore.NewStore(logDir, func() time.Time { return now }, time.UTC)).Bind()
	router.NewAttachmentRouter(api, attachment.NewStore(fx.Executor, dialect, fileDir)).Bind()

	return &env{e: e, fx: fx, logDir: logDir, fileDir: fileDir}
}

func (v *env) do(t *testing.T, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	v.e.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestCatalogSyncThenReport(t *testing.T) {
	v := newEnv(t)
	id := v.fx.InsertDocument(pkgtesting.Doc{SiteKey: "s1", PageKey: "p1", SequenceID: "7", Title: "Tax act", RegistrationDate: "2025-03-10"})
	v.fx.InsertAttachment(id, "s1/p1_7", "act.pdf", "2025-03-10 09:30:00")

	// nothing is visible before the catalog is synced
	rec := v.do(t, http.MethodGet, "/api/v1/dashboard/data")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]domain.DocumentRow](t, rec))

	rec = v.do(t, http.MethodPost, "/api/v1/catalog/sync")
	require.Equal(t, http.StatusOK, rec.Code)
	res := decode[map[string]interface{}](t, rec)
	assert.EqualValues(t, 1, res["site_count"])
	assert.EqualValues(t, 1, res["page_count"])

	rec = v.do(t, http.MethodGet, "/api/v1/catalog")
	require.Equal(t, http.StatusOK, rec.Code)
	snap := decode[catalog.Snapshot](t, rec)
	require.Len(t, snap.Entries, 1)
	assert.Equal(t, "Alpha", snap.Entries[0].SiteLabel)

	rec = v.do(t, http.MethodGet, "/api/v1/dashboard/data?period=7days")
	rows := decode[[]domain.DocumentRow](t, rec)
	require.Len(t, rows, 1)
	assert.Equal(t, "Alpha", rows[0].SiteLabel)
	assert.Equal(t, "7", rows[0].SequenceID)

	rec = v.do(t, http.MethodGet, "/api/v1/dashboard/metrics")
	metrics := decode[domain.DashboardMetrics](t, rec)
	assert.Equal(t, "1 (1)", metrics.TodayCollect)

	rec = v.do(t, http.MethodGet, "/api/v1/statistics/detail")
	assert.Equal(t, []domain.DetailCount{{Site: "Alpha", Page: "News", Posts: 1, Files: 1}}, decode[[]domain.DetailCount](t, rec))
}

func TestSearchEndpoint(t *testing.T) {
	v := newEnv(t)
	v.fx.SeedCatalog(domain.CatalogEntry{SiteKey: "s1", PageKey: "p1", SiteLabel: "Alpha", PageLabel: "News"})
	v.fx.InsertDocument(pkgtesting.Doc{SiteKey: "s1", PageKey: "p1", Title: "Tax act", RegistrationDate: "2025-03-01"})

	rec := v.do(t, http.MethodGet, "/api/v1/search/results?sites=s1&keyword=tax&page=1&page_size=10")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[search.Result](t, rec)
	assert.EqualValues(t, 1, body.Total)
	assert.Equal(t, 1, body.TotalPages)

	rec = v.do(t, http.MethodGet, "/api/v1/search/results")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"items":[],"total":0,"page":1,"page_size":10,"total_pages":0}`, rec.Body.String())

	rec = v.do(t, http.MethodGet, "/api/v1/search/results?sites=s1&page_size=500")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = v.do(t, http.MethodGet, "/api/v1/search/results?sites=s1&page=abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = v.do(t, http.MethodGet, "/api/v1/search/results?sites=s1&page=9223372036854775807")
	require.Equal(t, http.StatusOK, rec.Code)
	huge := decode[search.Result](t, rec)
	assert.Empty(t, huge.Items)
	assert.EqualValues(t, 1, huge.Total)

	rec = v.do(t, http.MethodGet, "/api/v1/search/sites")
	assert.JSONEq(t, `[{"code":"s1","name":"Alpha"}]`, rec.Body.String())
}

func TestCatalogSyncFailure(t *testing.T) {
	v := newEnv(t)
	e := echo.New()
	e.HTTPErrorHandler = apperr.GlobalErrorHandler()
	registry := catalog.NewRegistry(v.fx.Executor)
	router.NewCatalogRouter(e.Group("/api/v1"), registry, catalog.NewSyncer(v.fx.Catalog, registry), filepath.Join(t.TempDir(), "missing.yaml")).Bind()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/catalog/sync", nil))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestLogEndpoints(t *testing.T) {
	v := newEnv(t)
	require.NoError(t, os.WriteFile(filepath.Join(v.logDir, "law_crawler_2025_03_10.log"), []byte("started\nfinished\n"), 0o644))

	rec := v.do(t, http.MethodGet, "/api/v1/logs/dates?days=2")
	assert.JSONEq(t, `[{"date":"2025-03-10","label":"2025-03-10"},{"date":"2025-03-09","label":"2025-03-09"}]`, rec.Body.String())

	rec = v.do(t, http.MethodGet, "/api/v1/logs/crawler?date=2025-03-10")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "started\nfinished", decode[logstore.Content](t, rec).Content)

	rec = v.do(t, http.MethodGet, "/api/v1/logs/crawler?date=2025-03-09")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = v.do(t, http.MethodGet, "/api/v1/logs/files")
	files := decode[[]logstore.File](t, rec)
	require.Len(t, files, 1)

	rec = v.do(t, http.MethodGet, "/api/v1/logs/files/law_crawler_2025_03_10.log")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = v.do(t, http.MethodGet, "/api/v1/logs/files/..%2Fsecret.log")
	assert.NotEqual(t, http.StatusOK, rec.Code)
}

func TestAttachmentEndpoints(t *testing.T) {
	v := newEnv(t)
	id := v.fx.InsertDocument(pkgtesting.Doc{SiteKey: "s1", PageKey: "p1", SequenceID: "7", RegistrationDate: "2025-03-10"})
	v.fx.InsertAttachment(id, "s1/p1_7", "act.pdf", "2025-03-10 09:30:00")

	dir := filepath.Join(v.fileDir, "s1", "p1_7")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "act.pdf"), []byte("%PDF-1.4"), 0o644))

	rec := v.do(t, http.MethodGet, "/api/v1/attachments/s1/p1/7")
	list := decode[[]domain.Attachment](t, rec)
	require.Len(t, list, 1)
	assert.Equal(t, "act.pdf", list[0].SaveFileName)

	rec = v.do(t, http.MethodGet, "/api/v1/attachments/s1/p1/7/act.pdf")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "%PDF-1.4", rec.Body.String())
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "act.pdf")

	rec = v.do(t, http.MethodGet, "/api/v1/attachments/s1/p1/7/other.pdf")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

type stubSystemInfo struct{}

func (stubSystemInfo) SystemInfo(context.Context) domain.SystemInfo {
	return domain.SystemInfo{GoVersion: "go1.24", DatabaseType: "sqlite", DatabaseHealthy: true}
}

func TestSystemInfo(t *testing.T) {
	e := echo.New()
	router.NewSystemRouter(e.Group("/api/v1"), stubSystemInfo{}).Bind()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/settings/system-info", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	info := decode[domain.SystemInfo](t, rec)
	assert.Equal(t, "sqlite", info.DatabaseType)
	assert.True(t, info.DatabaseHealthy)
}
