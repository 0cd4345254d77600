package dashboard_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/crawl-report/internal/apperr"
	"github.com/DjordjeVuckovic/crawl-report/internal/dashboard"
	"github.com/DjordjeVuckovic/crawl-report/internal/domain"
	"github.com/DjordjeVuckovic/crawl-report/internal/storage"
	"github.com/DjordjeVuckovic/crawl-report/internal/storage/sqlite"
	pkgtesting "github.com/DjordjeVuckovic/crawl-report/pkg/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var seoul = time.FixedZone("KST", 9*60*60)

// 2025-03-10 00:30 in Seoul is still 2025-03-09 in UTC.
var fixedNow = time.Date(2025, 3, 9, 15, 30, 0, 0, time.UTC)

type failingExecutor struct{}

func (failingExecutor) Exec(_ context.Context, query string, _ []interface{}, _ *storage.ExecOptions) (*storage.Table, error) {
	return nil, apperr.NewQueryExecution(query, errors.New("database is locked"))
}

func newAggregator(t *testing.T) (*dashboard.Aggregator, *pkgtesting.SQLiteFixture) {
	t.Helper()
	fx := pkgtesting.NewSQLiteFixture(t)
	clock := dashboard.NewClock(func() time.Time { return fixedNow }, seoul)
	return dashboard.NewAggregator(fx.Executor, sqlite.Dialect{}, clock), fx
}

func siteA() domain.CatalogEntry {
	return domain.CatalogEntry{SiteKey: "A", PageKey: "P1", SiteLabel: "Site A", PageLabel: "Page 1"}
}

func TestClock_Window(t *testing.T) {
	clock := dashboard.NewClock(func() time.Time { return fixedNow }, seoul)

	assert.Equal(t, "2025-03-10", clock.DaysAgo(0))
	assert.Equal(t, "2025-03-10", clock.Window(dashboard.PeriodToday).From)
	assert.Equal(t, "2025-03-08", clock.Window(dashboard.PeriodThreeDays).From)
	assert.Equal(t, "2025-03-04", clock.Window(dashboard.PeriodSevenDays).From)
	assert.Equal(t, "2025-03-10", clock.Window(dashboard.PeriodSevenDays).To)
}

func TestParsePeriod(t *testing.T) {
	assert.Equal(t, dashboard.PeriodThreeDays, dashboard.ParsePeriod("3days"))
	assert.Equal(t, dashboard.PeriodSevenDays, dashboard.ParsePeriod("7days"))
	assert.Equal(t, dashboard.PeriodToday, dashboard.ParsePeriod("today"))
	assert.Equal(t, dashboard.PeriodToday, dashboard.ParsePeriod("fortnight"))
	assert.Equal(t, dashboard.PeriodToday, dashboard.ParsePeriod(""))
}

func TestDashboardMetrics_SingleDocumentToday(t *testing.T) {
	agg, fx := newAggregator(t)
	fx.SeedCatalog(siteA())
	fx.InsertDocument(pkgtesting.Doc{SiteKey: "A", PageKey: "P1", SequenceID: "1", Title: "t", RegistrationDate: "2025-03-10"})

	m := agg.DashboardMetrics(context.Background())

	assert.Equal(t, "1 (0)", m.TodayCollect)
	assert.Equal(t, "1 (0)", m.ThreeDaysCollect)
	assert.Equal(t, "1 (0)", m.SevenDaysCollect)
	assert.Equal(t, "1 (0)", m.TotalCollect)
	assert.Equal(t, m.TotalCollect, m.SiteCount)
	assert.Zero(t, m.ErrorCount)
}

func TestDashboardMetrics_Windows(t *testing.T) {
	agg, fx := newAggregator(t)
	fx.SeedCatalog(siteA())

	days := map[string]int{
		"2025-03-10": 2,
		"2025-03-09": 1,
		"2025-03-08": 1,
		"2025-03-05": 3,
		"2025-03-04": 1,
		"2025-03-03": 4,
		"2024-12-31": 5,
	}
	for day, n := range days {
		for i := 0; i < n; i++ {
			id := fx.InsertDocument(pkgtesting.Doc{SiteKey: "A", PageKey: "P1", SequenceID: day, RegistrationDate: day})
			if day == "2025-03-10" {
				fx.InsertAttachment(id, "A/P1_1", "law.pdf", day+" 10:00:00")
			}
		}
	}

	m := agg.DashboardMetrics(context.Background())

	assert.Equal(t, "2 (2)", m.TodayCollect)
	assert.Equal(t, "4 (2)", m.ThreeDaysCollect)
	assert.Equal(t, "8 (2)", m.SevenDaysCollect)
	assert.Equal(t, "17 (2)", m.TotalCollect)
}

func TestWindowCounts_SingleDayEqualsCollapsedRange(t *testing.T) {
	agg, fx := newAggregator(t)
	fx.InsertDocument(pkgtesting.Doc{SiteKey: "A", PageKey: "P1", RegistrationDate: "2025-03-07", CollectedAt: "2025-03-07 23:59:59"})
	fx.InsertDocument(pkgtesting.Doc{SiteKey: "A", PageKey: "P1", RegistrationDate: "2025-03-08", CollectedAt: "2025-03-08 00:00:00"})
	fx.InsertDocument(pkgtesting.Doc{SiteKey: "A", PageKey: "P1", RegistrationDate: "2025-03-08"})

	day := "2025-03-08"
	single := agg.WindowCounts(context.Background(), day, nil)
	collapsed := agg.WindowCounts(context.Background(), day, &day)

	assert.Equal(t, single, collapsed)
	assert.EqualValues(t, 2, single.Documents)
}

func TestWindowCounts_IgnoresCatalog(t *testing.T) {
	agg, fx := newAggregator(t)
	fx.InsertDocument(pkgtesting.Doc{SiteKey: "orphan", PageKey: "x", RegistrationDate: "2025-03-10"})

	counts := agg.WindowCounts(context.Background(), "2025-03-10", nil)

	assert.EqualValues(t, 1, counts.Documents)
}

func TestErrorCountRecent_LatestDay(t *testing.T) {
	agg, fx := newAggregator(t)
	fx.InsertDocument(pkgtesting.Doc{SiteKey: "A", PageKey: "P1", RegistrationDate: "2025-02-01", Category: domain.ErrorCategory})
	fx.InsertDocument(pkgtesting.Doc{SiteKey: "A", PageKey: "P1", RegistrationDate: "2025-02-03", Category: domain.ErrorCategory})
	fx.InsertDocument(pkgtesting.Doc{SiteKey: "A", PageKey: "P1", RegistrationDate: "2025-02-03", CollectedAt: "2025-02-03 22:00:00", Category: domain.ErrorCategory})
	fx.InsertDocument(pkgtesting.Doc{SiteKey: "A", PageKey: "P1", RegistrationDate: "2025-02-03", Category: "LAW"})

	// latest ingestion day is weeks before "now", errors still count
	assert.EqualValues(t, 2, agg.ErrorCountRecent(context.Background()))
}

func TestErrorCountRecent_Empty(t *testing.T) {
	agg, _ := newAggregator(t)
	assert.Zero(t, agg.ErrorCountRecent(context.Background()))
}

func TestWindowedDocuments(t *testing.T) {
	agg, fx := newAggregator(t)
	fx.SeedCatalog(
		siteA(),
		domain.CatalogEntry{SiteKey: "B", PageKey: "P1", SiteLabel: "Site B", PageLabel: "Page 1", SiteURL: "https://b.example"},
	)
	fx.InsertDocument(pkgtesting.Doc{SiteKey: "B", PageKey: "P1", SequenceID: "b1", Title: "b-old", RegistrationDate: "2025-03-01", CollectedAt: "2025-03-09 08:00:00"})
	fx.InsertDocument(pkgtesting.Doc{SiteKey: "A", PageKey: "P1", SequenceID: "a1", Title: "a-old", RegistrationDate: "2025-03-02", CollectedAt: "2025-03-10 08:00:00"})
	fx.InsertDocument(pkgtesting.Doc{SiteKey: "A", PageKey: "P1", SequenceID: "a2", Title: "a-new", RegistrationDate: "2025-03-05", CollectedAt: "2025-03-08 08:00:00"})
	fx.InsertDocument(pkgtesting.Doc{SiteKey: "A", PageKey: "P1", SequenceID: "a3", Title: "too-old", RegistrationDate: "2025-03-05", CollectedAt: "2025-03-07 08:00:00"})
	fx.InsertDocument(pkgtesting.Doc{SiteKey: "Z", PageKey: "P1", SequenceID: "z1", Title: "uncatalogued", RegistrationDate: "2025-03-10"})

	rows := agg.WindowedDocuments(context.Background(), dashboard.PeriodThreeDays)
	require.Len(t, rows, 3)

	titles := []string{rows[0].Title, rows[1].Title, rows[2].Title}
	assert.Equal(t, []string{"a-new", "a-old", "b-old"}, titles)
	assert.Equal(t, "Site B", rows[2].SiteLabel)
	assert.Equal(t, "https://b.example", rows[2].SiteURL)
	assert.Equal(t, "2025-03-09 08:00:00", rows[2].CollectionDate)

	today := agg.WindowedDocuments(context.Background(), dashboard.Period("bogus"))
	require.Len(t, today, 1)
	assert.Equal(t, "a-old", today[0].Title)
}

func TestAggregator_FailuresDegrade(t *testing.T) {
	clock := dashboard.NewClock(func() time.Time { return fixedNow }, seoul)
	agg := dashboard.NewAggregator(failingExecutor{}, sqlite.Dialect{}, clock)
	ctx := context.Background()

	assert.Equal(t, dashboard.Counts{}, agg.WindowCounts(ctx, "2025-03-10", nil))
	assert.Zero(t, agg.ErrorCountRecent(ctx))

	rows := agg.WindowedDocuments(ctx, dashboard.PeriodToday)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)

	// indistinguishable from an empty store
	empty, _ := newAggregator(t)
	assert.Equal(t, empty.DashboardMetrics(ctx), agg.DashboardMetrics(ctx))
	assert.Equal(t, "0 (0)", agg.DashboardMetrics(ctx).TodayCollect)
}
