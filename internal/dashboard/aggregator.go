package dashboard

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/crawl-report/internal/domain"
	"github.com/DjordjeVuckovic/crawl-report/internal/domain/query"
	"github.com/DjordjeVuckovic/crawl-report/internal/storage"
)

// Counts is the number of documents and attachments collected in a window.
type Counts struct {
	Documents   int64 `json:"documents"`
	Attachments int64 `json:"attachments"`
}

func (c Counts) String() string {
	return fmt.Sprintf("%d (%d)", c.Documents, c.Attachments)
}

// Aggregator computes dashboard metrics. Query failures are logged and
// reported as empty results so the dashboard always renders.
type Aggregator struct {
	exec    storage.RawExecutor
	dialect storage.Dialect
	clock   Clock
}

func NewAggregator(exec storage.RawExecutor, dialect storage.Dialect, clock Clock) *Aggregator {
	return &Aggregator{
		exec:    exec,
		dialect: dialect,
		clock:   clock,
	}
}

// WindowCounts counts rows collected between from and to inclusive. A nil
// to restricts the window to the single day from.
func (a *Aggregator) WindowCounts(ctx context.Context, from string, to *string) Counts {
	counts, err := a.windowCounts(ctx, from, to)
	if err != nil {
		until := from
		if to != nil {
			until = *to
		}
		slog.Error("Failed to count collected documents", "from", from, "to", until, "error", err)
		return Counts{}
	}
	return counts
}

func (a *Aggregator) windowCounts(ctx context.Context, from string, to *string) (Counts, error) {
	st := storage.NewStatement(a.dialect)

	var cond string
	if to == nil {
		cond = fmt.Sprintf("%s = %s", st.DateOf("collected_at"), st.DateArg(from))
	} else {
		cond = fmt.Sprintf("%s BETWEEN %s AND %s", st.DateOf("collected_at"), st.DateArg(from), st.DateArg(*to))
	}

	sql := fmt.Sprintf(`SELECT
		(SELECT COUNT(*) FROM documents WHERE %s) AS document_count,
		(SELECT COUNT(*) FROM attachments WHERE %s) AS attachment_count`, cond, cond)

	table, err := a.exec.Exec(ctx, sql, st.Args(), nil)
	if err != nil {
		return Counts{}, err
	}
	if table.Len() == 0 {
		return Counts{}, nil
	}
	return Counts{
		Documents:   table.Int(0, "document_count"),
		Attachments: table.Int(0, "attachment_count"),
	}, nil
}

// ErrorCountRecent counts error documents on the latest collection day
// present in the table, not within the last 24 hours.
func (a *Aggregator) ErrorCountRecent(ctx context.Context) int64 {
	st := storage.NewStatement(a.dialect)
	sql := fmt.Sprintf(`SELECT COUNT(*) AS error_count
		FROM documents
		WHERE category = %s
		AND %s = (SELECT %s FROM documents)`,
		st.Arg(domain.ErrorCategory),
		st.DateOf("collected_at"),
		st.DateOf("MAX(collected_at)"))

	table, err := a.exec.Exec(ctx, sql, st.Args(), nil)
	if err != nil {
		slog.Error("Failed to count error documents", "error", err)
		return 0
	}
	return table.Int(0, "error_count")
}

// DashboardMetrics renders today, trailing 3 and 7 days, and all-time
// counts as "documents (attachments)".
func (a *Aggregator) DashboardMetrics(ctx context.Context) domain.DashboardMetrics {
	today := a.clock.DaysAgo(0)
	threeDaysAgo := a.clock.DaysAgo(2)
	sevenDaysAgo := a.clock.DaysAgo(6)

	todayCounts := a.WindowCounts(ctx, today, nil)
	threeDays := a.WindowCounts(ctx, threeDaysAgo, &today)
	sevenDays := a.WindowCounts(ctx, sevenDaysAgo, &today)
	total := a.WindowCounts(ctx, EpochFloor, &today)

	return domain.DashboardMetrics{
		SiteCount:        total.String(),
		TodayCollect:     todayCounts.String(),
		ThreeDaysCollect: threeDays.String(),
		SevenDaysCollect: sevenDays.String(),
		TotalCollect:     total.String(),
		ErrorCount:       a.ErrorCountRecent(ctx),
	}
}

// WindowedDocuments lists labelled documents collected within period,
// ordered by site then newest registration first.
func (a *Aggregator) WindowedDocuments(ctx context.Context, period Period) []domain.DocumentRow {
	window := a.clock.Window(ParsePeriod(string(period)))

	rows, err := a.windowedDocuments(ctx, window)
	if err != nil {
		slog.Error("Failed to list collected documents", "period", period, "error", err)
		return []domain.DocumentRow{}
	}
	return rows
}

func (a *Aggregator) windowedDocuments(ctx context.Context, window query.Filter) ([]domain.DocumentRow, error) {
	sql, args, err := storage.SelectDocuments(a.dialect, window, storage.OrderBySiteRegistered)
	if err != nil {
		return nil, err
	}
	table, err := a.exec.Exec(ctx, sql, args, nil)
	if err != nil {
		return nil, err
	}
	slog.Debug("Collected documents listed", "count", table.Len())
	return storage.DocumentRows(table), nil
}
