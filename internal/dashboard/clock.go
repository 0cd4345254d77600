package dashboard

import (
	"time"

	"github.com/DjordjeVuckovic/crawl-report/internal/domain/query"
	"github.com/DjordjeVuckovic/crawl-report/internal/storage"
)

// EpochFloor is the lower bound of the all-time window.
const EpochFloor = "1900-01-01"

type Period string

const (
	PeriodToday     Period = "today"
	PeriodThreeDays Period = "3days"
	PeriodSevenDays Period = "7days"
)

// ParsePeriod maps unknown values to PeriodToday.
func ParsePeriod(s string) Period {
	switch p := Period(s); p {
	case PeriodThreeDays, PeriodSevenDays:
		return p
	default:
		return PeriodToday
	}
}

// Clock reads "now" in one configured zone.
type Clock struct {
	now func() time.Time
	loc *time.Location
}

func NewClock(now func() time.Time, loc *time.Location) Clock {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.Local
	}
	return Clock{now: now, loc: loc}
}

func (c Clock) Today() time.Time {
	return c.now().In(c.loc)
}

// DaysAgo formats the calendar date n days before today.
func (c Clock) DaysAgo(n int) string {
	return c.Today().AddDate(0, 0, -n).Format(storage.DateLayout)
}

// Window returns the inclusive date range of p. Trailing windows include today.
func (c Clock) Window(p Period) query.CollectedBetween {
	today := c.DaysAgo(0)
	switch p {
	case PeriodThreeDays:
		return query.CollectedBetween{From: c.DaysAgo(2), To: today}
	case PeriodSevenDays:
		return query.CollectedBetween{From: c.DaysAgo(6), To: today}
	default:
		return query.CollectedBetween{From: today, To: today}
	}
}
