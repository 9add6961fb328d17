package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Period is the bucket granularity for time-series reports.
type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

// Valid reports whether p is a supported bucket granularity.
func (p Period) Valid() bool {
	switch p {
	case PeriodDay, PeriodWeek, PeriodMonth:
		return true
	}
	return false
}

// BucketLabel renders the bucket label for t at granularity p. Labels
// sort lexicographically in chronological order: day is YYYY-MM-DD,
// week is the ISO week YYYY-Www, month is YYYY-MM. Bucketing happens
// in UTC.
func (p Period) BucketLabel(t time.Time) string {
	t = t.UTC()
	switch p {
	case PeriodDay:
		return t.Format("2006-01-02")
	case PeriodWeek:
		year, week := t.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", year, week)
	default:
		return t.Format("2006-01")
	}
}

// GroupedTotal is one (category, user) group with its summed amount.
type GroupedTotal struct {
	Category ExpenseCategory
	User     *ExpenseUser
	Total    decimal.Decimal
}

// KeyedTotal is one group of a single-key breakdown. A nil key carries
// records whose grouped field is null.
type KeyedTotal struct {
	Key   *string
	Total decimal.Decimal
}

// SeriesPoint is one non-empty time-series bucket.
type SeriesPoint struct {
	Period string
	Total  decimal.Decimal
}

// SummaryTotals is the unscoped totals report. ByUser is populated only
// from records filed under the reserved "user" category; this is
// intentionally different from RangeBreakdown, which groups on the
// record's user field directly.
type SummaryTotals struct {
	ByCategory map[string]decimal.Decimal
	ByUser     map[string]decimal.Decimal
}

// RangeBreakdown is the window-scoped totals report. Groups with a null
// user render under the "unknown" key.
type RangeBreakdown struct {
	ByCategory map[string]decimal.Decimal
	ByUser     map[string]decimal.Decimal
}

// ReportWindow scopes a report to a date range and optional enum
// filters. Zero times mean the corresponding bound is absent.
type ReportWindow struct {
	From     time.Time
	To       time.Time
	User     ExpenseUser
	Category ExpenseCategory
}
