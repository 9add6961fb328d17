package client

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/homefolio/expense_tracker_app/internal/core/domain"
	"github.com/homefolio/expense_tracker_app/internal/core/services"
)

const unknownKey = "unknown"

// Summary derives the unscoped totals from the cached list. As on the
// server, per-user totals come only from records filed under the
// reserved "user" category.
func (c *Cache) Summary() domain.SummaryTotals {
	totals := domain.SummaryTotals{
		ByCategory: make(map[string]decimal.Decimal),
		ByUser:     make(map[string]decimal.Decimal),
	}
	for _, e := range c.Items() {
		key := string(e.Category)
		totals.ByCategory[key] = totals.ByCategory[key].Add(e.Amount)

		if e.Category == domain.CategoryUser && e.User != nil {
			userKey := string(*e.User)
			totals.ByUser[userKey] = totals.ByUser[userKey].Add(e.Amount)
		}
	}
	return totals
}

// TimeSeries derives a bucketed series from the cached list. Zero
// bounds leave the corresponding side of the window open.
func (c *Cache) TimeSeries(period domain.Period, from, to time.Time) []domain.SeriesPoint {
	if !period.Valid() {
		period = domain.PeriodMonth
	}
	return services.BucketByPeriod(c.window(from, to), period)
}

// RangeBreakdown derives per-category and per-user totals for a window
// from the cached list. Unlike Summary, per-user totals group on the
// record's user field directly; records without one land under
// "unknown".
func (c *Cache) RangeBreakdown(from, to time.Time) domain.RangeBreakdown {
	breakdown := domain.RangeBreakdown{
		ByCategory: make(map[string]decimal.Decimal),
		ByUser:     make(map[string]decimal.Decimal),
	}
	for _, e := range c.window(from, to) {
		categoryKey := string(e.Category)
		breakdown.ByCategory[categoryKey] = breakdown.ByCategory[categoryKey].Add(e.Amount)

		userKey := unknownKey
		if e.User != nil && *e.User != "" {
			userKey = string(*e.User)
		}
		breakdown.ByUser[userKey] = breakdown.ByUser[userKey].Add(e.Amount)
	}
	return breakdown
}

// AvailableYears lists the distinct years present in the cached list,
// newest first.
func (c *Cache) AvailableYears() []int {
	seen := make(map[int]bool)
	for _, e := range c.Items() {
		seen[e.Date.UTC().Year()] = true
	}
	years := make([]int, 0, len(seen))
	for year := range seen {
		years = append(years, year)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

// window filters the cached list to [from, to]; zero bounds are open.
func (c *Cache) window(from, to time.Time) []domain.Expense {
	items := c.Items()
	kept := items[:0]
	for _, e := range items {
		if !from.IsZero() && e.Date.Before(from) {
			continue
		}
		if !to.IsZero() && e.Date.After(to) {
			continue
		}
		kept = append(kept, e)
	}
	return kept
}
