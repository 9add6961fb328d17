package services

import (
	"context"

	"github.com/homefolio/expense_tracker_app/internal/core/domain"
	"github.com/homefolio/expense_tracker_app/internal/dto"
)

// ReportingSvcFacade defines the read-only aggregation reports.
type ReportingSvcFacade interface {
	// SummaryTotals groups the entire record set by (category, user) and
	// projects totals per category plus totals per user for records filed
	// under the reserved "user" category.
	SummaryTotals(ctx context.Context) (*domain.SummaryTotals, error)
	// TimeSeries buckets matching records by period and returns the
	// non-empty buckets ascending by label.
	TimeSeries(ctx context.Context, params dto.TimeSeriesParams) ([]domain.SeriesPoint, error)
	// RangeBreakdown totals a date window by category and, separately, by
	// the record's user field.
	RangeBreakdown(ctx context.Context, params dto.RangeParams) (*domain.RangeBreakdown, error)
	// AvailableYears returns the distinct calendar years present in
	// matching records, descending.
	AvailableYears(ctx context.Context, params dto.ReportFilterParams) ([]int, error)
}
