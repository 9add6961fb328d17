package repositories

import (
	"context"

	"github.com/homefolio/expense_tracker_app/internal/core/domain"
)

// ReportingRepository defines the read-only aggregation queries backing
// the report endpoints. Aggregates are derived fresh per call; nothing
// is cached.
type ReportingRepository interface {
	// GroupedTotals sums amounts over the entire record set grouped by
	// (category, user).
	GroupedTotals(ctx context.Context) ([]domain.GroupedTotal, error)
	// ListForWindow returns the records matching the window, unordered.
	ListForWindow(ctx context.Context, window domain.ReportWindow) ([]domain.Expense, error)
	// TotalsByCategory sums amounts within the window grouped by category.
	TotalsByCategory(ctx context.Context, window domain.ReportWindow) ([]domain.KeyedTotal, error)
	// TotalsByUser sums amounts within the window grouped directly on the
	// user field; records without a user land in the nil-key group.
	TotalsByUser(ctx context.Context, window domain.ReportWindow) ([]domain.KeyedTotal, error)
	// DistinctYears returns the calendar years present in matching
	// records, descending, without duplicates.
	DistinctYears(ctx context.Context, window domain.ReportWindow) ([]int, error)
}
