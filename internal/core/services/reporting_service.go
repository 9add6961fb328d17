package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/homefolio/expense_tracker_app/internal/core/domain"
	portsrepo "github.com/homefolio/expense_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/homefolio/expense_tracker_app/internal/core/ports/services"
	"github.com/homefolio/expense_tracker_app/internal/dto"
	"github.com/shopspring/decimal"
)

// defaultLookbackDays is the report window applied when the caller
// specifies no bounds at all.
const defaultLookbackDays = 365

// unknownKey labels breakdown groups whose grouped field is null.
const unknownKey = "unknown"

// reportingService implements the ReportingSvcFacade interface
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	now           func() time.Time
}

// NewReportingService creates a new reporting service
func NewReportingService(repo portsrepo.ReportingRepository) portssvc.ReportingSvcFacade {
	return &reportingService{
		reportingRepo: repo,
		now:           time.Now,
	}
}

// Ensure reportingService implements the ReportingSvcFacade interface
var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// SummaryTotals groups the entire record set by (category, user) and
// re-projects the groups into per-category and per-user totals. The
// per-user map only accumulates groups filed under the reserved "user"
// category; RangeBreakdown groups on the user field directly. The two
// derivations are intentionally kept distinct.
func (s *reportingService) SummaryTotals(ctx context.Context) (*domain.SummaryTotals, error) {
	grouped, err := s.reportingRepo.GroupedTotals(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve grouped totals")
		return nil, fmt.Errorf("failed to retrieve summary totals: %w", err)
	}

	totals := &domain.SummaryTotals{
		ByCategory: make(map[string]decimal.Decimal),
		ByUser:     make(map[string]decimal.Decimal),
	}
	for _, g := range grouped {
		category := string(g.Category)
		totals.ByCategory[category] = totals.ByCategory[category].Add(g.Total)
		if g.Category == domain.CategoryUser && g.User != nil {
			user := string(*g.User)
			totals.ByUser[user] = totals.ByUser[user].Add(g.Total)
		}
	}

	s.LogInfo(ctx, "Summary totals generated", slog.Int("group_count", len(grouped)))
	return totals, nil
}

// TimeSeries buckets the records of a window by period label and
// returns the non-empty buckets sorted ascending by label. Buckets with
// no matching records are omitted; callers needing a dense series must
// zero-fill missing buckets themselves.
func (s *reportingService) TimeSeries(ctx context.Context, params dto.TimeSeriesParams) ([]domain.SeriesPoint, error) {
	period := domain.Period(params.Period)
	if !period.Valid() {
		period = domain.PeriodMonth
	}
	window := s.seriesWindow(params)

	expenses, err := s.reportingRepo.ListForWindow(ctx, window)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve time series window",
			slog.String("period", string(period)))
		return nil, fmt.Errorf("failed to retrieve time series data: %w", err)
	}

	points := BucketByPeriod(expenses, period)

	s.LogInfo(ctx, "Time series generated",
		slog.String("period", string(period)),
		slog.Int("bucket_count", len(points)))
	return points, nil
}

// RangeBreakdown totals a date window by category and by the record's
// user field.
func (s *reportingService) RangeBreakdown(ctx context.Context, params dto.RangeParams) (*domain.RangeBreakdown, error) {
	window := s.rangeWindow(params)

	byCategory, err := s.reportingRepo.TotalsByCategory(ctx, window)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve category totals")
		return nil, fmt.Errorf("failed to retrieve range breakdown: %w", err)
	}
	byUser, err := s.reportingRepo.TotalsByUser(ctx, window)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve user totals")
		return nil, fmt.Errorf("failed to retrieve range breakdown: %w", err)
	}

	breakdown := &domain.RangeBreakdown{
		ByCategory: keyedTotalsToMap(byCategory),
		ByUser:     keyedTotalsToMap(byUser),
	}

	s.LogInfo(ctx, "Range breakdown generated",
		slog.Int("category_count", len(breakdown.ByCategory)),
		slog.Int("user_count", len(breakdown.ByUser)))
	return breakdown, nil
}

// AvailableYears returns the distinct calendar years present in
// matching records, descending.
func (s *reportingService) AvailableYears(ctx context.Context, params dto.ReportFilterParams) ([]int, error) {
	window := domain.ReportWindow{
		User:     filterUser(params.User),
		Category: filterCategory(params.Category),
	}

	years, err := s.reportingRepo.DistinctYears(ctx, window)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve available years")
		return nil, fmt.Errorf("failed to retrieve available years: %w", err)
	}
	return years, nil
}

// BucketByPeriod sums expenses into period buckets and returns the
// non-empty buckets ascending by label. Exported so the client cache
// can re-derive the same series locally.
func BucketByPeriod(expenses []domain.Expense, period domain.Period) []domain.SeriesPoint {
	buckets := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		label := period.BucketLabel(e.Date)
		buckets[label] = buckets[label].Add(e.Amount)
	}

	labels := make([]string, 0, len(buckets))
	for label := range buckets {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	points := make([]domain.SeriesPoint, 0, len(labels))
	for _, label := range labels {
		points = append(points, domain.SeriesPoint{Period: label, Total: buckets[label]})
	}
	return points
}

// seriesWindow resolves the time-series window: the upper bound is the
// explicit "to" or now, the lower bound is the explicit "from", else
// "days" back, else the default lookback.
func (s *reportingService) seriesWindow(params dto.TimeSeriesParams) domain.ReportWindow {
	window := domain.ReportWindow{
		User:     filterUser(params.User),
		Category: filterCategory(params.Category),
	}

	window.To = parseFlexibleTime(params.To)
	if window.To.IsZero() {
		window.To = s.now()
	}
	window.From = parseFlexibleTime(params.From)
	if window.From.IsZero() {
		days := parsePositiveInt(params.Days)
		if days == 0 {
			days = defaultLookbackDays
		}
		window.From = s.now().AddDate(0, 0, -days)
	}
	return window
}

// rangeWindow resolves the breakdown window: explicit bounds win and may
// be half-open, "days" alone sets a closed window ending now, and no
// bounds at all fall back to the default lookback.
func (s *reportingService) rangeWindow(params dto.RangeParams) domain.ReportWindow {
	window := domain.ReportWindow{
		User:     filterUser(params.User),
		Category: filterCategory(params.Category),
	}

	from := parseFlexibleTime(params.From)
	to := parseFlexibleTime(params.To)
	days := parsePositiveInt(params.Days)

	switch {
	case !from.IsZero() || !to.IsZero():
		window.From = from
		window.To = to
	case days > 0:
		window.From = s.now().AddDate(0, 0, -days)
		window.To = s.now()
	default:
		window.From = s.now().AddDate(0, 0, -defaultLookbackDays)
		window.To = s.now()
	}
	return window
}

func keyedTotalsToMap(totals []domain.KeyedTotal) map[string]decimal.Decimal {
	result := make(map[string]decimal.Decimal)
	for _, t := range totals {
		key := unknownKey
		if t.Key != nil && *t.Key != "" {
			key = *t.Key
		}
		result[key] = result[key].Add(t.Total)
	}
	return result
}
