package pgsql

import (
	"context"
	"fmt"

	"github.com/homefolio/expense_tracker_app/internal/core/domain"
	portsrepo "github.com/homefolio/expense_tracker_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// NewReportingRepository creates a new reporting repository
func NewReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// GroupedTotals sums amounts over the entire record set grouped by
// (category, user).
func (r *reportingRepository) GroupedTotals(ctx context.Context) ([]domain.GroupedTotal, error) {
	query := `
		SELECT category, user_name, SUM(amount) AS total
		FROM expenses
		GROUP BY category, user_name
	`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying grouped totals: %w", err)
	}
	defer rows.Close()

	var result []domain.GroupedTotal
	for rows.Next() {
		var g domain.GroupedTotal
		var category string
		var user *string

		if err := rows.Scan(&category, &user, &g.Total); err != nil {
			return nil, fmt.Errorf("error scanning grouped totals row: %w", err)
		}

		g.Category = domain.ExpenseCategory(category)
		if user != nil {
			u := domain.ExpenseUser(*user)
			g.User = &u
		}
		result = append(result, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating grouped totals rows: %w", err)
	}

	if result == nil {
		result = []domain.GroupedTotal{}
	}
	return result, nil
}

// ListForWindow returns the records matching the window, unordered.
// Ordering is irrelevant here: callers bucket the rows themselves.
func (r *reportingRepository) ListForWindow(ctx context.Context, window domain.ReportWindow) ([]domain.Expense, error) {
	var args []any
	conds, args := windowConditions(window, args)

	query := "SELECT " + expenseColumns + " FROM expenses" + whereClause(conds)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying window records: %w", err)
	}
	defer rows.Close()

	return scanExpenses(rows)
}

// TotalsByCategory sums amounts within the window grouped by category.
func (r *reportingRepository) TotalsByCategory(ctx context.Context, window domain.ReportWindow) ([]domain.KeyedTotal, error) {
	return r.keyedTotals(ctx, "category", window)
}

// TotalsByUser sums amounts within the window grouped directly on the
// user field; records without a user land in the nil-key group.
func (r *reportingRepository) TotalsByUser(ctx context.Context, window domain.ReportWindow) ([]domain.KeyedTotal, error) {
	return r.keyedTotals(ctx, "user_name", window)
}

// DistinctYears returns the calendar years present in matching records,
// descending, without duplicates.
func (r *reportingRepository) DistinctYears(ctx context.Context, window domain.ReportWindow) ([]int, error) {
	var args []any
	conds, args := windowConditions(window, args)

	query := `
		SELECT DISTINCT EXTRACT(YEAR FROM expense_date)::int AS year
		FROM expenses` + whereClause(conds) + `
		ORDER BY year DESC
	`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying distinct years: %w", err)
	}
	defer rows.Close()

	var years []int
	for rows.Next() {
		var year int
		if err := rows.Scan(&year); err != nil {
			return nil, fmt.Errorf("error scanning year row: %w", err)
		}
		years = append(years, year)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating year rows: %w", err)
	}

	if years == nil {
		years = []int{}
	}
	return years, nil
}

// keyedTotals runs a single-key GROUP BY over the window. The key
// column is one of the two fixed column names above, never caller
// input.
func (r *reportingRepository) keyedTotals(ctx context.Context, keyColumn string, window domain.ReportWindow) ([]domain.KeyedTotal, error) {
	var args []any
	conds, args := windowConditions(window, args)

	query := fmt.Sprintf("SELECT %s, SUM(amount) AS total FROM expenses%s GROUP BY %s",
		keyColumn, whereClause(conds), keyColumn)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying totals by %s: %w", keyColumn, err)
	}
	defer rows.Close()

	var result []domain.KeyedTotal
	for rows.Next() {
		var key *string
		var total decimal.Decimal

		if err := rows.Scan(&key, &total); err != nil {
			return nil, fmt.Errorf("error scanning totals row: %w", err)
		}
		result = append(result, domain.KeyedTotal{Key: key, Total: total})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating totals rows: %w", err)
	}

	if result == nil {
		result = []domain.KeyedTotal{}
	}
	return result, nil
}
