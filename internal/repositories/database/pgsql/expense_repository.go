package pgsql

import (
	"context"
	"fmt"

	"github.com/homefolio/expense_tracker_app/internal/apperrors"
	"github.com/homefolio/expense_tracker_app/internal/core/domain"
	portsrepo "github.com/homefolio/expense_tracker_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const expenseColumns = "expense_id, amount, category, user_name, note, expense_date, created_at, updated_at"

// expenseRepository implements the ExpenseRepository interface
type expenseRepository struct {
	BaseRepository
}

// NewExpenseRepository creates a new repository for expense records.
func NewExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepository {
	return &expenseRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// SaveExpense inserts a new expense record.
func (r *expenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	query := `
		INSERT INTO expenses (` + expenseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`

	var user *string
	if expense.User != nil {
		u := string(*expense.User)
		user = &u
	}

	_, err := r.Pool.Exec(ctx, query,
		expense.ExpenseID,
		expense.Amount,
		string(expense.Category),
		user,
		expense.Note,
		expense.Date,
		expense.CreatedAt,
		expense.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save expense %s: %w", expense.ExpenseID, err)
	}
	return nil
}

// ListExpenses returns records matching the filter, sorted by the
// whitelisted sort key and truncated when a limit applies.
func (r *expenseRepository) ListExpenses(ctx context.Context, filter domain.ExpenseFilter) ([]domain.Expense, error) {
	var args []any
	conds, args := windowConditions(domain.ReportWindow{
		From:     filter.From,
		To:       filter.To,
		User:     filter.User,
		Category: filter.Category,
	}, args)

	query := "SELECT " + expenseColumns + " FROM expenses" + whereClause(conds) + orderClause(filter)
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	return scanExpenses(rows)
}

// DeleteExpense permanently removes a record. A zero-row delete is a
// not-found outcome, distinct from a query fault.
func (r *expenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM expenses WHERE expense_id = $1;`, expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense %s: %w", expenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// orderClause renders the ORDER BY for a whitelisted sort key. The
// composite "all" key sorts by user, category and date in the same
// direction.
func orderClause(filter domain.ExpenseFilter) string {
	dir := "ASC"
	if filter.SortDesc {
		dir = "DESC"
	}

	switch filter.SortBy {
	case domain.SortByAll:
		return fmt.Sprintf(" ORDER BY user_name %s, category %s, expense_date %s", dir, dir, dir)
	case domain.SortByAmount:
		return " ORDER BY amount " + dir
	case domain.SortByCategory:
		return " ORDER BY category " + dir
	case domain.SortByUser:
		return " ORDER BY user_name " + dir
	default:
		return " ORDER BY expense_date " + dir
	}
}

// scanExpenses drains rows into domain expenses, handling the nullable
// user column.
func scanExpenses(rows pgx.Rows) ([]domain.Expense, error) {
	var result []domain.Expense
	for rows.Next() {
		var e domain.Expense
		var category string
		var user *string

		if err := rows.Scan(
			&e.ExpenseID,
			&e.Amount,
			&category,
			&user,
			&e.Note,
			&e.Date,
			&e.CreatedAt,
			&e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan expense row: %w", err)
		}

		e.Category = domain.ExpenseCategory(category)
		if user != nil {
			u := domain.ExpenseUser(*user)
			e.User = &u
		}
		result = append(result, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expense rows: %w", err)
	}

	if result == nil {
		result = []domain.Expense{}
	}
	return result, nil
}
