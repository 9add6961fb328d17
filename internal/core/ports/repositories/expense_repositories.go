package repositories

import (
	"context"

	"github.com/homefolio/expense_tracker_app/internal/core/domain"
)

// ExpenseRepository defines persistence operations for expense records.
type ExpenseRepository interface {
	// SaveExpense inserts a new expense record.
	SaveExpense(ctx context.Context, expense domain.Expense) error
	// ListExpenses returns records matching the filter, sorted and
	// truncated per the filter.
	ListExpenses(ctx context.Context, filter domain.ExpenseFilter) ([]domain.Expense, error)
	// DeleteExpense permanently removes a record. Returns
	// apperrors.ErrNotFound when no record matched.
	DeleteExpense(ctx context.Context, expenseID string) error
}
