package services

import (
	"context"

	"github.com/homefolio/expense_tracker_app/internal/core/domain"
	"github.com/homefolio/expense_tracker_app/internal/dto"
)

// ExpenseSvcFacade defines the expense CRUD operations exposed to
// handlers.
type ExpenseSvcFacade interface {
	// CreateExpense validates the payload, assigns an id and timestamps,
	// and persists the record. Returns apperrors.ErrValidation (wrapped)
	// for enum or amount violations.
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (*domain.Expense, error)
	// ListExpenses normalizes the raw query parameters permissively and
	// returns matching records. Unknown enum or sort values fall back to
	// pass-through / defaults rather than erroring.
	ListExpenses(ctx context.Context, params dto.ListExpensesParams) ([]domain.Expense, error)
	// DeleteExpense removes a record permanently. Returns
	// apperrors.ErrNotFound when no record matched.
	DeleteExpense(ctx context.Context, expenseID string) error
}
