package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/homefolio/expense_tracker_app/internal/apperrors"
	"github.com/homefolio/expense_tracker_app/internal/core/domain"
	portsrepo "github.com/homefolio/expense_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/homefolio/expense_tracker_app/internal/core/ports/services"
	"github.com/homefolio/expense_tracker_app/internal/dto"
)

// defaultListLimit is applied when the limit parameter is absent.
const defaultListLimit = 100

// expenseService implements the ExpenseSvcFacade interface
type expenseService struct {
	BaseService
	expenseRepo portsrepo.ExpenseRepository
	now         func() time.Time
}

// NewExpenseService creates a new expense service
func NewExpenseService(repo portsrepo.ExpenseRepository) portssvc.ExpenseSvcFacade {
	return &expenseService{
		expenseRepo: repo,
		now:         time.Now,
	}
}

// Ensure expenseService implements the ExpenseSvcFacade interface
var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

// CreateExpense validates the payload, assigns the id and bookkeeping
// timestamps, and persists the record.
func (s *expenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (*domain.Expense, error) {
	category := domain.ExpenseCategory(req.Category)
	if !category.Valid() {
		return nil, fmt.Errorf("%w: invalid category %q", apperrors.ErrValidation, req.Category)
	}

	var user *domain.ExpenseUser
	if req.User != nil && *req.User != "" {
		u := domain.ExpenseUser(*req.User)
		if !u.Valid() {
			return nil, fmt.Errorf("%w: unknown user %q", apperrors.ErrValidation, *req.User)
		}
		user = &u
	}

	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
	}

	now := s.now().UTC()
	date := now
	if req.Date != nil {
		date = *req.Date
	}

	expense := domain.Expense{
		ExpenseID: uuid.NewString(),
		Amount:    req.Amount,
		Category:  category,
		User:      user,
		Note:      req.Note,
		Date:      date,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		s.LogError(ctx, err, "Failed to save expense", slog.String("expense_id", expense.ExpenseID))
		return nil, fmt.Errorf("failed to save expense: %w", err)
	}

	s.LogInfo(ctx, "Expense created",
		slog.String("expense_id", expense.ExpenseID),
		slog.String("category", string(expense.Category)))
	return &expense, nil
}

// ListExpenses normalizes the raw listing parameters and fetches
// matching records.
func (s *expenseService) ListExpenses(ctx context.Context, params dto.ListExpensesParams) ([]domain.Expense, error) {
	filter := s.normalizeFilter(params)

	expenses, err := s.expenseRepo.ListExpenses(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expenses")
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return expenses, nil
}

// DeleteExpense removes a record permanently. A missing or unknown id
// is a not-found outcome, never a fault.
func (s *expenseService) DeleteExpense(ctx context.Context, expenseID string) error {
	if expenseID == "" {
		return apperrors.ErrNotFound
	}
	if err := s.expenseRepo.DeleteExpense(ctx, expenseID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Expense deleted", slog.String("expense_id", expenseID))
	return nil
}

// normalizeFilter applies the permissive listing policy: days sets a
// lookback floor that explicit from/to values override, enum filters
// only apply when they name a real member, and the sort key falls back
// to date.
func (s *expenseService) normalizeFilter(params dto.ListExpensesParams) domain.ExpenseFilter {
	filter := domain.ExpenseFilter{
		User:     filterUser(params.User),
		Category: filterCategory(params.Category),
		SortBy:   domain.SortByDate,
		SortDesc: params.SortDir != "asc",
	}

	if days := parsePositiveInt(params.Days); days > 0 {
		filter.From = s.now().AddDate(0, 0, -days)
	}
	if from := parseFlexibleTime(params.From); !from.IsZero() {
		filter.From = from
	}
	if to := parseFlexibleTime(params.To); !to.IsZero() {
		filter.To = to
	}

	if sortBy := domain.SortField(params.SortBy); sortBy.Valid() {
		filter.SortBy = sortBy
	}

	if params.Limit == "" {
		filter.Limit = defaultListLimit
	} else if n, err := strconv.Atoi(params.Limit); err == nil && n > 0 {
		filter.Limit = n
	}
	// An unparseable or non-positive limit leaves Limit at zero: no
	// truncation.

	return filter
}
