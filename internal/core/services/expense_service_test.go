package services_test

import (
	"context"
	"testing"

	"github.com/homefolio/expense_tracker_app/internal/apperrors"
	"github.com/homefolio/expense_tracker_app/internal/core/domain"
	portssvc "github.com/homefolio/expense_tracker_app/internal/core/ports/services"
	"github.com/homefolio/expense_tracker_app/internal/core/services"
	"github.com/homefolio/expense_tracker_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ExpenseRepository ---
type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) ListExpenses(ctx context.Context, filter domain.ExpenseFilter) ([]domain.Expense, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	args := m.Called(ctx, expenseID)
	return args.Error(0)
}

// --- Test Suite ---
type ExpenseServiceTestSuite struct {
	suite.Suite
	mockRepo *MockExpenseRepository
	service  portssvc.ExpenseSvcFacade
}

func (suite *ExpenseServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockExpenseRepository)
	suite.service = services.NewExpenseService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *ExpenseServiceTestSuite) TestCreateExpense_Success() {
	ctx := context.Background()
	user := "aaditya"
	req := dto.CreateExpenseRequest{
		Amount:   decimal.NewFromFloat(42.50),
		Category: "food",
		User:     &user,
		Note:     "groceries",
	}

	suite.mockRepo.On("SaveExpense", ctx, mock.AnythingOfType("domain.Expense")).Return(nil).Once()

	expense, err := suite.service.CreateExpense(ctx, req)

	suite.NoError(err)
	suite.NotNil(expense)
	suite.NotEmpty(expense.ExpenseID)
	suite.Equal(domain.CategoryFood, expense.Category)
	suite.NotNil(expense.User)
	suite.Equal(domain.UserAaditya, *expense.User)
	suite.Equal("groceries", expense.Note)
	suite.True(decimal.NewFromFloat(42.50).Equal(expense.Amount))
	suite.False(expense.Date.IsZero())
	suite.Equal(expense.CreatedAt, expense.UpdatedAt)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_InvalidCategory() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{
		Amount:   decimal.NewFromInt(10),
		Category: "groceries",
	}

	expense, err := suite.service.CreateExpense(ctx, req)

	suite.Nil(expense)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveExpense", mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_UnknownUser() {
	ctx := context.Background()
	user := "mallory"
	req := dto.CreateExpenseRequest{
		Amount:   decimal.NewFromInt(10),
		Category: "food",
		User:     &user,
	}

	expense, err := suite.service.CreateExpense(ctx, req)

	suite.Nil(expense)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_EmptyUserMeansUnattributed() {
	ctx := context.Background()
	user := ""
	req := dto.CreateExpenseRequest{
		Amount:   decimal.NewFromInt(10),
		Category: "bills",
		User:     &user,
	}

	suite.mockRepo.On("SaveExpense", ctx, mock.MatchedBy(func(e domain.Expense) bool {
		return e.User == nil
	})).Return(nil).Once()

	expense, err := suite.service.CreateExpense(ctx, req)

	suite.NoError(err)
	suite.Nil(expense.User)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_NegativeAmount() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{
		Amount:   decimal.NewFromInt(-5),
		Category: "food",
	}

	expense, err := suite.service.CreateExpense(ctx, req)

	suite.Nil(expense)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ExpenseServiceTestSuite) TestListExpenses_Defaults() {
	ctx := context.Background()

	suite.mockRepo.On("ListExpenses", ctx, mock.MatchedBy(func(f domain.ExpenseFilter) bool {
		return f.Limit == 100 &&
			f.SortBy == domain.SortByDate &&
			f.SortDesc &&
			f.User == "" &&
			f.Category == "" &&
			f.From.IsZero() &&
			f.To.IsZero()
	})).Return([]domain.Expense{}, nil).Once()

	expenses, err := suite.service.ListExpenses(ctx, dto.ListExpensesParams{})

	suite.NoError(err)
	suite.NotNil(expenses)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestListExpenses_InvalidLimitMeansUnlimited() {
	ctx := context.Background()

	suite.mockRepo.On("ListExpenses", ctx, mock.MatchedBy(func(f domain.ExpenseFilter) bool {
		return f.Limit == 0
	})).Return([]domain.Expense{}, nil).Once()

	_, err := suite.service.ListExpenses(ctx, dto.ListExpensesParams{Limit: "plenty"})

	suite.NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestListExpenses_UnknownEnumsPassThrough() {
	ctx := context.Background()

	suite.mockRepo.On("ListExpenses", ctx, mock.MatchedBy(func(f domain.ExpenseFilter) bool {
		return f.User == "" && f.Category == "" && f.SortBy == domain.SortByDate
	})).Return([]domain.Expense{}, nil).Once()

	_, err := suite.service.ListExpenses(ctx, dto.ListExpensesParams{
		User:     "all",
		Category: "everything",
		SortBy:   "note",
	})

	suite.NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestListExpenses_ExplicitWindowAndSort() {
	ctx := context.Background()

	suite.mockRepo.On("ListExpenses", ctx, mock.MatchedBy(func(f domain.ExpenseFilter) bool {
		return f.From.Format("2006-01-02") == "2024-01-01" &&
			f.To.Format("2006-01-02") == "2024-02-01" &&
			f.User == domain.UserArchana &&
			f.Category == domain.CategoryFood &&
			f.SortBy == domain.SortByAmount &&
			!f.SortDesc
	})).Return([]domain.Expense{}, nil).Once()

	_, err := suite.service.ListExpenses(ctx, dto.ListExpensesParams{
		From:     "2024-01-01",
		To:       "2024-02-01",
		User:     "archana",
		Category: "food",
		SortBy:   "amount",
		SortDir:  "asc",
	})

	suite.NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestListExpenses_MalformedDatesIgnored() {
	ctx := context.Background()

	suite.mockRepo.On("ListExpenses", ctx, mock.MatchedBy(func(f domain.ExpenseFilter) bool {
		return f.From.IsZero() && f.To.IsZero()
	})).Return([]domain.Expense{}, nil).Once()

	_, err := suite.service.ListExpenses(ctx, dto.ListExpensesParams{
		From: "yesterday",
		To:   "01/02/2024",
	})

	suite.NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestListExpenses_DaysSetsLookback() {
	ctx := context.Background()

	suite.mockRepo.On("ListExpenses", ctx, mock.MatchedBy(func(f domain.ExpenseFilter) bool {
		return !f.From.IsZero() && f.To.IsZero()
	})).Return([]domain.Expense{}, nil).Once()

	_, err := suite.service.ListExpenses(ctx, dto.ListExpensesParams{Days: "30"})

	suite.NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestDeleteExpense_Success() {
	ctx := context.Background()
	suite.mockRepo.On("DeleteExpense", ctx, "exp-1").Return(nil).Once()

	err := suite.service.DeleteExpense(ctx, "exp-1")

	suite.NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestDeleteExpense_EmptyID() {
	ctx := context.Background()

	err := suite.service.DeleteExpense(ctx, "")

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteExpense", mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestDeleteExpense_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("DeleteExpense", ctx, "missing").Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteExpense(ctx, "missing")

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

// Run the suite
func TestExpenseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExpenseServiceTestSuite))
}

// A standalone sanity check that Atoi-style limit parsing accepts real
// numbers.
func TestListExpenses_NumericLimit(t *testing.T) {
	mockRepo := new(MockExpenseRepository)
	service := services.NewExpenseService(mockRepo)
	ctx := context.Background()

	mockRepo.On("ListExpenses", ctx, mock.MatchedBy(func(f domain.ExpenseFilter) bool {
		return f.Limit == 25
	})).Return([]domain.Expense{}, nil).Once()

	_, err := service.ListExpenses(ctx, dto.ListExpensesParams{Limit: "25"})
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}
