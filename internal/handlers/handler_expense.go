package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/homefolio/expense_tracker_app/internal/apperrors"
	portssvc "github.com/homefolio/expense_tracker_app/internal/core/ports/services"
	"github.com/homefolio/expense_tracker_app/internal/dto"
	"github.com/homefolio/expense_tracker_app/internal/middleware"
)

// expenseHandler handles HTTP requests for expense records
type expenseHandler struct {
	expenseService portssvc.ExpenseSvcFacade
}

// newExpenseHandler creates a new expenseHandler
func newExpenseHandler(es portssvc.ExpenseSvcFacade) *expenseHandler {
	return &expenseHandler{expenseService: es}
}

// registerExpenseRoutes registers the expense CRUD routes
func registerExpenseRoutes(rg *gin.RouterGroup, expenseService portssvc.ExpenseSvcFacade) {
	h := newExpenseHandler(expenseService)

	rg.GET("/expenses", h.listExpenses)
	rg.POST("/expenses", h.createExpense)
	rg.DELETE("/expenses", h.deleteExpense)
}

// listExpenses godoc
// @Summary List expense records
// @Description Lists expense records with optional date window, enum filters and sorting
// @Tags expenses
// @Produce json
// @Param limit query int false "Maximum records returned (absent: 100; invalid: unlimited)"
// @Param days query int false "Lookback window in whole days"
// @Param from query string false "Window start (RFC3339 or YYYY-MM-DD)"
// @Param to query string false "Window end (RFC3339 or YYYY-MM-DD)"
// @Param user query string false "User filter or 'all'"
// @Param category query string false "Category filter or 'all'"
// @Param sortBy query string false "date|amount|category|user|all" default(date)
// @Param sortDir query string false "asc|desc" default(desc)
// @Success 200 {object} dto.ListExpensesResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/expenses [get]
func (h *expenseHandler) listExpenses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	params := dto.ListExpensesParams{
		Limit:    c.Query("limit"),
		Days:     c.Query("days"),
		From:     c.Query("from"),
		To:       c.Query("to"),
		User:     c.Query("user"),
		Category: c.Query("category"),
		SortBy:   c.Query("sortBy"),
		SortDir:  c.Query("sortDir"),
	}

	expenses, err := h.expenseService.ListExpenses(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list expenses", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.ListExpensesResponse{Ok: true, Items: dto.ToExpenseResponses(expenses)})
}

// createExpense godoc
// @Summary Create an expense record
// @Description Persists a new expense record and returns its canonical representation
// @Tags expenses
// @Accept json
// @Produce json
// @Param expense body dto.CreateExpenseRequest true "Expense payload"
// @Success 200 {object} dto.CreateExpenseResponse
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/expenses [post]
func (h *expenseHandler) createExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid create expense payload", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request payload: " + err.Error()})
		return
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Expense rejected", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to create expense", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}

	item := dto.ToExpenseResponse(*expense)
	c.JSON(http.StatusOK, dto.CreateExpenseResponse{Ok: true, ID: item.ID, Item: item})
}

// deleteExpense godoc
// @Summary Delete an expense record
// @Description Permanently removes the record identified by the id query parameter
// @Tags expenses
// @Produce json
// @Param id query string true "Expense id"
// @Success 200 {object} dto.DeleteExpenseResponse
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/expenses [delete]
func (h *expenseHandler) deleteExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	expenseID := c.Query("id")

	if err := h.expenseService.DeleteExpense(c.Request.Context(), expenseID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Delete of unknown expense", slog.String("expense_id", expenseID))
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Not found"})
			return
		}
		logger.Error("Failed to delete expense", slog.String("expense_id", expenseID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.DeleteExpenseResponse{Ok: true})
}
