package dto

import (
	"time"

	"github.com/homefolio/expense_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest is the payload for creating an expense record.
// Amount accepts both a JSON number and a numeric string.
type CreateExpenseRequest struct {
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Category string          `json:"category" binding:"required"`
	User     *string         `json:"user"`
	Note     string          `json:"note"`
	Date     *time.Time      `json:"date"`
}

// ExpenseResponse is the canonical wire representation of a persisted
// expense record.
type ExpenseResponse struct {
	ID        string          `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	Category  string          `json:"category"`
	User      *string         `json:"user"`
	Note      string          `json:"note"`
	Date      time.Time       `json:"date"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// ListExpensesParams carries the raw query-string values of the list
// endpoint. Values are normalized permissively by the service: unknown
// enum values mean "no filter", malformed dates are ignored, unknown
// sort keys fall back to date.
type ListExpensesParams struct {
	Limit    string
	Days     string
	From     string
	To       string
	User     string
	Category string
	SortBy   string
	SortDir  string
}

// ListExpensesResponse is the envelope of the list endpoint.
type ListExpensesResponse struct {
	Ok    bool              `json:"ok"`
	Items []ExpenseResponse `json:"items"`
}

// CreateExpenseResponse is the envelope of the create endpoint.
type CreateExpenseResponse struct {
	Ok   bool            `json:"ok"`
	ID   string          `json:"id"`
	Item ExpenseResponse `json:"item"`
}

// DeleteExpenseResponse is the envelope of the delete endpoint.
type DeleteExpenseResponse struct {
	Ok bool `json:"ok"`
}

// ErrorResponse is the uniform failure envelope.
type ErrorResponse struct {
	Ok    bool   `json:"ok"`
	Error string `json:"error"`
}

// ToExpenseResponse converts a domain expense to its wire form.
func ToExpenseResponse(e domain.Expense) ExpenseResponse {
	var user *string
	if e.User != nil {
		u := string(*e.User)
		user = &u
	}
	return ExpenseResponse{
		ID:        e.ExpenseID,
		Amount:    e.Amount,
		Category:  string(e.Category),
		User:      user,
		Note:      e.Note,
		Date:      e.Date,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

// ToExpenseResponses converts a slice of domain expenses, returning an
// empty slice rather than nil so the envelope always carries an array.
func ToExpenseResponses(expenses []domain.Expense) []ExpenseResponse {
	items := make([]ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		items = append(items, ToExpenseResponse(e))
	}
	return items
}
