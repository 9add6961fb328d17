// Package client is the Go counterpart of the browser frontend: a typed
// HTTP client for the expense tracker API plus a local cache with
// optimistic mutations and client-side report derivation.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/homefolio/expense_tracker_app/internal/apperrors"
	"github.com/homefolio/expense_tracker_app/internal/core/domain"
	"github.com/homefolio/expense_tracker_app/internal/dto"
)

// Client is a typed HTTP client for the backend API. It is safe for
// concurrent use; the bearer token is attached to every request once
// set.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu    sync.RWMutex
	token string
}

// NewClient creates a client for the API at baseURL. A nil httpClient
// falls back to a client with a sane timeout.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{baseURL: baseURL, httpClient: httpClient}
}

// SetToken sets the bearer token attached to subsequent requests. An
// empty token clears it.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// Token returns the currently held bearer token.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Login exchanges the shared credentials for the application token. The
// token is retained on the client on success.
func (c *Client) Login(ctx context.Context, username, password string) (dto.LoginResponse, error) {
	var out dto.LoginResponse
	body := dto.LoginRequest{Username: username, Password: password}
	if err := c.do(ctx, http.MethodPost, "/api/login", nil, body, &out); err != nil {
		return dto.LoginResponse{}, err
	}
	c.SetToken(out.Token)
	return out, nil
}

// ListExpenses fetches expenses. A nil params fetches with the server's
// defaults.
func (c *Client) ListExpenses(ctx context.Context, params *dto.ListExpensesParams) ([]domain.Expense, error) {
	query := url.Values{}
	if params != nil {
		setNonEmpty(query, "limit", params.Limit)
		setNonEmpty(query, "days", params.Days)
		setNonEmpty(query, "from", params.From)
		setNonEmpty(query, "to", params.To)
		setNonEmpty(query, "user", params.User)
		setNonEmpty(query, "category", params.Category)
		setNonEmpty(query, "sortBy", params.SortBy)
		setNonEmpty(query, "sortDir", params.SortDir)
	}

	var out dto.ListExpensesResponse
	if err := c.do(ctx, http.MethodGet, "/api/expenses", query, nil, &out); err != nil {
		return nil, err
	}
	return fromExpenseResponses(out.Items), nil
}

// CreateExpense creates an expense and returns the server-confirmed
// record.
func (c *Client) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (domain.Expense, error) {
	var out dto.CreateExpenseResponse
	if err := c.do(ctx, http.MethodPost, "/api/expenses", nil, req, &out); err != nil {
		return domain.Expense{}, err
	}
	return fromExpenseResponse(out.Item), nil
}

// DeleteExpense deletes an expense by id. A missing record reports
// apperrors.ErrNotFound.
func (c *Client) DeleteExpense(ctx context.Context, id string) error {
	query := url.Values{}
	query.Set("id", id)
	var out dto.DeleteExpenseResponse
	return c.do(ctx, http.MethodDelete, "/api/expenses", query, nil, &out)
}

// do performs a request against the API and decodes the JSON envelope
// into out. Failure envelopes become errors; 404 maps to
// apperrors.ErrNotFound and 401 to apperrors.ErrUnauthorized.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= http.StatusBadRequest {
		var failure dto.ErrorResponse
		message := http.StatusText(resp.StatusCode)
		if json.Unmarshal(data, &failure) == nil && failure.Error != "" {
			message = failure.Error
		}
		switch resp.StatusCode {
		case http.StatusNotFound:
			return fmt.Errorf("%w: %s", apperrors.ErrNotFound, message)
		case http.StatusUnauthorized:
			return fmt.Errorf("%w: %s", apperrors.ErrUnauthorized, message)
		}
		return fmt.Errorf("api error (%d): %s", resp.StatusCode, message)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func setNonEmpty(query url.Values, key, value string) {
	if value != "" {
		query.Set(key, value)
	}
}

func fromExpenseResponse(r dto.ExpenseResponse) domain.Expense {
	var user *domain.ExpenseUser
	if r.User != nil {
		u := domain.ExpenseUser(*r.User)
		user = &u
	}
	return domain.Expense{
		ExpenseID: r.ID,
		Amount:    r.Amount,
		Category:  domain.ExpenseCategory(r.Category),
		User:      user,
		Note:      r.Note,
		Date:      r.Date,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func fromExpenseResponses(items []dto.ExpenseResponse) []domain.Expense {
	expenses := make([]domain.Expense, 0, len(items))
	for _, item := range items {
		expenses = append(expenses, fromExpenseResponse(item))
	}
	return expenses
}
