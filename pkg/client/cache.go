package client

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/homefolio/expense_tracker_app/internal/apperrors"
	"github.com/homefolio/expense_tracker_app/internal/core/domain"
	"github.com/homefolio/expense_tracker_app/internal/dto"
)

// CacheState tracks how trustworthy the locally held expense list is.
type CacheState string

const (
	// StateEmpty means nothing is held locally.
	StateEmpty CacheState = "empty"
	// StateHydrated means the list was restored from the store but has
	// not been confirmed against the server this session.
	StateHydrated CacheState = "hydrated"
	// StateSynced means the list reflects a server response from this
	// session.
	StateSynced CacheState = "synced"
)

// Cache holds the full expense list locally so reads and reports never
// wait on the network once loaded. Mutations go through the server but
// update the local list immediately; a failed delete rolls the list
// back to its pre-mutation snapshot.
type Cache struct {
	client *Client
	store  Store

	group singleflight.Group

	mu    sync.Mutex
	state CacheState
	items []domain.Expense
}

// NewCache creates a cache over client and store, restoring any
// persisted expense list and session token. Store read failures are
// not fatal; the cache just starts empty.
func NewCache(apiClient *Client, store Store) *Cache {
	c := &Cache{client: apiClient, store: store, state: StateEmpty}

	if data, ok, err := store.Get(authTokenKey); err == nil && ok {
		apiClient.SetToken(string(data))
	}
	if data, ok, err := store.Get(expensesCacheKey); err == nil && ok {
		var items []domain.Expense
		if json.Unmarshal(data, &items) == nil {
			sortExpenses(items)
			c.items = items
			c.state = StateHydrated
		}
	}
	return c
}

// State returns the current cache state.
func (c *Cache) State() CacheState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Items returns a copy of the cached expense list, sorted by date
// descending with amount descending as the tiebreaker.
func (c *Cache) Items() []domain.Expense {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.Expense(nil), c.items...)
}

// EnsureLoaded makes sure the cache holds data. A hydrated list counts
// as loaded, so only an empty cache triggers a fetch unless force is
// set; concurrent callers share a single fetch.
func (c *Cache) EnsureLoaded(ctx context.Context, force bool) error {
	c.mu.Lock()
	if c.state != StateEmpty && !force {
		c.mu.Unlock()
		return nil
	}
	c.mu.Unlock()

	_, err, _ := c.group.Do("load", func() (any, error) {
		items, err := c.client.ListExpenses(ctx, nil)
		if err != nil {
			return nil, err
		}
		sortExpenses(items)

		c.mu.Lock()
		c.items = items
		c.state = StateSynced
		c.mu.Unlock()

		return nil, c.persist()
	})
	return err
}

// Add creates the expense on the server and merges the confirmed record
// into the local list. A record with the same id is replaced rather
// than duplicated.
func (c *Cache) Add(ctx context.Context, req dto.CreateExpenseRequest) (domain.Expense, error) {
	created, err := c.client.CreateExpense(ctx, req)
	if err != nil {
		return domain.Expense{}, err
	}

	c.mu.Lock()
	replaced := false
	for i, item := range c.items {
		if item.ExpenseID == created.ExpenseID {
			c.items[i] = created
			replaced = true
			break
		}
	}
	if !replaced {
		c.items = append(c.items, created)
	}
	sortExpenses(c.items)
	c.mu.Unlock()

	return created, c.persist()
}

// Delete removes the expense optimistically: the local list is updated
// before the server call, and restored from the pre-call snapshot if
// the call fails. A server-side "not found" is tolerated since the
// record is gone either way.
func (c *Cache) Delete(ctx context.Context, id string) error {
	txn := Txn[[]domain.Expense]{
		Snapshot: func() []domain.Expense {
			return c.Items()
		},
		Apply: func() error {
			c.mu.Lock()
			kept := c.items[:0]
			for _, item := range c.items {
				if item.ExpenseID != id {
					kept = append(kept, item)
				}
			}
			c.items = kept
			c.mu.Unlock()
			return c.persist()
		},
		Attempt: func() error {
			return c.client.DeleteExpense(ctx, id)
		},
		Tolerate: func(err error) bool {
			return errors.Is(err, apperrors.ErrNotFound)
		},
		Restore: func(snapshot []domain.Expense) error {
			c.mu.Lock()
			c.items = snapshot
			c.mu.Unlock()
			return c.persist()
		},
	}
	return txn.Run()
}

// Login authenticates and persists the issued token so a restarted
// session stays logged in.
func (c *Cache) Login(ctx context.Context, username, password string) error {
	result, err := c.client.Login(ctx, username, password)
	if err != nil {
		return err
	}
	return c.store.Set(authTokenKey, []byte(result.Token))
}

// Logout drops the session token and the cached expense list together;
// a logged-out session must not retain another household member's data.
func (c *Cache) Logout() error {
	c.client.SetToken("")

	c.mu.Lock()
	c.items = nil
	c.state = StateEmpty
	c.mu.Unlock()

	return errors.Join(
		c.store.Delete(authTokenKey),
		c.store.Delete(expensesCacheKey),
	)
}

// persist writes the current list to the store.
func (c *Cache) persist() error {
	c.mu.Lock()
	items := append([]domain.Expense(nil), c.items...)
	c.mu.Unlock()

	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return c.store.Set(expensesCacheKey, data)
}

// sortExpenses orders by date descending, breaking ties by amount
// descending.
func sortExpenses(items []domain.Expense) {
	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].Date.Equal(items[j].Date) {
			return items[i].Date.After(items[j].Date)
		}
		return items[i].Amount.GreaterThan(items[j].Amount)
	})
}
