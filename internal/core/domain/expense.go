package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseCategory is the closed set of spending buckets a record can be
// filed under.
type ExpenseCategory string

const (
	CategoryBasic  ExpenseCategory = "basic"
	CategoryBills  ExpenseCategory = "bills"
	CategoryFun    ExpenseCategory = "fun/entertainment"
	CategoryFood   ExpenseCategory = "food"
	CategoryOthers ExpenseCategory = "others"
	// CategoryUser is a reserved bucket: the unscoped summary derives its
	// per-user totals only from records filed under this category.
	CategoryUser ExpenseCategory = "user"
)

// ExpenseUser identifies a household member an expense is attributed to.
type ExpenseUser string

const (
	UserAaditya ExpenseUser = "aaditya"
	UserArchana ExpenseUser = "archana"
	UserRajesh  ExpenseUser = "rajesh"
)

// Valid reports whether c is a member of the closed category set.
func (c ExpenseCategory) Valid() bool {
	switch c {
	case CategoryBasic, CategoryBills, CategoryFun, CategoryFood, CategoryOthers, CategoryUser:
		return true
	}
	return false
}

// Valid reports whether u is a known household member.
func (u ExpenseUser) Valid() bool {
	switch u {
	case UserAaditya, UserArchana, UserRajesh:
		return true
	}
	return false
}

// Expense is a single logged expense. Records are immutable after
// creation; the only mutation the system exposes is whole-record
// deletion.
type Expense struct {
	ExpenseID string          `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	Category  ExpenseCategory `json:"category"`
	User      *ExpenseUser    `json:"user"`
	Note      string          `json:"note"`
	Date      time.Time       `json:"date"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// SortField is a whitelisted sort key for expense listings.
type SortField string

const (
	SortByDate     SortField = "date"
	SortByAmount   SortField = "amount"
	SortByCategory SortField = "category"
	SortByUser     SortField = "user"
	// SortByAll sorts by user, then category, then date, all in the same
	// direction.
	SortByAll SortField = "all"
)

// Valid reports whether f is a whitelisted sort key.
func (f SortField) Valid() bool {
	switch f {
	case SortByDate, SortByAmount, SortByCategory, SortByUser, SortByAll:
		return true
	}
	return false
}

// ExpenseFilter is a normalized listing predicate. Zero times mean the
// corresponding bound is absent; empty User/Category mean no filter.
// Limit <= 0 means no truncation.
type ExpenseFilter struct {
	From     time.Time
	To       time.Time
	User     ExpenseUser
	Category ExpenseCategory
	SortBy   SortField
	SortDesc bool
	Limit    int
}
