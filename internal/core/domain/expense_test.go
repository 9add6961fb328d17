package domain_test

import (
	"testing"

	"github.com/homefolio/expense_tracker_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestExpenseCategoryValid(t *testing.T) {
	valid := []domain.ExpenseCategory{
		domain.CategoryBasic,
		domain.CategoryBills,
		domain.CategoryFun,
		domain.CategoryFood,
		domain.CategoryOthers,
		domain.CategoryUser,
	}
	for _, c := range valid {
		assert.True(t, c.Valid(), "category %q should be valid", c)
	}

	assert.False(t, domain.ExpenseCategory("groceries").Valid())
	assert.False(t, domain.ExpenseCategory("").Valid())
	// Close but not exact: the slash spelling is part of the contract.
	assert.False(t, domain.ExpenseCategory("fun").Valid())
}

func TestExpenseUserValid(t *testing.T) {
	assert.True(t, domain.UserAaditya.Valid())
	assert.True(t, domain.UserArchana.Valid())
	assert.True(t, domain.UserRajesh.Valid())

	assert.False(t, domain.ExpenseUser("mallory").Valid())
	assert.False(t, domain.ExpenseUser("").Valid())
	assert.False(t, domain.ExpenseUser("Aaditya").Valid())
}

func TestSortFieldValid(t *testing.T) {
	for _, f := range []domain.SortField{
		domain.SortByDate,
		domain.SortByAmount,
		domain.SortByCategory,
		domain.SortByUser,
		domain.SortByAll,
	} {
		assert.True(t, f.Valid(), "sort field %q should be valid", f)
	}
	assert.False(t, domain.SortField("note").Valid())
	assert.False(t, domain.SortField("").Valid())
}
