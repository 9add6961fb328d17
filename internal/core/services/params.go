package services

import (
	"strconv"
	"time"

	"github.com/homefolio/expense_tracker_app/internal/core/domain"
)

// Query-string values are normalized permissively throughout: unknown
// enum values mean "no filter", malformed dates are ignored rather than
// rejected, and unparseable numbers fall back to their absent behavior.
// Hardening any of this would be an API contract change.

var flexibleTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02",
}

// parseFlexibleTime parses an RFC3339 timestamp or a bare YYYY-MM-DD
// date. The zero time signals an absent or malformed value.
func parseFlexibleTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range flexibleTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}

// parsePositiveInt returns the parsed value when it is a positive
// integer, zero otherwise.
func parsePositiveInt(value string) int {
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return 0
	}
	return n
}

// filterUser returns the user filter when the raw value names a known
// household member; "all", empty and unknown values pass through as no
// filter.
func filterUser(raw string) domain.ExpenseUser {
	if u := domain.ExpenseUser(raw); u.Valid() {
		return u
	}
	return ""
}

// filterCategory returns the category filter when the raw value is a
// member of the closed set; "all", empty and unknown values pass
// through as no filter.
func filterCategory(raw string) domain.ExpenseCategory {
	if c := domain.ExpenseCategory(raw); c.Valid() {
		return c
	}
	return ""
}
