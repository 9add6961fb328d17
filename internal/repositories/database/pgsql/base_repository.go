package pgsql

import (
	"fmt"
	"strings"

	"github.com/homefolio/expense_tracker_app/internal/core/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// windowConditions renders the WHERE fragments for a report window,
// appending bind arguments as needed. Zero time bounds and empty enum
// filters contribute nothing.
func windowConditions(window domain.ReportWindow, args []any) ([]string, []any) {
	var conds []string
	if !window.From.IsZero() {
		args = append(args, window.From)
		conds = append(conds, fmt.Sprintf("expense_date >= $%d", len(args)))
	}
	if !window.To.IsZero() {
		args = append(args, window.To)
		conds = append(conds, fmt.Sprintf("expense_date <= $%d", len(args)))
	}
	if window.User != "" {
		args = append(args, string(window.User))
		conds = append(conds, fmt.Sprintf("user_name = $%d", len(args)))
	}
	if window.Category != "" {
		args = append(args, string(window.Category))
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}
	return conds, args
}

// whereClause joins conditions into a WHERE clause, or returns the
// empty string when there are none.
func whereClause(conds []string) string {
	if len(conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(conds, " AND ")
}
