package pgsql

import (
	portsrepo "github.com/homefolio/expense_tracker_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider creates all pgsql-backed repositories sharing
// one connection pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		Expense:   NewExpenseRepository(pool),
		Reporting: NewReportingRepository(pool),
	}
}
