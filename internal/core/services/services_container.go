package services

import (
	portsrepo "github.com/homefolio/expense_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/homefolio/expense_tracker_app/internal/core/ports/services"
	"github.com/homefolio/expense_tracker_app/internal/platform/config"
)

// NewServiceContainer creates the service container with properly
// initialized dependencies.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, cfg *config.Config) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Expense:   NewExpenseService(repos.Expense),
		Reporting: NewReportingService(repos.Reporting),
		Auth:      NewAuthService(cfg.AppToken, cfg.HashedPassword, cfg.HashedUsernames),
	}
}
