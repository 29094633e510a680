package services

import (
	"github.com/SscSPs/txn_dashboard/internal/core/ports"
	portsrepo "github.com/SscSPs/txn_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/txn_dashboard/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, seedSource ports.SeedSource) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Transaction = NewTransactionService(repos.TransactionRepo)
	container.Reporting = NewReportingService(repos.TransactionRepo)
	// The dashboard reuses the two read services so it shares their validation.
	container.Dashboard = NewDashboardService(container.Transaction, container.Reporting)
	container.Seed = NewSeedService(seedSource, repos.TransactionRepo)

	return container
}
