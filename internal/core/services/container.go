package services

import (
	portsrepo "github.com/clearbrook/fund_admin_app/internal/core/ports/repositories"
	portssvc "github.com/clearbrook/fund_admin_app/internal/core/ports/services"
	"github.com/clearbrook/fund_admin_app/internal/platform/config"
)

// NewServiceContainer creates the service container with properly initialized
// dependencies. The authorization scope is built first since every other
// service gates on it.
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	authScope := NewAuthScopeService(repos.AccountRepo)

	return &portssvc.ServiceContainer{
		AuthScope: authScope,
		Account:   NewAccountService(repos.AccountRepo, authScope),
		Request:   NewRequestService(repos.RequestRepo, repos.OperationRepo, authScope),
		Statement: NewStatementService(
			repos.StatementRepo,
			repos.OperationRepo,
			repos.AccountRepo,
			repos.TradeInterestRepo,
			authScope,
			cfg.StatementWorkers,
		),
		TradeInterest: NewTradeInterestService(repos.TradeInterestRepo, repos.AccountRepo, authScope),
		Auth:          NewAuthService(repos.AccountRepo),
	}
}
