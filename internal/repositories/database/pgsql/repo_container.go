package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/clearbrook/fund_admin_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:       newPgxAccountRepository(dbPool),
		RequestRepo:       newPgxRequestRepository(dbPool),
		OperationRepo:     newPgxOperationRepository(dbPool),
		StatementRepo:     newPgxStatementRepository(dbPool),
		TradeInterestRepo: newPgxTradeInterestRepository(dbPool),
	}
}
