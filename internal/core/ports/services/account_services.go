package services

import (
	"context"

	"github.com/clearbrook/fund_admin_app/internal/core/domain"
	"github.com/clearbrook/fund_admin_app/internal/dto"
)

// AccountSvcFacade provides the thin account directory surface backing the
// authorization scope: creation, lookup, and delegation grants.
type AccountSvcFacade interface {
	// CreateAccount persists a new account. Only mutating roles may create.
	CreateAccount(ctx context.Context, actorID string, req dto.CreateAccountRequest) (*domain.Account, error)

	// GetAccountByID retrieves an account the actor is allowed to see.
	GetAccountByID(ctx context.Context, actorID string, accountID string) (*domain.Account, error)

	// ListVisibleAccounts retrieves every account visible to the actor.
	ListVisibleAccounts(ctx context.Context, actorID string) ([]domain.Account, error)

	// GrantAccess delegates visibility of the actor's own account to another.
	GrantAccess(ctx context.Context, actorID string, req dto.GrantAccessRequest) error
}
