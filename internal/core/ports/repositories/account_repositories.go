package repositories

import (
	"context"
	"time"

	"github.com/clearbrook/fund_admin_app/internal/core/domain"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific non-deleted account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindCredentialsByEmail retrieves the account ID and password hash for a
	// live account by email. Used only by the login flow.
	FindCredentialsByEmail(ctx context.Context, email string) (string, string, error)

	// ListAccounts retrieves all non-deleted accounts. The full set is small
	// (one fund's clients and staff); visibility scoping walks it in memory.
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// ListAccessGrantsForGrantee retrieves the delegation grants that give the
	// grantee visibility into other accounts.
	ListAccessGrantsForGrantee(ctx context.Context, granteeAccountID string) ([]domain.AccessGrant, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account with its login credential hash.
	SaveAccount(ctx context.Context, account domain.Account, passwordHash string) error

	// UpdateAccount updates an existing account's details.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// SoftDeleteAccount marks an account as deleted.
	SoftDeleteAccount(ctx context.Context, accountID string, userID string, now time.Time) error

	// SaveAccessGrant persists a delegation grant.
	SaveAccessGrant(ctx context.Context, grant domain.AccessGrant) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
