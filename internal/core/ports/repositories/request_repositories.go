package repositories

import (
	"context"

	"github.com/clearbrook/fund_admin_app/internal/core/domain"
)

// RequestReader defines read operations for money-movement requests
type RequestReader interface {
	// FindRequestByID retrieves a specific request by its unique identifier.
	FindRequestByID(ctx context.Context, requestID string) (*domain.Request, error)

	// ListRequestsByAccounts retrieves a paginated list of requests belonging
	// to any of the given accounts using token-based pagination, newest first.
	ListRequestsByAccounts(ctx context.Context, accountIDs []string, limit int, nextToken *string) ([]domain.Request, *string, error)
}

// RequestWriter defines write operations for money-movement requests
type RequestWriter interface {
	// SaveRequest persists a new request.
	SaveRequest(ctx context.Context, request domain.Request) error

	// UpdateRequest updates the mutable fields of an existing request.
	UpdateRequest(ctx context.Context, request domain.Request) error

	// PostRequestWithOperation persists the posting of a request: the request
	// row update and the operation insert happen in one database transaction.
	// Returns ErrConflict when an operation for the same request and month
	// already exists (enforced by a partial unique index).
	PostRequestWithOperation(ctx context.Context, request domain.Request, operation domain.Operation) error
}

// RequestRepositoryFacade combines all request-related repository interfaces
type RequestRepositoryFacade interface {
	RequestReader
	RequestWriter
}

// RequestRepositoryWithTx extends RequestRepositoryFacade with transaction capabilities
type RequestRepositoryWithTx interface {
	RequestRepositoryFacade
	TransactionManager
}
