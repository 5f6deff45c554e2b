package repositories

import (
	"context"
	"time"

	"github.com/clearbrook/fund_admin_app/internal/core/domain"
)

// OperationReader defines read operations for ledger operations
type OperationReader interface {
	// FindOperationsByRequest retrieves the non-deleted operations created for
	// a request. Used by the posting idempotency check.
	FindOperationsByRequest(ctx context.Context, requestID string) ([]domain.Operation, error)

	// FindOperationsByAccountAndPeriods retrieves the non-deleted operations
	// for an account falling in any of the given calendar months.
	FindOperationsByAccountAndPeriods(ctx context.Context, accountID string, periods []domain.Period) ([]domain.Operation, error)
}

// OperationWriter defines write operations for ledger operations.
// Operations are append-only: amount, month, and year are never updated after
// creation. A wrong entry is soft-deleted and recreated.
type OperationWriter interface {
	// SaveOperation persists a new operation.
	SaveOperation(ctx context.Context, operation domain.Operation) error

	// SoftDeleteOperation marks an operation as deleted.
	SoftDeleteOperation(ctx context.Context, operationID string, userID string, now time.Time) error
}

// OperationRepositoryFacade combines all operation-related repository interfaces
type OperationRepositoryFacade interface {
	OperationReader
	OperationWriter
}
