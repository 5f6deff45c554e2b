package repositories

import (
	"context"

	"github.com/clearbrook/fund_admin_app/internal/core/domain"
)

// StatementReader defines read operations for statements
type StatementReader interface {
	// ListStatementsByAccount retrieves the non-deleted statements of an
	// account in ascending chronological order.
	ListStatementsByAccount(ctx context.Context, accountID string) ([]domain.Statement, error)

	// ListStatementsByAccountFrom retrieves the non-deleted statements of an
	// account at or after the given month, ascending.
	ListStatementsByAccountFrom(ctx context.Context, accountID string, from domain.Period) ([]domain.Statement, error)

	// FindStatementByAccountAndPeriod retrieves the non-deleted statement of
	// an account for one calendar month. Returns ErrNotFound when absent.
	FindStatementByAccountAndPeriod(ctx context.Context, accountID string, period domain.Period) (*domain.Statement, error)
}

// StatementWriter defines write operations for statements
type StatementWriter interface {
	// ReplaceStatements soft-deletes the account's non-deleted statements at
	// or after 'from' and bulk-inserts the replacements, all in one database
	// transaction so a crash cannot leave the account with neither old nor
	// new statements.
	ReplaceStatements(ctx context.Context, accountID string, from domain.Period, statements []domain.Statement) error
}

// StatementRepositoryFacade combines all statement-related repository interfaces
type StatementRepositoryFacade interface {
	StatementReader
	StatementWriter
}
