package services

import (
	"context"

	"github.com/clearbrook/fund_admin_app/internal/core/domain"
)

// GenerationResult is one item in the statement generation stream: either a
// persisted statement or the error that stopped one account's sequence.
// Exactly one of Statement and Err is set.
type GenerationResult struct {
	AccountID string
	Statement *domain.Statement
	Err       error
}

// StatementSvcFacade regenerates and serves monthly balance statements.
type StatementSvcFacade interface {
	// Generate recomputes statements for the given accounts from 'from'
	// through the latest published trade-interest month, replacing previously
	// generated rows in that window. It returns a finite stream the caller
	// must drain; one account's failure surfaces as an error item and does
	// not affect other accounts. Fails up front with ErrForbidden when the
	// actor may not mutate.
	Generate(ctx context.Context, actorID string, accountIDs []string, from domain.Period) (<-chan GenerationResult, error)

	// ListStatements returns the non-deleted statements of an account visible
	// to the actor, ascending by month.
	ListStatements(ctx context.Context, actorID string, accountID string) ([]domain.Statement, error)
}
