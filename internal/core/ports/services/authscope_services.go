package services

import (
	"context"
)

// AuthScopeSvcFacade resolves which accounts an acting identity may see and
// whether it may perform state-changing operations. Pure derivation over the
// account hierarchy; no side effects.
type AuthScopeSvcFacade interface {
	// VisibleAccountIDs computes the set of account IDs the actor may read:
	// an Admin sees every live account; a Director sees itself and everything
	// transitively beneath it; a Manager sees itself and its direct clients;
	// a Client sees itself plus accounts delegated to it via access grants.
	// Returns ErrNotFound when the actor does not resolve to a live account.
	VisibleAccountIDs(ctx context.Context, actorID string) (map[string]struct{}, error)

	// CanMutate reports whether the actor may perform state-changing
	// operations. True only for Manager, Director, and Admin roles.
	CanMutate(ctx context.Context, actorID string) (bool, error)
}
