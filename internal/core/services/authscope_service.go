package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/clearbrook/fund_admin_app/internal/core/domain"
	portsrepo "github.com/clearbrook/fund_admin_app/internal/core/ports/repositories"
	portssvc "github.com/clearbrook/fund_admin_app/internal/core/ports/services"
)

// authScopeService resolves account visibility from the manager hierarchy and
// delegation grants. It is a pure read/derive layer over the account
// repository; every other service gates on it.
type authScopeService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAuthScopeService creates a new authorization scope service.
func NewAuthScopeService(accountRepo portsrepo.AccountRepositoryFacade) portssvc.AuthScopeSvcFacade {
	return &authScopeService{
		accountRepo: accountRepo,
	}
}

// Ensure authScopeService implements the AuthScopeSvcFacade interface
var _ portssvc.AuthScopeSvcFacade = (*authScopeService)(nil)

// VisibleAccountIDs computes the set of account IDs the actor may read.
func (s *authScopeService) VisibleAccountIDs(ctx context.Context, actorID string) (map[string]struct{}, error) {
	actor, err := s.accountRepo.FindAccountByID(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve acting account %s: %w", actorID, err)
	}

	visible := map[string]struct{}{actor.AccountID: {}}

	switch actor.Role {
	case domain.RoleAdmin:
		accounts, err := s.accountRepo.ListAccounts(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list accounts: %w", err)
		}
		for _, acc := range accounts {
			visible[acc.AccountID] = struct{}{}
		}

	case domain.RoleDirector:
		accounts, err := s.accountRepo.ListAccounts(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list accounts: %w", err)
		}
		collectSubtree(actor.AccountID, accounts, visible)

	case domain.RoleManager:
		accounts, err := s.accountRepo.ListAccounts(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list accounts: %w", err)
		}
		for _, acc := range accounts {
			if acc.ManagerID != nil && *acc.ManagerID == actor.AccountID {
				visible[acc.AccountID] = struct{}{}
			}
		}

	case domain.RoleClient:
		grants, err := s.accountRepo.ListAccessGrantsForGrantee(ctx, actor.AccountID)
		if err != nil {
			return nil, fmt.Errorf("failed to list access grants for %s: %w", actorID, err)
		}
		for _, g := range grants {
			visible[g.GrantorAccountID] = struct{}{}
		}
	}

	s.LogDebug(ctx, "Resolved visible accounts",
		slog.String("actor_id", actorID),
		slog.String("role", string(actor.Role)),
		slog.Int("count", len(visible)))
	return visible, nil
}

// CanMutate reports whether the actor may perform state-changing operations.
func (s *authScopeService) CanMutate(ctx context.Context, actorID string) (bool, error) {
	actor, err := s.accountRepo.FindAccountByID(ctx, actorID)
	if err != nil {
		return false, fmt.Errorf("failed to resolve acting account %s: %w", actorID, err)
	}
	return actor.Role.CanMutate(), nil
}

// collectSubtree adds every account transitively managed by rootID to the
// visible set by walking the manager forest breadth-first.
func collectSubtree(rootID string, accounts []domain.Account, visible map[string]struct{}) {
	children := make(map[string][]string, len(accounts))
	for _, acc := range accounts {
		if acc.ManagerID != nil {
			children[*acc.ManagerID] = append(children[*acc.ManagerID], acc.AccountID)
		}
	}

	queue := []string{rootID}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, childID := range children[current] {
			if _, seen := visible[childID]; seen {
				continue
			}
			visible[childID] = struct{}{}
			queue = append(queue, childID)
		}
	}
}
