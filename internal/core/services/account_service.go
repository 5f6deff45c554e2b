package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/clearbrook/fund_admin_app/internal/apperrors"
	"github.com/clearbrook/fund_admin_app/internal/core/domain"
	portsrepo "github.com/clearbrook/fund_admin_app/internal/core/ports/repositories"
	portssvc "github.com/clearbrook/fund_admin_app/internal/core/ports/services"
	"github.com/clearbrook/fund_admin_app/internal/dto"
	"github.com/clearbrook/fund_admin_app/internal/utils"
)

type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new account directory service.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, authScope portssvc.AuthScopeSvcFacade) portssvc.AccountSvcFacade {
	return &accountService{
		BaseService: BaseService{AuthScope: authScope},
		accountRepo: accountRepo,
	}
}

// Ensure accountService implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount persists a new account with its login credential.
func (s *accountService) CreateAccount(ctx context.Context, actorID string, req dto.CreateAccountRequest) (*domain.Account, error) {
	if err := s.EnsureCanMutate(ctx, actorID); err != nil {
		return nil, err
	}

	if _, err := domain.NewPeriod(req.OpeningMonth, req.OpeningYear); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if req.ManagerID != nil {
		manager, err := s.accountRepo.FindAccountByID(ctx, *req.ManagerID)
		if err != nil {
			return nil, apperrors.NewValidationError(fmt.Sprintf("manager account %s not found", *req.ManagerID))
		}
		// Clients hang off managers, managers off directors.
		if req.Role == domain.RoleClient && manager.Role != domain.RoleManager {
			return nil, apperrors.NewValidationError("a client's manager must hold the MANAGER role")
		}
		if req.Role == domain.RoleManager && manager.Role != domain.RoleDirector {
			return nil, apperrors.NewValidationError("a manager's manager must hold the DIRECTOR role")
		}
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	account := domain.Account{
		AccountID:      uuid.NewString(),
		Name:           req.Name,
		Email:          req.Email,
		Role:           req.Role,
		ManagerID:      req.ManagerID,
		OpeningBalance: req.OpeningBalance,
		OpeningMonth:   req.OpeningMonth,
		OpeningYear:    req.OpeningYear,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account, hash); err != nil {
		s.LogError(ctx, err, "Failed to save account", slog.String("email", req.Email))
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	s.LogInfo(ctx, "Account created",
		slog.String("account_id", account.AccountID),
		slog.String("role", string(account.Role)))
	return &account, nil
}

// GetAccountByID retrieves an account the actor is allowed to see.
func (s *accountService) GetAccountByID(ctx context.Context, actorID string, accountID string) (*domain.Account, error) {
	visible, err := s.AuthScope.VisibleAccountIDs(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if _, ok := visible[accountID]; !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("account %s not found", accountID))
	}
	return s.accountRepo.FindAccountByID(ctx, accountID)
}

// ListVisibleAccounts retrieves every account visible to the actor, sorted by
// name for stable presentation.
func (s *accountService) ListVisibleAccounts(ctx context.Context, actorID string) ([]domain.Account, error) {
	visible, err := s.AuthScope.VisibleAccountIDs(ctx, actorID)
	if err != nil {
		return nil, err
	}

	all, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	out := make([]domain.Account, 0, len(visible))
	for _, acc := range all {
		if _, ok := visible[acc.AccountID]; ok {
			out = append(out, acc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// GrantAccess delegates visibility of the actor's own account to another
// account. The grantor is always the actor; nobody can share someone else's
// account.
func (s *accountService) GrantAccess(ctx context.Context, actorID string, req dto.GrantAccessRequest) error {
	if req.GranteeAccountID == actorID {
		return apperrors.NewValidationError("cannot grant access to yourself")
	}
	if _, err := s.accountRepo.FindAccountByID(ctx, req.GranteeAccountID); err != nil {
		return err
	}

	now := time.Now()
	grant := domain.AccessGrant{
		GrantID:          uuid.NewString(),
		GrantorAccountID: actorID,
		GranteeAccountID: req.GranteeAccountID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	if err := s.accountRepo.SaveAccessGrant(ctx, grant); err != nil {
		s.LogError(ctx, err, "Failed to save access grant",
			slog.String("grantor", actorID),
			slog.String("grantee", req.GranteeAccountID))
		return fmt.Errorf("failed to save access grant: %w", err)
	}

	s.LogInfo(ctx, "Access granted",
		slog.String("grantor", actorID),
		slog.String("grantee", req.GranteeAccountID))
	return nil
}
