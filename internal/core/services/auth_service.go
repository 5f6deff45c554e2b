package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/clearbrook/fund_admin_app/internal/apperrors"
	"github.com/clearbrook/fund_admin_app/internal/core/domain"
	portsrepo "github.com/clearbrook/fund_admin_app/internal/core/ports/repositories"
	portssvc "github.com/clearbrook/fund_admin_app/internal/core/ports/services"
	"github.com/clearbrook/fund_admin_app/internal/utils"
)

type authService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAuthService creates a new authentication service.
func NewAuthService(accountRepo portsrepo.AccountRepositoryFacade) portssvc.AuthSvcFacade {
	return &authService{
		accountRepo: accountRepo,
	}
}

// Ensure authService implements the AuthSvcFacade interface
var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Authenticate checks the email/password pair and returns the matching live
// account. Unknown email and wrong password produce the same ErrNotFound so
// login attempts cannot probe which addresses exist.
func (s *authService) Authenticate(ctx context.Context, email string, password string) (*domain.Account, error) {
	accountID, hash, err := s.accountRepo.FindCredentialsByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("invalid email or password")
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(password, hash) {
		s.LogInfo(ctx, "Login rejected, bad password", slog.String("account_id", accountID))
		return nil, apperrors.NewNotFoundError("invalid email or password")
	}

	return s.accountRepo.FindAccountByID(ctx, accountID)
}
