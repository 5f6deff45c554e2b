package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/clearbrook/fund_admin_app/internal/apperrors"
	"github.com/clearbrook/fund_admin_app/internal/core/domain"
	portsrepo "github.com/clearbrook/fund_admin_app/internal/core/ports/repositories"
	portssvc "github.com/clearbrook/fund_admin_app/internal/core/ports/services"
	"github.com/clearbrook/fund_admin_app/internal/dto"
)

type tradeInterestService struct {
	BaseService
	rateRepo    portsrepo.TradeInterestRepositoryFacade
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewTradeInterestService creates a new trade interest service.
func NewTradeInterestService(
	rateRepo portsrepo.TradeInterestRepositoryFacade,
	accountRepo portsrepo.AccountRepositoryFacade,
	authScope portssvc.AuthScopeSvcFacade,
) portssvc.TradeInterestSvcFacade {
	return &tradeInterestService{
		BaseService: BaseService{AuthScope: authScope},
		rateRepo:    rateRepo,
		accountRepo: accountRepo,
	}
}

// Ensure tradeInterestService implements the TradeInterestSvcFacade interface
var _ portssvc.TradeInterestSvcFacade = (*tradeInterestService)(nil)

// PublishRate records or updates the rate row for a calendar month. Published
// rates feed statement generation, so only admins may set them.
func (s *tradeInterestService) PublishRate(ctx context.Context, actorID string, req dto.PublishTradeInterestRequest) (*domain.TradeInterest, error) {
	actor, err := s.accountRepo.FindAccountByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if actor.Role != domain.RoleAdmin {
		return nil, apperrors.ErrForbidden
	}

	if _, err := domain.NewPeriod(req.Month, req.Year); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	now := time.Now()
	rate := domain.TradeInterest{
		TradeInterestID: uuid.NewString(),
		Month:           req.Month,
		Year:            req.Year,
		Rate:            req.Rate,
		Published:       req.Published,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	if err := s.rateRepo.SaveTradeInterest(ctx, rate); err != nil {
		s.LogError(ctx, err, "Failed to save trade interest rate",
			slog.String("period", rate.Period().String()))
		return nil, fmt.Errorf("failed to save trade interest rate: %w", err)
	}

	s.LogInfo(ctx, "Trade interest rate recorded",
		slog.String("period", rate.Period().String()),
		slog.String("rate", rate.Rate.String()),
		slog.Bool("published", rate.Published))
	return &rate, nil
}

// ListRates returns every recorded rate row, ascending by month. Staff only;
// clients see interest already folded into their statements.
func (s *tradeInterestService) ListRates(ctx context.Context, actorID string) ([]domain.TradeInterest, error) {
	if err := s.EnsureCanMutate(ctx, actorID); err != nil {
		return nil, err
	}
	return s.rateRepo.ListTradeInterest(ctx)
}
