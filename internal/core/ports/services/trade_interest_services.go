package services

import (
	"context"

	"github.com/clearbrook/fund_admin_app/internal/core/domain"
	"github.com/clearbrook/fund_admin_app/internal/dto"
)

// TradeInterestSvcFacade manages the externally supplied monthly interest
// figures that statement generation consumes.
type TradeInterestSvcFacade interface {
	// PublishRate records (or updates) the rate for a calendar month.
	// Admin only.
	PublishRate(ctx context.Context, actorID string, req dto.PublishTradeInterestRequest) (*domain.TradeInterest, error)

	// ListRates returns every recorded rate row, ascending by month.
	ListRates(ctx context.Context, actorID string) ([]domain.TradeInterest, error)
}
