package repositories

import (
	"context"

	"github.com/clearbrook/fund_admin_app/internal/core/domain"
)

// TradeInterestReader defines read operations for monthly trade interest rates
type TradeInterestReader interface {
	// FindPublishedRate retrieves the published rate for a calendar month.
	// Returns ErrNotFound when no published rate exists for that month.
	FindPublishedRate(ctx context.Context, period domain.Period) (*domain.TradeInterest, error)

	// LatestPublishedPeriod returns the most recent calendar month with a
	// published rate. Returns ErrNotFound when nothing is published yet.
	LatestPublishedPeriod(ctx context.Context) (domain.Period, error)

	// ListTradeInterest retrieves all rate rows, published or not, ascending.
	ListTradeInterest(ctx context.Context) ([]domain.TradeInterest, error)
}

// TradeInterestWriter defines write operations for monthly trade interest rates
type TradeInterestWriter interface {
	// SaveTradeInterest inserts or updates the rate row for its month.
	SaveTradeInterest(ctx context.Context, rate domain.TradeInterest) error
}

// TradeInterestRepositoryFacade combines all trade-interest repository interfaces
type TradeInterestRepositoryFacade interface {
	TradeInterestReader
	TradeInterestWriter
}
