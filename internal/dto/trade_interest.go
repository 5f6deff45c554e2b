package dto

import (
	"github.com/clearbrook/fund_admin_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PublishTradeInterestRequest defines the data needed to record a monthly rate.
type PublishTradeInterestRequest struct {
	Month     int             `json:"month" binding:"required,min=1,max=12"`
	Year      int             `json:"year" binding:"required,min=1900"`
	Rate      decimal.Decimal `json:"rate"`
	Published bool            `json:"published"`
}

// TradeInterestResponse defines the data returned for a monthly rate row.
type TradeInterestResponse struct {
	TradeInterestID string          `json:"tradeInterestID"`
	Month           int             `json:"month"`
	Year            int             `json:"year"`
	Rate            decimal.Decimal `json:"rate"`
	Published       bool            `json:"published"`
}

// ToTradeInterestResponse converts a domain.TradeInterest to its DTO.
func ToTradeInterestResponse(t *domain.TradeInterest) TradeInterestResponse {
	return TradeInterestResponse{
		TradeInterestID: t.TradeInterestID,
		Month:           t.Month,
		Year:            t.Year,
		Rate:            t.Rate,
		Published:       t.Published,
	}
}

// ToTradeInterestResponses converts a slice of domain rate rows to DTOs.
func ToTradeInterestResponses(ts []domain.TradeInterest) []TradeInterestResponse {
	out := make([]TradeInterestResponse, len(ts))
	for i := range ts {
		out[i] = ToTradeInterestResponse(&ts[i])
	}
	return out
}
