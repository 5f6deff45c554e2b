package dto

import (
	"github.com/clearbrook/fund_admin_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OperationResponse defines the data returned for a ledger operation.
type OperationResponse struct {
	OperationID string          `json:"operationID"`
	AccountID   string          `json:"accountID"`
	RequestID   *string         `json:"requestID,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Month       int             `json:"month"`
	Year        int             `json:"year"`
	Day         int             `json:"day"`
}

// ToOperationResponse converts a domain.Operation to an OperationResponse DTO.
func ToOperationResponse(o *domain.Operation) OperationResponse {
	return OperationResponse{
		OperationID: o.OperationID,
		AccountID:   o.AccountID,
		RequestID:   o.RequestID,
		Amount:      o.Amount,
		Month:       o.Month,
		Year:        o.Year,
		Day:         o.Day,
	}
}
