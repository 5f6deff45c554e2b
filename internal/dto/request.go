package dto

import (
	"time"

	"github.com/clearbrook/fund_admin_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SubmitRequestRequest defines the data needed to submit a money-movement request.
type SubmitRequestRequest struct {
	AccountID      string          `json:"accountID" binding:"required"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	Recurring      bool            `json:"recurring"`
	BankAccountRef *string         `json:"bankAccountRef"` // Optional wire routing reference
}

// UpdateRequestRequest defines the fields staff may patch on a request.
// Pointers distinguish zero-value updates from fields not provided.
type UpdateRequestRequest struct {
	Amount           *decimal.Decimal      `json:"amount"`
	Status           *domain.RequestStatus `json:"status"`
	WireConfirmation *string               `json:"wireConfirmation"`
	BankAccountRef   *string               `json:"bankAccountRef"`
}

// PostRequestRequest defines the data needed to post a request into the ledger.
type PostRequestRequest struct {
	WireAmount       decimal.Decimal `json:"wireAmount" binding:"required"`
	Adjustment       decimal.Decimal `json:"adjustment"`
	Month            int             `json:"month" binding:"required,min=1,max=12"`
	Year             int             `json:"year" binding:"required,min=1900"`
	WireConfirmation *string         `json:"wireConfirmation"`
}

// RequestResponse defines the data returned for a request.
type RequestResponse struct {
	RequestID        string               `json:"requestID"`
	AccountID        string               `json:"accountID"`
	Amount           decimal.Decimal      `json:"amount"`
	Status           domain.RequestStatus `json:"status"`
	WireConfirmation *string              `json:"wireConfirmation,omitempty"`
	BankAccountRef   *string              `json:"bankAccountRef,omitempty"`
	CreatedAt        string               `json:"createdAt"`
}

// ToRequestResponse converts a domain.Request to a RequestResponse DTO.
func ToRequestResponse(r *domain.Request) RequestResponse {
	return RequestResponse{
		RequestID:        r.RequestID,
		AccountID:        r.AccountID,
		Amount:           r.Amount,
		Status:           r.Status,
		WireConfirmation: r.WireConfirmation,
		BankAccountRef:   r.BankAccountRef,
		CreatedAt:        r.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ToRequestResponses converts a slice of domain requests to response DTOs.
func ToRequestResponses(rs []domain.Request) []RequestResponse {
	out := make([]RequestResponse, len(rs))
	for i := range rs {
		out[i] = ToRequestResponse(&rs[i])
	}
	return out
}

// PostRequestResponse bundles the posted request and the operation it produced.
type PostRequestResponse struct {
	Request   RequestResponse   `json:"request"`
	Operation OperationResponse `json:"operation"`
}

// CancelRequestResponse carries the request plus an informational message for
// the already-resolved race case.
type CancelRequestResponse struct {
	Request RequestResponse `json:"request"`
	Message string          `json:"message,omitempty"`
}

// ListRequestsParams defines query parameters for listing requests.
type ListRequestsParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// ListRequestsResponse is a page of requests plus the cursor for the next page.
type ListRequestsResponse struct {
	Requests  []RequestResponse `json:"requests"`
	NextToken *string           `json:"nextToken,omitempty"`
}
