package services

import (
	"context"

	"github.com/clearbrook/fund_admin_app/internal/core/domain"
	"github.com/clearbrook/fund_admin_app/internal/dto"
)

// RequestSvcFacade governs the money-movement request lifecycle.
type RequestSvcFacade interface {
	// SubmitRequest creates a new request in Pending (or Recurring) status for
	// an account visible to the actor.
	SubmitRequest(ctx context.Context, actorID string, req dto.SubmitRequestRequest) (*domain.Request, error)

	// UpdateRequest merges the patch into the request. Changing the amount of
	// an Approved request is rejected with ErrConflict.
	UpdateRequest(ctx context.Context, actorID string, requestID string, req dto.UpdateRequestRequest) (*domain.Request, error)

	// PostRequest records the request's operation in the ledger for the given
	// month and transitions Pending requests to Approved. A Recurring request
	// stays Recurring and may be posted once per calendar month.
	PostRequest(ctx context.Context, actorID string, requestID string, req dto.PostRequestRequest) (*domain.Request, *domain.Operation, error)

	// CancelRequest voids a Pending or Recurring request. Cancelling an
	// already-resolved request is not an error; the unchanged request is
	// returned with an informational message.
	CancelRequest(ctx context.Context, actorID string, requestID string) (*domain.Request, string, error)

	// MakeRecurring turns a Pending or Approved debit request into a
	// Recurring one.
	MakeRecurring(ctx context.Context, actorID string, requestID string) (*domain.Request, error)

	// ListRequests returns a page of requests for accounts visible to the actor.
	ListRequests(ctx context.Context, actorID string, params dto.ListRequestsParams) (*dto.ListRequestsResponse, error)
}
