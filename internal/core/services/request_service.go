package services

import (
	"context"
	"errors"
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

// cancelResolvedMessage is returned when cancellation races an already-resolved
// request. Staff hit this often enough that it is informational, not an error.
const cancelResolvedMessage = "request is already resolved; cancellation had no effect"

type requestService struct {
	BaseService
	requestRepo   portsrepo.RequestRepositoryFacade
	operationRepo portsrepo.OperationRepositoryFacade
}

// NewRequestService creates a new request lifecycle service.
func NewRequestService(
	requestRepo portsrepo.RequestRepositoryFacade,
	operationRepo portsrepo.OperationRepositoryFacade,
	authScope portssvc.AuthScopeSvcFacade,
) portssvc.RequestSvcFacade {
	return &requestService{
		BaseService:   BaseService{AuthScope: authScope},
		requestRepo:   requestRepo,
		operationRepo: operationRepo,
	}
}

// Ensure requestService implements the RequestSvcFacade interface
var _ portssvc.RequestSvcFacade = (*requestService)(nil)

// SubmitRequest creates a new money-movement request.
func (s *requestService) SubmitRequest(ctx context.Context, actorID string, req dto.SubmitRequestRequest) (*domain.Request, error) {
	logger := s.GetLogger(ctx)

	if req.Amount.IsZero() {
		return nil, apperrors.NewValidationError("amount must be non-zero")
	}
	if req.Recurring && !req.Amount.IsNegative() {
		return nil, apperrors.NewValidationError("recurring requests must be debits")
	}

	visible, err := s.AuthScope.VisibleAccountIDs(ctx, actorID)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve visible accounts for submit", slog.String("actor_id", actorID))
		return nil, err
	}
	if _, ok := visible[req.AccountID]; !ok {
		// Hidden accounts look identical to missing ones.
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("account %s not found", req.AccountID))
	}

	status := domain.StatusPending
	if req.Recurring {
		status = domain.StatusRecurring
	}

	now := time.Now()
	request := domain.Request{
		RequestID:      uuid.NewString(),
		AccountID:      req.AccountID,
		Amount:         req.Amount,
		Status:         status,
		BankAccountRef: req.BankAccountRef,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	if err := s.requestRepo.SaveRequest(ctx, request); err != nil {
		s.LogError(ctx, err, "Failed to save request", slog.String("account_id", req.AccountID))
		return nil, fmt.Errorf("failed to save request: %w", err)
	}

	logger.Info("Request submitted",
		slog.String("request_id", request.RequestID),
		slog.String("account_id", request.AccountID),
		slog.String("status", string(request.Status)))
	return &request, nil
}

// UpdateRequest merges the patch into the request.
func (s *requestService) UpdateRequest(ctx context.Context, actorID string, requestID string, req dto.UpdateRequestRequest) (*domain.Request, error) {
	if err := s.EnsureCanMutate(ctx, actorID); err != nil {
		return nil, err
	}

	request, err := s.requestRepo.FindRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil && request.Status == domain.StatusApproved && !req.Amount.Equal(request.Amount) {
		return nil, apperrors.NewConflictError("cannot change the amount of an approved request")
	}
	if req.Status != nil && !request.Status.CanTransitionTo(*req.Status) {
		return nil, apperrors.NewConflictError(fmt.Sprintf("cannot transition request from %s to %s", request.Status, *req.Status))
	}

	if req.Amount != nil {
		request.Amount = *req.Amount
	}
	if req.Status != nil {
		request.Status = *req.Status
	}
	if req.WireConfirmation != nil {
		request.WireConfirmation = req.WireConfirmation
	}
	if req.BankAccountRef != nil {
		request.BankAccountRef = req.BankAccountRef
	}
	request.LastUpdatedAt = time.Now()
	request.LastUpdatedBy = actorID

	if err := s.requestRepo.UpdateRequest(ctx, *request); err != nil {
		s.LogError(ctx, err, "Failed to update request", slog.String("request_id", requestID))
		return nil, fmt.Errorf("failed to update request: %w", err)
	}

	s.LogInfo(ctx, "Request updated", slog.String("request_id", requestID))
	return request, nil
}

// PostRequest records the request's operation in the ledger and advances the
// state machine.
func (s *requestService) PostRequest(ctx context.Context, actorID string, requestID string, req dto.PostRequestRequest) (*domain.Request, *domain.Operation, error) {
	logger := s.GetLogger(ctx)

	if err := s.EnsureCanMutate(ctx, actorID); err != nil {
		return nil, nil, err
	}

	period, err := domain.NewPeriod(req.Month, req.Year)
	if err != nil {
		return nil, nil, apperrors.NewValidationError(err.Error())
	}

	request, err := s.requestRepo.FindRequestByID(ctx, requestID)
	if err != nil {
		return nil, nil, err
	}
	if !request.Status.IsPostable() {
		return nil, nil, apperrors.NewConflictError(fmt.Sprintf("cannot post a request in status %s", request.Status))
	}

	// Fast-path idempotency check. The partial unique index on
	// (request_id, month, year) is the authoritative guard; this query just
	// turns the common double-post into a friendly error without burning a
	// transaction.
	existing, err := s.operationRepo.FindOperationsByRequest(ctx, requestID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to check existing operations: %w", err)
	}
	for _, op := range existing {
		if request.Status == domain.StatusPending {
			return nil, nil, apperrors.NewConflictError("request has already been posted")
		}
		if op.Period() == period {
			return nil, nil, apperrors.NewConflictError(fmt.Sprintf("request has already been posted for %s", period))
		}
	}

	now := time.Now()
	operation := domain.Operation{
		OperationID: uuid.NewString(),
		AccountID:   request.AccountID,
		RequestID:   &request.RequestID,
		Amount:      req.WireAmount.Add(req.Adjustment),
		Month:       period.Month,
		Year:        period.Year,
		Day:         period.LastDay(),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	if request.Status == domain.StatusPending {
		request.Status = domain.StatusApproved
	}
	if req.WireConfirmation != nil {
		request.WireConfirmation = req.WireConfirmation
	}
	request.LastUpdatedAt = now
	request.LastUpdatedBy = actorID

	if err := s.requestRepo.PostRequestWithOperation(ctx, *request, operation); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			// Lost the race to a concurrent post; same answer as the fast path.
			return nil, nil, apperrors.NewConflictError(fmt.Sprintf("request has already been posted for %s", period))
		}
		s.LogError(ctx, err, "Failed to post request", slog.String("request_id", requestID))
		return nil, nil, fmt.Errorf("failed to post request: %w", err)
	}

	logger.Info("Request posted",
		slog.String("request_id", requestID),
		slog.String("operation_id", operation.OperationID),
		slog.String("period", period.String()),
		slog.String("amount", operation.Amount.String()))
	return request, &operation, nil
}

// CancelRequest voids a Pending or Recurring request. Past operations of a
// cancelled recurring request remain valid ledger history.
func (s *requestService) CancelRequest(ctx context.Context, actorID string, requestID string) (*domain.Request, string, error) {
	if err := s.EnsureCanMutate(ctx, actorID); err != nil {
		return nil, "", err
	}

	request, err := s.requestRepo.FindRequestByID(ctx, requestID)
	if err != nil {
		return nil, "", err
	}

	if !request.Status.IsPostable() {
		s.LogInfo(ctx, "Cancellation of resolved request ignored",
			slog.String("request_id", requestID),
			slog.String("status", string(request.Status)))
		return request, cancelResolvedMessage, nil
	}

	request.Status = domain.StatusVoided
	request.LastUpdatedAt = time.Now()
	request.LastUpdatedBy = actorID

	if err := s.requestRepo.UpdateRequest(ctx, *request); err != nil {
		s.LogError(ctx, err, "Failed to void request", slog.String("request_id", requestID))
		return nil, "", fmt.Errorf("failed to void request: %w", err)
	}

	s.LogInfo(ctx, "Request voided", slog.String("request_id", requestID))
	return request, "", nil
}

// MakeRecurring turns a Pending or Approved debit request into a standing one.
func (s *requestService) MakeRecurring(ctx context.Context, actorID string, requestID string) (*domain.Request, error) {
	if err := s.EnsureCanMutate(ctx, actorID); err != nil {
		return nil, err
	}

	request, err := s.requestRepo.FindRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if !request.IsDebit() {
		return nil, apperrors.NewConflictError("only debit requests can be made recurring")
	}
	if !request.Status.CanTransitionTo(domain.StatusRecurring) || request.Status == domain.StatusRecurring {
		return nil, apperrors.NewConflictError(fmt.Sprintf("cannot make a request in status %s recurring", request.Status))
	}

	request.Status = domain.StatusRecurring
	request.LastUpdatedAt = time.Now()
	request.LastUpdatedBy = actorID

	if err := s.requestRepo.UpdateRequest(ctx, *request); err != nil {
		s.LogError(ctx, err, "Failed to make request recurring", slog.String("request_id", requestID))
		return nil, fmt.Errorf("failed to make request recurring: %w", err)
	}

	s.LogInfo(ctx, "Request made recurring", slog.String("request_id", requestID))
	return request, nil
}

// ListRequests returns a page of requests for accounts visible to the actor.
func (s *requestService) ListRequests(ctx context.Context, actorID string, params dto.ListRequestsParams) (*dto.ListRequestsResponse, error) {
	visible, err := s.AuthScope.VisibleAccountIDs(ctx, actorID)
	if err != nil {
		return nil, err
	}

	accountIDs := make([]string, 0, len(visible))
	for id := range visible {
		accountIDs = append(accountIDs, id)
	}

	limit := params.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	requests, nextToken, err := s.requestRepo.ListRequestsByAccounts(ctx, accountIDs, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list requests", slog.String("actor_id", actorID))
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}

	return &dto.ListRequestsResponse{
		Requests:  dto.ToRequestResponses(requests),
		NextToken: nextToken,
	}, nil
}
