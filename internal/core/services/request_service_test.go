package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/clearbrook/fund_admin_app/internal/apperrors"
	"github.com/clearbrook/fund_admin_app/internal/core/domain"
	portssvc "github.com/clearbrook/fund_admin_app/internal/core/ports/services"
	"github.com/clearbrook/fund_admin_app/internal/core/services"
	"github.com/clearbrook/fund_admin_app/internal/dto"
)

type RequestServiceTestSuite struct {
	suite.Suite
	mockRequestRepo   *MockRequestRepository
	mockOperationRepo *MockOperationRepository
	mockAuthScope     *MockAuthScope
	service           portssvc.RequestSvcFacade
}

func (suite *RequestServiceTestSuite) SetupTest() {
	suite.mockRequestRepo = new(MockRequestRepository)
	suite.mockOperationRepo = new(MockOperationRepository)
	suite.mockAuthScope = new(MockAuthScope)
	suite.service = services.NewRequestService(suite.mockRequestRepo, suite.mockOperationRepo, suite.mockAuthScope)
}

// --- SubmitRequest ---

func (suite *RequestServiceTestSuite) TestSubmitRequest_Success() {
	ctx := context.Background()
	req := dto.SubmitRequestRequest{
		AccountID: "acct-1",
		Amount:    decimal.NewFromInt(100),
	}

	suite.mockAuthScope.On("VisibleAccountIDs", ctx, "manager-1").Return(map[string]struct{}{"acct-1": {}}, nil).Once()
	suite.mockRequestRepo.On("SaveRequest", ctx, mock.MatchedBy(func(r domain.Request) bool {
		return r.AccountID == "acct-1" && r.Status == domain.StatusPending && r.Amount.Equal(decimal.NewFromInt(100))
	})).Return(nil).Once()

	request, err := suite.service.SubmitRequest(ctx, "manager-1", req)

	suite.Require().NoError(err)
	suite.Require().NotNil(request)
	suite.Equal(domain.StatusPending, request.Status)
	suite.NotEmpty(request.RequestID)
	suite.Equal("manager-1", request.CreatedBy)
	suite.mockRequestRepo.AssertExpectations(suite.T())
}

func (suite *RequestServiceTestSuite) TestSubmitRequest_RecurringDebit() {
	ctx := context.Background()
	req := dto.SubmitRequestRequest{
		AccountID: "acct-1",
		Amount:    decimal.NewFromInt(-500),
		Recurring: true,
	}

	suite.mockAuthScope.On("VisibleAccountIDs", ctx, "manager-1").Return(map[string]struct{}{"acct-1": {}}, nil).Once()
	suite.mockRequestRepo.On("SaveRequest", ctx, mock.MatchedBy(func(r domain.Request) bool {
		return r.Status == domain.StatusRecurring
	})).Return(nil).Once()

	request, err := suite.service.SubmitRequest(ctx, "manager-1", req)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusRecurring, request.Status)
}

func (suite *RequestServiceTestSuite) TestSubmitRequest_RecurringCreditRejected() {
	ctx := context.Background()
	req := dto.SubmitRequestRequest{
		AccountID: "acct-1",
		Amount:    decimal.NewFromInt(500),
		Recurring: true,
	}

	request, err := suite.service.SubmitRequest(ctx, "manager-1", req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(request)
}

func (suite *RequestServiceTestSuite) TestSubmitRequest_ZeroAmount() {
	ctx := context.Background()
	req := dto.SubmitRequestRequest{AccountID: "acct-1", Amount: decimal.Zero}

	request, err := suite.service.SubmitRequest(ctx, "manager-1", req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(request)
}

func (suite *RequestServiceTestSuite) TestSubmitRequest_HiddenAccountLooksMissing() {
	ctx := context.Background()
	req := dto.SubmitRequestRequest{AccountID: "acct-hidden", Amount: decimal.NewFromInt(100)}

	suite.mockAuthScope.On("VisibleAccountIDs", ctx, "client-1").Return(map[string]struct{}{"client-1": {}}, nil).Once()

	request, err := suite.service.SubmitRequest(ctx, "client-1", req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(request)
}

// --- UpdateRequest ---

func (suite *RequestServiceTestSuite) TestUpdateRequest_ApprovedAmountImmutable() {
	ctx := context.Background()
	existing := &domain.Request{
		RequestID: "req-1",
		AccountID: "acct-1",
		Amount:    decimal.NewFromInt(100),
		Status:    domain.StatusApproved,
	}
	newAmount := decimal.NewFromInt(200)

	suite.mockAuthScope.On("CanMutate", ctx, "manager-1").Return(true, nil).Once()
	suite.mockRequestRepo.On("FindRequestByID", ctx, "req-1").Return(existing, nil).Once()

	updated, err := suite.service.UpdateRequest(ctx, "manager-1", "req-1", dto.UpdateRequestRequest{Amount: &newAmount})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.Contains(err.Error(), "cannot change the amount of an approved request")
	suite.Nil(updated)
	suite.mockRequestRepo.AssertNotCalled(suite.T(), "UpdateRequest", mock.Anything, mock.Anything)
}

func (suite *RequestServiceTestSuite) TestUpdateRequest_SameAmountOnApprovedAllowed() {
	ctx := context.Background()
	existing := &domain.Request{
		RequestID: "req-1",
		AccountID: "acct-1",
		Amount:    decimal.NewFromInt(100),
		Status:    domain.StatusApproved,
	}
	sameAmount := decimal.NewFromInt(100)
	wire := "WIRE-42"

	suite.mockAuthScope.On("CanMutate", ctx, "manager-1").Return(true, nil).Once()
	suite.mockRequestRepo.On("FindRequestByID", ctx, "req-1").Return(existing, nil).Once()
	suite.mockRequestRepo.On("UpdateRequest", ctx, mock.MatchedBy(func(r domain.Request) bool {
		return r.WireConfirmation != nil && *r.WireConfirmation == wire
	})).Return(nil).Once()

	updated, err := suite.service.UpdateRequest(ctx, "manager-1", "req-1", dto.UpdateRequestRequest{
		Amount:           &sameAmount,
		WireConfirmation: &wire,
	})

	suite.Require().NoError(err)
	suite.Equal(wire, *updated.WireConfirmation)
}

func (suite *RequestServiceTestSuite) TestUpdateRequest_InvalidStatusJump() {
	ctx := context.Background()
	existing := &domain.Request{
		RequestID: "req-1",
		Amount:    decimal.NewFromInt(100),
		Status:    domain.StatusVoided,
	}
	target := domain.StatusApproved

	suite.mockAuthScope.On("CanMutate", ctx, "manager-1").Return(true, nil).Once()
	suite.mockRequestRepo.On("FindRequestByID", ctx, "req-1").Return(existing, nil).Once()

	updated, err := suite.service.UpdateRequest(ctx, "manager-1", "req-1", dto.UpdateRequestRequest{Status: &target})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.Nil(updated)
}

func (suite *RequestServiceTestSuite) TestUpdateRequest_ClientForbidden() {
	ctx := context.Background()
	suite.mockAuthScope.On("CanMutate", ctx, "client-1").Return(false, nil).Once()

	updated, err := suite.service.UpdateRequest(ctx, "client-1", "req-1", dto.UpdateRequestRequest{})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(updated)
}

// --- PostRequest ---

func (suite *RequestServiceTestSuite) TestPostRequest_PendingBecomesApproved() {
	ctx := context.Background()
	existing := &domain.Request{
		RequestID: "req-1",
		AccountID: "acct-1",
		Amount:    decimal.NewFromInt(100),
		Status:    domain.StatusPending,
	}

	suite.mockAuthScope.On("CanMutate", ctx, "manager-1").Return(true, nil).Once()
	suite.mockRequestRepo.On("FindRequestByID", ctx, "req-1").Return(existing, nil).Once()
	suite.mockOperationRepo.On("FindOperationsByRequest", ctx, "req-1").Return([]domain.Operation{}, nil).Once()
	suite.mockRequestRepo.On("PostRequestWithOperation", ctx,
		mock.MatchedBy(func(r domain.Request) bool { return r.Status == domain.StatusApproved }),
		mock.MatchedBy(func(op domain.Operation) bool {
			return op.Amount.Equal(decimal.NewFromInt(100)) && op.Month == 3 && op.Year == 2024 && op.Day == 31
		}),
	).Return(nil).Once()

	request, operation, err := suite.service.PostRequest(ctx, "manager-1", "req-1", dto.PostRequestRequest{
		WireAmount: decimal.NewFromInt(100),
		Adjustment: decimal.Zero,
		Month:      3,
		Year:       2024,
	})

	suite.Require().NoError(err)
	suite.Equal(domain.StatusApproved, request.Status)
	suite.Require().NotNil(operation)
	suite.True(operation.Amount.Equal(decimal.NewFromInt(100)))
	suite.Equal(31, operation.Day)
	suite.Require().NotNil(operation.RequestID)
	suite.Equal("req-1", *operation.RequestID)
	suite.mockRequestRepo.AssertExpectations(suite.T())
}

func (suite *RequestServiceTestSuite) TestPostRequest_AdjustmentAddedToWireAmount() {
	ctx := context.Background()
	existing := &domain.Request{
		RequestID: "req-1",
		AccountID: "acct-1",
		Amount:    decimal.NewFromInt(100),
		Status:    domain.StatusPending,
	}

	suite.mockAuthScope.On("CanMutate", ctx, "manager-1").Return(true, nil).Once()
	suite.mockRequestRepo.On("FindRequestByID", ctx, "req-1").Return(existing, nil).Once()
	suite.mockOperationRepo.On("FindOperationsByRequest", ctx, "req-1").Return([]domain.Operation{}, nil).Once()
	suite.mockRequestRepo.On("PostRequestWithOperation", ctx, mock.Anything, mock.MatchedBy(func(op domain.Operation) bool {
		return op.Amount.Equal(decimal.NewFromFloat(99.50))
	})).Return(nil).Once()

	_, operation, err := suite.service.PostRequest(ctx, "manager-1", "req-1", dto.PostRequestRequest{
		WireAmount: decimal.NewFromInt(100),
		Adjustment: decimal.NewFromFloat(-0.50),
		Month:      2,
		Year:       2024,
	})

	suite.Require().NoError(err)
	suite.True(operation.Amount.Equal(decimal.NewFromFloat(99.50)))
}

func (suite *RequestServiceTestSuite) TestPostRequest_PendingAlreadyPosted() {
	ctx := context.Background()
	existing := &domain.Request{
		RequestID: "req-1",
		AccountID: "acct-1",
		Amount:    decimal.NewFromInt(100),
		Status:    domain.StatusPending,
	}
	requestID := existing.RequestID

	suite.mockAuthScope.On("CanMutate", ctx, "manager-1").Return(true, nil).Once()
	suite.mockRequestRepo.On("FindRequestByID", ctx, "req-1").Return(existing, nil).Once()
	suite.mockOperationRepo.On("FindOperationsByRequest", ctx, "req-1").Return([]domain.Operation{
		{OperationID: "op-1", RequestID: &requestID, Month: 1, Year: 2024},
	}, nil).Once()

	_, _, err := suite.service.PostRequest(ctx, "manager-1", "req-1", dto.PostRequestRequest{
		WireAmount: decimal.NewFromInt(100),
		Month:      3,
		Year:       2024,
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockRequestRepo.AssertNotCalled(suite.T(), "PostRequestWithOperation", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RequestServiceTestSuite) TestPostRequest_RecurringOncePerMonth() {
	ctx := context.Background()
	requestID := "req-1"
	existing := &domain.Request{
		RequestID: requestID,
		AccountID: "acct-1",
		Amount:    decimal.NewFromInt(-500),
		Status:    domain.StatusRecurring,
	}
	postedJanuary := []domain.Operation{
		{OperationID: "op-1", RequestID: &requestID, Month: 1, Year: 2024},
	}

	// Same month again: conflict.
	suite.mockAuthScope.On("CanMutate", ctx, "manager-1").Return(true, nil).Twice()
	suite.mockRequestRepo.On("FindRequestByID", ctx, requestID).Return(existing, nil).Twice()
	suite.mockOperationRepo.On("FindOperationsByRequest", ctx, requestID).Return(postedJanuary, nil).Twice()

	_, _, err := suite.service.PostRequest(ctx, "manager-1", requestID, dto.PostRequestRequest{
		WireAmount: decimal.NewFromInt(-500),
		Month:      1,
		Year:       2024,
	})
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)

	// Different month: succeeds and the request stays Recurring.
	suite.mockRequestRepo.On("PostRequestWithOperation", ctx,
		mock.MatchedBy(func(r domain.Request) bool { return r.Status == domain.StatusRecurring }),
		mock.MatchedBy(func(op domain.Operation) bool { return op.Month == 2 && op.Year == 2024 && op.Day == 29 }),
	).Return(nil).Once()

	request, operation, err := suite.service.PostRequest(ctx, "manager-1", requestID, dto.PostRequestRequest{
		WireAmount: decimal.NewFromInt(-500),
		Month:      2,
		Year:       2024,
	})
	suite.Require().NoError(err)
	suite.Equal(domain.StatusRecurring, request.Status)
	suite.Equal(2, operation.Month)
}

func (suite *RequestServiceTestSuite) TestPostRequest_UnpostableStatus() {
	ctx := context.Background()
	existing := &domain.Request{
		RequestID: "req-1",
		Amount:    decimal.NewFromInt(100),
		Status:    domain.StatusVoided,
	}

	suite.mockAuthScope.On("CanMutate", ctx, "manager-1").Return(true, nil).Once()
	suite.mockRequestRepo.On("FindRequestByID", ctx, "req-1").Return(existing, nil).Once()

	_, _, err := suite.service.PostRequest(ctx, "manager-1", "req-1", dto.PostRequestRequest{
		WireAmount: decimal.NewFromInt(100),
		Month:      3,
		Year:       2024,
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *RequestServiceTestSuite) TestPostRequest_LostRaceMapsToConflict() {
	ctx := context.Background()
	existing := &domain.Request{
		RequestID: "req-1",
		AccountID: "acct-1",
		Amount:    decimal.NewFromInt(100),
		Status:    domain.StatusPending,
	}

	suite.mockAuthScope.On("CanMutate", ctx, "manager-1").Return(true, nil).Once()
	suite.mockRequestRepo.On("FindRequestByID", ctx, "req-1").Return(existing, nil).Once()
	suite.mockOperationRepo.On("FindOperationsByRequest", ctx, "req-1").Return([]domain.Operation{}, nil).Once()
	suite.mockRequestRepo.On("PostRequestWithOperation", ctx, mock.Anything, mock.Anything).
		Return(apperrors.NewConflictError("an operation for this request and month already exists")).Once()

	_, _, err := suite.service.PostRequest(ctx, "manager-1", "req-1", dto.PostRequestRequest{
		WireAmount: decimal.NewFromInt(100),
		Month:      3,
		Year:       2024,
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

// --- CancelRequest ---

func (suite *RequestServiceTestSuite) TestCancelRequest_PendingVoided() {
	ctx := context.Background()
	existing := &domain.Request{
		RequestID: "req-1",
		Amount:    decimal.NewFromInt(100),
		Status:    domain.StatusPending,
	}

	suite.mockAuthScope.On("CanMutate", ctx, "manager-1").Return(true, nil).Once()
	suite.mockRequestRepo.On("FindRequestByID", ctx, "req-1").Return(existing, nil).Once()
	suite.mockRequestRepo.On("UpdateRequest", ctx, mock.MatchedBy(func(r domain.Request) bool {
		return r.Status == domain.StatusVoided
	})).Return(nil).Once()

	request, message, err := suite.service.CancelRequest(ctx, "manager-1", "req-1")

	suite.Require().NoError(err)
	suite.Equal(domain.StatusVoided, request.Status)
	suite.Empty(message)
}

func (suite *RequestServiceTestSuite) TestCancelRequest_ResolvedIsInformational() {
	ctx := context.Background()
	existing := &domain.Request{
		RequestID: "req-1",
		Amount:    decimal.NewFromInt(100),
		Status:    domain.StatusApproved,
	}

	suite.mockAuthScope.On("CanMutate", ctx, "manager-1").Return(true, nil).Once()
	suite.mockRequestRepo.On("FindRequestByID", ctx, "req-1").Return(existing, nil).Once()

	request, message, err := suite.service.CancelRequest(ctx, "manager-1", "req-1")

	suite.Require().NoError(err)
	suite.Equal(domain.StatusApproved, request.Status)
	suite.NotEmpty(message)
	suite.mockRequestRepo.AssertNotCalled(suite.T(), "UpdateRequest", mock.Anything, mock.Anything)
}

// --- MakeRecurring ---

func (suite *RequestServiceTestSuite) TestMakeRecurring_ApprovedDebit() {
	ctx := context.Background()
	existing := &domain.Request{
		RequestID: "req-1",
		Amount:    decimal.NewFromInt(-250),
		Status:    domain.StatusApproved,
	}

	suite.mockAuthScope.On("CanMutate", ctx, "manager-1").Return(true, nil).Once()
	suite.mockRequestRepo.On("FindRequestByID", ctx, "req-1").Return(existing, nil).Once()
	suite.mockRequestRepo.On("UpdateRequest", ctx, mock.MatchedBy(func(r domain.Request) bool {
		return r.Status == domain.StatusRecurring
	})).Return(nil).Once()

	request, err := suite.service.MakeRecurring(ctx, "manager-1", "req-1")

	suite.Require().NoError(err)
	suite.Equal(domain.StatusRecurring, request.Status)
}

func (suite *RequestServiceTestSuite) TestMakeRecurring_CreditRejected() {
	ctx := context.Background()
	existing := &domain.Request{
		RequestID: "req-1",
		Amount:    decimal.NewFromInt(250),
		Status:    domain.StatusPending,
	}

	suite.mockAuthScope.On("CanMutate", ctx, "manager-1").Return(true, nil).Once()
	suite.mockRequestRepo.On("FindRequestByID", ctx, "req-1").Return(existing, nil).Once()

	request, err := suite.service.MakeRecurring(ctx, "manager-1", "req-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.Nil(request)
}

func (suite *RequestServiceTestSuite) TestMakeRecurring_VoidedRejected() {
	ctx := context.Background()
	existing := &domain.Request{
		RequestID: "req-1",
		Amount:    decimal.NewFromInt(-250),
		Status:    domain.StatusVoided,
	}

	suite.mockAuthScope.On("CanMutate", ctx, "manager-1").Return(true, nil).Once()
	suite.mockRequestRepo.On("FindRequestByID", ctx, "req-1").Return(existing, nil).Once()

	request, err := suite.service.MakeRecurring(ctx, "manager-1", "req-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.Nil(request)
}

// --- ListRequests ---

func (suite *RequestServiceTestSuite) TestListRequests_ScopedToVisibleAccounts() {
	ctx := context.Background()
	visible := map[string]struct{}{"acct-1": {}}
	requests := []domain.Request{
		{RequestID: "req-1", AccountID: "acct-1", Amount: decimal.NewFromInt(100), Status: domain.StatusPending},
	}

	suite.mockAuthScope.On("VisibleAccountIDs", ctx, "manager-1").Return(visible, nil).Once()
	suite.mockRequestRepo.On("ListRequestsByAccounts", ctx, []string{"acct-1"}, 20, (*string)(nil)).
		Return(requests, nil, nil).Once()

	resp, err := suite.service.ListRequests(ctx, "manager-1", dto.ListRequestsParams{})

	suite.Require().NoError(err)
	suite.Len(resp.Requests, 1)
	suite.Nil(resp.NextToken)
}

func TestRequestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RequestServiceTestSuite))
}
