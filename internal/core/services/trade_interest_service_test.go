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

type TradeInterestServiceTestSuite struct {
	suite.Suite
	mockRateRepo    *MockTradeInterestRepository
	mockAccountRepo *MockAccountRepository
	mockAuthScope   *MockAuthScope
	service         portssvc.TradeInterestSvcFacade
}

func (suite *TradeInterestServiceTestSuite) SetupTest() {
	suite.mockRateRepo = new(MockTradeInterestRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockAuthScope = new(MockAuthScope)
	suite.service = services.NewTradeInterestService(suite.mockRateRepo, suite.mockAccountRepo, suite.mockAuthScope)
}

func (suite *TradeInterestServiceTestSuite) TestPublishRate_AdminOnly() {
	ctx := context.Background()
	admin := &domain.Account{AccountID: "admin-1", Role: domain.RoleAdmin}
	req := dto.PublishTradeInterestRequest{
		Month:     3,
		Year:      2024,
		Rate:      decimal.RequireFromString("4.25"),
		Published: true,
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, "admin-1").Return(admin, nil).Once()
	suite.mockRateRepo.On("SaveTradeInterest", ctx, mock.MatchedBy(func(r domain.TradeInterest) bool {
		return r.Month == 3 && r.Year == 2024 && r.Published && r.Rate.Equal(decimal.RequireFromString("4.25"))
	})).Return(nil).Once()

	rate, err := suite.service.PublishRate(ctx, "admin-1", req)

	suite.Require().NoError(err)
	suite.True(rate.Published)
	suite.NotEmpty(rate.TradeInterestID)
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *TradeInterestServiceTestSuite) TestPublishRate_ManagerForbidden() {
	ctx := context.Background()
	manager := &domain.Account{AccountID: "manager-1", Role: domain.RoleManager}

	suite.mockAccountRepo.On("FindAccountByID", ctx, "manager-1").Return(manager, nil).Once()

	rate, err := suite.service.PublishRate(ctx, "manager-1", dto.PublishTradeInterestRequest{Month: 3, Year: 2024})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(rate)
	suite.mockRateRepo.AssertNotCalled(suite.T(), "SaveTradeInterest", mock.Anything, mock.Anything)
}

func (suite *TradeInterestServiceTestSuite) TestPublishRate_InvalidMonth() {
	ctx := context.Background()
	admin := &domain.Account{AccountID: "admin-1", Role: domain.RoleAdmin}

	suite.mockAccountRepo.On("FindAccountByID", ctx, "admin-1").Return(admin, nil).Once()

	rate, err := suite.service.PublishRate(ctx, "admin-1", dto.PublishTradeInterestRequest{Month: 13, Year: 2024})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(rate)
}

func (suite *TradeInterestServiceTestSuite) TestListRates_StaffOnly() {
	ctx := context.Background()
	rates := []domain.TradeInterest{
		{TradeInterestID: "ti-1", Month: 1, Year: 2024, Rate: decimal.NewFromInt(5), Published: true},
	}

	suite.mockAuthScope.On("CanMutate", ctx, "manager-1").Return(true, nil).Once()
	suite.mockRateRepo.On("ListTradeInterest", ctx).Return(rates, nil).Once()

	got, err := suite.service.ListRates(ctx, "manager-1")

	suite.Require().NoError(err)
	suite.Len(got, 1)
}

func (suite *TradeInterestServiceTestSuite) TestListRates_ClientForbidden() {
	ctx := context.Background()
	suite.mockAuthScope.On("CanMutate", ctx, "client-1").Return(false, nil).Once()

	got, err := suite.service.ListRates(ctx, "client-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(got)
}

func TestTradeInterestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TradeInterestServiceTestSuite))
}
