package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/clearbrook/fund_admin_app/internal/apperrors"
	"github.com/clearbrook/fund_admin_app/internal/core/domain"
	portssvc "github.com/clearbrook/fund_admin_app/internal/core/ports/services"
	"github.com/clearbrook/fund_admin_app/internal/core/services"
)

type AuthScopeServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	service         portssvc.AuthScopeSvcFacade

	admin    domain.Account
	director domain.Account
	manager  domain.Account
	clientA  domain.Account
	clientB  domain.Account
	all      []domain.Account
}

func (suite *AuthScopeServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewAuthScopeService(suite.mockAccountRepo)

	suite.admin = domain.Account{AccountID: "admin-1", Role: domain.RoleAdmin}
	suite.director = domain.Account{AccountID: "director-1", Role: domain.RoleDirector}
	directorID := suite.director.AccountID
	suite.manager = domain.Account{AccountID: "manager-1", Role: domain.RoleManager, ManagerID: &directorID}
	managerID := suite.manager.AccountID
	suite.clientA = domain.Account{AccountID: "client-a", Role: domain.RoleClient, ManagerID: &managerID}
	suite.clientB = domain.Account{AccountID: "client-b", Role: domain.RoleClient, ManagerID: &managerID}
	suite.all = []domain.Account{suite.admin, suite.director, suite.manager, suite.clientA, suite.clientB}
}

func (suite *AuthScopeServiceTestSuite) TestVisibleAccountIDs_Admin() {
	ctx := context.Background()
	suite.mockAccountRepo.On("FindAccountByID", ctx, "admin-1").Return(&suite.admin, nil).Once()
	suite.mockAccountRepo.On("ListAccounts", ctx).Return(suite.all, nil).Once()

	visible, err := suite.service.VisibleAccountIDs(ctx, "admin-1")

	suite.Require().NoError(err)
	suite.Len(visible, 5)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AuthScopeServiceTestSuite) TestVisibleAccountIDs_DirectorSeesSubtree() {
	ctx := context.Background()
	suite.mockAccountRepo.On("FindAccountByID", ctx, "director-1").Return(&suite.director, nil).Once()
	suite.mockAccountRepo.On("ListAccounts", ctx).Return(suite.all, nil).Once()

	visible, err := suite.service.VisibleAccountIDs(ctx, "director-1")

	suite.Require().NoError(err)
	suite.Len(visible, 4)
	suite.Contains(visible, "director-1")
	suite.Contains(visible, "manager-1")
	suite.Contains(visible, "client-a")
	suite.Contains(visible, "client-b")
	suite.NotContains(visible, "admin-1")
}

func (suite *AuthScopeServiceTestSuite) TestVisibleAccountIDs_ManagerSeesDirectClients() {
	ctx := context.Background()
	suite.mockAccountRepo.On("FindAccountByID", ctx, "manager-1").Return(&suite.manager, nil).Once()
	suite.mockAccountRepo.On("ListAccounts", ctx).Return(suite.all, nil).Once()

	visible, err := suite.service.VisibleAccountIDs(ctx, "manager-1")

	suite.Require().NoError(err)
	suite.Len(visible, 3)
	suite.Contains(visible, "manager-1")
	suite.Contains(visible, "client-a")
	suite.Contains(visible, "client-b")
}

func (suite *AuthScopeServiceTestSuite) TestVisibleAccountIDs_ClientSeesSelfAndGrants() {
	ctx := context.Background()
	suite.mockAccountRepo.On("FindAccountByID", ctx, "client-a").Return(&suite.clientA, nil).Once()
	suite.mockAccountRepo.On("ListAccessGrantsForGrantee", ctx, "client-a").Return([]domain.AccessGrant{
		{GrantID: "g1", GrantorAccountID: "client-b", GranteeAccountID: "client-a"},
	}, nil).Once()

	visible, err := suite.service.VisibleAccountIDs(ctx, "client-a")

	suite.Require().NoError(err)
	suite.Len(visible, 2)
	suite.Contains(visible, "client-a")
	suite.Contains(visible, "client-b")
}

// Manager visibility must be a subset of the director's, which must be a
// subset of the admin's.
func (suite *AuthScopeServiceTestSuite) TestVisibility_Monotonic() {
	ctx := context.Background()
	suite.mockAccountRepo.On("FindAccountByID", ctx, "manager-1").Return(&suite.manager, nil).Once()
	suite.mockAccountRepo.On("FindAccountByID", ctx, "director-1").Return(&suite.director, nil).Once()
	suite.mockAccountRepo.On("FindAccountByID", ctx, "admin-1").Return(&suite.admin, nil).Once()
	suite.mockAccountRepo.On("ListAccounts", ctx).Return(suite.all, nil).Times(3)

	managerVisible, err := suite.service.VisibleAccountIDs(ctx, "manager-1")
	suite.Require().NoError(err)
	directorVisible, err := suite.service.VisibleAccountIDs(ctx, "director-1")
	suite.Require().NoError(err)
	adminVisible, err := suite.service.VisibleAccountIDs(ctx, "admin-1")
	suite.Require().NoError(err)

	for id := range managerVisible {
		suite.Contains(directorVisible, id)
	}
	for id := range directorVisible {
		suite.Contains(adminVisible, id)
	}
}

func (suite *AuthScopeServiceTestSuite) TestVisibleAccountIDs_UnknownActor() {
	ctx := context.Background()
	suite.mockAccountRepo.On("FindAccountByID", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	visible, err := suite.service.VisibleAccountIDs(ctx, "ghost")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(visible)
}

func (suite *AuthScopeServiceTestSuite) TestCanMutate_ByRole() {
	ctx := context.Background()
	suite.mockAccountRepo.On("FindAccountByID", ctx, "client-a").Return(&suite.clientA, nil).Once()
	suite.mockAccountRepo.On("FindAccountByID", ctx, "manager-1").Return(&suite.manager, nil).Once()

	can, err := suite.service.CanMutate(ctx, "client-a")
	suite.Require().NoError(err)
	suite.False(can)

	can, err = suite.service.CanMutate(ctx, "manager-1")
	suite.Require().NoError(err)
	suite.True(can)
}

func TestAuthScopeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthScopeServiceTestSuite))
}
