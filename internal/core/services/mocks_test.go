package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/clearbrook/fund_admin_app/internal/core/domain"
)

// --- Mock AccountRepository ---

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	var acct *domain.Account
	if args.Get(0) != nil {
		acct = args.Get(0).(*domain.Account)
	}
	return acct, args.Error(1)
}

func (m *MockAccountRepository) FindCredentialsByEmail(ctx context.Context, email string) (string, string, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	var accounts []domain.Account
	if args.Get(0) != nil {
		accounts = args.Get(0).([]domain.Account)
	}
	return accounts, args.Error(1)
}

func (m *MockAccountRepository) ListAccessGrantsForGrantee(ctx context.Context, granteeAccountID string) ([]domain.AccessGrant, error) {
	args := m.Called(ctx, granteeAccountID)
	var grants []domain.AccessGrant
	if args.Get(0) != nil {
		grants = args.Get(0).([]domain.AccessGrant)
	}
	return grants, args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account, passwordHash string) error {
	args := m.Called(ctx, account, passwordHash)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) SoftDeleteAccount(ctx context.Context, accountID string, userID string, now time.Time) error {
	args := m.Called(ctx, accountID, userID, now)
	return args.Error(0)
}

func (m *MockAccountRepository) SaveAccessGrant(ctx context.Context, grant domain.AccessGrant) error {
	args := m.Called(ctx, grant)
	return args.Error(0)
}

// --- Mock RequestRepository ---

type MockRequestRepository struct {
	mock.Mock
}

func (m *MockRequestRepository) FindRequestByID(ctx context.Context, requestID string) (*domain.Request, error) {
	args := m.Called(ctx, requestID)
	var req *domain.Request
	if args.Get(0) != nil {
		req = args.Get(0).(*domain.Request)
	}
	return req, args.Error(1)
}

func (m *MockRequestRepository) ListRequestsByAccounts(ctx context.Context, accountIDs []string, limit int, nextToken *string) ([]domain.Request, *string, error) {
	args := m.Called(ctx, accountIDs, limit, nextToken)
	var reqs []domain.Request
	if args.Get(0) != nil {
		reqs = args.Get(0).([]domain.Request)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return reqs, token, args.Error(2)
}

func (m *MockRequestRepository) SaveRequest(ctx context.Context, request domain.Request) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockRequestRepository) UpdateRequest(ctx context.Context, request domain.Request) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockRequestRepository) PostRequestWithOperation(ctx context.Context, request domain.Request, operation domain.Operation) error {
	args := m.Called(ctx, request, operation)
	return args.Error(0)
}

// --- Mock OperationRepository ---

type MockOperationRepository struct {
	mock.Mock
}

func (m *MockOperationRepository) FindOperationsByRequest(ctx context.Context, requestID string) ([]domain.Operation, error) {
	args := m.Called(ctx, requestID)
	var ops []domain.Operation
	if args.Get(0) != nil {
		ops = args.Get(0).([]domain.Operation)
	}
	return ops, args.Error(1)
}

func (m *MockOperationRepository) FindOperationsByAccountAndPeriods(ctx context.Context, accountID string, periods []domain.Period) ([]domain.Operation, error) {
	args := m.Called(ctx, accountID, periods)
	var ops []domain.Operation
	if args.Get(0) != nil {
		ops = args.Get(0).([]domain.Operation)
	}
	return ops, args.Error(1)
}

func (m *MockOperationRepository) SaveOperation(ctx context.Context, operation domain.Operation) error {
	args := m.Called(ctx, operation)
	return args.Error(0)
}

func (m *MockOperationRepository) SoftDeleteOperation(ctx context.Context, operationID string, userID string, now time.Time) error {
	args := m.Called(ctx, operationID, userID, now)
	return args.Error(0)
}

// --- Mock StatementRepository ---

type MockStatementRepository struct {
	mock.Mock
}

func (m *MockStatementRepository) ListStatementsByAccount(ctx context.Context, accountID string) ([]domain.Statement, error) {
	args := m.Called(ctx, accountID)
	var stmts []domain.Statement
	if args.Get(0) != nil {
		stmts = args.Get(0).([]domain.Statement)
	}
	return stmts, args.Error(1)
}

func (m *MockStatementRepository) ListStatementsByAccountFrom(ctx context.Context, accountID string, from domain.Period) ([]domain.Statement, error) {
	args := m.Called(ctx, accountID, from)
	var stmts []domain.Statement
	if args.Get(0) != nil {
		stmts = args.Get(0).([]domain.Statement)
	}
	return stmts, args.Error(1)
}

func (m *MockStatementRepository) FindStatementByAccountAndPeriod(ctx context.Context, accountID string, period domain.Period) (*domain.Statement, error) {
	args := m.Called(ctx, accountID, period)
	var stmt *domain.Statement
	if args.Get(0) != nil {
		stmt = args.Get(0).(*domain.Statement)
	}
	return stmt, args.Error(1)
}

func (m *MockStatementRepository) ReplaceStatements(ctx context.Context, accountID string, from domain.Period, statements []domain.Statement) error {
	args := m.Called(ctx, accountID, from, statements)
	return args.Error(0)
}

// --- Mock TradeInterestRepository ---

type MockTradeInterestRepository struct {
	mock.Mock
}

func (m *MockTradeInterestRepository) FindPublishedRate(ctx context.Context, period domain.Period) (*domain.TradeInterest, error) {
	args := m.Called(ctx, period)
	var rate *domain.TradeInterest
	if args.Get(0) != nil {
		rate = args.Get(0).(*domain.TradeInterest)
	}
	return rate, args.Error(1)
}

func (m *MockTradeInterestRepository) LatestPublishedPeriod(ctx context.Context) (domain.Period, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Period), args.Error(1)
}

func (m *MockTradeInterestRepository) ListTradeInterest(ctx context.Context) ([]domain.TradeInterest, error) {
	args := m.Called(ctx)
	var rates []domain.TradeInterest
	if args.Get(0) != nil {
		rates = args.Get(0).([]domain.TradeInterest)
	}
	return rates, args.Error(1)
}

func (m *MockTradeInterestRepository) SaveTradeInterest(ctx context.Context, rate domain.TradeInterest) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

// --- Mock AuthScope service ---

type MockAuthScope struct {
	mock.Mock
}

func (m *MockAuthScope) VisibleAccountIDs(ctx context.Context, actorID string) (map[string]struct{}, error) {
	args := m.Called(ctx, actorID)
	var visible map[string]struct{}
	if args.Get(0) != nil {
		visible = args.Get(0).(map[string]struct{})
	}
	return visible, args.Error(1)
}

func (m *MockAuthScope) CanMutate(ctx context.Context, actorID string) (bool, error) {
	args := m.Called(ctx, actorID)
	return args.Bool(0), args.Error(1)
}
