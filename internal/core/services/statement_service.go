package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/clearbrook/fund_admin_app/internal/apperrors"
	"github.com/clearbrook/fund_admin_app/internal/core/domain"
	portsrepo "github.com/clearbrook/fund_admin_app/internal/core/ports/repositories"
	portssvc "github.com/clearbrook/fund_admin_app/internal/core/ports/services"
)

const defaultGenerationWorkers = 4

// one hundred, for converting a percentage rate into a multiplier.
var hundred = decimal.NewFromInt(100)

type statementService struct {
	BaseService
	statementRepo portsrepo.StatementRepositoryFacade
	operationRepo portsrepo.OperationRepositoryFacade
	accountRepo   portsrepo.AccountRepositoryFacade
	rateRepo      portsrepo.TradeInterestRepositoryFacade
	workers       int
}

// NewStatementService creates a new statement generation service. workers
// bounds how many accounts regenerate concurrently.
func NewStatementService(
	statementRepo portsrepo.StatementRepositoryFacade,
	operationRepo portsrepo.OperationRepositoryFacade,
	accountRepo portsrepo.AccountRepositoryFacade,
	rateRepo portsrepo.TradeInterestRepositoryFacade,
	authScope portssvc.AuthScopeSvcFacade,
	workers int,
) portssvc.StatementSvcFacade {
	if workers <= 0 {
		workers = defaultGenerationWorkers
	}
	return &statementService{
		BaseService:   BaseService{AuthScope: authScope},
		statementRepo: statementRepo,
		operationRepo: operationRepo,
		accountRepo:   accountRepo,
		rateRepo:      rateRepo,
		workers:       workers,
	}
}

// Ensure statementService implements the StatementSvcFacade interface
var _ portssvc.StatementSvcFacade = (*statementService)(nil)

// Generate recomputes statements for the given accounts from 'from' through
// the latest published trade-interest month. Accounts run on a bounded worker
// pool; the months within one account are strictly sequential because each
// month's opening balance is the prior month's end balance.
func (s *statementService) Generate(ctx context.Context, actorID string, accountIDs []string, from domain.Period) (<-chan portssvc.GenerationResult, error) {
	logger := s.GetLogger(ctx)

	if err := from.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := s.EnsureCanMutate(ctx, actorID); err != nil {
		return nil, err
	}
	if len(accountIDs) == 0 {
		return nil, apperrors.NewValidationError("at least one account is required")
	}

	to, err := s.rateRepo.LatestPublishedPeriod(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewComputationError("no published trade interest rates exist yet")
		}
		return nil, fmt.Errorf("failed to determine latest published period: %w", err)
	}

	logger.Info("Statement generation started",
		slog.String("actor_id", actorID),
		slog.Int("accounts", len(accountIDs)),
		slog.String("from", from.String()),
		slog.String("to", to.String()))

	results := make(chan portssvc.GenerationResult)
	jobs := make(chan string)

	workers := s.workers
	if workers > len(accountIDs) {
		workers = len(accountIDs)
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for accountID := range jobs {
				if ctx.Err() != nil {
					results <- portssvc.GenerationResult{AccountID: accountID, Err: ctx.Err()}
					continue
				}
				s.runAccount(ctx, actorID, accountID, from, to, results)
			}
		}()
	}

	go func() {
		for _, id := range accountIDs {
			jobs <- id
		}
		close(jobs)
		wg.Wait()
		close(results)
	}()

	return results, nil
}

// runAccount regenerates one account's statements and pushes the outcome onto
// the results channel: one item per persisted statement, plus one error item
// if the month sequence stopped early. Months computed before the failure are
// still persisted.
func (s *statementService) runAccount(ctx context.Context, actorID, accountID string, from, to domain.Period, results chan<- portssvc.GenerationResult) {
	persisted, genErr := s.generateForAccount(ctx, actorID, accountID, from, to)
	for i := range persisted {
		results <- portssvc.GenerationResult{AccountID: accountID, Statement: &persisted[i]}
	}
	if genErr != nil {
		s.LogError(ctx, genErr, "Statement generation failed for account",
			slog.String("account_id", accountID))
		results <- portssvc.GenerationResult{AccountID: accountID, Err: genErr}
	}
}

// generateForAccount computes and persists the statement sequence for one
// account. It returns the persisted statements and, when the sequence stopped
// early, the error that stopped it. Both may be non-empty at once.
func (s *statementService) generateForAccount(ctx context.Context, actorID, accountID string, from, to domain.Period) ([]domain.Statement, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	start := domain.MaxPeriod(account.OpeningPeriod(), from)
	if start.After(to) {
		// Nothing publishable in range; leave existing statements alone.
		return nil, nil
	}

	opening, err := s.openingBalanceAt(ctx, account, start)
	if err != nil {
		return nil, err
	}

	months := domain.PeriodRange(start, to)
	opsByPeriod, err := s.loadOperations(ctx, accountID, months)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	computed := make([]domain.Statement, 0, len(months))
	var monthErr error

	for _, period := range months {
		if err := ctx.Err(); err != nil {
			monthErr = err
			break
		}

		rate, err := s.rateRepo.FindPublishedRate(ctx, period)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				monthErr = apperrors.NewComputationError(
					fmt.Sprintf("no published trade interest rate for %s", period))
			} else {
				monthErr = fmt.Errorf("failed to load trade interest rate for %s: %w", period, err)
			}
			break
		}

		gainLoss := opening.Mul(rate.Rate).Div(hundred).Round(2)
		netOps := sumOperationAmounts(opsByPeriod[period])
		endBalance := opening.Add(gainLoss).Add(netOps).Round(2)

		computed = append(computed, domain.Statement{
			StatementID:    uuid.NewString(),
			AccountID:      accountID,
			Month:          period.Month,
			Year:           period.Year,
			OpeningBalance: opening,
			GainLoss:       gainLoss,
			NetOperations:  netOps,
			EndBalance:     endBalance,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     actorID,
				LastUpdatedAt: now,
				LastUpdatedBy: actorID,
			},
		})

		// The next month opens on this month's computed close, not a re-read.
		opening = endBalance
	}

	// Persist whatever was computed, even on a partial run. Soft-delete of the
	// old window and the bulk insert share one transaction.
	if err := s.statementRepo.ReplaceStatements(ctx, accountID, start, computed); err != nil {
		return nil, fmt.Errorf("failed to persist statements: %w", err)
	}

	persisted, err := s.statementRepo.ListStatementsByAccountFrom(ctx, accountID, start)
	if err != nil {
		return nil, fmt.Errorf("failed to read back persisted statements: %w", err)
	}
	return persisted, monthErr
}

// openingBalanceAt resolves the opening balance for the first regenerated
// month: the account's opening balance when regeneration starts at the very
// beginning, otherwise the persisted end balance of the preceding month.
func (s *statementService) openingBalanceAt(ctx context.Context, account *domain.Account, start domain.Period) (decimal.Decimal, error) {
	if start == account.OpeningPeriod() {
		return account.OpeningBalance, nil
	}
	prior, err := s.statementRepo.FindStatementByAccountAndPeriod(ctx, account.AccountID, start.Prev())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return decimal.Zero, apperrors.NewComputationError(
				fmt.Sprintf("no statement for %s to chain the opening balance from", start.Prev()))
		}
		return decimal.Zero, fmt.Errorf("failed to load prior statement: %w", err)
	}
	return prior.EndBalance, nil
}

// loadOperations fetches the account's non-deleted operations for the month
// range in one query and groups them by month.
func (s *statementService) loadOperations(ctx context.Context, accountID string, months []domain.Period) (map[domain.Period][]domain.Operation, error) {
	ops, err := s.operationRepo.FindOperationsByAccountAndPeriods(ctx, accountID, months)
	if err != nil {
		return nil, fmt.Errorf("failed to load operations: %w", err)
	}
	grouped := make(map[domain.Period][]domain.Operation, len(months))
	for _, op := range ops {
		grouped[op.Period()] = append(grouped[op.Period()], op)
	}
	return grouped, nil
}

// ListStatements returns the non-deleted statements of an account visible to
// the actor, ascending by month.
func (s *statementService) ListStatements(ctx context.Context, actorID string, accountID string) ([]domain.Statement, error) {
	visible, err := s.AuthScope.VisibleAccountIDs(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if _, ok := visible[accountID]; !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("account %s not found", accountID))
	}
	return s.statementRepo.ListStatementsByAccount(ctx, accountID)
}

// sumOperationAmounts totals operation amounts rounded to 2 places.
func sumOperationAmounts(ops []domain.Operation) decimal.Decimal {
	total := decimal.Zero
	for _, op := range ops {
		total = total.Add(op.Amount)
	}
	return total.Round(2)
}
