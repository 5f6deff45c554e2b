package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clearbrook/fund_admin_app/internal/apperrors"
	"github.com/clearbrook/fund_admin_app/internal/core/domain"
	portsrepo "github.com/clearbrook/fund_admin_app/internal/core/ports/repositories"
	"github.com/clearbrook/fund_admin_app/internal/models"
	"github.com/clearbrook/fund_admin_app/internal/utils/mapping"
)

const statementColumns = `statement_id, account_id, month, year, opening_balance, gain_loss, net_operations, end_balance, deleted, created_at, created_by, last_updated_at, last_updated_by`

type PgxStatementRepository struct {
	BaseRepository
}

func newPgxStatementRepository(db *pgxpool.Pool) portsrepo.StatementRepositoryFacade {
	return &PgxStatementRepository{BaseRepository{Pool: db}}
}

// Ensure PgxStatementRepository implements portsrepo.StatementRepositoryFacade
var _ portsrepo.StatementRepositoryFacade = (*PgxStatementRepository)(nil)

func scanStatement(row pgx.Row) (*models.Statement, error) {
	var m models.Statement
	err := row.Scan(
		&m.StatementID,
		&m.AccountID,
		&m.Month,
		&m.Year,
		&m.OpeningBalance,
		&m.GainLoss,
		&m.NetOperations,
		&m.EndBalance,
		&m.Deleted,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func collectStatements(rows pgx.Rows) ([]domain.Statement, error) {
	defer rows.Close()
	modelStatements := []models.Statement{}
	for rows.Next() {
		m, err := scanStatement(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan statement row: %w", err)
		}
		modelStatements = append(modelStatements, *m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating statement rows: %w", rows.Err())
	}
	return mapping.ToDomainStatementSlice(modelStatements), nil
}

func (r *PgxStatementRepository) ListStatementsByAccount(ctx context.Context, accountID string) ([]domain.Statement, error) {
	query := `
        SELECT ` + statementColumns + `
        FROM statements
        WHERE account_id = $1 AND deleted = false
        ORDER BY year ASC, month ASC;
    `
	rows, err := r.Pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query statements: %w", err)
	}
	return collectStatements(rows)
}

func (r *PgxStatementRepository) ListStatementsByAccountFrom(ctx context.Context, accountID string, from domain.Period) ([]domain.Statement, error) {
	query := `
        SELECT ` + statementColumns + `
        FROM statements
        WHERE account_id = $1
          AND deleted = false
          AND (year, month) >= ($2, $3)
        ORDER BY year ASC, month ASC;
    `
	rows, err := r.Pool.Query(ctx, query, accountID, from.Year, from.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to query statements from %s: %w", from, err)
	}
	return collectStatements(rows)
}

func (r *PgxStatementRepository) FindStatementByAccountAndPeriod(ctx context.Context, accountID string, period domain.Period) (*domain.Statement, error) {
	query := `
        SELECT ` + statementColumns + `
        FROM statements
        WHERE account_id = $1 AND year = $2 AND month = $3 AND deleted = false;
    `
	m, err := scanStatement(r.Pool.QueryRow(ctx, query, accountID, period.Year, period.Month))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find statement for %s: %w", period, err)
	}
	stmt := mapping.ToDomainStatement(*m)
	return &stmt, nil
}

// ReplaceStatements soft-deletes the account's statements at or after 'from'
// and bulk-inserts the replacements inside one transaction, so a crash cannot
// leave the account with neither old nor new statements.
func (r *PgxStatementRepository) ReplaceStatements(ctx context.Context, accountID string, from domain.Period, statements []domain.Statement) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = r.Rollback(ctx, tx)
	}()

	softDeleteQuery := `
        UPDATE statements
        SET deleted = true
        WHERE account_id = $1
          AND deleted = false
          AND (year, month) >= ($2, $3);
    `
	if _, err := tx.Exec(ctx, softDeleteQuery, accountID, from.Year, from.Month); err != nil {
		return fmt.Errorf("failed to soft-delete statements from %s: %w", from, err)
	}

	if len(statements) > 0 {
		batch := &pgx.Batch{}
		insertQuery := `
            INSERT INTO statements (` + statementColumns + `)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
        `
		for _, stmt := range statements {
			m := mapping.ToModelStatement(stmt)
			batch.Queue(insertQuery,
				m.StatementID,
				m.AccountID,
				m.Month,
				m.Year,
				m.OpeningBalance,
				m.GainLoss,
				m.NetOperations,
				m.EndBalance,
				m.Deleted,
				m.CreatedAt,
				m.CreatedBy,
				m.LastUpdatedAt,
				m.LastUpdatedBy,
			)
		}

		results := tx.SendBatch(ctx, batch)
		for range statements {
			if _, err := results.Exec(); err != nil {
				_ = results.Close()
				return fmt.Errorf("failed to insert statement: %w", err)
			}
		}
		if err := results.Close(); err != nil {
			return fmt.Errorf("failed to close statement batch: %w", err)
		}
	}

	return r.Commit(ctx, tx)
}
