package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clearbrook/fund_admin_app/internal/apperrors"
	"github.com/clearbrook/fund_admin_app/internal/core/domain"
	portsrepo "github.com/clearbrook/fund_admin_app/internal/core/ports/repositories"
	"github.com/clearbrook/fund_admin_app/internal/models"
	"github.com/clearbrook/fund_admin_app/internal/utils/mapping"
)

const operationColumns = `operation_id, account_id, request_id, amount, month, year, day, deleted, created_at, created_by, last_updated_at, last_updated_by`

type PgxOperationRepository struct {
	BaseRepository
}

func newPgxOperationRepository(db *pgxpool.Pool) portsrepo.OperationRepositoryFacade {
	return &PgxOperationRepository{BaseRepository{Pool: db}}
}

// Ensure PgxOperationRepository implements portsrepo.OperationRepositoryFacade
var _ portsrepo.OperationRepositoryFacade = (*PgxOperationRepository)(nil)

func scanOperation(row pgx.Row) (*models.Operation, error) {
	var m models.Operation
	err := row.Scan(
		&m.OperationID,
		&m.AccountID,
		&m.RequestID,
		&m.Amount,
		&m.Month,
		&m.Year,
		&m.Day,
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

func collectOperations(rows pgx.Rows) ([]domain.Operation, error) {
	defer rows.Close()
	modelOps := []models.Operation{}
	for rows.Next() {
		m, err := scanOperation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan operation row: %w", err)
		}
		modelOps = append(modelOps, *m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating operation rows: %w", rows.Err())
	}
	return mapping.ToDomainOperationSlice(modelOps), nil
}

func (r *PgxOperationRepository) SaveOperation(ctx context.Context, operation domain.Operation) error {
	m := mapping.ToModelOperation(operation)
	query := `
        INSERT INTO operations (` + operationColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.OperationID,
		m.AccountID,
		m.RequestID,
		m.Amount,
		m.Month,
		m.Year,
		m.Day,
		m.Deleted,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save operation: %w", err)
	}
	return nil
}

func (r *PgxOperationRepository) FindOperationsByRequest(ctx context.Context, requestID string) ([]domain.Operation, error) {
	query := `
        SELECT ` + operationColumns + `
        FROM operations
        WHERE request_id = $1 AND deleted = false
        ORDER BY year ASC, month ASC;
    `
	rows, err := r.Pool.Query(ctx, query, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to query operations by request: %w", err)
	}
	return collectOperations(rows)
}

func (r *PgxOperationRepository) FindOperationsByAccountAndPeriods(ctx context.Context, accountID string, periods []domain.Period) ([]domain.Operation, error) {
	if len(periods) == 0 {
		return []domain.Operation{}, nil
	}

	months := make([]int, len(periods))
	years := make([]int, len(periods))
	for i, p := range periods {
		months[i] = p.Month
		years[i] = p.Year
	}

	// unnest pairs the month and year arrays positionally, so each requested
	// calendar month matches exactly.
	query := `
        SELECT ` + operationColumns + `
        FROM operations
        WHERE account_id = $1
          AND deleted = false
          AND (month, year) IN (SELECT * FROM unnest($2::int[], $3::int[]))
        ORDER BY year ASC, month ASC, day ASC;
    `
	rows, err := r.Pool.Query(ctx, query, accountID, months, years)
	if err != nil {
		return nil, fmt.Errorf("failed to query operations by account and months: %w", err)
	}
	return collectOperations(rows)
}

func (r *PgxOperationRepository) SoftDeleteOperation(ctx context.Context, operationID string, userID string, now time.Time) error {
	query := `
        UPDATE operations
        SET deleted = true, last_updated_at = $1, last_updated_by = $2
        WHERE operation_id = $3 AND deleted = false;
    `
	cmdTag, err := r.Pool.Exec(ctx, query, now, userID, operationID)
	if err != nil {
		return fmt.Errorf("failed to mark operation as deleted: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("operation not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}
