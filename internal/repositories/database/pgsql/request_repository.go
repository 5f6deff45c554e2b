package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clearbrook/fund_admin_app/internal/apperrors"
	"github.com/clearbrook/fund_admin_app/internal/core/domain"
	portsrepo "github.com/clearbrook/fund_admin_app/internal/core/ports/repositories"
	"github.com/clearbrook/fund_admin_app/internal/models"
	"github.com/clearbrook/fund_admin_app/internal/utils/mapping"
	"github.com/clearbrook/fund_admin_app/internal/utils/pagination"
)

const requestColumns = `request_id, account_id, amount, status, wire_confirmation, bank_account_ref, created_at, created_by, last_updated_at, last_updated_by`

type PgxRequestRepository struct {
	BaseRepository
}

func newPgxRequestRepository(db *pgxpool.Pool) portsrepo.RequestRepositoryFacade {
	return &PgxRequestRepository{BaseRepository{Pool: db}}
}

// Ensure PgxRequestRepository implements portsrepo.RequestRepositoryFacade
var _ portsrepo.RequestRepositoryFacade = (*PgxRequestRepository)(nil)

func scanRequest(row pgx.Row) (*models.Request, error) {
	var m models.Request
	err := row.Scan(
		&m.RequestID,
		&m.AccountID,
		&m.Amount,
		&m.Status,
		&m.WireConfirmation,
		&m.BankAccountRef,
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

func (r *PgxRequestRepository) SaveRequest(ctx context.Context, request domain.Request) error {
	m := mapping.ToModelRequest(request)
	query := `
        INSERT INTO requests (request_id, account_id, amount, status, wire_confirmation, bank_account_ref, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.RequestID,
		m.AccountID,
		m.Amount,
		m.Status,
		m.WireConfirmation,
		m.BankAccountRef,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save request: %w", err)
	}
	return nil
}

func (r *PgxRequestRepository) FindRequestByID(ctx context.Context, requestID string) (*domain.Request, error) {
	query := `
		SELECT ` + requestColumns + `
		FROM requests
		WHERE request_id = $1 AND status != 'DELETED';
	`
	m, err := scanRequest(r.Pool.QueryRow(ctx, query, requestID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find request by ID %s: %w", requestID, err)
	}
	req := mapping.ToDomainRequest(*m)
	return &req, nil
}

func (r *PgxRequestRepository) ListRequestsByAccounts(ctx context.Context, accountIDs []string, limit int, nextToken *string) ([]domain.Request, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	if len(accountIDs) == 0 {
		return []domain.Request{}, nil, nil
	}
	// Fetch one extra row to know whether another page exists.
	fetchLimit := limit + 1

	baseQuery := `
		SELECT ` + requestColumns + `
		FROM requests
		WHERE account_id = ANY($1) AND status != 'DELETED'
	`
	// Ordering must be stable: created_at DESC with request_id as tie-breaker.
	orderByClause := `ORDER BY created_at DESC, request_id DESC`

	args := []interface{}{accountIDs}
	query := baseQuery

	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		args = append(args, lastCreatedAt, lastID)
		query += ` AND (created_at, request_id) < ($2, $3)`
	}

	query += " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query requests", err)
	}
	defer rows.Close()

	modelRequests := make([]models.Request, 0, fetchLimit)
	for rows.Next() {
		m, err := scanRequest(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan request row", err)
		}
		modelRequests = append(modelRequests, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating request rows", err)
	}

	var nextTokenVal *string
	if len(modelRequests) > limit {
		last := modelRequests[limit-1]
		token := pagination.EncodeToken(last.CreatedAt, last.RequestID)
		nextTokenVal = &token
		modelRequests = modelRequests[:limit]
	}

	return mapping.ToDomainRequestSlice(modelRequests), nextTokenVal, nil
}

func (r *PgxRequestRepository) UpdateRequest(ctx context.Context, request domain.Request) error {
	m := mapping.ToModelRequest(request)
	query := `
        UPDATE requests
        SET amount = $1, status = $2, wire_confirmation = $3, bank_account_ref = $4, last_updated_at = $5, last_updated_by = $6
        WHERE request_id = $7 AND status != 'DELETED';
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.Amount,
		m.Status,
		m.WireConfirmation,
		m.BankAccountRef,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.RequestID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update request query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("request not found or deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}

// PostRequestWithOperation persists a posting atomically: the request row
// update and the operation insert share one transaction. The partial unique
// index on (request_id, month, year) WHERE NOT deleted turns a concurrent
// double-post into ErrConflict instead of a duplicate ledger entry.
func (r *PgxRequestRepository) PostRequestWithOperation(ctx context.Context, request domain.Request, operation domain.Operation) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = r.Rollback(ctx, tx)
	}()

	mReq := mapping.ToModelRequest(request)
	updateQuery := `
        UPDATE requests
        SET status = $1, wire_confirmation = $2, last_updated_at = $3, last_updated_by = $4
        WHERE request_id = $5 AND status != 'DELETED';
    `
	cmdTag, err := tx.Exec(ctx, updateQuery,
		mReq.Status,
		mReq.WireConfirmation,
		mReq.LastUpdatedAt,
		mReq.LastUpdatedBy,
		mReq.RequestID,
	)
	if err != nil {
		return fmt.Errorf("failed to update request during posting: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("request not found or deleted: %w", apperrors.ErrNotFound)
	}

	mOp := mapping.ToModelOperation(operation)
	insertQuery := `
        INSERT INTO operations (operation_id, account_id, request_id, amount, month, year, day, deleted, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
    `
	_, err = tx.Exec(ctx, insertQuery,
		mOp.OperationID,
		mOp.AccountID,
		mOp.RequestID,
		mOp.Amount,
		mOp.Month,
		mOp.Year,
		mOp.Day,
		mOp.Deleted,
		mOp.CreatedAt,
		mOp.CreatedBy,
		mOp.LastUpdatedAt,
		mOp.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.NewConflictError("an operation for this request and month already exists")
		}
		return fmt.Errorf("failed to insert operation during posting: %w", err)
	}

	return r.Commit(ctx, tx)
}
