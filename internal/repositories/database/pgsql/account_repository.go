package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clearbrook/fund_admin_app/internal/apperrors"
	"github.com/clearbrook/fund_admin_app/internal/core/domain"
	portsrepo "github.com/clearbrook/fund_admin_app/internal/core/ports/repositories"
	"github.com/clearbrook/fund_admin_app/internal/models"
	"github.com/clearbrook/fund_admin_app/internal/utils/mapping"
)

const accountColumns = `account_id, name, email, role, manager_id, opening_balance, opening_month, opening_year, deleted, created_at, created_by, last_updated_at, last_updated_by`

type PgxAccountRepository struct {
	BaseRepository
}

func newPgxAccountRepository(db *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{BaseRepository{Pool: db}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

func scanAccount(row pgx.Row) (*models.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID,
		&m.Name,
		&m.Email,
		&m.Role,
		&m.ManagerID,
		&m.OpeningBalance,
		&m.OpeningMonth,
		&m.OpeningYear,
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

func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account, passwordHash string) error {
	m := mapping.ToModelAccount(account)
	query := `
        INSERT INTO accounts (account_id, name, email, password_hash, role, manager_id, opening_balance, opening_month, opening_year, deleted, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.AccountID,
		m.Name,
		m.Email,
		passwordHash,
		m.Role,
		m.ManagerID,
		m.OpeningBalance,
		m.OpeningMonth,
		m.OpeningYear,
		m.Deleted,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return apperrors.NewAppError(409, fmt.Sprintf("account with email %s already exists", account.Email), apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save account: %w", err)
	}
	return nil
}

func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE account_id = $1 AND deleted = false;
	`
	m, err := scanAccount(r.Pool.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by ID %s: %w", accountID, err)
	}
	acct := mapping.ToDomainAccount(*m)
	return &acct, nil
}

func (r *PgxAccountRepository) FindCredentialsByEmail(ctx context.Context, email string) (string, string, error) {
	query := `
		SELECT account_id, password_hash
		FROM accounts
		WHERE email = $1 AND deleted = false;
	`
	var accountID, hash string
	err := r.Pool.QueryRow(ctx, query, email).Scan(&accountID, &hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", "", apperrors.ErrNotFound
		}
		return "", "", fmt.Errorf("failed to find credentials by email: %w", err)
	}
	return accountID, hash, nil
}

func (r *PgxAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	query := `
        SELECT ` + accountColumns + `
        FROM accounts
        WHERE deleted = false
        ORDER BY created_at ASC, account_id ASC;
    `
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	modelAccounts := []models.Account{}
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		modelAccounts = append(modelAccounts, *m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", rows.Err())
	}

	return mapping.ToDomainAccountSlice(modelAccounts), nil
}

func (r *PgxAccountRepository) ListAccessGrantsForGrantee(ctx context.Context, granteeAccountID string) ([]domain.AccessGrant, error) {
	query := `
        SELECT grant_id, grantor_account_id, grantee_account_id, created_at, created_by, last_updated_at, last_updated_by
        FROM access_grants
        WHERE grantee_account_id = $1
        ORDER BY created_at ASC;
    `
	rows, err := r.Pool.Query(ctx, query, granteeAccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query access grants: %w", err)
	}
	defer rows.Close()

	grants := []domain.AccessGrant{}
	for rows.Next() {
		var m models.AccessGrant
		err := rows.Scan(
			&m.GrantID,
			&m.GrantorAccountID,
			&m.GranteeAccountID,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan access grant row: %w", err)
		}
		grants = append(grants, mapping.ToDomainAccessGrant(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating access grant rows: %w", rows.Err())
	}
	return grants, nil
}

func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
        UPDATE accounts
        SET name = $1, email = $2, role = $3, manager_id = $4, opening_balance = $5, opening_month = $6, opening_year = $7, last_updated_at = $8, last_updated_by = $9
        WHERE account_id = $10 AND deleted = false;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.Name,
		m.Email,
		m.Role,
		m.ManagerID,
		m.OpeningBalance,
		m.OpeningMonth,
		m.OpeningYear,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.AccountID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update account query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("account not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxAccountRepository) SoftDeleteAccount(ctx context.Context, accountID string, userID string, now time.Time) error {
	query := `
        UPDATE accounts
        SET deleted = true, last_updated_at = $1, last_updated_by = $2
        WHERE account_id = $3 AND deleted = false;
    `
	cmdTag, err := r.Pool.Exec(ctx, query, now, userID, accountID)
	if err != nil {
		return fmt.Errorf("failed to mark account as deleted: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("account not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxAccountRepository) SaveAccessGrant(ctx context.Context, grant domain.AccessGrant) error {
	query := `
        INSERT INTO access_grants (grant_id, grantor_account_id, grantee_account_id, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT (grantor_account_id, grantee_account_id) DO NOTHING;
    `
	_, err := r.Pool.Exec(ctx, query,
		grant.GrantID,
		grant.GrantorAccountID,
		grant.GranteeAccountID,
		grant.CreatedAt,
		grant.CreatedBy,
		grant.LastUpdatedAt,
		grant.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save access grant: %w", err)
	}
	return nil
}
