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

const tradeInterestColumns = `trade_interest_id, month, year, rate, published, created_at, created_by, last_updated_at, last_updated_by`

type PgxTradeInterestRepository struct {
	BaseRepository
}

func newPgxTradeInterestRepository(db *pgxpool.Pool) portsrepo.TradeInterestRepositoryFacade {
	return &PgxTradeInterestRepository{BaseRepository{Pool: db}}
}

// Ensure PgxTradeInterestRepository implements portsrepo.TradeInterestRepositoryFacade
var _ portsrepo.TradeInterestRepositoryFacade = (*PgxTradeInterestRepository)(nil)

func scanTradeInterest(row pgx.Row) (*models.TradeInterest, error) {
	var m models.TradeInterest
	err := row.Scan(
		&m.TradeInterestID,
		&m.Month,
		&m.Year,
		&m.Rate,
		&m.Published,
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

// SaveTradeInterest inserts or updates the rate row for its calendar month.
// One row per month is enforced by a unique index on (month, year).
func (r *PgxTradeInterestRepository) SaveTradeInterest(ctx context.Context, rate domain.TradeInterest) error {
	m := mapping.ToModelTradeInterest(rate)
	query := `
        INSERT INTO trade_interest (` + tradeInterestColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        ON CONFLICT (month, year) DO UPDATE SET
            rate = EXCLUDED.rate,
            published = EXCLUDED.published,
            last_updated_at = EXCLUDED.last_updated_at,
            last_updated_by = EXCLUDED.last_updated_by;
    `
	_, err := r.Pool.Exec(ctx, query,
		m.TradeInterestID,
		m.Month,
		m.Year,
		m.Rate,
		m.Published,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save trade interest rate: %w", err)
	}
	return nil
}

func (r *PgxTradeInterestRepository) FindPublishedRate(ctx context.Context, period domain.Period) (*domain.TradeInterest, error) {
	query := `
        SELECT ` + tradeInterestColumns + `
        FROM trade_interest
        WHERE month = $1 AND year = $2 AND published = true;
    `
	m, err := scanTradeInterest(r.Pool.QueryRow(ctx, query, period.Month, period.Year))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find published rate for %s: %w", period, err)
	}
	rate := mapping.ToDomainTradeInterest(*m)
	return &rate, nil
}

func (r *PgxTradeInterestRepository) LatestPublishedPeriod(ctx context.Context) (domain.Period, error) {
	query := `
        SELECT month, year
        FROM trade_interest
        WHERE published = true
        ORDER BY year DESC, month DESC
        LIMIT 1;
    `
	var p domain.Period
	err := r.Pool.QueryRow(ctx, query).Scan(&p.Month, &p.Year)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Period{}, apperrors.ErrNotFound
		}
		return domain.Period{}, fmt.Errorf("failed to find latest published period: %w", err)
	}
	return p, nil
}

func (r *PgxTradeInterestRepository) ListTradeInterest(ctx context.Context) ([]domain.TradeInterest, error) {
	query := `
        SELECT ` + tradeInterestColumns + `
        FROM trade_interest
        ORDER BY year ASC, month ASC;
    `
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query trade interest rows: %w", err)
	}
	defer rows.Close()

	modelRates := []models.TradeInterest{}
	for rows.Next() {
		m, err := scanTradeInterest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trade interest row: %w", err)
		}
		modelRates = append(modelRates, *m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating trade interest rows: %w", rows.Err())
	}
	return mapping.ToDomainTradeInterestSlice(modelRates), nil
}
