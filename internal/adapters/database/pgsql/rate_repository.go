package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ratewise/currency_rates_app/internal/apperrors"
	"github.com/ratewise/currency_rates_app/internal/core/domain"
	portsrepo "github.com/ratewise/currency_rates_app/internal/core/ports/repositories"
)

// PgxRateRepository implements the rate repository using pgxpool.
type PgxRateRepository struct {
	pool *pgxpool.Pool
}

// NewRateRepository creates a new PgxRateRepository.
func NewRateRepository(pool *pgxpool.Pool) portsrepo.RateRepositoryFacade {
	return &PgxRateRepository{pool: pool}
}

func scanRate(row pgx.Row) (*domain.Rate, error) {
	var rate domain.Rate
	err := row.Scan(
		&rate.RateID,
		&rate.CurrencyID,
		&rate.Value,
		&rate.EffectiveDate,
		&rate.CreatedAt,
		&rate.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rate, nil
}

// SaveRate inserts a new rate and returns it with its generated id.
func (r *PgxRateRepository) SaveRate(ctx context.Context, rate domain.Rate) (*domain.Rate, error) {
	query := `
		INSERT INTO rates (currency_id, value, effective_date, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING rate_id;
	`
	err := r.pool.QueryRow(ctx, query,
		rate.CurrencyID,
		rate.Value,
		rate.EffectiveDate,
		rate.CreatedAt,
		rate.LastUpdatedAt,
	).Scan(&rate.RateID)

	if err != nil {
		if mapped := mapPgError(err); mapped != err {
			return nil, mapped
		}
		return nil, fmt.Errorf("error inserting rate: %w", err)
	}
	return &rate, nil
}

// FindRateByID retrieves a rate by its id.
func (r *PgxRateRepository) FindRateByID(ctx context.Context, rateID int64) (*domain.Rate, error) {
	query := `
		SELECT rate_id, currency_id, value, effective_date, created_at, last_updated_at
		FROM rates
		WHERE rate_id = $1;
	`
	rate, err := scanRate(r.pool.QueryRow(ctx, query, rateID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound // Use custom not found error
		}
		if mapped := mapPgError(err); mapped != err {
			return nil, mapped
		}
		return nil, fmt.Errorf("error finding rate %d: %w", rateID, err)
	}
	return rate, nil
}

// ListRates retrieves all rates, newest effective date first.
func (r *PgxRateRepository) ListRates(ctx context.Context) ([]domain.Rate, error) {
	query := `
		SELECT rate_id, currency_id, value, effective_date, created_at, last_updated_at
		FROM rates
		ORDER BY effective_date DESC, rate_id DESC;
	`
	return r.queryRates(ctx, query)
}

// ListRatesByCurrencyID retrieves all rates of a currency, newest first.
func (r *PgxRateRepository) ListRatesByCurrencyID(ctx context.Context, currencyID int64) ([]domain.Rate, error) {
	query := `
		SELECT rate_id, currency_id, value, effective_date, created_at, last_updated_at
		FROM rates
		WHERE currency_id = $1
		ORDER BY effective_date DESC, rate_id DESC;
	`
	return r.queryRates(ctx, query, currencyID)
}

// FindRatesByCurrencyAndDate retrieves the rates of a currency with the exact
// effective date.
func (r *PgxRateRepository) FindRatesByCurrencyAndDate(ctx context.Context, currencyID int64, date time.Time) ([]domain.Rate, error) {
	query := `
		SELECT rate_id, currency_id, value, effective_date, created_at, last_updated_at
		FROM rates
		WHERE currency_id = $1 AND effective_date = $2
		ORDER BY rate_id DESC;
	`
	return r.queryRates(ctx, query, currencyID, date)
}

// FindLatestRateByCurrencyID retrieves the applicable rate for a currency.
// Latest effective date wins; ties are broken by the greatest rate id so the
// selection is deterministic.
func (r *PgxRateRepository) FindLatestRateByCurrencyID(ctx context.Context, currencyID int64) (*domain.Rate, error) {
	query := `
		SELECT rate_id, currency_id, value, effective_date, created_at, last_updated_at
		FROM rates
		WHERE currency_id = $1
		ORDER BY effective_date DESC, rate_id DESC
		LIMIT 1;
	`
	rate, err := scanRate(r.pool.QueryRow(ctx, query, currencyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		if mapped := mapPgError(err); mapped != err {
			return nil, mapped
		}
		return nil, fmt.Errorf("error finding latest rate for currency %d: %w", currencyID, err)
	}
	return rate, nil
}

// UpdateRate persists changes to an existing rate.
func (r *PgxRateRepository) UpdateRate(ctx context.Context, rate domain.Rate) error {
	query := `
		UPDATE rates
		SET value = $2, effective_date = $3, last_updated_at = $4
		WHERE rate_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		rate.RateID,
		rate.Value,
		rate.EffectiveDate,
		rate.LastUpdatedAt,
	)
	if err != nil {
		if mapped := mapPgError(err); mapped != err {
			return mapped
		}
		return fmt.Errorf("error updating rate %d: %w", rate.RateID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteRate removes a rate.
func (r *PgxRateRepository) DeleteRate(ctx context.Context, rateID int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM rates WHERE rate_id = $1;`, rateID)
	if err != nil {
		if mapped := mapPgError(err); mapped != err {
			return mapped
		}
		return fmt.Errorf("error deleting rate %d: %w", rateID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxRateRepository) queryRates(ctx context.Context, query string, args ...any) ([]domain.Rate, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		if mapped := mapPgError(err); mapped != err {
			return nil, mapped
		}
		return nil, fmt.Errorf("failed to query rates: %w", err)
	}
	defer rows.Close()

	rates, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Rate, error) {
		var rate domain.Rate
		err := row.Scan(
			&rate.RateID,
			&rate.CurrencyID,
			&rate.Value,
			&rate.EffectiveDate,
			&rate.CreatedAt,
			&rate.LastUpdatedAt,
		)
		return rate, err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Rate{}, nil
		}
		return nil, fmt.Errorf("failed to scan rates: %w", err)
	}
	return rates, nil
}
