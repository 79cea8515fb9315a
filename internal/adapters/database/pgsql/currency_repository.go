package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ratewise/currency_rates_app/internal/apperrors"
	"github.com/ratewise/currency_rates_app/internal/core/domain"
	portsrepo "github.com/ratewise/currency_rates_app/internal/core/ports/repositories"
)

// PgxCurrencyRepository implements the currency repository using pgxpool.
type PgxCurrencyRepository struct {
	pool *pgxpool.Pool
}

// NewCurrencyRepository creates a new repository for currency data.
func NewCurrencyRepository(pool *pgxpool.Pool) portsrepo.CurrencyRepositoryFacade {
	return &PgxCurrencyRepository{pool: pool}
}

// SaveCurrency inserts a new currency and returns it with its generated id.
func (r *PgxCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) (*domain.Currency, error) {
	query := `
		INSERT INTO currencies (name, abbreviation, symbol, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING currency_id;
	`
	err := r.pool.QueryRow(ctx, query,
		currency.Name,
		currency.Abbreviation,
		currency.Symbol,
		currency.CreatedAt,
		currency.LastUpdatedAt,
	).Scan(&currency.CurrencyID)

	if err != nil {
		if mapped := mapPgError(err); mapped != err {
			return nil, mapped
		}
		return nil, fmt.Errorf("failed to save currency %s: %w", currency.Abbreviation, err)
	}
	return &currency, nil
}

// FindCurrencyByID retrieves a currency by its id.
func (r *PgxCurrencyRepository) FindCurrencyByID(ctx context.Context, currencyID int64) (*domain.Currency, error) {
	query := `
		SELECT currency_id, name, abbreviation, symbol, created_at, last_updated_at
		FROM currencies
		WHERE currency_id = $1;
	`
	var currency domain.Currency
	err := r.pool.QueryRow(ctx, query, currencyID).Scan(
		&currency.CurrencyID,
		&currency.Name,
		&currency.Abbreviation,
		&currency.Symbol,
		&currency.CreatedAt,
		&currency.LastUpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Map db not found error to application specific error
			return nil, apperrors.ErrNotFound
		}
		if mapped := mapPgError(err); mapped != err {
			return nil, mapped
		}
		return nil, fmt.Errorf("failed to find currency by id %d: %w", currencyID, err)
	}

	return &currency, nil
}

// FindCurrencyByAbbreviation retrieves a currency by its 3-letter code.
func (r *PgxCurrencyRepository) FindCurrencyByAbbreviation(ctx context.Context, abbreviation string) (*domain.Currency, error) {
	query := `
		SELECT currency_id, name, abbreviation, symbol, created_at, last_updated_at
		FROM currencies
		WHERE abbreviation = $1;
	`
	var currency domain.Currency
	err := r.pool.QueryRow(ctx, query, abbreviation).Scan(
		&currency.CurrencyID,
		&currency.Name,
		&currency.Abbreviation,
		&currency.Symbol,
		&currency.CreatedAt,
		&currency.LastUpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		if mapped := mapPgError(err); mapped != err {
			return nil, mapped
		}
		return nil, fmt.Errorf("failed to find currency by abbreviation %s: %w", abbreviation, err)
	}

	return &currency, nil
}

// ListCurrencies retrieves all currencies.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	query := `
		SELECT currency_id, name, abbreviation, symbol, created_at, last_updated_at
		FROM currencies
		ORDER BY abbreviation;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		if mapped := mapPgError(err); mapped != err {
			return nil, mapped
		}
		return nil, fmt.Errorf("failed to query currencies: %w", err)
	}
	defer rows.Close()

	currencies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Currency, error) {
		var currency domain.Currency
		err := row.Scan(
			&currency.CurrencyID,
			&currency.Name,
			&currency.Abbreviation,
			&currency.Symbol,
			&currency.CreatedAt,
			&currency.LastUpdatedAt,
		)
		return currency, err
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Currency{}, nil // Return empty slice, not an error
		}
		return nil, fmt.Errorf("failed to scan currencies: %w", err)
	}

	return currencies, nil
}

// UpdateCurrency persists changes to an existing currency.
func (r *PgxCurrencyRepository) UpdateCurrency(ctx context.Context, currency domain.Currency) error {
	query := `
		UPDATE currencies
		SET name = $2, abbreviation = $3, symbol = $4, last_updated_at = $5
		WHERE currency_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		currency.CurrencyID,
		currency.Name,
		currency.Abbreviation,
		currency.Symbol,
		currency.LastUpdatedAt,
	)
	if err != nil {
		if mapped := mapPgError(err); mapped != err {
			return mapped
		}
		return fmt.Errorf("failed to update currency %d: %w", currency.CurrencyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteCurrency removes a currency. The rates FK is declared ON DELETE
// CASCADE, so the currency's rates are removed in the same statement.
func (r *PgxCurrencyRepository) DeleteCurrency(ctx context.Context, currencyID int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM currencies WHERE currency_id = $1;`, currencyID)
	if err != nil {
		if mapped := mapPgError(err); mapped != err {
			return mapped
		}
		return fmt.Errorf("failed to delete currency %d: %w", currencyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
