package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/ratewise/currency_rates_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires all pgx repositories over a shared pool.
func NewRepositoryProvider(pool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CurrencyRepo: NewCurrencyRepository(pool),
		RateRepo:     NewRateRepository(pool),
	}
}
