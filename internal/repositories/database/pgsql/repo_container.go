package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/hxudev/currency_exchange_api/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgx repository onto one shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CurrencyRepo:     newPgxCurrencyRepository(dbPool),
		UserRepo:         newPgxUserRepository(dbPool),
		ExchangeRateRepo: newPgxExchangeRateRepository(dbPool),
	}
}
