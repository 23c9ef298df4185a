package repositories

import (
	"context"

	"github.com/hxudev/currency_exchange_api/internal/core/domain"
)

// ExchangeRateReader defines read operations for exchange rate data
type ExchangeRateReader interface {
	// FindRateByID retrieves a rate by primary key.
	FindRateByID(ctx context.Context, rateID int64) (*domain.ExchangeRate, error)

	// FindLatestRate retrieves the most recently effective rate for a pair.
	FindLatestRate(ctx context.Context, fromCurrencyID, toCurrencyID int64) (*domain.ExchangeRate, error)

	// ListRates retrieves rates ordered by rate_id ascending.
	ListRates(ctx context.Context, limit, offset int) ([]domain.ExchangeRate, error)
}

// ExchangeRateWriter defines write operations for exchange rate data
type ExchangeRateWriter interface {
	// CreateRate inserts a rate and returns the canonical persisted row.
	CreateRate(ctx context.Context, rate domain.ExchangeRate) (*domain.ExchangeRate, error)
}

// ExchangeRateRepositoryFacade combines all exchange-rate repository interfaces
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
	ExchangeRateWriter
}
