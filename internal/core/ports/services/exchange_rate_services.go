package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/hxudev/currency_exchange_api/internal/core/domain"
	"github.com/hxudev/currency_exchange_api/internal/dto"
)

// ExchangeRateReaderSvc defines read operations for exchange rate data
type ExchangeRateReaderSvc interface {
	// GetRateByID retrieves a specific rate by id.
	GetRateByID(ctx context.Context, rateID int64) (*domain.ExchangeRate, error)

	// GetRate retrieves the latest effective rate for a currency pair.
	GetRate(ctx context.Context, fromCurrencyID, toCurrencyID int64) (*domain.ExchangeRate, error)

	// ListRates retrieves persisted rates.
	ListRates(ctx context.Context, limit, offset int) ([]domain.ExchangeRate, error)

	// Convert applies the latest rate for the pair to an amount.
	Convert(ctx context.Context, fromCurrencyID, toCurrencyID int64, amount decimal.Decimal) (*domain.Conversion, error)
}

// ExchangeRateWriterSvc defines write operations for exchange rate data
type ExchangeRateWriterSvc interface {
	// CreateRate persists a new exchange rate after validating that the rate
	// is positive, the pair is distinct, and both currencies exist.
	CreateRate(ctx context.Context, req dto.CreateExchangeRateRequest) (*domain.ExchangeRate, error)
}

// ExchangeRateSvcFacade combines all exchange-rate service interfaces
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	ExchangeRateWriterSvc
}
