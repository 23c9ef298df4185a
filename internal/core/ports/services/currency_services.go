package services

import (
	"context"

	"github.com/hxudev/currency_exchange_api/internal/core/domain"
	"github.com/hxudev/currency_exchange_api/internal/dto"
)

// CurrencyReaderSvc defines read operations for currency data
type CurrencyReaderSvc interface {
	// GetCurrencyByID retrieves a specific currency by id.
	GetCurrencyByID(ctx context.Context, currencyID int64) (*domain.Currency, error)

	// ListCurrencies retrieves a page of currencies, optionally filtered by
	// a case-insensitive substring search, with pagination metadata.
	ListCurrencies(ctx context.Context, params dto.ListCurrenciesParams) ([]domain.Currency, dto.Pagination, error)

	// SearchCurrencies is ListCurrencies with a mandatory search term.
	SearchCurrencies(ctx context.Context, term string, params dto.ListCurrenciesParams) ([]domain.Currency, dto.Pagination, error)

	// CheckNameAvailability reports whether a name is free to use.
	CheckNameAvailability(ctx context.Context, name string, excludeID int64) (bool, error)

	// CheckSymbolAvailability reports whether a symbol is unused. Symbols may
	// legally repeat; the check is informational.
	CheckSymbolAvailability(ctx context.Context, symbol string, excludeID int64) (bool, error)
}

// CurrencyWriterSvc defines write operations for currency data
type CurrencyWriterSvc interface {
	// CreateCurrency persists a new currency after a name-uniqueness check.
	CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest) (*domain.Currency, error)

	// UpdateCurrency applies a partial update, re-checking name uniqueness
	// (excluding self) when a name is supplied.
	UpdateCurrency(ctx context.Context, currencyID int64, req dto.UpdateCurrencyRequest) (*domain.Currency, error)

	// DeleteCurrency deletes by id.
	DeleteCurrency(ctx context.Context, currencyID int64) error
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyWriterSvc
}
