package repositories

import (
	"context"

	"github.com/hxudev/currency_exchange_api/internal/core/domain"
)

// CurrencyReader defines read operations for currency data
type CurrencyReader interface {
	// FindCurrencyByID retrieves a currency by its primary key.
	// Returns apperrors.ErrNotFound when no row matches.
	FindCurrencyByID(ctx context.Context, currencyID int64) (*domain.Currency, error)

	// ListCurrencies retrieves currencies matching the filter, ordered by
	// currency_id ascending, together with the total number of matches
	// before paging.
	ListCurrencies(ctx context.Context, filter domain.CurrencyFilter) ([]domain.Currency, int64, error)

	// IsNameExists reports whether another currency already uses the exact
	// name. excludeID > 0 skips that row (update-time checks).
	IsNameExists(ctx context.Context, name string, excludeID int64) (bool, error)

	// IsSymbolExists reports whether any currency already uses the symbol.
	// Informational only; symbol duplication is allowed.
	IsSymbolExists(ctx context.Context, symbol string, excludeID int64) (bool, error)
}

// CurrencyWriter defines write operations for currency data
type CurrencyWriter interface {
	// CreateCurrency inserts a currency and returns the canonical persisted
	// row, re-read by its generated id inside the same transaction.
	CreateCurrency(ctx context.Context, currency domain.Currency) (*domain.Currency, error)

	// UpdateCurrency applies only the supplied patch fields and returns the
	// fresh post-update row. An empty patch returns the stored row with no
	// write. Returns apperrors.ErrNotFound for an unknown id.
	UpdateCurrency(ctx context.Context, currencyID int64, patch domain.CurrencyPatch) (*domain.Currency, error)

	// DeleteCurrency deletes by id. Returns apperrors.ErrNotFound when the
	// row did not exist, apperrors.ErrReferenced when exchange rates still
	// reference it.
	DeleteCurrency(ctx context.Context, currencyID int64) error
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}
