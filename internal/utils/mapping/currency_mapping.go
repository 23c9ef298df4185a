package mapping

import (
	"github.com/hxudev/currency_exchange_api/internal/core/domain"
	"github.com/hxudev/currency_exchange_api/internal/models"
)

// ToModelCurrency converts a domain Currency to a model Currency
func ToModelCurrency(d domain.Currency) models.Currency {
	return models.Currency{
		CurrencyID:     d.CurrencyID,
		CurrencyName:   d.Name,
		CurrencySymbol: d.Symbol,
	}
}

// ToDomainCurrency converts a model Currency to a domain Currency
func ToDomainCurrency(m models.Currency) domain.Currency {
	return domain.Currency{
		CurrencyID: m.CurrencyID,
		Name:       m.CurrencyName,
		Symbol:     m.CurrencySymbol,
	}
}

// ToDomainCurrencySlice converts a slice of model Currencies to a slice of domain Currencies
func ToDomainCurrencySlice(ms []models.Currency) []domain.Currency {
	ds := make([]domain.Currency, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCurrency(m)
	}
	return ds
}
