package mapping

import (
	"github.com/hxudev/currency_exchange_api/internal/core/domain"
	"github.com/hxudev/currency_exchange_api/internal/models"
)

// ToModelExchangeRate converts a domain ExchangeRate to a model ExchangeRate
func ToModelExchangeRate(d domain.ExchangeRate) models.ExchangeRate {
	return models.ExchangeRate{
		RateID:         d.RateID,
		FromCurrencyID: d.FromCurrencyID,
		ToCurrencyID:   d.ToCurrencyID,
		Rate:           d.Rate,
		DateEffective:  d.DateEffective,
	}
}

// ToDomainExchangeRate converts a model ExchangeRate to a domain ExchangeRate
func ToDomainExchangeRate(m models.ExchangeRate) domain.ExchangeRate {
	return domain.ExchangeRate{
		RateID:         m.RateID,
		FromCurrencyID: m.FromCurrencyID,
		ToCurrencyID:   m.ToCurrencyID,
		Rate:           m.Rate,
		DateEffective:  m.DateEffective,
	}
}

// ToDomainExchangeRateSlice converts a slice of model ExchangeRates to domain ExchangeRates
func ToDomainExchangeRateSlice(ms []models.ExchangeRate) []domain.ExchangeRate {
	ds := make([]domain.ExchangeRate, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExchangeRate(m)
	}
	return ds
}
