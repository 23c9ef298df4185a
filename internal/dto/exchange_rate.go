package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hxudev/currency_exchange_api/internal/core/domain"
)

// CreateExchangeRateRequest defines the structure for creating a new exchange rate.
type CreateExchangeRateRequest struct {
	FromCurrencyID int64           `json:"from_currency_id" binding:"required,gt=0"`
	ToCurrencyID   int64           `json:"to_currency_id" binding:"required,gt=0"`
	Rate           decimal.Decimal `json:"rate" binding:"required"`
	DateEffective  *time.Time      `json:"date_effective"` // defaults to now
}

// ConvertParams defines query parameters for a conversion.
type ConvertParams struct {
	From   int64           `form:"from" binding:"required,gt=0"`
	To     int64           `form:"to" binding:"required,gt=0"`
	Amount decimal.Decimal `form:"amount" binding:"required"`
}

// ExchangeRateResponse is the public JSON shape of an exchange rate.
type ExchangeRateResponse struct {
	ID             int64           `json:"id"`
	FromCurrencyID int64           `json:"from_currency_id"`
	ToCurrencyID   int64           `json:"to_currency_id"`
	Rate           decimal.Decimal `json:"rate"`
	DateEffective  time.Time       `json:"date_effective"`
}

// ConversionResponse is the result of applying a rate to an amount.
type ConversionResponse struct {
	FromCurrencyID int64           `json:"from_currency_id"`
	ToCurrencyID   int64           `json:"to_currency_id"`
	Rate           decimal.Decimal `json:"rate"`
	Amount         decimal.Decimal `json:"amount"`
	Converted      decimal.Decimal `json:"converted"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to its DTO
func ToExchangeRateResponse(rate *domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		ID:             rate.RateID,
		FromCurrencyID: rate.FromCurrencyID,
		ToCurrencyID:   rate.ToCurrencyID,
		Rate:           rate.Rate,
		DateEffective:  rate.DateEffective,
	}
}

// ToListExchangeRateResponse converts a slice of domain.ExchangeRate to DTOs
func ToListExchangeRateResponse(rates []domain.ExchangeRate) []ExchangeRateResponse {
	responses := make([]ExchangeRateResponse, len(rates))
	for i := range rates {
		responses[i] = ToExchangeRateResponse(&rates[i])
	}
	return responses
}

// ToConversionResponse converts a domain.Conversion to its DTO
func ToConversionResponse(c *domain.Conversion) ConversionResponse {
	return ConversionResponse{
		FromCurrencyID: c.FromCurrencyID,
		ToCurrencyID:   c.ToCurrencyID,
		Rate:           c.Rate,
		Amount:         c.Amount,
		Converted:      c.Converted,
	}
}
