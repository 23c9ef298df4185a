package dto

import (
	"github.com/hxudev/currency_exchange_api/internal/core/domain"
)

// CreateCurrencyRequest defines the data needed to create a new currency.
// currency_name is restricted to letters, CJK characters and spaces by the
// custom currencyname validator.
type CreateCurrencyRequest struct {
	CurrencyName   string `json:"currency_name" binding:"required,min=1,max=50,currencyname"`
	CurrencySymbol string `json:"currency_symbol" binding:"required,min=1,max=10"`
}

// UpdateCurrencyRequest defines a partial currency update. Pointers
// differentiate omitted fields from zero values; at least one field must be
// present, which the handler enforces after binding.
type UpdateCurrencyRequest struct {
	CurrencyName   *string `json:"currency_name" binding:"omitempty,min=1,max=50,currencyname"`
	CurrencySymbol *string `json:"currency_symbol" binding:"omitempty,min=1,max=10"`
}

// ListCurrenciesParams defines query parameters for listing currencies.
type ListCurrenciesParams struct {
	Page   int    `form:"page,default=1"`
	Limit  int    `form:"limit,default=10"`
	Search string `form:"search"`
}

// CurrencyResponse is the public JSON shape of a currency.
type CurrencyResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// ListCurrenciesResponse wraps a page of currencies with its metadata.
type ListCurrenciesResponse struct {
	Currencies []CurrencyResponse `json:"currencies"`
	Pagination Pagination         `json:"pagination"`
	SearchTerm string             `json:"search_term,omitempty"`
}

// AvailabilityResponse reports the availability of a name or symbol.
type AvailabilityResponse struct {
	Available bool   `json:"available"`
	Name      string `json:"name,omitempty"`
	Symbol    string `json:"symbol,omitempty"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(curr *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		ID:     curr.CurrencyID,
		Name:   curr.Name,
		Symbol: curr.Symbol,
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to CurrencyResponse DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i := range currencies {
		res[i] = ToCurrencyResponse(&currencies[i])
	}
	return res
}
