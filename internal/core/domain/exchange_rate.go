package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is a conversion rate between two tracked currencies, effective
// from a point in time. The latest effective rate for a pair wins.
type ExchangeRate struct {
	RateID         int64
	FromCurrencyID int64
	ToCurrencyID   int64
	Rate           decimal.Decimal
	DateEffective  time.Time
}

// Conversion is the result of applying an exchange rate to an amount.
type Conversion struct {
	FromCurrencyID int64
	ToCurrencyID   int64
	Rate           decimal.Decimal
	Amount         decimal.Decimal
	Converted      decimal.Decimal
}
