package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate mirrors a row of the exchange_rates table.
type ExchangeRate struct {
	RateID         int64           `db:"rate_id"`
	FromCurrencyID int64           `db:"from_currency_id"`
	ToCurrencyID   int64           `db:"to_currency_id"`
	Rate           decimal.Decimal `db:"rate"`
	DateEffective  time.Time       `db:"date_effective"`
}
