package models

// Currency mirrors a row of the currency table.
type Currency struct {
	CurrencyID     int64  `db:"currency_id"`
	CurrencyName   string `db:"currency_name"`
	CurrencySymbol string `db:"currency_symbol"`
}
