package domain

// Currency represents a currency tracked by the exchange.
type Currency struct {
	CurrencyID int64  // Primary key, database-assigned
	Name       string // e.g. "US Dollar", unique
	Symbol     string // e.g. "$", duplicates allowed ("¥" is shared by CNY and JPY)
}

// CurrencyPatch describes a partial update. Nil fields are left untouched.
type CurrencyPatch struct {
	Name   *string
	Symbol *string
}

// IsEmpty reports whether the patch carries no recognized fields.
func (p CurrencyPatch) IsEmpty() bool {
	return p.Name == nil && p.Symbol == nil
}

// CurrencyFilter narrows and pages a currency listing.
type CurrencyFilter struct {
	Search string // case-insensitive substring against name or symbol
	Limit  int
	Offset int
}
