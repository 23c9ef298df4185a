package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hxudev/currency_exchange_api/internal/apperrors"
	"github.com/hxudev/currency_exchange_api/internal/core/domain"
	portsrepo "github.com/hxudev/currency_exchange_api/internal/core/ports/repositories"
	"github.com/hxudev/currency_exchange_api/internal/models"
	"github.com/hxudev/currency_exchange_api/internal/utils/mapping"
)

type PgxExchangeRateRepository struct {
	BaseRepository
}

func newPgxExchangeRateRepository(pool *pgxpool.Pool) portsrepo.ExchangeRateRepositoryFacade {
	return &PgxExchangeRateRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ExchangeRateRepositoryFacade = (*PgxExchangeRateRepository)(nil)

const rateColumns = "rate_id, from_currency_id, to_currency_id, rate, date_effective"

func scanRate(row pgx.Row) (models.ExchangeRate, error) {
	var m models.ExchangeRate
	err := row.Scan(&m.RateID, &m.FromCurrencyID, &m.ToCurrencyID, &m.Rate, &m.DateEffective)
	return m, err
}

// FindRateByID retrieves a rate by primary key.
func (r *PgxExchangeRateRepository) FindRateByID(ctx context.Context, rateID int64) (*domain.ExchangeRate, error) {
	query := `SELECT ` + rateColumns + ` FROM exchange_rates WHERE rate_id = $1;`

	m, err := scanRate(r.Pool.QueryRow(ctx, query, rateID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find exchange rate %d: %w", rateID, err)
	}

	d := mapping.ToDomainExchangeRate(m)
	return &d, nil
}

// FindLatestRate retrieves the most recently effective rate for a pair.
func (r *PgxExchangeRateRepository) FindLatestRate(ctx context.Context, fromCurrencyID, toCurrencyID int64) (*domain.ExchangeRate, error) {
	query := `
		SELECT ` + rateColumns + `
		FROM exchange_rates
		WHERE from_currency_id = $1 AND to_currency_id = $2
		ORDER BY date_effective DESC, rate_id DESC
		LIMIT 1;
	`

	m, err := scanRate(r.Pool.QueryRow(ctx, query, fromCurrencyID, toCurrencyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find exchange rate %d->%d: %w", fromCurrencyID, toCurrencyID, err)
	}

	d := mapping.ToDomainExchangeRate(m)
	return &d, nil
}

// ListRates retrieves rates ordered by rate_id ascending.
func (r *PgxExchangeRateRepository) ListRates(ctx context.Context, limit, offset int) ([]domain.ExchangeRate, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + rateColumns + ` FROM exchange_rates ORDER BY rate_id ASC LIMIT $1 OFFSET $2;`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query exchange rates: %w", err)
	}
	defer rows.Close()

	modelRates, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ExchangeRate, error) {
		return scanRate(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan exchange rates: %w", err)
	}

	return mapping.ToDomainExchangeRateSlice(modelRates), nil
}

// CreateRate inserts a rate and re-reads the generated row inside the same
// transaction.
func (r *PgxExchangeRateRepository) CreateRate(ctx context.Context, rate domain.ExchangeRate) (*domain.ExchangeRate, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelExchangeRate(rate)

	var newID int64
	insert := `
		INSERT INTO exchange_rates (from_currency_id, to_currency_id, rate, date_effective)
		VALUES ($1, $2, $3, $4)
		RETURNING rate_id;
	`
	err = tx.QueryRow(ctx, insert, m.FromCurrencyID, m.ToCurrencyID, m.Rate, m.DateEffective).Scan(&newID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, fmt.Errorf("exchange rate references unknown currency: %w", apperrors.ErrValidation)
		}
		return nil, fmt.Errorf("failed to insert exchange rate: %w", err)
	}

	query := `SELECT ` + rateColumns + ` FROM exchange_rates WHERE rate_id = $1;`
	created, err := scanRate(tx.QueryRow(ctx, query, newID))
	if err != nil {
		return nil, fmt.Errorf("failed to re-read created exchange rate %d: %w", newID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	d := mapping.ToDomainExchangeRate(created)
	return &d, nil
}
