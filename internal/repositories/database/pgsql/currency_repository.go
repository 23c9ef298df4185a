package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/hxudev/currency_exchange_api/internal/apperrors"
	"github.com/hxudev/currency_exchange_api/internal/core/domain"
	portsrepo "github.com/hxudev/currency_exchange_api/internal/core/ports/repositories"
	"github.com/hxudev/currency_exchange_api/internal/models"
	"github.com/hxudev/currency_exchange_api/internal/utils/mapping"
)

type PgxCurrencyRepository struct {
	BaseRepository
}

// newPgxCurrencyRepository creates a new repository for currency data.
func newPgxCurrencyRepository(pool *pgxpool.Pool) portsrepo.CurrencyRepositoryFacade {
	return &PgxCurrencyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyRepositoryFacade = (*PgxCurrencyRepository)(nil)

const currencyColumns = "currency_id, currency_name, currency_symbol"

// findCurrencyByID reads one currency through the given querier so the same
// lookup serves pool reads and in-transaction re-reads.
func findCurrencyByID(ctx context.Context, q querier, currencyID int64) (*domain.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currency WHERE currency_id = $1;`

	var m models.Currency
	err := q.QueryRow(ctx, query, currencyID).Scan(
		&m.CurrencyID,
		&m.CurrencyName,
		&m.CurrencySymbol,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find currency by id %d: %w", currencyID, err)
	}

	d := mapping.ToDomainCurrency(m)
	return &d, nil
}

// FindCurrencyByID retrieves a currency by its primary key.
func (r *PgxCurrencyRepository) FindCurrencyByID(ctx context.Context, currencyID int64) (*domain.Currency, error) {
	return findCurrencyByID(ctx, r.Pool, currencyID)
}

// ListCurrencies retrieves a page of currencies ordered by currency_id
// ascending, plus the total match count. The row query and the count query
// are independent reads and run concurrently.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context, filter domain.CurrencyFilter) ([]domain.Currency, int64, error) {
	where := ""
	args := []any{}
	if filter.Search != "" {
		where = " WHERE currency_name ILIKE $1 OR currency_symbol ILIKE $1"
		args = append(args, "%"+filter.Search+"%")
	}

	listQuery := fmt.Sprintf(
		"SELECT %s FROM currency%s ORDER BY currency_id ASC LIMIT $%d OFFSET $%d;",
		currencyColumns, where, len(args)+1, len(args)+2,
	)
	countQuery := "SELECT COUNT(*) FROM currency" + where + ";"

	var (
		modelCurrencies []models.Currency
		total           int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		listArgs := append(append([]any{}, args...), filter.Limit, filter.Offset)
		rows, err := r.Pool.Query(gctx, listQuery, listArgs...)
		if err != nil {
			return fmt.Errorf("failed to query currencies: %w", err)
		}
		defer rows.Close()

		modelCurrencies, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Currency, error) {
			var m models.Currency
			err := row.Scan(&m.CurrencyID, &m.CurrencyName, &m.CurrencySymbol)
			return m, err
		})
		if err != nil {
			return fmt.Errorf("failed to scan currencies: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := r.Pool.QueryRow(gctx, countQuery, args...).Scan(&total); err != nil {
			return fmt.Errorf("failed to count currencies: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	return mapping.ToDomainCurrencySlice(modelCurrencies), total, nil
}

// IsNameExists reports whether a currency with the exact name exists,
// optionally excluding one id.
func (r *PgxCurrencyRepository) IsNameExists(ctx context.Context, name string, excludeID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM currency WHERE currency_name = $1`
	args := []any{name}
	if excludeID > 0 {
		query += ` AND currency_id <> $2`
		args = append(args, excludeID)
	}
	query += `);`

	var exists bool
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check currency name %q: %w", name, err)
	}
	return exists, nil
}

// IsSymbolExists reports whether a currency with the symbol exists,
// optionally excluding one id.
func (r *PgxCurrencyRepository) IsSymbolExists(ctx context.Context, symbol string, excludeID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM currency WHERE currency_symbol = $1`
	args := []any{symbol}
	if excludeID > 0 {
		query += ` AND currency_id <> $2`
		args = append(args, excludeID)
	}
	query += `);`

	var exists bool
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check currency symbol %q: %w", symbol, err)
	}
	return exists, nil
}

// CreateCurrency inserts a new currency and re-reads the generated row inside
// the same transaction, so DB-side defaults are reflected in the result.
func (r *PgxCurrencyRepository) CreateCurrency(ctx context.Context, currency domain.Currency) (*domain.Currency, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelCurrency(currency)

	var newID int64
	insert := `INSERT INTO currency (currency_name, currency_symbol) VALUES ($1, $2) RETURNING currency_id;`
	if err := tx.QueryRow(ctx, insert, m.CurrencyName, m.CurrencySymbol).Scan(&newID); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("currency name %q: %w", m.CurrencyName, apperrors.ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to insert currency: %w", err)
	}

	created, err := findCurrencyByID(ctx, tx, newID)
	if err != nil {
		return nil, fmt.Errorf("failed to re-read created currency %d: %w", newID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateCurrency updates only the supplied columns, then re-reads the row
// inside the same transaction. An empty patch performs no write.
func (r *PgxCurrencyRepository) UpdateCurrency(ctx context.Context, currencyID int64, patch domain.CurrencyPatch) (*domain.Currency, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	existing, err := findCurrencyByID(ctx, tx, currencyID)
	if err != nil {
		return nil, err
	}

	if patch.IsEmpty() {
		// No recognized fields: return the stored row unchanged.
		if err := r.Commit(ctx, tx); err != nil {
			return nil, err
		}
		return existing, nil
	}

	setClauses := []string{}
	args := []any{}
	if patch.Name != nil {
		args = append(args, *patch.Name)
		setClauses = append(setClauses, fmt.Sprintf("currency_name = $%d", len(args)))
	}
	if patch.Symbol != nil {
		args = append(args, *patch.Symbol)
		setClauses = append(setClauses, fmt.Sprintf("currency_symbol = $%d", len(args)))
	}
	args = append(args, currencyID)

	query := fmt.Sprintf("UPDATE currency SET %s WHERE currency_id = $%d;", strings.Join(setClauses, ", "), len(args))
	if _, err := tx.Exec(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("currency update %d: %w", currencyID, apperrors.ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to update currency %d: %w", currencyID, err)
	}

	updated, err := findCurrencyByID(ctx, tx, currencyID)
	if err != nil {
		return nil, fmt.Errorf("failed to re-read updated currency %d: %w", currencyID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteCurrency deletes by id after verifying the row exists.
func (r *PgxCurrencyRepository) DeleteCurrency(ctx context.Context, currencyID int64) error {
	if _, err := findCurrencyByID(ctx, r.Pool, currencyID); err != nil {
		return err
	}

	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM currency WHERE currency_id = $1;`, currencyID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return fmt.Errorf("currency %d: %w", currencyID, apperrors.ErrReferenced)
		}
		return fmt.Errorf("failed to delete currency %d: %w", currencyID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		// Row disappeared between the read and the delete.
		return apperrors.ErrNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
