package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hxudev/currency_exchange_api/internal/apperrors"
	"github.com/hxudev/currency_exchange_api/internal/core/domain"
	portsrepo "github.com/hxudev/currency_exchange_api/internal/core/ports/repositories"
	"github.com/hxudev/currency_exchange_api/internal/models"
	"github.com/hxudev/currency_exchange_api/internal/utils/mapping"
)

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

const userColumns = "user_id, user_name, user_email, user_pwd_hash"

func scanUser(row pgx.Row) (models.User, error) {
	var m models.User
	err := row.Scan(&m.UserID, &m.UserName, &m.UserEmail, &m.UserPwdHash)
	return m, err
}

func findUserByID(ctx context.Context, q querier, userID int64) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1;`

	m, err := scanUser(q.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by id %d: %w", userID, err)
	}

	d := mapping.ToDomainUser(m)
	return &d, nil
}

// FindUserByID retrieves a user by primary key.
func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	return findUserByID(ctx, r.Pool, userID)
}

// FindUserByName retrieves one user by exact name match.
func (r *PgxUserRepository) FindUserByName(ctx context.Context, name string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_name = $1 LIMIT 1;`

	m, err := scanUser(r.Pool.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by name %q: %w", name, err)
	}

	d := mapping.ToDomainUser(m)
	return &d, nil
}

// ListUsers retrieves users ordered by user_id ascending.
func (r *PgxUserRepository) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + userColumns + ` FROM users ORDER BY user_id ASC LIMIT $1 OFFSET $2;`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	modelUsers, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.User, error) {
		return scanUser(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan users: %w", err)
	}

	return mapping.ToDomainUserSlice(modelUsers), nil
}

// IsNameExists reports whether a user with the exact name exists, optionally
// excluding one id.
func (r *PgxUserRepository) IsNameExists(ctx context.Context, name string, excludeID int64) (bool, error) {
	return r.fieldExists(ctx, "user_name", name, excludeID)
}

// IsEmailExists reports whether a user with the email exists, optionally
// excluding one id.
func (r *PgxUserRepository) IsEmailExists(ctx context.Context, email string, excludeID int64) (bool, error) {
	return r.fieldExists(ctx, "user_email", email, excludeID)
}

// fieldExists runs the shared existence check. The column name comes from a
// fixed caller-supplied identifier, never from request data.
func (r *PgxUserRepository) fieldExists(ctx context.Context, column, value string, excludeID int64) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM users WHERE %s = $1`, column)
	args := []any{value}
	if excludeID > 0 {
		query += ` AND user_id <> $2`
		args = append(args, excludeID)
	}
	query += `);`

	var exists bool
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check users.%s: %w", column, err)
	}
	return exists, nil
}

// CreateUser inserts a user and re-reads the generated row inside the same
// transaction.
func (r *PgxUserRepository) CreateUser(ctx context.Context, user domain.User) (*domain.User, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelUser(user)

	var newID int64
	insert := `INSERT INTO users (user_name, user_email, user_pwd_hash) VALUES ($1, $2, $3) RETURNING user_id;`
	if err := tx.QueryRow(ctx, insert, m.UserName, m.UserEmail, m.UserPwdHash).Scan(&newID); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("user %q: %w", m.UserName, apperrors.ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	created, err := findUserByID(ctx, tx, newID)
	if err != nil {
		return nil, fmt.Errorf("failed to re-read created user %d: %w", newID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateUser updates only the supplied columns, then re-reads the row inside
// the same transaction. An empty patch performs no write.
func (r *PgxUserRepository) UpdateUser(ctx context.Context, userID int64, patch domain.UserPatch) (*domain.User, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	existing, err := findUserByID(ctx, tx, userID)
	if err != nil {
		return nil, err
	}

	if patch.IsEmpty() {
		if err := r.Commit(ctx, tx); err != nil {
			return nil, err
		}
		return existing, nil
	}

	setClauses := []string{}
	args := []any{}
	if patch.Name != nil {
		args = append(args, *patch.Name)
		setClauses = append(setClauses, fmt.Sprintf("user_name = $%d", len(args)))
	}
	if patch.Email != nil {
		args = append(args, *patch.Email)
		setClauses = append(setClauses, fmt.Sprintf("user_email = $%d", len(args)))
	}
	if patch.Password != nil {
		// Already hashed by the service.
		args = append(args, *patch.Password)
		setClauses = append(setClauses, fmt.Sprintf("user_pwd_hash = $%d", len(args)))
	}
	args = append(args, userID)

	query := fmt.Sprintf("UPDATE users SET %s WHERE user_id = $%d;", strings.Join(setClauses, ", "), len(args))
	if _, err := tx.Exec(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("user update %d: %w", userID, apperrors.ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to update user %d: %w", userID, err)
	}

	updated, err := findUserByID(ctx, tx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to re-read updated user %d: %w", userID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteUser deletes by id after verifying the row exists.
func (r *PgxUserRepository) DeleteUser(ctx context.Context, userID int64) error {
	if _, err := findUserByID(ctx, r.Pool, userID); err != nil {
		return err
	}

	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM users WHERE user_id = $1;`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user %d: %w", userID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
