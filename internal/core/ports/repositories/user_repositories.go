package repositories

import (
	"context"

	"github.com/hxudev/currency_exchange_api/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a user by primary key.
	FindUserByID(ctx context.Context, userID int64) (*domain.User, error)

	// FindUserByName retrieves a user by exact user_name match.
	FindUserByName(ctx context.Context, name string) (*domain.User, error)

	// ListUsers retrieves users ordered by user_id ascending.
	ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error)

	// IsNameExists / IsEmailExists report uniqueness conflicts; excludeID > 0
	// skips that row.
	IsNameExists(ctx context.Context, name string, excludeID int64) (bool, error)
	IsEmailExists(ctx context.Context, email string, excludeID int64) (bool, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// CreateUser inserts a user and returns the canonical persisted row.
	CreateUser(ctx context.Context, user domain.User) (*domain.User, error)

	// UpdateUser applies only the supplied patch fields; the patch password,
	// if any, must already be hashed. Returns the fresh post-update row.
	UpdateUser(ctx context.Context, userID int64, patch domain.UserPatch) (*domain.User, error)

	// DeleteUser deletes by id; apperrors.ErrNotFound for an unknown id.
	DeleteUser(ctx context.Context, userID int64) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
