package services

import (
	"context"

	"github.com/hxudev/currency_exchange_api/internal/core/domain"
	"github.com/hxudev/currency_exchange_api/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	GetUserByID(ctx context.Context, userID int64) (*domain.User, error)
	GetUserByName(ctx context.Context, name string) (*domain.User, error)
	ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// CreateUser hashes the password and persists the user after name and
	// email uniqueness checks.
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)

	// UpdateUser applies a partial update; a supplied password is re-hashed.
	UpdateUser(ctx context.Context, userID int64, req dto.UpdateUserRequest) (*domain.User, error)

	DeleteUser(ctx context.Context, userID int64) error
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
}
