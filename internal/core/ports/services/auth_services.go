package services

import (
	"context"

	"github.com/hxudev/currency_exchange_api/internal/dto"
)

// AuthSvcFacade issues tokens for valid credentials.
type AuthSvcFacade interface {
	// Login verifies credentials and returns a signed JWT together with the
	// authenticated user. Returns apperrors.ErrUnauthorized for unknown user
	// or wrong password alike.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}
