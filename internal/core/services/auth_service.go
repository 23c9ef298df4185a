package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hxudev/currency_exchange_api/internal/apperrors"
	portsrepo "github.com/hxudev/currency_exchange_api/internal/core/ports/repositories"
	portssvc "github.com/hxudev/currency_exchange_api/internal/core/ports/services"
	"github.com/hxudev/currency_exchange_api/internal/dto"
	"github.com/hxudev/currency_exchange_api/internal/platform/config"
	"github.com/hxudev/currency_exchange_api/internal/utils"
)

type authService struct {
	cfg      *config.Config
	userRepo portsrepo.UserReader
}

// NewAuthService creates the token-issuing service.
func NewAuthService(cfg *config.Config, userRepo portsrepo.UserReader) portssvc.AuthSvcFacade {
	return &authService{cfg: cfg, userRepo: userRepo}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Login verifies credentials and issues an HS256 JWT with the user id as
// subject. Unknown user and wrong password produce the same error so the
// response does not reveal which part failed.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindUserByName(ctx, req.UserName)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up user for login: %w", err)
	}

	if !utils.CheckPasswordHash(req.UserPassword, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(user.UserID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWTExpiryDuration)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &dto.LoginResponse{
		Token: signed,
		User:  dto.ToUserResponse(user),
	}, nil
}
