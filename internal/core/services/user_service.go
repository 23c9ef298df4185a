package services

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/hxudev/currency_exchange_api/internal/apperrors"
	"github.com/hxudev/currency_exchange_api/internal/core/domain"
	portsrepo "github.com/hxudev/currency_exchange_api/internal/core/ports/repositories"
	portssvc "github.com/hxudev/currency_exchange_api/internal/core/ports/services"
	"github.com/hxudev/currency_exchange_api/internal/dto"
	"github.com/hxudev/currency_exchange_api/internal/utils"
)

type userService struct {
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates the user business-logic service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// CreateUser hashes the password and persists after checking that neither
// the name nor the email is taken. The two existence checks are independent
// reads and run concurrently.
func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	name := strings.TrimSpace(req.UserName)
	email := strings.TrimSpace(req.UserEmail)
	if name == "" {
		return nil, fmt.Errorf("%w: user_name must not be blank", apperrors.ErrValidation)
	}

	var nameTaken, emailTaken bool
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		nameTaken, err = s.userRepo.IsNameExists(gctx, name, 0)
		return err
	})
	g.Go(func() error {
		var err error
		emailTaken, err = s.userRepo.IsEmailExists(gctx, email, 0)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to check user uniqueness: %w", err)
	}
	if nameTaken {
		return nil, fmt.Errorf("user name %q already exists: %w", name, apperrors.ErrDuplicate)
	}
	if emailTaken {
		return nil, fmt.Errorf("user email %q already exists: %w", email, apperrors.ErrDuplicate)
	}

	hash, err := utils.HashPassword(req.UserPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.userRepo.CreateUser(ctx, domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create user in service: %w", err)
	}
	return created, nil
}

// GetUserByID returns the entity or apperrors.ErrNotFound.
func (s *userService) GetUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

// GetUserByName returns the entity matching the exact name.
func (s *userService) GetUserByName(ctx context.Context, name string) (*domain.User, error) {
	return s.userRepo.FindUserByName(ctx, strings.TrimSpace(name))
}

// ListUsers returns users ordered by id ascending.
func (s *userService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	users, err := s.userRepo.ListUsers(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list users in service: %w", err)
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

// UpdateUser applies only the supplied fields; a supplied password is
// re-hashed before persisting. Uniqueness rechecks exclude the user itself.
func (s *userService) UpdateUser(ctx context.Context, userID int64, req dto.UpdateUserRequest) (*domain.User, error) {
	patch := domain.UserPatch{}

	if req.UserName != nil {
		name := strings.TrimSpace(*req.UserName)
		if name == "" {
			return nil, fmt.Errorf("%w: user_name must not be blank", apperrors.ErrValidation)
		}
		taken, err := s.userRepo.IsNameExists(ctx, name, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to check user name uniqueness: %w", err)
		}
		if taken {
			return nil, fmt.Errorf("user name %q already exists: %w", name, apperrors.ErrDuplicate)
		}
		patch.Name = &name
	}
	if req.UserEmail != nil {
		email := strings.TrimSpace(*req.UserEmail)
		taken, err := s.userRepo.IsEmailExists(ctx, email, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to check user email uniqueness: %w", err)
		}
		if taken {
			return nil, fmt.Errorf("user email %q already exists: %w", email, apperrors.ErrDuplicate)
		}
		patch.Email = &email
	}
	if req.UserPassword != nil {
		hash, err := utils.HashPassword(*req.UserPassword)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		patch.Password = &hash
	}

	updated, err := s.userRepo.UpdateUser(ctx, userID, patch)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteUser deletes by id; ErrNotFound passes through.
func (s *userService) DeleteUser(ctx context.Context, userID int64) error {
	return s.userRepo.DeleteUser(ctx, userID)
}
