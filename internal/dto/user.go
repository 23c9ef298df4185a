package dto

import (
	"github.com/hxudev/currency_exchange_api/internal/core/domain"
)

// CreateUserRequest defines the data needed to create a new user. The
// plaintext password is hashed by the service and never persisted.
type CreateUserRequest struct {
	UserName     string `json:"user_name" binding:"required,min=1,max=50"`
	UserEmail    string `json:"user_email" binding:"required,email"`
	UserPassword string `json:"user_password" binding:"required,min=8,max=72"`
}

// UpdateUserRequest defines a partial user update. A supplied password is
// re-hashed before persisting.
type UpdateUserRequest struct {
	UserName     *string `json:"user_name" binding:"omitempty,min=1,max=50"`
	UserEmail    *string `json:"user_email" binding:"omitempty,email"`
	UserPassword *string `json:"user_password" binding:"omitempty,min=8,max=72"`
}

// ListUsersParams defines query parameters for listing users.
type ListUsersParams struct {
	Limit  int    `form:"limit,default=20"`
	Offset int    `form:"offset,default=0"`
	Name   string `form:"name"` // exact-match lookup
}

// UserResponse is the public JSON shape of a user. The password hash is
// deliberately absent.
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ListUsersResponse wraps the list of users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:    u.UserID,
		Name:  u.Name,
		Email: u.Email,
	}
}

// ToListUserResponse converts a slice of domain.User to ListUsersResponse DTO
func ToListUserResponse(users []domain.User) ListUsersResponse {
	userResponses := make([]UserResponse, len(users))
	for i := range users {
		userResponses[i] = ToUserResponse(&users[i])
	}
	return ListUsersResponse{Users: userResponses}
}
