package services

import (
	"context"

	"github.com/wisnuad/internship_mgmt_app/internal/core/domain"
	"github.com/wisnuad/internship_mgmt_app/internal/dto"
)

// UserSvcFacade defines user management operations.
type UserSvcFacade interface {
	// CreateUser registers a new user with a hashed password.
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)

	// GetUserByID retrieves a specific user.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// ListUsers retrieves a paginated list of users.
	ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error)

	// UpdateUser updates a user's details.
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, requestingUserID string) (*domain.User, error)

	// DeleteUser marks a user as deleted.
	DeleteUser(ctx context.Context, userID string, requestingUserID string) error
}
