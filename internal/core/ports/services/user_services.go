package services

import (
	"context"

	"github.com/SscSPs/hrops_backend/internal/core/domain"
	"github.com/SscSPs/hrops_backend/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUser returns a user the actor may see (self or admin).
	GetUser(ctx context.Context, actor *domain.User, userID string) (*domain.User, error)

	// ListUsers retrieves a page of users matching the filter.
	ListUsers(ctx context.Context, filter domain.UserFilter, page domain.PageInfo) (domain.Page[domain.User], error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// CreateUser provisions an activated account.
	CreateUser(ctx context.Context, actor *domain.User, req dto.CreateUserRequest) (*domain.User, error)

	// UpdateUser updates an existing user. Only admins may change role, salary and activation.
	UpdateUser(ctx context.Context, actor *domain.User, userID string, req dto.UpdateUserRequest) (*domain.User, error)

	// SetBlocked blocks or unblocks a user and notifies them by email.
	SetBlocked(ctx context.Context, actor *domain.User, userID string, blocked bool) (*domain.User, error)
}

// UserLifecycleSvc defines operations for managing user lifecycle
type UserLifecycleSvc interface {
	// DeleteUser marks a user as deleted (soft delete). Admins cannot delete themselves.
	DeleteUser(ctx context.Context, actor *domain.User, userID string) error
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserLifecycleSvc
}
