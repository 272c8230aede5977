package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/hrops_backend/internal/core/domain"
)

// UserReader defines read operations for user data.
// Soft-deleted users are never returned.
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by email address (case-insensitive).
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUsersByIDs retrieves every existing user among the given IDs.
	FindUsersByIDs(ctx context.Context, userIDs []string) ([]domain.User, error)

	// ListUsers retrieves one page of users matching the filter.
	ListUsers(ctx context.Context, filter domain.UserFilter, page domain.PageInfo) (domain.Page[domain.User], error)

	// ListPayableUsers returns activated, unblocked users.
	ListPayableUsers(ctx context.Context) ([]domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user and sets its generated ID.
	SaveUser(ctx context.Context, user *domain.User) error

	// UpdateUser updates an existing user's profile fields.
	UpdateUser(ctx context.Context, user domain.User) error

	// UpdateRefreshToken stores the hash of the active refresh token. An empty hash clears it.
	UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, expiresAt *time.Time) error

	// UpdatePassword replaces the password hash and ends the active session.
	UpdatePassword(ctx context.Context, userID string, passwordHash string, updatedAt time.Time) error

	// ActivateUser marks the account as verified.
	ActivateUser(ctx context.Context, userID string, activatedAt time.Time) error

	// SetUserBlocked blocks or unblocks an account. Blocking ends the active session.
	SetUserBlocked(ctx context.Context, userID string, blocked bool, updatedBy string, updatedAt time.Time) error
}

// UserLifecycleManager defines operations for managing user lifecycle
type UserLifecycleManager interface {
	// MarkUserDeleted marks a user as deleted (soft delete).
	MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error
}

// UserRepositoryFacade combines all user-related repository interfaces
// This is a facade for clients that need access to all operations
type UserRepositoryFacade interface {
	UserReader
	UserWriter
	UserLifecycleManager
}
