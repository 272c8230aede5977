package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SscSPs/hrops_backend/internal/apperrors"
	"github.com/SscSPs/hrops_backend/internal/core/domain"
	"github.com/SscSPs/hrops_backend/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	// Now returns the current time. Tests replace it to pin the clock.
	Now func() time.Time
}

func (s *BaseService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogWarn logs a warning
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// logUnexpected logs err unless it is an expected client-facing failure.
func (s *BaseService) logUnexpected(ctx context.Context, err error, msg string, keyvals ...any) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) || errors.Is(err, apperrors.ErrNotFound) {
		return
	}
	s.LogError(ctx, err, msg, keyvals...)
}

// requireAdmin fails with ErrForbidden unless actor is an admin.
func requireAdmin(actor *domain.User) error {
	if !actor.IsAdmin() {
		return apperrors.New(apperrors.ErrForbidden, "Only administrators can perform this action")
	}
	return nil
}

// hasRequiredRole checks if the actor holds one of the roles.
func hasRequiredRole(actor *domain.User, roles ...domain.UserRole) bool {
	if actor == nil {
		return false
	}
	for _, r := range roles {
		if actor.Role == r {
			return true
		}
	}
	return false
}

func newAudit(at time.Time, by string) domain.AuditFields {
	return domain.AuditFields{CreatedAt: at, CreatedBy: by, LastUpdatedAt: at, LastUpdatedBy: by}
}

func touch(a *domain.AuditFields, at time.Time, by string) {
	a.LastUpdatedAt = at
	a.LastUpdatedBy = by
}

// notFound wraps a repository ErrNotFound with an entity-specific message.
func notFound(err error, message string) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		if _, ok := apperrors.Message(err); !ok {
			return apperrors.Wrap(apperrors.ErrNotFound, message, err)
		}
	}
	return err
}
