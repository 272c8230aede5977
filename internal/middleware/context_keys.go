package middleware

import (
	"context"
	"log/slog"

	"github.com/SscSPs/hrops_backend/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// contextKey is the type of keys stored in request contexts.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerKey      = contextKey("logger")
	currentUserKey = contextKey("currentUser")
)

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLoggerFromCtx retrieves the request-scoped logger from a standard context,
// falling back to the default logger.
func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
			return logger
		}
	}
	return slog.Default()
}

// GetLoggerFromContext retrieves the request-scoped logger from the Gin context.
func GetLoggerFromContext(c *gin.Context) *slog.Logger {
	return GetLoggerFromCtx(c.Request.Context())
}

// setCurrentUser stores the authenticated user on both the Gin and the request context.
func setCurrentUser(c *gin.Context, user *domain.User) {
	c.Set(string(currentUserKey), user)
	c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), currentUserKey, user))
}

// GetCurrentUser returns the user resolved by AuthMiddleware.
func GetCurrentUser(c *gin.Context) (*domain.User, bool) {
	if val, exists := c.Get(string(currentUserKey)); exists {
		if user, ok := val.(*domain.User); ok && user != nil {
			return user, true
		}
	}
	if user, ok := c.Request.Context().Value(currentUserKey).(*domain.User); ok && user != nil {
		return user, true
	}
	return nil, false
}

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	user, ok := GetCurrentUser(c)
	if !ok {
		return "", false
	}
	return user.UserID, true
}
