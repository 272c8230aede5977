package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/hrops_backend/internal/apperrors"
	"github.com/SscSPs/hrops_backend/internal/core/domain"
	"github.com/SscSPs/hrops_backend/internal/platform/response"
	"github.com/SscSPs/hrops_backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// UserLookup resolves the subject of an access token.
type UserLookup interface {
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}

// bearerToken extracts the token from an "Authorization: Bearer <token>" header.
func bearerToken(c *gin.Context) (string, bool) {
	parts := strings.Fields(c.GetHeader("Authorization"))
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}

// AuthMiddleware validates the bearer token and loads the user it was issued to.
// Deleted users are rejected with 401; blocked or unverified accounts with 403.
func AuthMiddleware(jwtSecret string, users UserLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromContext(c)

		if c.GetHeader("Authorization") == "" {
			logger.Warn("Authorization header missing")
			response.Fail(c, http.StatusUnauthorized, "Authorization header required")
			return
		}
		tokenString, ok := bearerToken(c)
		if !ok {
			logger.Warn("Authorization header format invalid")
			response.Fail(c, http.StatusUnauthorized, "Authorization header format must be Bearer {token}")
			return
		}

		claims, err := utils.ParseAndValidateJWT(tokenString, jwtSecret)
		if err != nil {
			logger.Warn("Invalid token", slog.String("error", err.Error()))
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			} else if errors.Is(err, jwt.ErrTokenNotValidYet) {
				msg = "Token not valid yet"
			}
			response.Fail(c, http.StatusUnauthorized, msg)
			return
		}
		if claims.Subject == "" {
			logger.Error("User ID (subject) missing from valid token")
			response.Fail(c, http.StatusUnauthorized, "Invalid token claims")
			return
		}

		user, err := users.GetUserByID(c.Request.Context(), claims.Subject)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrValidation) {
				logger.Warn("Token subject no longer exists", slog.String("user_id", claims.Subject))
				response.Fail(c, http.StatusUnauthorized, "User no longer exists")
				return
			}
			response.Error(c, logger, err, "")
			return
		}
		switch {
		case user.IsBlocked:
			response.Fail(c, http.StatusForbidden, "Account is blocked")
			return
		case !user.IsActivated:
			response.Fail(c, http.StatusForbidden, "Account is not activated")
			return
		}

		enriched := logger.With(slog.String("user_id", user.UserID), slog.String("role", string(user.Role)))
		c.Request = c.Request.WithContext(WithLogger(c.Request.Context(), enriched))
		setCurrentUser(c, user)

		c.Next()
	}
}

// RequireRoles allows the request only when the current user holds one of roles.
func RequireRoles(roles ...domain.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := GetCurrentUser(c)
		if !ok {
			response.Fail(c, http.StatusUnauthorized, "Authentication required")
			return
		}
		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}
		GetLoggerFromContext(c).Warn("Role check failed", slog.Any("required", roles))
		response.Fail(c, http.StatusForbidden, "You do not have permission to perform this action")
	}
}

// RequireAdmin is RequireRoles(domain.RoleAdmin).
func RequireAdmin() gin.HandlerFunc {
	return RequireRoles(domain.RoleAdmin)
}

// RequireSelfOrAdmin allows admins, or users acting on the ID in path parameter param.
func RequireSelfOrAdmin(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := GetCurrentUser(c)
		if !ok {
			response.Fail(c, http.StatusUnauthorized, "Authentication required")
			return
		}
		if user.IsAdmin() || user.UserID == c.Param(param) {
			c.Next()
			return
		}
		response.Fail(c, http.StatusForbidden, "You can only access your own account")
	}
}
