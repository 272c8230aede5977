package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/hrops_backend/internal/core/domain"
	"github.com/SscSPs/hrops_backend/internal/platform/response"
	"github.com/SscSPs/hrops_backend/internal/utils"
	"github.com/gin-gonic/gin"
)

// SettingReader returns the current system settings.
type SettingReader interface {
	GetSetting(ctx context.Context) (*domain.Setting, error)
}

// MaintenanceGate answers 503 to everyone but admins while maintenance mode is on.
// Requests under openPrefixes (sign-in, reading settings) stay reachable so admins can
// log in and clients can display the maintenance message.
func MaintenanceGate(settings SettingReader, jwtSecret string, users UserLookup, openPrefixes ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromContext(c)

		setting, err := settings.GetSetting(c.Request.Context())
		if err != nil {
			logger.Error("Failed to read maintenance setting, letting request through", slog.String("error", err.Error()))
			c.Next()
			return
		}
		if !setting.IsMaintenanceMode {
			c.Next()
			return
		}

		path := c.Request.URL.Path
		for _, prefix := range openPrefixes {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}
		if isAdminBearer(c, jwtSecret, users) {
			c.Next()
			return
		}

		message := setting.MaintenanceMessage
		if message == "" {
			message = domain.DefaultMaintenanceMessage
		}
		logger.Info("Request blocked by maintenance mode")
		response.Fail(c, http.StatusServiceUnavailable, message)
	}
}

func isAdminBearer(c *gin.Context, jwtSecret string, users UserLookup) bool {
	tokenString, ok := bearerToken(c)
	if !ok {
		return false
	}
	claims, err := utils.ParseAndValidateJWT(tokenString, jwtSecret)
	if err != nil || claims.Subject == "" {
		return false
	}
	// The role claim is only a hint; the stored role decides.
	if claims.Role != string(domain.RoleAdmin) {
		return false
	}
	user, err := users.GetUserByID(c.Request.Context(), claims.Subject)
	if err != nil {
		return false
	}
	return user.IsAdmin() && user.CanSignIn()
}
