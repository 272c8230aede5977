package handlers

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/SscSPs/hrops_backend/internal/core/domain"
	"github.com/SscSPs/hrops_backend/internal/dto"
	"github.com/SscSPs/hrops_backend/internal/middleware"
	"github.com/SscSPs/hrops_backend/internal/platform/response"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// currentUser returns the authenticated user, answering 401 when there is none.
func currentUser(c *gin.Context) (*domain.User, bool) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		middleware.GetLoggerFromContext(c).Error("User not found in context")
		response.Fail(c, http.StatusUnauthorized, "Authentication required")
	}
	return user, ok
}

// bindJSON decodes and validates the body into req, answering 400 on failure.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		middleware.GetLoggerFromContext(c).Warn("Failed to bind JSON", slog.String("error", err.Error()))
		response.Fail(c, http.StatusBadRequest, bindingMessage(err))
		return false
	}
	return true
}

// bindQuery is bindJSON for query strings.
func bindQuery(c *gin.Context, req any) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		middleware.GetLoggerFromContext(c).Warn("Failed to bind query", slog.String("error", err.Error()))
		response.Fail(c, http.StatusBadRequest, bindingMessage(err))
		return false
	}
	return true
}

// bindList decodes a list request. An empty body selects the first page with no filter.
func bindList[C any](c *gin.Context) (dto.ListRequest[C], bool) {
	var req dto.ListRequest[C]
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		middleware.GetLoggerFromContext(c).Warn("Failed to bind list request", slog.String("error", err.Error()))
		response.Fail(c, http.StatusBadRequest, bindingMessage(err))
		return req, false
	}
	return req, true
}

func bindingMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch fe.Tag() {
		case "required":
			return fmt.Sprintf("%s is required", fe.Field())
		case "objectid":
			return fmt.Sprintf("%s must be a valid id", fe.Field())
		case "grade":
			return fmt.Sprintf("%s must be one of A, B, C, D", fe.Field())
		case "oneof":
			return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
		case "email":
			return fmt.Sprintf("%s must be a valid email address", fe.Field())
		case "min", "max", "len":
			return fmt.Sprintf("%s failed the %s=%s constraint", fe.Field(), fe.Tag(), fe.Param())
		default:
			return fmt.Sprintf("%s is invalid", fe.Field())
		}
	}
	return "Invalid request body"
}

// fail maps a service error onto the envelope using the request logger.
func fail(c *gin.Context, err error, fallback string) {
	response.Error(c, middleware.GetLoggerFromContext(c), err, fallback)
}
