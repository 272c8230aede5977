// Package response writes the JSON envelope shared by every endpoint.
package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/hrops_backend/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// GenericErrorMessage is returned for every unexpected failure; details stay in the logs.
const GenericErrorMessage = "An unexpected error occurred. Please try again later."

// Envelope is the body of every JSON response.
type Envelope struct {
	Status  int    `json:"status"`
	OK      bool   `json:"ok"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Success writes a 2xx envelope.
func Success(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Envelope{Status: status, OK: true, Message: message, Data: data})
}

// OK writes a 200 envelope.
func OK(c *gin.Context, message string, data any) {
	Success(c, http.StatusOK, message, data)
}

// Created writes a 201 envelope.
func Created(c *gin.Context, message string, data any) {
	Success(c, http.StatusCreated, message, data)
}

// Fail aborts the request with an error envelope.
func Fail(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, Envelope{Status: status, OK: false, Message: message})
}

// StatusFor maps an error kind to its HTTP status. Unknown errors are 500.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrUnauthorized), errors.Is(err, apperrors.ErrRefreshTokenExpired):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrMaintenance):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Error aborts the request with the envelope matching err. Client errors carry the
// error's own message (or fallback); server errors are logged and answered generically.
func Error(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	status := StatusFor(err)
	if status >= http.StatusInternalServerError && !errors.Is(err, apperrors.ErrMaintenance) {
		logger.Error("Request failed", slog.String("error", err.Error()))
		message := GenericErrorMessage
		if errors.Is(err, apperrors.ErrMisconfigured) {
			if msg, ok := apperrors.Message(err); ok {
				message = msg
			}
		}
		Fail(c, status, message)
		return
	}

	message, ok := apperrors.Message(err)
	if !ok {
		message = fallback
		if message == "" {
			message = http.StatusText(status)
		}
	}
	logger.Warn("Request rejected", slog.Int("status", status), slog.String("error", err.Error()))
	Fail(c, status, message)
}
