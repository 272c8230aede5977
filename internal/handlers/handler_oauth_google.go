package handlers

import (
	"github.com/SscSPs/hrops_backend/internal/dto"
	"github.com/SscSPs/hrops_backend/internal/platform/response"
	"github.com/gin-gonic/gin"
)

// googleLogin godoc
// @Summary Sign in with Google
// @Description Exchanges a Google ID token for a session. The account must already exist and be active.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.GoogleLoginRequest true "Google ID token"
// @Success 200 {object} response.Envelope{data=dto.LoginResponse}
// @Failure 401 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /auth/google [post]
func (h *authHandler) googleLogin(c *gin.Context) {
	var req dto.GoogleLoginRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.authService.GoogleLogin(c.Request.Context(), req.IDToken)
	if err != nil {
		fail(c, err, "Google sign-in failed")
		return
	}
	response.OK(c, "Login successful", resp)
}
