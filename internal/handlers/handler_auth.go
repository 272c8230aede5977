package handlers

import (
	"fmt"
	"html"
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/hrops_backend/internal/core/ports/services"
	"github.com/SscSPs/hrops_backend/internal/dto"
	"github.com/SscSPs/hrops_backend/internal/middleware"
	"github.com/SscSPs/hrops_backend/internal/platform/response"
	"github.com/gin-gonic/gin"
)

// authHandler handles registration, sign-in and credential recovery.
type authHandler struct {
	authService    portssvc.AuthSvcFacade
	verifyRedirect string
}

func newAuthHandler(as portssvc.AuthSvcFacade, verifyRedirect string) *authHandler {
	return &authHandler{authService: as, verifyRedirect: verifyRedirect}
}

// registerAuthRoutes sets up /auth. requireAuth protects the session endpoints and
// limited throttles the credential endpoints.
func registerAuthRoutes(rg *gin.RouterGroup, requireAuth, limited gin.HandlerFunc, as portssvc.AuthSvcFacade, verifyRedirect string) {
	h := newAuthHandler(as, verifyRedirect)

	auth := rg.Group("/auth")
	{
		auth.POST("/register", h.register)
		auth.GET("/verify", h.verify)
		auth.POST("/resend-verification", limited, h.resendVerification)
		auth.POST("/login", limited, h.login)
		auth.POST("/google", limited, h.googleLogin)
		auth.POST("/refresh", h.refresh)
		auth.POST("/forgot-password", limited, h.forgotPassword)
		auth.POST("/reset-password", limited, h.resetPassword)

		auth.POST("/logout", requireAuth, h.logout)
		auth.PUT("/change-password", requireAuth, h.changePassword)
		auth.GET("/me", requireAuth, h.me)
	}
}

// register godoc
// @Summary Register new user
// @Description Creates an inactive employee account and emails a verification link.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "Registration details"
// @Success 201 {object} response.Envelope{data=dto.UserResponse}
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope "Email already registered"
// @Router /auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}
	user, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		fail(c, err, "Failed to register user")
		return
	}
	response.Created(c, "Registration successful. Please check your email to verify your account", dto.ToUserResponse(user))
}

// verify godoc
// @Summary Verify email address
// @Description Target of the emailed link. Redirects to the frontend on success, otherwise renders an error page.
// @Tags auth
// @Produce html
// @Param user_id query string true "User ID"
// @Param token query string true "Verification token"
// @Success 302 "Redirect to the frontend"
// @Failure 400 {string} string "HTML error page"
// @Router /auth/verify [get]
func (h *authHandler) verify(c *gin.Context) {
	var q dto.VerifyEmailQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		renderVerifyPage(c, http.StatusBadRequest, "This verification link is malformed.")
		return
	}
	if err := h.authService.VerifyEmail(c.Request.Context(), q.UserID, q.Token); err != nil {
		status := response.StatusFor(err)
		msg := "This verification link is invalid or has expired."
		if status >= http.StatusInternalServerError {
			middleware.GetLoggerFromContext(c).Error("Email verification failed", slog.String("error", err.Error()))
			msg = "We could not verify your account right now. Please try again later."
		}
		renderVerifyPage(c, status, msg)
		return
	}
	c.Redirect(http.StatusFound, h.verifyRedirect)
}

func renderVerifyPage(c *gin.Context, status int, message string) {
	body := fmt.Sprintf(`<!DOCTYPE html><html><head><meta charset="utf-8"><title>Email verification</title></head>`+
		`<body><h1>Email verification failed</h1><p>%s</p></body></html>`, html.EscapeString(message))
	c.Data(status, "text/html; charset=utf-8", []byte(body))
}

// resendVerification godoc
// @Summary Resend verification email
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.EmailRequest true "Account email"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /auth/resend-verification [post]
func (h *authHandler) resendVerification(c *gin.Context) {
	var req dto.EmailRequest
	if !bindJSON(c, &req) {
		return
	}
	activated, err := h.authService.ResendVerification(c.Request.Context(), req.Email)
	if err != nil {
		fail(c, err, "Failed to resend verification email")
		return
	}
	if activated {
		response.OK(c, "Account is already activated", nil)
		return
	}
	response.OK(c, "Verification email sent", nil)
}

// login godoc
// @Summary User login
// @Description Authenticates a user and returns an access token and a refresh token. Any previous session ends.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} response.Envelope{data=dto.LoginResponse}
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 403 {object} response.Envelope "Account not activated or blocked"
// @Failure 429 {object} response.Envelope
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		fail(c, err, "Invalid email or password")
		return
	}
	response.OK(c, "Login successful", resp)
}

// refresh godoc
// @Summary Refresh access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "User ID and refresh token"
// @Success 200 {object} response.Envelope{data=dto.RefreshTokenResponse}
// @Failure 401 {object} response.Envelope
// @Router /auth/refresh [post]
func (h *authHandler) refresh(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.authService.Refresh(c.Request.Context(), req)
	if err != nil {
		fail(c, err, "Invalid refresh token")
		return
	}
	response.OK(c, "Token refreshed", resp)
}

// forgotPassword godoc
// @Summary Request a password reset code
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.EmailRequest true "Account email"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /auth/forgot-password [post]
func (h *authHandler) forgotPassword(c *gin.Context) {
	var req dto.EmailRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.authService.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		fail(c, err, "Failed to send reset code")
		return
	}
	response.OK(c, "A reset code has been sent to your email", nil)
}

// resetPassword godoc
// @Summary Reset password with an emailed code
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.ResetPasswordRequest true "Email, code and new password"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope "Invalid or expired code"
// @Router /auth/reset-password [post]
func (h *authHandler) resetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.authService.ResetPassword(c.Request.Context(), req); err != nil {
		fail(c, err, "Failed to reset password")
		return
	}
	response.OK(c, "Password has been reset. Please log in again", nil)
}

// logout godoc
// @Summary Log out
// @Description Ends the current session by discarding the stored refresh token.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /auth/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	if err := h.authService.Logout(c.Request.Context(), user.UserID); err != nil {
		fail(c, err, "Failed to log out")
		return
	}
	response.OK(c, "Logged out", nil)
}

// changePassword godoc
// @Summary Change password
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ChangePasswordRequest true "Current and new password"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope "Current password is wrong"
// @Router /auth/change-password [put]
func (h *authHandler) changePassword(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.ChangePasswordRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.authService.ChangePassword(c.Request.Context(), user.UserID, req); err != nil {
		fail(c, err, "Failed to change password")
		return
	}
	response.OK(c, "Password changed", nil)
}

// me godoc
// @Summary Current user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope{data=dto.UserResponse}
// @Failure 401 {object} response.Envelope
// @Router /auth/me [get]
func (h *authHandler) me(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	response.OK(c, "Current user retrieved", dto.ToUserResponse(user))
}
