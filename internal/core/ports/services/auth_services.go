package services

import (
	"context"
	"time"

	"github.com/SscSPs/hrops_backend/internal/core/domain"
	"github.com/SscSPs/hrops_backend/internal/dto"
)

// TokenSvcFacade issues and checks session tokens.
type TokenSvcFacade interface {
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
	GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error)
	// ValidateAndParseRefreshToken validates a refresh token string against a user's stored token details.
	// It returns the user if the token is valid and not expired.
	ValidateAndParseRefreshToken(ctx context.Context, userID string, refreshTokenString string) (*domain.User, error)
}

// AuthSvcFacade covers registration, sign-in and credential recovery.
type AuthSvcFacade interface {
	// Register creates an inactive employee and emails a verification link.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// VerifyEmail consumes a verification token and activates the account.
	VerifyEmail(ctx context.Context, userID, token string) error

	// ResendVerification issues a fresh verification link. It reports true, and sends
	// nothing, when the account is already activated.
	ResendVerification(ctx context.Context, email string) (bool, error)

	// Login checks credentials and starts a new session, ending any previous one.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)

	// GoogleLogin starts a session for an existing account identified by a Google ID token.
	GoogleLogin(ctx context.Context, idToken string) (*dto.LoginResponse, error)

	// Refresh issues a new access token for a valid refresh token.
	Refresh(ctx context.Context, req dto.RefreshTokenRequest) (*dto.RefreshTokenResponse, error)

	// Logout ends the user's session.
	Logout(ctx context.Context, userID string) error

	// ForgotPassword emails a one-time reset code. Unknown emails are reported as not found.
	ForgotPassword(ctx context.Context, email string) error

	// ResetPassword consumes the reset code and replaces the password.
	ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) error

	// ChangePassword replaces the password after checking the current one.
	ChangePassword(ctx context.Context, userID string, req dto.ChangePasswordRequest) error
}

// NotificationSvc sends transactional email. Every method returns immediately;
// delivery happens in the background and failures are only logged.
type NotificationSvc interface {
	SendVerification(ctx context.Context, user *domain.User, link string)
	SendPasswordReset(ctx context.Context, user *domain.User, code string, ttl time.Duration)
	SendWelcome(ctx context.Context, user *domain.User)
	SendAccountStatus(ctx context.Context, user *domain.User, blocked bool)
	SendPayroll(ctx context.Context, user *domain.User, payroll *domain.Payroll)
}
