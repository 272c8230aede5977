package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/SscSPs/hrops_backend/internal/apperrors"
	"github.com/SscSPs/hrops_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/hrops_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hrops_backend/internal/core/ports/services"
	"github.com/SscSPs/hrops_backend/internal/dto"
	"github.com/SscSPs/hrops_backend/internal/platform/config"
	"github.com/SscSPs/hrops_backend/internal/utils"
	"google.golang.org/api/idtoken"
)

// tokenService implements the TokenSvcFacade for handling JWT and refresh tokens.
type tokenService struct {
	cfg      *config.Config
	userRepo portsrepo.UserReader
	now      func() time.Time
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config, userRepo portsrepo.UserReader) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg, userRepo: userRepo, now: time.Now}
}

// GenerateAccessToken creates a new JWT access token for the given user.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiryTime := s.now().Add(s.cfg.JWTExpiryDuration)
	accessToken, err := utils.GenerateJWT(user.UserID, string(user.Role), s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}
	return accessToken, expiryTime, nil
}

// GenerateRefreshToken creates a new opaque refresh token. Only its hash is ever stored.
func (s *tokenService) GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	rawRefreshToken, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate secure random string for refresh token: %w", err)
	}
	return rawRefreshToken, s.now().Add(s.cfg.RefreshTokenExpiryDuration), nil
}

// ValidateAndParseRefreshToken validates a refresh token string and returns the associated user.
func (s *tokenService) ValidateAndParseRefreshToken(ctx context.Context, userID string, refreshTokenString string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrValidation) {
			return nil, apperrors.New(apperrors.ErrUnauthorized, "Invalid refresh token")
		}
		return nil, fmt.Errorf("failed to retrieve user for refresh token validation: %w", err)
	}

	if user.RefreshTokenHash == "" || user.RefreshTokenExpiryTime == nil {
		return nil, apperrors.New(apperrors.ErrUnauthorized, "Invalid refresh token")
	}
	if s.now().After(*user.RefreshTokenExpiryTime) {
		return nil, apperrors.New(apperrors.ErrRefreshTokenExpired, "Refresh token has expired, please log in again")
	}
	if !utils.CompareRefreshTokenHash(refreshTokenString, user.RefreshTokenHash) {
		return nil, apperrors.New(apperrors.ErrUnauthorized, "Invalid refresh token")
	}
	return user, nil
}

// IDTokenValidator verifies a Google ID token for an audience. idtoken.Validate satisfies it.
type IDTokenValidator func(ctx context.Context, idToken string, audience string) (*idtoken.Payload, error)

const (
	otpDigits          = 6
	verificationTokenN = 32
	// maxResetAttempts wrong codes for one account invalidate its reset code.
	maxResetAttempts = 5
)

type authService struct {
	BaseService
	cfg            *config.Config
	userRepo       portsrepo.UserRepositoryFacade
	tokenRepo      portsrepo.TokenRepository
	tokens         portssvc.TokenSvcFacade
	notifier       portssvc.NotificationSvc
	validateGoogle IDTokenValidator
	resetFailures  *attemptLimiter
}

// AuthServiceOption configures optional authService dependencies.
type AuthServiceOption func(*authService)

// WithIDTokenValidator replaces the Google ID token validator.
func WithIDTokenValidator(v IDTokenValidator) AuthServiceOption {
	return func(s *authService) { s.validateGoogle = v }
}

// WithAuthClock pins the clock used for token expiry checks.
func WithAuthClock(now func() time.Time) AuthServiceOption {
	return func(s *authService) { s.Now = now }
}

// NewAuthService creates the authentication service.
func NewAuthService(
	cfg *config.Config,
	userRepo portsrepo.UserRepositoryFacade,
	tokenRepo portsrepo.TokenRepository,
	tokens portssvc.TokenSvcFacade,
	notifier portssvc.NotificationSvc,
	opts ...AuthServiceOption,
) portssvc.AuthSvcFacade {
	s := &authService{
		cfg:            cfg,
		userRepo:       userRepo,
		tokenRepo:      tokenRepo,
		tokens:         tokens,
		notifier:       notifier,
		validateGoogle: idtoken.Validate,
		resetFailures:  newAttemptLimiter(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	email := normalizeEmail(req.Email)
	if _, err := s.userRepo.FindUserByEmail(ctx, email); err == nil {
		return nil, apperrors.New(apperrors.ErrDuplicate, "Email is already registered")
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to look up email during registration")
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := s.now()
	user := &domain.User{
		FullName:     strings.TrimSpace(req.FullName),
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleEmployee,
		AuditFields:  newAudit(now, ""),
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.Wrap(apperrors.ErrDuplicate, "Email is already registered", err)
		}
		s.LogError(ctx, err, "Failed to save registered user", slog.String("email", email))
		return nil, err
	}

	if err := s.issueVerification(ctx, user); err != nil {
		// The account exists; the user can ask for a new link.
		s.LogError(ctx, err, "Failed to issue verification token", slog.String("user_id", user.UserID))
	}
	s.LogInfo(ctx, "User registered", slog.String("user_id", user.UserID))
	return user, nil
}

// issueVerification replaces any pending verification token and mails a new link.
func (s *authService) issueVerification(ctx context.Context, user *domain.User) error {
	if err := s.tokenRepo.DeleteUserTokens(ctx, user.UserID, domain.TokenEmailVerification); err != nil {
		return err
	}
	raw, err := utils.GenerateSecureRandomString(verificationTokenN)
	if err != nil {
		return err
	}
	token := &domain.Token{
		UserID:    user.UserID,
		Token:     raw,
		Purpose:   domain.TokenEmailVerification,
		CreatedAt: s.now(),
	}
	if err := s.tokenRepo.SaveToken(ctx, token); err != nil {
		return err
	}

	q := url.Values{}
	q.Set("user_id", user.UserID)
	q.Set("token", raw)
	link := s.cfg.AppBaseURL + "/api/v1/auth/verify?" + q.Encode()
	s.notifier.SendVerification(ctx, user, link)
	return nil
}

// consumeToken returns the matching unexpired token and deletes it.
func (s *authService) consumeToken(ctx context.Context, userID, raw string, purpose domain.TokenPurpose, invalidMsg string) error {
	token, err := s.tokenRepo.FindToken(ctx, userID, raw, purpose)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.New(apperrors.ErrValidation, invalidMsg)
		}
		return err
	}
	if err := s.tokenRepo.DeleteToken(ctx, token.TokenID); err != nil {
		return err
	}
	if token.Expired(s.cfg.OneTimeTokenTTL, s.now()) {
		return apperrors.New(apperrors.ErrValidation, invalidMsg)
	}
	return nil
}

func (s *authService) VerifyEmail(ctx context.Context, userID, token string) error {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return notFound(err, "User not found")
	}
	if user.IsActivated {
		return apperrors.New(apperrors.ErrConflict, "Account is already activated")
	}
	if err := s.consumeToken(ctx, user.UserID, token, domain.TokenEmailVerification, "Verification link is invalid or has expired"); err != nil {
		s.logUnexpected(ctx, err, "Failed to consume verification token", slog.String("user_id", userID))
		return err
	}
	if err := s.userRepo.ActivateUser(ctx, user.UserID, s.now()); err != nil {
		s.LogError(ctx, err, "Failed to activate user", slog.String("user_id", userID))
		return err
	}
	if err := s.tokenRepo.DeleteUserTokens(ctx, user.UserID, domain.TokenEmailVerification); err != nil {
		s.LogError(ctx, err, "Failed to clean up verification tokens", slog.String("user_id", userID))
	}

	user.IsActivated = true
	s.notifier.SendWelcome(ctx, user)
	s.LogInfo(ctx, "User activated", slog.String("user_id", userID))
	return nil
}

func (s *authService) ResendVerification(ctx context.Context, email string) (bool, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return false, notFound(err, "No account found with this email")
	}
	if user.IsActivated {
		return true, nil
	}
	if err := s.issueVerification(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to reissue verification token", slog.String("user_id", user.UserID))
		return false, err
	}
	return false, nil
}

// checkCanSignIn maps account state to the sign-in failure the client sees.
func checkCanSignIn(user *domain.User) error {
	switch {
	case user.IsBlocked:
		return apperrors.New(apperrors.ErrForbidden, "Account is blocked. Please contact an administrator")
	case !user.IsActivated:
		return apperrors.New(apperrors.ErrForbidden, "Account is not activated. Please verify your email")
	}
	return nil
}

// startSession issues a token pair and stores the refresh token hash, replacing any previous session.
func (s *authService) startSession(ctx context.Context, user *domain.User) (*dto.LoginResponse, error) {
	accessToken, _, err := s.tokens.GenerateAccessToken(ctx, user)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token", slog.String("user_id", user.UserID))
		return nil, err
	}
	refreshToken, refreshExpiry, err := s.tokens.GenerateRefreshToken(ctx, user)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate refresh token", slog.String("user_id", user.UserID))
		return nil, err
	}
	hash := utils.HashRefreshToken(refreshToken)
	if err := s.userRepo.UpdateRefreshToken(ctx, user.UserID, hash, &refreshExpiry); err != nil {
		s.LogError(ctx, err, "Failed to store refresh token", slog.String("user_id", user.UserID))
		return nil, err
	}
	user.RefreshTokenHash = hash
	user.RefreshTokenExpiryTime = &refreshExpiry

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.cfg.JWTExpiryDuration.Seconds()),
		User:         dto.ToUserResponse(user),
	}, nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	invalid := apperrors.New(apperrors.ErrUnauthorized, "Invalid email or password")

	user, err := s.userRepo.FindUserByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, invalid
		}
		s.LogError(ctx, err, "Failed to find user during login")
		return nil, err
	}
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.LogInfo(ctx, "Login failed: wrong password", slog.String("user_id", user.UserID))
		return nil, invalid
	}
	if err := checkCanSignIn(user); err != nil {
		return nil, err
	}

	resp, err := s.startSession(ctx, user)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "User logged in", slog.String("user_id", user.UserID))
	return resp, nil
}

func (s *authService) GoogleLogin(ctx context.Context, idToken string) (*dto.LoginResponse, error) {
	if s.cfg.GoogleClientID == "" {
		return nil, apperrors.New(apperrors.ErrMisconfigured, "Google sign-in is not configured")
	}
	payload, err := s.validateGoogle(ctx, idToken, s.cfg.GoogleClientID)
	if err != nil {
		s.LogInfo(ctx, "Google ID token rejected", slog.String("error", err.Error()))
		return nil, apperrors.Wrap(apperrors.ErrUnauthorized, "Invalid Google ID token", err)
	}
	email, _ := payload.Claims["email"].(string)
	verified, _ := payload.Claims["email_verified"].(bool)
	if email == "" || !verified {
		return nil, apperrors.New(apperrors.ErrUnauthorized, "Google account email is not verified")
	}

	user, err := s.userRepo.FindUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.New(apperrors.ErrForbidden, "No account is registered for this Google email")
		}
		return nil, err
	}
	if err := checkCanSignIn(user); err != nil {
		return nil, err
	}
	return s.startSession(ctx, user)
}

func (s *authService) Refresh(ctx context.Context, req dto.RefreshTokenRequest) (*dto.RefreshTokenResponse, error) {
	user, err := s.tokens.ValidateAndParseRefreshToken(ctx, req.UserID, req.RefreshToken)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to validate refresh token", slog.String("user_id", req.UserID))
		return nil, err
	}
	if err := checkCanSignIn(user); err != nil {
		return nil, err
	}
	accessToken, _, err := s.tokens.GenerateAccessToken(ctx, user)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token", slog.String("user_id", user.UserID))
		return nil, err
	}
	return &dto.RefreshTokenResponse{
		AccessToken: accessToken,
		ExpiresIn:   int64(s.cfg.JWTExpiryDuration.Seconds()),
	}, nil
}

func (s *authService) Logout(ctx context.Context, userID string) error {
	if err := s.userRepo.UpdateRefreshToken(ctx, userID, "", nil); err != nil {
		s.LogError(ctx, err, "Failed to clear refresh token", slog.String("user_id", userID))
		return err
	}
	return nil
}

func (s *authService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.userRepo.FindUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return notFound(err, "No account found with this email")
	}
	if user.IsBlocked {
		return apperrors.New(apperrors.ErrForbidden, "Account is blocked. Please contact an administrator")
	}

	if err := s.tokenRepo.DeleteUserTokens(ctx, user.UserID, domain.TokenPasswordReset); err != nil {
		s.LogError(ctx, err, "Failed to clear previous reset codes", slog.String("user_id", user.UserID))
		return err
	}
	code, err := utils.GenerateOTP(otpDigits)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate reset code")
		return err
	}
	token := &domain.Token{
		UserID:    user.UserID,
		Token:     code,
		Purpose:   domain.TokenPasswordReset,
		CreatedAt: s.now(),
	}
	if err := s.tokenRepo.SaveToken(ctx, token); err != nil {
		s.LogError(ctx, err, "Failed to save reset code", slog.String("user_id", user.UserID))
		return err
	}
	s.resetFailures.reset(user.UserID)
	s.notifier.SendPasswordReset(ctx, user, code, s.cfg.OneTimeTokenTTL)
	return nil
}

func (s *authService) ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) error {
	user, err := s.userRepo.FindUserByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		return notFound(err, "No account found with this email")
	}
	if err := s.consumeToken(ctx, user.UserID, req.OTP, domain.TokenPasswordReset, "Reset code is invalid or has expired"); err != nil {
		s.logUnexpected(ctx, err, "Failed to consume reset code", slog.String("user_id", user.UserID))
		if errors.Is(err, apperrors.ErrValidation) {
			s.recordResetFailure(ctx, user.UserID)
		}
		return err
	}
	s.resetFailures.reset(user.UserID)
	return s.setPassword(ctx, user.UserID, req.NewPassword)
}

// recordResetFailure drops the outstanding reset code once an account has
// collected maxResetAttempts wrong guesses within the code lifetime.
func (s *authService) recordResetFailure(ctx context.Context, userID string) {
	if s.resetFailures.addFailure(userID, s.now(), s.cfg.OneTimeTokenTTL) < maxResetAttempts {
		return
	}
	if err := s.tokenRepo.DeleteUserTokens(ctx, userID, domain.TokenPasswordReset); err != nil {
		s.LogError(ctx, err, "Failed to invalidate reset code", slog.String("user_id", userID))
		return
	}
	s.resetFailures.reset(userID)
	s.LogWarn(ctx, "Reset code invalidated after repeated wrong guesses", slog.String("user_id", userID))
}

func (s *authService) ChangePassword(ctx context.Context, userID string, req dto.ChangePasswordRequest) error {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return notFound(err, "User not found")
	}
	if !utils.CheckPasswordHash(req.OldPassword, user.PasswordHash) {
		return apperrors.New(apperrors.ErrValidation, "Current password is incorrect")
	}
	return s.setPassword(ctx, userID, req.NewPassword)
}

func (s *authService) setPassword(ctx context.Context, userID, password string) error {
	hash, err := utils.HashPassword(password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.userRepo.UpdatePassword(ctx, userID, hash, s.now()); err != nil {
		s.LogError(ctx, err, "Failed to update password", slog.String("user_id", userID))
		return err
	}
	s.LogInfo(ctx, "Password changed", slog.String("user_id", userID))
	return nil
}
