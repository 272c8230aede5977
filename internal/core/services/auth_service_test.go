package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/hrops_backend/internal/apperrors"
	"github.com/SscSPs/hrops_backend/internal/core/domain"
	portssvc "github.com/SscSPs/hrops_backend/internal/core/ports/services"
	"github.com/SscSPs/hrops_backend/internal/core/services"
	"github.com/SscSPs/hrops_backend/internal/dto"
	"github.com/SscSPs/hrops_backend/internal/platform/config"
	"github.com/SscSPs/hrops_backend/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"google.golang.org/api/idtoken"
)

type AuthServiceTestSuite struct {
	suite.Suite
	ctx        context.Context
	now        time.Time
	cfg        *config.Config
	userRepo   *MockUserRepository
	tokenRepo  *MockTokenRepository
	notifier   *MockNotifier
	googleResp *idtoken.Payload
	googleErr  error
	service    portssvc.AuthSvcFacade
}

func (s *AuthServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.now = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	s.cfg = &config.Config{
		JWTSecret:                  "test-secret",
		JWTExpiryDuration:          15 * time.Minute,
		JWTIssuer:                  "hrops-test",
		RefreshTokenExpiryDuration: 24 * time.Hour,
		OneTimeTokenTTL:            10 * time.Minute,
		AppBaseURL:                 "https://api.example.com",
		GoogleClientID:             "client-id",
	}
	s.userRepo = new(MockUserRepository)
	s.tokenRepo = new(MockTokenRepository)
	s.notifier = new(MockNotifier)
	s.googleResp, s.googleErr = nil, nil

	validator := func(ctx context.Context, token, audience string) (*idtoken.Payload, error) {
		return s.googleResp, s.googleErr
	}
	s.service = services.NewAuthService(
		s.cfg, s.userRepo, s.tokenRepo,
		services.NewTokenService(s.cfg, s.userRepo),
		s.notifier,
		services.WithIDTokenValidator(validator),
		services.WithAuthClock(func() time.Time { return s.now }),
	)
}

func (s *AuthServiceTestSuite) TearDownTest() {
	s.userRepo.AssertExpectations(s.T())
	s.tokenRepo.AssertExpectations(s.T())
	s.notifier.AssertExpectations(s.T())
}

func (s *AuthServiceTestSuite) activeUser(password string) *domain.User {
	hash, err := utils.HashPassword(password)
	s.Require().NoError(err)
	return &domain.User{
		UserID:       "65f000000000000000000001",
		FullName:     "Jane Doe",
		Email:        "jane@example.com",
		PasswordHash: hash,
		Role:         domain.RoleEmployee,
		IsActivated:  true,
	}
}

func (s *AuthServiceTestSuite) TestRegister_CreatesInactiveUserAndMailsLink() {
	req := dto.RegisterRequest{FullName: " Jane Doe ", Email: "Jane@Example.com", Password: "secret123"}

	s.userRepo.On("FindUserByEmail", s.ctx, "jane@example.com").Return(nil, apperrors.ErrNotFound).Once()
	s.userRepo.On("SaveUser", s.ctx, mock.MatchedBy(func(u *domain.User) bool {
		return u.Email == "jane@example.com" && !u.IsActivated && u.Role == domain.RoleEmployee &&
			utils.CheckPasswordHash("secret123", u.PasswordHash)
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.User).UserID = "65f000000000000000000001"
	}).Return(nil).Once()
	s.tokenRepo.On("DeleteUserTokens", s.ctx, "65f000000000000000000001", domain.TokenEmailVerification).Return(nil).Once()
	s.tokenRepo.On("SaveToken", s.ctx, mock.MatchedBy(func(t *domain.Token) bool {
		return t.Purpose == domain.TokenEmailVerification && t.Token != "" && t.CreatedAt.Equal(s.now)
	})).Return(nil).Once()
	s.notifier.On("SendVerification", s.ctx, mock.Anything, mock.MatchedBy(func(link string) bool {
		return strings.HasPrefix(link, "https://api.example.com/api/v1/auth/verify?") &&
			strings.Contains(link, "user_id=65f000000000000000000001")
	})).Once()

	user, err := s.service.Register(s.ctx, req)

	s.Require().NoError(err)
	s.Equal("Jane Doe", user.FullName)
	s.False(user.IsActivated)
}

func (s *AuthServiceTestSuite) TestRegister_DuplicateEmail() {
	s.userRepo.On("FindUserByEmail", s.ctx, "jane@example.com").Return(s.activeUser("x"), nil).Once()

	_, err := s.service.Register(s.ctx, dto.RegisterRequest{FullName: "Jane", Email: "jane@example.com", Password: "secret123"})

	s.ErrorIs(err, apperrors.ErrDuplicate)
	s.userRepo.AssertNotCalled(s.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (s *AuthServiceTestSuite) TestLogin_WrongPassword() {
	s.userRepo.On("FindUserByEmail", s.ctx, "jane@example.com").Return(s.activeUser("secret123"), nil).Once()

	_, err := s.service.Login(s.ctx, dto.LoginRequest{Email: "jane@example.com", Password: "wrong"})

	s.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (s *AuthServiceTestSuite) TestLogin_InactiveAccountIsForbidden() {
	user := s.activeUser("secret123")
	user.IsActivated = false
	s.userRepo.On("FindUserByEmail", s.ctx, "jane@example.com").Return(user, nil).Once()

	_, err := s.service.Login(s.ctx, dto.LoginRequest{Email: "jane@example.com", Password: "secret123"})

	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *AuthServiceTestSuite) TestLogin_StoresHashOfNewRefreshToken() {
	user := s.activeUser("secret123")
	var storedHash string
	s.userRepo.On("FindUserByEmail", s.ctx, "jane@example.com").Return(user, nil).Once()
	s.userRepo.On("UpdateRefreshToken", s.ctx, user.UserID, mock.AnythingOfType("string"), mock.AnythingOfType("*time.Time")).
		Run(func(args mock.Arguments) { storedHash = args.String(2) }).
		Return(nil).Once()

	resp, err := s.service.Login(s.ctx, dto.LoginRequest{Email: "jane@example.com", Password: "secret123"})

	s.Require().NoError(err)
	s.NotEmpty(resp.AccessToken)
	s.Equal(int64(900), resp.ExpiresIn)
	s.True(utils.CompareRefreshTokenHash(resp.RefreshToken, storedHash))

	claims, err := utils.ParseAndValidateJWT(resp.AccessToken, s.cfg.JWTSecret)
	s.Require().NoError(err)
	s.Equal(user.UserID, claims.Subject)
	s.Equal(string(domain.RoleEmployee), claims.Role)
}

func (s *AuthServiceTestSuite) TestRefresh_ExpiredToken() {
	user := s.activeUser("secret123")
	past := time.Now().Add(-time.Hour)
	user.RefreshTokenHash = utils.HashRefreshToken("refresh")
	user.RefreshTokenExpiryTime = &past
	s.userRepo.On("FindUserByID", s.ctx, user.UserID).Return(user, nil).Once()

	_, err := s.service.Refresh(s.ctx, dto.RefreshTokenRequest{UserID: user.UserID, RefreshToken: "refresh"})

	s.ErrorIs(err, apperrors.ErrRefreshTokenExpired)
}

func (s *AuthServiceTestSuite) TestRefresh_SupersededTokenIsRejected() {
	user := s.activeUser("secret123")
	future := time.Now().Add(time.Hour)
	user.RefreshTokenHash = utils.HashRefreshToken("second-login")
	user.RefreshTokenExpiryTime = &future
	s.userRepo.On("FindUserByID", s.ctx, user.UserID).Return(user, nil).Once()

	_, err := s.service.Refresh(s.ctx, dto.RefreshTokenRequest{UserID: user.UserID, RefreshToken: "first-login"})

	s.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (s *AuthServiceTestSuite) TestResendVerification_AlreadyActivatedIsIdempotent() {
	s.userRepo.On("FindUserByEmail", s.ctx, "jane@example.com").Return(s.activeUser("x"), nil).Twice()

	for range 2 {
		already, err := s.service.ResendVerification(s.ctx, "jane@example.com")
		s.Require().NoError(err)
		s.True(already)
	}
	s.tokenRepo.AssertNotCalled(s.T(), "SaveToken", mock.Anything, mock.Anything)
}

func (s *AuthServiceTestSuite) TestVerifyEmail_ExpiredTokenIsConsumedAndRejected() {
	user := s.activeUser("x")
	user.IsActivated = false
	token := &domain.Token{TokenID: "tok", UserID: user.UserID, Token: "abc", CreatedAt: s.now.Add(-11 * time.Minute)}

	s.userRepo.On("FindUserByID", s.ctx, user.UserID).Return(user, nil).Once()
	s.tokenRepo.On("FindToken", s.ctx, user.UserID, "abc", domain.TokenEmailVerification).Return(token, nil).Once()
	s.tokenRepo.On("DeleteToken", s.ctx, "tok").Return(nil).Once()

	err := s.service.VerifyEmail(s.ctx, user.UserID, "abc")

	s.ErrorIs(err, apperrors.ErrValidation)
	s.userRepo.AssertNotCalled(s.T(), "ActivateUser", mock.Anything, mock.Anything, mock.Anything)
}

func (s *AuthServiceTestSuite) TestVerifyEmail_ActivatesAndWelcomes() {
	user := s.activeUser("x")
	user.IsActivated = false
	token := &domain.Token{TokenID: "tok", UserID: user.UserID, Token: "abc", CreatedAt: s.now.Add(-time.Minute)}

	s.userRepo.On("FindUserByID", s.ctx, user.UserID).Return(user, nil).Once()
	s.tokenRepo.On("FindToken", s.ctx, user.UserID, "abc", domain.TokenEmailVerification).Return(token, nil).Once()
	s.tokenRepo.On("DeleteToken", s.ctx, "tok").Return(nil).Once()
	s.userRepo.On("ActivateUser", s.ctx, user.UserID, s.now).Return(nil).Once()
	s.tokenRepo.On("DeleteUserTokens", s.ctx, user.UserID, domain.TokenEmailVerification).Return(nil).Once()
	s.notifier.On("SendWelcome", s.ctx, user).Once()

	s.Require().NoError(s.service.VerifyEmail(s.ctx, user.UserID, "abc"))
	s.True(user.IsActivated)
}

func (s *AuthServiceTestSuite) TestVerifyEmail_AlreadyActivated() {
	s.userRepo.On("FindUserByID", s.ctx, "65f000000000000000000001").Return(s.activeUser("x"), nil).Once()

	err := s.service.VerifyEmail(s.ctx, "65f000000000000000000001", "abc")

	s.ErrorIs(err, apperrors.ErrConflict)
}

func (s *AuthServiceTestSuite) TestForgotAndResetPassword() {
	user := s.activeUser("old-password")
	var code string

	s.userRepo.On("FindUserByEmail", s.ctx, "jane@example.com").Return(user, nil).Twice()
	s.tokenRepo.On("DeleteUserTokens", s.ctx, user.UserID, domain.TokenPasswordReset).Return(nil).Once()
	s.tokenRepo.On("SaveToken", s.ctx, mock.AnythingOfType("*domain.Token")).
		Run(func(args mock.Arguments) {
			t := args.Get(1).(*domain.Token)
			t.TokenID = "reset-tok"
			code = t.Token
		}).Return(nil).Once()
	s.notifier.On("SendPasswordReset", s.ctx, user, mock.AnythingOfType("string"), 10*time.Minute).Once()

	s.Require().NoError(s.service.ForgotPassword(s.ctx, "jane@example.com"))
	s.Len(code, 6)

	s.tokenRepo.On("FindToken", s.ctx, user.UserID, code, domain.TokenPasswordReset).
		Return(&domain.Token{TokenID: "reset-tok", CreatedAt: s.now}, nil).Once()
	s.tokenRepo.On("DeleteToken", s.ctx, "reset-tok").Return(nil).Once()
	s.userRepo.On("UpdatePassword", s.ctx, user.UserID, mock.MatchedBy(func(hash string) bool {
		return utils.CheckPasswordHash("new-password", hash)
	}), s.now).Return(nil).Once()

	err := s.service.ResetPassword(s.ctx, dto.ResetPasswordRequest{Email: "jane@example.com", OTP: code, NewPassword: "new-password"})
	s.Require().NoError(err)
}

func (s *AuthServiceTestSuite) TestResetPassword_WrongGuessesInvalidateCode() {
	user := s.activeUser("old-password")
	s.userRepo.On("FindUserByEmail", s.ctx, "jane@example.com").Return(user, nil).Times(5)
	s.tokenRepo.On("FindToken", s.ctx, user.UserID, "000000", domain.TokenPasswordReset).
		Return(nil, apperrors.ErrNotFound).Times(5)
	s.tokenRepo.On("DeleteUserTokens", s.ctx, user.UserID, domain.TokenPasswordReset).Return(nil).Once()

	req := dto.ResetPasswordRequest{Email: "jane@example.com", OTP: "000000", NewPassword: "new-password"}
	for i := 0; i < 4; i++ {
		s.Require().ErrorIs(s.service.ResetPassword(s.ctx, req), apperrors.ErrValidation)
		s.tokenRepo.AssertNotCalled(s.T(), "DeleteUserTokens", s.ctx, user.UserID, domain.TokenPasswordReset)
	}

	s.Require().ErrorIs(s.service.ResetPassword(s.ctx, req), apperrors.ErrValidation)
	s.tokenRepo.AssertCalled(s.T(), "DeleteUserTokens", s.ctx, user.UserID, domain.TokenPasswordReset)
	s.userRepo.AssertNotCalled(s.T(), "UpdatePassword", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *AuthServiceTestSuite) TestResetPassword_OldFailuresLeaveTheWindow() {
	user := s.activeUser("old-password")
	s.userRepo.On("FindUserByEmail", s.ctx, "jane@example.com").Return(user, nil).Times(5)
	s.tokenRepo.On("FindToken", s.ctx, user.UserID, "000000", domain.TokenPasswordReset).
		Return(nil, apperrors.ErrNotFound).Times(5)

	req := dto.ResetPasswordRequest{Email: "jane@example.com", OTP: "000000", NewPassword: "new-password"}
	for i := 0; i < 4; i++ {
		s.Require().Error(s.service.ResetPassword(s.ctx, req))
	}
	s.now = s.now.Add(11 * time.Minute)
	s.Require().Error(s.service.ResetPassword(s.ctx, req))

	s.tokenRepo.AssertNotCalled(s.T(), "DeleteUserTokens", mock.Anything, mock.Anything, mock.Anything)
}

func (s *AuthServiceTestSuite) TestChangePassword_WrongCurrentPassword() {
	user := s.activeUser("old-password")
	s.userRepo.On("FindUserByID", s.ctx, user.UserID).Return(user, nil).Once()

	err := s.service.ChangePassword(s.ctx, user.UserID, dto.ChangePasswordRequest{OldPassword: "nope", NewPassword: "new-password"})

	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *AuthServiceTestSuite) TestGoogleLogin_UnknownEmailIsForbidden() {
	s.googleResp = &idtoken.Payload{Claims: map[string]any{"email": "ghost@example.com", "email_verified": true}}
	s.userRepo.On("FindUserByEmail", s.ctx, "ghost@example.com").Return(nil, apperrors.ErrNotFound).Once()

	_, err := s.service.GoogleLogin(s.ctx, "id-token")

	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *AuthServiceTestSuite) TestGoogleLogin_InvalidToken() {
	s.googleErr = errors.New("bad audience")

	_, err := s.service.GoogleLogin(s.ctx, "id-token")

	s.ErrorIs(err, apperrors.ErrUnauthorized)
}

func TestAuthService(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
