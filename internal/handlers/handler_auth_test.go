package handlers

import (
	"net/http"
	"strings"

	"github.com/SscSPs/hrops_backend/internal/apperrors"
	"github.com/SscSPs/hrops_backend/internal/dto"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) TestLogin_Success() {
	req := dto.LoginRequest{Email: "employee@example.com", Password: "secret1"}
	suite.mockAuthService.On("Login", mock.Anything, req).Return(&dto.LoginResponse{
		AccessToken:  "access",
		RefreshToken: "refresh",
		ExpiresIn:    900,
		User:         dto.ToUserResponse(suite.employee),
	}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/login", req, nil)

	suite.Equal(http.StatusOK, w.Code)
	env := suite.decode(w)
	suite.True(env.OK)
	suite.Equal("Login successful", env.Message)
	var data dto.LoginResponse
	suite.decodeData(env, &data)
	suite.Equal("access", data.AccessToken)
	suite.Equal("refresh", data.RefreshToken)
	suite.Equal(testEmployeeID, data.User.UserID)
}

func (suite *HandlerTestSuite) TestLogin_InvalidEmail() {
	w := suite.do(http.MethodPost, "/api/v1/auth/login", map[string]string{"email": "nope", "password": "x"}, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	env := suite.decode(w)
	suite.False(env.OK)
	suite.Equal("email must be a valid email address", env.Message)
	suite.mockAuthService.AssertNotCalled(suite.T(), "Login", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestLogin_WrongCredentials() {
	suite.mockAuthService.On("Login", mock.Anything, mock.Anything).
		Return(nil, apperrors.New(apperrors.ErrUnauthorized, "Invalid email or password")).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/login",
		dto.LoginRequest{Email: "employee@example.com", Password: "wrong"}, nil)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal("Invalid email or password", suite.decode(w).Message)
}

func (suite *HandlerTestSuite) TestLogin_RateLimited() {
	suite.mockAuthService.On("Login", mock.Anything, mock.Anything).
		Return(nil, apperrors.New(apperrors.ErrUnauthorized, "Invalid email or password")).Times(3)
	body := dto.LoginRequest{Email: "employee@example.com", Password: "wrong"}

	for i := 0; i < 3; i++ {
		w := suite.do(http.MethodPost, "/api/v1/auth/login", body, nil)
		suite.Equal(http.StatusUnauthorized, w.Code)
	}
	w := suite.do(http.MethodPost, "/api/v1/auth/login", body, nil)

	suite.Equal(http.StatusTooManyRequests, w.Code)
	suite.Equal("0", w.Header().Get("X-RateLimit-Remaining"))
	suite.False(suite.decode(w).OK)
}

func (suite *HandlerTestSuite) TestRegister_DuplicateEmail() {
	req := dto.RegisterRequest{FullName: "New Person", Email: "taken@example.com", Password: "secret1"}
	suite.mockAuthService.On("Register", mock.Anything, req).
		Return(nil, apperrors.New(apperrors.ErrDuplicate, "Email is already registered")).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/register", req, nil)

	suite.Equal(http.StatusConflict, w.Code)
	suite.Equal("Email is already registered", suite.decode(w).Message)
}

func (suite *HandlerTestSuite) TestVerify_RedirectsOnSuccess() {
	suite.mockAuthService.On("VerifyEmail", mock.Anything, testEmployeeID, "tok").Return(nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/auth/verify?user_id="+testEmployeeID+"&token=tok", nil, nil)

	suite.Equal(http.StatusFound, w.Code)
	suite.Equal(verifyRedirect, w.Header().Get("Location"))
}

func (suite *HandlerTestSuite) TestVerify_RendersPageOnInvalidToken() {
	suite.mockAuthService.On("VerifyEmail", mock.Anything, testEmployeeID, "stale").
		Return(apperrors.New(apperrors.ErrValidation, "Verification link is invalid or expired")).Once()

	w := suite.do(http.MethodGet, "/api/v1/auth/verify?user_id="+testEmployeeID+"&token=stale", nil, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.True(strings.HasPrefix(w.Header().Get("Content-Type"), "text/html"))
	suite.Contains(w.Body.String(), "invalid or has expired")
}

func (suite *HandlerTestSuite) TestVerify_MalformedLink() {
	w := suite.do(http.MethodGet, "/api/v1/auth/verify?user_id=not-an-id&token=tok", nil, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "malformed")
}

func (suite *HandlerTestSuite) TestResendVerification_AlreadyActivated() {
	suite.mockAuthService.On("ResendVerification", mock.Anything, "employee@example.com").Return(true, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/resend-verification",
		dto.EmailRequest{Email: "employee@example.com"}, nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("Account is already activated", suite.decode(w).Message)
}

func (suite *HandlerTestSuite) TestMe_RequiresBearer() {
	w := suite.do(http.MethodGet, "/api/v1/auth/me", nil, nil)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal("Authorization header required", suite.decode(w).Message)
}

func (suite *HandlerTestSuite) TestMe_OmitsPassword() {
	w := suite.do(http.MethodGet, "/api/v1/auth/me", nil, suite.employee)

	suite.Equal(http.StatusOK, w.Code)
	env := suite.decode(w)
	var data dto.UserResponse
	suite.decodeData(env, &data)
	suite.Equal("employee@example.com", data.Email)
	suite.NotContains(strings.ToLower(string(env.Data)), "password")
}

func (suite *HandlerTestSuite) TestMe_BlockedAccount() {
	blocked := *suite.employee
	blocked.UserID = testOtherID
	blocked.IsBlocked = true
	suite.mockUserService.On("GetUserByID", mock.Anything, testOtherID).Return(&blocked, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/auth/me", nil, &blocked)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.Equal("Account is blocked", suite.decode(w).Message)
}

func (suite *HandlerTestSuite) TestLogout_EndsSession() {
	suite.mockAuthService.On("Logout", mock.Anything, testEmployeeID).Return(nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/logout", nil, suite.employee)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("Logged out", suite.decode(w).Message)
}
