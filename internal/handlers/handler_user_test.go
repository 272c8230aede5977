package handlers

import (
	"net/http"

	"github.com/SscSPs/hrops_backend/internal/apperrors"
	"github.com/SscSPs/hrops_backend/internal/core/domain"
	"github.com/SscSPs/hrops_backend/internal/dto"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) TestGetUser_OtherEmployeeForbidden() {
	w := suite.do(http.MethodGet, "/api/v1/users/"+testOtherID, nil, suite.employee)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.Equal("You can only access your own account", suite.decode(w).Message)
	suite.mockUserService.AssertNotCalled(suite.T(), "GetUser", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestGetUser_Self() {
	suite.mockUserService.On("GetUser", mock.Anything, suite.employee, testEmployeeID).Return(suite.employee, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/users/"+testEmployeeID, nil, suite.employee)

	suite.Equal(http.StatusOK, w.Code)
	var data dto.UserResponse
	suite.decodeData(suite.decode(w), &data)
	suite.Equal(testEmployeeID, data.UserID)
	suite.mockUserService.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestCreateUser_AdminOnly() {
	w := suite.do(http.MethodPost, "/api/v1/users", dto.CreateUserRequest{
		FullName: "Someone", Email: "someone@example.com", Password: "secret1",
	}, suite.employee)

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *HandlerTestSuite) TestCreateUser_DuplicateEmail() {
	suite.mockUserService.On("CreateUser", mock.Anything, suite.admin, mock.AnythingOfType("dto.CreateUserRequest")).
		Return(nil, apperrors.New(apperrors.ErrDuplicate, "Email is already registered")).Once()

	w := suite.do(http.MethodPost, "/api/v1/users", map[string]string{
		"full_name": "Someone", "email": "employee@example.com", "password": "secret1", "role": "team_leader",
	}, suite.admin)

	suite.Equal(http.StatusConflict, w.Code)
	suite.Equal("Email is already registered", suite.decode(w).Message)
}

func (suite *HandlerTestSuite) TestBlockUser() {
	blocked := *suite.employee
	blocked.IsBlocked = true
	suite.mockUserService.On("SetBlocked", mock.Anything, suite.admin, testEmployeeID, true).Return(&blocked, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/users/"+testEmployeeID+"/block", nil, suite.admin)

	suite.Equal(http.StatusOK, w.Code)
	env := suite.decode(w)
	suite.Equal("User blocked", env.Message)
	var data dto.UserResponse
	suite.decodeData(env, &data)
	suite.True(data.IsBlocked)
}

func (suite *HandlerTestSuite) TestListUsers_RoleFilter() {
	suite.mockUserService.On("ListUsers", mock.Anything,
		mock.MatchedBy(func(f domain.UserFilter) bool { return f.Role == domain.RoleTeamLeader && f.IsBlocked == nil }),
		domain.PageInfo{PageNum: 1, PageSize: 10}).
		Return(domain.Page[domain.User]{Records: []domain.User{*suite.employee}, TotalRecords: 1}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/users/list",
		map[string]any{"searchCondition": map[string]string{"role": "team_leader"}}, suite.admin)

	suite.Equal(http.StatusOK, w.Code)
	var data dto.ListResponse[dto.UserResponse]
	suite.decodeData(suite.decode(w), &data)
	suite.Len(data.Records, 1)
	suite.Equal(int64(1), data.Pagination.TotalRecords)
	suite.Equal(1, data.Pagination.TotalPages)
}
