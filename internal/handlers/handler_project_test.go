package handlers

import (
	"net/http"

	"github.com/SscSPs/hrops_backend/internal/apperrors"
	"github.com/SscSPs/hrops_backend/internal/core/domain"
	"github.com/SscSPs/hrops_backend/internal/dto"
	"github.com/stretchr/testify/mock"
)

const testProjectID = "650000000000000000000b01"

func (suite *HandlerTestSuite) TestListProjects_FilterAndPagination() {
	filter := domain.ProjectFilter{Keyword: "web", Status: domain.ProjectStatus("active")}
	page := domain.PageInfo{PageNum: 2, PageSize: 10}
	suite.mockProjectService.On("ListProjects", mock.Anything, suite.employee, filter, page).
		Return(domain.Page[domain.Project]{
			Records:      []domain.Project{{ProjectID: testProjectID, Name: "Website", ManagerID: testAdminID}},
			TotalRecords: 25,
			PageInfo:     page,
		}, nil).Once()

	body := map[string]any{
		"searchCondition": map[string]string{"keyword": "web", "status": "active"},
		"pageInfo":        map[string]int{"pageNum": 2, "pageSize": 10},
	}
	w := suite.do(http.MethodPost, "/api/v1/projects/list", body, suite.employee)

	suite.Equal(http.StatusOK, w.Code)
	var data dto.ListResponse[dto.ProjectResponse]
	suite.decodeData(suite.decode(w), &data)
	suite.Require().Len(data.Records, 1)
	suite.Equal(testProjectID, data.Records[0].ProjectID)
	suite.Equal([]string{}, data.Records[0].Members)
	suite.Equal(dto.PaginationResponse{CurrentPage: 2, TotalPages: 3, TotalRecords: 25}, data.Pagination)
}

func (suite *HandlerTestSuite) TestListProjects_PageNumTooLarge() {
	body := map[string]any{"pageInfo": map[string]int64{"pageNum": 1 << 62, "pageSize": 100}}

	w := suite.do(http.MethodPost, "/api/v1/projects/list", body, suite.employee)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("pageNum failed the max=1000000 constraint", suite.decode(w).Message)
}

func (suite *HandlerTestSuite) TestListProjects_PageSizeTooLarge() {
	body := map[string]any{"pageInfo": map[string]int{"pageNum": 1, "pageSize": 500}}

	w := suite.do(http.MethodPost, "/api/v1/projects/list", body, suite.employee)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("pageSize failed the max=100 constraint", suite.decode(w).Message)
}

func (suite *HandlerTestSuite) TestCreateProject_InvalidType() {
	w := suite.do(http.MethodPost, "/api/v1/projects", map[string]string{"name": "Payroll v2", "type": "secret"}, suite.admin)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("type must be one of: public private", suite.decode(w).Message)
}

func (suite *HandlerTestSuite) TestCompleteProject_UnfinishedTasks() {
	suite.mockProjectService.On("CompleteProject", mock.Anything, suite.admin, testProjectID).
		Return(nil, apperrors.New(apperrors.ErrValidation, "Project still has 2 unfinished tasks")).Once()

	w := suite.do(http.MethodPost, "/api/v1/projects/"+testProjectID+"/complete", nil, suite.admin)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Project still has 2 unfinished tasks", suite.decode(w).Message)
}

func (suite *HandlerTestSuite) TestAddMembers_InvalidUserID() {
	w := suite.do(http.MethodPost, "/api/v1/projects/"+testProjectID+"/members",
		map[string][]string{"user_ids": {"bogus"}}, suite.admin)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("user_ids[0] must be a valid id", suite.decode(w).Message)
}

func (suite *HandlerTestSuite) TestListMembers_IncludesManager() {
	suite.mockProjectService.On("ListMembers", mock.Anything, suite.employee, testProjectID).
		Return(suite.admin, []domain.User{*suite.employee}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/projects/"+testProjectID+"/members", nil, suite.employee)

	suite.Equal(http.StatusOK, w.Code)
	var data dto.ProjectMembersResponse
	suite.decodeData(suite.decode(w), &data)
	suite.Require().NotNil(data.Manager)
	suite.Equal(testAdminID, data.Manager.UserID)
	suite.Require().Len(data.Members, 1)
	suite.Equal(testEmployeeID, data.Members[0].UserID)
}

func (suite *HandlerTestSuite) TestRemoveMember_Manager() {
	suite.mockProjectService.On("RemoveMember", mock.Anything, suite.admin, testProjectID, testAdminID).
		Return(nil, apperrors.New(apperrors.ErrValidation, "The project manager cannot be removed")).Once()

	w := suite.do(http.MethodDelete, "/api/v1/projects/"+testProjectID+"/members/"+testAdminID, nil, suite.admin)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("The project manager cannot be removed", suite.decode(w).Message)
}
