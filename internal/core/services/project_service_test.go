package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/hrops_backend/internal/apperrors"
	"github.com/SscSPs/hrops_backend/internal/core/domain"
	portssvc "github.com/SscSPs/hrops_backend/internal/core/ports/services"
	"github.com/SscSPs/hrops_backend/internal/core/services"
	"github.com/SscSPs/hrops_backend/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const (
	adminID   = "65f0000000000000000000a1"
	managerID = "65f0000000000000000000b1"
	memberID  = "65f0000000000000000000c1"
	outsideID = "65f0000000000000000000d1"
	projectID = "65f0000000000000000000e1"
)

var (
	adminUser    = &domain.User{UserID: adminID, Role: domain.RoleAdmin, IsActivated: true}
	managerUser  = &domain.User{UserID: managerID, Role: domain.RoleProjectManager, IsActivated: true}
	memberUser   = &domain.User{UserID: memberID, Role: domain.RoleEmployee, IsActivated: true}
	outsiderUser = &domain.User{UserID: outsideID, Role: domain.RoleEmployee, IsActivated: true}
)

func sampleProject() *domain.Project {
	return &domain.Project{
		ProjectID: projectID,
		Name:      "Payroll revamp",
		Type:      domain.ProjectPrivate,
		ManagerID: managerID,
		Members:   []string{memberID},
		Status:    domain.ProjectActive,
	}
}

type ProjectServiceTestSuite struct {
	suite.Suite
	ctx         context.Context
	projectRepo *MockProjectRepository
	taskRepo    *MockTaskRepository
	userRepo    *MockUserRepository
	service     portssvc.ProjectSvcFacade
}

func (s *ProjectServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.projectRepo = new(MockProjectRepository)
	s.taskRepo = new(MockTaskRepository)
	s.userRepo = new(MockUserRepository)
	s.service = services.NewProjectService(s.projectRepo, s.taskRepo, s.userRepo)
}

func (s *ProjectServiceTestSuite) TearDownTest() {
	s.projectRepo.AssertExpectations(s.T())
	s.taskRepo.AssertExpectations(s.T())
	s.userRepo.AssertExpectations(s.T())
}

func (s *ProjectServiceTestSuite) TestCreateProject_DefaultsManagerToRequester() {
	s.userRepo.On("FindUsersByIDs", s.ctx, []string{memberID}).Return([]domain.User{*memberUser}, nil).Once()
	s.projectRepo.On("SaveProject", s.ctx, mock.MatchedBy(func(p *domain.Project) bool {
		return p.ManagerID == managerID && p.Type == domain.ProjectPublic && p.Status == domain.ProjectActive
	})).Return(nil).Once()

	project, err := s.service.CreateProject(s.ctx, managerUser, dto.CreateProjectRequest{
		Name:    "Onboarding",
		Members: []string{memberID, managerID, memberID},
	})

	s.Require().NoError(err)
	s.Equal([]string{memberID}, project.Members)
}

func (s *ProjectServiceTestSuite) TestCreateProject_EmployeeIsForbidden() {
	_, err := s.service.CreateProject(s.ctx, memberUser, dto.CreateProjectRequest{Name: "Side project"})
	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *ProjectServiceTestSuite) TestListProjects_NonAdminSeesVisibleOnly() {
	page := domain.PageInfo{PageNum: 1, PageSize: 10}
	s.projectRepo.On("ListProjects", s.ctx, domain.ProjectFilter{VisibleTo: memberID}, page).
		Return(domain.Page[domain.Project]{}, nil).Once()

	_, err := s.service.ListProjects(s.ctx, memberUser, domain.ProjectFilter{}, domain.PageInfo{})
	s.Require().NoError(err)
}

func (s *ProjectServiceTestSuite) TestGetProject_PrivateProjectHiddenFromOutsiders() {
	s.projectRepo.On("FindProjectByID", s.ctx, projectID).Return(sampleProject(), nil).Once()

	_, err := s.service.GetProject(s.ctx, outsiderUser, projectID)
	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *ProjectServiceTestSuite) TestCompleteProject_RejectsWithRemainingCount() {
	s.projectRepo.On("FindProjectByID", s.ctx, projectID).Return(sampleProject(), nil).Once()
	s.taskRepo.On("CountUnfinishedTasks", s.ctx, projectID).Return(int64(3), nil).Once()

	_, err := s.service.CompleteProject(s.ctx, managerUser, projectID)

	s.Require().ErrorIs(err, apperrors.ErrValidation)
	s.Contains(err.Error(), "3 task(s)")
}

func (s *ProjectServiceTestSuite) TestCompleteProject_AllTasksDone() {
	s.projectRepo.On("FindProjectByID", s.ctx, projectID).Return(sampleProject(), nil).Once()
	s.taskRepo.On("CountUnfinishedTasks", s.ctx, projectID).Return(int64(0), nil).Once()
	s.projectRepo.On("UpdateProject", s.ctx, mock.MatchedBy(func(p domain.Project) bool {
		return p.Status == domain.ProjectCompleted && p.LastUpdatedBy == adminID
	})).Return(nil).Once()

	project, err := s.service.CompleteProject(s.ctx, adminUser, projectID)

	s.Require().NoError(err)
	s.Equal(domain.ProjectCompleted, project.Status)
}

func (s *ProjectServiceTestSuite) TestJoinProject_PrivateIsForbidden() {
	s.projectRepo.On("FindProjectByID", s.ctx, projectID).Return(sampleProject(), nil).Once()

	_, err := s.service.JoinProject(s.ctx, outsiderUser, projectID)
	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *ProjectServiceTestSuite) TestJoinProject_AlreadyMember() {
	p := sampleProject()
	p.Type = domain.ProjectPublic
	s.projectRepo.On("FindProjectByID", s.ctx, projectID).Return(p, nil).Once()

	_, err := s.service.JoinProject(s.ctx, memberUser, projectID)
	s.ErrorIs(err, apperrors.ErrConflict)
}

func (s *ProjectServiceTestSuite) TestJoinProject_Public() {
	p := sampleProject()
	p.Type = domain.ProjectPublic
	s.projectRepo.On("FindProjectByID", s.ctx, projectID).Return(p, nil).Once()
	s.projectRepo.On("AddProjectMembers", s.ctx, projectID, []string{outsideID}, outsideID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	project, err := s.service.JoinProject(s.ctx, outsiderUser, projectID)

	s.Require().NoError(err)
	s.True(project.IsMember(outsideID))
}

func (s *ProjectServiceTestSuite) TestAddMembers_UnknownUser() {
	s.projectRepo.On("FindProjectByID", s.ctx, projectID).Return(sampleProject(), nil).Once()
	s.userRepo.On("FindUsersByIDs", s.ctx, []string{outsideID}).Return([]domain.User{}, nil).Once()

	_, err := s.service.AddMembers(s.ctx, managerUser, projectID, []string{outsideID, memberID})
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *ProjectServiceTestSuite) TestRemoveMember_ManagerCannotBeRemoved() {
	s.projectRepo.On("FindProjectByID", s.ctx, projectID).Return(sampleProject(), nil).Once()

	_, err := s.service.RemoveMember(s.ctx, adminUser, projectID, managerID)

	s.Require().ErrorIs(err, apperrors.ErrValidation)
	s.projectRepo.AssertNotCalled(s.T(), "RemoveProjectMember", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *ProjectServiceTestSuite) TestRemoveMember_UnassignsTasks() {
	s.projectRepo.On("FindProjectByID", s.ctx, projectID).Return(sampleProject(), nil).Once()
	s.projectRepo.On("RemoveProjectMember", s.ctx, projectID, memberID, managerID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	s.taskRepo.On("UnassignMemberTasks", s.ctx, projectID, memberID, managerID, mock.AnythingOfType("time.Time")).Return(int64(2), nil).Once()

	project, err := s.service.RemoveMember(s.ctx, managerUser, projectID, memberID)

	s.Require().NoError(err)
	s.Empty(project.Members)
}

func (s *ProjectServiceTestSuite) TestRemoveMember_NotAMember() {
	s.projectRepo.On("FindProjectByID", s.ctx, projectID).Return(sampleProject(), nil).Once()

	_, err := s.service.RemoveMember(s.ctx, managerUser, projectID, outsideID)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *ProjectServiceTestSuite) TestDeleteProject_MemberIsForbidden() {
	s.projectRepo.On("FindProjectByID", s.ctx, projectID).Return(sampleProject(), nil).Once()

	err := s.service.DeleteProject(s.ctx, memberUser, projectID)
	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *ProjectServiceTestSuite) TestUpdateProject_NewManagerKeepsOldOneAsMember() {
	newManager := outsideID
	s.projectRepo.On("FindProjectByID", s.ctx, projectID).Return(sampleProject(), nil).Once()
	s.userRepo.On("FindUsersByIDs", s.ctx, []string{outsideID}).Return([]domain.User{*outsiderUser}, nil).Once()
	s.projectRepo.On("UpdateProject", s.ctx, mock.AnythingOfType("domain.Project")).Return(nil).Once()

	project, err := s.service.UpdateProject(s.ctx, adminUser, projectID, dto.UpdateProjectRequest{ManagerID: &newManager})

	s.Require().NoError(err)
	s.Equal(outsideID, project.ManagerID)
	s.ElementsMatch([]string{memberID, managerID}, project.Members)
}

func (s *ProjectServiceTestSuite) TestProjectNotFound() {
	s.projectRepo.On("FindProjectByID", s.ctx, projectID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := s.service.GetProject(s.ctx, adminUser, projectID)

	s.Require().ErrorIs(err, apperrors.ErrNotFound)
	msg, ok := apperrors.Message(err)
	s.True(ok)
	s.Equal("Project not found", msg)
}

func TestProjectService(t *testing.T) {
	suite.Run(t, new(ProjectServiceTestSuite))
}
