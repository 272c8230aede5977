package services

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"

	"github.com/SscSPs/hrops_backend/internal/apperrors"
	"github.com/SscSPs/hrops_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/hrops_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hrops_backend/internal/core/ports/services"
	"github.com/SscSPs/hrops_backend/internal/dto"
)

type projectService struct {
	BaseService
	projectRepo portsrepo.ProjectRepositoryFacade
	taskRepo    portsrepo.TaskRepositoryFacade
	userRepo    portsrepo.UserReader
}

// NewProjectService creates the project service.
func NewProjectService(
	projectRepo portsrepo.ProjectRepositoryFacade,
	taskRepo portsrepo.TaskRepositoryFacade,
	userRepo portsrepo.UserReader,
) portssvc.ProjectSvcFacade {
	return &projectService{projectRepo: projectRepo, taskRepo: taskRepo, userRepo: userRepo}
}

var _ portssvc.ProjectSvcFacade = (*projectService)(nil)

// canManage reports whether actor may change the project.
func canManage(actor *domain.User, p *domain.Project) bool {
	return actor.IsAdmin() || p.IsManager(actor.UserID)
}

// canView reports whether actor may read the project.
func canView(actor *domain.User, p *domain.Project) bool {
	return actor.IsAdmin() || p.Type == domain.ProjectPublic || p.HasParticipant(actor.UserID)
}

func (s *projectService) findProject(ctx context.Context, projectID string) (*domain.Project, error) {
	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to find project", slog.String("project_id", projectID))
		return nil, notFound(err, "Project not found")
	}
	return project, nil
}

// ensureUsersExist fails with a validation error unless every ID names an existing user.
func (s *projectService) ensureUsersExist(ctx context.Context, userIDs []string) error {
	if len(userIDs) == 0 {
		return nil
	}
	users, err := s.userRepo.FindUsersByIDs(ctx, userIDs)
	if err != nil {
		return err
	}
	if len(users) != len(userIDs) {
		return apperrors.New(apperrors.ErrValidation, "One or more users do not exist")
	}
	return nil
}

// uniqueMembers drops duplicates, blanks and the manager from ids.
func uniqueMembers(ids []string, managerID string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || id == managerID || slices.Contains(out, id) {
			continue
		}
		out = append(out, id)
	}
	return out
}

func (s *projectService) CreateProject(ctx context.Context, actor *domain.User, req dto.CreateProjectRequest) (*domain.Project, error) {
	if !hasRequiredRole(actor, domain.RoleAdmin, domain.RoleProjectManager) {
		return nil, apperrors.New(apperrors.ErrForbidden, "Only administrators and project managers can create projects")
	}

	managerID := req.ManagerID
	if managerID == "" {
		managerID = actor.UserID
	}
	members := uniqueMembers(req.Members, managerID)

	toCheck := members
	if managerID != actor.UserID {
		toCheck = append([]string{managerID}, members...)
	}
	if err := s.ensureUsersExist(ctx, toCheck); err != nil {
		return nil, err
	}

	projectType := req.Type
	if projectType == "" {
		projectType = domain.ProjectPublic
	}
	project := &domain.Project{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Type:        projectType,
		ManagerID:   managerID,
		Members:     members,
		Status:      domain.ProjectActive,
		AuditFields: newAudit(s.now(), actor.UserID),
	}
	if err := s.projectRepo.SaveProject(ctx, project); err != nil {
		s.LogError(ctx, err, "Failed to save project")
		return nil, err
	}
	s.LogInfo(ctx, "Project created", slog.String("project_id", project.ProjectID))
	return project, nil
}

func (s *projectService) ListProjects(ctx context.Context, actor *domain.User, filter domain.ProjectFilter, page domain.PageInfo) (domain.Page[domain.Project], error) {
	if !actor.IsAdmin() {
		filter.VisibleTo = actor.UserID
	}
	result, err := s.projectRepo.ListProjects(ctx, filter, page.Normalize())
	if err != nil {
		s.LogError(ctx, err, "Failed to list projects")
		return domain.Page[domain.Project]{}, err
	}
	return result, nil
}

func (s *projectService) GetProject(ctx context.Context, actor *domain.User, projectID string) (*domain.Project, error) {
	project, err := s.findProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if !canView(actor, project) {
		return nil, apperrors.New(apperrors.ErrForbidden, "You do not have access to this project")
	}
	return project, nil
}

func (s *projectService) UpdateProject(ctx context.Context, actor *domain.User, projectID string, req dto.UpdateProjectRequest) (*domain.Project, error) {
	project, err := s.findProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if !canManage(actor, project) {
		return nil, apperrors.New(apperrors.ErrForbidden, "Only the project manager or an administrator can update this project")
	}

	if req.Name != nil {
		project.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.Type != nil {
		project.Type = *req.Type
	}
	if req.ManagerID != nil && *req.ManagerID != project.ManagerID {
		if err := s.ensureUsersExist(ctx, []string{*req.ManagerID}); err != nil {
			return nil, err
		}
		// The previous manager stays on the project as a member.
		previous := project.ManagerID
		project.ManagerID = *req.ManagerID
		project.Members = uniqueMembers(append(project.Members, previous), project.ManagerID)
	}
	touch(&project.AuditFields, s.now(), actor.UserID)

	if err := s.projectRepo.UpdateProject(ctx, *project); err != nil {
		s.LogError(ctx, err, "Failed to update project", slog.String("project_id", projectID))
		return nil, err
	}
	return project, nil
}

func (s *projectService) DeleteProject(ctx context.Context, actor *domain.User, projectID string) error {
	project, err := s.findProject(ctx, projectID)
	if err != nil {
		return err
	}
	if !canManage(actor, project) {
		return apperrors.New(apperrors.ErrForbidden, "Only the project manager or an administrator can delete this project")
	}
	if err := s.projectRepo.MarkProjectDeleted(ctx, projectID, s.now(), actor.UserID); err != nil {
		s.LogError(ctx, err, "Failed to delete project", slog.String("project_id", projectID))
		return notFound(err, "Project not found")
	}
	s.LogInfo(ctx, "Project deleted", slog.String("project_id", projectID))
	return nil
}

func (s *projectService) CompleteProject(ctx context.Context, actor *domain.User, projectID string) (*domain.Project, error) {
	project, err := s.findProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if !canManage(actor, project) {
		return nil, apperrors.New(apperrors.ErrForbidden, "Only the project manager or an administrator can complete this project")
	}
	if project.Status == domain.ProjectCompleted {
		return nil, apperrors.New(apperrors.ErrConflict, "Project is already completed")
	}

	remaining, err := s.taskRepo.CountUnfinishedTasks(ctx, projectID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count unfinished tasks", slog.String("project_id", projectID))
		return nil, err
	}
	if remaining > 0 {
		return nil, apperrors.Newf(apperrors.ErrValidation, "Cannot complete project: %d task(s) are not done yet", remaining)
	}

	project.Status = domain.ProjectCompleted
	touch(&project.AuditFields, s.now(), actor.UserID)
	if err := s.projectRepo.UpdateProject(ctx, *project); err != nil {
		s.LogError(ctx, err, "Failed to complete project", slog.String("project_id", projectID))
		return nil, err
	}
	return project, nil
}

func (s *projectService) JoinProject(ctx context.Context, actor *domain.User, projectID string) (*domain.Project, error) {
	project, err := s.findProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project.Type != domain.ProjectPublic {
		return nil, apperrors.New(apperrors.ErrForbidden, "Only public projects can be joined")
	}
	if project.HasParticipant(actor.UserID) {
		return nil, apperrors.New(apperrors.ErrConflict, "You are already a member of this project")
	}

	now := s.now()
	if err := s.projectRepo.AddProjectMembers(ctx, projectID, []string{actor.UserID}, actor.UserID, now); err != nil {
		s.LogError(ctx, err, "Failed to join project", slog.String("project_id", projectID))
		return nil, err
	}
	project.Members = append(project.Members, actor.UserID)
	touch(&project.AuditFields, now, actor.UserID)
	return project, nil
}

func (s *projectService) AddMembers(ctx context.Context, actor *domain.User, projectID string, userIDs []string) (*domain.Project, error) {
	project, err := s.findProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if !canManage(actor, project) {
		return nil, apperrors.New(apperrors.ErrForbidden, "Only the project manager or an administrator can add members")
	}

	candidates := uniqueMembers(userIDs, project.ManagerID)
	toAdd := make([]string, 0, len(candidates))
	for _, id := range candidates {
		if !project.IsMember(id) {
			toAdd = append(toAdd, id)
		}
	}
	if len(toAdd) == 0 {
		return project, nil
	}
	if err := s.ensureUsersExist(ctx, toAdd); err != nil {
		return nil, err
	}

	now := s.now()
	if err := s.projectRepo.AddProjectMembers(ctx, projectID, toAdd, actor.UserID, now); err != nil {
		s.LogError(ctx, err, "Failed to add project members", slog.String("project_id", projectID))
		return nil, err
	}
	project.Members = append(project.Members, toAdd...)
	touch(&project.AuditFields, now, actor.UserID)
	return project, nil
}

func (s *projectService) RemoveMember(ctx context.Context, actor *domain.User, projectID, userID string) (*domain.Project, error) {
	project, err := s.findProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project.IsManager(userID) {
		return nil, apperrors.New(apperrors.ErrValidation, "The project manager cannot be removed from the project")
	}
	if !canManage(actor, project) && actor.UserID != userID {
		return nil, apperrors.New(apperrors.ErrForbidden, "Only the project manager or an administrator can remove members")
	}
	if !project.IsMember(userID) {
		return nil, apperrors.New(apperrors.ErrNotFound, "User is not a member of this project")
	}

	now := s.now()
	if err := s.projectRepo.RemoveProjectMember(ctx, projectID, userID, actor.UserID, now); err != nil {
		s.LogError(ctx, err, "Failed to remove project member", slog.String("project_id", projectID), slog.String("member_id", userID))
		return nil, err
	}
	reset, err := s.taskRepo.UnassignMemberTasks(ctx, projectID, userID, actor.UserID, now)
	if err != nil {
		s.LogError(ctx, err, "Failed to unassign tasks of removed member", slog.String("project_id", projectID), slog.String("member_id", userID))
		return nil, err
	}
	s.LogInfo(ctx, "Project member removed",
		slog.String("project_id", projectID),
		slog.String("member_id", userID),
		slog.Int64("tasks_unassigned", reset))

	project.Members = slices.DeleteFunc(project.Members, func(id string) bool { return id == userID })
	touch(&project.AuditFields, now, actor.UserID)
	return project, nil
}

func (s *projectService) ListMembers(ctx context.Context, actor *domain.User, projectID string) (*domain.User, []domain.User, error) {
	project, err := s.GetProject(ctx, actor, projectID)
	if err != nil {
		return nil, nil, err
	}
	manager, err := s.userRepo.FindUserByID(ctx, project.ManagerID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, err
		}
		manager = nil
	}
	members := []domain.User{}
	if len(project.Members) > 0 {
		if members, err = s.userRepo.FindUsersByIDs(ctx, project.Members); err != nil {
			s.LogError(ctx, err, "Failed to load project members", slog.String("project_id", projectID))
			return nil, nil, err
		}
	}
	return manager, members, nil
}
