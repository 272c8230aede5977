package services

import (
	"context"

	"github.com/SscSPs/hrops_backend/internal/core/domain"
	"github.com/SscSPs/hrops_backend/internal/dto"
)

// ProjectSvcFacade manages projects and their membership.
type ProjectSvcFacade interface {
	CreateProject(ctx context.Context, actor *domain.User, req dto.CreateProjectRequest) (*domain.Project, error)
	// ListProjects returns every project to admins; others see public projects and their own.
	ListProjects(ctx context.Context, actor *domain.User, filter domain.ProjectFilter, page domain.PageInfo) (domain.Page[domain.Project], error)
	GetProject(ctx context.Context, actor *domain.User, projectID string) (*domain.Project, error)
	UpdateProject(ctx context.Context, actor *domain.User, projectID string, req dto.UpdateProjectRequest) (*domain.Project, error)
	DeleteProject(ctx context.Context, actor *domain.User, projectID string) error

	// CompleteProject fails with the number of unfinished tasks while any remain.
	CompleteProject(ctx context.Context, actor *domain.User, projectID string) (*domain.Project, error)

	JoinProject(ctx context.Context, actor *domain.User, projectID string) (*domain.Project, error)
	AddMembers(ctx context.Context, actor *domain.User, projectID string, userIDs []string) (*domain.Project, error)

	// RemoveMember never removes the manager. The member's tasks in the project are unassigned.
	RemoveMember(ctx context.Context, actor *domain.User, projectID, userID string) (*domain.Project, error)

	// ListMembers returns the manager and the members of a project.
	ListMembers(ctx context.Context, actor *domain.User, projectID string) (*domain.User, []domain.User, error)
}

// TaskSvcFacade manages tasks inside projects.
type TaskSvcFacade interface {
	CreateTask(ctx context.Context, actor *domain.User, req dto.CreateTaskRequest) (*domain.Task, error)
	ListTasks(ctx context.Context, actor *domain.User, filter domain.TaskFilter, page domain.PageInfo) (domain.Page[domain.Task], error)

	// GetTask returns the task with its direct subtasks.
	GetTask(ctx context.Context, actor *domain.User, taskID string) (*domain.Task, []domain.Task, error)

	UpdateTask(ctx context.Context, actor *domain.User, taskID string, req dto.UpdateTaskRequest) (*domain.Task, error)

	// UpdateTaskStatus moves a task; done is refused while subtasks are unfinished.
	UpdateTaskStatus(ctx context.Context, actor *domain.User, taskID string, status domain.TaskStatus) (*domain.Task, error)

	JoinTask(ctx context.Context, actor *domain.User, taskID string) (*domain.Task, error)
	AssignTask(ctx context.Context, actor *domain.User, taskID, assigneeID string) (*domain.Task, error)

	// DeleteTask is refused while the task still has subtasks.
	DeleteTask(ctx context.Context, actor *domain.User, taskID string) error
}
