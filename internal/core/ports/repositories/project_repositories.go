package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/hrops_backend/internal/core/domain"
)

// ProjectReader defines read operations for projects.
type ProjectReader interface {
	FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error)
	ListProjects(ctx context.Context, filter domain.ProjectFilter, page domain.PageInfo) (domain.Page[domain.Project], error)
}

// ProjectWriter defines write operations for projects.
type ProjectWriter interface {
	// SaveProject persists a new project and sets its generated ID.
	SaveProject(ctx context.Context, project *domain.Project) error
	UpdateProject(ctx context.Context, project domain.Project) error
}

// ProjectMembershipManager adds and removes project members atomically.
type ProjectMembershipManager interface {
	AddProjectMembers(ctx context.Context, projectID string, userIDs []string, updatedBy string, updatedAt time.Time) error
	RemoveProjectMember(ctx context.Context, projectID string, userID string, updatedBy string, updatedAt time.Time) error
}

type ProjectLifecycleManager interface {
	MarkProjectDeleted(ctx context.Context, projectID string, deletedAt time.Time, deletedBy string) error
}

// ProjectRepositoryFacade combines all project-related repository interfaces
type ProjectRepositoryFacade interface {
	ProjectReader
	ProjectWriter
	ProjectMembershipManager
	ProjectLifecycleManager
}

// TaskReader defines read operations for tasks.
type TaskReader interface {
	FindTaskByID(ctx context.Context, taskID string) (*domain.Task, error)
	ListTasks(ctx context.Context, filter domain.TaskFilter, page domain.PageInfo) (domain.Page[domain.Task], error)

	// ListSubtasks returns the direct children of a task.
	ListSubtasks(ctx context.Context, parentID string) ([]domain.Task, error)

	// CountUnfinishedTasks counts tasks of the project whose status is not done.
	CountUnfinishedTasks(ctx context.Context, projectID string) (int64, error)

	// CountUnfinishedSubtasks counts direct children of the task whose status is not done.
	CountUnfinishedSubtasks(ctx context.Context, parentID string) (int64, error)
}

// TaskWriter defines write operations for tasks.
type TaskWriter interface {
	// SaveTask persists a new task and sets its generated ID.
	SaveTask(ctx context.Context, task *domain.Task) error
	UpdateTask(ctx context.Context, task domain.Task) error

	// UnassignMemberTasks resets the member's tasks in the project to unassigned and todo.
	UnassignMemberTasks(ctx context.Context, projectID, userID, updatedBy string, updatedAt time.Time) (int64, error)
}

type TaskLifecycleManager interface {
	MarkTaskDeleted(ctx context.Context, taskID string, deletedAt time.Time, deletedBy string) error
}

// TaskRepositoryFacade combines all task-related repository interfaces
type TaskRepositoryFacade interface {
	TaskReader
	TaskWriter
	TaskLifecycleManager
}
