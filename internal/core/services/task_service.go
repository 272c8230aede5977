package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/SscSPs/hrops_backend/internal/apperrors"
	"github.com/SscSPs/hrops_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/hrops_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hrops_backend/internal/core/ports/services"
	"github.com/SscSPs/hrops_backend/internal/dto"
)

type taskService struct {
	BaseService
	taskRepo    portsrepo.TaskRepositoryFacade
	projectRepo portsrepo.ProjectReader
}

// NewTaskService creates the task service.
func NewTaskService(taskRepo portsrepo.TaskRepositoryFacade, projectRepo portsrepo.ProjectReader) portssvc.TaskSvcFacade {
	return &taskService{taskRepo: taskRepo, projectRepo: projectRepo}
}

var _ portssvc.TaskSvcFacade = (*taskService)(nil)

// canLead reports whether actor may create and assign tasks in the project.
func canLead(actor *domain.User, p *domain.Project) bool {
	return canManage(actor, p) || (p.IsMember(actor.UserID) && actor.CanLead())
}

func (s *taskService) findTask(ctx context.Context, taskID string) (*domain.Task, *domain.Project, error) {
	task, err := s.taskRepo.FindTaskByID(ctx, taskID)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to find task", slog.String("task_id", taskID))
		return nil, nil, notFound(err, "Task not found")
	}
	project, err := s.projectRepo.FindProjectByID(ctx, task.ProjectID)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to find project of task", slog.String("task_id", taskID))
		return nil, nil, notFound(err, "Project not found")
	}
	return task, project, nil
}

func (s *taskService) CreateTask(ctx context.Context, actor *domain.User, req dto.CreateTaskRequest) (*domain.Task, error) {
	project, err := s.projectRepo.FindProjectByID(ctx, req.ProjectID)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to find project", slog.String("project_id", req.ProjectID))
		return nil, notFound(err, "Project not found")
	}
	if !canLead(actor, project) {
		return nil, apperrors.New(apperrors.ErrForbidden, "You are not allowed to create tasks in this project")
	}
	if project.Status == domain.ProjectCompleted {
		return nil, apperrors.New(apperrors.ErrValidation, "Cannot add tasks to a completed project")
	}

	if req.ParentID != nil {
		parent, err := s.taskRepo.FindTaskByID(ctx, *req.ParentID)
		if err != nil {
			s.logUnexpected(ctx, err, "Failed to find parent task", slog.String("parent_id", *req.ParentID))
			return nil, notFound(err, "Parent task not found")
		}
		if parent.ProjectID != project.ProjectID {
			return nil, apperrors.New(apperrors.ErrValidation, "Parent task must belong to the same project")
		}
		if parent.Status == domain.TaskDone {
			return nil, apperrors.New(apperrors.ErrValidation, "Cannot add subtasks to a completed task")
		}
	}
	if req.AssigneeID != nil && !project.HasParticipant(*req.AssigneeID) {
		return nil, apperrors.New(apperrors.ErrValidation, "Assignee must be a member of the project")
	}

	task := &domain.Task{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		ProjectID:   project.ProjectID,
		ParentID:    req.ParentID,
		AssigneeID:  req.AssigneeID,
		ReporterID:  actor.UserID,
		Status:      domain.TaskTodo,
		AuditFields: newAudit(s.now(), actor.UserID),
	}
	if err := s.taskRepo.SaveTask(ctx, task); err != nil {
		s.LogError(ctx, err, "Failed to save task")
		return nil, err
	}
	s.LogInfo(ctx, "Task created", slog.String("task_id", task.TaskID), slog.String("project_id", task.ProjectID))
	return task, nil
}

// ListTasks restricts non-admins to visible projects. Without a project filter they see
// their own assignments.
func (s *taskService) ListTasks(ctx context.Context, actor *domain.User, filter domain.TaskFilter, page domain.PageInfo) (domain.Page[domain.Task], error) {
	if !actor.IsAdmin() {
		if filter.ProjectID != "" {
			project, err := s.projectRepo.FindProjectByID(ctx, filter.ProjectID)
			if err != nil {
				return domain.Page[domain.Task]{}, notFound(err, "Project not found")
			}
			if !canView(actor, project) {
				return domain.Page[domain.Task]{}, apperrors.New(apperrors.ErrForbidden, "You do not have access to this project")
			}
		} else if filter.AssigneeID == "" {
			filter.AssigneeID = actor.UserID
		}
	}
	result, err := s.taskRepo.ListTasks(ctx, filter, page.Normalize())
	if err != nil {
		s.LogError(ctx, err, "Failed to list tasks")
		return domain.Page[domain.Task]{}, err
	}
	return result, nil
}

func (s *taskService) GetTask(ctx context.Context, actor *domain.User, taskID string) (*domain.Task, []domain.Task, error) {
	task, project, err := s.findTask(ctx, taskID)
	if err != nil {
		return nil, nil, err
	}
	if !canView(actor, project) {
		return nil, nil, apperrors.New(apperrors.ErrForbidden, "You do not have access to this task")
	}
	subtasks, err := s.taskRepo.ListSubtasks(ctx, taskID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list subtasks", slog.String("task_id", taskID))
		return nil, nil, err
	}
	return task, subtasks, nil
}

func (s *taskService) UpdateTask(ctx context.Context, actor *domain.User, taskID string, req dto.UpdateTaskRequest) (*domain.Task, error) {
	task, project, err := s.findTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if !canManage(actor, project) && task.ReporterID != actor.UserID {
		return nil, apperrors.New(apperrors.ErrForbidden, "Only the reporter, the project manager or an administrator can update this task")
	}

	if req.Name != nil {
		task.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	touch(&task.AuditFields, s.now(), actor.UserID)

	if err := s.taskRepo.UpdateTask(ctx, *task); err != nil {
		s.LogError(ctx, err, "Failed to update task", slog.String("task_id", taskID))
		return nil, err
	}
	return task, nil
}

func (s *taskService) UpdateTaskStatus(ctx context.Context, actor *domain.User, taskID string, status domain.TaskStatus) (*domain.Task, error) {
	if !status.Valid() {
		return nil, apperrors.Newf(apperrors.ErrValidation, "Invalid task status %q", status)
	}
	task, project, err := s.findTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	allowed := canManage(actor, project) || task.IsAssignee(actor.UserID)
	if status != domain.TaskDone && task.ReporterID == actor.UserID {
		allowed = true
	}
	if !allowed {
		return nil, apperrors.New(apperrors.ErrForbidden, "You are not allowed to change the status of this task")
	}
	if task.Status == status {
		return task, nil
	}

	// A done parent never has an unfinished subtask, so reopening one is refused.
	if task.Status == domain.TaskDone && task.ParentID != nil {
		parent, err := s.taskRepo.FindTaskByID(ctx, *task.ParentID)
		if err != nil {
			s.logUnexpected(ctx, err, "Failed to find parent task", slog.String("parent_id", *task.ParentID))
			return nil, notFound(err, "Parent task not found")
		}
		if parent.Status == domain.TaskDone {
			return nil, apperrors.New(apperrors.ErrValidation, "Cannot reopen subtask: its parent task is already done")
		}
	}

	if status == domain.TaskDone {
		remaining, err := s.taskRepo.CountUnfinishedSubtasks(ctx, taskID)
		if err != nil {
			s.LogError(ctx, err, "Failed to count unfinished subtasks", slog.String("task_id", taskID))
			return nil, err
		}
		if remaining > 0 {
			return nil, apperrors.Newf(apperrors.ErrValidation, "Cannot complete task: %d subtask(s) are not done yet", remaining)
		}
	}

	task.Status = status
	touch(&task.AuditFields, s.now(), actor.UserID)
	if err := s.taskRepo.UpdateTask(ctx, *task); err != nil {
		s.LogError(ctx, err, "Failed to update task status", slog.String("task_id", taskID))
		return nil, err
	}
	s.LogInfo(ctx, "Task status changed", slog.String("task_id", taskID), slog.String("status", string(status)))
	return task, nil
}

func (s *taskService) JoinTask(ctx context.Context, actor *domain.User, taskID string) (*domain.Task, error) {
	task, project, err := s.findTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if !project.HasParticipant(actor.UserID) {
		return nil, apperrors.New(apperrors.ErrForbidden, "You must be a member of the project to join this task")
	}
	if task.AssigneeID != nil {
		return nil, apperrors.New(apperrors.ErrConflict, "Task already has an assignee")
	}

	assignee := actor.UserID
	task.AssigneeID = &assignee
	touch(&task.AuditFields, s.now(), actor.UserID)
	if err := s.taskRepo.UpdateTask(ctx, *task); err != nil {
		s.LogError(ctx, err, "Failed to join task", slog.String("task_id", taskID))
		return nil, err
	}
	return task, nil
}

func (s *taskService) AssignTask(ctx context.Context, actor *domain.User, taskID, assigneeID string) (*domain.Task, error) {
	task, project, err := s.findTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if !canLead(actor, project) {
		return nil, apperrors.New(apperrors.ErrForbidden, "You are not allowed to assign tasks in this project")
	}
	if !project.HasParticipant(assigneeID) {
		return nil, apperrors.New(apperrors.ErrValidation, "Assignee must be a member of the project")
	}

	task.AssigneeID = &assigneeID
	touch(&task.AuditFields, s.now(), actor.UserID)
	if err := s.taskRepo.UpdateTask(ctx, *task); err != nil {
		s.LogError(ctx, err, "Failed to assign task", slog.String("task_id", taskID))
		return nil, err
	}
	return task, nil
}

func (s *taskService) DeleteTask(ctx context.Context, actor *domain.User, taskID string) error {
	task, project, err := s.findTask(ctx, taskID)
	if err != nil {
		return err
	}
	if !canManage(actor, project) && task.ReporterID != actor.UserID {
		return apperrors.New(apperrors.ErrForbidden, "Only the reporter, the project manager or an administrator can delete this task")
	}

	subtasks, err := s.taskRepo.ListSubtasks(ctx, taskID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list subtasks", slog.String("task_id", taskID))
		return err
	}
	if len(subtasks) > 0 {
		return apperrors.Newf(apperrors.ErrValidation, "Cannot delete task: it still has %d subtask(s)", len(subtasks))
	}

	if err := s.taskRepo.MarkTaskDeleted(ctx, taskID, s.now(), actor.UserID); err != nil {
		s.LogError(ctx, err, "Failed to delete task", slog.String("task_id", taskID))
		return notFound(err, "Task not found")
	}
	return nil
}
