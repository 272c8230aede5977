package dto

import (
	"time"

	"github.com/SscSPs/hrops_backend/internal/core/domain"
)

// CreateTaskRequest defines data for creating a task, optionally as a subtask.
type CreateTaskRequest struct {
	Name        string  `json:"name" binding:"required,max=200"`
	Description string  `json:"description" binding:"max=5000"`
	ProjectID   string  `json:"project_id" binding:"required,objectid"`
	ParentID    *string `json:"parent_id" binding:"omitempty,objectid"`
	AssigneeID  *string `json:"assignee_id" binding:"omitempty,objectid"`
}

// UpdateTaskRequest updates task details; nil fields are left unchanged.
type UpdateTaskRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=200"`
	Description *string `json:"description" binding:"omitempty,max=5000"`
}

// UpdateTaskStatusRequest moves a task to a new status.
type UpdateTaskStatusRequest struct {
	Status domain.TaskStatus `json:"status" binding:"required,oneof=todo in_progress done blocked"`
}

// AssignTaskRequest assigns a task to a project participant.
type AssignTaskRequest struct {
	AssigneeID string `json:"assignee_id" binding:"required,objectid"`
}

// TaskSearchCondition filters the task list.
type TaskSearchCondition struct {
	ProjectID  string            `json:"project_id" binding:"omitempty,objectid"`
	Status     domain.TaskStatus `json:"status" binding:"omitempty,oneof=todo in_progress done blocked"`
	AssigneeID string            `json:"assignee_id" binding:"omitempty,objectid"`
	ParentID   string            `json:"parent_id" binding:"omitempty,objectid"`
	Keyword    string            `json:"keyword"`
}

func (c TaskSearchCondition) ToDomain() domain.TaskFilter {
	return domain.TaskFilter{
		ProjectID:  c.ProjectID,
		Status:     c.Status,
		AssigneeID: c.AssigneeID,
		ParentID:   c.ParentID,
		Keyword:    c.Keyword,
	}
}

// TaskResponse defines data returned for a task.
type TaskResponse struct {
	TaskID        string            `json:"_id"`
	Name          string            `json:"name"`
	Description   string            `json:"description"`
	ProjectID     string            `json:"project_id"`
	ParentID      *string           `json:"parent_id"`
	AssigneeID    *string           `json:"assignee_id"`
	ReporterID    string            `json:"reporter_id"`
	Status        domain.TaskStatus `json:"status"`
	CreatedAt     time.Time         `json:"created_at"`
	LastUpdatedAt time.Time         `json:"updated_at"`
	Subtasks      []TaskResponse    `json:"subtasks,omitempty"`
}

// ToTaskResponse converts domain.Task to DTO.
func ToTaskResponse(t *domain.Task) TaskResponse {
	return TaskResponse{
		TaskID:        t.TaskID,
		Name:          t.Name,
		Description:   t.Description,
		ProjectID:     t.ProjectID,
		ParentID:      t.ParentID,
		AssigneeID:    t.AssigneeID,
		ReporterID:    t.ReporterID,
		Status:        t.Status,
		CreatedAt:     t.CreatedAt,
		LastUpdatedAt: t.LastUpdatedAt,
	}
}

// ToTaskDetailResponse includes the direct subtasks of the task.
func ToTaskDetailResponse(t *domain.Task, subtasks []domain.Task) TaskResponse {
	resp := ToTaskResponse(t)
	resp.Subtasks = make([]TaskResponse, len(subtasks))
	for i := range subtasks {
		resp.Subtasks[i] = ToTaskResponse(&subtasks[i])
	}
	return resp
}
