package dto

import (
	"time"

	"github.com/SscSPs/hrops_backend/internal/core/domain"
)

// CreateProjectRequest defines data for creating a new project.
// ManagerID defaults to the requester.
type CreateProjectRequest struct {
	Name        string             `json:"name" binding:"required,max=200"`
	Description string             `json:"description" binding:"max=2000"`
	Type        domain.ProjectType `json:"type" binding:"omitempty,oneof=public private"`
	ManagerID   string             `json:"manager_id" binding:"omitempty,objectid"`
	Members     []string           `json:"members" binding:"omitempty,dive,objectid"`
}

// UpdateProjectRequest updates project details; nil fields are left unchanged.
type UpdateProjectRequest struct {
	Name        *string             `json:"name" binding:"omitempty,min=1,max=200"`
	Description *string             `json:"description" binding:"omitempty,max=2000"`
	Type        *domain.ProjectType `json:"type" binding:"omitempty,oneof=public private"`
	ManagerID   *string             `json:"manager_id" binding:"omitempty,objectid"`
}

// ProjectSearchCondition filters the project list.
type ProjectSearchCondition struct {
	Keyword string               `json:"keyword"`
	Status  domain.ProjectStatus `json:"status" binding:"omitempty,oneof=active completed"`
	Type    domain.ProjectType   `json:"type" binding:"omitempty,oneof=public private"`
}

func (c ProjectSearchCondition) ToDomain() domain.ProjectFilter {
	return domain.ProjectFilter{Keyword: c.Keyword, Status: c.Status, Type: c.Type}
}

// AddMembersRequest lists the users to add to a project.
type AddMembersRequest struct {
	UserIDs []string `json:"user_ids" binding:"required,min=1,dive,objectid"`
}

// ProjectResponse defines data returned for a project.
type ProjectResponse struct {
	ProjectID     string               `json:"_id"`
	Name          string               `json:"name"`
	Description   string               `json:"description"`
	Type          domain.ProjectType   `json:"type"`
	ManagerID     string               `json:"manager_id"`
	Members       []string             `json:"members"`
	Status        domain.ProjectStatus `json:"status"`
	CreatedAt     time.Time            `json:"created_at"`
	CreatedBy     string               `json:"created_by"`
	LastUpdatedAt time.Time            `json:"updated_at"`
}

// ToProjectResponse converts domain.Project to DTO.
func ToProjectResponse(p *domain.Project) ProjectResponse {
	members := p.Members
	if members == nil {
		members = []string{}
	}
	return ProjectResponse{
		ProjectID:     p.ProjectID,
		Name:          p.Name,
		Description:   p.Description,
		Type:          p.Type,
		ManagerID:     p.ManagerID,
		Members:       members,
		Status:        p.Status,
		CreatedAt:     p.CreatedAt,
		CreatedBy:     p.CreatedBy,
		LastUpdatedAt: p.LastUpdatedAt,
	}
}

// ProjectMembersResponse lists the manager and members of a project.
type ProjectMembersResponse struct {
	Manager *UserResponse  `json:"manager,omitempty"`
	Members []UserResponse `json:"members"`
}
