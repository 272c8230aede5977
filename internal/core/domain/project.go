package domain

import "slices"

// ProjectType controls who may join a project without an invitation.
type ProjectType string

const (
	ProjectPublic  ProjectType = "public"
	ProjectPrivate ProjectType = "private"
)

// ProjectStatus is the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "active"
	ProjectCompleted ProjectStatus = "completed"
)

// Project groups tasks and the users working on them.
type Project struct {
	ProjectID   string        `json:"projectID"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Type        ProjectType   `json:"type"`
	ManagerID   string        `json:"managerID"`
	Members     []string      `json:"members"`
	Status      ProjectStatus `json:"status"`
	AuditFields
	Lifecycle
}

// IsManager reports whether userID manages the project.
func (p *Project) IsManager(userID string) bool {
	return p.ManagerID == userID
}

// IsMember reports whether userID is listed as a member (the manager is not implied).
func (p *Project) IsMember(userID string) bool {
	return slices.Contains(p.Members, userID)
}

// HasParticipant reports whether userID is the manager or a member.
func (p *Project) HasParticipant(userID string) bool {
	return p.IsManager(userID) || p.IsMember(userID)
}

// ProjectFilter narrows project listings. When VisibleTo is set only public projects
// and projects that user participates in are returned.
type ProjectFilter struct {
	Keyword   string
	Status    ProjectStatus
	Type      ProjectType
	VisibleTo string
}
