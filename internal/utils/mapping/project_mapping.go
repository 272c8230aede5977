package mapping

import (
	"github.com/SscSPs/hrops_backend/internal/core/domain"
	"github.com/SscSPs/hrops_backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func ToModelProject(d domain.Project) (models.Project, error) {
	id := primitive.NilObjectID
	if d.ProjectID != "" {
		oid, err := ToObjectID(d.ProjectID)
		if err != nil {
			return models.Project{}, err
		}
		id = oid
	}
	managerID, err := ToObjectID(d.ManagerID)
	if err != nil {
		return models.Project{}, err
	}
	members, err := ToObjectIDs(d.Members)
	if err != nil {
		return models.Project{}, err
	}
	return models.Project{
		ID:          id,
		Name:        d.Name,
		Description: d.Description,
		Type:        string(d.Type),
		ManagerID:   managerID,
		Members:     members,
		Status:      string(d.Status),
		AuditFields: ToModelAuditFields(d.AuditFields),
		Lifecycle:   ToModelLifecycle(d.Lifecycle),
	}, nil
}

func ToDomainProject(m models.Project) domain.Project {
	return domain.Project{
		ProjectID:   m.ID.Hex(),
		Name:        m.Name,
		Description: m.Description,
		Type:        domain.ProjectType(m.Type),
		ManagerID:   m.ManagerID.Hex(),
		Members:     FromObjectIDs(m.Members),
		Status:      domain.ProjectStatus(m.Status),
		AuditFields: ToDomainAuditFields(m.AuditFields),
		Lifecycle:   ToDomainLifecycle(m.Lifecycle),
	}
}

func ToDomainProjectSlice(ms []models.Project) []domain.Project {
	ds := make([]domain.Project, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProject(m)
	}
	return ds
}

func ToModelTask(d domain.Task) (models.Task, error) {
	id := primitive.NilObjectID
	if d.TaskID != "" {
		oid, err := ToObjectID(d.TaskID)
		if err != nil {
			return models.Task{}, err
		}
		id = oid
	}
	projectID, err := ToObjectID(d.ProjectID)
	if err != nil {
		return models.Task{}, err
	}
	reporterID, err := ToObjectID(d.ReporterID)
	if err != nil {
		return models.Task{}, err
	}
	parentID, err := ToOptionalObjectID(d.ParentID)
	if err != nil {
		return models.Task{}, err
	}
	assigneeID, err := ToOptionalObjectID(d.AssigneeID)
	if err != nil {
		return models.Task{}, err
	}
	return models.Task{
		ID:          id,
		Name:        d.Name,
		Description: d.Description,
		ProjectID:   projectID,
		ParentID:    parentID,
		AssigneeID:  assigneeID,
		ReporterID:  reporterID,
		Status:      string(d.Status),
		AuditFields: ToModelAuditFields(d.AuditFields),
		Lifecycle:   ToModelLifecycle(d.Lifecycle),
	}, nil
}

func ToDomainTask(m models.Task) domain.Task {
	return domain.Task{
		TaskID:      m.ID.Hex(),
		Name:        m.Name,
		Description: m.Description,
		ProjectID:   m.ProjectID.Hex(),
		ParentID:    FromOptionalObjectID(m.ParentID),
		AssigneeID:  FromOptionalObjectID(m.AssigneeID),
		ReporterID:  m.ReporterID.Hex(),
		Status:      domain.TaskStatus(m.Status),
		AuditFields: ToDomainAuditFields(m.AuditFields),
		Lifecycle:   ToDomainLifecycle(m.Lifecycle),
	}
}

func ToDomainTaskSlice(ms []models.Task) []domain.Task {
	ds := make([]domain.Task, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTask(m)
	}
	return ds
}
