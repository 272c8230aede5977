package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/hrops_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/hrops_backend/internal/core/ports/repositories"
	"github.com/SscSPs/hrops_backend/internal/models"
	"github.com/SscSPs/hrops_backend/internal/utils/mapping"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoTaskRepository struct {
	BaseRepository
}

func newMongoTaskRepository(db *mongo.Database) portsrepo.TaskRepositoryFacade {
	return &MongoTaskRepository{BaseRepository: newBase(db, tasksCollection)}
}

var _ portsrepo.TaskRepositoryFacade = (*MongoTaskRepository)(nil)

var notDone = bson.E{Key: "status", Value: bson.D{{Key: "$ne", Value: string(domain.TaskDone)}}}

func (r *MongoTaskRepository) SaveTask(ctx context.Context, task *domain.Task) error {
	m, err := mapping.ToModelTask(*task)
	if err != nil {
		return err
	}
	m.ID = primitive.NewObjectID()
	if err := r.insert(ctx, m); err != nil {
		return err
	}
	task.TaskID = m.ID.Hex()
	return nil
}

func (r *MongoTaskRepository) FindTaskByID(ctx context.Context, taskID string) (*domain.Task, error) {
	oid, err := parseID(taskID)
	if err != nil {
		return nil, err
	}
	m, err := findOne[models.Task](ctx, r.coll, activeByID(oid))
	if err != nil {
		return nil, err
	}
	t := mapping.ToDomainTask(*m)
	return &t, nil
}

func taskFilter(f domain.TaskFilter) (bson.D, error) {
	filter := bson.D{notDeleted}
	refs := []struct {
		key, id string
	}{
		{"project_id", f.ProjectID},
		{"assignee_id", f.AssigneeID},
		{"parent_id", f.ParentID},
	}
	for _, ref := range refs {
		if ref.id == "" {
			continue
		}
		oid, err := mapping.ToObjectID(ref.id)
		if err != nil {
			return nil, err
		}
		filter = append(filter, bson.E{Key: ref.key, Value: oid})
	}
	if f.Status != "" {
		filter = append(filter, bson.E{Key: "status", Value: string(f.Status)})
	}
	if f.Keyword != "" {
		filter = append(filter, bson.E{Key: "name", Value: keyword(f.Keyword)})
	}
	return filter, nil
}

func (r *MongoTaskRepository) ListTasks(ctx context.Context, filter domain.TaskFilter, page domain.PageInfo) (domain.Page[domain.Task], error) {
	f, err := taskFilter(filter)
	if err != nil {
		return domain.Page[domain.Task]{}, err
	}
	sort := bson.D{{Key: "created_at", Value: -1}}
	return findPage(ctx, r.coll, f, sort, page, mapping.ToDomainTaskSlice)
}

func (r *MongoTaskRepository) ListSubtasks(ctx context.Context, parentID string) ([]domain.Task, error) {
	oid, err := parseID(parentID)
	if err != nil {
		return []domain.Task{}, nil
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	docs, err := findAll[models.Task](ctx, r.coll, bson.D{{Key: "parent_id", Value: oid}, notDeleted}, opts)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainTaskSlice(docs), nil
}

func (r *MongoTaskRepository) CountUnfinishedTasks(ctx context.Context, projectID string) (int64, error) {
	oid, err := parseID(projectID)
	if err != nil {
		return 0, err
	}
	return r.count(ctx, bson.D{{Key: "project_id", Value: oid}, notDone, notDeleted})
}

func (r *MongoTaskRepository) CountUnfinishedSubtasks(ctx context.Context, parentID string) (int64, error) {
	oid, err := parseID(parentID)
	if err != nil {
		return 0, err
	}
	return r.count(ctx, bson.D{{Key: "parent_id", Value: oid}, notDone, notDeleted})
}

func (r *MongoTaskRepository) UpdateTask(ctx context.Context, task domain.Task) error {
	m, err := mapping.ToModelTask(task)
	if err != nil {
		return err
	}
	return r.updateOne(ctx, activeByID(m.ID), bson.D{{Key: "$set", Value: bson.D{
		{Key: "name", Value: m.Name},
		{Key: "description", Value: m.Description},
		{Key: "parent_id", Value: m.ParentID},
		{Key: "assignee_id", Value: m.AssigneeID},
		{Key: "status", Value: m.Status},
		{Key: "last_updated_at", Value: m.LastUpdatedAt},
		{Key: "last_updated_by", Value: m.LastUpdatedBy},
	}}})
}

// UnassignMemberTasks leaves finished tasks untouched.
func (r *MongoTaskRepository) UnassignMemberTasks(ctx context.Context, projectID, userID, updatedBy string, updatedAt time.Time) (int64, error) {
	projectOID, err := parseID(projectID)
	if err != nil {
		return 0, err
	}
	userOID, err := parseID(userID)
	if err != nil {
		return 0, err
	}
	filter := bson.D{
		{Key: "project_id", Value: projectOID},
		{Key: "assignee_id", Value: userOID},
		notDone,
		notDeleted,
	}
	res, err := r.coll.UpdateMany(ctx, filter, bson.D{{Key: "$set", Value: bson.D{
		{Key: "assignee_id", Value: nil},
		{Key: "status", Value: string(domain.TaskTodo)},
		{Key: "last_updated_at", Value: updatedAt},
		{Key: "last_updated_by", Value: updatedBy},
	}}})
	if err != nil {
		return 0, fmt.Errorf("failed to unassign member tasks: %w", err)
	}
	return res.ModifiedCount, nil
}

func (r *MongoTaskRepository) MarkTaskDeleted(ctx context.Context, taskID string, deletedAt time.Time, deletedBy string) error {
	return r.markDeleted(ctx, taskID, deletedAt, deletedBy)
}
