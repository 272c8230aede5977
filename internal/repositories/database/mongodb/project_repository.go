package mongodb

import (
	"context"
	"time"

	"github.com/SscSPs/hrops_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/hrops_backend/internal/core/ports/repositories"
	"github.com/SscSPs/hrops_backend/internal/models"
	"github.com/SscSPs/hrops_backend/internal/utils/mapping"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoProjectRepository struct {
	BaseRepository
}

func newMongoProjectRepository(db *mongo.Database) portsrepo.ProjectRepositoryFacade {
	return &MongoProjectRepository{BaseRepository: newBase(db, projectsCollection)}
}

var _ portsrepo.ProjectRepositoryFacade = (*MongoProjectRepository)(nil)

func (r *MongoProjectRepository) SaveProject(ctx context.Context, project *domain.Project) error {
	m, err := mapping.ToModelProject(*project)
	if err != nil {
		return err
	}
	m.ID = primitive.NewObjectID()
	if err := r.insert(ctx, m); err != nil {
		return err
	}
	project.ProjectID = m.ID.Hex()
	return nil
}

func (r *MongoProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	oid, err := parseID(projectID)
	if err != nil {
		return nil, err
	}
	m, err := findOne[models.Project](ctx, r.coll, activeByID(oid))
	if err != nil {
		return nil, err
	}
	p := mapping.ToDomainProject(*m)
	return &p, nil
}

func projectFilter(f domain.ProjectFilter) bson.D {
	filter := bson.D{notDeleted}
	if f.Keyword != "" {
		filter = append(filter, bson.E{Key: "name", Value: keyword(f.Keyword)})
	}
	if f.Status != "" {
		filter = append(filter, bson.E{Key: "status", Value: string(f.Status)})
	}
	if f.Type != "" {
		filter = append(filter, bson.E{Key: "type", Value: string(f.Type)})
	}
	if f.VisibleTo != "" {
		visible := bson.A{bson.D{{Key: "type", Value: string(domain.ProjectPublic)}}}
		if oid, err := primitive.ObjectIDFromHex(f.VisibleTo); err == nil {
			visible = append(visible,
				bson.D{{Key: "manager_id", Value: oid}},
				bson.D{{Key: "members", Value: oid}},
			)
		}
		filter = append(filter, bson.E{Key: "$or", Value: visible})
	}
	return filter
}

func (r *MongoProjectRepository) ListProjects(ctx context.Context, filter domain.ProjectFilter, page domain.PageInfo) (domain.Page[domain.Project], error) {
	sort := bson.D{{Key: "created_at", Value: -1}}
	return findPage(ctx, r.coll, projectFilter(filter), sort, page, mapping.ToDomainProjectSlice)
}

func (r *MongoProjectRepository) UpdateProject(ctx context.Context, project domain.Project) error {
	m, err := mapping.ToModelProject(project)
	if err != nil {
		return err
	}
	return r.updateOne(ctx, activeByID(m.ID), bson.D{{Key: "$set", Value: bson.D{
		{Key: "name", Value: m.Name},
		{Key: "description", Value: m.Description},
		{Key: "type", Value: m.Type},
		{Key: "manager_id", Value: m.ManagerID},
		{Key: "members", Value: m.Members},
		{Key: "status", Value: m.Status},
		{Key: "last_updated_at", Value: m.LastUpdatedAt},
		{Key: "last_updated_by", Value: m.LastUpdatedBy},
	}}})
}

func (r *MongoProjectRepository) AddProjectMembers(ctx context.Context, projectID string, userIDs []string, updatedBy string, updatedAt time.Time) error {
	oid, err := parseID(projectID)
	if err != nil {
		return err
	}
	members, err := mapping.ToObjectIDs(userIDs)
	if err != nil {
		return err
	}
	return r.updateOne(ctx, activeByID(oid), bson.D{
		{Key: "$addToSet", Value: bson.D{{Key: "members", Value: bson.D{{Key: "$each", Value: members}}}}},
		{Key: "$set", Value: bson.D{
			{Key: "last_updated_at", Value: updatedAt},
			{Key: "last_updated_by", Value: updatedBy},
		}},
	})
}

func (r *MongoProjectRepository) RemoveProjectMember(ctx context.Context, projectID string, userID string, updatedBy string, updatedAt time.Time) error {
	oid, err := parseID(projectID)
	if err != nil {
		return err
	}
	member, err := parseID(userID)
	if err != nil {
		return err
	}
	return r.updateOne(ctx, activeByID(oid), bson.D{
		{Key: "$pull", Value: bson.D{{Key: "members", Value: member}}},
		{Key: "$set", Value: bson.D{
			{Key: "last_updated_at", Value: updatedAt},
			{Key: "last_updated_by", Value: updatedBy},
		}},
	})
}

func (r *MongoProjectRepository) MarkProjectDeleted(ctx context.Context, projectID string, deletedAt time.Time, deletedBy string) error {
	return r.markDeleted(ctx, projectID, deletedAt, deletedBy)
}
