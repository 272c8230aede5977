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
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoWorkplaceRepository implements the WorkplaceRepositoryFacade interface.
type MongoWorkplaceRepository struct {
	BaseRepository
}

// newMongoWorkplaceRepository creates a new workplace repository
func newMongoWorkplaceRepository(db *mongo.Database) portsrepo.WorkplaceRepositoryFacade {
	return &MongoWorkplaceRepository{BaseRepository: newBase(db, workplacesCollection)}
}

var _ portsrepo.WorkplaceRepositoryFacade = (*MongoWorkplaceRepository)(nil)

// SaveWorkplace persists a new workplace
func (r *MongoWorkplaceRepository) SaveWorkplace(ctx context.Context, workplace *domain.Workplace) error {
	m, err := mapping.ToModelWorkplace(*workplace)
	if err != nil {
		return err
	}
	m.ID = primitive.NewObjectID()
	if err := r.insert(ctx, m); err != nil {
		return err
	}
	workplace.WorkplaceID = m.ID.Hex()
	return nil
}

// FindWorkplaceByID retrieves a workplace by its ID
func (r *MongoWorkplaceRepository) FindWorkplaceByID(ctx context.Context, workplaceID string) (*domain.Workplace, error) {
	oid, err := parseID(workplaceID)
	if err != nil {
		return nil, err
	}
	m, err := findOne[models.Workplace](ctx, r.coll, activeByID(oid))
	if err != nil {
		return nil, err
	}
	w := mapping.ToDomainWorkplace(*m)
	return &w, nil
}

// ListWorkplaces retrieves every workplace that is not deleted
func (r *MongoWorkplaceRepository) ListWorkplaces(ctx context.Context) ([]domain.Workplace, error) {
	docs, err := findAll[models.Workplace](ctx, r.coll, bson.D{notDeleted}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainWorkplaceSlice(docs), nil
}

func (r *MongoWorkplaceRepository) UpdateWorkplace(ctx context.Context, workplace domain.Workplace) error {
	oid, err := parseID(workplace.WorkplaceID)
	if err != nil {
		return err
	}
	return r.updateOne(ctx, activeByID(oid), bson.D{{Key: "$set", Value: bson.D{
		{Key: "name", Value: workplace.Name},
		{Key: "address", Value: workplace.Address},
		{Key: "latitude", Value: workplace.Latitude},
		{Key: "longitude", Value: workplace.Longitude},
		{Key: "radius_meters", Value: workplace.RadiusMeters},
		{Key: "last_updated_at", Value: workplace.LastUpdatedAt},
		{Key: "last_updated_by", Value: workplace.LastUpdatedBy},
	}}})
}

func (r *MongoWorkplaceRepository) MarkWorkplaceDeleted(ctx context.Context, workplaceID string, deletedAt time.Time, deletedBy string) error {
	return r.markDeleted(ctx, workplaceID, deletedAt, deletedBy)
}
