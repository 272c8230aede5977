package mongodb

import (
	"context"
	"fmt"

	"github.com/SscSPs/hrops_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/hrops_backend/internal/core/ports/repositories"
	"github.com/SscSPs/hrops_backend/internal/models"
	"github.com/SscSPs/hrops_backend/internal/utils/mapping"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoSettingRepository struct {
	BaseRepository
}

func newMongoSettingRepository(db *mongo.Database) portsrepo.SettingRepository {
	return &MongoSettingRepository{BaseRepository: newBase(db, settingsCollection)}
}

var _ portsrepo.SettingRepository = (*MongoSettingRepository)(nil)

// GetOrCreateSetting inserts the defaults on first access and returns the oldest settings document.
func (r *MongoSettingRepository) GetOrCreateSetting(ctx context.Context) (*domain.Setting, error) {
	update := bson.D{{Key: "$setOnInsert", Value: bson.D{
		{Key: "is_maintenance_mode", Value: false},
		{Key: "maintenance_message", Value: domain.DefaultMaintenanceMessage},
		{Key: "min_app_version", Value: ""},
	}}}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After).
		SetSort(bson.D{{Key: "_id", Value: 1}})

	var m models.Setting
	if err := r.coll.FindOneAndUpdate(ctx, bson.D{}, update, opts).Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	s := mapping.ToDomainSetting(m)
	return &s, nil
}

func (r *MongoSettingRepository) UpdateSetting(ctx context.Context, setting domain.Setting) error {
	oid, err := parseID(setting.SettingID)
	if err != nil {
		return err
	}
	return r.updateOne(ctx, bson.D{{Key: "_id", Value: oid}}, bson.D{{Key: "$set", Value: bson.D{
		{Key: "is_maintenance_mode", Value: setting.IsMaintenanceMode},
		{Key: "maintenance_message", Value: setting.MaintenanceMessage},
		{Key: "min_app_version", Value: setting.MinAppVersion},
		{Key: "last_updated_at", Value: setting.LastUpdatedAt},
		{Key: "last_updated_by", Value: setting.LastUpdatedBy},
	}}})
}
