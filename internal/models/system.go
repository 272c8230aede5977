package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Setting struct {
	ID                 primitive.ObjectID `bson:"_id"`
	IsMaintenanceMode  bool               `bson:"is_maintenance_mode"`
	MaintenanceMessage string             `bson:"maintenance_message"`
	MinAppVersion      string             `bson:"min_app_version"`
	LastUpdatedAt      time.Time          `bson:"last_updated_at"`
	LastUpdatedBy      string             `bson:"last_updated_by,omitempty"`
}

// Token documents are removed by a TTL index on created_at.
type Token struct {
	ID        primitive.ObjectID `bson:"_id"`
	UserID    primitive.ObjectID `bson:"user_id"`
	Token     string             `bson:"token"`
	Purpose   string             `bson:"purpose"`
	CreatedAt time.Time          `bson:"created_at"`
}

type Workplace struct {
	ID           primitive.ObjectID `bson:"_id"`
	Name         string             `bson:"name"`
	Address      string             `bson:"address"`
	Latitude     float64            `bson:"latitude"`
	Longitude    float64            `bson:"longitude"`
	RadiusMeters float64            `bson:"radius_meters"`
	AuditFields  `bson:",inline"`
	Lifecycle    `bson:",inline"`
}
