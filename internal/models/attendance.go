package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Coordinates struct {
	Latitude  float64 `bson:"latitude"`
	Longitude float64 `bson:"longitude"`
}

type Attendance struct {
	ID           primitive.ObjectID  `bson:"_id"`
	UserID       primitive.ObjectID  `bson:"user_id"`
	WorkDate     string              `bson:"work_date"`
	CheckInTime  *time.Time          `bson:"check_in_time"`
	CheckOutTime *time.Time          `bson:"check_out_time"`
	Coordinates  Coordinates         `bson:"coordinates"`
	WorkplaceID  *primitive.ObjectID `bson:"workplace_id,omitempty"`
	AuditFields  `bson:",inline"`
	Lifecycle    `bson:",inline"`
}

type WorkReport struct {
	ID           primitive.ObjectID `bson:"_id"`
	AttendanceID primitive.ObjectID `bson:"attendance_id"`
	UserID       primitive.ObjectID `bson:"user_id"`
	WorkTypeID   string             `bson:"work_type_id"`
	Description  string             `bson:"description"`
	WorkDate     string             `bson:"work_date"`
	AuditFields  `bson:",inline"`
	Lifecycle    `bson:",inline"`
}
