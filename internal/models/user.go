package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID                     primitive.ObjectID   `bson:"_id"`
	FullName               string               `bson:"full_name"`
	Email                  string               `bson:"email"`
	Password               string               `bson:"password"`
	Phone                  string               `bson:"phone,omitempty"`
	Role                   string               `bson:"role"`
	BaseSalaryPerDay       primitive.Decimal128 `bson:"base_salary_per_day"`
	IsActivated            bool                 `bson:"is_activated"`
	IsBlocked              bool                 `bson:"is_blocked"`
	RefreshToken           string               `bson:"refresh_token,omitempty"`
	RefreshTokenExpiryTime *time.Time           `bson:"refresh_token_expires_at,omitempty"`
	AuditFields            `bson:",inline"`
	Lifecycle              `bson:",inline"`
}
