package models

import "time"

// AuditFields holds standard audit columns stored on every document.
type AuditFields struct {
	CreatedAt     time.Time `bson:"created_at"`
	CreatedBy     string    `bson:"created_by,omitempty"`
	LastUpdatedAt time.Time `bson:"last_updated_at"`
	LastUpdatedBy string    `bson:"last_updated_by,omitempty"`
}

// Lifecycle is the stored soft-delete flag.
type Lifecycle struct {
	IsDeleted bool       `bson:"is_deleted"`
	DeletedAt *time.Time `bson:"deleted_at,omitempty"`
	DeletedBy string     `bson:"deleted_by,omitempty"`
}
