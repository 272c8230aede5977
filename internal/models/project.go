package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Project struct {
	ID          primitive.ObjectID   `bson:"_id"`
	Name        string               `bson:"name"`
	Description string               `bson:"description"`
	Type        string               `bson:"type"`
	ManagerID   primitive.ObjectID   `bson:"manager_id"`
	Members     []primitive.ObjectID `bson:"members"`
	Status      string               `bson:"status"`
	AuditFields `bson:",inline"`
	Lifecycle   `bson:",inline"`
}

type Task struct {
	ID          primitive.ObjectID  `bson:"_id"`
	Name        string              `bson:"name"`
	Description string              `bson:"description"`
	ProjectID   primitive.ObjectID  `bson:"project_id"`
	ParentID    *primitive.ObjectID `bson:"parent_id"`
	AssigneeID  *primitive.ObjectID `bson:"assignee_id"`
	ReporterID  primitive.ObjectID  `bson:"reporter_id"`
	Status      string              `bson:"status"`
	AuditFields `bson:",inline"`
	Lifecycle   `bson:",inline"`
}
