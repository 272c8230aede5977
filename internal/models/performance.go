package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type PerformanceReview struct {
	ID          primitive.ObjectID `bson:"_id"`
	UserID      primitive.ObjectID `bson:"user_id"`
	Month       int                `bson:"month"`
	Year        int                `bson:"year"`
	Grade       string             `bson:"grade"`
	Notes       string             `bson:"notes"`
	ReviewerID  string             `bson:"reviewer_id,omitempty"`
	AuditFields `bson:",inline"`
}

type PerformanceBonus struct {
	ID          primitive.ObjectID   `bson:"_id"`
	Grade       string               `bson:"grade"`
	BonusAmount primitive.Decimal128 `bson:"bonus_amount"`
	IsActive    bool                 `bson:"is_active"`
	AuditFields `bson:",inline"`
}

type Payroll struct {
	ID               primitive.ObjectID   `bson:"_id"`
	UserID           primitive.ObjectID   `bson:"user_id"`
	Month            int                  `bson:"month"`
	Year             int                  `bson:"year"`
	WorkingDays      int                  `bson:"working_days"`
	SalaryPerDay     primitive.Decimal128 `bson:"salary_per_day"`
	BaseSalary       primitive.Decimal128 `bson:"base_salary"`
	DiligenceBonus   primitive.Decimal128 `bson:"diligence_bonus"`
	PerformanceGrade string               `bson:"performance_grade"`
	PerformanceBonus primitive.Decimal128 `bson:"performance_bonus"`
	OtherBonus       primitive.Decimal128 `bson:"other_bonus"`
	TotalSalary      primitive.Decimal128 `bson:"total_salary"`
	Status           string               `bson:"status"`
	AuditFields      `bson:",inline"`
}
