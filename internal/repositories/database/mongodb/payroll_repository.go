package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/hrops_backend/internal/apperrors"
	"github.com/SscSPs/hrops_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/hrops_backend/internal/core/ports/repositories"
	"github.com/SscSPs/hrops_backend/internal/models"
	"github.com/SscSPs/hrops_backend/internal/utils/mapping"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoPayrollRepository struct {
	BaseRepository
}

func newMongoPayrollRepository(db *mongo.Database) portsrepo.PayrollRepositoryFacade {
	return &MongoPayrollRepository{BaseRepository: newBase(db, payrollsCollection)}
}

var _ portsrepo.PayrollRepositoryFacade = (*MongoPayrollRepository)(nil)

func (r *MongoPayrollRepository) FindPayrollByID(ctx context.Context, payrollID string) (*domain.Payroll, error) {
	oid, err := parseID(payrollID)
	if err != nil {
		return nil, err
	}
	m, err := findOne[models.Payroll](ctx, r.coll, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return nil, err
	}
	p := mapping.ToDomainPayroll(*m)
	return &p, nil
}

func (r *MongoPayrollRepository) ListPayrolls(ctx context.Context, filter domain.PayrollFilter, page domain.PageInfo) (domain.Page[domain.Payroll], error) {
	f := bson.D{}
	if filter.UserID != "" {
		oid, err := mapping.ToObjectID(filter.UserID)
		if err != nil {
			return domain.Page[domain.Payroll]{}, err
		}
		f = append(f, bson.E{Key: "user_id", Value: oid})
	}
	f = periodFilter(f, filter.Month, filter.Year)
	if filter.Status != "" {
		f = append(f, bson.E{Key: "status", Value: string(filter.Status)})
	}
	return findPage(ctx, r.coll, f, newestPeriodFirst, page, mapping.ToDomainPayrollSlice)
}

// UpsertPayroll is keyed by (user_id, month, year). Creation audit fields are
// written only when the document is first inserted.
func (r *MongoPayrollRepository) UpsertPayroll(ctx context.Context, payroll *domain.Payroll) error {
	m, err := mapping.ToModelPayroll(*payroll)
	if err != nil {
		return err
	}
	filter := bson.D{{Key: "user_id", Value: m.UserID}, {Key: "month", Value: m.Month}, {Key: "year", Value: m.Year}}
	update := bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "working_days", Value: m.WorkingDays},
			{Key: "salary_per_day", Value: m.SalaryPerDay},
			{Key: "base_salary", Value: m.BaseSalary},
			{Key: "diligence_bonus", Value: m.DiligenceBonus},
			{Key: "performance_grade", Value: m.PerformanceGrade},
			{Key: "performance_bonus", Value: m.PerformanceBonus},
			{Key: "other_bonus", Value: m.OtherBonus},
			{Key: "total_salary", Value: m.TotalSalary},
			{Key: "status", Value: m.Status},
			{Key: "last_updated_at", Value: m.LastUpdatedAt},
			{Key: "last_updated_by", Value: m.LastUpdatedBy},
		}},
		{Key: "$setOnInsert", Value: bson.D{
			{Key: "created_at", Value: m.CreatedAt},
			{Key: "created_by", Value: m.CreatedBy},
		}},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var stored models.Payroll
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&stored); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("concurrent payroll calculation: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to upsert payroll: %w", err)
	}
	payroll.PayrollID = stored.ID.Hex()
	payroll.CreatedAt = stored.CreatedAt
	payroll.CreatedBy = stored.CreatedBy
	return nil
}

// MarkPayrollPaid only transitions a calculated payroll.
func (r *MongoPayrollRepository) MarkPayrollPaid(ctx context.Context, payrollID string, paidBy string, paidAt time.Time) error {
	oid, err := parseID(payrollID)
	if err != nil {
		return err
	}
	filter := bson.D{{Key: "_id", Value: oid}, {Key: "status", Value: string(domain.PayrollCalculated)}}
	res, err := r.coll.UpdateOne(ctx, filter, bson.D{{Key: "$set", Value: bson.D{
		{Key: "status", Value: string(domain.PayrollPaid)},
		{Key: "last_updated_at", Value: paidAt},
		{Key: "last_updated_by", Value: paidBy},
	}}})
	if err != nil {
		return fmt.Errorf("failed to mark payroll paid: %w", err)
	}
	if res.MatchedCount == 0 {
		return apperrors.New(apperrors.ErrConflict, "Payroll has already been paid")
	}
	return nil
}
