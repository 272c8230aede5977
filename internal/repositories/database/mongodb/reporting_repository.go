package mongodb

import (
	"context"
	"fmt"

	"github.com/SscSPs/hrops_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/hrops_backend/internal/core/ports/repositories"
	"github.com/SscSPs/hrops_backend/internal/utils/mapping"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	db *mongo.Database
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db *mongo.Database) portsrepo.ReportingRepository {
	return &reportingRepository{db: db}
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

func (r *reportingRepository) countIn(ctx context.Context, collection string, filter bson.D) (int64, error) {
	n, err := r.db.Collection(collection).CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("error counting %s: %w", collection, err)
	}
	return n, nil
}

func (r *reportingRepository) CountEmployees(ctx context.Context) (int64, error) {
	return r.countIn(ctx, usersCollection, bson.D{notDeleted})
}

func (r *reportingRepository) CountCheckIns(ctx context.Context, workDate string, checkedOutOnly bool) (int64, error) {
	filter := bson.D{{Key: "work_date", Value: workDate}, notDeleted}
	if checkedOutOnly {
		filter = append(filter, bson.E{Key: "check_out_time", Value: bson.D{{Key: "$ne", Value: nil}}})
	}
	return r.countIn(ctx, attendancesCollection, filter)
}

func (r *reportingRepository) CountProjects(ctx context.Context, status domain.ProjectStatus) (int64, error) {
	return r.countIn(ctx, projectsCollection, bson.D{{Key: "status", Value: string(status)}, notDeleted})
}

func (r *reportingRepository) CountOpenTasks(ctx context.Context) (int64, error) {
	return r.countIn(ctx, tasksCollection, bson.D{notDone, notDeleted})
}

func (r *reportingRepository) CountPayrolls(ctx context.Context, status domain.PayrollStatus) (int64, error) {
	return r.countIn(ctx, payrollsCollection, bson.D{{Key: "status", Value: string(status)}})
}

type attendanceSummaryDoc struct {
	UserID      primitive.ObjectID `bson:"_id"`
	FullName    string             `bson:"full_name"`
	Email       string             `bson:"email"`
	WorkingDays int                `bson:"working_days"`
	CheckedOut  int                `bson:"checked_out"`
}

// AttendanceSummary groups the month's check-ins per user and joins the user's name.
func (r *reportingRepository) AttendanceSummary(ctx context.Context, fromDate, toDate string) ([]domain.AttendanceSummaryRow, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: dateRange(bson.D{notDeleted}, fromDate, toDate)}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$user_id"},
			{Key: "working_days", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "checked_out", Value: bson.D{{Key: "$sum", Value: bson.D{{Key: "$cond", Value: bson.A{
				bson.D{{Key: "$gt", Value: bson.A{"$check_out_time", nil}}}, 1, 0,
			}}}}}},
		}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: usersCollection},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "user"},
		}}},
		{{Key: "$unwind", Value: "$user"}},
		{{Key: "$project", Value: bson.D{
			{Key: "full_name", Value: "$user.full_name"},
			{Key: "email", Value: "$user.email"},
			{Key: "working_days", Value: 1},
			{Key: "checked_out", Value: 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "full_name", Value: 1}}}},
	}
	docs, err := aggregate[attendanceSummaryDoc](ctx, r.db.Collection(attendancesCollection), pipeline)
	if err != nil {
		return nil, err
	}
	rows := make([]domain.AttendanceSummaryRow, len(docs))
	for i, d := range docs {
		rows[i] = domain.AttendanceSummaryRow{
			UserID:      d.UserID.Hex(),
			FullName:    d.FullName,
			Email:       d.Email,
			WorkingDays: d.WorkingDays,
			CheckedOut:  d.CheckedOut,
		}
	}
	return rows, nil
}

type payrollSummaryDoc struct {
	Headcount        int                  `bson:"headcount"`
	BaseSalary       primitive.Decimal128 `bson:"base_salary"`
	DiligenceBonus   primitive.Decimal128 `bson:"diligence_bonus"`
	PerformanceBonus primitive.Decimal128 `bson:"performance_bonus"`
	OtherBonus       primitive.Decimal128 `bson:"other_bonus"`
	TotalSalary      primitive.Decimal128 `bson:"total_salary"`
}

// PayrollSummary totals every payroll component for the month. A month with no
// payrolls yields zero totals.
func (r *reportingRepository) PayrollSummary(ctx context.Context, month, year int) (*domain.PayrollSummary, error) {
	sum := func(field string) bson.D {
		return bson.D{{Key: "$sum", Value: "$" + field}}
	}
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "month", Value: month}, {Key: "year", Value: year}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "headcount", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "base_salary", Value: sum("base_salary")},
			{Key: "diligence_bonus", Value: sum("diligence_bonus")},
			{Key: "performance_bonus", Value: sum("performance_bonus")},
			{Key: "other_bonus", Value: sum("other_bonus")},
			{Key: "total_salary", Value: sum("total_salary")},
		}}},
	}
	docs, err := aggregate[payrollSummaryDoc](ctx, r.db.Collection(payrollsCollection), pipeline)
	if err != nil {
		return nil, err
	}
	summary := &domain.PayrollSummary{Month: month, Year: year}
	if len(docs) == 0 {
		return summary, nil
	}
	d := docs[0]
	summary.Headcount = d.Headcount
	summary.BaseSalary = mapping.FromDecimal128(d.BaseSalary)
	summary.DiligenceBonus = mapping.FromDecimal128(d.DiligenceBonus)
	summary.PerformanceBonus = mapping.FromDecimal128(d.PerformanceBonus)
	summary.OtherBonus = mapping.FromDecimal128(d.OtherBonus)
	summary.TotalSalary = mapping.FromDecimal128(d.TotalSalary)
	return summary, nil
}

type statusCountDoc struct {
	Status string `bson:"_id"`
	Count  int64  `bson:"count"`
}

func (r *reportingRepository) TaskStatusCounts(ctx context.Context, projectID string) ([]domain.TaskStatusCount, error) {
	match := bson.D{notDeleted}
	if projectID != "" {
		oid, err := mapping.ToObjectID(projectID)
		if err != nil {
			return nil, err
		}
		match = append(match, bson.E{Key: "project_id", Value: oid})
	}
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$status"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}
	docs, err := aggregate[statusCountDoc](ctx, r.db.Collection(tasksCollection), pipeline)
	if err != nil {
		return nil, err
	}
	counts := make([]domain.TaskStatusCount, len(docs))
	for i, d := range docs {
		counts[i] = domain.TaskStatusCount{Status: domain.TaskStatus(d.Status), Count: d.Count}
	}
	return counts, nil
}
