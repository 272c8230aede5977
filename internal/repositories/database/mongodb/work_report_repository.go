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
)

type MongoWorkReportRepository struct {
	BaseRepository
}

func newMongoWorkReportRepository(db *mongo.Database) portsrepo.WorkReportRepositoryFacade {
	return &MongoWorkReportRepository{BaseRepository: newBase(db, workReportsCollection)}
}

var _ portsrepo.WorkReportRepositoryFacade = (*MongoWorkReportRepository)(nil)

func (r *MongoWorkReportRepository) SaveWorkReport(ctx context.Context, report *domain.WorkReport) error {
	m, err := mapping.ToModelWorkReport(*report)
	if err != nil {
		return err
	}
	m.ID = primitive.NewObjectID()
	if err := r.insert(ctx, m); err != nil {
		return err
	}
	report.WorkReportID = m.ID.Hex()
	return nil
}

func (r *MongoWorkReportRepository) FindWorkReportByID(ctx context.Context, workReportID string) (*domain.WorkReport, error) {
	oid, err := parseID(workReportID)
	if err != nil {
		return nil, err
	}
	m, err := findOne[models.WorkReport](ctx, r.coll, activeByID(oid))
	if err != nil {
		return nil, err
	}
	wr := mapping.ToDomainWorkReport(*m)
	return &wr, nil
}

func (r *MongoWorkReportRepository) ListWorkReports(ctx context.Context, filter domain.WorkReportFilter, page domain.PageInfo) (domain.Page[domain.WorkReport], error) {
	f := bson.D{notDeleted}
	if filter.UserID != "" {
		oid, err := mapping.ToObjectID(filter.UserID)
		if err != nil {
			return domain.Page[domain.WorkReport]{}, err
		}
		f = append(f, bson.E{Key: "user_id", Value: oid})
	}
	if filter.AttendanceID != "" {
		oid, err := mapping.ToObjectID(filter.AttendanceID)
		if err != nil {
			return domain.Page[domain.WorkReport]{}, err
		}
		f = append(f, bson.E{Key: "attendance_id", Value: oid})
	}
	f = dateRange(f, filter.FromDate, filter.ToDate)
	sort := bson.D{{Key: "work_date", Value: -1}, {Key: "created_at", Value: -1}}
	return findPage(ctx, r.coll, f, sort, page, mapping.ToDomainWorkReportSlice)
}

func (r *MongoWorkReportRepository) UpdateWorkReport(ctx context.Context, report domain.WorkReport) error {
	oid, err := parseID(report.WorkReportID)
	if err != nil {
		return err
	}
	return r.updateOne(ctx, activeByID(oid), bson.D{{Key: "$set", Value: bson.D{
		{Key: "work_type_id", Value: report.WorkTypeID},
		{Key: "description", Value: report.Description},
		{Key: "last_updated_at", Value: report.LastUpdatedAt},
		{Key: "last_updated_by", Value: report.LastUpdatedBy},
	}}})
}

func (r *MongoWorkReportRepository) MarkWorkReportDeleted(ctx context.Context, workReportID string, deletedAt time.Time, deletedBy string) error {
	return r.markDeleted(ctx, workReportID, deletedAt, deletedBy)
}
