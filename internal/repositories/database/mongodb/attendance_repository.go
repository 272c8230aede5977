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
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoAttendanceRepository struct {
	BaseRepository
}

func newMongoAttendanceRepository(db *mongo.Database) portsrepo.AttendanceRepositoryFacade {
	return &MongoAttendanceRepository{BaseRepository: newBase(db, attendancesCollection)}
}

var _ portsrepo.AttendanceRepositoryFacade = (*MongoAttendanceRepository)(nil)

// SaveAttendance relies on the unique (user_id, work_date) index to reject a second check-in.
func (r *MongoAttendanceRepository) SaveAttendance(ctx context.Context, attendance *domain.Attendance) error {
	m, err := mapping.ToModelAttendance(*attendance)
	if err != nil {
		return err
	}
	m.ID = primitive.NewObjectID()
	if err := r.insert(ctx, m); err != nil {
		return err
	}
	attendance.AttendanceID = m.ID.Hex()
	return nil
}

func (r *MongoAttendanceRepository) FindAttendanceByID(ctx context.Context, attendanceID string) (*domain.Attendance, error) {
	oid, err := parseID(attendanceID)
	if err != nil {
		return nil, err
	}
	m, err := findOne[models.Attendance](ctx, r.coll, activeByID(oid))
	if err != nil {
		return nil, err
	}
	a := mapping.ToDomainAttendance(*m)
	return &a, nil
}

func (r *MongoAttendanceRepository) FindAttendanceByUserAndDate(ctx context.Context, userID, workDate string) (*domain.Attendance, error) {
	oid, err := parseID(userID)
	if err != nil {
		return nil, err
	}
	filter := bson.D{{Key: "user_id", Value: oid}, {Key: "work_date", Value: workDate}, notDeleted}
	m, err := findOne[models.Attendance](ctx, r.coll, filter)
	if err != nil {
		return nil, err
	}
	a := mapping.ToDomainAttendance(*m)
	return &a, nil
}

func (r *MongoAttendanceRepository) ListAttendances(ctx context.Context, filter domain.AttendanceFilter, page domain.PageInfo) (domain.Page[domain.Attendance], error) {
	f := bson.D{notDeleted}
	if filter.UserID != "" {
		oid, err := mapping.ToObjectID(filter.UserID)
		if err != nil {
			return domain.Page[domain.Attendance]{}, err
		}
		f = append(f, bson.E{Key: "user_id", Value: oid})
	}
	f = dateRange(f, filter.FromDate, filter.ToDate)
	sort := bson.D{{Key: "work_date", Value: -1}, {Key: "check_in_time", Value: -1}}
	return findPage(ctx, r.coll, f, sort, page, mapping.ToDomainAttendanceSlice)
}

func (r *MongoAttendanceRepository) CountAttendanceDays(ctx context.Context, userID, fromDate, toDate string) (int64, error) {
	oid, err := parseID(userID)
	if err != nil {
		return 0, err
	}
	filter := bson.D{
		{Key: "user_id", Value: oid},
		{Key: "check_in_time", Value: bson.D{{Key: "$ne", Value: nil}}},
		notDeleted,
	}
	return r.count(ctx, dateRange(filter, fromDate, toDate))
}

// RecordCheckOut only matches a record whose check_out_time is still empty.
func (r *MongoAttendanceRepository) RecordCheckOut(ctx context.Context, attendanceID string, checkOutTime time.Time) error {
	oid, err := parseID(attendanceID)
	if err != nil {
		return err
	}
	filter := bson.D{{Key: "_id", Value: oid}, {Key: "check_out_time", Value: nil}, notDeleted}
	res, err := r.coll.UpdateOne(ctx, filter, bson.D{{Key: "$set", Value: bson.D{
		{Key: "check_out_time", Value: checkOutTime},
		{Key: "last_updated_at", Value: checkOutTime},
	}}})
	if err != nil {
		return fmt.Errorf("failed to record check-out: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("attendance %s already checked out: %w", attendanceID, apperrors.ErrConflict)
	}
	return nil
}

func (r *MongoAttendanceRepository) MarkAttendanceDeleted(ctx context.Context, attendanceID string, deletedAt time.Time, deletedBy string) error {
	return r.markDeleted(ctx, attendanceID, deletedAt, deletedBy)
}
