package mapping

import (
	"github.com/SscSPs/hrops_backend/internal/core/domain"
	"github.com/SscSPs/hrops_backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func ToModelAttendance(d domain.Attendance) (models.Attendance, error) {
	id := primitive.NilObjectID
	if d.AttendanceID != "" {
		oid, err := ToObjectID(d.AttendanceID)
		if err != nil {
			return models.Attendance{}, err
		}
		id = oid
	}
	userID, err := ToObjectID(d.UserID)
	if err != nil {
		return models.Attendance{}, err
	}
	var workplaceID *primitive.ObjectID
	if d.WorkplaceID != "" {
		if workplaceID, err = ToOptionalObjectID(&d.WorkplaceID); err != nil {
			return models.Attendance{}, err
		}
	}
	return models.Attendance{
		ID:           id,
		UserID:       userID,
		WorkDate:     d.WorkDate,
		CheckInTime:  d.CheckInTime,
		CheckOutTime: d.CheckOutTime,
		Coordinates:  models.Coordinates{Latitude: d.Coordinates.Latitude, Longitude: d.Coordinates.Longitude},
		WorkplaceID:  workplaceID,
		AuditFields:  ToModelAuditFields(d.AuditFields),
		Lifecycle:    ToModelLifecycle(d.Lifecycle),
	}, nil
}

func ToDomainAttendance(m models.Attendance) domain.Attendance {
	a := domain.Attendance{
		AttendanceID: m.ID.Hex(),
		UserID:       m.UserID.Hex(),
		WorkDate:     m.WorkDate,
		CheckInTime:  m.CheckInTime,
		CheckOutTime: m.CheckOutTime,
		Coordinates:  domain.Coordinates{Latitude: m.Coordinates.Latitude, Longitude: m.Coordinates.Longitude},
		AuditFields:  ToDomainAuditFields(m.AuditFields),
		Lifecycle:    ToDomainLifecycle(m.Lifecycle),
	}
	if id := FromOptionalObjectID(m.WorkplaceID); id != nil {
		a.WorkplaceID = *id
	}
	return a
}

func ToDomainAttendanceSlice(ms []models.Attendance) []domain.Attendance {
	ds := make([]domain.Attendance, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAttendance(m)
	}
	return ds
}

func ToModelWorkReport(d domain.WorkReport) (models.WorkReport, error) {
	id := primitive.NilObjectID
	if d.WorkReportID != "" {
		oid, err := ToObjectID(d.WorkReportID)
		if err != nil {
			return models.WorkReport{}, err
		}
		id = oid
	}
	attendanceID, err := ToObjectID(d.AttendanceID)
	if err != nil {
		return models.WorkReport{}, err
	}
	userID, err := ToObjectID(d.UserID)
	if err != nil {
		return models.WorkReport{}, err
	}
	return models.WorkReport{
		ID:           id,
		AttendanceID: attendanceID,
		UserID:       userID,
		WorkTypeID:   d.WorkTypeID,
		Description:  d.Description,
		WorkDate:     d.WorkDate,
		AuditFields:  ToModelAuditFields(d.AuditFields),
		Lifecycle:    ToModelLifecycle(d.Lifecycle),
	}, nil
}

func ToDomainWorkReport(m models.WorkReport) domain.WorkReport {
	return domain.WorkReport{
		WorkReportID: m.ID.Hex(),
		AttendanceID: m.AttendanceID.Hex(),
		UserID:       m.UserID.Hex(),
		WorkTypeID:   m.WorkTypeID,
		Description:  m.Description,
		WorkDate:     m.WorkDate,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
		Lifecycle:    ToDomainLifecycle(m.Lifecycle),
	}
}

func ToDomainWorkReportSlice(ms []models.WorkReport) []domain.WorkReport {
	ds := make([]domain.WorkReport, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainWorkReport(m)
	}
	return ds
}
