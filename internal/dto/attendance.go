package dto

import (
	"time"

	"github.com/SscSPs/hrops_backend/internal/core/domain"
)

// CheckInRequest carries the device position at check-in.
type CheckInRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required,latitude"`
	Longitude *float64 `json:"longitude" binding:"required,longitude"`
}

// Coordinates returns the reported position.
func (r CheckInRequest) Coordinates() domain.Coordinates {
	var c domain.Coordinates
	if r.Latitude != nil {
		c.Latitude = *r.Latitude
	}
	if r.Longitude != nil {
		c.Longitude = *r.Longitude
	}
	return c
}

// AttendanceHistoryCondition selects the month of the caller's own history.
// Zero month/year means the current month.
type AttendanceHistoryCondition struct {
	Month int `json:"month" binding:"omitempty,min=1,max=12"`
	Year  int `json:"year" binding:"omitempty,min=2000,max=2100"`
}

// AttendanceSearchCondition filters the admin attendance list.
type AttendanceSearchCondition struct {
	UserID   string `json:"user_id" binding:"omitempty,objectid"`
	FromDate string `json:"from_date" binding:"omitempty,datetime=2006-01-02"`
	ToDate   string `json:"to_date" binding:"omitempty,datetime=2006-01-02"`
}

func (c AttendanceSearchCondition) ToDomain() domain.AttendanceFilter {
	return domain.AttendanceFilter{UserID: c.UserID, FromDate: c.FromDate, ToDate: c.ToDate}
}

// AttendanceResponse defines data returned for an attendance record.
type AttendanceResponse struct {
	AttendanceID string                  `json:"_id"`
	UserID       string                  `json:"user_id"`
	WorkDate     string                  `json:"work_date"`
	CheckInTime  *time.Time              `json:"check_in_time"`
	CheckOutTime *time.Time              `json:"check_out_time"`
	Coordinates  domain.Coordinates      `json:"coordinates"`
	WorkplaceID  string                  `json:"workplace_id,omitempty"`
	Status       domain.AttendanceStatus `json:"status"`
}

// ToAttendanceResponse converts domain.Attendance to DTO.
func ToAttendanceResponse(a *domain.Attendance) AttendanceResponse {
	return AttendanceResponse{
		AttendanceID: a.AttendanceID,
		UserID:       a.UserID,
		WorkDate:     a.WorkDate,
		CheckInTime:  a.CheckInTime,
		CheckOutTime: a.CheckOutTime,
		Coordinates:  a.Coordinates,
		WorkplaceID:  a.WorkplaceID,
		Status:       a.Status(),
	}
}

// TodayAttendanceResponse is the caller's state for the current work date.
type TodayAttendanceResponse struct {
	WorkDate   string                  `json:"work_date"`
	Status     domain.AttendanceStatus `json:"status"`
	Attendance *AttendanceResponse     `json:"attendance"`
}

// ToTodayAttendanceResponse accepts a nil record for a day without check-in.
func ToTodayAttendanceResponse(workDate string, a *domain.Attendance) TodayAttendanceResponse {
	resp := TodayAttendanceResponse{WorkDate: workDate, Status: a.Status()}
	if a != nil {
		r := ToAttendanceResponse(a)
		resp.Attendance = &r
	}
	return resp
}
