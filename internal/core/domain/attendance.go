package domain

import "time"

// AttendanceStatus is the per-day attendance state, derived from the record's timestamps.
type AttendanceStatus string

const (
	AttendanceNotCheckedIn AttendanceStatus = "not_checked_in"
	AttendanceCheckedIn    AttendanceStatus = "checked_in"
	AttendanceCheckedOut   AttendanceStatus = "checked_out"
)

// WorkDateLayout is the calendar-day key format of Attendance.WorkDate.
const WorkDateLayout = "2006-01-02"

// Coordinates is a WGS84 position reported by the client.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Attendance is one user's presence record for one calendar day.
type Attendance struct {
	AttendanceID string      `json:"attendanceID"`
	UserID       string      `json:"userID"`
	WorkDate     string      `json:"workDate"`
	CheckInTime  *time.Time  `json:"checkInTime,omitempty"`
	CheckOutTime *time.Time  `json:"checkOutTime,omitempty"`
	Coordinates  Coordinates `json:"coordinates"`
	WorkplaceID  string      `json:"workplaceID,omitempty"`
	AuditFields
	Lifecycle
}

// Status derives the day state; a nil record means the user has not checked in.
func (a *Attendance) Status() AttendanceStatus {
	switch {
	case a == nil || a.CheckInTime == nil:
		return AttendanceNotCheckedIn
	case a.CheckOutTime == nil:
		return AttendanceCheckedIn
	default:
		return AttendanceCheckedOut
	}
}

// AttendanceFilter narrows attendance listings. Zero values are ignored.
type AttendanceFilter struct {
	UserID   string
	FromDate string
	ToDate   string
}

// MonthRange returns the first and last WorkDate keys of the given month.
func MonthRange(month, year int) (string, string) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first.Format(WorkDateLayout), last.Format(WorkDateLayout)
}
