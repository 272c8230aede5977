package domain

// WorkReport describes work done during a checked-in day.
type WorkReport struct {
	WorkReportID string `json:"workReportID"`
	AttendanceID string `json:"attendanceID"`
	UserID       string `json:"userID"`
	WorkTypeID   string `json:"workTypeID"`
	Description  string `json:"description"`
	WorkDate     string `json:"workDate"`
	AuditFields
	Lifecycle
}

// WorkReportFilter narrows work report listings.
type WorkReportFilter struct {
	UserID       string
	AttendanceID string
	FromDate     string
	ToDate       string
}
