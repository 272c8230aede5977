package dto

import (
	"github.com/SscSPs/hrops_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DashboardResponse is the admin overview for the current work date.
type DashboardResponse struct {
	WorkDate        string `json:"work_date"`
	TotalEmployees  int64  `json:"total_employees"`
	CheckedInToday  int64  `json:"checked_in_today"`
	CheckedOutToday int64  `json:"checked_out_today"`
	ActiveProjects  int64  `json:"active_projects"`
	OpenTasks       int64  `json:"open_tasks"`
	PendingPayrolls int64  `json:"pending_payrolls"`
}

func ToDashboardResponse(workDate string, s *domain.DashboardStats) DashboardResponse {
	return DashboardResponse{
		WorkDate:        workDate,
		TotalEmployees:  s.TotalEmployees,
		CheckedInToday:  s.CheckedInToday,
		CheckedOutToday: s.CheckedOutToday,
		ActiveProjects:  s.ActiveProjects,
		OpenTasks:       s.OpenTasks,
		PendingPayrolls: s.PendingPayrolls,
	}
}

// AttendanceReportRow is one user's line in the monthly attendance report.
type AttendanceReportRow struct {
	UserID         string `json:"user_id"`
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	WorkingDays    int    `json:"working_days"`
	CheckedOutDays int    `json:"checked_out_days"`
}

// AttendanceReportResponse is the monthly attendance report.
type AttendanceReportResponse struct {
	Month int                   `json:"month"`
	Year  int                   `json:"year"`
	Rows  []AttendanceReportRow `json:"rows"`
}

func ToAttendanceReportResponse(month, year int, rows []domain.AttendanceSummaryRow) AttendanceReportResponse {
	resp := AttendanceReportResponse{Month: month, Year: year, Rows: make([]AttendanceReportRow, len(rows))}
	for i, r := range rows {
		resp.Rows[i] = AttendanceReportRow{
			UserID:         r.UserID,
			FullName:       r.FullName,
			Email:          r.Email,
			WorkingDays:    r.WorkingDays,
			CheckedOutDays: r.CheckedOut,
		}
	}
	return resp
}

// PayrollReportResponse totals every payroll component for a month.
type PayrollReportResponse struct {
	Month            int             `json:"month"`
	Year             int             `json:"year"`
	Headcount        int             `json:"headcount"`
	BaseSalary       decimal.Decimal `json:"base_salary"`
	DiligenceBonus   decimal.Decimal `json:"diligence_bonus"`
	PerformanceBonus decimal.Decimal `json:"performance_bonus"`
	OtherBonus       decimal.Decimal `json:"other_bonus"`
	TotalSalary      decimal.Decimal `json:"total_salary"`
}

func ToPayrollReportResponse(s *domain.PayrollSummary) PayrollReportResponse {
	return PayrollReportResponse{
		Month:            s.Month,
		Year:             s.Year,
		Headcount:        s.Headcount,
		BaseSalary:       s.BaseSalary,
		DiligenceBonus:   s.DiligenceBonus,
		PerformanceBonus: s.PerformanceBonus,
		OtherBonus:       s.OtherBonus,
		TotalSalary:      s.TotalSalary,
	}
}

// TaskReportQuery optionally limits the task report to one project.
type TaskReportQuery struct {
	ProjectID string `form:"project_id" binding:"omitempty,objectid"`
}

// TaskReportResponse counts tasks per status.
type TaskReportResponse struct {
	ProjectID string           `json:"project_id,omitempty"`
	Total     int64            `json:"total"`
	ByStatus  map[string]int64 `json:"by_status"`
}

// ToTaskReportResponse reports every known status, including those with no tasks.
func ToTaskReportResponse(projectID string, counts []domain.TaskStatusCount) TaskReportResponse {
	resp := TaskReportResponse{
		ProjectID: projectID,
		ByStatus: map[string]int64{
			string(domain.TaskTodo):       0,
			string(domain.TaskInProgress): 0,
			string(domain.TaskDone):       0,
			string(domain.TaskBlocked):    0,
		},
	}
	for _, c := range counts {
		resp.ByStatus[string(c.Status)] += c.Count
		resp.Total += c.Count
	}
	return resp
}
