package handlers

import (
	portssvc "github.com/SscSPs/hrops_backend/internal/core/ports/services"
	"github.com/SscSPs/hrops_backend/internal/dto"
	"github.com/SscSPs/hrops_backend/internal/middleware"
	"github.com/SscSPs/hrops_backend/internal/platform/response"
	"github.com/gin-gonic/gin"
)

// reportingHandler serves the admin dashboard and reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
	// workDate is today's key in the attendance time zone.
	workDate func() string
}

func newReportingHandler(rs portssvc.ReportingSvcFacade, workDate func() string) *reportingHandler {
	return &reportingHandler{reportingService: rs, workDate: workDate}
}

func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade, workDate func() string) {
	h := newReportingHandler(reportingService, workDate)

	admin := rg.Group("/admin", middleware.RequireAdmin())
	{
		admin.GET("/dashboard", h.dashboard)
		admin.GET("/reports/attendance", h.attendanceReport)
		admin.GET("/reports/payroll", h.payrollReport)
		admin.GET("/reports/tasks", h.taskReport)
	}
}

// dashboard godoc
// @Summary Admin dashboard
// @Description Headcount, today's attendance, active projects, open tasks and unpaid payrolls.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope{data=dto.DashboardResponse}
// @Failure 403 {object} response.Envelope
// @Router /admin/dashboard [get]
func (h *reportingHandler) dashboard(c *gin.Context) {
	workDate := h.workDate()
	stats, err := h.reportingService.Dashboard(c.Request.Context(), workDate)
	if err != nil {
		fail(c, err, "Failed to load dashboard")
		return
	}
	response.OK(c, "Dashboard retrieved", dto.ToDashboardResponse(workDate, stats))
}

// attendanceReport godoc
// @Summary Monthly attendance report
// @Description Working days per user for the month.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param month query int true "Month (1-12)"
// @Param year query int true "Year"
// @Success 200 {object} response.Envelope{data=dto.AttendanceReportResponse}
// @Failure 400 {object} response.Envelope
// @Router /admin/reports/attendance [get]
func (h *reportingHandler) attendanceReport(c *gin.Context) {
	var q dto.PeriodQuery
	if !bindQuery(c, &q) {
		return
	}
	rows, err := h.reportingService.AttendanceReport(c.Request.Context(), q.Month, q.Year)
	if err != nil {
		fail(c, err, "Failed to build attendance report")
		return
	}
	response.OK(c, "Attendance report retrieved", dto.ToAttendanceReportResponse(q.Month, q.Year, rows))
}

// payrollReport godoc
// @Summary Monthly payroll report
// @Description Totals of every payroll component for the month.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param month query int true "Month (1-12)"
// @Param year query int true "Year"
// @Success 200 {object} response.Envelope{data=dto.PayrollReportResponse}
// @Failure 400 {object} response.Envelope
// @Router /admin/reports/payroll [get]
func (h *reportingHandler) payrollReport(c *gin.Context) {
	var q dto.PeriodQuery
	if !bindQuery(c, &q) {
		return
	}
	summary, err := h.reportingService.PayrollReport(c.Request.Context(), q.Month, q.Year)
	if err != nil {
		fail(c, err, "Failed to build payroll report")
		return
	}
	response.OK(c, "Payroll report retrieved", dto.ToPayrollReportResponse(summary))
}

// taskReport godoc
// @Summary Task status report
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param project_id query string false "Limit to one project"
// @Success 200 {object} response.Envelope{data=dto.TaskReportResponse}
// @Failure 400 {object} response.Envelope
// @Router /admin/reports/tasks [get]
func (h *reportingHandler) taskReport(c *gin.Context) {
	var q dto.TaskReportQuery
	if !bindQuery(c, &q) {
		return
	}
	counts, err := h.reportingService.TaskReport(c.Request.Context(), q.ProjectID)
	if err != nil {
		fail(c, err, "Failed to build task report")
		return
	}
	response.OK(c, "Task report retrieved", dto.ToTaskReportResponse(q.ProjectID, counts))
}
