package handlers

import (
	"log/slog"

	portssvc "github.com/SscSPs/hrops_backend/internal/core/ports/services"
	"github.com/SscSPs/hrops_backend/internal/dto"
	"github.com/SscSPs/hrops_backend/internal/middleware"
	"github.com/SscSPs/hrops_backend/internal/platform/response"
	"github.com/gin-gonic/gin"
)

// attendanceHandler drives the daily check-in/check-out flow.
type attendanceHandler struct {
	attendanceService portssvc.AttendanceSvcFacade
}

func newAttendanceHandler(as portssvc.AttendanceSvcFacade) *attendanceHandler {
	return &attendanceHandler{attendanceService: as}
}

func registerAttendanceRoutes(rg *gin.RouterGroup, attendanceService portssvc.AttendanceSvcFacade) {
	h := newAttendanceHandler(attendanceService)

	attendance := rg.Group("/attendance")
	{
		attendance.POST("/check-in", h.checkIn)
		attendance.POST("/check-out", h.checkOut)
		attendance.GET("/today", h.today)
		attendance.POST("/history", h.history)
		attendance.POST("/list", middleware.RequireAdmin(), h.listAttendances)
		attendance.DELETE("/:id", middleware.RequireAdmin(), h.deleteAttendance)
	}
}

// checkIn godoc
// @Summary Check in
// @Description Starts today's attendance. When workplaces are configured the position must lie inside one.
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CheckInRequest true "Device position"
// @Success 201 {object} response.Envelope{data=dto.AttendanceResponse}
// @Failure 400 {object} response.Envelope "Outside every workplace"
// @Failure 409 {object} response.Envelope "Already checked in today"
// @Router /attendance/check-in [post]
func (h *attendanceHandler) checkIn(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.CheckInRequest
	if !bindJSON(c, &req) {
		return
	}
	attendance, err := h.attendanceService.CheckIn(c.Request.Context(), actor, req.Coordinates())
	if err != nil {
		fail(c, err, "Failed to check in")
		return
	}
	middleware.GetLoggerFromContext(c).Info("Checked in", slog.String("work_date", attendance.WorkDate))
	response.Created(c, "Checked in successfully", dto.ToAttendanceResponse(attendance))
}

// checkOut godoc
// @Summary Check out
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope{data=dto.AttendanceResponse}
// @Failure 404 {object} response.Envelope "Not checked in today"
// @Failure 409 {object} response.Envelope "Already checked out today"
// @Router /attendance/check-out [post]
func (h *attendanceHandler) checkOut(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	attendance, err := h.attendanceService.CheckOut(c.Request.Context(), actor)
	if err != nil {
		fail(c, err, "Failed to check out")
		return
	}
	response.OK(c, "Checked out successfully", dto.ToAttendanceResponse(attendance))
}

// today godoc
// @Summary Today's attendance state
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope{data=dto.TodayAttendanceResponse}
// @Router /attendance/today [get]
func (h *attendanceHandler) today(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	workDate, attendance, err := h.attendanceService.Today(c.Request.Context(), actor)
	if err != nil {
		fail(c, err, "Failed to load today's attendance")
		return
	}
	response.OK(c, "Today's attendance retrieved", dto.ToTodayAttendanceResponse(workDate, attendance))
}

// history godoc
// @Summary Own attendance history
// @Description One month of the caller's records. Month and year default to the current month.
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ListRequest[dto.AttendanceHistoryCondition] false "Month and page"
// @Success 200 {object} response.Envelope{data=dto.ListResponse[dto.AttendanceResponse]}
// @Router /attendance/history [post]
func (h *attendanceHandler) history(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	req, ok := bindList[dto.AttendanceHistoryCondition](c)
	if !ok {
		return
	}
	cond := req.SearchCondition
	page, err := h.attendanceService.History(c.Request.Context(), actor, cond.Month, cond.Year, req.PageInfo.ToDomain())
	if err != nil {
		fail(c, err, "Failed to load attendance history")
		return
	}
	response.OK(c, "Attendance history retrieved", dto.ToListResponse(page, dto.ToAttendanceResponse))
}

// listAttendances godoc
// @Summary List attendance records
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ListRequest[dto.AttendanceSearchCondition] false "Search condition and page"
// @Success 200 {object} response.Envelope{data=dto.ListResponse[dto.AttendanceResponse]}
// @Failure 403 {object} response.Envelope
// @Router /attendance/list [post]
func (h *attendanceHandler) listAttendances(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	req, ok := bindList[dto.AttendanceSearchCondition](c)
	if !ok {
		return
	}
	page, err := h.attendanceService.ListAttendances(c.Request.Context(), actor, req.SearchCondition.ToDomain(), req.PageInfo.ToDomain())
	if err != nil {
		fail(c, err, "Failed to list attendance")
		return
	}
	response.OK(c, "Attendance retrieved", dto.ToListResponse(page, dto.ToAttendanceResponse))
}

// deleteAttendance godoc
// @Summary Delete an attendance record
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param id path string true "Attendance ID"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /attendance/{id} [delete]
func (h *attendanceHandler) deleteAttendance(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	if err := h.attendanceService.DeleteAttendance(c.Request.Context(), actor, c.Param("id")); err != nil {
		fail(c, err, "Failed to delete attendance")
		return
	}
	response.OK(c, "Attendance deleted", nil)
}
