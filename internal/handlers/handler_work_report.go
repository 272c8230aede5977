package handlers

import (
	portssvc "github.com/SscSPs/hrops_backend/internal/core/ports/services"
	"github.com/SscSPs/hrops_backend/internal/dto"
	"github.com/SscSPs/hrops_backend/internal/platform/response"
	"github.com/gin-gonic/gin"
)

type workReportHandler struct {
	workReportService portssvc.WorkReportSvcFacade
}

func newWorkReportHandler(ws portssvc.WorkReportSvcFacade) *workReportHandler {
	return &workReportHandler{workReportService: ws}
}

func registerWorkReportRoutes(rg *gin.RouterGroup, workReportService portssvc.WorkReportSvcFacade) {
	h := newWorkReportHandler(workReportService)

	reports := rg.Group("/work-reports")
	{
		reports.POST("", h.createWorkReport)
		reports.POST("/list", h.listWorkReports)
		reports.PUT("/:id", h.updateWorkReport)
		reports.DELETE("/:id", h.deleteWorkReport)
	}
}

// createWorkReport godoc
// @Summary Create a work report
// @Description Attaches a report to today's attendance. Requires being checked in and not yet checked out.
// @Tags work-reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param report body dto.CreateWorkReportRequest true "Report"
// @Success 201 {object} response.Envelope{data=dto.WorkReportResponse}
// @Failure 400 {object} response.Envelope "Not checked in, or already checked out"
// @Router /work-reports [post]
func (h *workReportHandler) createWorkReport(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.CreateWorkReportRequest
	if !bindJSON(c, &req) {
		return
	}
	report, err := h.workReportService.CreateWorkReport(c.Request.Context(), actor, req)
	if err != nil {
		fail(c, err, "Failed to create work report")
		return
	}
	response.Created(c, "Work report created", dto.ToWorkReportResponse(report))
}

// listWorkReports godoc
// @Summary List work reports
// @Description Admins may list anyone's reports; others only their own.
// @Tags work-reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ListRequest[dto.WorkReportSearchCondition] false "Search condition and page"
// @Success 200 {object} response.Envelope{data=dto.ListResponse[dto.WorkReportResponse]}
// @Router /work-reports/list [post]
func (h *workReportHandler) listWorkReports(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	req, ok := bindList[dto.WorkReportSearchCondition](c)
	if !ok {
		return
	}
	page, err := h.workReportService.ListWorkReports(c.Request.Context(), actor, req.SearchCondition.ToDomain(), req.PageInfo.ToDomain())
	if err != nil {
		fail(c, err, "Failed to list work reports")
		return
	}
	response.OK(c, "Work reports retrieved", dto.ToListResponse(page, dto.ToWorkReportResponse))
}

// updateWorkReport godoc
// @Summary Update a work report
// @Tags work-reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Work report ID"
// @Param report body dto.UpdateWorkReportRequest true "Fields to change"
// @Success 200 {object} response.Envelope{data=dto.WorkReportResponse}
// @Failure 400 {object} response.Envelope "Cannot modify work reports after check-out"
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /work-reports/{id} [put]
func (h *workReportHandler) updateWorkReport(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.UpdateWorkReportRequest
	if !bindJSON(c, &req) {
		return
	}
	report, err := h.workReportService.UpdateWorkReport(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		fail(c, err, "Failed to update work report")
		return
	}
	response.OK(c, "Work report updated", dto.ToWorkReportResponse(report))
}

// deleteWorkReport godoc
// @Summary Delete a work report
// @Tags work-reports
// @Produce json
// @Security BearerAuth
// @Param id path string true "Work report ID"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope "Cannot modify work reports after check-out"
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /work-reports/{id} [delete]
func (h *workReportHandler) deleteWorkReport(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	if err := h.workReportService.DeleteWorkReport(c.Request.Context(), actor, c.Param("id")); err != nil {
		fail(c, err, "Failed to delete work report")
		return
	}
	response.OK(c, "Work report deleted", nil)
}
