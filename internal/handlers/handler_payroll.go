package handlers

import (
	"log/slog"

	portssvc "github.com/SscSPs/hrops_backend/internal/core/ports/services"
	"github.com/SscSPs/hrops_backend/internal/dto"
	"github.com/SscSPs/hrops_backend/internal/middleware"
	"github.com/SscSPs/hrops_backend/internal/platform/response"
	"github.com/gin-gonic/gin"
)

type payrollHandler struct {
	payrollService portssvc.PayrollSvcFacade
}

func newPayrollHandler(ps portssvc.PayrollSvcFacade) *payrollHandler {
	return &payrollHandler{payrollService: ps}
}

func registerPayrollRoutes(rg *gin.RouterGroup, payrollService portssvc.PayrollSvcFacade) {
	h := newPayrollHandler(payrollService)

	payrolls := rg.Group("/payrolls")
	{
		payrolls.POST("/calculate", middleware.RequireAdmin(), h.calculatePayroll)
		payrolls.POST("/calculate-all", middleware.RequireAdmin(), h.calculateAll)
		payrolls.POST("/list", h.listPayrolls)
		payrolls.GET("/:id", h.getPayroll)
		payrolls.POST("/:id/pay", middleware.RequireAdmin(), h.markPaid)
	}
}

// calculatePayroll godoc
// @Summary Calculate a payroll
// @Description Computes one user's payroll for a month and emails the breakdown. Recalculating replaces an unpaid payroll.
// @Tags payrolls
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CalculatePayrollRequest true "User, period and optional overrides"
// @Success 200 {object} response.Envelope{data=dto.PayrollResponse}
// @Failure 400 {object} response.Envelope "Performance review missing"
// @Failure 404 {object} response.Envelope "User not found"
// @Failure 409 {object} response.Envelope "Payroll already paid"
// @Failure 500 {object} response.Envelope "Bonus configuration missing"
// @Router /payrolls/calculate [post]
func (h *payrollHandler) calculatePayroll(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.CalculatePayrollRequest
	if !bindJSON(c, &req) {
		return
	}
	payroll, err := h.payrollService.CalculatePayroll(c.Request.Context(), actor, req)
	if err != nil {
		fail(c, err, "Failed to calculate payroll")
		return
	}
	response.OK(c, "Payroll calculated", dto.ToPayrollResponse(payroll))
}

// calculateAll godoc
// @Summary Calculate payroll for every employee
// @Description Failures are reported per user and do not stop the run.
// @Tags payrolls
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CalculateAllPayrollRequest true "Period and optional overrides"
// @Success 200 {object} response.Envelope{data=dto.CalculateAllPayrollResponse}
// @Router /payrolls/calculate-all [post]
func (h *payrollHandler) calculateAll(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.CalculateAllPayrollRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.payrollService.CalculateAll(c.Request.Context(), actor, req)
	if err != nil {
		fail(c, err, "Failed to calculate payrolls")
		return
	}
	middleware.GetLoggerFromContext(c).Info("Bulk payroll calculated",
		slog.Int("calculated", len(result.Calculated)),
		slog.Int("failed", len(result.Failed)),
	)
	response.OK(c, "Payrolls calculated", result)
}

// listPayrolls godoc
// @Summary List payrolls
// @Description Admins see every payroll; others only their own.
// @Tags payrolls
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ListRequest[dto.PayrollSearchCondition] false "Search condition and page"
// @Success 200 {object} response.Envelope{data=dto.ListResponse[dto.PayrollResponse]}
// @Router /payrolls/list [post]
func (h *payrollHandler) listPayrolls(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	req, ok := bindList[dto.PayrollSearchCondition](c)
	if !ok {
		return
	}
	page, err := h.payrollService.ListPayrolls(c.Request.Context(), actor, req.SearchCondition.ToDomain(), req.PageInfo.ToDomain())
	if err != nil {
		fail(c, err, "Failed to list payrolls")
		return
	}
	response.OK(c, "Payrolls retrieved", dto.ToListResponse(page, dto.ToPayrollResponse))
}

// getPayroll godoc
// @Summary Get a payroll
// @Tags payrolls
// @Produce json
// @Security BearerAuth
// @Param id path string true "Payroll ID"
// @Success 200 {object} response.Envelope{data=dto.PayrollResponse}
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /payrolls/{id} [get]
func (h *payrollHandler) getPayroll(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	payroll, err := h.payrollService.GetPayroll(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		fail(c, err, "Payroll not found")
		return
	}
	response.OK(c, "Payroll retrieved", dto.ToPayrollResponse(payroll))
}

// markPaid godoc
// @Summary Mark a payroll as paid
// @Tags payrolls
// @Produce json
// @Security BearerAuth
// @Param id path string true "Payroll ID"
// @Success 200 {object} response.Envelope{data=dto.PayrollResponse}
// @Failure 404 {object} response.Envelope
// @Failure 409 {object} response.Envelope "Payroll has already been paid"
// @Router /payrolls/{id}/pay [post]
func (h *payrollHandler) markPaid(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	payroll, err := h.payrollService.MarkPaid(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		fail(c, err, "Failed to mark payroll as paid")
		return
	}
	response.OK(c, "Payroll marked as paid", dto.ToPayrollResponse(payroll))
}
