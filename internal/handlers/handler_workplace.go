package handlers

import (
	"log/slog"

	portssvc "github.com/SscSPs/hrops_backend/internal/core/ports/services"
	"github.com/SscSPs/hrops_backend/internal/dto"
	"github.com/SscSPs/hrops_backend/internal/middleware"
	"github.com/SscSPs/hrops_backend/internal/platform/response"
	"github.com/gin-gonic/gin"
)

// workplaceHandler handles HTTP requests related to workplaces.
type workplaceHandler struct {
	workplaceService portssvc.WorkplaceSvcFacade
}

// newWorkplaceHandler creates a new workplaceHandler.
func newWorkplaceHandler(ws portssvc.WorkplaceSvcFacade) *workplaceHandler {
	return &workplaceHandler{
		workplaceService: ws,
	}
}

// registerWorkplaceRoutes registers the check-in geofences. Everyone may read
// them; only admins change them.
func registerWorkplaceRoutes(rg *gin.RouterGroup, workplaceService portssvc.WorkplaceSvcFacade) {
	h := newWorkplaceHandler(workplaceService)

	workplaces := rg.Group("/workplaces")
	{
		workplaces.GET("", h.listWorkplaces)
		workplaces.GET("/:id", h.getWorkplace)
		workplaces.POST("", middleware.RequireAdmin(), h.createWorkplace)
		workplaces.PUT("/:id", middleware.RequireAdmin(), h.updateWorkplace)
		workplaces.DELETE("/:id", middleware.RequireAdmin(), h.deleteWorkplace)
	}
}

// listWorkplaces godoc
// @Summary List workplaces
// @Tags workplaces
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope{data=[]dto.WorkplaceResponse}
// @Router /workplaces [get]
func (h *workplaceHandler) listWorkplaces(c *gin.Context) {
	workplaces, err := h.workplaceService.ListWorkplaces(c.Request.Context())
	if err != nil {
		fail(c, err, "Failed to list workplaces")
		return
	}
	response.OK(c, "Workplaces retrieved", dto.ToWorkplaceResponses(workplaces))
}

// getWorkplace godoc
// @Summary Get a workplace
// @Tags workplaces
// @Produce json
// @Security BearerAuth
// @Param id path string true "Workplace ID"
// @Success 200 {object} response.Envelope{data=dto.WorkplaceResponse}
// @Failure 404 {object} response.Envelope
// @Router /workplaces/{id} [get]
func (h *workplaceHandler) getWorkplace(c *gin.Context) {
	workplace, err := h.workplaceService.FindWorkplaceByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err, "Workplace not found")
		return
	}
	response.OK(c, "Workplace retrieved", dto.ToWorkplaceResponse(workplace))
}

// createWorkplace godoc
// @Summary Create a new workplace
// @Description Adds a check-in area: a centre point and a radius in meters.
// @Tags workplaces
// @Accept  json
// @Produce  json
// @Param   workplace body dto.CreateWorkplaceRequest true "Workplace details"
// @Success 201 {object} response.Envelope{data=dto.WorkplaceResponse}
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Security BearerAuth
// @Router /workplaces [post]
func (h *workplaceHandler) createWorkplace(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.CreateWorkplaceRequest
	if !bindJSON(c, &req) {
		return
	}
	workplace, err := h.workplaceService.CreateWorkplace(c.Request.Context(), actor, req)
	if err != nil {
		fail(c, err, "Failed to create workplace")
		return
	}
	middleware.GetLoggerFromContext(c).Info("Workplace created", slog.String("workplace_id", workplace.WorkplaceID))
	response.Created(c, "Workplace created", dto.ToWorkplaceResponse(workplace))
}

// updateWorkplace godoc
// @Summary Update a workplace
// @Tags workplaces
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Workplace ID"
// @Param workplace body dto.UpdateWorkplaceRequest true "Fields to change"
// @Success 200 {object} response.Envelope{data=dto.WorkplaceResponse}
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /workplaces/{id} [put]
func (h *workplaceHandler) updateWorkplace(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.UpdateWorkplaceRequest
	if !bindJSON(c, &req) {
		return
	}
	workplace, err := h.workplaceService.UpdateWorkplace(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		fail(c, err, "Failed to update workplace")
		return
	}
	response.OK(c, "Workplace updated", dto.ToWorkplaceResponse(workplace))
}

// deleteWorkplace godoc
// @Summary Delete a workplace
// @Tags workplaces
// @Produce json
// @Security BearerAuth
// @Param id path string true "Workplace ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /workplaces/{id} [delete]
func (h *workplaceHandler) deleteWorkplace(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	if err := h.workplaceService.DeleteWorkplace(c.Request.Context(), actor, c.Param("id")); err != nil {
		fail(c, err, "Failed to delete workplace")
		return
	}
	response.OK(c, "Workplace deleted", nil)
}
