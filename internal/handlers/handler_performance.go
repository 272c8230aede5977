package handlers

import (
	portssvc "github.com/SscSPs/hrops_backend/internal/core/ports/services"
	"github.com/SscSPs/hrops_backend/internal/dto"
	"github.com/SscSPs/hrops_backend/internal/middleware"
	"github.com/SscSPs/hrops_backend/internal/platform/response"
	"github.com/gin-gonic/gin"
)

// performanceHandler serves monthly reviews and the grade bonus table.
type performanceHandler struct {
	performanceService portssvc.PerformanceSvcFacade
}

func newPerformanceHandler(ps portssvc.PerformanceSvcFacade) *performanceHandler {
	return &performanceHandler{performanceService: ps}
}

func registerPerformanceRoutes(rg *gin.RouterGroup, performanceService portssvc.PerformanceSvcFacade) {
	h := newPerformanceHandler(performanceService)

	reviews := rg.Group("/performance-reviews")
	{
		reviews.POST("", middleware.RequireAdmin(), h.createReview)
		reviews.POST("/list", h.listReviews)
		reviews.GET("/:id", h.getReview)
		reviews.PUT("/:id", middleware.RequireAdmin(), h.updateReview)
	}

	bonuses := rg.Group("/performance-bonuses")
	{
		bonuses.GET("", h.listBonuses)
		bonuses.POST("", middleware.RequireAdmin(), h.createBonus)
		bonuses.PUT("/:id", middleware.RequireAdmin(), h.updateBonus)
		bonuses.POST("/:id/deactivate", middleware.RequireAdmin(), h.deactivateBonus)
	}
}

// createReview godoc
// @Summary Create a performance review
// @Tags performance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param review body dto.CreateReviewRequest true "Review"
// @Success 201 {object} response.Envelope{data=dto.ReviewResponse}
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope "User not found"
// @Failure 409 {object} response.Envelope "Review already exists for the period"
// @Router /performance-reviews [post]
func (h *performanceHandler) createReview(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.CreateReviewRequest
	if !bindJSON(c, &req) {
		return
	}
	review, err := h.performanceService.CreateReview(c.Request.Context(), actor, req)
	if err != nil {
		fail(c, err, "Failed to create review")
		return
	}
	response.Created(c, "Performance review created", dto.ToReviewResponse(review))
}

// listReviews godoc
// @Summary List performance reviews
// @Description Admins see every review; others only their own.
// @Tags performance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ListRequest[dto.ReviewSearchCondition] false "Search condition and page"
// @Success 200 {object} response.Envelope{data=dto.ListResponse[dto.ReviewResponse]}
// @Router /performance-reviews/list [post]
func (h *performanceHandler) listReviews(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	req, ok := bindList[dto.ReviewSearchCondition](c)
	if !ok {
		return
	}
	page, err := h.performanceService.ListReviews(c.Request.Context(), actor, req.SearchCondition.ToDomain(), req.PageInfo.ToDomain())
	if err != nil {
		fail(c, err, "Failed to list reviews")
		return
	}
	response.OK(c, "Performance reviews retrieved", dto.ToListResponse(page, dto.ToReviewResponse))
}

// getReview godoc
// @Summary Get a performance review
// @Tags performance
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Success 200 {object} response.Envelope{data=dto.ReviewResponse}
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /performance-reviews/{id} [get]
func (h *performanceHandler) getReview(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	review, err := h.performanceService.GetReview(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		fail(c, err, "Review not found")
		return
	}
	response.OK(c, "Performance review retrieved", dto.ToReviewResponse(review))
}

// updateReview godoc
// @Summary Update a performance review
// @Tags performance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Param review body dto.UpdateReviewRequest true "Grade and notes"
// @Success 200 {object} response.Envelope{data=dto.ReviewResponse}
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /performance-reviews/{id} [put]
func (h *performanceHandler) updateReview(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.UpdateReviewRequest
	if !bindJSON(c, &req) {
		return
	}
	review, err := h.performanceService.UpdateReview(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		fail(c, err, "Failed to update review")
		return
	}
	response.OK(c, "Performance review updated", dto.ToReviewResponse(review))
}

// listBonuses godoc
// @Summary List grade bonuses
// @Tags performance
// @Produce json
// @Security BearerAuth
// @Param include_inactive query bool false "Include deactivated bonuses (admin only)"
// @Success 200 {object} response.Envelope{data=[]dto.BonusResponse}
// @Router /performance-bonuses [get]
func (h *performanceHandler) listBonuses(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	var q dto.BonusListQuery
	if !bindQuery(c, &q) {
		return
	}
	activeOnly := !(q.IncludeInactive && actor.IsAdmin())
	bonuses, err := h.performanceService.ListBonuses(c.Request.Context(), activeOnly)
	if err != nil {
		fail(c, err, "Failed to list bonuses")
		return
	}
	response.OK(c, "Performance bonuses retrieved", dto.ToBonusResponses(bonuses))
}

// createBonus godoc
// @Summary Create a grade bonus
// @Tags performance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param bonus body dto.CreateBonusRequest true "Grade and amount"
// @Success 201 {object} response.Envelope{data=dto.BonusResponse}
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope "Grade already configured"
// @Router /performance-bonuses [post]
func (h *performanceHandler) createBonus(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.CreateBonusRequest
	if !bindJSON(c, &req) {
		return
	}
	bonus, err := h.performanceService.CreateBonus(c.Request.Context(), actor, req)
	if err != nil {
		fail(c, err, "Failed to create bonus")
		return
	}
	response.Created(c, "Performance bonus created", dto.ToBonusResponse(bonus))
}

// updateBonus godoc
// @Summary Update a grade bonus
// @Description Changes the amount or active flag. The grade cannot be changed.
// @Tags performance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Bonus ID"
// @Param bonus body dto.UpdateBonusRequest true "Fields to change"
// @Success 200 {object} response.Envelope{data=dto.BonusResponse}
// @Failure 400 {object} response.Envelope "Grade cannot be changed"
// @Failure 404 {object} response.Envelope
// @Router /performance-bonuses/{id} [put]
func (h *performanceHandler) updateBonus(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.UpdateBonusRequest
	if !bindJSON(c, &req) {
		return
	}
	bonus, err := h.performanceService.UpdateBonus(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		fail(c, err, "Failed to update bonus")
		return
	}
	response.OK(c, "Performance bonus updated", dto.ToBonusResponse(bonus))
}

// deactivateBonus godoc
// @Summary Deactivate a grade bonus
// @Tags performance
// @Produce json
// @Security BearerAuth
// @Param id path string true "Bonus ID"
// @Success 200 {object} response.Envelope{data=dto.BonusResponse}
// @Failure 404 {object} response.Envelope
// @Router /performance-bonuses/{id}/deactivate [post]
func (h *performanceHandler) deactivateBonus(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	bonus, err := h.performanceService.DeactivateBonus(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		fail(c, err, "Failed to deactivate bonus")
		return
	}
	response.OK(c, "Performance bonus deactivated", dto.ToBonusResponse(bonus))
}
