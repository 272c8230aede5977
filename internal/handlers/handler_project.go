package handlers

import (
	portssvc "github.com/SscSPs/hrops_backend/internal/core/ports/services"
	"github.com/SscSPs/hrops_backend/internal/dto"
	"github.com/SscSPs/hrops_backend/internal/platform/response"
	"github.com/gin-gonic/gin"
)

// projectHandler handles project and membership requests. Authorization is
// decided by the service because it depends on the project's manager and members.
type projectHandler struct {
	projectService portssvc.ProjectSvcFacade
}

func newProjectHandler(ps portssvc.ProjectSvcFacade) *projectHandler {
	return &projectHandler{projectService: ps}
}

func registerProjectRoutes(rg *gin.RouterGroup, projectService portssvc.ProjectSvcFacade) {
	h := newProjectHandler(projectService)

	projects := rg.Group("/projects")
	{
		projects.POST("", h.createProject)
		projects.POST("/list", h.listProjects)
		projects.GET("/:id", h.getProject)
		projects.PUT("/:id", h.updateProject)
		projects.DELETE("/:id", h.deleteProject)
		projects.POST("/:id/complete", h.completeProject)
		projects.POST("/:id/join", h.joinProject)
		projects.GET("/:id/members", h.listMembers)
		projects.POST("/:id/members", h.addMembers)
		projects.DELETE("/:id/members/:userId", h.removeMember)
	}
}

// createProject godoc
// @Summary Create a project
// @Description Admins and project managers only. The manager defaults to the requester.
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param project body dto.CreateProjectRequest true "Project details"
// @Success 201 {object} response.Envelope{data=dto.ProjectResponse}
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /projects [post]
func (h *projectHandler) createProject(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.CreateProjectRequest
	if !bindJSON(c, &req) {
		return
	}
	project, err := h.projectService.CreateProject(c.Request.Context(), actor, req)
	if err != nil {
		fail(c, err, "Failed to create project")
		return
	}
	response.Created(c, "Project created", dto.ToProjectResponse(project))
}

// listProjects godoc
// @Summary List projects
// @Description Admins see every project; others see public projects and those they belong to.
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ListRequest[dto.ProjectSearchCondition] false "Search condition and page"
// @Success 200 {object} response.Envelope{data=dto.ListResponse[dto.ProjectResponse]}
// @Router /projects/list [post]
func (h *projectHandler) listProjects(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	req, ok := bindList[dto.ProjectSearchCondition](c)
	if !ok {
		return
	}
	page, err := h.projectService.ListProjects(c.Request.Context(), actor, req.SearchCondition.ToDomain(), req.PageInfo.ToDomain())
	if err != nil {
		fail(c, err, "Failed to list projects")
		return
	}
	response.OK(c, "Projects retrieved", dto.ToListResponse(page, dto.ToProjectResponse))
}

// getProject godoc
// @Summary Get a project
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Success 200 {object} response.Envelope{data=dto.ProjectResponse}
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /projects/{id} [get]
func (h *projectHandler) getProject(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	project, err := h.projectService.GetProject(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		fail(c, err, "Project not found")
		return
	}
	response.OK(c, "Project retrieved", dto.ToProjectResponse(project))
}

// updateProject godoc
// @Summary Update a project
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Param project body dto.UpdateProjectRequest true "Fields to change"
// @Success 200 {object} response.Envelope{data=dto.ProjectResponse}
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /projects/{id} [put]
func (h *projectHandler) updateProject(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.UpdateProjectRequest
	if !bindJSON(c, &req) {
		return
	}
	project, err := h.projectService.UpdateProject(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		fail(c, err, "Failed to update project")
		return
	}
	response.OK(c, "Project updated", dto.ToProjectResponse(project))
}

// deleteProject godoc
// @Summary Delete a project
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /projects/{id} [delete]
func (h *projectHandler) deleteProject(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	if err := h.projectService.DeleteProject(c.Request.Context(), actor, c.Param("id")); err != nil {
		fail(c, err, "Failed to delete project")
		return
	}
	response.OK(c, "Project deleted", nil)
}

// completeProject godoc
// @Summary Complete a project
// @Description Refused with the number of unfinished tasks while any remain.
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Success 200 {object} response.Envelope{data=dto.ProjectResponse}
// @Failure 400 {object} response.Envelope "Unfinished tasks remain"
// @Failure 403 {object} response.Envelope
// @Router /projects/{id}/complete [post]
func (h *projectHandler) completeProject(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	project, err := h.projectService.CompleteProject(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		fail(c, err, "Failed to complete project")
		return
	}
	response.OK(c, "Project completed", dto.ToProjectResponse(project))
}

// joinProject godoc
// @Summary Join a public project
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Success 200 {object} response.Envelope{data=dto.ProjectResponse}
// @Failure 403 {object} response.Envelope "Project is private"
// @Failure 409 {object} response.Envelope "Already a member"
// @Router /projects/{id}/join [post]
func (h *projectHandler) joinProject(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	project, err := h.projectService.JoinProject(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		fail(c, err, "Failed to join project")
		return
	}
	response.OK(c, "Joined project", dto.ToProjectResponse(project))
}

// listMembers godoc
// @Summary List project members
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Success 200 {object} response.Envelope{data=dto.ProjectMembersResponse}
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /projects/{id}/members [get]
func (h *projectHandler) listMembers(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	manager, members, err := h.projectService.ListMembers(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		fail(c, err, "Failed to list project members")
		return
	}
	resp := dto.ProjectMembersResponse{Members: dto.ToUserResponses(members)}
	if manager != nil {
		m := dto.ToUserResponse(manager)
		resp.Manager = &m
	}
	response.OK(c, "Project members retrieved", resp)
}

// addMembers godoc
// @Summary Add project members
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Param request body dto.AddMembersRequest true "Users to add"
// @Success 200 {object} response.Envelope{data=dto.ProjectResponse}
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope "Project or user not found"
// @Router /projects/{id}/members [post]
func (h *projectHandler) addMembers(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.AddMembersRequest
	if !bindJSON(c, &req) {
		return
	}
	project, err := h.projectService.AddMembers(c.Request.Context(), actor, c.Param("id"), req.UserIDs)
	if err != nil {
		fail(c, err, "Failed to add members")
		return
	}
	response.OK(c, "Members added", dto.ToProjectResponse(project))
}

// removeMember godoc
// @Summary Remove a project member
// @Description The manager is never removable. The member's tasks in the project become unassigned.
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Param userId path string true "User ID"
// @Success 200 {object} response.Envelope{data=dto.ProjectResponse}
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /projects/{id}/members/{userId} [delete]
func (h *projectHandler) removeMember(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	project, err := h.projectService.RemoveMember(c.Request.Context(), actor, c.Param("id"), c.Param("userId"))
	if err != nil {
		fail(c, err, "Failed to remove member")
		return
	}
	response.OK(c, "Member removed", dto.ToProjectResponse(project))
}
