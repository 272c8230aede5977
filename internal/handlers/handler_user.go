package handlers

import (
	"log/slog"

	portssvc "github.com/SscSPs/hrops_backend/internal/core/ports/services"
	"github.com/SscSPs/hrops_backend/internal/dto"
	"github.com/SscSPs/hrops_backend/internal/middleware"
	"github.com/SscSPs/hrops_backend/internal/platform/response"
	"github.com/gin-gonic/gin"
)

// userHandler handles HTTP requests related to users.
type userHandler struct {
	userService portssvc.UserSvcFacade
}

// newUserHandler creates a new userHandler.
func newUserHandler(us portssvc.UserSvcFacade) *userHandler {
	return &userHandler{
		userService: us,
	}
}

// registerUserRoutes registers routes related to users.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := newUserHandler(userService)

	users := rg.Group("/users")
	{
		users.POST("", middleware.RequireAdmin(), h.createUser)
		users.POST("/list", middleware.RequireAdmin(), h.listUsers)
		users.GET("/:id", middleware.RequireSelfOrAdmin("id"), h.getUser)
		users.PUT("/:id", middleware.RequireSelfOrAdmin("id"), h.updateUser)
		users.DELETE("/:id", middleware.RequireAdmin(), h.deleteUser)
		users.POST("/:id/block", middleware.RequireAdmin(), h.blockUser)
		users.POST("/:id/unblock", middleware.RequireAdmin(), h.unblockUser)
	}
}

// createUser godoc
// @Summary Create a user
// @Description Provisions an activated account (admin only) and emails a welcome message.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param user body dto.CreateUserRequest true "User details"
// @Success 201 {object} response.Envelope{data=dto.UserResponse}
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 409 {object} response.Envelope "Email already registered"
// @Router /users [post]
func (h *userHandler) createUser(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}
	user, err := h.userService.CreateUser(c.Request.Context(), actor, req)
	if err != nil {
		fail(c, err, "Failed to create user")
		return
	}
	middleware.GetLoggerFromContext(c).Info("User created", slog.String("created_user_id", user.UserID))
	response.Created(c, "User created", dto.ToUserResponse(user))
}

// listUsers godoc
// @Summary List users
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ListRequest[dto.UserSearchCondition] false "Search condition and page"
// @Success 200 {object} response.Envelope{data=dto.ListResponse[dto.UserResponse]}
// @Failure 403 {object} response.Envelope
// @Router /users/list [post]
func (h *userHandler) listUsers(c *gin.Context) {
	req, ok := bindList[dto.UserSearchCondition](c)
	if !ok {
		return
	}
	page, err := h.userService.ListUsers(c.Request.Context(), req.SearchCondition.ToDomain(), req.PageInfo.ToDomain())
	if err != nil {
		fail(c, err, "Failed to list users")
		return
	}
	response.OK(c, "Users retrieved", dto.ToListResponse(page, dto.ToUserResponse))
}

// getUser godoc
// @Summary Get a user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} response.Envelope{data=dto.UserResponse}
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /users/{id} [get]
func (h *userHandler) getUser(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	user, err := h.userService.GetUser(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		fail(c, err, "User not found")
		return
	}
	response.OK(c, "User retrieved", dto.ToUserResponse(user))
}

// updateUser godoc
// @Summary Update a user
// @Description Users may change their own name and phone. Role, salary and activation are admin-only.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param user body dto.UpdateUserRequest true "Fields to change"
// @Success 200 {object} response.Envelope{data=dto.UserResponse}
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /users/{id} [put]
func (h *userHandler) updateUser(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.UpdateUserRequest
	if !bindJSON(c, &req) {
		return
	}
	user, err := h.userService.UpdateUser(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		fail(c, err, "Failed to update user")
		return
	}
	response.OK(c, "User updated", dto.ToUserResponse(user))
}

// deleteUser godoc
// @Summary Delete a user
// @Description Soft-deletes a user. Admins cannot delete themselves.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /users/{id} [delete]
func (h *userHandler) deleteUser(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	if err := h.userService.DeleteUser(c.Request.Context(), actor, c.Param("id")); err != nil {
		fail(c, err, "Failed to delete user")
		return
	}
	response.OK(c, "User deleted", nil)
}

// blockUser godoc
// @Summary Block a user
// @Description Blocks the account, ends its session and notifies the user by email.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} response.Envelope{data=dto.UserResponse}
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /users/{id}/block [post]
func (h *userHandler) blockUser(c *gin.Context) {
	h.setBlocked(c, true)
}

// unblockUser godoc
// @Summary Unblock a user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} response.Envelope{data=dto.UserResponse}
// @Failure 404 {object} response.Envelope
// @Router /users/{id}/unblock [post]
func (h *userHandler) unblockUser(c *gin.Context) {
	h.setBlocked(c, false)
}

func (h *userHandler) setBlocked(c *gin.Context, blocked bool) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	user, err := h.userService.SetBlocked(c.Request.Context(), actor, c.Param("id"), blocked)
	if err != nil {
		fail(c, err, "Failed to change account status")
		return
	}
	msg := "User unblocked"
	if blocked {
		msg = "User blocked"
	}
	response.OK(c, msg, dto.ToUserResponse(user))
}
