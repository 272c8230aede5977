package handlers

import (
	portssvc "github.com/SscSPs/hrops_backend/internal/core/ports/services"
	"github.com/SscSPs/hrops_backend/internal/dto"
	"github.com/SscSPs/hrops_backend/internal/platform/response"
	"github.com/gin-gonic/gin"
)

type taskHandler struct {
	taskService portssvc.TaskSvcFacade
}

func newTaskHandler(ts portssvc.TaskSvcFacade) *taskHandler {
	return &taskHandler{taskService: ts}
}

func registerTaskRoutes(rg *gin.RouterGroup, taskService portssvc.TaskSvcFacade) {
	h := newTaskHandler(taskService)

	tasks := rg.Group("/tasks")
	{
		tasks.POST("", h.createTask)
		tasks.POST("/list", h.listTasks)
		tasks.GET("/:id", h.getTask)
		tasks.PUT("/:id", h.updateTask)
		tasks.PATCH("/:id/status", h.updateTaskStatus)
		tasks.POST("/:id/join", h.joinTask)
		tasks.POST("/:id/assign", h.assignTask)
		tasks.DELETE("/:id", h.deleteTask)
	}
}

// createTask godoc
// @Summary Create a task
// @Description Creates a task or, with parent_id, a subtask in the same project.
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param task body dto.CreateTaskRequest true "Task details"
// @Success 201 {object} response.Envelope{data=dto.TaskResponse}
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope "Project or parent task not found"
// @Router /tasks [post]
func (h *taskHandler) createTask(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.CreateTaskRequest
	if !bindJSON(c, &req) {
		return
	}
	task, err := h.taskService.CreateTask(c.Request.Context(), actor, req)
	if err != nil {
		fail(c, err, "Failed to create task")
		return
	}
	response.Created(c, "Task created", dto.ToTaskResponse(task))
}

// listTasks godoc
// @Summary List tasks
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ListRequest[dto.TaskSearchCondition] false "Search condition and page"
// @Success 200 {object} response.Envelope{data=dto.ListResponse[dto.TaskResponse]}
// @Failure 403 {object} response.Envelope
// @Router /tasks/list [post]
func (h *taskHandler) listTasks(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	req, ok := bindList[dto.TaskSearchCondition](c)
	if !ok {
		return
	}
	page, err := h.taskService.ListTasks(c.Request.Context(), actor, req.SearchCondition.ToDomain(), req.PageInfo.ToDomain())
	if err != nil {
		fail(c, err, "Failed to list tasks")
		return
	}
	response.OK(c, "Tasks retrieved", dto.ToListResponse(page, dto.ToTaskResponse))
}

// getTask godoc
// @Summary Get a task with its subtasks
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Success 200 {object} response.Envelope{data=dto.TaskResponse}
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /tasks/{id} [get]
func (h *taskHandler) getTask(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	task, subtasks, err := h.taskService.GetTask(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		fail(c, err, "Task not found")
		return
	}
	response.OK(c, "Task retrieved", dto.ToTaskDetailResponse(task, subtasks))
}

// updateTask godoc
// @Summary Update a task
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Param task body dto.UpdateTaskRequest true "Fields to change"
// @Success 200 {object} response.Envelope{data=dto.TaskResponse}
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /tasks/{id} [put]
func (h *taskHandler) updateTask(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.UpdateTaskRequest
	if !bindJSON(c, &req) {
		return
	}
	task, err := h.taskService.UpdateTask(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		fail(c, err, "Failed to update task")
		return
	}
	response.OK(c, "Task updated", dto.ToTaskResponse(task))
}

// updateTaskStatus godoc
// @Summary Change task status
// @Description Moving to done is refused while subtasks are unfinished.
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Param request body dto.UpdateTaskStatusRequest true "New status"
// @Success 200 {object} response.Envelope{data=dto.TaskResponse}
// @Failure 400 {object} response.Envelope "Unfinished subtasks remain"
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /tasks/{id}/status [patch]
func (h *taskHandler) updateTaskStatus(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.UpdateTaskStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	task, err := h.taskService.UpdateTaskStatus(c.Request.Context(), actor, c.Param("id"), req.Status)
	if err != nil {
		fail(c, err, "Failed to update task status")
		return
	}
	response.OK(c, "Task status updated", dto.ToTaskResponse(task))
}

// joinTask godoc
// @Summary Take an unassigned task
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Success 200 {object} response.Envelope{data=dto.TaskResponse}
// @Failure 403 {object} response.Envelope
// @Failure 409 {object} response.Envelope "Task already assigned"
// @Router /tasks/{id}/join [post]
func (h *taskHandler) joinTask(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	task, err := h.taskService.JoinTask(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		fail(c, err, "Failed to join task")
		return
	}
	response.OK(c, "Joined task", dto.ToTaskResponse(task))
}

// assignTask godoc
// @Summary Assign a task
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Param request body dto.AssignTaskRequest true "Assignee"
// @Success 200 {object} response.Envelope{data=dto.TaskResponse}
// @Failure 400 {object} response.Envelope "Assignee is not in the project"
// @Failure 403 {object} response.Envelope
// @Router /tasks/{id}/assign [post]
func (h *taskHandler) assignTask(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.AssignTaskRequest
	if !bindJSON(c, &req) {
		return
	}
	task, err := h.taskService.AssignTask(c.Request.Context(), actor, c.Param("id"), req.AssigneeID)
	if err != nil {
		fail(c, err, "Failed to assign task")
		return
	}
	response.OK(c, "Task assigned", dto.ToTaskResponse(task))
}

// deleteTask godoc
// @Summary Delete a task
// @Description Refused while the task still has subtasks.
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope "Task has subtasks"
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /tasks/{id} [delete]
func (h *taskHandler) deleteTask(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	if err := h.taskService.DeleteTask(c.Request.Context(), actor, c.Param("id")); err != nil {
		fail(c, err, "Failed to delete task")
		return
	}
	response.OK(c, "Task deleted", nil)
}
