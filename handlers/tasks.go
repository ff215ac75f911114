package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"task-tracker/apperr"
	"task-tracker/models"
	"task-tracker/service"
)

// TaskHandler exposes the task CRUD operations over HTTP.
type TaskHandler struct {
	service *service.TaskService
	log     *logrus.Entry
}

func NewTaskHandler(svc *service.TaskService, log *logrus.Entry) *TaskHandler {
	return &TaskHandler{service: svc, log: log}
}

// Register mounts the /tasks routes on the router.
func (h *TaskHandler) Register(r *gin.Engine) {
	tasks := r.Group("/tasks")
	tasks.POST("", h.createTask)
	tasks.GET("", h.getAllTasks)
	tasks.GET("/:id", h.getTaskByID)
	tasks.PUT("/:id", h.updateTask)
	tasks.PATCH("/:id", h.partialUpdateTask)
	tasks.DELETE("/:id", h.deleteTask)
}

// POST /tasks - Create a new task
func (h *TaskHandler) createTask(c *gin.Context) {
	var req models.TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeErrorBody(c, http.StatusBadRequest, apperr.CodeValidation, "invalid request body")
		return
	}

	task, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

// GET /tasks - List all tasks
func (h *TaskHandler) getAllTasks(c *gin.Context) {
	tasks, err := h.service.List(c.Request.Context())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// GET /tasks/:id - Fetch a task by ID
func (h *TaskHandler) getTaskByID(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	task, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	if task == nil {
		c.Status(http.StatusNotFound)
		return
	}
	c.JSON(http.StatusOK, task)
}

// PUT /tasks/:id - Replace an existing task
func (h *TaskHandler) updateTask(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	var req models.TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeErrorBody(c, http.StatusBadRequest, apperr.CodeValidation, "invalid request body")
		return
	}

	task, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	if task == nil {
		c.Status(http.StatusNotFound)
		return
	}
	c.JSON(http.StatusOK, task)
}

// PATCH /tasks/:id - Update only the supplied fields of a task
func (h *TaskHandler) partialUpdateTask(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	var patch models.TaskPatchRequest
	if err := c.ShouldBindJSON(&patch); err != nil {
		writeErrorBody(c, http.StatusBadRequest, apperr.CodeValidation, "invalid request body")
		return
	}

	task, err := h.service.PartialUpdate(c.Request.Context(), id, patch)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	if task == nil {
		c.Status(http.StatusNotFound)
		return
	}
	c.JSON(http.StatusOK, task)
}

// DELETE /tasks/:id - Delete a task
func (h *TaskHandler) deleteTask(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		writeError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func taskID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		writeErrorBody(c, http.StatusBadRequest, apperr.CodeValidation, "invalid task ID")
		return 0, false
	}
	return id, true
}
