package delivery

import (
	"errors"
	"net/http"
	"strconv"

	"taskmanager-backend/internal/apperr"
	"taskmanager-backend/internal/task/usecase"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

// allowedTaskUpdates is the whitelist for PATCH /tasks/:id.
var allowedTaskUpdates = map[string]bool{
	"description": true,
	"completed":   true,
}

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskUsecase usecase.TaskUsecase
	logger      *zap.Logger
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskUsecase usecase.TaskUsecase, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		taskUsecase: taskUsecase,
		logger:      logger,
	}
}

// CreateTaskRequest represents the request body for creating a task
type CreateTaskRequest struct {
	Description string `json:"description" binding:"required"`
	Completed   bool   `json:"completed"`
}

func (h *TaskHandler) respondError(c *gin.Context, err error) {
	var ve *apperr.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "fields": ve.Fields})
	case errors.Is(err, apperr.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
	default:
		h.logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// CreateTask creates a task owned by the authenticated user. Any owner field
// in the body is ignored; ownership comes from the token.
// POST /tasks
func (h *TaskHandler) CreateTask(c *gin.Context) {
	ownerID := c.GetString("userID")

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.taskUsecase.CreateTask(ownerID, req.Description, req.Completed)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// ListTasks returns the authenticated user's tasks
// GET /mytasks?completed=true&sortBy=createdAt_desc&limit=10&skip=20
func (h *TaskHandler) ListTasks(c *gin.Context) {
	ownerID := c.GetString("userID")

	q := usecase.ListQuery{
		SortBy: c.Query("sortBy"),
		Limit:  -1,
	}

	if v := c.Query("completed"); v != "" {
		completed, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "completed must be true or false"})
			return
		}
		q.Completed = &completed
	}

	// Malformed pagination values are rejected, never coerced to zero.
	if v := c.Query("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		q.Limit = limit
	}
	if v := c.Query("skip"); v != "" {
		skip, err := strconv.Atoi(v)
		if err != nil || skip < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "skip must be a non-negative integer"})
			return
		}
		q.Skip = skip
	}

	tasks, err := h.taskUsecase.ListTasks(ownerID, q)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// GetTask returns one of the authenticated user's tasks
// GET /tasks/:id
func (h *TaskHandler) GetTask(c *gin.Context) {
	ownerID := c.GetString("userID")

	task, err := h.taskUsecase.GetTask(ownerID, c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// UpdateTask applies a partial update to one task
// PATCH /tasks/:id
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	ownerID := c.GetString("userID")

	var raw map[string]interface{}
	if err := c.ShouldBindBodyWith(&raw, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	for key := range raw {
		if !allowedTaskUpdates[key] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid update inputs"})
			return
		}
	}

	var updates usecase.TaskUpdateRequest
	if err := c.ShouldBindBodyWith(&updates, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.taskUsecase.UpdateTask(ownerID, c.Param("id"), updates)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// DeleteTask deletes one task
// DELETE /tasks/:id
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	ownerID := c.GetString("userID")

	task, err := h.taskUsecase.DeleteTask(ownerID, c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"message": "task successfully deleted", "task": task})
}
