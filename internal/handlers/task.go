package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/lifedesk/lifedesk-api/internal/errors"
	"github.com/lifedesk/lifedesk-api/internal/models"
	"github.com/lifedesk/lifedesk-api/internal/services"
)

type TaskHandler struct {
	tasks *services.TaskService
}

func NewTaskHandler(tasks *services.TaskService) *TaskHandler {
	return &TaskHandler{
		tasks: tasks,
	}
}

// ListTasks returns the task collection, filtered by the optional q and
// status query parameters
func (h *TaskHandler) ListTasks(c *gin.Context) {
	var status *models.TaskStatus
	if statusStr := c.Query("status"); statusStr != "" {
		s := models.TaskStatus(statusStr)
		status = &s
	}

	tasks := h.tasks.List(c.Query("q"), status)
	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

// GetTask returns a specific task by ID
func (h *TaskHandler) GetTask(c *gin.Context) {
	task, err := h.tasks.Get(c.Param("id"))
	if err != nil {
		apierrors.NotFound(c, "Task not found")
		return
	}
	c.JSON(http.StatusOK, task)
}

// CreateTask creates a new task
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var input services.CreateTaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.tasks.Create(input)
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	c.JSON(http.StatusCreated, task)
}

// UpdateTask merges the submitted fields onto an existing task
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	var input services.UpdateTaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.tasks.Update(c.Param("id"), input)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			apierrors.NotFound(c, "Task not found")
			return
		}
		apierrors.BadRequest(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, task)
}

// DeleteTask removes a task
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	if err := h.tasks.Delete(c.Param("id")); err != nil {
		apierrors.NotFound(c, "Task not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted"})
}

// ToggleTask flips a task between TODO and DONE
func (h *TaskHandler) ToggleTask(c *gin.Context) {
	task, err := h.tasks.ToggleStatus(c.Param("id"))
	if err != nil {
		apierrors.NotFound(c, "Task not found")
		return
	}
	c.JSON(http.StatusOK, task)
}
