package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/lifedesk/lifedesk-api/internal/errors"
	"github.com/lifedesk/lifedesk-api/internal/services"
)

type ProjectHandler struct {
	projects *services.ProjectService
}

func NewProjectHandler(projects *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projects: projects,
	}
}

// ListProjects returns the project collection, filtered by ?q
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects := h.projects.List(c.Query("q"))
	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

// GetProject returns a specific project by ID
func (h *ProjectHandler) GetProject(c *gin.Context) {
	project, err := h.projects.Get(c.Param("id"))
	if err != nil {
		apierrors.NotFound(c, "Project not found")
		return
	}
	c.JSON(http.StatusOK, project)
}

// CreateProject creates a new project
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var input services.CreateProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	project, err := h.projects.Create(input)
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	c.JSON(http.StatusCreated, project)
}

// UpdateProject merges the submitted fields onto an existing project
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	var input services.UpdateProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	project, err := h.projects.Update(c.Param("id"), input)
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			apierrors.NotFound(c, "Project not found")
			return
		}
		apierrors.BadRequest(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, project)
}

// DeleteProject removes a project; its tasks, notes and expenses are kept
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	if err := h.projects.Delete(c.Param("id")); err != nil {
		apierrors.NotFound(c, "Project not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted"})
}
