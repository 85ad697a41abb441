package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/lifedesk/lifedesk-api/internal/errors"
	"github.com/lifedesk/lifedesk-api/internal/services"
)

type StoryHandler struct {
	stories *services.StoryService
}

func NewStoryHandler(stories *services.StoryService) *StoryHandler {
	return &StoryHandler{
		stories: stories,
	}
}

// ListStories returns the story collection, filtered by ?q
func (h *StoryHandler) ListStories(c *gin.Context) {
	stories := h.stories.ListStories(c.Query("q"))
	c.JSON(http.StatusOK, gin.H{"stories": stories})
}

// GetStory returns a specific story by ID
func (h *StoryHandler) GetStory(c *gin.Context) {
	story, err := h.stories.GetStory(c.Param("id"))
	if err != nil {
		apierrors.NotFound(c, "Story not found")
		return
	}
	c.JSON(http.StatusOK, story)
}

// CreateStory creates a new story
func (h *StoryHandler) CreateStory(c *gin.Context) {
	var input services.CreateStoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	story, err := h.stories.CreateStory(input)
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	c.JSON(http.StatusCreated, story)
}

// UpdateStory merges the submitted fields onto an existing story
func (h *StoryHandler) UpdateStory(c *gin.Context) {
	var input services.UpdateStoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	story, err := h.stories.UpdateStory(c.Param("id"), input)
	if err != nil {
		if errors.Is(err, services.ErrStoryNotFound) {
			apierrors.NotFound(c, "Story not found")
			return
		}
		apierrors.BadRequest(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, story)
}

// DeleteStory removes a story together with every scene referencing it
func (h *StoryHandler) DeleteStory(c *gin.Context) {
	if err := h.stories.DeleteStory(c.Param("id")); err != nil {
		apierrors.NotFound(c, "Story not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Story and its scenes deleted"})
}

// ListScenes returns scenes, optionally filtered by ?story_id
func (h *StoryHandler) ListScenes(c *gin.Context) {
	scenes := h.stories.ListScenes(c.Query("story_id"))
	c.JSON(http.StatusOK, gin.H{"scenes": scenes})
}

// GetScene returns a specific scene by ID
func (h *StoryHandler) GetScene(c *gin.Context) {
	scene, err := h.stories.GetScene(c.Param("id"))
	if err != nil {
		apierrors.NotFound(c, "Scene not found")
		return
	}
	c.JSON(http.StatusOK, scene)
}

// CreateScene creates a new scene
func (h *StoryHandler) CreateScene(c *gin.Context) {
	var input services.CreateSceneInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	scene, err := h.stories.CreateScene(input)
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	c.JSON(http.StatusCreated, scene)
}

// UpdateScene merges the submitted fields onto an existing scene
func (h *StoryHandler) UpdateScene(c *gin.Context) {
	var input services.UpdateSceneInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	scene, err := h.stories.UpdateScene(c.Param("id"), input)
	if err != nil {
		if errors.Is(err, services.ErrSceneNotFound) {
			apierrors.NotFound(c, "Scene not found")
			return
		}
		apierrors.BadRequest(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, scene)
}

// DeleteScene removes a single scene
func (h *StoryHandler) DeleteScene(c *gin.Context) {
	if err := h.stories.DeleteScene(c.Param("id")); err != nil {
		apierrors.NotFound(c, "Scene not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Scene deleted"})
}
