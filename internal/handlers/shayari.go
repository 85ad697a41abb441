package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/lifedesk/lifedesk-api/internal/errors"
	"github.com/lifedesk/lifedesk-api/internal/services"
)

type ShayariHandler struct {
	shayaris *services.ShayariService
}

func NewShayariHandler(shayaris *services.ShayariService) *ShayariHandler {
	return &ShayariHandler{
		shayaris: shayaris,
	}
}

// ListShayaris returns the shayari collection, filtered by ?q
func (h *ShayariHandler) ListShayaris(c *gin.Context) {
	shayaris := h.shayaris.List(c.Query("q"))
	c.JSON(http.StatusOK, gin.H{"shayaris": shayaris})
}

// GetShayari returns a specific shayari by ID
func (h *ShayariHandler) GetShayari(c *gin.Context) {
	shayari, err := h.shayaris.Get(c.Param("id"))
	if err != nil {
		apierrors.NotFound(c, "Shayari not found")
		return
	}
	c.JSON(http.StatusOK, shayari)
}

// CreateShayari creates a new shayari
func (h *ShayariHandler) CreateShayari(c *gin.Context) {
	var input services.CreateShayariInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	shayari, err := h.shayaris.Create(input)
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	c.JSON(http.StatusCreated, shayari)
}

// UpdateShayari merges the submitted fields onto an existing shayari
func (h *ShayariHandler) UpdateShayari(c *gin.Context) {
	var input services.UpdateShayariInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	shayari, err := h.shayaris.Update(c.Param("id"), input)
	if err != nil {
		if errors.Is(err, services.ErrShayariNotFound) {
			apierrors.NotFound(c, "Shayari not found")
			return
		}
		apierrors.BadRequest(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, shayari)
}

// DeleteShayari removes a shayari
func (h *ShayariHandler) DeleteShayari(c *gin.Context) {
	if err := h.shayaris.Delete(c.Param("id")); err != nil {
		apierrors.NotFound(c, "Shayari not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Shayari deleted"})
}

// ListRekhta returns saved Rekhta poems, filtered by ?q
func (h *ShayariHandler) ListRekhta(c *gin.Context) {
	saved := h.shayaris.ListRekhta(c.Query("q"))
	c.JSON(http.StatusOK, gin.H{"rekhta": saved})
}

// CreateRekhta saves a poem from Rekhta
func (h *ShayariHandler) CreateRekhta(c *gin.Context) {
	var input services.CreateRekhtaInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	saved, err := h.shayaris.CreateRekhta(input)
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	c.JSON(http.StatusCreated, saved)
}

// DeleteRekhta removes a saved Rekhta poem
func (h *ShayariHandler) DeleteRekhta(c *gin.Context) {
	if err := h.shayaris.DeleteRekhta(c.Param("id")); err != nil {
		apierrors.NotFound(c, "Saved shayari not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Saved shayari deleted"})
}
