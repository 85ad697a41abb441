package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/lifedesk/lifedesk-api/internal/errors"
	"github.com/lifedesk/lifedesk-api/internal/services"
)

type CanvaHandler struct {
	canva *services.CanvaService
}

func NewCanvaHandler(canva *services.CanvaService) *CanvaHandler {
	return &CanvaHandler{
		canva: canva,
	}
}

// ListFonts returns fonts, filtered by ?q
func (h *CanvaHandler) ListFonts(c *gin.Context) {
	fonts := h.canva.ListFonts(c.Query("q"))
	c.JSON(http.StatusOK, gin.H{"fonts": fonts})
}

// CreateFont creates a new font
func (h *CanvaHandler) CreateFont(c *gin.Context) {
	var input services.FontInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	font, err := h.canva.CreateFont(input)
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusCreated, font)
}

// UpdateFont replaces a font's editable fields
func (h *CanvaHandler) UpdateFont(c *gin.Context) {
	var input services.FontInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	font, err := h.canva.UpdateFont(c.Param("id"), input)
	if err != nil {
		if err == services.ErrCanvaAssetNotFound {
			apierrors.NotFound(c, "Font not found")
			return
		}
		apierrors.BadRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, font)
}

// DeleteFont removes a font
func (h *CanvaHandler) DeleteFont(c *gin.Context) {
	if err := h.canva.DeleteFont(c.Param("id")); err != nil {
		apierrors.NotFound(c, "Font not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Font deleted"})
}

// ListApps returns apps, filtered by ?q
func (h *CanvaHandler) ListApps(c *gin.Context) {
	apps := h.canva.ListApps(c.Query("q"))
	c.JSON(http.StatusOK, gin.H{"apps": apps})
}

// CreateApp creates a new app
func (h *CanvaHandler) CreateApp(c *gin.Context) {
	var input services.AppInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	app, err := h.canva.CreateApp(input)
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusCreated, app)
}

// UpdateApp replaces an app's editable fields
func (h *CanvaHandler) UpdateApp(c *gin.Context) {
	var input services.AppInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	app, err := h.canva.UpdateApp(c.Param("id"), input)
	if err != nil {
		if err == services.ErrCanvaAssetNotFound {
			apierrors.NotFound(c, "App not found")
			return
		}
		apierrors.BadRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, app)
}

// DeleteApp removes an app
func (h *CanvaHandler) DeleteApp(c *gin.Context) {
	if err := h.canva.DeleteApp(c.Param("id")); err != nil {
		apierrors.NotFound(c, "App not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "App deleted"})
}

// ListIdeas returns ideas, filtered by ?q
func (h *CanvaHandler) ListIdeas(c *gin.Context) {
	ideas := h.canva.ListIdeas(c.Query("q"))
	c.JSON(http.StatusOK, gin.H{"ideas": ideas})
}

// CreateIdea creates a new idea
func (h *CanvaHandler) CreateIdea(c *gin.Context) {
	var input services.IdeaInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	idea, err := h.canva.CreateIdea(input)
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusCreated, idea)
}

// UpdateIdea replaces an idea's editable fields
func (h *CanvaHandler) UpdateIdea(c *gin.Context) {
	var input services.IdeaInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	idea, err := h.canva.UpdateIdea(c.Param("id"), input)
	if err != nil {
		if err == services.ErrCanvaAssetNotFound {
			apierrors.NotFound(c, "Idea not found")
			return
		}
		apierrors.BadRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, idea)
}

// DeleteIdea removes an idea
func (h *CanvaHandler) DeleteIdea(c *gin.Context) {
	if err := h.canva.DeleteIdea(c.Param("id")); err != nil {
		apierrors.NotFound(c, "Idea not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Idea deleted"})
}

// ListLinks returns links, filtered by ?q
func (h *CanvaHandler) ListLinks(c *gin.Context) {
	links := h.canva.ListLinks(c.Query("q"))
	c.JSON(http.StatusOK, gin.H{"links": links})
}

// CreateLink creates a new link
func (h *CanvaHandler) CreateLink(c *gin.Context) {
	var input services.LinkInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	link, err := h.canva.CreateLink(input)
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusCreated, link)
}

// UpdateLink replaces a link's editable fields
func (h *CanvaHandler) UpdateLink(c *gin.Context) {
	var input services.LinkInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	link, err := h.canva.UpdateLink(c.Param("id"), input)
	if err != nil {
		if err == services.ErrCanvaAssetNotFound {
			apierrors.NotFound(c, "Link not found")
			return
		}
		apierrors.BadRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, link)
}

// DeleteLink removes a link
func (h *CanvaHandler) DeleteLink(c *gin.Context) {
	if err := h.canva.DeleteLink(c.Param("id")); err != nil {
		apierrors.NotFound(c, "Link not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Link deleted"})
}
