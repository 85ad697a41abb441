package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/lifedesk/lifedesk-api/internal/errors"
	"github.com/lifedesk/lifedesk-api/internal/services"
)

type NoteHandler struct {
	notes *services.NoteService
}

func NewNoteHandler(notes *services.NoteService) *NoteHandler {
	return &NoteHandler{
		notes: notes,
	}
}

// ListNotes returns the note collection, filtered by ?q
func (h *NoteHandler) ListNotes(c *gin.Context) {
	notes := h.notes.List(c.Query("q"))
	c.JSON(http.StatusOK, gin.H{"notes": notes})
}

// GetNote returns a specific note by ID
func (h *NoteHandler) GetNote(c *gin.Context) {
	note, err := h.notes.Get(c.Param("id"))
	if err != nil {
		apierrors.NotFound(c, "Note not found")
		return
	}
	c.JSON(http.StatusOK, note)
}

// CreateNote creates a new note
func (h *NoteHandler) CreateNote(c *gin.Context) {
	var input services.CreateNoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	note, err := h.notes.Create(input)
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	c.JSON(http.StatusCreated, note)
}

// UpdateNote merges the submitted fields onto an existing note
func (h *NoteHandler) UpdateNote(c *gin.Context) {
	var input services.UpdateNoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	note, err := h.notes.Update(c.Param("id"), input)
	if err != nil {
		if errors.Is(err, services.ErrNoteNotFound) {
			apierrors.NotFound(c, "Note not found")
			return
		}
		apierrors.BadRequest(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, note)
}

// DeleteNote removes a note
func (h *NoteHandler) DeleteNote(c *gin.Context) {
	if err := h.notes.Delete(c.Param("id")); err != nil {
		apierrors.NotFound(c, "Note not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Note deleted"})
}
