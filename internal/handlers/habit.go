package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/lifedesk/lifedesk-api/internal/errors"
	"github.com/lifedesk/lifedesk-api/internal/services"
)

type HabitHandler struct {
	habits *services.HabitService
}

func NewHabitHandler(habits *services.HabitService) *HabitHandler {
	return &HabitHandler{
		habits: habits,
	}
}

// ListHabits returns the habit collection, filtered by ?q
func (h *HabitHandler) ListHabits(c *gin.Context) {
	habits := h.habits.List(c.Query("q"))
	c.JSON(http.StatusOK, gin.H{"habits": habits})
}

// GetHabit returns a specific habit by ID
func (h *HabitHandler) GetHabit(c *gin.Context) {
	habit, err := h.habits.Get(c.Param("id"))
	if err != nil {
		apierrors.NotFound(c, "Habit not found")
		return
	}
	c.JSON(http.StatusOK, habit)
}

// CreateHabit creates a new habit
func (h *HabitHandler) CreateHabit(c *gin.Context) {
	var input services.CreateHabitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	habit, err := h.habits.Create(input)
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	c.JSON(http.StatusCreated, habit)
}

// UpdateHabit merges the submitted fields onto an existing habit
func (h *HabitHandler) UpdateHabit(c *gin.Context) {
	var input services.UpdateHabitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	habit, err := h.habits.Update(c.Param("id"), input)
	if err != nil {
		if errors.Is(err, services.ErrHabitNotFound) {
			apierrors.NotFound(c, "Habit not found")
			return
		}
		apierrors.BadRequest(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, habit)
}

// DeleteHabit removes a habit
func (h *HabitHandler) DeleteHabit(c *gin.Context) {
	if err := h.habits.Delete(c.Param("id")); err != nil {
		apierrors.NotFound(c, "Habit not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Habit deleted"})
}

// IncrementStreak adds one to a habit's streak
func (h *HabitHandler) IncrementStreak(c *gin.Context) {
	habit, err := h.habits.IncrementStreak(c.Param("id"))
	if err != nil {
		apierrors.NotFound(c, "Habit not found")
		return
	}
	c.JSON(http.StatusOK, habit)
}

// DecrementStreak subtracts one from a habit's streak, floored at zero
func (h *HabitHandler) DecrementStreak(c *gin.Context) {
	habit, err := h.habits.DecrementStreak(c.Param("id"))
	if err != nil {
		apierrors.NotFound(c, "Habit not found")
		return
	}
	c.JSON(http.StatusOK, habit)
}

// ResetStreak sets a habit's streak back to zero
func (h *HabitHandler) ResetStreak(c *gin.Context) {
	habit, err := h.habits.ResetStreak(c.Param("id"))
	if err != nil {
		apierrors.NotFound(c, "Habit not found")
		return
	}
	c.JSON(http.StatusOK, habit)
}
