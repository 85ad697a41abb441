package services

import (
	"errors"
	"time"

	"github.com/lifedesk/lifedesk-api/internal/constants"
	"github.com/lifedesk/lifedesk-api/internal/models"
	"github.com/lifedesk/lifedesk-api/internal/store"
	"github.com/lifedesk/lifedesk-api/internal/utils"
)

var (
	ErrHabitNotFound     = errors.New("habit not found")
	ErrHabitNameRequired = errors.New("habit name is required")
)

// HabitService handles habit business logic
type HabitService struct {
	store *store.Store
	now   func() time.Time
}

// NewHabitService creates a new HabitService
func NewHabitService(st *store.Store) *HabitService {
	return &HabitService{
		store: st,
		now:   time.Now,
	}
}

// CreateHabitInput represents input for creating a habit
type CreateHabitInput struct {
	Name      string                `json:"name"`
	Frequency models.HabitFrequency `json:"frequency"`
	StartDate string                `json:"start_date"`
	Streak    int                   `json:"streak"`
	IsActive  bool                  `json:"is_active"`
	Notes     string                `json:"notes"`
}

// UpdateHabitInput represents input for updating a habit
type UpdateHabitInput struct {
	Name      *string                `json:"name"`
	Frequency *models.HabitFrequency `json:"frequency"`
	StartDate *string                `json:"start_date"`
	Streak    *int                   `json:"streak"`
	IsActive  *bool                  `json:"is_active"`
	Notes     *string                `json:"notes"`
}

// List returns habits matching the query over name and notes
func (s *HabitService) List(query string) []models.Habit {
	var habits []models.Habit
	s.store.Load(store.CollectionHabits, &habits)

	filtered := make([]models.Habit, 0, len(habits))
	for _, h := range habits {
		if utils.MatchesQuery(query, h.Name, h.Notes) {
			filtered = append(filtered, h)
		}
	}
	return filtered
}

// Get returns a single habit by ID
func (s *HabitService) Get(id string) (*models.Habit, error) {
	var habits []models.Habit
	s.store.Load(store.CollectionHabits, &habits)

	for _, h := range habits {
		if h.ID == id {
			return &h, nil
		}
	}
	return nil, ErrHabitNotFound
}

// Create appends a new habit to the collection
func (s *HabitService) Create(input CreateHabitInput) (*models.Habit, error) {
	if input.Name == "" {
		return nil, ErrHabitNameRequired
	}
	if err := validateDate(input.StartDate); err != nil {
		return nil, err
	}

	if input.Frequency == "" {
		input.Frequency = models.HabitDaily
	}
	if input.Streak < 0 {
		input.Streak = 0
	}

	habit := models.Habit{
		ID:        utils.NewID(constants.PrefixHabit, s.now()),
		Name:      input.Name,
		Frequency: input.Frequency,
		StartDate: input.StartDate,
		Streak:    input.Streak,
		IsActive:  input.IsActive,
		Notes:     input.Notes,
	}

	var habits []models.Habit
	s.store.Update(store.CollectionHabits, &habits, func() bool {
		habits = append(habits, habit)
		return true
	})

	return &habit, nil
}

// Update merges the submitted fields onto the stored habit
func (s *HabitService) Update(id string, input UpdateHabitInput) (*models.Habit, error) {
	var habits []models.Habit
	var habit models.Habit
	err := ErrHabitNotFound

	s.store.Update(store.CollectionHabits, &habits, func() bool {
		for i := range habits {
			if habits[i].ID != id {
				continue
			}

			h := &habits[i]
			if input.Name != nil {
				if *input.Name == "" {
					err = ErrHabitNameRequired
					return false
				}
				h.Name = *input.Name
			}
			if input.Frequency != nil {
				h.Frequency = *input.Frequency
			}
			if input.StartDate != nil {
				if dateErr := validateDate(*input.StartDate); dateErr != nil {
					err = dateErr
					return false
				}
				h.StartDate = *input.StartDate
			}
			if input.Streak != nil && *input.Streak >= 0 {
				h.Streak = *input.Streak
			}
			if input.IsActive != nil {
				h.IsActive = *input.IsActive
			}
			if input.Notes != nil {
				h.Notes = *input.Notes
			}

			habit = *h
			err = nil
			return true
		}
		return false
	})

	if err != nil {
		return nil, err
	}
	return &habit, nil
}

// Delete removes a habit from the collection
func (s *HabitService) Delete(id string) error {
	var habits []models.Habit
	err := ErrHabitNotFound

	s.store.Update(store.CollectionHabits, &habits, func() bool {
		for i := range habits {
			if habits[i].ID == id {
				habits = append(habits[:i], habits[i+1:]...)
				err = nil
				return true
			}
		}
		return false
	})

	return err
}

// IncrementStreak adds one to a habit's streak
func (s *HabitService) IncrementStreak(id string) (*models.Habit, error) {
	return s.adjustStreak(id, func(streak int) int { return streak + 1 })
}

// DecrementStreak subtracts one from a habit's streak, floored at zero
func (s *HabitService) DecrementStreak(id string) (*models.Habit, error) {
	return s.adjustStreak(id, func(streak int) int {
		if streak <= 0 {
			return 0
		}
		return streak - 1
	})
}

// ResetStreak sets a habit's streak back to zero
func (s *HabitService) ResetStreak(id string) (*models.Habit, error) {
	return s.adjustStreak(id, func(int) int { return 0 })
}

func (s *HabitService) adjustStreak(id string, adjust func(int) int) (*models.Habit, error) {
	var habits []models.Habit
	var habit models.Habit
	err := ErrHabitNotFound

	s.store.Update(store.CollectionHabits, &habits, func() bool {
		for i := range habits {
			if habits[i].ID == id {
				habits[i].Streak = adjust(habits[i].Streak)
				habit = habits[i]
				err = nil
				return true
			}
		}
		return false
	})

	if err != nil {
		return nil, err
	}
	return &habit, nil
}
