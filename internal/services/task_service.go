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
	ErrTaskNotFound          = errors.New("task not found")
	ErrTitleRequired         = errors.New("title is required")
	ErrTitleEmpty            = errors.New("title cannot be empty")
	ErrInvalidDate           = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidRecurrenceRule = errors.New("recurrence rule must be DAILY, WEEKLY or MONTHLY")
)

// TaskService handles task business logic
type TaskService struct {
	store *store.Store
	now   func() time.Time
}

// NewTaskService creates a new TaskService
func NewTaskService(st *store.Store) *TaskService {
	return &TaskService{
		store: st,
		now:   time.Now,
	}
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	ProjectID       string                `json:"project_id"`
	Title           string                `json:"title"`
	Assignee        string                `json:"assignee"`
	DueDate         string                `json:"due_date"`
	Status          models.TaskStatus     `json:"status"`
	Priority        models.Priority       `json:"priority"`
	IsRecurring     bool                  `json:"is_recurring"`
	RecurrenceRule  models.RecurrenceRule `json:"recurrence_rule"`
	ReminderMinutes int                   `json:"reminder_minutes"`
	Notes           string                `json:"notes"`
}

// UpdateTaskInput represents input for updating a task. Nil fields are
// left untouched.
type UpdateTaskInput struct {
	ProjectID       *string                `json:"project_id"`
	Title           *string                `json:"title"`
	Assignee        *string                `json:"assignee"`
	DueDate         *string                `json:"due_date"`
	Status          *models.TaskStatus     `json:"status"`
	Priority        *models.Priority       `json:"priority"`
	IsRecurring     *bool                  `json:"is_recurring"`
	RecurrenceRule  *models.RecurrenceRule `json:"recurrence_rule"`
	ReminderMinutes *int                   `json:"reminder_minutes"`
	Notes           *string                `json:"notes"`
}

// List returns tasks, optionally filtered by status and by a
// case-insensitive substring over title, assignee and notes. Collection
// order is preserved.
func (s *TaskService) List(query string, status *models.TaskStatus) []models.Task {
	var tasks []models.Task
	s.store.Load(store.CollectionTasks, &tasks)

	filtered := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if status != nil && t.Status != *status {
			continue
		}
		if !utils.MatchesQuery(query, t.Title, t.Assignee, t.Notes) {
			continue
		}
		filtered = append(filtered, t)
	}
	return filtered
}

// Get returns a single task by ID
func (s *TaskService) Get(id string) (*models.Task, error) {
	var tasks []models.Task
	s.store.Load(store.CollectionTasks, &tasks)

	for _, t := range tasks {
		if t.ID == id {
			return &t, nil
		}
	}
	return nil, ErrTaskNotFound
}

// Create validates the input and appends a new task to the collection.
// Status defaults to TODO; a recurrence rule on a non-recurring task is
// dropped so the rule is only ever set while IsRecurring holds.
func (s *TaskService) Create(input CreateTaskInput) (*models.Task, error) {
	if input.Title == "" {
		return nil, ErrTitleRequired
	}
	if err := validateDate(input.DueDate); err != nil {
		return nil, err
	}

	if input.Status == "" {
		input.Status = models.TaskStatusTodo
	}
	if input.Priority == "" {
		input.Priority = models.PriorityMedium
	}
	if !input.IsRecurring {
		input.RecurrenceRule = ""
	} else if !validRecurrenceRule(input.RecurrenceRule) {
		return nil, ErrInvalidRecurrenceRule
	}

	task := models.Task{
		ID:              utils.NewID(constants.PrefixTask, s.now()),
		ProjectID:       input.ProjectID,
		Title:           input.Title,
		Assignee:        input.Assignee,
		DueDate:         input.DueDate,
		Status:          input.Status,
		Priority:        input.Priority,
		IsRecurring:     input.IsRecurring,
		RecurrenceRule:  input.RecurrenceRule,
		ReminderMinutes: input.ReminderMinutes,
		Notes:           input.Notes,
	}

	var tasks []models.Task
	s.store.Update(store.CollectionTasks, &tasks, func() bool {
		tasks = append(tasks, task)
		return true
	})

	return &task, nil
}

// Update merges the submitted fields onto the stored task
func (s *TaskService) Update(id string, input UpdateTaskInput) (*models.Task, error) {
	var tasks []models.Task
	var task models.Task
	err := ErrTaskNotFound

	s.store.Update(store.CollectionTasks, &tasks, func() bool {
		for i := range tasks {
			if tasks[i].ID != id {
				continue
			}

			t := &tasks[i]
			if input.Title != nil {
				if *input.Title == "" {
					err = ErrTitleEmpty
					return false
				}
				t.Title = *input.Title
			}
			if input.ProjectID != nil {
				t.ProjectID = *input.ProjectID
			}
			if input.Assignee != nil {
				t.Assignee = *input.Assignee
			}
			if input.DueDate != nil {
				if dateErr := validateDate(*input.DueDate); dateErr != nil {
					err = dateErr
					return false
				}
				t.DueDate = *input.DueDate
			}
			if input.Status != nil {
				t.Status = *input.Status
			}
			if input.Priority != nil {
				t.Priority = *input.Priority
			}
			if input.IsRecurring != nil {
				t.IsRecurring = *input.IsRecurring
			}
			if input.RecurrenceRule != nil {
				if !validRecurrenceRule(*input.RecurrenceRule) {
					err = ErrInvalidRecurrenceRule
					return false
				}
				t.RecurrenceRule = *input.RecurrenceRule
			}
			if input.ReminderMinutes != nil {
				t.ReminderMinutes = *input.ReminderMinutes
			}
			if input.Notes != nil {
				t.Notes = *input.Notes
			}
			if !t.IsRecurring {
				t.RecurrenceRule = ""
			}

			task = *t
			err = nil
			return true
		}
		return false
	})

	if err != nil {
		return nil, err
	}
	return &task, nil
}

// Delete removes a task from the collection
func (s *TaskService) Delete(id string) error {
	var tasks []models.Task
	err := ErrTaskNotFound

	s.store.Update(store.CollectionTasks, &tasks, func() bool {
		for i := range tasks {
			if tasks[i].ID == id {
				tasks = append(tasks[:i], tasks[i+1:]...)
				err = nil
				return true
			}
		}
		return false
	})

	return err
}

// ToggleStatus flips a task between TODO and DONE
func (s *TaskService) ToggleStatus(id string) (*models.Task, error) {
	var tasks []models.Task
	var task models.Task
	err := ErrTaskNotFound

	s.store.Update(store.CollectionTasks, &tasks, func() bool {
		for i := range tasks {
			if tasks[i].ID != id {
				continue
			}

			if tasks[i].Status == models.TaskStatusDone {
				tasks[i].Status = models.TaskStatusTodo
			} else {
				tasks[i].Status = models.TaskStatusDone
			}

			task = tasks[i]
			err = nil
			return true
		}
		return false
	})

	if err != nil {
		return nil, err
	}
	return &task, nil
}

func validateDate(date string) error {
	if date == "" {
		return nil
	}
	if _, err := time.Parse(constants.DateLayout, date); err != nil {
		return ErrInvalidDate
	}
	return nil
}

func validRecurrenceRule(rule models.RecurrenceRule) bool {
	switch rule {
	case models.RecurrenceDaily, models.RecurrenceWeekly, models.RecurrenceMonthly:
		return true
	}
	return false
}
