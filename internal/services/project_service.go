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
	ErrProjectNotFound     = errors.New("project not found")
	ErrProjectNameRequired = errors.New("project name is required")
)

// ProjectService handles project business logic
type ProjectService struct {
	store *store.Store
	now   func() time.Time
}

// NewProjectService creates a new ProjectService
func NewProjectService(st *store.Store) *ProjectService {
	return &ProjectService{
		store: st,
		now:   time.Now,
	}
}

// CreateProjectInput represents input for creating a project
type CreateProjectInput struct {
	Name      string               `json:"name"`
	StartDate string               `json:"start_date"`
	DueDate   string               `json:"due_date"`
	Priority  models.Priority      `json:"priority"`
	Status    models.ProjectStatus `json:"status"`
	Notes     string               `json:"notes"`
}

// UpdateProjectInput represents input for updating a project
type UpdateProjectInput struct {
	Name      *string               `json:"name"`
	StartDate *string               `json:"start_date"`
	DueDate   *string               `json:"due_date"`
	Priority  *models.Priority      `json:"priority"`
	Status    *models.ProjectStatus `json:"status"`
	Notes     *string               `json:"notes"`
}

// List returns projects matching the query over name and notes
func (s *ProjectService) List(query string) []models.Project {
	var projects []models.Project
	s.store.Load(store.CollectionProjects, &projects)

	filtered := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if utils.MatchesQuery(query, p.Name, p.Notes) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Get returns a single project by ID
func (s *ProjectService) Get(id string) (*models.Project, error) {
	var projects []models.Project
	s.store.Load(store.CollectionProjects, &projects)

	for _, p := range projects {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, ErrProjectNotFound
}

// Create appends a new project to the collection
func (s *ProjectService) Create(input CreateProjectInput) (*models.Project, error) {
	if input.Name == "" {
		return nil, ErrProjectNameRequired
	}
	if err := validateDate(input.StartDate); err != nil {
		return nil, err
	}
	if err := validateDate(input.DueDate); err != nil {
		return nil, err
	}

	if input.Status == "" {
		input.Status = models.ProjectStatusPlanning
	}
	if input.Priority == "" {
		input.Priority = models.PriorityMedium
	}

	project := models.Project{
		ID:        utils.NewID(constants.PrefixProject, s.now()),
		Name:      input.Name,
		StartDate: input.StartDate,
		DueDate:   input.DueDate,
		Priority:  input.Priority,
		Status:    input.Status,
		Notes:     input.Notes,
	}

	var projects []models.Project
	s.store.Update(store.CollectionProjects, &projects, func() bool {
		projects = append(projects, project)
		return true
	})

	return &project, nil
}

// Update merges the submitted fields onto the stored project
func (s *ProjectService) Update(id string, input UpdateProjectInput) (*models.Project, error) {
	var projects []models.Project
	var project models.Project
	err := ErrProjectNotFound

	s.store.Update(store.CollectionProjects, &projects, func() bool {
		for i := range projects {
			if projects[i].ID != id {
				continue
			}

			p := &projects[i]
			if input.Name != nil {
				if *input.Name == "" {
					err = ErrProjectNameRequired
					return false
				}
				p.Name = *input.Name
			}
			if input.StartDate != nil {
				if dateErr := validateDate(*input.StartDate); dateErr != nil {
					err = dateErr
					return false
				}
				p.StartDate = *input.StartDate
			}
			if input.DueDate != nil {
				if dateErr := validateDate(*input.DueDate); dateErr != nil {
					err = dateErr
					return false
				}
				p.DueDate = *input.DueDate
			}
			if input.Priority != nil {
				p.Priority = *input.Priority
			}
			if input.Status != nil {
				p.Status = *input.Status
			}
			if input.Notes != nil {
				p.Notes = *input.Notes
			}

			project = *p
			err = nil
			return true
		}
		return false
	})

	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Delete removes a project. Tasks, notes and expenses referencing it are
// left alone; their project_id dangles and lookups treat it as "no
// project".
func (s *ProjectService) Delete(id string) error {
	var projects []models.Project
	err := ErrProjectNotFound

	s.store.Update(store.CollectionProjects, &projects, func() bool {
		for i := range projects {
			if projects[i].ID == id {
				projects = append(projects[:i], projects[i+1:]...)
				err = nil
				return true
			}
		}
		return false
	})

	return err
}
