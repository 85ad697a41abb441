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
	ErrShayariNotFound        = errors.New("shayari not found")
	ErrShayariContentRequired = errors.New("shayari content is required")
	ErrPoetRequired           = errors.New("poet is required")
)

// ShayariService handles original shayaris and poems saved from Rekhta
type ShayariService struct {
	store *store.Store
	now   func() time.Time
}

// NewShayariService creates a new ShayariService
func NewShayariService(st *store.Store) *ShayariService {
	return &ShayariService{
		store: st,
		now:   time.Now,
	}
}

// CreateShayariInput represents input for creating a shayari
type CreateShayariInput struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Tags     string `json:"tags"`
	ImageURL string `json:"image_url"`
}

// UpdateShayariInput represents input for updating a shayari
type UpdateShayariInput struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Tags     *string `json:"tags"`
	ImageURL *string `json:"image_url"`
}

// List returns shayaris matching the query over title, content and tags
func (s *ShayariService) List(query string) []models.Shayari {
	var shayaris []models.Shayari
	s.store.Load(store.CollectionShayaris, &shayaris)

	filtered := make([]models.Shayari, 0, len(shayaris))
	for _, sh := range shayaris {
		if utils.MatchesQuery(query, sh.Title, sh.Content, sh.Tags) {
			filtered = append(filtered, sh)
		}
	}
	return filtered
}

// Get returns a single shayari by ID
func (s *ShayariService) Get(id string) (*models.Shayari, error) {
	var shayaris []models.Shayari
	s.store.Load(store.CollectionShayaris, &shayaris)

	for _, sh := range shayaris {
		if sh.ID == id {
			return &sh, nil
		}
	}
	return nil, ErrShayariNotFound
}

// Create appends a new shayari, stamping the creation date
func (s *ShayariService) Create(input CreateShayariInput) (*models.Shayari, error) {
	if input.Content == "" {
		return nil, ErrShayariContentRequired
	}

	now := s.now()
	shayari := models.Shayari{
		ID:          utils.NewID(constants.PrefixShayari, now),
		Title:       input.Title,
		Content:     input.Content,
		Tags:        input.Tags,
		DateCreated: now.Format(constants.DateLayout),
		ImageURL:    input.ImageURL,
	}

	var shayaris []models.Shayari
	s.store.Update(store.CollectionShayaris, &shayaris, func() bool {
		shayaris = append(shayaris, shayari)
		return true
	})

	return &shayari, nil
}

// Update merges the submitted fields onto the stored shayari
func (s *ShayariService) Update(id string, input UpdateShayariInput) (*models.Shayari, error) {
	var shayaris []models.Shayari
	var shayari models.Shayari
	err := ErrShayariNotFound

	s.store.Update(store.CollectionShayaris, &shayaris, func() bool {
		for i := range shayaris {
			if shayaris[i].ID != id {
				continue
			}

			sh := &shayaris[i]
			if input.Content != nil {
				if *input.Content == "" {
					err = ErrShayariContentRequired
					return false
				}
				sh.Content = *input.Content
			}
			if input.Title != nil {
				sh.Title = *input.Title
			}
			if input.Tags != nil {
				sh.Tags = *input.Tags
			}
			if input.ImageURL != nil {
				sh.ImageURL = *input.ImageURL
			}

			shayari = *sh
			err = nil
			return true
		}
		return false
	})

	if err != nil {
		return nil, err
	}
	return &shayari, nil
}

// Delete removes a shayari from the collection
func (s *ShayariService) Delete(id string) error {
	var shayaris []models.Shayari
	err := ErrShayariNotFound

	s.store.Update(store.CollectionShayaris, &shayaris, func() bool {
		for i := range shayaris {
			if shayaris[i].ID == id {
				shayaris = append(shayaris[:i], shayaris[i+1:]...)
				err = nil
				return true
			}
		}
		return false
	})

	return err
}

// ── Rekhta saves ────────────────────────────────────────────────────────

// CreateRekhtaInput represents input for saving a Rekhta poem
type CreateRekhtaInput struct {
	Title     string `json:"title"`
	Poet      string `json:"poet"`
	Content   string `json:"content"`
	RekhtaURL string `json:"rekhta_url"`
}

// ListRekhta returns saved Rekhta poems matching the query over title,
// poet and content
func (s *ShayariService) ListRekhta(query string) []models.RekhtaShayari {
	var saved []models.RekhtaShayari
	s.store.Load(store.CollectionRekhtaShayaris, &saved)

	filtered := make([]models.RekhtaShayari, 0, len(saved))
	for _, r := range saved {
		if utils.MatchesQuery(query, r.Title, r.Poet, r.Content) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// CreateRekhta appends a saved Rekhta poem, stamping the save date
func (s *ShayariService) CreateRekhta(input CreateRekhtaInput) (*models.RekhtaShayari, error) {
	if input.Content == "" {
		return nil, ErrShayariContentRequired
	}
	if input.Poet == "" {
		return nil, ErrPoetRequired
	}

	now := s.now()
	saved := models.RekhtaShayari{
		ID:        utils.NewID(constants.PrefixRekhtaShayari, now),
		Title:     input.Title,
		Poet:      input.Poet,
		Content:   input.Content,
		RekhtaURL: input.RekhtaURL,
		DateSaved: now.Format(constants.DateLayout),
	}

	var all []models.RekhtaShayari
	s.store.Update(store.CollectionRekhtaShayaris, &all, func() bool {
		all = append(all, saved)
		return true
	})

	return &saved, nil
}

// DeleteRekhta removes a saved Rekhta poem
func (s *ShayariService) DeleteRekhta(id string) error {
	var saved []models.RekhtaShayari
	err := ErrShayariNotFound

	s.store.Update(store.CollectionRekhtaShayaris, &saved, func() bool {
		for i := range saved {
			if saved[i].ID == id {
				saved = append(saved[:i], saved[i+1:]...)
				err = nil
				return true
			}
		}
		return false
	})

	return err
}
