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
	ErrNoteNotFound      = errors.New("note not found")
	ErrNoteTitleRequired = errors.New("note title is required")
)

// NoteService handles note business logic
type NoteService struct {
	store *store.Store
	now   func() time.Time
}

// NewNoteService creates a new NoteService
func NewNoteService(st *store.Store) *NoteService {
	return &NoteService{
		store: st,
		now:   time.Now,
	}
}

// CreateNoteInput represents input for creating a note
type CreateNoteInput struct {
	ProjectID string `json:"project_id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Tags      string `json:"tags"`
}

// UpdateNoteInput represents input for updating a note
type UpdateNoteInput struct {
	ProjectID *string `json:"project_id"`
	Title     *string `json:"title"`
	Content   *string `json:"content"`
	Tags      *string `json:"tags"`
}

// List returns notes matching the query over title, content and tags
func (s *NoteService) List(query string) []models.Note {
	var notes []models.Note
	s.store.Load(store.CollectionNotes, &notes)

	filtered := make([]models.Note, 0, len(notes))
	for _, n := range notes {
		if utils.MatchesQuery(query, n.Title, n.Content, n.Tags) {
			filtered = append(filtered, n)
		}
	}
	return filtered
}

// Get returns a single note by ID
func (s *NoteService) Get(id string) (*models.Note, error) {
	var notes []models.Note
	s.store.Load(store.CollectionNotes, &notes)

	for _, n := range notes {
		if n.ID == id {
			return &n, nil
		}
	}
	return nil, ErrNoteNotFound
}

// Create appends a new note, stamping the creation date
func (s *NoteService) Create(input CreateNoteInput) (*models.Note, error) {
	if input.Title == "" {
		return nil, ErrNoteTitleRequired
	}

	now := s.now()
	note := models.Note{
		ID:        utils.NewID(constants.PrefixNote, now),
		ProjectID: input.ProjectID,
		CreatedOn: now.Format(constants.DateLayout),
		Title:     input.Title,
		Content:   input.Content,
		Tags:      input.Tags,
	}

	var notes []models.Note
	s.store.Update(store.CollectionNotes, &notes, func() bool {
		notes = append(notes, note)
		return true
	})

	return &note, nil
}

// Update merges the submitted fields onto the stored note
func (s *NoteService) Update(id string, input UpdateNoteInput) (*models.Note, error) {
	var notes []models.Note
	var note models.Note
	err := ErrNoteNotFound

	s.store.Update(store.CollectionNotes, &notes, func() bool {
		for i := range notes {
			if notes[i].ID != id {
				continue
			}

			n := &notes[i]
			if input.Title != nil {
				if *input.Title == "" {
					err = ErrNoteTitleRequired
					return false
				}
				n.Title = *input.Title
			}
			if input.ProjectID != nil {
				n.ProjectID = *input.ProjectID
			}
			if input.Content != nil {
				n.Content = *input.Content
			}
			if input.Tags != nil {
				n.Tags = *input.Tags
			}

			note = *n
			err = nil
			return true
		}
		return false
	})

	if err != nil {
		return nil, err
	}
	return &note, nil
}

// Delete removes a note from the collection
func (s *NoteService) Delete(id string) error {
	var notes []models.Note
	err := ErrNoteNotFound

	s.store.Update(store.CollectionNotes, &notes, func() bool {
		for i := range notes {
			if notes[i].ID == id {
				notes = append(notes[:i], notes[i+1:]...)
				err = nil
				return true
			}
		}
		return false
	})

	return err
}
