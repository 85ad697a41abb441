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
	ErrStoryNotFound      = errors.New("story not found")
	ErrSceneNotFound      = errors.New("scene not found")
	ErrStoryTitleRequired = errors.New("story title is required")
	ErrSceneTitleRequired = errors.New("scene title is required")
)

// StoryService handles stories and their scenes
type StoryService struct {
	store *store.Store
	now   func() time.Time
}

// NewStoryService creates a new StoryService
func NewStoryService(st *store.Store) *StoryService {
	return &StoryService{
		store: st,
		now:   time.Now,
	}
}

// CreateStoryInput represents input for creating a story
type CreateStoryInput struct {
	Title             string             `json:"title"`
	Type              string             `json:"type"`
	Genre             string             `json:"genre"`
	Tone              string             `json:"tone"`
	Status            models.StoryStatus `json:"status"`
	MainTheme         string             `json:"main_theme"`
	Summary           string             `json:"summary"`
	InspirationSource string             `json:"inspiration_source"`
	LinkedNotes       []string           `json:"linked_notes"`
	LinkedCanvaIdeas  []string           `json:"linked_canva_ideas"`
}

// UpdateStoryInput represents input for updating a story
type UpdateStoryInput struct {
	Title             *string             `json:"title"`
	Type              *string             `json:"type"`
	Genre             *string             `json:"genre"`
	Tone              *string             `json:"tone"`
	Status            *models.StoryStatus `json:"status"`
	MainTheme         *string             `json:"main_theme"`
	Summary           *string             `json:"summary"`
	InspirationSource *string             `json:"inspiration_source"`
	LinkedNotes       []string            `json:"linked_notes"`
	LinkedCanvaIdeas  []string            `json:"linked_canva_ideas"`
}

// ListStories returns stories matching the query over title, genre,
// theme and summary
func (s *StoryService) ListStories(query string) []models.Story {
	var stories []models.Story
	s.store.Load(store.CollectionStories, &stories)

	filtered := make([]models.Story, 0, len(stories))
	for _, st := range stories {
		if utils.MatchesQuery(query, st.Title, st.Genre, st.MainTheme, st.Summary) {
			filtered = append(filtered, st)
		}
	}
	return filtered
}

// GetStory returns a single story by ID
func (s *StoryService) GetStory(id string) (*models.Story, error) {
	var stories []models.Story
	s.store.Load(store.CollectionStories, &stories)

	for _, st := range stories {
		if st.ID == id {
			return &st, nil
		}
	}
	return nil, ErrStoryNotFound
}

// CreateStory appends a new story, stamping creation and update dates
func (s *StoryService) CreateStory(input CreateStoryInput) (*models.Story, error) {
	if input.Title == "" {
		return nil, ErrStoryTitleRequired
	}

	if input.Status == "" {
		input.Status = models.StoryStatusIdea
	}
	if input.LinkedNotes == nil {
		input.LinkedNotes = []string{}
	}
	if input.LinkedCanvaIdeas == nil {
		input.LinkedCanvaIdeas = []string{}
	}

	now := s.now()
	story := models.Story{
		ID:                utils.NewID(constants.PrefixStory, now),
		Title:             input.Title,
		Type:              input.Type,
		Genre:             input.Genre,
		Tone:              input.Tone,
		Status:            input.Status,
		MainTheme:         input.MainTheme,
		Summary:           input.Summary,
		InspirationSource: input.InspirationSource,
		LinkedNotes:       input.LinkedNotes,
		LinkedCanvaIdeas:  input.LinkedCanvaIdeas,
		DateCreated:       now.Format(constants.DateLayout),
		LastUpdated:       now.Format(constants.DateLayout),
	}

	var stories []models.Story
	s.store.Update(store.CollectionStories, &stories, func() bool {
		stories = append(stories, story)
		return true
	})

	return &story, nil
}

// UpdateStory merges the submitted fields and restamps LastUpdated
func (s *StoryService) UpdateStory(id string, input UpdateStoryInput) (*models.Story, error) {
	var stories []models.Story
	var story models.Story
	err := ErrStoryNotFound

	s.store.Update(store.CollectionStories, &stories, func() bool {
		for i := range stories {
			if stories[i].ID != id {
				continue
			}

			st := &stories[i]
			if input.Title != nil {
				if *input.Title == "" {
					err = ErrStoryTitleRequired
					return false
				}
				st.Title = *input.Title
			}
			if input.Type != nil {
				st.Type = *input.Type
			}
			if input.Genre != nil {
				st.Genre = *input.Genre
			}
			if input.Tone != nil {
				st.Tone = *input.Tone
			}
			if input.Status != nil {
				st.Status = *input.Status
			}
			if input.MainTheme != nil {
				st.MainTheme = *input.MainTheme
			}
			if input.Summary != nil {
				st.Summary = *input.Summary
			}
			if input.InspirationSource != nil {
				st.InspirationSource = *input.InspirationSource
			}
			if input.LinkedNotes != nil {
				st.LinkedNotes = input.LinkedNotes
			}
			if input.LinkedCanvaIdeas != nil {
				st.LinkedCanvaIdeas = input.LinkedCanvaIdeas
			}
			st.LastUpdated = s.now().Format(constants.DateLayout)

			story = *st
			err = nil
			return true
		}
		return false
	})

	if err != nil {
		return nil, err
	}
	return &story, nil
}

// DeleteStory removes a story and every scene referencing it. This is the
// only cascading delete in the application. The two collections are
// updated in sequence; each update is atomic on its own collection.
func (s *StoryService) DeleteStory(id string) error {
	var stories []models.Story
	err := ErrStoryNotFound

	s.store.Update(store.CollectionStories, &stories, func() bool {
		for i := range stories {
			if stories[i].ID == id {
				stories = append(stories[:i], stories[i+1:]...)
				err = nil
				return true
			}
		}
		return false
	})
	if err != nil {
		return err
	}

	var scenes []models.Scene
	s.store.Update(store.CollectionScenes, &scenes, func() bool {
		kept := make([]models.Scene, 0, len(scenes))
		for _, sc := range scenes {
			if sc.StoryID != id {
				kept = append(kept, sc)
			}
		}
		if len(kept) == len(scenes) {
			return false
		}
		scenes = kept
		return true
	})

	return nil
}

// ── Scenes ──────────────────────────────────────────────────────────────

// CreateSceneInput represents input for creating a scene
type CreateSceneInput struct {
	StoryID       string           `json:"story_id"`
	SceneNumber   int              `json:"scene_number"`
	Title         string           `json:"title"`
	Type          models.SceneType `json:"type"`
	Summary       string           `json:"summary"`
	DialogueNotes string           `json:"dialogue_notes"`
	VisualTone    string           `json:"visual_tone"`
	Location      string           `json:"location"`
	EmotionFocus  string           `json:"emotion_focus"`
	MusicStyle    string           `json:"music_style"`
	Completed     bool             `json:"completed"`
}

// UpdateSceneInput represents input for updating a scene
type UpdateSceneInput struct {
	StoryID       *string           `json:"story_id"`
	SceneNumber   *int              `json:"scene_number"`
	Title         *string           `json:"title"`
	Type          *models.SceneType `json:"type"`
	Summary       *string           `json:"summary"`
	DialogueNotes *string           `json:"dialogue_notes"`
	VisualTone    *string           `json:"visual_tone"`
	Location      *string           `json:"location"`
	EmotionFocus  *string           `json:"emotion_focus"`
	MusicStyle    *string           `json:"music_style"`
	Completed     *bool             `json:"completed"`
}

// ListScenes returns scenes, optionally narrowed to one story, in
// collection order
func (s *StoryService) ListScenes(storyID string) []models.Scene {
	var scenes []models.Scene
	s.store.Load(store.CollectionScenes, &scenes)

	if storyID == "" {
		return scenes
	}

	filtered := make([]models.Scene, 0, len(scenes))
	for _, sc := range scenes {
		if sc.StoryID == storyID {
			filtered = append(filtered, sc)
		}
	}
	return filtered
}

// GetScene returns a single scene by ID
func (s *StoryService) GetScene(id string) (*models.Scene, error) {
	var scenes []models.Scene
	s.store.Load(store.CollectionScenes, &scenes)

	for _, sc := range scenes {
		if sc.ID == id {
			return &sc, nil
		}
	}
	return nil, ErrSceneNotFound
}

// CreateScene appends a new scene
func (s *StoryService) CreateScene(input CreateSceneInput) (*models.Scene, error) {
	if input.Title == "" {
		return nil, ErrSceneTitleRequired
	}

	if input.Type == "" {
		input.Type = models.SceneReal
	}

	scene := models.Scene{
		ID:            utils.NewID(constants.PrefixScene, s.now()),
		StoryID:       input.StoryID,
		SceneNumber:   input.SceneNumber,
		Title:         input.Title,
		Type:          input.Type,
		Summary:       input.Summary,
		DialogueNotes: input.DialogueNotes,
		VisualTone:    input.VisualTone,
		Location:      input.Location,
		EmotionFocus:  input.EmotionFocus,
		MusicStyle:    input.MusicStyle,
		Completed:     input.Completed,
	}

	var scenes []models.Scene
	s.store.Update(store.CollectionScenes, &scenes, func() bool {
		scenes = append(scenes, scene)
		return true
	})

	return &scene, nil
}

// UpdateScene merges the submitted fields onto the stored scene
func (s *StoryService) UpdateScene(id string, input UpdateSceneInput) (*models.Scene, error) {
	var scenes []models.Scene
	var scene models.Scene
	err := ErrSceneNotFound

	s.store.Update(store.CollectionScenes, &scenes, func() bool {
		for i := range scenes {
			if scenes[i].ID != id {
				continue
			}

			sc := &scenes[i]
			if input.Title != nil {
				if *input.Title == "" {
					err = ErrSceneTitleRequired
					return false
				}
				sc.Title = *input.Title
			}
			if input.StoryID != nil {
				sc.StoryID = *input.StoryID
			}
			if input.SceneNumber != nil {
				sc.SceneNumber = *input.SceneNumber
			}
			if input.Type != nil {
				sc.Type = *input.Type
			}
			if input.Summary != nil {
				sc.Summary = *input.Summary
			}
			if input.DialogueNotes != nil {
				sc.DialogueNotes = *input.DialogueNotes
			}
			if input.VisualTone != nil {
				sc.VisualTone = *input.VisualTone
			}
			if input.Location != nil {
				sc.Location = *input.Location
			}
			if input.EmotionFocus != nil {
				sc.EmotionFocus = *input.EmotionFocus
			}
			if input.MusicStyle != nil {
				sc.MusicStyle = *input.MusicStyle
			}
			if input.Completed != nil {
				sc.Completed = *input.Completed
			}

			scene = *sc
			err = nil
			return true
		}
		return false
	})

	if err != nil {
		return nil, err
	}
	return &scene, nil
}

// DeleteScene removes a single scene
func (s *StoryService) DeleteScene(id string) error {
	var scenes []models.Scene
	err := ErrSceneNotFound

	s.store.Update(store.CollectionScenes, &scenes, func() bool {
		for i := range scenes {
			if scenes[i].ID == id {
				scenes = append(scenes[:i], scenes[i+1:]...)
				err = nil
				return true
			}
		}
		return false
	})

	return err
}
