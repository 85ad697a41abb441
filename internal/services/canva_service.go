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
	ErrCanvaAssetNotFound = errors.New("canva asset not found")
	ErrNameRequired       = errors.New("name is required")
	ErrURLRequired        = errors.New("url is required")
)

// CanvaService handles the four Canva asset collections: fonts, apps,
// ideas and links. Each is the same flat CRUD surface.
type CanvaService struct {
	store *store.Store
	now   func() time.Time
}

// NewCanvaService creates a new CanvaService
func NewCanvaService(st *store.Store) *CanvaService {
	return &CanvaService{
		store: st,
		now:   time.Now,
	}
}

// ── Fonts ───────────────────────────────────────────────────────────────

// FontInput carries the editable fields of a CanvaFont
type FontInput struct {
	Name         string `json:"name"`
	UseCaseNotes string `json:"use_case_notes"`
}

// ListFonts returns fonts matching the query over name and notes
func (s *CanvaService) ListFonts(query string) []models.CanvaFont {
	var fonts []models.CanvaFont
	s.store.Load(store.CollectionCanvaFonts, &fonts)

	filtered := make([]models.CanvaFont, 0, len(fonts))
	for _, f := range fonts {
		if utils.MatchesQuery(query, f.Name, f.UseCaseNotes) {
			filtered = append(filtered, f)
		}
	}
	return filtered
}

// CreateFont appends a new font
func (s *CanvaService) CreateFont(input FontInput) (*models.CanvaFont, error) {
	if input.Name == "" {
		return nil, ErrNameRequired
	}

	font := models.CanvaFont{
		ID:           utils.NewID(constants.PrefixCanvaFont, s.now()),
		Name:         input.Name,
		UseCaseNotes: input.UseCaseNotes,
	}

	var fonts []models.CanvaFont
	s.store.Update(store.CollectionCanvaFonts, &fonts, func() bool {
		fonts = append(fonts, font)
		return true
	})

	return &font, nil
}

// UpdateFont replaces the editable fields of a font
func (s *CanvaService) UpdateFont(id string, input FontInput) (*models.CanvaFont, error) {
	if input.Name == "" {
		return nil, ErrNameRequired
	}

	var fonts []models.CanvaFont
	var font models.CanvaFont
	err := ErrCanvaAssetNotFound

	s.store.Update(store.CollectionCanvaFonts, &fonts, func() bool {
		for i := range fonts {
			if fonts[i].ID == id {
				fonts[i].Name = input.Name
				fonts[i].UseCaseNotes = input.UseCaseNotes
				font = fonts[i]
				err = nil
				return true
			}
		}
		return false
	})

	if err != nil {
		return nil, err
	}
	return &font, nil
}

// DeleteFont removes a font
func (s *CanvaService) DeleteFont(id string) error {
	var fonts []models.CanvaFont
	err := ErrCanvaAssetNotFound

	s.store.Update(store.CollectionCanvaFonts, &fonts, func() bool {
		for i := range fonts {
			if fonts[i].ID == id {
				fonts = append(fonts[:i], fonts[i+1:]...)
				err = nil
				return true
			}
		}
		return false
	})

	return err
}

// ── Apps ────────────────────────────────────────────────────────────────

// AppInput carries the editable fields of a CanvaApp
type AppInput struct {
	Name     string `json:"name"`
	Purpose  string `json:"purpose"`
	QuickTip string `json:"quick_tip"`
}

// ListApps returns apps matching the query over name, purpose and tip
func (s *CanvaService) ListApps(query string) []models.CanvaApp {
	var apps []models.CanvaApp
	s.store.Load(store.CollectionCanvaApps, &apps)

	filtered := make([]models.CanvaApp, 0, len(apps))
	for _, a := range apps {
		if utils.MatchesQuery(query, a.Name, a.Purpose, a.QuickTip) {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

// CreateApp appends a new app
func (s *CanvaService) CreateApp(input AppInput) (*models.CanvaApp, error) {
	if input.Name == "" {
		return nil, ErrNameRequired
	}

	app := models.CanvaApp{
		ID:       utils.NewID(constants.PrefixCanvaApp, s.now()),
		Name:     input.Name,
		Purpose:  input.Purpose,
		QuickTip: input.QuickTip,
	}

	var apps []models.CanvaApp
	s.store.Update(store.CollectionCanvaApps, &apps, func() bool {
		apps = append(apps, app)
		return true
	})

	return &app, nil
}

// UpdateApp replaces the editable fields of an app
func (s *CanvaService) UpdateApp(id string, input AppInput) (*models.CanvaApp, error) {
	if input.Name == "" {
		return nil, ErrNameRequired
	}

	var apps []models.CanvaApp
	var app models.CanvaApp
	err := ErrCanvaAssetNotFound

	s.store.Update(store.CollectionCanvaApps, &apps, func() bool {
		for i := range apps {
			if apps[i].ID == id {
				apps[i].Name = input.Name
				apps[i].Purpose = input.Purpose
				apps[i].QuickTip = input.QuickTip
				app = apps[i]
				err = nil
				return true
			}
		}
		return false
	})

	if err != nil {
		return nil, err
	}
	return &app, nil
}

// DeleteApp removes an app
func (s *CanvaService) DeleteApp(id string) error {
	var apps []models.CanvaApp
	err := ErrCanvaAssetNotFound

	s.store.Update(store.CollectionCanvaApps, &apps, func() bool {
		for i := range apps {
			if apps[i].ID == id {
				apps = append(apps[:i], apps[i+1:]...)
				err = nil
				return true
			}
		}
		return false
	})

	return err
}

// ── Ideas ───────────────────────────────────────────────────────────────

// IdeaInput carries the editable fields of a CanvaIdea
type IdeaInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Tag         string `json:"tag"`
}

// ListIdeas returns ideas matching the query over title, description and
// tag
func (s *CanvaService) ListIdeas(query string) []models.CanvaIdea {
	var ideas []models.CanvaIdea
	s.store.Load(store.CollectionCanvaIdeas, &ideas)

	filtered := make([]models.CanvaIdea, 0, len(ideas))
	for _, idea := range ideas {
		if utils.MatchesQuery(query, idea.Title, idea.Description, idea.Tag) {
			filtered = append(filtered, idea)
		}
	}
	return filtered
}

// CreateIdea appends a new idea
func (s *CanvaService) CreateIdea(input IdeaInput) (*models.CanvaIdea, error) {
	if input.Title == "" {
		return nil, ErrNameRequired
	}

	idea := models.CanvaIdea{
		ID:          utils.NewID(constants.PrefixCanvaIdea, s.now()),
		Title:       input.Title,
		Description: input.Description,
		Tag:         input.Tag,
	}

	var ideas []models.CanvaIdea
	s.store.Update(store.CollectionCanvaIdeas, &ideas, func() bool {
		ideas = append(ideas, idea)
		return true
	})

	return &idea, nil
}

// UpdateIdea replaces the editable fields of an idea
func (s *CanvaService) UpdateIdea(id string, input IdeaInput) (*models.CanvaIdea, error) {
	if input.Title == "" {
		return nil, ErrNameRequired
	}

	var ideas []models.CanvaIdea
	var idea models.CanvaIdea
	err := ErrCanvaAssetNotFound

	s.store.Update(store.CollectionCanvaIdeas, &ideas, func() bool {
		for i := range ideas {
			if ideas[i].ID == id {
				ideas[i].Title = input.Title
				ideas[i].Description = input.Description
				ideas[i].Tag = input.Tag
				idea = ideas[i]
				err = nil
				return true
			}
		}
		return false
	})

	if err != nil {
		return nil, err
	}
	return &idea, nil
}

// DeleteIdea removes an idea. Stories linking to it keep their dangling
// reference.
func (s *CanvaService) DeleteIdea(id string) error {
	var ideas []models.CanvaIdea
	err := ErrCanvaAssetNotFound

	s.store.Update(store.CollectionCanvaIdeas, &ideas, func() bool {
		for i := range ideas {
			if ideas[i].ID == id {
				ideas = append(ideas[:i], ideas[i+1:]...)
				err = nil
				return true
			}
		}
		return false
	})

	return err
}

// ── Links ───────────────────────────────────────────────────────────────

// LinkInput carries the editable fields of a CanvaLink
type LinkInput struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Notes string `json:"notes"`
}

// ListLinks returns links matching the query over title, url and notes
func (s *CanvaService) ListLinks(query string) []models.CanvaLink {
	var links []models.CanvaLink
	s.store.Load(store.CollectionCanvaLinks, &links)

	filtered := make([]models.CanvaLink, 0, len(links))
	for _, l := range links {
		if utils.MatchesQuery(query, l.Title, l.URL, l.Notes) {
			filtered = append(filtered, l)
		}
	}
	return filtered
}

// CreateLink appends a new link
func (s *CanvaService) CreateLink(input LinkInput) (*models.CanvaLink, error) {
	if input.URL == "" {
		return nil, ErrURLRequired
	}

	link := models.CanvaLink{
		ID:    utils.NewID(constants.PrefixCanvaLink, s.now()),
		Title: input.Title,
		URL:   input.URL,
		Notes: input.Notes,
	}

	var links []models.CanvaLink
	s.store.Update(store.CollectionCanvaLinks, &links, func() bool {
		links = append(links, link)
		return true
	})

	return &link, nil
}

// UpdateLink replaces the editable fields of a link
func (s *CanvaService) UpdateLink(id string, input LinkInput) (*models.CanvaLink, error) {
	if input.URL == "" {
		return nil, ErrURLRequired
	}

	var links []models.CanvaLink
	var link models.CanvaLink
	err := ErrCanvaAssetNotFound

	s.store.Update(store.CollectionCanvaLinks, &links, func() bool {
		for i := range links {
			if links[i].ID == id {
				links[i].Title = input.Title
				links[i].URL = input.URL
				links[i].Notes = input.Notes
				link = links[i]
				err = nil
				return true
			}
		}
		return false
	})

	if err != nil {
		return nil, err
	}
	return &link, nil
}

// DeleteLink removes a link
func (s *CanvaService) DeleteLink(id string) error {
	var links []models.CanvaLink
	err := ErrCanvaAssetNotFound

	s.store.Update(store.CollectionCanvaLinks, &links, func() bool {
		for i := range links {
			if links[i].ID == id {
				links = append(links[:i], links[i+1:]...)
				err = nil
				return true
			}
		}
		return false
	})

	return err
}
