package models

type StoryStatus string

const (
	StoryStatusIdea       StoryStatus = "IDEA"
	StoryStatusOutlining  StoryStatus = "OUTLINING"
	StoryStatusInProgress StoryStatus = "IN_PROGRESS"
	StoryStatusCompleted  StoryStatus = "COMPLETED"
)

// Story is a writing project. LinkedNotes and LinkedCanvaIdeas hold soft
// references into the notes and canvaIdeas collections.
type Story struct {
	ID                string      `json:"id"`
	Title             string      `json:"title"`
	Type              string      `json:"type"`
	Genre             string      `json:"genre"`
	Tone              string      `json:"tone"`
	Status            StoryStatus `json:"status"`
	MainTheme         string      `json:"main_theme"`
	Summary           string      `json:"summary"`
	InspirationSource string      `json:"inspiration_source"`
	LinkedNotes       []string    `json:"linked_notes"`
	LinkedCanvaIdeas  []string    `json:"linked_canva_ideas"`
	DateCreated       string      `json:"date_created"`
	LastUpdated       string      `json:"last_updated"`
}

type SceneType string

const (
	SceneReal      SceneType = "REAL"
	SceneDream     SceneType = "DREAM"
	SceneFlashback SceneType = "FLASHBACK"
	SceneOther     SceneType = "OTHER"
)

// Scene belongs to a story via StoryID. Scenes are the one place where a
// delete cascades: removing a story removes its scenes.
type Scene struct {
	ID            string    `json:"id"`
	StoryID       string    `json:"story_id"`
	SceneNumber   int       `json:"scene_number"`
	Title         string    `json:"title"`
	Type          SceneType `json:"type"`
	Summary       string    `json:"summary"`
	DialogueNotes string    `json:"dialogue_notes"`
	VisualTone    string    `json:"visual_tone"`
	Location      string    `json:"location"`
	EmotionFocus  string    `json:"emotion_focus"`
	MusicStyle    string    `json:"music_style"`
	Completed     bool      `json:"completed"`
}
