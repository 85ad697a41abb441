package models

// CanvaFont is a saved font with notes on when to use it.
type CanvaFont struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	UseCaseNotes string `json:"use_case_notes"`
}

// CanvaApp is a Canva marketplace app worth remembering.
type CanvaApp struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Purpose  string `json:"purpose"`
	QuickTip string `json:"quick_tip"`
}

// CanvaIdea is a design idea, taggable and linkable from stories.
type CanvaIdea struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Tag         string `json:"tag"`
}

// CanvaLink is a bookmarked design or template URL.
type CanvaLink struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
	Notes string `json:"notes"`
}
