package models

// Note is a free-form text entry, optionally linked to a project.
// Tags is a comma-separated string, searched as plain text.
type Note struct {
	ID        string `json:"id"`
	ProjectID string `json:"project_id,omitempty"`
	CreatedOn string `json:"created_on"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Tags      string `json:"tags"`
}
