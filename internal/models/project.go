package models

type ProjectStatus string

const (
	ProjectStatusPlanning   ProjectStatus = "PLANNING"
	ProjectStatusInProgress ProjectStatus = "IN_PROGRESS"
	ProjectStatusOnHold     ProjectStatus = "ON_HOLD"
	ProjectStatusCompleted  ProjectStatus = "COMPLETED"
)

// Project groups tasks, notes and expenses through soft references.
// Deleting a project never cascades; referencing records keep a dangling
// project_id that lookups treat as "no project".
type Project struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	StartDate string        `json:"start_date"`
	DueDate   string        `json:"due_date"`
	Priority  Priority      `json:"priority"`
	Status    ProjectStatus `json:"status"`
	Notes     string        `json:"notes"`
}
