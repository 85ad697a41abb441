package models

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "TODO"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusDone       TaskStatus = "DONE"
)

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

type RecurrenceRule string

const (
	RecurrenceDaily   RecurrenceRule = "DAILY"
	RecurrenceWeekly  RecurrenceRule = "WEEKLY"
	RecurrenceMonthly RecurrenceRule = "MONTHLY"
)

// Task is a single to-do item, optionally linked to a project and
// optionally recurring. DueDate is a calendar date (YYYY-MM-DD, no time);
// RecurrenceRule is only set while IsRecurring is true.
type Task struct {
	ID              string         `json:"id"`
	ProjectID       string         `json:"project_id"`
	Title           string         `json:"title"`
	Assignee        string         `json:"assignee"`
	DueDate         string         `json:"due_date"`
	Status          TaskStatus     `json:"status"`
	Priority        Priority       `json:"priority"`
	IsRecurring     bool           `json:"is_recurring"`
	RecurrenceRule  RecurrenceRule `json:"recurrence_rule,omitempty"`
	ReminderMinutes int            `json:"reminder_minutes,omitempty"`
	Notes           string         `json:"notes"`
}
